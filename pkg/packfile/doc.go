// SPDX-License-Identifier: MPL-2.0

// Package packfile defines the schema and parsing for packfile CUE files.
//
// A packfile declaratively describes a Minecraft data pack: its metadata,
// namespaces with their functions and tags, and the functions hooked into
// the tick and load cycles. Files are validated against an embedded CUE
// schema and converted into the datapack model for compilation.
//
// Example packfile:
//
//	name:   "mypack"
//	format: 48
//
//	namespaces: {
//		mypack: {
//			functions: {
//				"hello": {
//					commands: [
//						{raw: "say Hello, world!"},
//					]
//				}
//			}
//		}
//	}
//
//	load: ["mypack:hello"]
package packfile
