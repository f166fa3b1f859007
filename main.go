// SPDX-License-Identifier: MPL-2.0

// Command packsmith is a declarative Minecraft datapack compiler.
package main

import cmd "packsmith/cmd/packsmith"

func main() {
	cmd.Execute()
}
