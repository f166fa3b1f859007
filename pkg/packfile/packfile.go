// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"packsmith/pkg/packformat"
)

type (
	// Packfile is the root of a parsed packfile.cue.
	Packfile struct {
		// Name is the pack name, used for the output directory or archive.
		Name string `json:"name"`
		// Description goes into pack.mcmeta. Empty keeps the built-in default.
		Description string `json:"description,omitempty"`
		// Format is the targeted pack format. Zero means "not declared";
		// the CLI substitutes its configured default before compiling.
		Format packformat.Format `json:"format,omitempty"`
		// SupportedFormats optionally declares a wider compatibility range.
		SupportedFormats *FormatRange `json:"supported_formats,omitempty"`
		// TemplateDir optionally points to a directory of files copied
		// verbatim into the pack, relative to the packfile.
		TemplateDir string `json:"template_dir,omitempty"`
		// Namespaces maps namespace names to their contents.
		Namespaces map[string]NamespaceDef `json:"namespaces"`
		// Tick lists "namespace:path" functions run every tick.
		Tick []string `json:"tick,omitempty"`
		// Load lists "namespace:path" functions run on reload.
		Load []string `json:"load,omitempty"`

		// FilePath is where this packfile was loaded from. Not part of the
		// schema; set by Parse.
		FilePath string `json:"-"`
	}

	// FormatRange declares the inclusive pack format compatibility range.
	FormatRange struct {
		Min packformat.Format `json:"min"`
		Max packformat.Format `json:"max"`
	}

	// NamespaceDef holds the functions and tags of one namespace.
	NamespaceDef struct {
		Functions map[string]FunctionDef `json:"functions,omitempty"`
		Tags      []TagDef               `json:"tags,omitempty"`
	}

	// FunctionDef is an ordered list of command definitions.
	FunctionDef struct {
		Commands []CommandDef `json:"commands"`
	}

	// TagDef declares one tag file.
	TagDef struct {
		// Registry selects the tag registry: "block", "fluid", "item",
		// "entity_type", "game_event", "function", or a custom directory
		// below "tags/".
		Registry string `json:"registry"`
		// Path is the tag path within the registry.
		Path string `json:"path"`
		// Replace discards lower-priority contributions to the same tag.
		Replace bool `json:"replace,omitempty"`
		// Values are the tag entries.
		Values []TagValueDef `json:"values"`
	}

	// TagValueDef is one tag entry.
	TagValueDef struct {
		// ID is the referenced resource location.
		ID string `json:"id"`
		// Required marks whether a missing ID invalidates the whole tag.
		// Omitted means required.
		Required *bool `json:"required,omitempty"`
	}
)
