// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"encoding/json"
	"fmt"

	"packsmith/pkg/packformat"
	"packsmith/pkg/vfs"
)

// TagRegistry identifies the registry a tag belongs to, which determines
// the directory its listing file is written under.
type TagRegistry struct {
	dir string
}

// Built-in tag registries. Custom registries use TagRegistryCustom.
var (
	TagRegistryBlocks     = TagRegistry{dir: "block"}
	TagRegistryFluids     = TagRegistry{dir: "fluid"}
	TagRegistryItems      = TagRegistry{dir: "item"}
	TagRegistryEntities   = TagRegistry{dir: "entity_type"}
	TagRegistryGameEvents = TagRegistry{dir: "game_event"}

	// TagRegistryFunctions is the registry of function tags. Its
	// directory is "functions" or "function" depending on the pack
	// format, so it is resolved against the format strategy at compile
	// time.
	TagRegistryFunctions = TagRegistry{dir: ""}
)

// TagRegistryCustom addresses a registry by its directory path below
// "tags/".
func TagRegistryCustom(dir string) TagRegistry {
	return TagRegistry{dir: dir}
}

// resolveDir returns the registry's directory below "tags/".
func (r TagRegistry) resolveDir(strategy packformat.Strategy) string {
	if r.dir == "" {
		return strategy.FunctionTagDir
	}
	return r.dir
}

// TagValue is one entry of a tag: a resource location or a reference to
// another tag, optionally marked as not required.
type TagValue struct {
	ID string
	// Optional, when false, lets the tag load even if ID cannot be
	// resolved. The zero value keeps the entry required and serializes
	// to the plain string form.
	Optional bool
}

// MarshalJSON writes the compact string form for required entries and the
// {"id","required"} object form for optional ones.
func (v TagValue) MarshalJSON() ([]byte, error) {
	if !v.Optional {
		return json.Marshal(v.ID)
	}
	return json.Marshal(struct {
		ID       string `json:"id"`
		Required bool   `json:"required"`
	}{ID: v.ID, Required: false})
}

// Tag is a named, mergeable set of references compiled to one JSON listing
// file. Value order is preserved as added.
type Tag struct {
	replace bool
	values  []TagValue
}

// NewTag creates an empty tag. A replacing tag discards contributions made
// to the same path by packs loaded before this one.
func NewTag(replace bool) *Tag {
	return &Tag{replace: replace}
}

// Replace reports whether the tag discards earlier contributions.
func (t *Tag) Replace() bool { return t.replace }

// SetReplace sets the replace flag.
func (t *Tag) SetReplace(replace bool) { t.replace = replace }

// Values returns the tag's entries in insertion order.
func (t *Tag) Values() []TagValue { return t.values }

// Add appends a required entry.
func (t *Tag) Add(id string) *Tag {
	t.values = append(t.values, TagValue{ID: id})
	return t
}

// AddOptional appends an entry the runtime may skip when unresolvable.
func (t *Tag) AddOptional(id string) *Tag {
	t.values = append(t.values, TagValue{ID: id, Optional: true})
	return t
}

// compile stages the tag as a mergeable VFS file.
func (t *Tag) compile() vfs.File {
	return &tagFile{replace: t.replace, values: append([]TagValue(nil), t.values...)}
}

// tagFile is the compiled form of a Tag. It stays structured while staged
// so that contributions to the same path can merge; Content renders the
// JSON listing.
type tagFile struct {
	replace bool
	values  []TagValue
}

func (f *tagFile) Content() []byte {
	doc := struct {
		Replace bool       `json:"replace"`
		Values  []TagValue `json:"values"`
	}{Replace: f.replace, Values: f.values}
	if doc.Values == nil {
		doc.Values = []TagValue{}
	}
	data, err := json.Marshal(doc)
	if err != nil {
		panic(fmt.Sprintf("datapack: tag serialization: %v", err))
	}
	return data
}

// Merge combines this tag file with an earlier one at the same path. A
// replacing contribution wins outright; otherwise the value lists union,
// keeping the existing entries first and dropping duplicate IDs.
func (f *tagFile) Merge(existing vfs.File) (vfs.File, error) {
	prior, ok := existing.(*tagFile)
	if !ok {
		return nil, &TagMergeError{Reason: fmt.Sprintf("existing file is %T, not a tag", existing)}
	}
	if f.replace {
		return &tagFile{replace: true, values: append([]TagValue(nil), f.values...)}, nil
	}

	merged := &tagFile{replace: prior.replace}
	seen := make(map[string]bool)
	for _, value := range prior.values {
		if !seen[value.ID] {
			seen[value.ID] = true
			merged.values = append(merged.values, value)
		}
	}
	for _, value := range f.values {
		if !seen[value.ID] {
			seen[value.ID] = true
			merged.values = append(merged.values, value)
		}
	}
	return merged, nil
}
