// SPDX-License-Identifier: MPL-2.0

// Package datapack models a Minecraft data pack as a tree of commands and
// compiles it down to the flat files the game loads.
//
// A Datapack holds namespaces of functions (ordered Command trees) and
// tags. Compile validates the model, lowers every function into script
// lines for the declared pack format and stages the whole output in a
// vfs.Folder; nothing touches real storage until the caller materializes
// the folder. Compilation is deterministic: the same model and options
// produce a byte-identical tree, including the names of synthesized helper
// functions.
package datapack

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"packsmith/pkg/packformat"
	"packsmith/pkg/vfs"
)

// DefaultDescription is used when no description is set.
const DefaultDescription = "A Minecraft data pack created with packsmith"

// Datapack is the top-level model: declared pack format, metadata and
// namespaces. The zero value is not usable; create packs with New.
type Datapack struct {
	name        string
	description string
	format      packformat.Format
	supported   *packformat.Range
	namespaces  map[string]*Namespace
	tick        []string
	load        []string
	custom      *vfs.Folder
}

// New creates a datapack targeting the given pack format.
func New(name string, format packformat.Format) *Datapack {
	return &Datapack{
		name:        name,
		description: DefaultDescription,
		format:      format,
		namespaces:  make(map[string]*Namespace),
		custom:      vfs.NewFolder(),
	}
}

// Name returns the pack name.
func (d *Datapack) Name() string { return d.name }

// Format returns the declared pack format.
func (d *Datapack) Format() packformat.Format { return d.format }

// Description returns the pack description.
func (d *Datapack) Description() string { return d.description }

// WithDescription sets the pack description written to pack.mcmeta.
func (d *Datapack) WithDescription(description string) *Datapack {
	d.description = description
	return d
}

// WithSupportedFormats declares the inclusive format range the pack
// supports, written to pack.mcmeta and enforced by Validate.
func (d *Datapack) WithSupportedFormats(supported packformat.Range) *Datapack {
	d.supported = &supported
	return d
}

// WithTemplateFolder loads a directory of static files that the compiled
// output is overlaid onto. Files already added with AddCustomFile win over
// template files at the same path.
func (d *Datapack) WithTemplateFolder(path string) (*Datapack, error) {
	template, err := vfs.FromDir(path)
	if err != nil {
		return nil, err
	}
	template.Merge(d.custom)
	d.custom = template
	return d, nil
}

// AddCustomFile stages a static file in the output, replacing any earlier
// custom file at the same path.
func (d *Datapack) AddCustomFile(path string, file vfs.File) error {
	return d.custom.Insert(path, file, vfs.PolicyReplace)
}

// Namespace returns the namespace with the given name, creating it on
// first use.
func (d *Datapack) Namespace(name string) *Namespace {
	ns, ok := d.namespaces[name]
	if !ok {
		ns = newNamespace(name)
		d.namespaces[name] = ns
	}
	return ns
}

// AddTick registers a function location ("namespace:path") to run every
// tick.
func (d *Datapack) AddTick(location string) {
	d.tick = append(d.tick, location)
}

// AddLoad registers a function location ("namespace:path") to run when the
// pack loads.
func (d *Datapack) AddLoad(location string) {
	d.load = append(d.load, location)
}

var (
	namespaceNamePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	functionPathPattern  = regexp.MustCompile(`^[a-z0-9_.-]+(/[a-z0-9_.-]+)*$`)
)

// Validate checks the model before compilation: the declared format must be
// one the compiler understands and inside the supported range, names must
// be well-formed, user function paths must stay out of the reserved
// synthesized subfolder and every command must be available across the
// whole supported range.
func (d *Datapack) Validate() error {
	if _, err := packformat.ForFormat(d.format); err != nil {
		return err
	}
	supported := d.supportedRange()
	if err := supported.Validate(); err != nil {
		return err
	}
	if !supported.Contains(d.format) {
		return &packformat.UnsupportedFormatError{Format: d.format, Supported: supported}
	}

	names := maps.Keys(d.namespaces)
	slices.Sort(names)
	for _, name := range names {
		if !namespaceNamePattern.MatchString(name) {
			return &InvalidNameError{Kind: "namespace", Name: name}
		}
		ns := d.namespaces[name]
		paths := maps.Keys(ns.functions)
		slices.Sort(paths)
		for _, path := range paths {
			if !functionPathPattern.MatchString(path) {
				return &InvalidNameError{Kind: "function path", Name: path}
			}
			if path == strings.TrimSuffix(synthesizedPrefix, "/") || strings.HasPrefix(path, synthesizedPrefix) {
				return &ReservedPathError{Path: path}
			}
			for i, cmd := range ns.functions[path].commands {
				if !validateCommand(cmd, supported) {
					return &UnsupportedCommandError{
						Namespace: name,
						Path:      path,
						Index:     i,
						Supported: supported,
					}
				}
			}
		}
	}
	return nil
}

// supportedRange returns the declared supported range, or the single-format
// range when none was declared.
func (d *Datapack) supportedRange() packformat.Range {
	if d.supported != nil {
		return *d.supported
	}
	return packformat.RangeOf(d.format, d.format)
}

// Compile validates the pack and lowers it into a staged output tree. On
// error no tree is returned; a successful compile stages everything,
// custom files included, so the caller can place or archive the result.
func (d *Datapack) Compile(opts CompileOptions) (*vfs.Folder, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	strategy, err := packformat.ForFormat(d.format)
	if err != nil {
		return nil, err
	}
	c := &compiler{opts: opts, strategy: strategy}

	generated := vfs.NewFolder()
	if err := generated.Insert("pack.mcmeta", d.packMeta(), vfs.PolicyFail); err != nil {
		return nil, err
	}

	data := vfs.NewFolder()
	names := maps.Keys(d.namespaces)
	slices.Sort(names)
	for _, name := range names {
		folder, err := d.namespaces[name].compile(c)
		if err != nil {
			return nil, err
		}
		if err := data.AddFolder(name, folder); err != nil {
			return nil, err
		}
	}

	if err := d.insertFunctionListTag(data, c.strategy, "tick", d.tick); err != nil {
		return nil, err
	}
	if err := d.insertFunctionListTag(data, c.strategy, "load", d.load); err != nil {
		return nil, err
	}

	if err := generated.AddFolder("data", data); err != nil {
		return nil, err
	}

	root := d.custom.Clone()
	root.Merge(generated)
	return root, nil
}

// insertFunctionListTag stages the minecraft:tick / minecraft:load function
// tag for the registered locations, merging with any tag the model already
// declared at the same path.
func (d *Datapack) insertFunctionListTag(data *vfs.Folder, strategy packformat.Strategy, name string, locations []string) error {
	if len(locations) == 0 {
		return nil
	}
	tag := NewTag(false)
	for _, location := range locations {
		tag.Add(location)
	}
	path := "minecraft/tags/" + strategy.FunctionTagDir + "/" + name + ".json"
	return data.Insert(path, tag.compile(), vfs.PolicyMerge)
}

// packMeta renders pack.mcmeta.
func (d *Datapack) packMeta() vfs.File {
	type supportedFormats struct {
		MinInclusive packformat.Format `json:"min_inclusive"`
		MaxInclusive packformat.Format `json:"max_inclusive"`
	}
	type pack struct {
		Description      string            `json:"description"`
		PackFormat       packformat.Format `json:"pack_format"`
		SupportedFormats *supportedFormats `json:"supported_formats,omitempty"`
	}
	meta := struct {
		Pack pack `json:"pack"`
	}{Pack: pack{Description: d.description, PackFormat: d.format}}
	if d.supported != nil {
		meta.Pack.SupportedFormats = &supportedFormats{
			MinInclusive: d.supported.Min,
			MaxInclusive: d.supported.Max,
		}
	}
	content, err := json.Marshal(meta)
	if err != nil {
		panic(fmt.Sprintf("datapack: pack.mcmeta serialization: %v", err))
	}
	return vfs.TextFile(content)
}
