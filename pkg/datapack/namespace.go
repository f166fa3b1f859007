// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"packsmith/pkg/vfs"
)

// Namespace is a named grouping of functions and tags within a pack.
// Namespaces are created through Datapack.Namespace.
type Namespace struct {
	name      string
	functions map[string]*Function
	tags      map[tagKey]*Tag
}

type tagKey struct {
	registry TagRegistry
	path     string
}

func newNamespace(name string) *Namespace {
	return &Namespace{
		name:      name,
		functions: make(map[string]*Function),
		tags:      make(map[tagKey]*Tag),
	}
}

// Name returns the namespace name.
func (n *Namespace) Name() string { return n.name }

// Function returns the function at path, creating an empty one on first
// use.
func (n *Namespace) Function(path string) *Function {
	fn, ok := n.functions[path]
	if !ok {
		fn = newFunction(n.name, path)
		n.functions[path] = fn
	}
	return fn
}

// Lookup returns the function at path, or nil when absent.
func (n *Namespace) Lookup(path string) *Function {
	return n.functions[path]
}

// Tag returns the tag at path in the given registry, creating an empty
// non-replacing one on first use.
func (n *Namespace) Tag(registry TagRegistry, path string) *Tag {
	key := tagKey{registry: registry, path: path}
	tag, ok := n.tags[key]
	if !ok {
		tag = NewTag(false)
		n.tags[key] = tag
	}
	return tag
}

// compile lowers the namespace into its data folder. Function paths are
// processed in sorted order and the synthesis queue drained until empty,
// so the output does not depend on insertion order.
func (n *Namespace) compile(c *compiler) (*vfs.Folder, error) {
	folder := vfs.NewFolder()

	queue := &functionQueue{}
	paths := maps.Keys(n.functions)
	slices.Sort(paths)
	for _, path := range paths {
		queue.push(n.functions[path])
	}
	for {
		fn, ok := queue.pop()
		if !ok {
			break
		}
		path := c.strategy.FunctionDir + "/" + fn.path + ".mcfunction"
		if err := folder.Insert(path, vfs.TextFile(fn.compile(c, queue)), vfs.PolicyFail); err != nil {
			return nil, err
		}
	}

	keys := maps.Keys(n.tags)
	slices.SortFunc(keys, func(a, b tagKey) int {
		if d := strings.Compare(a.registry.dir, b.registry.dir); d != 0 {
			return d
		}
		return strings.Compare(a.path, b.path)
	})
	for _, key := range keys {
		path := "tags/" + key.registry.resolveDir(c.strategy) + "/" + key.path + ".json"
		if err := folder.Insert(path, n.tags[key].compile(), vfs.PolicyMerge); err != nil {
			return nil, err
		}
	}

	return folder, nil
}
