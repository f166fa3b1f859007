// SPDX-License-Identifier: MPL-2.0

// Package vfs provides the in-memory file tree that compilation stages its
// output into before anything touches real storage.
//
// A compile pass builds a complete Folder bottom-up, then hands it to one of
// the materializers (Place for a directory tree, Zip for an archive). Because
// the tree is assembled entirely in memory, a failed compile never leaves
// partially-written output behind, and the same tree can be both placed and
// archived without recompiling.
//
// Insertion is governed by a MergePolicy: by default two insertions at the
// same path are a hard error (PathCollisionError), content that knows how to
// combine itself (see Mergeable) can opt into merging, and callers that
// deliberately overwrite use PolicyReplace.
package vfs

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type (
	// File is a single file staged in the virtual tree. Implementations
	// must be usable as values: Content is called repeatedly and must be
	// side-effect free.
	File interface {
		// Content returns the raw bytes that materialization writes out.
		Content() []byte
	}

	// Mergeable is implemented by files whose content can be combined with
	// an earlier insertion at the same path (function tags, for example).
	// Merge receives the previously inserted file and returns the combined
	// result without mutating either operand.
	Mergeable interface {
		File

		Merge(existing File) (File, error)
	}

	// TextFile is a UTF-8 text file.
	TextFile string

	// BinaryFile is an opaque byte file (template assets, icons).
	BinaryFile []byte
)

// Content returns the text as bytes.
func (f TextFile) Content() []byte { return []byte(f) }

// Content returns the raw bytes.
func (f BinaryFile) Content() []byte { return f }

// MergePolicy selects what Insert does when the target path is already
// occupied. The zero value is PolicyFail.
type MergePolicy int

const (
	// PolicyFail rejects the insertion with a PathCollisionError.
	PolicyFail MergePolicy = iota
	// PolicyReplace overwrites the existing file.
	PolicyReplace
	// PolicyMerge combines the new content with the existing file via the
	// Mergeable interface; non-mergeable content fails with a
	// PathCollisionError.
	PolicyMerge
)

// Folder is a node of the staged output tree. The zero value is not usable;
// create folders with NewFolder.
type Folder struct {
	folders map[string]*Folder
	files   map[string]File
}

// NewFolder creates an empty folder.
func NewFolder() *Folder {
	return &Folder{
		folders: make(map[string]*Folder),
		files:   make(map[string]File),
	}
}

// splitPath splits a slash-separated path into its first segment and the
// remainder. The remainder is empty for single-segment paths.
func splitPath(path string) (head, tail string) {
	head, tail, found := strings.Cut(path, "/")
	if !found {
		return path, ""
	}
	return head, tail
}

// Insert stages file at the slash-separated path, creating intermediate
// folders as needed. Collisions are resolved according to policy; a path
// segment that is already occupied by a file is always a collision.
func (f *Folder) Insert(path string, file File, policy MergePolicy) error {
	return f.insert(path, "", file, policy)
}

func (f *Folder) insert(path, prefix string, file File, policy MergePolicy) error {
	head, tail := splitPath(path)
	if tail != "" {
		if _, isFile := f.files[head]; isFile {
			return &PathCollisionError{Path: prefix + head}
		}
		sub, ok := f.folders[head]
		if !ok {
			sub = NewFolder()
			f.folders[head] = sub
		}
		return sub.insert(tail, prefix+head+"/", file, policy)
	}

	if _, isFolder := f.folders[head]; isFolder {
		return &PathCollisionError{Path: prefix + head}
	}
	existing, occupied := f.files[head]
	if !occupied {
		f.files[head] = file
		return nil
	}

	switch policy {
	case PolicyReplace:
		f.files[head] = file
		return nil
	case PolicyMerge:
		mergeable, ok := file.(Mergeable)
		if !ok {
			return &PathCollisionError{Path: prefix + head}
		}
		merged, err := mergeable.Merge(existing)
		if err != nil {
			return err
		}
		f.files[head] = merged
		return nil
	default:
		return &PathCollisionError{Path: prefix + head}
	}
}

// AddFolder inserts an existing folder at the slash-separated path, creating
// intermediate folders as needed. An occupied target is a collision.
func (f *Folder) AddFolder(path string, folder *Folder) error {
	head, tail := splitPath(path)
	if _, isFile := f.files[head]; isFile {
		return &PathCollisionError{Path: head}
	}
	if tail != "" {
		sub, ok := f.folders[head]
		if !ok {
			sub = NewFolder()
			f.folders[head] = sub
		}
		return sub.AddFolder(tail, folder)
	}
	if _, occupied := f.folders[head]; occupied {
		return &PathCollisionError{Path: head}
	}
	f.folders[head] = folder
	return nil
}

// File returns the file at the slash-separated path, or nil when absent.
func (f *Folder) File(path string) File {
	head, tail := splitPath(path)
	if tail != "" {
		sub, ok := f.folders[head]
		if !ok {
			return nil
		}
		return sub.File(tail)
	}
	return f.files[head]
}

// Folder returns the subfolder at the slash-separated path, or nil when
// absent.
func (f *Folder) Folder(path string) *Folder {
	head, tail := splitPath(path)
	sub, ok := f.folders[head]
	if !ok {
		return nil
	}
	if tail != "" {
		return sub.Folder(tail)
	}
	return sub
}

// FileNames returns the names of the direct files, sorted.
func (f *Folder) FileNames() []string {
	names := maps.Keys(f.files)
	slices.Sort(names)
	return names
}

// FolderNames returns the names of the direct subfolders, sorted.
func (f *Folder) FolderNames() []string {
	names := maps.Keys(f.folders)
	slices.Sort(names)
	return names
}

// Entry is one file of a flattened tree, addressed by its full
// slash-separated path from the flattening root.
type Entry struct {
	Path string
	File File
}

// Flatten returns every file in the tree as (path, file) pairs, sorted by
// path. The ordering is what makes materialization deterministic.
func (f *Folder) Flatten() []Entry {
	var entries []Entry
	f.flatten("", &entries)
	slices.SortFunc(entries, func(a, b Entry) int {
		return strings.Compare(a.Path, b.Path)
	})
	return entries
}

func (f *Folder) flatten(prefix string, out *[]Entry) {
	for name, file := range f.files {
		*out = append(*out, Entry{Path: prefix + name, File: file})
	}
	for name, sub := range f.folders {
		sub.flatten(prefix+name+"/", out)
	}
}

// Clone returns a deep copy of the folder structure. File values are
// shared; they are immutable by contract.
func (f *Folder) Clone() *Folder {
	clone := NewFolder()
	for name, sub := range f.folders {
		clone.folders[name] = sub.Clone()
	}
	for name, file := range f.files {
		clone.files[name] = file
	}
	return clone
}

// Merge folds other into f, subfolders recursively and files by overwrite.
// It returns the paths of files in f that other replaced, sorted.
func (f *Folder) Merge(other *Folder) []string {
	replaced := f.merge(other, "")
	slices.Sort(replaced)
	return replaced
}

func (f *Folder) merge(other *Folder, prefix string) []string {
	var replaced []string
	for name, sub := range other.folders {
		if existing, ok := f.folders[name]; ok {
			replaced = append(replaced, existing.merge(sub, prefix+name+"/")...)
		} else {
			f.folders[name] = sub
		}
	}
	for name, file := range other.files {
		if _, ok := f.files[name]; ok {
			replaced = append(replaced, prefix+name)
		}
		f.files[name] = file
	}
	return replaced
}
