// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"archive/zip"
	"os"
	"path/filepath"
)

// Place writes the tree below root on the real file system, mirroring the
// staged structure exactly. Files are written in Flatten order, so repeated
// failed attempts stop at a reproducible position; the returned WriteError
// names the path that failed. Already-written files are left as-is.
func (f *Folder) Place(root string) error {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return &WriteError{Path: root, Err: err}
	}
	for _, entry := range f.Flatten() {
		target := filepath.Join(root, filepath.FromSlash(entry.Path))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return &WriteError{Path: target, Err: err}
		}
		if err := os.WriteFile(target, entry.File.Content(), 0o644); err != nil {
			return &WriteError{Path: target, Err: err}
		}
	}
	return nil
}

// Zip writes the tree into a single zip archive at path, using the same
// deterministic walk order as Place.
func (f *Folder) Zip(path string) error {
	return f.ZipWithComment(path, "")
}

// ZipWithComment writes the tree into a zip archive at path and attaches
// comment as the archive comment when non-empty.
func (f *Folder) ZipWithComment(path, comment string) (err error) {
	archive, err := os.Create(path)
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := archive.Close(); closeErr != nil && err == nil {
			err = &WriteError{Path: path, Err: closeErr}
		}
	}()

	writer := zip.NewWriter(archive)
	for _, entry := range f.Flatten() {
		w, createErr := writer.Create(entry.Path)
		if createErr != nil {
			return &WriteError{Path: entry.Path, Err: createErr}
		}
		if _, writeErr := w.Write(entry.File.Content()); writeErr != nil {
			return &WriteError{Path: entry.Path, Err: writeErr}
		}
	}

	if comment != "" {
		if commentErr := writer.SetComment(comment); commentErr != nil {
			return &WriteError{Path: path, Err: commentErr}
		}
	}
	if closeErr := writer.Close(); closeErr != nil {
		return &WriteError{Path: path, Err: closeErr}
	}
	return nil
}

// FromDir loads a real directory into a virtual folder, reading every file
// as binary content. It is used to pull template folders into the staged
// tree before compilation output is layered on top.
func FromDir(path string) (*Folder, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &TemplateSourceError{Path: path, Err: err}
	}
	if !info.IsDir() {
		return nil, &TemplateSourceError{Path: path}
	}
	return fromDir(path)
}

func fromDir(path string) (*Folder, error) {
	folder := NewFolder()
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, &TemplateSourceError{Path: path, Err: err}
	}
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			sub, err := fromDir(child)
			if err != nil {
				return nil, err
			}
			folder.folders[entry.Name()] = sub
			continue
		}
		data, err := os.ReadFile(child)
		if err != nil {
			return nil, &TemplateSourceError{Path: child, Err: err}
		}
		folder.files[entry.Name()] = BinaryFile(data)
	}
	return folder, nil
}
