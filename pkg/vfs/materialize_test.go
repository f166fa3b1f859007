// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func stageTree(t *testing.T) *Folder {
	t.Helper()
	folder := NewFolder()
	files := map[string]string{
		"pack.mcmeta":                     `{"pack":{}}`,
		"data/test/function/foo.mcfunction": "say hi",
		"data/test/tags/function/all.json":  `{"replace":false,"values":[]}`,
	}
	for path, content := range files {
		if err := folder.Insert(path, TextFile(content), PolicyFail); err != nil {
			t.Fatalf("Insert(%q) error = %v", path, err)
		}
	}
	return folder
}

func TestPlace(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	folder := stageTree(t)

	if err := folder.Place(dir); err != nil {
		t.Fatalf("Place() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "data", "test", "function", "foo.mcfunction"))
	if err != nil {
		t.Fatalf("reading placed file: %v", err)
	}
	if string(data) != "say hi" {
		t.Errorf("placed content = %q, want %q", data, "say hi")
	}
	if _, err := os.Stat(filepath.Join(dir, "pack.mcmeta")); err != nil {
		t.Errorf("pack.mcmeta not placed: %v", err)
	}
}

func TestZipRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "pack.zip")
	folder := stageTree(t)

	if err := folder.ZipWithComment(target, "packed for test"); err != nil {
		t.Fatalf("ZipWithComment() error = %v", err)
	}

	reader, err := zip.OpenReader(target)
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	defer reader.Close()

	if reader.Comment != "packed for test" {
		t.Errorf("archive comment = %q, want %q", reader.Comment, "packed for test")
	}

	want := map[string]bool{
		"pack.mcmeta":                     false,
		"data/test/function/foo.mcfunction": false,
		"data/test/tags/function/all.json":  false,
	}
	for _, file := range reader.File {
		if _, ok := want[file.Name]; !ok {
			t.Errorf("unexpected archive entry %q", file.Name)
			continue
		}
		want[file.Name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("archive entry %q missing", name)
		}
	}
}

func TestZipDeterministicOrder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	first := filepath.Join(dir, "a.zip")
	second := filepath.Join(dir, "b.zip")

	folder := stageTree(t)
	if err := folder.Zip(first); err != nil {
		t.Fatalf("Zip() error = %v", err)
	}
	if err := folder.Zip(second); err != nil {
		t.Fatalf("Zip() error = %v", err)
	}

	readNames := func(path string) []string {
		reader, err := zip.OpenReader(path)
		if err != nil {
			t.Fatalf("opening archive: %v", err)
		}
		defer reader.Close()
		var names []string
		for _, file := range reader.File {
			names = append(names, file.Name)
		}
		return names
	}

	a, b := readNames(first), readNames(second)
	if len(a) != len(b) {
		t.Fatalf("entry counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("entry order differs at %d: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestFromDir(t *testing.T) {
	t.Parallel()

	t.Run("loads nested template", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		if err := os.MkdirAll(filepath.Join(dir, "assets"), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "assets", "icon.png"), []byte{0x89, 0x50}, 0o644); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("hello"), 0o644); err != nil {
			t.Fatal(err)
		}

		folder, err := FromDir(dir)
		if err != nil {
			t.Fatalf("FromDir() error = %v", err)
		}
		if folder.File("assets/icon.png") == nil {
			t.Error("nested template file missing")
		}
		if got := string(folder.File("README.md").Content()); got != "hello" {
			t.Errorf("template content = %q, want %q", got, "hello")
		}
	})

	t.Run("missing source", func(t *testing.T) {
		t.Parallel()
		_, err := FromDir(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, ErrTemplateSource) {
			t.Fatalf("FromDir() error = %v, want ErrTemplateSource", err)
		}
	})

	t.Run("source is a file", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "plain.txt")
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := FromDir(path)
		if !errors.Is(err, ErrTemplateSource) {
			t.Fatalf("FromDir() error = %v, want ErrTemplateSource", err)
		}
	})
}
