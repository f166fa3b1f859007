// SPDX-License-Identifier: MPL-2.0

package cueutil

import (
	"errors"
	"strings"
	"testing"
)

func TestFormatPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path []string
		want string
	}{
		{name: "empty", path: nil, want: ""},
		{name: "single field", path: []string{"name"}, want: "name"},
		{name: "nested fields", path: []string{"pack", "format"}, want: "pack.format"},
		{name: "array index", path: []string{"namespaces", "0", "name"}, want: "namespaces[0].name"},
		{name: "trailing index", path: []string{"tags", "12"}, want: "tags[12]"},
		{name: "leading number stays a field", path: []string{"0", "name"}, want: "0.name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := formatPath(tt.path); got != tt.want {
				t.Errorf("formatPath(%v) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestFormatErrorNil(t *testing.T) {
	t.Parallel()

	if got := FormatError(nil, "packfile.cue"); got != nil {
		t.Errorf("FormatError(nil) = %v, want nil", got)
	}
}

func TestFormatErrorNonCUE(t *testing.T) {
	t.Parallel()

	base := errors.New("boom")
	got := FormatError(base, "packfile.cue")
	if got == nil || !strings.Contains(got.Error(), "packfile.cue") {
		t.Errorf("FormatError() = %v, want file path in message", got)
	}
	if !errors.Is(got, base) {
		t.Error("FormatError() lost the wrapped error")
	}
}

func TestCheckFileSize(t *testing.T) {
	t.Parallel()

	data := []byte("pack: format: 48")
	if err := CheckFileSize(data, int64(len(data)), "packfile.cue"); err != nil {
		t.Errorf("CheckFileSize at limit = %v, want nil", err)
	}
	err := CheckFileSize(data, int64(len(data))-1, "packfile.cue")
	if err == nil {
		t.Fatal("CheckFileSize over limit = nil, want error")
	}
	if !strings.Contains(err.Error(), "packfile.cue") {
		t.Errorf("error %v does not name the file", err)
	}
}

func TestParseAndDecode(t *testing.T) {
	t.Parallel()

	type pack struct {
		Name   string `json:"name"`
		Format int    `json:"format"`
	}

	schema := []byte(`
#Pack: {
	name:   string & !=""
	format: int & >=4 & <=48
}
`)

	t.Run("valid input decodes", func(t *testing.T) {
		t.Parallel()
		result, err := ParseAndDecode[pack](schema, []byte(`name: "demo", format: 48`), "#Pack",
			WithFilename("pack.cue"))
		if err != nil {
			t.Fatalf("ParseAndDecode: %v", err)
		}
		if result.Value.Name != "demo" || result.Value.Format != 48 {
			t.Errorf("decoded %+v", *result.Value)
		}
	})

	t.Run("schema violation names the path", func(t *testing.T) {
		t.Parallel()
		_, err := ParseAndDecode[pack](schema, []byte(`name: "demo", format: 99`), "#Pack",
			WithFilename("pack.cue"))
		if err == nil {
			t.Fatal("ParseAndDecode = nil error, want schema violation")
		}
		if !strings.Contains(err.Error(), "format") {
			t.Errorf("error %v does not name the offending field", err)
		}
	})

	t.Run("missing field fails concrete validation", func(t *testing.T) {
		t.Parallel()
		_, err := ParseAndDecode[pack](schema, []byte(`name: "demo"`), "#Pack")
		if err == nil {
			t.Fatal("ParseAndDecode = nil error, want incomplete value")
		}
	})

	t.Run("size limit enforced", func(t *testing.T) {
		t.Parallel()
		_, err := ParseAndDecode[pack](schema, []byte(`name: "demo", format: 48`), "#Pack",
			WithMaxFileSize(4))
		if err == nil {
			t.Fatal("ParseAndDecode = nil error, want size error")
		}
	})
}
