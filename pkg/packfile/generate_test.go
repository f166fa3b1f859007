// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"errors"
	"testing"

	"packsmith/pkg/datapack"
)

func TestGenerate_TemplatesRoundTrip(t *testing.T) {
	t.Parallel()

	for _, template := range Templates() {
		t.Run(template, func(t *testing.T) {
			t.Parallel()

			content, err := Generate(template, "my-pack")
			if err != nil {
				t.Fatalf("Generate(%q) returned error: %v", template, err)
			}

			pf, err := ParseBytes([]byte(content), "packfile.cue")
			if err != nil {
				t.Fatalf("generated %q template does not parse: %v\n%s", template, err, content)
			}
			if pf.Name != "my-pack" {
				t.Errorf("Name = %q, want my-pack", pf.Name)
			}

			d, err := pf.Datapack()
			if err != nil {
				t.Fatalf("generated %q template does not convert: %v", template, err)
			}
			if _, err := d.Compile(datapack.CompileOptions{}); err != nil {
				t.Fatalf("generated %q template does not compile: %v", template, err)
			}
		})
	}
}

func TestGenerate_UnknownTemplate(t *testing.T) {
	t.Parallel()

	_, err := Generate("fancy", "demo")
	if err == nil {
		t.Fatal("Generate() should reject unknown templates")
	}
	if !errors.Is(err, ErrUnknownTemplate) {
		t.Errorf("error should wrap ErrUnknownTemplate, got: %v", err)
	}
}

func TestGenerate_InvalidName(t *testing.T) {
	t.Parallel()

	tests := []string{"", "My Pack", "UPPER", "with:colon"}
	for _, name := range tests {
		if _, err := Generate(TemplateDefault, name); !errors.Is(err, ErrInvalidPackName) {
			t.Errorf("Generate(default, %q) should wrap ErrInvalidPackName, got: %v", name, err)
		}
	}
}
