// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	_ "embed"
	"fmt"
	"os"

	"packsmith/pkg/cueutil"
)

// DefaultFileName is the packfile name looked up in a pack directory.
const DefaultFileName = "packfile.cue"

//go:embed packfile_schema.cue
var packfileSchema string

// Parse reads and parses a packfile from the given path.
func Parse(path string) (*Packfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read packfile at %s: %w", path, err)
	}

	return ParseBytes(data, path)
}

// ParseBytes parses packfile content from bytes.
// Uses cueutil.ParseAndDecodeString for the 3-step CUE parsing flow:
// compile schema → compile user data → validate and decode.
func ParseBytes(data []byte, path string) (*Packfile, error) {
	result, err := cueutil.ParseAndDecodeString[Packfile](
		packfileSchema,
		data,
		"#Packfile",
		cueutil.WithFilename(path),
	)
	if err != nil {
		return nil, err
	}

	pf := result.Value
	pf.FilePath = path

	if err := pf.Validate(); err != nil {
		return nil, err
	}

	return pf, nil
}
