// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"packsmith/internal/config"
	"packsmith/internal/issue"
	"packsmith/pkg/datapack"
	"packsmith/pkg/packfile"
	"packsmith/pkg/packformat"
	"packsmith/pkg/vfs"

	"github.com/spf13/cobra"
)

func TestIssueIDFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{
			name: "missing packfile",
			err:  fmt.Errorf("stat packfile.cue: %w", fs.ErrNotExist),
			want: issue.PackfileNotFoundId,
		},
		{
			name: "format outside compiler range",
			err:  &packformat.UnsupportedFormatError{Format: 49, CompilerRange: true},
			want: issue.UnsupportedFormatId,
		},
		{
			name: "empty supported range",
			err:  &packformat.InvalidRangeError{Range: packformat.RangeOf(10, 4)},
			want: issue.UnsupportedFormatId,
		},
		{
			name: "bad namespace name",
			err:  &datapack.InvalidNameError{Kind: "namespace", Name: "My Pack"},
			want: issue.InvalidNamespaceNameId,
		},
		{
			name: "bad function path",
			err:  &datapack.InvalidNameError{Kind: "function path", Name: "UPPER"},
			want: issue.InvalidFunctionPathId,
		},
		{
			name: "reserved function path",
			err:  fmt.Errorf("validate: %w", datapack.ErrReservedPath),
			want: issue.ReservedFunctionPathId,
		},
		{
			name: "command outside format range",
			err:  fmt.Errorf("validate: %w", datapack.ErrUnsupportedCommand),
			want: issue.CommandNotInFormatId,
		},
		{
			name: "tag merge conflict",
			err:  fmt.Errorf("compile: %w", datapack.ErrTagMerge),
			want: issue.TagMergeConflictId,
		},
		{
			name: "path collision",
			err:  &vfs.PathCollisionError{Path: "data/x"},
			want: issue.TagMergeConflictId,
		},
		{
			name: "template dir missing",
			err:  &vfs.TemplateSourceError{Path: "./template"},
			want: issue.TemplateDirNotFoundId,
		},
		{
			name: "write failure",
			err:  &vfs.WriteError{Path: "dist/pack.zip", Err: errors.New("disk full")},
			want: issue.OutputWriteFailedId,
		},
		{
			name: "write failure from permissions",
			err:  &vfs.WriteError{Path: "dist", Err: fs.ErrPermission},
			want: issue.PermissionDeniedId,
		},
		{
			name: "command shape violation",
			err:  &packfile.CommandShapeError{Where: "commands[0]", Count: 2},
			want: issue.PackfileParseErrorId,
		},
		{
			name: "wrapped in actionable error",
			err: issue.NewErrorContext().
				WithOperation("compile pack").
				Wrap(&packformat.UnsupportedFormatError{Format: 3, CompilerRange: true}).
				BuildError(),
			want: issue.UnsupportedFormatId,
		},
		{
			name: "unclassified error",
			err:  errors.New("boom"),
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := issueIDFor(tt.err); got != tt.want {
				t.Errorf("issueIDFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestFailRunRendersIssueHelp(t *testing.T) {
	// Not parallel: mutates the package-level verbose var.
	origVerbose := verbose
	t.Cleanup(func() { verbose = origVerbose })

	failErr := &packformat.UnsupportedFormatError{Format: 49, CompilerRange: true}

	t.Run("verbose mode includes catalog entry", func(t *testing.T) {
		verbose = true
		var buf bytes.Buffer
		c := &cobra.Command{Use: "test"}
		c.SetErr(&buf)

		err := failRun(c, failErr)

		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("failRun() error = %T, want *ExitError", err)
		}
		if !strings.Contains(buf.String(), "Unsupported pack format") {
			t.Errorf("stderr missing catalog entry, got:\n%s", buf.String())
		}
	})

	t.Run("quiet mode stays compact", func(t *testing.T) {
		verbose = false
		var buf bytes.Buffer
		c := &cobra.Command{Use: "test"}
		c.SetErr(&buf)

		_ = failRun(c, failErr)

		if strings.Contains(buf.String(), "Supported range") {
			t.Errorf("stderr includes catalog entry without verbose, got:\n%s", buf.String())
		}
	})
}

func TestRenderStyle(t *testing.T) {
	// Not parallel: mutates the package-level cfg var.
	origCfg := *cfg
	t.Cleanup(func() { *cfg = origCfg })

	tests := []struct {
		scheme config.ColorScheme
		want   string
	}{
		{scheme: config.ColorSchemeAuto, want: "dark"},
		{scheme: config.ColorSchemeDark, want: "dark"},
		{scheme: config.ColorSchemeLight, want: "light"},
	}

	for _, tt := range tests {
		t.Run(string(tt.scheme), func(t *testing.T) {
			cfg.UI.ColorScheme = tt.scheme
			if got := renderStyle(); got != tt.want {
				t.Errorf("renderStyle() = %q, want %q", got, tt.want)
			}
		})
	}
}
