// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"packsmith/internal/issue"
)

func TestGetVersionString(t *testing.T) {
	// Not parallel: subtests mutate package-level Version/Commit/BuildDate vars.

	t.Run("ldflags version takes priority", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "v1.2.3"
		Commit = "abc1234"
		BuildDate = "2025-06-15T10:00:00Z"

		got := getVersionString()
		want := "v1.2.3 (commit: abc1234, built: 2025-06-15T10:00:00Z)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})

	t.Run("fallback to dev when no build info", func(t *testing.T) {
		origVersion, origCommit, origBuildDate := Version, Commit, BuildDate
		t.Cleanup(func() {
			Version, Commit, BuildDate = origVersion, origCommit, origBuildDate
		})

		Version = "dev"
		Commit = "unknown"
		BuildDate = "unknown"

		got := getVersionString()
		want := "dev (built from source)"
		if got != want {
			t.Errorf("getVersionString() = %q, want %q", got, want)
		}
	})
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Run("plain error passes through", func(t *testing.T) {
		got := formatErrorForDisplay(errors.New("boom"), false)
		if got != "boom" {
			t.Errorf("formatErrorForDisplay() = %q, want %q", got, "boom")
		}
	})

	t.Run("actionable error uses Format", func(t *testing.T) {
		err := issue.NewErrorContext().
			WithOperation("load packfile").
			WithResource("./packfile.cue").
			WithSuggestion("Run 'packsmith init' to create one").
			BuildError()

		got := formatErrorForDisplay(err, false)
		if !strings.Contains(got, "failed to load packfile") {
			t.Errorf("formatErrorForDisplay() = %q, want operation prefix", got)
		}
		if !strings.Contains(got, "• Run 'packsmith init' to create one") {
			t.Errorf("formatErrorForDisplay() = %q, want suggestion bullet", got)
		}
	})
}

func TestDebugMode(t *testing.T) {
	// Not parallel: mutates package-level flag and config vars.
	origDebug, origRelease, origCfg := buildDebug, buildRelease, *cfg
	t.Cleanup(func() {
		buildDebug, buildRelease, *cfg = origDebug, origRelease, origCfg
	})

	tests := []struct {
		name      string
		flagDebug bool
		release   bool
		cfgDebug  bool
		want      bool
	}{
		{name: "defaults off", want: false},
		{name: "config enables", cfgDebug: true, want: true},
		{name: "flag enables", flagDebug: true, want: true},
		{name: "release overrides config", release: true, cfgDebug: true, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buildDebug = tt.flagDebug
			buildRelease = tt.release
			cfg.Debug = tt.cfgDebug
			if got := debugMode(); got != tt.want {
				t.Errorf("debugMode() = %v, want %v", got, tt.want)
			}
		})
	}
}
