// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"packsmith/internal/issue"
	"packsmith/pkg/datapack"

	"github.com/spf13/cobra"
)

var (
	buildOutput  string
	buildZip     bool
	buildDebug   bool
	buildRelease bool

	// buildCmd compiles a packfile into a datapack on disk.
	buildCmd = &cobra.Command{
		Use:   "build [path]",
		Short: "Compile a packfile into a datapack",
		Long: `Compile a packfile into a datapack directory or zip archive.

Without arguments, looks for 'packfile.cue' in the current directory.
A path argument may name either a packfile or a directory containing one.

The pack is written below the output directory (from the config file or
--output), as '<output>/<name>/' or '<output>/<name>.zip' with --zip.

Examples:
  packsmith build                    Compile ./packfile.cue into ./dist
  packsmith build ./packs/arena      Compile a packfile elsewhere
  packsmith build --zip              Produce a distributable zip archive
  packsmith build --debug            Keep debug commands in the output`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBuild,
	}
)

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (default from config, 'dist')")
	buildCmd.Flags().BoolVarP(&buildZip, "zip", "z", false, "write a zip archive instead of a directory")
	buildCmd.Flags().BoolVar(&buildDebug, "debug", false, "keep debug commands in the compiled pack")
	buildCmd.Flags().BoolVar(&buildRelease, "release", false, "strip debug commands even when the config enables them")
	buildCmd.MarkFlagsMutuallyExclusive("debug", "release")
}

func runBuild(cmd *cobra.Command, args []string) error {
	path, err := resolvePackfile(args)
	if err != nil {
		return failRun(cmd, err)
	}

	d, _, err := loadPack(path)
	if err != nil {
		return failRun(cmd, err)
	}

	logger := newLogger()
	logger.Debug("compiling pack", "name", d.Name(), "format", d.Format())

	root, err := d.Compile(datapack.CompileOptions{Debug: debugMode()})
	if err != nil {
		return failRun(cmd, err)
	}
	logger.Debug("compiled pack", "files", len(root.Flatten()))

	outDir := buildOutput
	if outDir == "" {
		outDir = cfg.OutputDir.String()
	}

	if buildZip {
		target := filepath.Join(outDir, d.Name()+".zip")
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return failRun(cmd, issue.WrapWithContext(err, "create output directory", outDir))
		}
		if err := root.ZipWithComment(target, cfg.ZipComment); err != nil {
			return failRun(cmd, issue.WrapWithContext(err, "write archive", target))
		}
		fmt.Printf("%s Compiled %s to %s\n", SuccessStyle.Render("✓"), d.Name(), PathStyle.Render(target))
		return nil
	}

	target := filepath.Join(outDir, d.Name())
	if err := root.Place(target); err != nil {
		return failRun(cmd, issue.WrapWithContext(err, "write output", target))
	}
	fmt.Printf("%s Compiled %s to %s\n", SuccessStyle.Render("✓"), d.Name(), PathStyle.Render(target))
	return nil
}

// debugMode resolves the effective debug setting from flags and config.
// Flags win over the config file; --release forces debug off.
func debugMode() bool {
	switch {
	case buildDebug:
		return true
	case buildRelease:
		return false
	default:
		return cfg.Debug
	}
}
