// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"packsmith/pkg/datapack"

	"github.com/spf13/cobra"
)

// checkCmd validates a packfile without writing anything.
var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a packfile without building it",
	Long: `Validate a packfile without writing any output.

Parsing, schema validation, command shape checks, and format
compatibility checks all run exactly as they do for 'build'. The
compiled tree is discarded.

Examples:
  packsmith check                    Validate ./packfile.cue
  packsmith check ./packs/arena      Validate a packfile elsewhere`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	path, err := resolvePackfile(args)
	if err != nil {
		return failRun(cmd, err)
	}

	d, _, err := loadPack(path)
	if err != nil {
		return failRun(cmd, err)
	}

	// Compile to surface format compatibility problems that only show up
	// during lowering, like commands outside the supported range.
	if _, err := d.Compile(datapack.CompileOptions{Debug: debugMode()}); err != nil {
		return failRun(cmd, err)
	}

	fmt.Printf("%s %s is valid (pack format %d)\n", SuccessStyle.Render("✓"), PathStyle.Render(path), d.Format())
	return nil
}
