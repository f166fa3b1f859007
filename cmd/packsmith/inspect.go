// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"strings"

	"packsmith/pkg/datapack"

	"github.com/spf13/cobra"
)

var (
	inspectContent bool
	inspectDebug   bool

	// inspectCmd compiles a packfile and prints the resulting layout.
	inspectCmd = &cobra.Command{
		Use:   "inspect [path]",
		Short: "Show the compiled layout of a packfile",
		Long: `Compile a packfile in memory and list every file it would produce.

Nothing is written to disk. This is useful for checking how functions,
tags, and synthesized conditional branches end up laid out for the
targeted pack format.

Examples:
  packsmith inspect                  Inspect ./packfile.cue
  packsmith inspect --content        Include file contents in the listing`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInspect,
	}
)

func init() {
	inspectCmd.Flags().BoolVarP(&inspectContent, "content", "c", false, "print file contents below each entry")
	inspectCmd.Flags().BoolVar(&inspectDebug, "debug", false, "keep debug commands in the compiled pack")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, err := resolvePackfile(args)
	if err != nil {
		return failRun(cmd, err)
	}

	d, _, err := loadPack(path)
	if err != nil {
		return failRun(cmd, err)
	}

	root, err := d.Compile(datapack.CompileOptions{Debug: inspectDebug || cfg.Debug})
	if err != nil {
		return failRun(cmd, err)
	}

	stdout := cmd.OutOrStdout()
	fmt.Fprintln(stdout, TitleStyle.Render(d.Name())+SubtitleStyle.Render(fmt.Sprintf(" (pack format %d)", d.Format())))
	fmt.Fprintln(stdout)

	entries := root.Flatten()
	for _, entry := range entries {
		content := entry.File.Content()
		fmt.Fprintf(stdout, "  %s %s\n", PathStyle.Render(entry.Path), SubtitleStyle.Render(fmt.Sprintf("(%d bytes)", len(content))))
		if inspectContent {
			for _, line := range splitLines(content) {
				fmt.Fprintf(stdout, "      %s\n", VerboseStyle.Render(line))
			}
		}
	}

	fmt.Fprintln(stdout)
	fmt.Fprintf(stdout, "%d file(s)\n", len(entries))
	return nil
}

// splitLines splits file content for indented display, dropping a single
// trailing newline so empty last lines do not render.
func splitLines(content []byte) []string {
	text := strings.TrimSuffix(string(content), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
