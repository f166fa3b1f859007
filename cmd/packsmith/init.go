// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"packsmith/pkg/packfile"

	"github.com/spf13/cobra"
)

var (
	initForce    bool
	initTemplate string
	initName     string

	// initCmd creates a new packfile
	initCmd = &cobra.Command{
		Use:   "init [file]",
		Short: "Create a new packfile in the current directory",
		Long: `Create a new packfile in the current directory with example content.

This command generates a starter packfile.cue with a sample namespace
and function to help you get started quickly. The pack name defaults to
the current directory name, lowercased.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite existing packfile")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", packfile.TemplateDefault,
		fmt.Sprintf("template to use (%s)", strings.Join(packfile.Templates(), ", ")))
	initCmd.Flags().StringVarP(&initName, "name", "n", "", "pack name (default is the current directory name)")
}

func runInit(cmd *cobra.Command, args []string) error {
	filename := packfile.DefaultFileName
	if len(args) > 0 {
		filename = args[0]
	}

	// Check if file exists
	if _, err := os.Stat(filename); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", filename)
	}

	name := initName
	if name == "" {
		name = defaultPackName()
	}

	content, err := packfile.Generate(initTemplate, name)
	if err != nil {
		return failRun(cmd, err)
	}

	// Write file
	if err := os.WriteFile(filename, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	absPath, _ := filepath.Abs(filename)
	fmt.Printf("%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Println()
	fmt.Println(SubtitleStyle.Render("Next steps:"))
	fmt.Println("  1. Edit the packfile to describe your functions and tags")
	fmt.Println("  2. Run 'packsmith check' to validate the pack")
	fmt.Println("  3. Run 'packsmith build' to compile it")

	return nil
}

// defaultPackName derives a valid pack name from the working directory,
// falling back to a fixed name when the directory name cannot be used.
func defaultPackName() string {
	wd, err := os.Getwd()
	if err != nil {
		return "mypack"
	}
	name := strings.ToLower(filepath.Base(wd))
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == "_" {
		return "mypack"
	}
	return name
}
