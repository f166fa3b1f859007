// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"packsmith/internal/config"
	"packsmith/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// cfg holds the loaded configuration; defaults are used when no config
	// file exists or loading fails.
	cfg = config.DefaultConfig()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "packsmith",
		Short: "A declarative Minecraft datapack compiler",
		Long: TitleStyle.Render("packsmith") + SubtitleStyle.Render(" - A declarative Minecraft datapack compiler") + `

packsmith turns a declarative pack definition into a ready-to-ship
datapack. Functions, execute chains, tags, and tick/load hooks are
written once in CUE and compiled for any supported pack format, with
version differences (directory names, tag layout, command availability)
handled during compilation.

Packs are defined in 'packfile.cue' files and compiled to a directory
or a distributable zip archive.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'packsmith init' to scaffold a packfile.cue
  2. Describe namespaces, functions, and tags in CUE
  3. Run 'packsmith build' to compile the pack

` + SubtitleStyle.Render("Examples:") + `
  packsmith init --template full   Scaffold a packfile with examples
  packsmith check                  Validate the packfile without building
  packsmith build                  Compile the pack into ./dist
  packsmith build --zip            Compile into a zip archive
  packsmith inspect                Show the compiled pack layout`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/packsmith/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(inspectCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	loaded, err := config.NewProvider().Load(context.Background(), config.LoadOptions{
		ConfigFilePath: cfgFile,
	})
	if err != nil {
		// Config problems never block the run; defaults apply.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		if verbose {
			renderIssueHelp(os.Stderr, issue.ConfigLoadFailedId)
		}
		return
	}
	cfg = loaded

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.UI.Verbose
	}
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// newLogger returns a logger for compile progress, leveled by the verbose flag.
func newLogger() *log.Logger {
	opts := log.Options{Prefix: "packsmith"}
	if verbose {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, opts)
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
