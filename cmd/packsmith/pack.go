// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"packsmith/internal/issue"
	"packsmith/pkg/datapack"
	"packsmith/pkg/packfile"
	"packsmith/pkg/types"

	"github.com/spf13/cobra"
)

// resolvePackfile turns the optional positional argument into a packfile
// path. No argument means the current directory; a directory argument is
// searched for the default file name; a file argument is used as-is.
func resolvePackfile(args []string) (string, error) {
	target := "."
	if len(args) > 0 {
		target = args[0]
	}

	info, err := os.Stat(target)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("locate packfile").
			WithResource(target).
			WithSuggestion("Check that the path exists").
			WithSuggestion("Run 'packsmith init' to create a new packfile").
			Wrap(err).
			BuildError()
	}
	if info.IsDir() {
		target = filepath.Join(target, packfile.DefaultFileName)
		if _, err := os.Stat(target); err != nil {
			return "", issue.NewErrorContext().
				WithOperation("locate packfile").
				WithResource(target).
				WithSuggestion("Run 'packsmith init' in that directory to create one").
				Wrap(err).
				BuildError()
		}
	}
	return target, nil
}

// loadPack parses the packfile at path and converts it into the datapack
// model, substituting the configured default pack format when the packfile
// declares none and layering the template folder when one is configured.
func loadPack(path string) (*datapack.Datapack, *packfile.Packfile, error) {
	pf, err := packfile.Parse(path)
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("load packfile").
			WithResource(path).
			WithSuggestion("Fix the reported location and retry").
			Wrap(err).
			BuildError()
	}

	if pf.Format == 0 {
		pf.Format = cfg.DefaultPackFormat
	}

	d, err := pf.Datapack()
	if err != nil {
		return nil, nil, issue.NewErrorContext().
			WithOperation("load packfile").
			WithResource(path).
			Wrap(err).
			BuildError()
	}

	if tmpl, base := templateDirFor(pf, path); tmpl != "" {
		dir := tmpl
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(base, dir)
		}
		if _, err := d.WithTemplateFolder(dir); err != nil {
			return nil, nil, issue.NewErrorContext().
				WithOperation("read template directory").
				WithResource(dir).
				WithSuggestion("Check the template_dir setting").
				Wrap(err).
				BuildError()
		}
	}

	return d, pf, nil
}

// templateDirFor picks the template directory and the base its relative
// form resolves against. The packfile's own template_dir is relative to the
// packfile; the configured fallback is relative to the working directory.
func templateDirFor(pf *packfile.Packfile, path string) (dir, base string) {
	if pf.TemplateDir != "" {
		return pf.TemplateDir, filepath.Dir(path)
	}
	return cfg.TemplateDir.String(), "."
}

// failRun prints a styled error and converts it into a silent non-zero exit.
// In verbose mode, the issue catalog entry for the failure class is rendered
// below the message.
func failRun(cmd *cobra.Command, err error) error {
	stderr := cmd.ErrOrStderr()
	fmt.Fprintln(stderr, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))
	if verbose {
		renderIssueHelp(stderr, issueIDFor(err))
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return &ExitError{Code: types.ExitFailure, Err: err}
}
