// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"packsmith/internal/config"
	"packsmith/internal/issue"
	"packsmith/pkg/datapack"
	"packsmith/pkg/packfile"
	"packsmith/pkg/packformat"
	"packsmith/pkg/vfs"
)

// issueIDFor maps an error chain onto its issue catalog entry. Zero means
// no catalog entry covers the failure class. Permission problems are
// classified first so a write failure caused by permissions gets the
// permission entry rather than the generic write one.
func issueIDFor(err error) issue.Id {
	var nameErr *datapack.InvalidNameError
	var writeErr *vfs.WriteError

	switch {
	case errors.Is(err, fs.ErrPermission):
		return issue.PermissionDeniedId
	case errors.Is(err, vfs.ErrTemplateSource):
		return issue.TemplateDirNotFoundId
	case errors.As(err, &writeErr):
		return issue.OutputWriteFailedId
	case errors.Is(err, packformat.ErrUnsupportedFormat),
		errors.Is(err, packformat.ErrInvalidRange):
		return issue.UnsupportedFormatId
	case errors.Is(err, datapack.ErrReservedPath):
		return issue.ReservedFunctionPathId
	case errors.Is(err, datapack.ErrUnsupportedCommand):
		return issue.CommandNotInFormatId
	case errors.Is(err, datapack.ErrTagMerge),
		errors.Is(err, vfs.ErrPathCollision):
		return issue.TagMergeConflictId
	case errors.As(err, &nameErr):
		if nameErr.Kind == "namespace" {
			return issue.InvalidNamespaceNameId
		}
		return issue.InvalidFunctionPathId
	case errors.Is(err, packfile.ErrCommandShape),
		errors.Is(err, packfile.ErrConditionShape),
		errors.Is(err, packfile.ErrExecuteShape):
		return issue.PackfileParseErrorId
	case errors.Is(err, fs.ErrNotExist):
		return issue.PackfileNotFoundId
	default:
		return 0
	}
}

// renderIssueHelp renders the catalog entry for id below the error message.
// A failed render is reported but never fails the command itself.
func renderIssueHelp(w io.Writer, id issue.Id) {
	if id == 0 {
		return
	}
	entry := issue.Get(id)
	if entry == nil {
		return
	}
	rendered, err := entry.Render(renderStyle())
	if err != nil {
		newLogger().Warn("failed to render issue help", "issue", id, "error", err)
		return
	}
	fmt.Fprint(w, rendered)
}

// renderStyle maps the configured color scheme onto a glamour style name.
func renderStyle() string {
	if cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
