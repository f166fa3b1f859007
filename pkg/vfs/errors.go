// SPDX-License-Identifier: MPL-2.0

package vfs

import (
	"errors"
	"fmt"
)

var (
	// ErrPathCollision is the sentinel error wrapped by PathCollisionError.
	ErrPathCollision = errors.New("path collision")

	// ErrTemplateSource is the sentinel error wrapped by TemplateSourceError.
	ErrTemplateSource = errors.New("invalid template source")
)

type (
	// PathCollisionError is returned when two non-mergeable insertions
	// target the same path, or when a path segment is occupied by a node of
	// the other kind.
	PathCollisionError struct {
		// Path is the colliding path relative to the insertion root.
		Path string
	}

	// TemplateSourceError is returned by FromDir when the source path does
	// not exist or is not a directory.
	TemplateSourceError struct {
		// Path is the offending source path.
		Path string
		// Err is the underlying cause, if any.
		Err error
	}

	// WriteError reports the path at which materialization stopped. The
	// underlying I/O error is preserved unchanged; retrying is the caller's
	// decision.
	WriteError struct {
		// Path is the file or directory that failed to write.
		Path string
		// Err is the error from the storage layer.
		Err error
	}
)

// Error implements the error interface.
func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("path collision at %q", e.Path)
}

// Unwrap returns ErrPathCollision so callers can use errors.Is.
func (e *PathCollisionError) Unwrap() error { return ErrPathCollision }

// Error implements the error interface.
func (e *TemplateSourceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("template source %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("template source %q is not a directory", e.Path)
}

// Unwrap returns ErrTemplateSource so callers can use errors.Is.
func (e *TemplateSourceError) Unwrap() error { return ErrTemplateSource }

// Error implements the error interface.
func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *WriteError) Unwrap() error { return e.Err }
