// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"errors"
	"fmt"

	"packsmith/pkg/packformat"
)

// Sentinel errors for matching with errors.Is.
var (
	// ErrInvalidName marks a namespace name or function path that does
	// not match the allowed character set.
	ErrInvalidName = errors.New("invalid name")
	// ErrReservedPath marks a user function path inside the subfolder
	// reserved for synthesized functions.
	ErrReservedPath = errors.New("reserved function path")
	// ErrUnsupportedCommand marks a command that is not available across
	// the whole supported format range.
	ErrUnsupportedCommand = errors.New("unsupported command")
	// ErrTagMerge marks a tag contribution that cannot be combined with
	// the file already staged at its path.
	ErrTagMerge = errors.New("tag merge conflict")
)

// InvalidNameError reports a malformed namespace name or function path.
type InvalidNameError struct {
	Kind string
	Name string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Name, ErrInvalidName)
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// ReservedPathError reports a user function declared under the synthesized
// function subfolder.
type ReservedPathError struct {
	Path string
}

func (e *ReservedPathError) Error() string {
	return fmt.Sprintf("function path %q: %v: %q is reserved for generated functions", e.Path, ErrReservedPath, synthesizedPrefix)
}

func (e *ReservedPathError) Unwrap() error { return ErrReservedPath }

// UnsupportedCommandError reports a command outside the pack's supported
// format range. Index is the command's position in the function body.
type UnsupportedCommandError struct {
	Namespace string
	Path      string
	Index     int
	Supported packformat.Range
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("%s for formats %s: function %s:%s, command %d", ErrUnsupportedCommand, e.Supported, e.Namespace, e.Path, e.Index)
}

func (e *UnsupportedCommandError) Unwrap() error { return ErrUnsupportedCommand }

// TagMergeError reports incompatible content at a tag path.
type TagMergeError struct {
	Reason string
}

func (e *TagMergeError) Error() string {
	return fmt.Sprintf("%v: %s", ErrTagMerge, e.Reason)
}

func (e *TagMergeError) Unwrap() error { return ErrTagMerge }
