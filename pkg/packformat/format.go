// SPDX-License-Identifier: MPL-2.0

// Package packformat knows which pack format versions this compiler
// understands and what each version changes about generated output.
//
// All version-dependent behavior is captured once, up front, in a Strategy
// value selected from the declared format. The lowering engine receives that
// Strategy and never inspects the raw format number again, which keeps
// version branching out of the codegen logic.
package packformat

import (
	"errors"
	"fmt"
)

// Format is a data pack format version as declared in pack.mcmeta.
type Format int

const (
	// Earliest is the oldest pack format this compiler understands.
	Earliest Format = 4
	// Latest is the newest pack format this compiler understands.
	Latest Format = 48

	// directReturnFormat is the first format with the `return` command,
	// allowing conditionals to short-circuit in a single composed line.
	directReturnFormat Format = 20
	// singularDirFormat is the first format using singular resource
	// directory names (function/ instead of functions/).
	singularDirFormat Format = 45
)

// ConditionalMode selects how the lowering engine expresses a conditional
// whose outcome must flow back to the caller (else branches and disjunctive
// conditions).
type ConditionalMode int

const (
	// ModeStorageFlag stages the boolean outcome in data storage and
	// performs a second check against that flag. Required below format 20,
	// which lacks a native conditional-return command.
	ModeStorageFlag ConditionalMode = iota
	// ModeDirectReturn composes the condition and body into single
	// `execute ... run return run ...` lines.
	ModeDirectReturn
)

// Strategy is the codegen policy for one declared format. It is a pure
// value: construct it once per compile via ForFormat and pass it down.
type Strategy struct {
	// Format is the declared format the strategy was built from.
	Format Format
	// Conditionals selects the conditional codegen mode.
	Conditionals ConditionalMode
	// FunctionDir is the per-namespace directory functions compile into
	// ("functions" before format 45, "function" from 45 on).
	FunctionDir string
	// FunctionTagDir is the registry directory for function tags below
	// data/<ns>/tags/.
	FunctionTagDir string
}

// ForFormat builds the Strategy for a declared format. It fails with an
// UnsupportedFormatError when the format lies outside [Earliest, Latest].
func ForFormat(format Format) (Strategy, error) {
	if format < Earliest || format > Latest {
		return Strategy{}, &UnsupportedFormatError{Format: format, CompilerRange: true}
	}

	strategy := Strategy{
		Format:         format,
		Conditionals:   ModeStorageFlag,
		FunctionDir:    "functions",
		FunctionTagDir: "functions",
	}
	if format >= directReturnFormat {
		strategy.Conditionals = ModeDirectReturn
	}
	if format >= singularDirFormat {
		strategy.FunctionDir = "function"
		strategy.FunctionTagDir = "function"
	}
	return strategy, nil
}

// Range is an inclusive interval of pack formats.
type Range struct {
	Min Format
	Max Format
}

// RangeOf builds the inclusive range [min, max].
func RangeOf(min, max Format) Range { return Range{Min: min, Max: max} }

// Validate returns an InvalidRangeError when the range is empty
// (Min above Max).
func (r Range) Validate() error {
	if r.Min > r.Max {
		return &InvalidRangeError{Range: r}
	}
	return nil
}

// Contains reports whether format lies inside the range.
func (r Range) Contains(format Format) bool {
	return format >= r.Min && format <= r.Max
}

// String renders the range as "[min, max]".
func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

var (
	// ErrUnsupportedFormat is the sentinel error wrapped by
	// UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("unsupported pack format")

	// ErrInvalidRange is the sentinel error wrapped by InvalidRangeError.
	ErrInvalidRange = errors.New("invalid format range")
)

type (
	// UnsupportedFormatError is returned when a declared format lies
	// outside the range this compiler understands, or outside a pack's own
	// declared supported range.
	UnsupportedFormatError struct {
		// Format is the offending declared format.
		Format Format
		// Supported is the pack's declared range the format fell outside
		// of. Ignored when CompilerRange is set.
		Supported Range
		// CompilerRange marks a format outside [Earliest, Latest] rather
		// than outside a declared supported range.
		CompilerRange bool
	}

	// InvalidRangeError is returned when a supported-format range is
	// malformed (lower bound above upper bound).
	InvalidRangeError struct {
		Range Range
	}
)

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	if e.CompilerRange {
		return fmt.Sprintf("pack format %d outside compiler range %s", e.Format, RangeOf(Earliest, Latest))
	}
	return fmt.Sprintf("pack format %d outside supported range %s", e.Format, e.Supported)
}

// Unwrap returns ErrUnsupportedFormat so callers can use errors.Is.
func (e *UnsupportedFormatError) Unwrap() error { return ErrUnsupportedFormat }

// Error implements the error interface.
func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("format range %s is empty", e.Range)
}

// Unwrap returns ErrInvalidRange so callers can use errors.Is.
func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }
