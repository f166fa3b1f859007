// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is checks. The typed errors below wrap these
// and carry the offending location.
var (
	// ErrCommandShape flags a command definition that does not set exactly
	// one variant.
	ErrCommandShape = errors.New("command must set exactly one variant")

	// ErrConditionShape flags a condition definition that does not set
	// exactly one variant.
	ErrConditionShape = errors.New("condition must set exactly one variant")

	// ErrExecuteShape flags a malformed execute chain.
	ErrExecuteShape = errors.New("malformed execute chain")

	// ErrUnknownTemplate flags an unrecognized starter template name.
	ErrUnknownTemplate = errors.New("unknown packfile template")

	// ErrInvalidPackName flags a pack name Generate cannot use.
	ErrInvalidPackName = errors.New("invalid pack name")
)

type (
	// CommandShapeError reports a command with zero or multiple variants set.
	CommandShapeError struct {
		Where string
		Count int
	}

	// ConditionShapeError reports a condition with zero or multiple variants set.
	ConditionShapeError struct {
		Where string
		Count int
	}

	// ExecuteShapeError reports a structurally invalid execute chain.
	ExecuteShapeError struct {
		Where  string
		Reason string
	}

	// UnknownTemplateError reports a starter template name Generate does
	// not know.
	UnknownTemplateError struct {
		Name string
	}

	// InvalidPackNameError reports a pack name that is not a valid
	// namespace identifier.
	InvalidPackNameError struct {
		Name string
	}
)

func (e *CommandShapeError) Error() string {
	return fmt.Sprintf("%s: %d of raw/comment/debug/group/execute set, want exactly 1", e.Where, e.Count)
}

func (e *CommandShapeError) Unwrap() error { return ErrCommandShape }

func (e *ConditionShapeError) Error() string {
	return fmt.Sprintf("%s: %d of check/not/all_of/any_of set, want exactly 1", e.Where, e.Count)
}

func (e *ConditionShapeError) Unwrap() error { return ErrConditionShape }

func (e *ExecuteShapeError) Error() string {
	return fmt.Sprintf("%s: %s", e.Where, e.Reason)
}

func (e *ExecuteShapeError) Unwrap() error { return ErrExecuteShape }

func (e *UnknownTemplateError) Error() string {
	return fmt.Sprintf("unknown packfile template %q (valid: default, minimal, full)", e.Name)
}

func (e *UnknownTemplateError) Unwrap() error { return ErrUnknownTemplate }

func (e *InvalidPackNameError) Error() string {
	return fmt.Sprintf("invalid pack name %q: must match [a-z0-9_.-]+", e.Name)
}

func (e *InvalidPackNameError) Unwrap() error { return ErrInvalidPackName }
