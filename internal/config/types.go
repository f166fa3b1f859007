// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"strings"

	"packsmith/pkg/packformat"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidOutputDirPath is returned when an OutputDirPath value is whitespace-only.
	ErrInvalidOutputDirPath = errors.New("invalid output dir path")
	// ErrInvalidTemplateDirPath is returned when a TemplateDirPath value is whitespace-only.
	ErrInvalidTemplateDirPath = errors.New("invalid template dir path")
	// ErrInvalidDefaultPackFormat is returned when a default pack format is out of range.
	ErrInvalidDefaultPackFormat = errors.New("invalid default pack format")
	// ErrInvalidUIConfig is the sentinel error wrapped by InvalidUIConfigError.
	ErrInvalidUIConfig = errors.New("invalid UI config")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// OutputDirPath represents a filesystem path where compiled packs are written.
	// The zero value ("") is valid and means "use the built-in default directory".
	// Non-zero values must not be whitespace-only.
	OutputDirPath string

	// InvalidOutputDirPathError is returned when an OutputDirPath value is
	// non-empty but whitespace-only.
	InvalidOutputDirPathError struct {
		Value OutputDirPath
	}

	// TemplateDirPath represents a filesystem path to a pack template directory.
	// The zero value ("") is valid and means "build without templates".
	// Non-zero values must not be whitespace-only.
	TemplateDirPath string

	// InvalidTemplateDirPathError is returned when a TemplateDirPath value is
	// non-empty but whitespace-only.
	InvalidTemplateDirPathError struct {
		Value TemplateDirPath
	}

	// InvalidDefaultPackFormatError is returned when a default pack format falls
	// outside the supported range. It wraps ErrInvalidDefaultPackFormat.
	InvalidDefaultPackFormatError struct {
		Value packformat.Format
	}

	// InvalidUIConfigError is returned when a UIConfig has invalid fields.
	// It wraps ErrInvalidUIConfig for errors.Is() compatibility and collects
	// field-level validation errors.
	InvalidUIConfigError struct {
		FieldErrors []error
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sub-components.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// OutputDir is where compiled packs are written when --output is not given.
		OutputDir OutputDirPath `json:"output_dir" mapstructure:"output_dir"`
		// TemplateDir points to a directory whose files are copied into every pack.
		TemplateDir TemplateDirPath `json:"template_dir" mapstructure:"template_dir"`
		// DefaultPackFormat is used when a packfile omits its format.
		DefaultPackFormat packformat.Format `json:"default_pack_format" mapstructure:"default_pack_format"`
		// ZipComment is embedded as the archive comment of zipped packs.
		ZipComment string `json:"zip_comment" mapstructure:"zip_comment"`
		// Debug keeps debug commands in compiled output.
		Debug bool `json:"debug" mapstructure:"debug"`
		// UI configures the user interface
		UI UIConfig `json:"ui" mapstructure:"ui"`
	}

	// UIConfig configures the user interface.
	UIConfig struct {
		// ColorScheme sets the color scheme
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables verbose output
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}
)

// IsValid returns whether the UIConfig has valid fields.
// It delegates to ColorScheme.IsValid(); bool fields need no validation.
func (c UIConfig) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidUIConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidUIConfigError.
func (e *InvalidUIConfigError) Error() string {
	return fmt.Sprintf("invalid UI config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidUIConfig for errors.Is() compatibility.
func (e *InvalidUIConfigError) Unwrap() error { return ErrInvalidUIConfig }

// IsValid returns whether the Config has valid fields.
// It delegates to OutputDir.IsValid(), TemplateDir.IsValid(), the pack
// format range check, and UI.IsValid(). Bool fields need no validation.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.OutputDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.TemplateDir.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if c.DefaultPackFormat < packformat.Earliest || c.DefaultPackFormat > packformat.Latest {
		errs = append(errs, &InvalidDefaultPackFormatError{Value: c.DefaultPackFormat})
	}
	if valid, fieldErrs := c.UI.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config: %d field error(s)", len(e.FieldErrors))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// String returns the string representation of the OutputDirPath.
func (p OutputDirPath) String() string { return string(p) }

// IsValid returns whether the OutputDirPath is valid.
// The zero value ("") is valid (means "use default output directory").
// Non-zero values must not be whitespace-only.
func (p OutputDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidOutputDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidOutputDirPathError.
func (e *InvalidOutputDirPathError) Error() string {
	return fmt.Sprintf("invalid output dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidOutputDirPath for errors.Is() compatibility.
func (e *InvalidOutputDirPathError) Unwrap() error { return ErrInvalidOutputDirPath }

// String returns the string representation of the TemplateDirPath.
func (p TemplateDirPath) String() string { return string(p) }

// IsValid returns whether the TemplateDirPath is valid.
// The zero value ("") is valid (means "build without templates").
// Non-zero values must not be whitespace-only.
func (p TemplateDirPath) IsValid() (bool, []error) {
	if p == "" {
		return true, nil
	}
	if strings.TrimSpace(string(p)) == "" {
		return false, []error{&InvalidTemplateDirPathError{Value: p}}
	}
	return true, nil
}

// Error implements the error interface for InvalidTemplateDirPathError.
func (e *InvalidTemplateDirPathError) Error() string {
	return fmt.Sprintf("invalid template dir path %q: non-empty value must not be whitespace-only", e.Value)
}

// Unwrap returns ErrInvalidTemplateDirPath for errors.Is() compatibility.
func (e *InvalidTemplateDirPathError) Unwrap() error { return ErrInvalidTemplateDirPath }

// Error implements the error interface for InvalidDefaultPackFormatError.
func (e *InvalidDefaultPackFormatError) Error() string {
	return fmt.Sprintf("invalid default pack format %d (valid: %d through %d)",
		e.Value, packformat.Earliest, packformat.Latest)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidDefaultPackFormatError) Unwrap() error {
	return ErrInvalidDefaultPackFormat
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns the sentinel error for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error {
	return ErrInvalidColorScheme
}

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		OutputDir:         "dist",
		TemplateDir:       "", // No templates unless configured
		DefaultPackFormat: packformat.Latest,
		ZipComment:        "",
		Debug:             false,
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
	}
}
