// SPDX-License-Identifier: MPL-2.0

package packformat

import (
	"errors"
	"testing"
)

func TestForFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		format      Format
		wantErr     bool
		wantMode    ConditionalMode
		wantFnDir   string
	}{
		{name: "below compiler range", format: 3, wantErr: true},
		{name: "above compiler range", format: 49, wantErr: true},
		{name: "earliest supported", format: 4, wantMode: ModeStorageFlag, wantFnDir: "functions"},
		{name: "last storage-flag format", format: 19, wantMode: ModeStorageFlag, wantFnDir: "functions"},
		{name: "first direct-return format", format: 20, wantMode: ModeDirectReturn, wantFnDir: "functions"},
		{name: "last plural-directory format", format: 44, wantMode: ModeDirectReturn, wantFnDir: "functions"},
		{name: "first singular-directory format", format: 45, wantMode: ModeDirectReturn, wantFnDir: "function"},
		{name: "latest supported", format: 48, wantMode: ModeDirectReturn, wantFnDir: "function"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			strategy, err := ForFormat(tt.format)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Fatalf("ForFormat(%d) error = %v, want ErrUnsupportedFormat", tt.format, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ForFormat(%d) error = %v", tt.format, err)
			}
			if strategy.Conditionals != tt.wantMode {
				t.Errorf("Conditionals = %v, want %v", strategy.Conditionals, tt.wantMode)
			}
			if strategy.FunctionDir != tt.wantFnDir {
				t.Errorf("FunctionDir = %q, want %q", strategy.FunctionDir, tt.wantFnDir)
			}
		})
	}
}

func TestRangeValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		r       Range
		wantErr bool
	}{
		{name: "ordinary range", r: RangeOf(16, 20)},
		{name: "single format", r: RangeOf(18, 18)},
		{name: "inverted bounds", r: RangeOf(20, 16), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.r.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidRange) {
				t.Fatalf("Validate() error = %v, want ErrInvalidRange", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("Validate() error = %v", err)
			}
		})
	}
}

func TestRangeContains(t *testing.T) {
	t.Parallel()

	r := RangeOf(16, 20)
	for format := Format(14); format <= 22; format++ {
		want := format >= 16 && format <= 20
		if got := r.Contains(format); got != want {
			t.Errorf("Contains(%d) = %v, want %v", format, got, want)
		}
	}
}

func TestCommandValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		command   string
		supported Range
		want      bool
	}{
		{name: "evergreen command", command: "kill @p", supported: RangeOf(4, 48), want: true},
		{name: "tag inside its range", command: "tag @s add foo", supported: RangeOf(6, 9), want: true},
		{name: "tag before introduction", command: "tag @s add foo", supported: RangeOf(2, 5), want: false},
		{name: "return too early", command: "return 1", supported: RangeOf(12, 20), want: false},
		{name: "return in range", command: "return 1", supported: RangeOf(15, 20), want: true},
		{name: "replaceitem after removal", command: "replaceitem block ~ ~ ~", supported: RangeOf(7, 10), want: false},
		{name: "unknown command accepted", command: "frobnicate hard", supported: RangeOf(4, 48), want: true},
		{name: "empty command accepted", command: "   ", supported: RangeOf(4, 48), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := CommandValid(tt.command, tt.supported); got != tt.want {
				t.Errorf("CommandValid(%q, %v) = %v, want %v", tt.command, tt.supported, got, tt.want)
			}
		})
	}
}

func TestUnsupportedFormatErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *UnsupportedFormatError
		want string
	}{
		{
			name: "compiler range",
			err:  &UnsupportedFormatError{Format: 49, CompilerRange: true},
			want: "pack format 49 outside compiler range [4, 48]",
		},
		{
			name: "declared supported range",
			err:  &UnsupportedFormatError{Format: 10, Supported: RangeOf(12, 14)},
			want: "pack format 10 outside supported range [12, 14]",
		},
		{
			name: "zero-valued supported range stays a pack range",
			err:  &UnsupportedFormatError{Format: 6, Supported: RangeOf(0, 0)},
			want: "pack format 6 outside supported range [0, 0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
