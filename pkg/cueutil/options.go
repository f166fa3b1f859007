// SPDX-License-Identifier: MPL-2.0

package cueutil

// DefaultMaxFileSize is the maximum accepted input size when no override is
// given. Definition files are small; anything near this limit is almost
// certainly not one.
const DefaultMaxFileSize int64 = 4 << 20

type parseOptions struct {
	filename    string
	maxFileSize int64
	concrete    bool
}

func defaultOptions() parseOptions {
	return parseOptions{
		maxFileSize: DefaultMaxFileSize,
		concrete:    true,
	}
}

// Option configures ParseAndDecode.
type Option func(*parseOptions)

// WithFilename sets the filename used in error messages.
func WithFilename(filename string) Option {
	return func(o *parseOptions) {
		o.filename = filename
	}
}

// WithMaxFileSize overrides the input size limit.
func WithMaxFileSize(maxSize int64) Option {
	return func(o *parseOptions) {
		o.maxFileSize = maxSize
	}
}

// WithoutConcrete validates without requiring all fields to be concrete,
// for schemas whose fields are optional.
func WithoutConcrete() Option {
	return func(o *parseOptions) {
		o.concrete = false
	}
}
