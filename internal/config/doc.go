// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/packsmith/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/packsmith/config.cue on macOS, %APPDATA%\packsmith\config.cue
// on Windows). The package provides type-safe configuration access and covers output
// location, default pack format, template directory, and UI settings.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
