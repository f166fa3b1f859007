// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for packsmith.
//
// This package implements the Cobra command hierarchy for the packsmith
// CLI: the root command plus subcommands for building, checking,
// scaffolding, and inspecting packfiles.
package cmd
