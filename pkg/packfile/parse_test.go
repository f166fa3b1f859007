// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const minimalContent = `
name:   "demo"
format: 48

namespaces: {
	demo: {
		functions: {
			"main": {
				commands: [
					{raw: "say hi"},
				]
			}
		}
	}
}
`

func TestParseBytes_Minimal(t *testing.T) {
	t.Parallel()

	pf, err := ParseBytes([]byte(minimalContent), "packfile.cue")
	if err != nil {
		t.Fatalf("ParseBytes() returned error: %v", err)
	}

	if pf.Name != "demo" {
		t.Errorf("Name = %q, want demo", pf.Name)
	}
	if pf.Format != 48 {
		t.Errorf("Format = %d, want 48", pf.Format)
	}
	if pf.FilePath != "packfile.cue" {
		t.Errorf("FilePath = %q, want packfile.cue", pf.FilePath)
	}

	fn, ok := pf.Namespaces["demo"].Functions["main"]
	if !ok {
		t.Fatal("function demo:main missing from parse result")
	}
	if len(fn.Commands) != 1 || fn.Commands[0].Raw == nil || *fn.Commands[0].Raw != "say hi" {
		t.Errorf("unexpected commands: %+v", fn.Commands)
	}
}

func TestParseBytes_FullFeatures(t *testing.T) {
	t.Parallel()

	content := `
name:        "demo"
description: "test pack"
format:      26
supported_formats: {min: 18, max: 32}
template_dir: "template"

namespaces: {
	demo: {
		functions: {
			"main": {
				commands: [
					{comment: "entry point"},
					{debug: {raw: "say debugging"}},
					{group: [
						{raw: "say a"},
						{raw: "say b"},
					]},
					{execute: {
						as: "@a"
						at: "@s"
						if: {all_of: [
							{check: "entity @s[tag=ready]"},
							{not: {check: "block ~ ~-1 ~ minecraft:air"}},
						]}
						else: [{raw: "say not ready"}]
						run: {raw: "say ready"}
					}},
				]
			}
		}
		tags: [
			{
				registry: "block"
				path:     "breakable"
				replace:  true
				values: [
					{id: "minecraft:stone"},
					{id: "minecraft:dirt", required: false},
				]
			},
		]
	}
}

tick: ["demo:main"]
load: ["demo:main"]
`

	pf, err := ParseBytes([]byte(content), "packfile.cue")
	if err != nil {
		t.Fatalf("ParseBytes() returned error: %v", err)
	}

	if pf.Description != "test pack" {
		t.Errorf("Description = %q", pf.Description)
	}
	if pf.SupportedFormats == nil || pf.SupportedFormats.Min != 18 || pf.SupportedFormats.Max != 32 {
		t.Errorf("SupportedFormats = %+v", pf.SupportedFormats)
	}
	if pf.TemplateDir != "template" {
		t.Errorf("TemplateDir = %q", pf.TemplateDir)
	}

	cmds := pf.Namespaces["demo"].Functions["main"].Commands
	if len(cmds) != 4 {
		t.Fatalf("got %d commands, want 4", len(cmds))
	}
	exec := cmds[3].Execute
	if exec == nil {
		t.Fatal("commands[3] should be an execute")
	}
	if exec.As != "@a" || exec.At != "@s" {
		t.Errorf("execute modifiers = as %q at %q", exec.As, exec.At)
	}
	if exec.If == nil || len(exec.If.AllOf) != 2 {
		t.Errorf("execute condition = %+v", exec.If)
	}
	if len(exec.Else) != 1 {
		t.Errorf("execute else = %+v", exec.Else)
	}

	tags := pf.Namespaces["demo"].Tags
	if len(tags) != 1 || tags[0].Registry != "block" || !tags[0].Replace {
		t.Errorf("tags = %+v", tags)
	}
	if tags[0].Values[1].Required == nil || *tags[0].Values[1].Required {
		t.Error("second tag value should be optional")
	}
}

func TestParseBytes_SchemaViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{"missing name", `format: 48, namespaces: {}`},
		{"uppercase name", `name: "Demo", format: 48, namespaces: {}`},
		{"format out of range", `name: "demo", format: 99, namespaces: {}`},
		{"bad namespace key", `name: "demo", format: 48, namespaces: {"My Space": {}}`},
		{"bad tick ref", `name: "demo", format: 48, namespaces: {}, tick: ["no-colon"]`},
		{"unknown field", `name: "demo", format: 48, namespaces: {}, color: "red"`},
		{"empty tag id", `name: "demo", format: 48, namespaces: {demo: {tags: [{registry: "block", path: "x", values: [{id: ""}]}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := ParseBytes([]byte(tt.content), "packfile.cue"); err == nil {
				t.Error("ParseBytes() should reject content violating the schema")
			}
		})
	}
}

func TestParseBytes_ShapeViolations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		commands string
		sentinel error
	}{
		{
			"two command variants",
			`[{raw: "say hi", comment: "both"}]`,
			ErrCommandShape,
		},
		{
			"empty command",
			`[{}]`,
			ErrCommandShape,
		},
		{
			"execute without terminal",
			`[{execute: {as: "@a"}}]`,
			ErrExecuteShape,
		},
		{
			"execute with both terminals",
			`[{execute: {run: {raw: "say a"}, runs: [{raw: "say b"}]}}]`,
			ErrExecuteShape,
		},
		{
			"else without if",
			`[{execute: {else: [{raw: "say no"}], run: {raw: "say yes"}}}]`,
			ErrExecuteShape,
		},
		{
			"two condition variants",
			`[{execute: {if: {check: "entity @p", not: {check: "entity @p"}}, run: {raw: "say hi"}}}]`,
			ErrConditionShape,
		},
		{
			"empty all_of",
			`[{execute: {if: {all_of: []}, run: {raw: "say hi"}}}]`,
			ErrConditionShape,
		},
		{
			"nested group violation",
			`[{group: [{raw: "ok"}, {}]}]`,
			ErrCommandShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			content := `
name:   "demo"
format: 48
namespaces: {demo: {functions: {"main": {commands: ` + tt.commands + `}}}}
`
			_, err := ParseBytes([]byte(content), "packfile.cue")
			if err == nil {
				t.Fatal("ParseBytes() should reject malformed command shapes")
			}
			if !errors.Is(err, tt.sentinel) {
				t.Errorf("error should wrap %v, got: %v", tt.sentinel, err)
			}
		})
	}
}

func TestParseBytes_ShapeErrorNamesLocation(t *testing.T) {
	t.Parallel()

	content := `
name:   "demo"
format: 48
namespaces: {demo: {functions: {"main": {commands: [{raw: "ok"}, {group: [{}]}]}}}}
`
	_, err := ParseBytes([]byte(content), "packfile.cue")
	if err == nil {
		t.Fatal("expected shape error")
	}

	var shapeErr *CommandShapeError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("error should be *CommandShapeError, got: %T", err)
	}
	if !strings.Contains(shapeErr.Where, `commands[1].group[0]`) {
		t.Errorf("Where = %q, should name the nested location", shapeErr.Where)
	}
}

func TestParse_File(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, DefaultFileName)
	if err := os.WriteFile(path, []byte(minimalContent), 0o644); err != nil {
		t.Fatal(err)
	}

	pf, err := Parse(path)
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}
	if pf.FilePath != path {
		t.Errorf("FilePath = %q, want %q", pf.FilePath, path)
	}
}

func TestParse_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := Parse(filepath.Join(t.TempDir(), "nope.cue"))
	if err == nil {
		t.Fatal("Parse() should fail for a missing file")
	}
}
