// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"fmt"
	"regexp"

	"packsmith/pkg/packformat"
)

// Starter template names accepted by Generate.
const (
	TemplateDefault = "default"
	TemplateMinimal = "minimal"
	TemplateFull    = "full"
)

// Templates lists the starter template names in presentation order.
func Templates() []string {
	return []string{TemplateDefault, TemplateMinimal, TemplateFull}
}

var packNamePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)

// Generate renders a starter packfile for the given template and pack
// name. The output parses cleanly with ParseBytes.
func Generate(template, name string) (string, error) {
	if !packNamePattern.MatchString(name) {
		return "", &InvalidPackNameError{Name: name}
	}

	switch template {
	case TemplateDefault:
		return fmt.Sprintf(templateDefault, name, packformat.Latest, name, name), nil
	case TemplateMinimal:
		return fmt.Sprintf(templateMinimal, name, packformat.Latest, name), nil
	case TemplateFull:
		return fmt.Sprintf(templateFull, name, packformat.Latest, name, name, name), nil
	default:
		return "", &UnknownTemplateError{Name: template}
	}
}

const templateDefault = `// Packfile for %[1]s.
// Run "packsmith build" in this directory to compile the pack.

name:   %[1]q
format: %[2]d

namespaces: {
	%[3]q: {
		functions: {
			"hello": {
				commands: [
					{raw: "say Hello, world!"},
				]
			}
		}
	}
}

load: ["%[4]s:hello"]
`

const templateMinimal = `name:   %[1]q
format: %[2]d

namespaces: {
	%[3]q: {}
}
`

const templateFull = `// Packfile for %[1]s, showing most of the available features.

name:        %[1]q
description: "A data pack built with packsmith"
format:      %[2]d

namespaces: {
	%[3]q: {
		functions: {
			"setup": {
				commands: [
					{comment: "runs once on reload"},
					{raw: "scoreboard objectives add counter dummy"},
					{debug: {raw: "say setup complete"}},
				]
			}
			"tick/main": {
				commands: [
					{execute: {
						as: "@a"
						if: {check: "entity @s[tag=ready]"}
						run: {raw: "scoreboard players add @s counter 1"}
					}},
					{group: [
						{raw: "say first"},
						{raw: "say second"},
					]},
				]
			}
		}
		tags: [
			{
				registry: "block"
				path:     "breakable"
				values: [
					{id: "minecraft:stone"},
					{id: "minecraft:dirt", required: false},
				]
			},
		]
	}
}

tick: ["%[4]s:tick/main"]
load: ["%[5]s:setup"]

// Files under a template directory are copied verbatim into the pack:
// template_dir: "template"
`
