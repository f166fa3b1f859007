// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	PackfileNotFoundId Id = iota + 1
	PackfileParseErrorId
	UnsupportedFormatId
	InvalidNamespaceNameId
	InvalidFunctionPathId
	ReservedFunctionPathId
	CommandNotInFormatId
	TagMergeConflictId
	ConfigLoadFailedId
	TemplateDirNotFoundId
	OutputWriteFailedId
	PermissionDeniedId
)

type MarkdownMsg string

type HttpLink string

type Renderer interface {
	Render(in string, stylePath string) (string, error)
}

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	docLinks []HttpLink  // must never be empty, because we need to have docs about all issue types
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.docLinks {
			extraMd += "- [" + string(link) + "]"
		}
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	packfileNotFoundIssue = &Issue{
		id: PackfileNotFoundId,
		mdMsg: `
# No packfile found!

We searched for a packfile but couldn't find one in the expected locations.

## Search locations (in order of precedence):
1. The path argument given to the command
2. packfile.cue in the current directory

## Things you can try:
- Create a packfile in your current directory:
~~~
$ packsmith init
~~~

- Or point at an existing one:
~~~
$ packsmith build /path/to/packfile.cue
~~~

## Example packfile structure:
~~~cue
name: "mypack"
description: "My first data pack"
format: 48

namespaces: {
  mypack: {
    functions: {
      "hello": {
        commands: [
          {raw: "say Hello, world!"},
        ]
      }
    }
  }
}

load: ["mypack:hello"]
~~~`,
	}

	packfileParseErrorIssue = &Issue{
		id: PackfileParseErrorId,
		mdMsg: `
# Failed to parse packfile!

Your packfile contains syntax errors or invalid configuration.

## Common issues:
- Invalid CUE syntax (missing quotes, braces, etc.)
- Unknown field names
- Invalid values for known fields
- A command object with zero or more than one of raw/comment/debug/group/execute

## Things you can try:
- Check the error message above for the specific line/column
- Validate your CUE syntax using the cue command-line tool
- Run with verbose mode for more details:
~~~
$ packsmith --verbose check
~~~

## Example of a valid command list:
~~~cue
commands: [
  {raw: "say hi"},
  {comment: "grant the advancement"},
  {execute: {
    as: "@a"
    if: "entity @s[tag=ready]"
    run: {raw: "advancement grant @s everything"}
  }},
]
~~~`,
	}

	unsupportedFormatIssue = &Issue{
		id: UnsupportedFormatId,
		mdMsg: `
# Unsupported pack format!

The pack format you specified is outside the range packsmith knows how to target.

## Supported range:
Pack formats 4 through 48 (Minecraft 1.13 through current).

## Things you can try:
- Pick a format inside the supported range:
~~~cue
format: 48
~~~

- If you declared supported_formats, make sure min <= max and that
  the base format falls inside the declared range`,
	}

	invalidNamespaceNameIssue = &Issue{
		id: InvalidNamespaceNameId,
		mdMsg: `
# Invalid namespace name!

Namespace names may only contain lowercase letters, digits, underscores,
dots and hyphens.

## Examples:
- Valid: ` + "`mypack`" + `, ` + "`my_pack.v2`" + `, ` + "`my-pack`" + `
- Invalid: ` + "`MyPack`" + ` (uppercase), ` + "`my pack`" + ` (space), ` + "`my/pack`" + ` (slash)

## Things you can try:
- Rename the namespace in your packfile to match ` + "`[a-z0-9_.-]+`" + ``,
	}

	invalidFunctionPathIssue = &Issue{
		id: InvalidFunctionPathId,
		mdMsg: `
# Invalid function path!

Function paths are slash-separated segments of lowercase letters, digits,
underscores, dots and hyphens.

## Examples:
- Valid: ` + "`main`" + `, ` + "`setup/scoreboard`" + `, ` + "`ticks/every_second`" + `
- Invalid: ` + "`Main`" + ` (uppercase), ` + "`setup scoreboard`" + ` (space), ` + "`setup//x`" + ` (empty segment)

## Things you can try:
- Rename the function in your packfile to match the allowed characters`,
	}

	reservedFunctionPathIssue = &Issue{
		id: ReservedFunctionPathId,
		mdMsg: `
# Reserved function path!

Function paths under ` + "`ps/`" + ` are reserved for functions that packsmith
generates itself (multi-line execute bodies, conditional branches and the like).
Declaring your own functions there would collide with generated ones.

## Things you can try:
- Move the function somewhere else in the namespace:
~~~cue
functions: {
  "helpers/greet": { ... }  // instead of "ps/greet"
}
~~~`,
	}

	commandNotInFormatIssue = &Issue{
		id: CommandNotInFormatId,
		mdMsg: `
# Command not available in this pack format!

One of your commands was introduced in a Minecraft version newer than the
pack format you are targeting.

## Examples:
- ` + "`transfer`" + ` needs pack format 41 or newer
- ` + "`execute summon`" + ` and ` + "`execute on`" + ` need pack format 12 or newer
- ` + "`return`" + ` needs pack format 15 or newer

## Things you can try:
- Raise the pack format in your packfile:
~~~cue
format: 48
~~~

- Or replace the command with an equivalent available in your target format`,
	}

	tagMergeConflictIssue = &Issue{
		id: TagMergeConflictId,
		mdMsg: `
# Tag merge conflict!

Two contributions to the same tag file could not be merged. This usually means
a custom template file occupies the path where packsmith wants to write a
generated tag.

## Things you can try:
- Declare the tag in the packfile instead of shipping it as a template file;
  declared tags merge cleanly with generated tick/load entries
- Or move the template file out of the ` + "`data/<ns>/tags/`" + ` tree`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the packsmith configuration file.

## Configuration file locations:
- Linux: ~/.config/packsmith/config.cue
- macOS: ~/Library/Application Support/packsmith/config.cue
- Windows: %APPDATA%\packsmith\config.cue

## Things you can try:
- Check the configuration syntax
- Remove the config file to use defaults:
~~~
$ rm ~/.config/packsmith/config.cue
~~~

## Example configuration:
~~~cue
output_dir: "./dist"
default_pack_format: 48

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	templateDirNotFoundIssue = &Issue{
		id: TemplateDirNotFoundId,
		mdMsg: `
# Template directory not found!

The template directory you configured does not exist or is not readable.

## Things you can try:
- Check the ` + "`template_dir`" + ` setting in your packfile or config
- Create the directory, or remove the setting to build without templates
- Template files are copied verbatim into the pack root and win over
  generated files on conflict, so an empty directory is also fine`,
	}

	outputWriteFailedIssue = &Issue{
		id: OutputWriteFailedId,
		mdMsg: `
# Failed to write output!

packsmith compiled your pack but could not write it to disk.

## Common causes:
- Output directory does not exist and could not be created
- No write permission on the output path
- Disk full

## Things you can try:
- Pick a different output location:
~~~
$ packsmith build --output ./dist
~~~

- Check permissions on the output directory`,
	}

	permissionDeniedIssue = &Issue{
		id: PermissionDeniedId,
		mdMsg: `
# Permission denied!

You don't have permission to perform this operation.

## Common causes:
- Trying to write the pack to a protected directory
- Template directory is not readable

## Things you can try:
- Check file/directory permissions
- Run packsmith from a directory you own
- Choose an output directory under your home directory`,
	}

	issues = map[Id]*Issue{
		packfileNotFoundIssue.Id():     packfileNotFoundIssue,
		packfileParseErrorIssue.Id():   packfileParseErrorIssue,
		unsupportedFormatIssue.Id():    unsupportedFormatIssue,
		invalidNamespaceNameIssue.Id(): invalidNamespaceNameIssue,
		invalidFunctionPathIssue.Id():  invalidFunctionPathIssue,
		reservedFunctionPathIssue.Id(): reservedFunctionPathIssue,
		commandNotInFormatIssue.Id():   commandNotInFormatIssue,
		tagMergeConflictIssue.Id():     tagMergeConflictIssue,
		configLoadFailedIssue.Id():     configLoadFailedIssue,
		templateDirNotFoundIssue.Id():  templateDirNotFoundIssue,
		outputWriteFailedIssue.Id():    outputWriteFailedIssue,
		permissionDeniedIssue.Id():     permissionDeniedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
