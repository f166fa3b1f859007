// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"fmt"
	"strings"

	"packsmith/pkg/packformat"
)

// Command is one node of behavior inside a function. It is a closed sum
// type: the lowering engine matches exhaustively over Raw, Comment, Debug,
// Group and Execute, so adding a new kind is a compile-time-checked change.
//
// Command trees are built by the caller and treated as immutable once a
// Function containing them is compiled. There is no sharing between trees
// and no cycles.
type Command interface {
	command()
}

type (
	// Raw is an opaque passthrough line. Multi-line text lowers to one
	// command per line.
	Raw string

	// Comment is a non-executable annotation, emitted as a "#" line.
	Comment string

	// Debug wraps a command that is only included when compiling with
	// CompileOptions.Debug set; otherwise the whole subtree is omitted.
	Debug struct {
		Inner Command
	}

	// Group runs its members sequentially at the point it appears. When a
	// single invocation line is required, the whole body moves into a
	// synthesized function so the all-or-nothing ordering survives.
	Group []Command

	// Execute wraps an execute chain as a command.
	Execute struct {
		Node ExecuteNode
	}
)

func (Raw) command()     {}
func (Comment) command() {}
func (Debug) command()   {}
func (Group) command()   {}
func (Execute) command() {}

// debugMessageFormat is the tellraw payload emitted by DebugMessage.
const debugMessageFormat = `tellraw @a [{"text":"[","color":"dark_blue"},{"text":"DEBUG","color":"dark_green"},{"text":"]","color":"dark_blue"},{"text":" %s","color":"black"}]`

// DebugMessage builds a Debug command that prints a highlighted chat
// message, for build-time diagnostics that release compiles strip.
func DebugMessage(message string) Command {
	return Debug{Inner: Raw(fmt.Sprintf(debugMessageFormat, message))}
}

// RunIf builds a conditional command: body runs only when every condition
// holds, evaluated in the given order.
func RunIf(body Command, conditions ...Condition) Command {
	return Execute{Node: If(AllOf(conditions...), ExecRun(body))}
}

// rawLines splits raw text into its individual command lines.
func rawLines(text string) []string {
	return strings.Split(text, "\n")
}

// lowerCommand lowers a command at a plain position inside the unit owned
// by st, returning the emitted lines. Synthesized functions are queued on
// st as a side effect.
func (c *compiler) lowerCommand(cmd Command, st *unitState) []string {
	switch v := cmd.(type) {
	case Raw:
		return rawLines(string(v))
	case Comment:
		return []string{"#" + string(v)}
	case Debug:
		if !c.opts.Debug {
			return nil
		}
		return c.lowerCommand(v.Inner, st)
	case Group:
		return c.lowerGroup(v, st)
	case Execute:
		return c.lowerExecute(v, st)
	}
	panic(fmt.Sprintf("datapack: unknown command variant %T", cmd))
}

// measure predicts lowering without emitting: the number of effective
// command lines cmd produces (comments count zero) and whether lowering it
// would synthesize an auxiliary function. Execute chains are measured by a
// dry run against scratch state so the prediction matches codegen exactly.
func (c *compiler) measure(cmd Command, st *unitState) (lines int, synthesizes bool) {
	switch v := cmd.(type) {
	case Raw:
		return len(rawLines(string(v))), false
	case Comment:
		return 0, false
	case Debug:
		if !c.opts.Debug {
			return 0, false
		}
		return c.measure(v.Inner, st)
	case Group:
		if members, inline := c.groupInline(v, st); inline {
			total := 0
			for _, member := range members {
				memberLines, _ := c.measure(member, st)
				total += memberLines
			}
			return total, false
		}
		return 1, true
	case Execute:
		scratch := st.scratch()
		lowered := c.lowerExecute(v, scratch)
		return len(lowered), !scratch.queue.empty()
	}
	panic(fmt.Sprintf("datapack: unknown command variant %T", cmd))
}

// groupInline reports whether a group can be spliced in place: every member
// must lower to at most one line and none may need its own synthesized
// function. It returns the members for convenience.
func (c *compiler) groupInline(group Group, st *unitState) ([]Command, bool) {
	for _, member := range group {
		lines, synthesizes := c.measure(member, st)
		if synthesizes || lines > 1 {
			return group, false
		}
	}
	return group, true
}

// lowerGroup lowers a group at a plain position. Inlineable groups splice
// their member lines in order; anything else becomes one synthesized
// function plus a single invoke line here.
func (c *compiler) lowerGroup(group Group, st *unitState) []string {
	members, inline := c.groupInline(group, st)
	if inline {
		var lines []string
		for _, member := range members {
			lines = append(lines, c.lowerCommand(member, st)...)
		}
		return lines
	}
	return []string{c.synthesize(members, st)}
}

// lowerGrouped lowers cmds where the surrounding syntax can attach at most
// one command line: a body totalling one line is inlined, anything longer
// is synthesized behind a single invoke line.
func (c *compiler) lowerGrouped(cmds []Command, st *unitState) []string {
	total := 0
	for _, cmd := range cmds {
		lines, _ := c.measure(cmd, st)
		total += lines
	}
	if total > 1 {
		return []string{c.synthesize(cmds, st)}
	}
	var lines []string
	for _, cmd := range cmds {
		lines = append(lines, c.lowerCommand(cmd, st)...)
	}
	return lines
}

// validateCommand checks a command tree against the pack's supported format
// range. Only structure the compiler understands is checked; runtime
// semantics are out of scope.
func validateCommand(cmd Command, supported packformat.Range) bool {
	switch v := cmd.(type) {
	case Comment:
		return true
	case Raw:
		return packformat.CommandValid(string(v), supported)
	case Debug:
		return validateCommand(v.Inner, supported)
	case Group:
		for _, member := range v {
			if !validateCommand(member, supported) {
				return false
			}
		}
		return true
	case Execute:
		return validateExecuteNode(v.Node, supported)
	}
	return false
}
