// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"strings"

	"packsmith/pkg/packformat"
)

// ExecuteNode is one link of an execute chain: zero or more context clauses
// (as, at, positioned, ...) ending in a conditional, a single command, or an
// ordered body. Chains are built inside-out with the constructor functions
// below.
type ExecuteNode interface {
	executeNode()
}

type (
	// clause is a single "keyword argument" modifier followed by the rest
	// of the chain.
	clause struct {
		keyword string
		arg     string
		next    ExecuteNode
		// grouping forces the remainder of the chain into a synthesized
		// function when it spans multiple lines, for modifiers whose side
		// effect must not be repeated per line (summon).
		grouping bool
	}

	// IfNode runs Then only when Cond holds; Else, when present, runs
	// exactly when Cond does not hold.
	IfNode struct {
		Cond Condition
		Then ExecuteNode
		Else ExecuteNode
	}

	// RunNode terminates a chain with a single command.
	RunNode struct {
		Command Command
	}

	// RunsNode terminates a chain with an ordered sequence of commands.
	RunsNode struct {
		Commands []Command
	}
)

func (clause) executeNode()   {}
func (IfNode) executeNode()   {}
func (RunNode) executeNode()  {}
func (RunsNode) executeNode() {}

// ExecAlign aligns execution position to block boundaries along axes.
func ExecAlign(axes string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "align", arg: axes, next: next}
}

// ExecAnchored anchors the local reference point (eyes or feet).
func ExecAnchored(anchor string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "anchored", arg: anchor, next: next}
}

// ExecAs runs the rest of the chain as the selected entities.
func ExecAs(selector string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "as", arg: selector, next: next}
}

// ExecAt runs the rest of the chain at the selected entities' positions.
func ExecAt(selector string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "at", arg: selector, next: next}
}

// ExecAsAt combines "as selector at @s": as the selected entities, at their
// own positions.
func ExecAsAt(selector string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "as", arg: selector + " at @s", next: next}
}

// ExecFacing rotates execution to face a position or entity.
func ExecFacing(target string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "facing", arg: target, next: next}
}

// ExecIn switches execution into a dimension.
func ExecIn(dimension string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "in", arg: dimension, next: next}
}

// ExecOn re-targets execution onto a relation of the current entity.
func ExecOn(relation string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "on", arg: relation, next: next}
}

// ExecPositioned moves the execution position.
func ExecPositioned(position string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "positioned", arg: position, next: next}
}

// ExecRotated changes the execution rotation.
func ExecRotated(rotation string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "rotated", arg: rotation, next: next}
}

// ExecStore stores the result of the rest of the chain.
func ExecStore(target string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "store", arg: target, next: next}
}

// ExecSummon summons an entity and continues the chain as it. The remainder
// is grouped when it spans multiple lines so only one entity is summoned.
func ExecSummon(entity string, next ExecuteNode) ExecuteNode {
	return clause{keyword: "summon", arg: entity, next: next, grouping: true}
}

// If builds a conditional chain link without an else branch.
func If(cond Condition, then ExecuteNode) ExecuteNode {
	return IfNode{Cond: cond, Then: then}
}

// IfElse builds a conditional chain link with an else branch.
func IfElse(cond Condition, then, els ExecuteNode) ExecuteNode {
	return IfNode{Cond: cond, Then: then, Else: els}
}

// Exec wraps a finished chain as a command.
func Exec(node ExecuteNode) Command { return Execute{Node: node} }

// ExecRun terminates a chain with a single command.
func ExecRun(cmd Command) ExecuteNode { return RunNode{Command: cmd} }

// ExecRuns terminates a chain with an ordered command sequence.
func ExecRuns(cmds ...Command) ExecuteNode { return RunsNode{Commands: cmds} }

// prefixedLine is an execute-chain output line. Comment and flag-bookkeeping
// lines never receive the accumulated "execute ..." prefix.
type prefixedLine struct {
	prefixed bool
	text     string
}

// lowerExecute lowers an Execute command. A bare RunNode chain degrades to
// the inner command with no execute syntax at all.
func (c *compiler) lowerExecute(e Execute, st *unitState) []string {
	if run, ok := e.Node.(RunNode); ok {
		return c.lowerCommand(run.Command, st)
	}
	parts := c.lowerExecuteNode(e.Node, "execute ", false, st)
	lines := make([]string, len(parts))
	for i, part := range parts {
		lines[i] = part.text
	}
	return lines
}

// lowerExecuteNode lowers one chain link under the accumulated prefix.
// requireGrouping forces multi-line terminal bodies into a synthesized
// function (set by modifiers with one-shot side effects).
func (c *compiler) lowerExecuteNode(node ExecuteNode, prefix string, requireGrouping bool, st *unitState) []prefixedLine {
	switch n := node.(type) {
	case clause:
		return c.lowerExecuteNode(n.next, prefix+n.keyword+" "+n.arg+" ", requireGrouping || n.grouping, st)
	case IfNode:
		return c.lowerIfCond(n, prefix, st)
	case RunNode:
		if inner, ok := n.Command.(Execute); ok {
			return c.lowerExecuteNode(inner.Node, prefix, requireGrouping, st)
		}
		if group, ok := n.Command.(Group); ok {
			return mapRunLines(c.lowerGrouped(group, st), prefix)
		}
		return mapRunLines(c.lowerCommand(n.Command, st), prefix)
	case RunsNode:
		if requireGrouping {
			return mapRunLines(c.lowerGrouped(n.Commands, st), prefix)
		}
		var lines []string
		for _, cmd := range n.Commands {
			lines = append(lines, c.lowerCommand(cmd, st)...)
		}
		return mapRunLines(lines, prefix)
	}
	panic("datapack: unknown execute node")
}

// measureExecuteNode dry-runs a chain link against scratch state, returning
// how many lines it lowers to.
func (c *compiler) measureExecuteNode(node ExecuteNode, st *unitState) int {
	scratch := st.scratch()
	return len(c.lowerExecuteNode(node, "", false, scratch))
}

// mapRunLines attaches "<prefix>run " to every real command line. Comments
// and blank lines pass through untouched.
func mapRunLines(lines []string, prefix string) []prefixedLine {
	mapped := make([]prefixedLine, len(lines))
	for i, line := range lines {
		if strings.HasPrefix(line, "#") || strings.TrimSpace(line) == "" {
			mapped[i] = prefixedLine{prefixed: false, text: line}
			continue
		}
		mapped[i] = prefixedLine{prefixed: true, text: prefix + "run " + line}
	}
	return mapped
}

// nodeCommands converts a terminal chain link into the command sequence it
// runs, for wrapping into a synthesized function body.
func nodeCommands(node ExecuteNode) []Command {
	switch n := node.(type) {
	case RunNode:
		return []Command{n.Command}
	case RunsNode:
		return n.Commands
	default:
		return []Command{Execute{Node: node}}
	}
}

// validateExecuteNode checks format gates along a chain: modifiers need
// format 4+, summon and on need 12+.
func validateExecuteNode(node ExecuteNode, supported packformat.Range) bool {
	switch n := node.(type) {
	case clause:
		minFormat := packformat.Format(4)
		if n.keyword == "summon" || n.keyword == "on" {
			minFormat = 12
		}
		return supported.Min >= minFormat && validateExecuteNode(n.next, supported)
	case IfNode:
		if supported.Min < 4 || !validateExecuteNode(n.Then, supported) {
			return false
		}
		return n.Else == nil || validateExecuteNode(n.Else, supported)
	case RunNode:
		return validateCommand(n.Command, supported)
	case RunsNode:
		for _, cmd := range n.Commands {
			if !validateCommand(cmd, supported) {
				return false
			}
		}
		return true
	}
	return false
}
