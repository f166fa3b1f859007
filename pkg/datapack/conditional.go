// SPDX-License-Identifier: MPL-2.0

package datapack

import (
	"packsmith/pkg/packformat"
)

// condStorage is the storage namespace holding conditional outcome flags in
// storage-flag mode. Flag names are md5 digests scoped to the originating
// unit, so concurrent functions never share a flag.
const condStorage = "packsmith:cond"

func setFlagCommand(flag string) string {
	return "data modify storage " + condStorage + " " + flag + " set value true"
}

func removeFlagCommand(flag string) string {
	return "data remove storage " + condStorage + " " + flag
}

func flagCheckAtom(flag string) Atom {
	return Atom("data storage " + condStorage + " {" + flag + ":1b}")
}

// lowerIfCond lowers a conditional chain link under the accumulated clause
// prefix, dispatching on the strategy's conditional mode.
func (c *compiler) lowerIfCond(n IfNode, prefix string, st *unitState) []prefixedLine {
	if c.strategy.Conditionals == packformat.ModeStorageFlag {
		return c.lowerIfStorageFlag(n, prefix, st)
	}
	return c.lowerIfDirectReturn(n, prefix, st)
}

// lowerIfStorageFlag emits conditionals for formats without return
// semantics. Simple conjunctions lower to a single guarded line. An else
// branch, a multi-line then body or a disjunction stages the outcome in a
// storage flag: the flag is cleared, set by each matching disjunct (or by
// the then body itself when guarding an else), checked to run the branches,
// and cleared again.
func (c *compiler) lowerIfStorageFlag(n IfNode, prefix string, st *unitState) []prefixedLine {
	conds := conditionClauses(n.Cond)
	thenCount := c.measureExecuteNode(n.Then, st)

	var flag string
	if n.Else != nil || thenCount > 1 || len(conds) > 1 {
		flag = st.nextHash(st.path)
	}

	var then []prefixedLine
	if flag != "" {
		body := nodeCommands(n.Then)
		if n.Else != nil && len(conds) <= 1 {
			// the then body itself records success for the else check
			body = append(body, Raw(setFlagCommand(flag)))
		}
		for _, line := range c.lowerGrouped(body, st) {
			then = append(then, prefixedLine{prefixed: true, text: "run " + line})
		}
	} else {
		then = c.lowerExecuteNode(n.Then, "", false, st)
	}

	var parts []prefixedLine
	reset := prefixedLine{prefixed: false, text: removeFlagCommand(flag)}
	disjunct := len(conds) > 1
	if disjunct || n.Else != nil {
		parts = append(parts, reset)
	}
	successCond := conds
	if disjunct {
		// every matching disjunct raises the flag, then the branches key
		// off the flag alone
		for _, cond := range conds {
			parts = append(parts, prefixedLine{prefixed: true, text: cond + " run " + setFlagCommand(flag)})
		}
		successCond = conditionClauses(flagCheckAtom(flag))
	}
	parts = append(parts, combineConditions(successCond, then)...)
	if n.Else != nil {
		elseCond := conditionClauses(Not{Cond: flagCheckAtom(flag)})
		el := c.lowerExecuteNode(n.Else, "", len(elseCond) > 1, st)
		parts = append(parts, combineConditions(elseCond, el)...)
	}
	if disjunct || n.Else != nil {
		parts = append(parts, reset)
	}
	return applyPrefix(parts, prefix)
}

// lowerIfDirectReturn emits conditionals for formats with native return
// semantics. An else branch or a disjunction moves the whole conditional
// into a synthesized function of "execute <clause> run return run" lines,
// so the first matching branch returns and pre-empts the rest. Simple
// conjunctions attach directly to the accumulated prefix.
func (c *compiler) lowerIfDirectReturn(n IfNode, prefix string, st *unitState) []prefixedLine {
	conds := conditionClauses(n.Cond)

	if n.Else != nil || len(conds) > 1 {
		lines := c.lowerGrouped(c.returnGroup(conds, n.Then, n.Else, st), st)
		out := make([]prefixedLine, len(lines))
		for i, line := range lines {
			out[i] = prefixedLine{prefixed: true, text: invokeUnder(prefix, line)}
		}
		return out
	}

	if c.measureExecuteNode(n.Then, st) > 1 {
		var then []prefixedLine
		for _, line := range c.lowerGrouped(nodeCommands(n.Then), st) {
			then = append(then, prefixedLine{prefixed: true, text: "run " + line})
		}
		return applyPrefix(combineConditions(conds, then), prefix)
	}

	then := c.lowerExecuteNode(n.Then, "", false, st)
	return applyPrefix(combineConditions(conds, then), prefix)
}

// returnGroup builds the body of a direct-return conditional: one
// return-guarded line per disjunct, followed by the else commands. Else-if
// chains flatten recursively into the same body.
func (c *compiler) returnGroup(conds []string, then, els ExecuteNode, st *unitState) []Command {
	thenLines := c.lowerGrouped(nodeCommands(then), st)
	var group []Command
	for _, cond := range conds {
		for _, line := range thenLines {
			group = append(group, Raw("execute "+cond+" run return run "+line))
		}
	}
	if els != nil {
		group = append(group, c.elseCommands(els, st)...)
	}
	return group
}

func (c *compiler) elseCommands(els ExecuteNode, st *unitState) []Command {
	switch n := els.(type) {
	case IfNode:
		return c.returnGroup(conditionClauses(n.Cond), n.Then, n.Else, st)
	case RunNode:
		if inner, ok := n.Command.(Execute); ok {
			if cond, ok := inner.Node.(IfNode); ok {
				return c.returnGroup(conditionClauses(cond.Cond), cond.Then, cond.Else, st)
			}
		}
		return []Command{n.Command}
	case RunsNode:
		return n.Commands
	default:
		return []Command{Execute{Node: els}}
	}
}

// invokeUnder places a standalone command line under the accumulated
// execute prefix. A bare "execute " prefix carries no context clauses, so
// the line stands on its own.
func invokeUnder(prefix, line string) string {
	if prefix == "execute " {
		return line
	}
	return prefix + "run " + line
}

// combineConditions guards every prefixed command line with every clause,
// emitting the cross product in clause order. Unprefixed lines (comments,
// flag bookkeeping) pass through once per clause unchanged.
func combineConditions(conds []string, cmds []prefixedLine) []prefixedLine {
	var combined []prefixedLine
	for _, cond := range conds {
		for _, cmd := range cmds {
			if cmd.prefixed {
				combined = append(combined, prefixedLine{prefixed: true, text: cond + " " + cmd.text})
			} else {
				combined = append(combined, cmd)
			}
		}
	}
	return combined
}

// applyPrefix attaches the accumulated execute prefix to every prefixed
// line.
func applyPrefix(lines []prefixedLine, prefix string) []prefixedLine {
	out := make([]prefixedLine, len(lines))
	for i, line := range lines {
		if line.prefixed {
			line.text = prefix + line.text
		}
		out[i] = line
	}
	return out
}
