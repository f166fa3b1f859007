// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"fmt"
	"sort"
)

// Validate checks the structural constraints the CUE schema cannot express:
// exactly-one-of variant selection on commands and conditions, and the
// shape of execute chains. Name, path and reference syntax are already
// enforced by the schema, and pack-level semantics (formats, reserved
// paths) by the datapack model.
func (p *Packfile) Validate() error {
	for _, nsName := range sortedKeys(p.Namespaces) {
		ns := p.Namespaces[nsName]
		for _, fnPath := range sortedKeys(ns.Functions) {
			fn := ns.Functions[fnPath]
			where := fmt.Sprintf("namespaces.%s.functions.%q.commands", nsName, fnPath)
			if err := validateCommands(fn.Commands, where); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateCommands(cmds []CommandDef, where string) error {
	for i := range cmds {
		if err := validateCommand(&cmds[i], fmt.Sprintf("%s[%d]", where, i)); err != nil {
			return err
		}
	}
	return nil
}

func validateCommand(cmd *CommandDef, where string) error {
	if n := cmd.variantCount(); n != 1 {
		return &CommandShapeError{Where: where, Count: n}
	}

	switch {
	case cmd.Debug != nil:
		return validateCommand(cmd.Debug, where+".debug")
	case cmd.Group != nil:
		return validateCommands(cmd.Group, where+".group")
	case cmd.Execute != nil:
		return validateExecute(cmd.Execute, where+".execute")
	}
	return nil
}

func validateExecute(e *ExecuteDef, where string) error {
	terminals := 0
	if e.Run != nil {
		terminals++
	}
	if e.Runs != nil {
		terminals++
	}
	if terminals != 1 {
		return &ExecuteShapeError{
			Where:  where,
			Reason: fmt.Sprintf("%d of run/runs set, want exactly 1", terminals),
		}
	}

	if len(e.Else) > 0 && e.If == nil {
		return &ExecuteShapeError{Where: where, Reason: "else requires if"}
	}

	if e.If != nil {
		if err := validateCondition(e.If, where+".if"); err != nil {
			return err
		}
	}
	if err := validateCommands(e.Else, where+".else"); err != nil {
		return err
	}

	if e.Run != nil {
		return validateCommand(e.Run, where+".run")
	}
	return validateCommands(e.Runs, where+".runs")
}

func validateCondition(c *ConditionDef, where string) error {
	if n := c.variantCount(); n != 1 {
		return &ConditionShapeError{Where: where, Count: n}
	}

	switch {
	case c.Not != nil:
		return validateCondition(c.Not, where+".not")
	case c.AllOf != nil:
		if len(c.AllOf) == 0 {
			return &ConditionShapeError{Where: where + ".all_of", Count: 0}
		}
		for i := range c.AllOf {
			if err := validateCondition(&c.AllOf[i], fmt.Sprintf("%s.all_of[%d]", where, i)); err != nil {
				return err
			}
		}
	case c.AnyOf != nil:
		if len(c.AnyOf) == 0 {
			return &ConditionShapeError{Where: where + ".any_of", Count: 0}
		}
		for i := range c.AnyOf {
			if err := validateCondition(&c.AnyOf[i], fmt.Sprintf("%s.any_of[%d]", where, i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
