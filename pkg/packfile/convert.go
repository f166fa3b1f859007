// SPDX-License-Identifier: MPL-2.0

package packfile

import (
	"packsmith/pkg/datapack"
	"packsmith/pkg/packformat"
)

// Datapack converts the packfile into the datapack model, ready for
// compilation. The packfile is validated first; a zero Format is passed
// through unchanged, so callers substituting a configured default must do
// so before calling.
//
// TemplateDir is not resolved here: it is relative to the packfile and the
// caller knows where that lives.
func (p *Packfile) Datapack() (*datapack.Datapack, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	d := datapack.New(p.Name, p.Format)
	if p.Description != "" {
		d.WithDescription(p.Description)
	}
	if p.SupportedFormats != nil {
		d.WithSupportedFormats(packformat.RangeOf(p.SupportedFormats.Min, p.SupportedFormats.Max))
	}

	for _, nsName := range sortedKeys(p.Namespaces) {
		nsDef := p.Namespaces[nsName]
		ns := d.Namespace(nsName)

		for _, fnPath := range sortedKeys(nsDef.Functions) {
			fn := ns.Function(fnPath)
			for i := range nsDef.Functions[fnPath].Commands {
				fn.Add(commandOf(&nsDef.Functions[fnPath].Commands[i]))
			}
		}

		for _, tagDef := range nsDef.Tags {
			tag := ns.Tag(tagRegistryOf(tagDef.Registry), tagDef.Path)
			tag.SetReplace(tagDef.Replace)
			for _, v := range tagDef.Values {
				if v.Required == nil || *v.Required {
					tag.Add(v.ID)
				} else {
					tag.AddOptional(v.ID)
				}
			}
		}
	}

	for _, location := range p.Tick {
		d.AddTick(location)
	}
	for _, location := range p.Load {
		d.AddLoad(location)
	}

	return d, nil
}

// tagRegistryOf maps a schema registry name to the datapack registry.
// Unknown names address a custom registry directory of that name.
func tagRegistryOf(name string) datapack.TagRegistry {
	switch name {
	case "block":
		return datapack.TagRegistryBlocks
	case "fluid":
		return datapack.TagRegistryFluids
	case "item":
		return datapack.TagRegistryItems
	case "entity_type":
		return datapack.TagRegistryEntities
	case "game_event":
		return datapack.TagRegistryGameEvents
	case "function":
		return datapack.TagRegistryFunctions
	default:
		return datapack.TagRegistryCustom(name)
	}
}

// commandOf converts a validated command definition. Only called after
// Validate, so exactly one variant is set.
func commandOf(cmd *CommandDef) datapack.Command {
	switch {
	case cmd.Raw != nil:
		return datapack.Raw(*cmd.Raw)
	case cmd.Comment != nil:
		return datapack.Comment(*cmd.Comment)
	case cmd.Debug != nil:
		return datapack.Debug{Inner: commandOf(cmd.Debug)}
	case cmd.Group != nil:
		return datapack.Group(commandsOf(cmd.Group))
	default:
		return datapack.Exec(nodeOf(cmd.Execute))
	}
}

func commandsOf(cmds []CommandDef) []datapack.Command {
	out := make([]datapack.Command, len(cmds))
	for i := range cmds {
		out[i] = commandOf(&cmds[i])
	}
	return out
}

// nodeOf builds the execute chain for a validated ExecuteDef: terminal
// first, then the optional condition, then the modifiers from the inside
// out so they apply in declaration order.
func nodeOf(e *ExecuteDef) datapack.ExecuteNode {
	var node datapack.ExecuteNode
	if e.Run != nil {
		node = datapack.ExecRun(commandOf(e.Run))
	} else {
		node = datapack.ExecRuns(commandsOf(e.Runs)...)
	}

	if e.If != nil {
		cond := conditionOf(e.If)
		if len(e.Else) > 0 {
			node = datapack.IfElse(cond, node, elseNodeOf(e.Else))
		} else {
			node = datapack.If(cond, node)
		}
	}

	if e.Summon != "" {
		node = datapack.ExecSummon(e.Summon, node)
	}
	if e.Store != "" {
		node = datapack.ExecStore(e.Store, node)
	}
	if e.Rotated != "" {
		node = datapack.ExecRotated(e.Rotated, node)
	}
	if e.Positioned != "" {
		node = datapack.ExecPositioned(e.Positioned, node)
	}
	if e.On != "" {
		node = datapack.ExecOn(e.On, node)
	}
	if e.In != "" {
		node = datapack.ExecIn(e.In, node)
	}
	if e.Facing != "" {
		node = datapack.ExecFacing(e.Facing, node)
	}
	if e.AsAt != "" {
		node = datapack.ExecAsAt(e.AsAt, node)
	}
	if e.At != "" {
		node = datapack.ExecAt(e.At, node)
	}
	if e.As != "" {
		node = datapack.ExecAs(e.As, node)
	}
	if e.Anchored != "" {
		node = datapack.ExecAnchored(e.Anchored, node)
	}
	if e.Align != "" {
		node = datapack.ExecAlign(e.Align, node)
	}

	return node
}

func elseNodeOf(cmds []CommandDef) datapack.ExecuteNode {
	if len(cmds) == 1 {
		return datapack.ExecRun(commandOf(&cmds[0]))
	}
	return datapack.ExecRuns(commandsOf(cmds)...)
}

func conditionOf(c *ConditionDef) datapack.Condition {
	switch {
	case c.Check != "":
		return datapack.Atom(c.Check)
	case c.Not != nil:
		return datapack.Not{Cond: conditionOf(c.Not)}
	case c.AllOf != nil:
		return datapack.AllOf(conditionsOf(c.AllOf)...)
	default:
		return datapack.AnyOf(conditionsOf(c.AnyOf)...)
	}
}

func conditionsOf(defs []ConditionDef) []datapack.Condition {
	out := make([]datapack.Condition, len(defs))
	for i := range defs {
		out[i] = conditionOf(&defs[i])
	}
	return out
}
