// SPDX-License-Identifier: MPL-2.0

package packfile

type (
	// CommandDef is one command in a function body. Exactly one of the
	// fields must be set; the set field selects the command variant.
	CommandDef struct {
		// Raw is an opaque command line, passed through untouched.
		// Multi-line text becomes one command per line.
		Raw *string `json:"raw,omitempty"`
		// Comment becomes a "#" line in the compiled function.
		Comment *string `json:"comment,omitempty"`
		// Debug wraps a command that only release builds strip.
		Debug *CommandDef `json:"debug,omitempty"`
		// Group runs its members as an all-or-nothing sequence.
		Group []CommandDef `json:"group,omitempty"`
		// Execute is an execute chain.
		Execute *ExecuteDef `json:"execute,omitempty"`
	}

	// ExecuteDef describes an execute chain. Modifiers apply in the order
	// they are listed below; exactly one of run/runs terminates the chain.
	ExecuteDef struct {
		Align      string `json:"align,omitempty"`
		Anchored   string `json:"anchored,omitempty"`
		As         string `json:"as,omitempty"`
		At         string `json:"at,omitempty"`
		AsAt       string `json:"as_at,omitempty"`
		Facing     string `json:"facing,omitempty"`
		In         string `json:"in,omitempty"`
		On         string `json:"on,omitempty"`
		Positioned string `json:"positioned,omitempty"`
		Rotated    string `json:"rotated,omitempty"`
		Store      string `json:"store,omitempty"`
		Summon     string `json:"summon,omitempty"`

		// If guards the terminal; Else runs exactly when If does not hold.
		If   *ConditionDef `json:"if,omitempty"`
		Else []CommandDef  `json:"else,omitempty"`

		// Run terminates the chain with a single command.
		Run *CommandDef `json:"run,omitempty"`
		// Runs terminates the chain with an ordered command sequence.
		Runs []CommandDef `json:"runs,omitempty"`
	}

	// ConditionDef is a boolean condition over execute-style checks.
	// Exactly one of the fields must be set.
	ConditionDef struct {
		// Check is a single condition, e.g. "entity @s[tag=ready]".
		Check string `json:"check,omitempty"`
		// Not negates a condition.
		Not *ConditionDef `json:"not,omitempty"`
		// AllOf holds when every member holds.
		AllOf []ConditionDef `json:"all_of,omitempty"`
		// AnyOf holds when at least one member holds.
		AnyOf []ConditionDef `json:"any_of,omitempty"`
	}
)

// variantCount returns how many of the command variants are set.
func (c *CommandDef) variantCount() int {
	n := 0
	if c.Raw != nil {
		n++
	}
	if c.Comment != nil {
		n++
	}
	if c.Debug != nil {
		n++
	}
	if c.Group != nil {
		n++
	}
	if c.Execute != nil {
		n++
	}
	return n
}

// variantCount returns how many of the condition variants are set.
func (c *ConditionDef) variantCount() int {
	n := 0
	if c.Check != "" {
		n++
	}
	if c.Not != nil {
		n++
	}
	if c.AllOf != nil {
		n++
	}
	if c.AnyOf != nil {
		n++
	}
	return n
}
