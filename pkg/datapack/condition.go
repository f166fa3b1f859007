// SPDX-License-Identifier: MPL-2.0

package datapack

// Condition is the boolean algebra attached to conditional execution.
// Conditions form a closed sum over Atom, Not, And and Or. The target
// runtime can only express conjunctions of (possibly negated) atoms on a
// single line, so lowering first normalizes away complex negations via
// De Morgan's laws and then expands disjunctions into one clause string per
// disjunct.
type Condition interface {
	condition()
}

type (
	// Atom is a single runtime condition, e.g. "block ~ ~-1 ~ minecraft:stone".
	Atom string

	// Not negates a condition.
	Not struct {
		Cond Condition
	}

	// And holds when both operands hold. Operand order is preserved; the
	// runtime short-circuits left to right.
	And struct {
		Left, Right Condition
	}

	// Or holds when either operand holds.
	Or struct {
		Left, Right Condition
	}
)

func (Atom) condition() {}
func (Not) condition()  {}
func (And) condition()  {}
func (Or) condition()   {}

// AllOf folds conditions into a left-associated conjunction, preserving
// order. It panics when called without conditions.
func AllOf(conditions ...Condition) Condition {
	if len(conditions) == 0 {
		panic("datapack: AllOf requires at least one condition")
	}
	combined := conditions[0]
	for _, cond := range conditions[1:] {
		combined = And{Left: combined, Right: cond}
	}
	return combined
}

// AnyOf folds conditions into a left-associated disjunction, preserving
// order. It panics when called without conditions.
func AnyOf(conditions ...Condition) Condition {
	if len(conditions) == 0 {
		panic("datapack: AnyOf requires at least one condition")
	}
	combined := conditions[0]
	for _, cond := range conditions[1:] {
		combined = Or{Left: combined, Right: cond}
	}
	return combined
}

// Normalize removes complex negations using De Morgan's laws, leaving Not
// only directly around atoms.
func Normalize(c Condition) Condition {
	switch v := c.(type) {
	case Atom:
		return v
	case Not:
		switch inner := v.Cond.(type) {
		case Atom:
			return v
		case Not:
			return Normalize(inner.Cond)
		case And:
			return Or{Left: Normalize(Not{inner.Left}), Right: Normalize(Not{inner.Right})}
		case Or:
			return And{Left: Normalize(Not{inner.Left}), Right: Normalize(Not{inner.Right})}
		}
	case And:
		return And{Left: Normalize(v.Left), Right: Normalize(v.Right)}
	case Or:
		return Or{Left: Normalize(v.Left), Right: Normalize(v.Right)}
	}
	return c
}

// truthTable expands a condition into its disjunctive form: each returned
// element is free of Or and complex negation, and the whole condition holds
// iff at least one element holds.
func truthTable(c Condition) []Condition {
	switch v := Normalize(c).(type) {
	case Atom, Not:
		return []Condition{v}
	case Or:
		return append(truthTable(v.Left), truthTable(v.Right)...)
	case And:
		left := truthTable(v.Left)
		right := truthTable(v.Right)
		combined := make([]Condition, 0, len(left)*len(right))
		for _, l := range left {
			for _, r := range right {
				combined = append(combined, And{Left: l, Right: r})
			}
		}
		return combined
	}
	return nil
}

// clauseString renders an Or-free condition as a flat "if .../unless ..."
// clause. It returns false when the condition still contains a disjunction.
func clauseString(c Condition) (string, bool) {
	switch v := c.(type) {
	case Atom:
		return "if " + string(v), true
	case Not:
		atom, ok := v.Cond.(Atom)
		if !ok {
			return "", false
		}
		return "unless " + string(atom), true
	case And:
		left, ok := clauseString(v.Left)
		if !ok {
			return "", false
		}
		right, ok := clauseString(v.Right)
		if !ok {
			return "", false
		}
		return left + " " + right, true
	}
	return "", false
}

// conditionClauses lowers a condition into clause strings, one per disjunct.
// A body guarded by the condition must be emitted once per clause.
func conditionClauses(c Condition) []string {
	table := truthTable(c)
	clauses := make([]string, 0, len(table))
	for _, entry := range table {
		clause, ok := clauseString(entry)
		if !ok {
			// truthTable output is Or-free by construction.
			panic("datapack: disjunction survived truth table expansion")
		}
		clauses = append(clauses, clause)
	}
	return clauses
}
