package common

import "fmt"

// Value is a tagged DwiSlpy runtime value as it appears in a literal node of
// the AST. Only Kind and the field matching it are meaningful.
type Value struct {
	Kind Type

	IntV  int64
	BoolV bool
	StrV  string
	// NoneTy carries no payload.
}

// NewIntValue constructs an integer literal value.
func NewIntValue(i int64) Value {
	return Value{Kind: IntTy, IntV: i}
}

// NewBoolValue constructs a boolean literal value.
func NewBoolValue(b bool) Value {
	return Value{Kind: BoolTy, BoolV: b}
}

// NewStrValue constructs a string literal value.
func NewStrValue(s string) Value {
	return Value{Kind: StrTy, StrV: s}
}

// NewNoneValue constructs the unit value.
func NewNoneValue() Value {
	return Value{Kind: NoneTy}
}

// Type returns the static type of the value, which for a literal is also its
// dynamic variant (spec.md 4.3, `Ltrl(v)` rule).
func (v Value) Type() Type {
	return v.Kind
}

// Repr renders the value the way it would appear in a diagnostic or an IR
// pretty-printer.
func (v Value) Repr() string {
	switch v.Kind {
	case IntTy:
		return fmt.Sprintf("%d", v.IntV)
	case BoolTy:
		if v.BoolV {
			return "True"
		}
		return "False"
	case StrTy:
		return fmt.Sprintf("%q", v.StrV)
	default:
		return "None"
	}
}
