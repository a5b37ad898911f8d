package common

// Type represents a DwiSlpy static type. Its value must be one of the
// enumerated type kinds below.
type Type uint

// Enumeration of the DwiSlpy primitive types.
const (
	IntTy Type = iota
	BoolTy
	StrTy
	NoneTy
)

// Repr returns the printable, source-level name of the type.
func (t Type) Repr() string {
	switch t {
	case IntTy:
		return "int"
	case BoolTy:
		return "bool"
	case StrTy:
		return "str"
	default:
		return "None"
	}
}

func (t Type) String() string {
	return t.Repr()
}

// Equal reports whether two types are the same variant. DwiSlpy has no
// structural or generic types, so equality is just the tag comparison.
func (t Type) Equal(other Type) bool {
	return t == other
}
