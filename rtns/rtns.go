package rtns

import (
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
)

// Kind is the tag of a return-behavior summary (spec.md 4.2).
type Kind int

const (
	// VoidKind: no execution path of this block reaches a return.
	VoidKind Kind = iota
	// VoidOrKind: some path returns a value of type Ty, some does not.
	VoidOrKind
	// DefKind: every path returns a value of type Ty.
	DefKind
)

// Rtns is a value in the three-element return-behavior lattice
// { Void, VoidOr(t), Def(t) } (spec.md 4.2, glossary "Rtns").
type Rtns struct {
	Kind Kind
	Ty   common.Type
}

// Void is the summary of a block with no return on any path.
func Void() Rtns {
	return Rtns{Kind: VoidKind}
}

// VoidOrTy is the summary of a block where some path returns t and some
// does not.
func VoidOrTy(t common.Type) Rtns {
	return Rtns{Kind: VoidOrKind, Ty: t}
}

// DefTy is the summary of a block where every path returns t.
func DefTy(t common.Type) Rtns {
	return Rtns{Kind: DefKind, Ty: t}
}

// HasType reports whether r carries a return type (VoidOr or Def).
func (r Rtns) HasType() bool {
	return r.Kind != VoidKind
}

// Voidify turns a definite or maybe return into a maybe return, and leaves
// Void unchanged (spec.md 4.2, the `voidify` helper used by Sum and by
// while-loop bodies).
func Voidify(r Rtns) Rtns {
	if r.Kind == VoidKind {
		return r
	}
	return VoidOrTy(r.Ty)
}

// Seq composes the return summary of a statement `a` followed by a
// statement `b` (spec.md 4.2, "Sequence"). loc is the location to blame if
// composition fails.
func Seq(a, b Rtns, loc report.Location) (Rtns, *report.CompileError) {
	switch a.Kind {
	case VoidKind:
		return b, nil
	case VoidOrKind:
		if b.Kind == VoidKind {
			return a, nil
		}
		if b.Ty.Equal(a.Ty) {
			return b, nil
		}
		return Rtns{}, report.NewError(loc, report.TypeMismatch,
			"statement return is not compatible with what's expected")
	default: // DefKind
		return Rtns{}, report.NewError(loc, report.Unreachable,
			"statement is unreachable: the preceding statement always returns")
	}
}

// Sum combines the return summaries of two alternative branches, e.g. the
// two arms of an if/else (spec.md 4.2, "Sum"). loc is the location to blame
// if composition fails.
func Sum(a, b Rtns, loc report.Location) (Rtns, *report.CompileError) {
	if a.Kind == VoidKind {
		return Voidify(b), nil
	}
	if b.Kind == VoidKind {
		return Voidify(a), nil
	}

	if !a.Ty.Equal(b.Ty) {
		return Rtns{}, report.NewError(loc, report.TypeMismatch, "incompatible return types")
	}

	if a.Kind == DefKind && b.Kind == DefKind {
		return DefTy(a.Ty), nil
	}
	return VoidOrTy(a.Ty), nil
}
