package ast

import (
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
)

// Expr is the parent interface for every expression variant of spec.md 3.
// Every expression carries a type slot, initially unset, filled exactly
// once by the checker (spec.md 3, "Lifecycles").
type Expr interface {
	Location() report.Location

	// Type returns the checker-assigned type. Calling it before the checker
	// has run is a programmer error: the translator's precondition is that
	// check() succeeded first.
	Type() common.Type

	// SetType fills the type slot. The checker calls this exactly once per
	// reachable expression node.
	SetType(common.Type)
}

type exprBase struct {
	Loc   report.Location
	ty    common.Type
	tySet bool
}

func (e *exprBase) Location() report.Location { return e.Loc }

func (e *exprBase) Type() common.Type {
	if !e.tySet {
		panic("ast: Type() read before the checker set this node's type slot")
	}
	return e.ty
}

func (e *exprBase) SetType(t common.Type) {
	e.ty = t
	e.tySet = true
}

// BinOp enumerates the binary operators that share the BinExpr shape.
type BinOp int

const (
	Plus BinOp = iota
	Mnus
	Tmes
	IDiv
	IMod
	Less
	LsEq
	Equl
	And
	Or
)

// BinExpr is a binary expression: arithmetic (Plus/Mnus/Tmes/IDiv/IMod),
// relational (Less/LsEq/Equl), or logical (And/Or).
type BinExpr struct {
	exprBase
	Op          BinOp
	Left, Right Expr
}

func NewBinExpr(loc report.Location, op BinOp, left, right Expr) *BinExpr {
	return &BinExpr{exprBase: exprBase{Loc: loc}, Op: op, Left: left, Right: right}
}

// Not is logical negation.
type Not struct {
	exprBase
	Operand Expr
}

func NewNot(loc report.Location, operand Expr) *Not {
	return &Not{exprBase: exprBase{Loc: loc}, Operand: operand}
}

// Inpt reads one line from the console after printing prompt, then parses it
// as an integer (spec.md 9, the deliberately-int-typed design choice).
type Inpt struct {
	exprBase
	Prompt Expr
}

func NewInpt(loc report.Location, prompt Expr) *Inpt {
	return &Inpt{exprBase: exprBase{Loc: loc}, Prompt: prompt}
}

// IntC coerces its operand to int.
type IntC struct {
	exprBase
	Operand Expr
}

func NewIntC(loc report.Location, operand Expr) *IntC {
	return &IntC{exprBase: exprBase{Loc: loc}, Operand: operand}
}

// StrC coerces its operand to str.
type StrC struct {
	exprBase
	Operand Expr
}

func NewStrC(loc report.Location, operand Expr) *StrC {
	return &StrC{exprBase: exprBase{Loc: loc}, Operand: operand}
}

// Lkup looks up the value of an already-declared name.
type Lkup struct {
	exprBase
	Name string
}

func NewLkup(loc report.Location, name string) *Lkup {
	return &Lkup{exprBase: exprBase{Loc: loc}, Name: name}
}

// Ltrl is a literal value.
type Ltrl struct {
	exprBase
	Value common.Value
}

func NewLtrl(loc report.Location, v common.Value) *Ltrl {
	return &Ltrl{exprBase: exprBase{Loc: loc}, Value: v}
}

// FCll is a function call used as an expression.
type FCll struct {
	exprBase
	Name string
	Args []Expr
}

func NewFCll(loc report.Location, name string, args []Expr) *FCll {
	return &FCll{exprBase: exprBase{Loc: loc}, Name: name, Args: args}
}
