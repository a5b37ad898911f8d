package ast

import (
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
)

// Stmt is the parent interface for every statement variant of spec.md 3.
// The checker and translator dispatch on the concrete type with a type
// switch rather than virtual methods (spec.md 9, "Polymorphic AST vs.
// tagged unions").
type Stmt interface {
	Location() report.Location
}

type stmtBase struct {
	Loc report.Location
}

func (s stmtBase) Location() report.Location { return s.Loc }

// Pass is a no-op statement.
type Pass struct {
	stmtBase
}

func NewPass(loc report.Location) *Pass {
	return &Pass{stmtBase{loc}}
}

// Ntro introduces a local variable with a declared type and an initializing
// expression.
type Ntro struct {
	stmtBase
	Name string
	Type common.Type
	Init Expr
}

func NewNtro(loc report.Location, name string, ty common.Type, init Expr) *Ntro {
	return &Ntro{stmtBase{loc}, name, ty, init}
}

// Asgn assigns the value of an expression to an already-declared name.
type Asgn struct {
	stmtBase
	Name string
	Expr Expr
}

func NewAsgn(loc report.Location, name string, expr Expr) *Asgn {
	return &Asgn{stmtBase{loc}, name, expr}
}

// Prnt prints the value of an expression followed by a newline.
type Prnt struct {
	stmtBase
	Expr Expr
}

func NewPrnt(loc report.Location, expr Expr) *Prnt {
	return &Prnt{stmtBase{loc}, expr}
}

// PRtn is a procedure return (`return` with no value).
type PRtn struct {
	stmtBase
}

func NewPRtn(loc report.Location) *PRtn {
	return &PRtn{stmtBase{loc}}
}

// FRtn is a value-returning return statement.
type FRtn struct {
	stmtBase
	Expr Expr
}

func NewFRtn(loc report.Location, expr Expr) *FRtn {
	return &FRtn{stmtBase{loc}, expr}
}

// IfEl is an if/else statement. Else is nil when there is no else branch.
type IfEl struct {
	stmtBase
	Cond Expr
	Then *Block
	Else *Block
}

func NewIfEl(loc report.Location, cond Expr, then, els *Block) *IfEl {
	return &IfEl{stmtBase{loc}, cond, then, els}
}

// Whle is a while loop.
type Whle struct {
	stmtBase
	Cond Expr
	Body *Block
}

func NewWhle(loc report.Location, cond Expr, body *Block) *Whle {
	return &Whle{stmtBase{loc}, cond, body}
}

// PCll is a procedure call used as a statement; any return value (there is
// none, since the callee must be NoneTy) is discarded.
type PCll struct {
	stmtBase
	Name string
	Args []Expr
}

func NewPCll(loc report.Location, name string, args []Expr) *PCll {
	return &PCll{stmtBase{loc}, name, args}
}
