package translate

import (
	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/ir"
	"github.com/dwislpy/dwislpyc/symbols"
)

// numCmpFor maps Less/LsEq to their numeric comparison opcode.
var numCmpFor = map[ast.BinOp]ir.NumCmpOp{
	ast.Less: ir.Lt,
	ast.LsEq: ir.Le,
}

// translateCond lowers a boolean-producing expression in condition mode: no
// value is materialized, execution jumps straight to then or else (spec.md
// 4.5, "Expression translation — condition mode"). This is what realizes
// short-circuit semantics for And/Or/Not: the branch not taken is never
// emitted into the evaluated control path.
func (tr *translator) translateCond(e ast.Expr, then, els string, symt *symbols.SymT, out *[]ir.Instr) {
	switch expr := e.(type) {

	case *ast.Ltrl:
		if expr.Value.BoolV {
			*out = append(*out, ir.JMP{Label: then})
		} else {
			*out = append(*out, ir.JMP{Label: els})
		}

	case *ast.Lkup:
		*out = append(*out, ir.BCZ{Op: ir.Gtz, Operand: expr.Name, Then: then, Else: els})

	case *ast.Not:
		// Negation is just its operand's condition mode with the labels
		// swapped; no value is ever materialized.
		tr.translateCond(expr.Operand, els, then, symt, out)

	case *ast.BinExpr:
		tr.translateBinExprCond(expr, then, els, symt, out)

	default:
		// Any other boolean-producing expression (a function call, ...)
		// has no dedicated short-circuit shape; evaluate it
		// normally and branch on the materialized 0/1 result.
		t := symt.AddTemp(common.BoolTy)
		tr.translate(e, t, symt, out)
		*out = append(*out, ir.BCZ{Op: ir.Gtz, Operand: t, Then: then, Else: els})
	}
}

func (tr *translator) translateBinExprCond(e *ast.BinExpr, then, els string, symt *symbols.SymT, out *[]ir.Instr) {
	switch e.Op {
	case ast.Less, ast.LsEq:
		s1 := symt.AddTemp(e.Left.Type())
		s2 := symt.AddTemp(e.Right.Type())
		tr.translate(e.Left, s1, symt, out)
		tr.translate(e.Right, s2, symt, out)
		*out = append(*out, ir.BCN{Op: numCmpFor[e.Op], Lhs: s1, Rhs: s2, Then: then, Else: els})

	case ast.And:
		lc := symt.AddLabel("and")
		tr.translateCond(e.Left, lc, els, symt, out)
		*out = append(*out, ir.LBL{Label: lc})
		tr.translateCond(e.Right, then, els, symt, out)

	case ast.Or:
		lc := symt.AddLabel("or")
		tr.translateCond(e.Left, then, lc, symt, out)
		*out = append(*out, ir.LBL{Label: lc})
		tr.translateCond(e.Right, then, els, symt, out)

	default:
		// Equality (and any other non-short-circuit operator) has no
		// dedicated condition-mode shape: materialize its value and
		// branch on it.
		t := symt.AddTemp(common.BoolTy)
		tr.translate(e, t, symt, out)
		*out = append(*out, ir.BCZ{Op: ir.Gtz, Operand: t, Then: then, Else: els})
	}
}
