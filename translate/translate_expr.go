package translate

import (
	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/ir"
	"github.com/dwislpy/dwislpyc/symbols"
)

// arithOpFor maps a BinOp to its IR opcode for the arithmetic operators.
var arithOpFor = map[ast.BinOp]ir.ArithOp{
	ast.Plus: ir.OpAdd,
	ast.Mnus: ir.OpSub,
	ast.Tmes: ir.OpMul,
	ast.IDiv: ir.OpDiv,
	ast.IMod: ir.OpMod,
}

// translate lowers an expression in value mode: dest receives the
// expression's computed value (spec.md 4.5, "Expression translation —
// value mode").
func (tr *translator) translate(e ast.Expr, dest string, symt *symbols.SymT, out *[]ir.Instr) {
	switch expr := e.(type) {

	case *ast.Ltrl:
		tr.translateLtrl(expr, dest, symt, out)

	case *ast.Lkup:
		*out = append(*out, ir.MOV{Dest: dest, Src: expr.Name})

	case *ast.BinExpr:
		tr.translateBinExpr(expr, dest, symt, out)

	case *ast.Not:
		tr.translateViaCond(expr, dest, symt, out)

	case *ast.Inpt:
		s := symt.AddTemp(common.StrTy)
		tr.translate(expr.Prompt, s, symt, out)
		*out = append(*out, ir.PTS{Operand: s}, ir.GTI{Dest: dest})

	case *ast.IntC:
		s := symt.AddTemp(expr.Operand.Type())
		tr.translate(expr.Operand, s, symt, out)
		*out = append(*out, ir.CLL{Name: "$to_int", Args: []string{s}, Dest: dest})

	case *ast.StrC:
		s := symt.AddTemp(expr.Operand.Type())
		tr.translate(expr.Operand, s, symt, out)
		*out = append(*out, ir.CLL{Name: "$to_str", Args: []string{s}, Dest: dest})

	case *ast.FCll:
		args := tr.translateArgs(expr.Args, symt, out)
		*out = append(*out, ir.CLL{Name: expr.Name, Args: args, Dest: dest})

	default:
		panic("translate: unhandled expression variant")
	}
}

func (tr *translator) translateLtrl(e *ast.Ltrl, dest string, symt *symbols.SymT, out *[]ir.Instr) {
	switch e.Value.Kind {
	case common.IntTy:
		*out = append(*out, ir.SET{Dest: dest, Imm: e.Value.IntV})
	case common.BoolTy:
		imm := int64(0)
		if e.Value.BoolV {
			imm = 1
		}
		*out = append(*out, ir.SET{Dest: dest, Imm: imm})
	case common.StrTy:
		// Interning delegates to the global table (I3): equal content
		// always lands on the same label, here or anywhere else.
		lbl := symt.AddString(e.Value.StrV)
		*out = append(*out, ir.STL{Dest: dest, Label: lbl})
	default: // common.NoneTy
		*out = append(*out, ir.SET{Dest: dest, Imm: 0})
	}
}

// translateBinExpr lowers a binary expression in value mode, dispatching on
// operator family (spec.md 4.5).
func (tr *translator) translateBinExpr(e *ast.BinExpr, dest string, symt *symbols.SymT, out *[]ir.Instr) {
	if op, ok := arithOpFor[e.Op]; ok {
		s1 := symt.AddTemp(e.Left.Type())
		s2 := symt.AddTemp(e.Right.Type())
		tr.translate(e.Left, s1, symt, out)
		tr.translate(e.Right, s2, symt, out)
		*out = append(*out, ir.Arith{Op: op, Dest: dest, Lhs: s1, Rhs: s2})
		return
	}

	switch e.Op {
	case ast.Less, ast.LsEq, ast.And, ast.Or:
		tr.translateViaCond(e, dest, symt, out)

	case ast.Equl:
		s1 := symt.AddTemp(e.Left.Type())
		s2 := symt.AddTemp(e.Right.Type())
		tr.translate(e.Left, s1, symt, out)
		tr.translate(e.Right, s2, symt, out)
		*out = append(*out, ir.CLL{Name: "$eq", Args: []string{s1, s2}, Dest: dest})

	default:
		panic("translate: unhandled binary operator")
	}
}

// translateViaCond lowers any boolean-producing expression in value mode by
// routing it through condition mode and materializing the 0/1 result
// (spec.md 4.5, the `Less, And, Or, Not` value-mode row).
func (tr *translator) translateViaCond(e ast.Expr, dest string, symt *symbols.SymT, out *[]ir.Instr) {
	lt := symt.AddLabel("true")
	lf := symt.AddLabel("false")
	ld := symt.AddLabel("done")

	tr.translateCond(e, lt, lf, symt, out)

	*out = append(*out,
		ir.LBL{Label: lt}, ir.SET{Dest: dest, Imm: 1}, ir.JMP{Label: ld},
		ir.LBL{Label: lf}, ir.SET{Dest: dest, Imm: 0},
		ir.LBL{Label: ld},
	)
}
