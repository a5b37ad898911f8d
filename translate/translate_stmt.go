package translate

import (
	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/ir"
	"github.com/dwislpy/dwislpyc/symbols"
)

// translateBlock lowers every statement of a block in order, threading the
// function-wide exit label down through nested blocks (spec.md 4.5).
func (tr *translator) translateBlock(block *ast.Block, exit string, symt *symbols.SymT, out *[]ir.Instr) {
	for _, stmt := range block.Stmts {
		tr.translateStmt(stmt, exit, symt, out)
	}
}

func (tr *translator) translateStmt(stmt ast.Stmt, exit string, symt *symbols.SymT, out *[]ir.Instr) {
	switch s := stmt.(type) {

	case *ast.Pass:
		*out = append(*out, ir.NOP{})

	case *ast.Ntro:
		tr.translate(s.Init, s.Name, symt, out)

	case *ast.Asgn:
		tr.translate(s.Expr, s.Name, symt, out)

	case *ast.Prnt:
		tr.translatePrnt(s, symt, out)

	case *ast.FRtn:
		t := symt.AddTemp(s.Expr.Type())
		tr.translate(s.Expr, t, symt, out)
		*out = append(*out, ir.RTN{Operand: t}, ir.JMP{Label: exit})

	case *ast.PRtn:
		t := symt.AddTemp(common.NoneTy)
		*out = append(*out, ir.SET{Dest: t, Imm: 0}, ir.RTN{Operand: t}, ir.JMP{Label: exit})

	case *ast.IfEl:
		tr.translateIfEl(s, exit, symt, out)

	case *ast.Whle:
		tr.translateWhle(s, exit, symt, out)

	case *ast.PCll:
		args := tr.translateArgs(s.Args, symt, out)
		*out = append(*out, ir.CLL{Name: s.Name, Args: args, Dest: ""})

	default:
		panic("translate: unhandled statement variant")
	}
}

// translatePrnt lowers a print statement, dispatching on the checked type
// of its operand (spec.md 4.5, the `Prnt(e)` rows).
func (tr *translator) translatePrnt(s *ast.Prnt, symt *symbols.SymT, out *[]ir.Instr) {
	switch s.Expr.Type() {
	case common.IntTy:
		t := symt.AddTemp(common.IntTy)
		tr.translate(s.Expr, t, symt, out)
		*out = append(*out, ir.PTI{Operand: t})

	case common.StrTy:
		t := symt.AddTemp(common.StrTy)
		tr.translate(s.Expr, t, symt, out)
		*out = append(*out, ir.PTS{Operand: t})

	case common.BoolTy:
		lt := symt.AddLabel("true")
		lf := symt.AddLabel("false")
		ld := symt.AddLabel("done")
		t := symt.AddTemp(common.BoolTy)
		tr.translateCond(s.Expr, lt, lf, symt, out)
		*out = append(*out,
			ir.LBL{Label: lt}, ir.STL{Dest: t, Label: tr.wk.True}, ir.JMP{Label: ld},
			ir.LBL{Label: lf}, ir.STL{Dest: t, Label: tr.wk.False},
			ir.LBL{Label: ld},
		)
		*out = append(*out, ir.PTS{Operand: t})

	default: // common.NoneTy
		discard := symt.AddTemp(common.NoneTy)
		tr.translate(s.Expr, discard, symt, out)
		t := symt.AddTemp(common.StrTy)
		*out = append(*out, ir.STL{Dest: t, Label: tr.wk.None}, ir.PTS{Operand: t})
	}

	eoln := symt.AddTemp(common.StrTy)
	*out = append(*out, ir.STL{Dest: eoln, Label: tr.wk.Eoln}, ir.PTS{Operand: eoln})
}

func (tr *translator) translateIfEl(s *ast.IfEl, exit string, symt *symbols.SymT, out *[]ir.Instr) {
	lt := symt.AddLabel("then")
	le := symt.AddLabel("endif")

	lf := le
	if s.Else != nil {
		lf = symt.AddLabel("else")
	}

	tr.translateCond(s.Cond, lt, lf, symt, out)

	*out = append(*out, ir.LBL{Label: lt})
	tr.translateBlock(s.Then, exit, symt, out)
	*out = append(*out, ir.JMP{Label: le})

	if s.Else != nil {
		*out = append(*out, ir.LBL{Label: lf})
		tr.translateBlock(s.Else, exit, symt, out)
	}

	*out = append(*out, ir.LBL{Label: le})
}

func (tr *translator) translateWhle(s *ast.Whle, exit string, symt *symbols.SymT, out *[]ir.Instr) {
	lh := symt.AddLabel("head")
	lb := symt.AddLabel("body")
	le := symt.AddLabel("endwhile")

	*out = append(*out, ir.LBL{Label: lh})
	tr.translateCond(s.Cond, lb, le, symt, out)
	*out = append(*out, ir.LBL{Label: lb})
	tr.translateBlock(s.Body, exit, symt, out)
	*out = append(*out, ir.JMP{Label: lh})
	*out = append(*out, ir.LBL{Label: le})
}

// translateArgs evaluates a call's argument expressions into fresh temps
// and returns their names, in order.
func (tr *translator) translateArgs(args []ast.Expr, symt *symbols.SymT, out *[]ir.Instr) []string {
	names := make([]string, len(args))
	for i, arg := range args {
		t := symt.AddTemp(arg.Type())
		tr.translate(arg, t, symt, out)
		names[i] = t
	}
	return names
}
