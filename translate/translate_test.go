package translate

import (
	"strings"
	"testing"

	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/check"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/ir"
	"github.com/dwislpy/dwislpyc/report"
)

func loc() report.Location {
	return report.NewLocation("t.dwi", 1, 1)
}

func mustCheck(t *testing.T, prog *ast.Program) {
	t.Helper()
	if err := check.Check(prog); err != nil {
		t.Fatalf("unexpected check error: %v", err)
	}
}

func TestSimplePrintEmitsExpectedShape(t *testing.T) {
	prog := ast.NewProgram()
	prog.SetMain(ast.NewBlock(
		ast.NewPrnt(loc(), ast.NewBinExpr(loc(), ast.Plus,
			ast.NewLtrl(loc(), common.NewIntValue(1)),
			ast.NewLtrl(loc(), common.NewIntValue(2)))),
	))
	mustCheck(t, prog)

	artifact := Translate(prog)
	main := artifact.Main

	var ops []string
	for _, instr := range main {
		switch v := instr.(type) {
		case ir.SET, ir.Arith, ir.PTI, ir.STL, ir.PTS:
			ops = append(ops, v.Repr())
		}
	}

	if len(ops) != 6 {
		t.Fatalf("expected 6 value/print instructions, got %d: %v", len(ops), ops)
	}
	if !strings.HasPrefix(ops[2], "ADD") {
		t.Fatalf("expected third op to be ADD, got %q", ops[2])
	}
	if !strings.HasPrefix(ops[3], "PTI") {
		t.Fatalf("expected fourth op to be PTI, got %q", ops[3])
	}
}

func TestDefinitionHasExactlyOneExitLabel(t *testing.T) {
	prog := ast.NewProgram()
	def := ast.NewDefinition("f", common.IntTy, loc(), prog.Globals)
	def.SymT.AddFormal("x", common.IntTy)
	def.Body = ast.NewBlock(
		ast.NewIfEl(loc(),
			ast.NewBinExpr(loc(), ast.Less,
				ast.NewLkup(loc(), "x"),
				ast.NewLtrl(loc(), common.NewIntValue(0))),
			ast.NewBlock(ast.NewFRtn(loc(), ast.NewLtrl(loc(), common.NewIntValue(-1)))),
			ast.NewBlock(ast.NewFRtn(loc(), ast.NewLtrl(loc(), common.NewIntValue(1)))),
		),
	)
	prog.AddDef(def)
	prog.SetMain(ast.NewBlock())
	mustCheck(t, prog)

	artifact := Translate(prog)
	instrs := artifact.Defs["f"]

	exitLabels := 0
	rtnCount := 0
	for _, instr := range instrs {
		if lbl, ok := instr.(ir.LBL); ok && lbl.Label == "f_done" {
			exitLabels++
		}
		if _, ok := instr.(ir.RTN); ok {
			rtnCount++
		}
	}

	if exitLabels != 1 {
		t.Fatalf("expected exactly one f_done label, got %d", exitLabels)
	}
	if rtnCount != 2 {
		t.Fatalf("expected two RTN instructions (one per branch), got %d", rtnCount)
	}
}

func TestShortCircuitAndEmitsNestedBranches(t *testing.T) {
	prog := ast.NewProgram()
	prog.SetMain(ast.NewBlock(
		ast.NewNtro(loc(), "a", common.IntTy, ast.NewLtrl(loc(), common.NewIntValue(1))),
		ast.NewNtro(loc(), "b", common.IntTy, ast.NewLtrl(loc(), common.NewIntValue(2))),
		ast.NewPrnt(loc(), ast.NewBinExpr(loc(), ast.And,
			ast.NewBinExpr(loc(), ast.Less, ast.NewLkup(loc(), "a"), ast.NewLtrl(loc(), common.NewIntValue(10))),
			ast.NewBinExpr(loc(), ast.Less, ast.NewLkup(loc(), "b"), ast.NewLtrl(loc(), common.NewIntValue(20))),
		)),
	))
	mustCheck(t, prog)

	artifact := Translate(prog)

	bcnCount := 0
	for _, instr := range artifact.Main {
		if _, ok := instr.(ir.BCN); ok {
			bcnCount++
		}
	}
	if bcnCount != 2 {
		t.Fatalf("expected two BCN branches for the two comparisons, got %d", bcnCount)
	}
}

// buildTwoProcProgram builds a fresh program with two procedures, each
// printing a distinct string literal, so that string-label assignment has
// more than one definition's body to race across.
func buildTwoProcProgram() *ast.Program {
	prog := ast.NewProgram()

	zebra := ast.NewDefinition("zebra", common.NoneTy, loc(), prog.Globals)
	zebra.Body = ast.NewBlock(ast.NewPrnt(loc(), ast.NewLtrl(loc(), common.NewStrValue("zzz"))))
	prog.AddDef(zebra)

	alpha := ast.NewDefinition("alpha", common.NoneTy, loc(), prog.Globals)
	alpha.Body = ast.NewBlock(ast.NewPrnt(loc(), ast.NewLtrl(loc(), common.NewStrValue("aaa"))))
	prog.AddDef(alpha)

	prog.SetMain(ast.NewBlock(
		ast.NewPCll(loc(), "zebra", nil),
		ast.NewPCll(loc(), "alpha", nil),
	))
	return prog
}

func TestStringLabelAssignmentIsDeterministicAcrossRuns(t *testing.T) {
	prog1 := buildTwoProcProgram()
	mustCheck(t, prog1)
	artifact1 := Translate(prog1)
	pool1 := artifact1.Global.StringPool()

	prog2 := buildTwoProcProgram()
	mustCheck(t, prog2)
	artifact2 := Translate(prog2)
	pool2 := artifact2.Global.StringPool()

	for label, content := range pool1 {
		other, ok := pool2[label]
		if !ok || other != content {
			t.Fatalf("label %q held %q on the first run but %q (ok=%v) on the second", label, content, other, ok)
		}
	}
	for label, content := range pool2 {
		other, ok := pool1[label]
		if !ok || other != content {
			t.Fatalf("label %q held %q on the second run but %q (ok=%v) on the first", label, content, other, ok)
		}
	}
}

func TestNoCollisionsAmongMintedLabels(t *testing.T) {
	prog := ast.NewProgram()
	prog.SetMain(ast.NewBlock(
		ast.NewNtro(loc(), "a", common.IntTy, ast.NewLtrl(loc(), common.NewIntValue(1))),
		ast.NewPrnt(loc(), ast.NewBinExpr(loc(), ast.And,
			ast.NewBinExpr(loc(), ast.Less, ast.NewLkup(loc(), "a"), ast.NewLtrl(loc(), common.NewIntValue(10))),
			ast.NewBinExpr(loc(), ast.Less, ast.NewLkup(loc(), "a"), ast.NewLtrl(loc(), common.NewIntValue(20))),
		)),
	))
	mustCheck(t, prog)

	artifact := Translate(prog)

	seen := map[string]bool{}
	for _, instr := range artifact.Main {
		lbl, ok := instr.(ir.LBL)
		if !ok {
			continue
		}
		if seen[lbl.Label] {
			t.Fatalf("label %q minted more than once", lbl.Label)
		}
		seen[lbl.Label] = true
	}
}
