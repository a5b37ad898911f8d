package check

import (
	"sort"

	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
	"github.com/dwislpy/dwislpyc/rtns"
)

// Check runs the type-and-return checker over a whole program (spec.md
// 4.3): every definition, in a fixed order, then the main script. It
// returns the first CompileError encountered; the core never proceeds past
// the first failure (spec.md 7, "Policy"). Definitions are visited in
// sorted-by-name order rather than map iteration order so that which
// definition's error is "the first" is stable across runs of the same AST
// (spec.md 8, "Determinism").
func Check(prog *ast.Program) *report.CompileError {
	names := make([]string, 0, len(prog.Defs))
	for name := range prog.Defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := checkDefn(prog.Defs[name], prog.Defs); err != nil {
			return err
		}
	}

	mainSymt := prog.Globals
	result, err := checkBlock(prog.Main, rtns.Void(), mainSymt, prog.Defs)
	if err != nil {
		return err
	}

	if result.Kind != rtns.VoidKind {
		loc := report.Location{File: "<main>", Line: 1, Col: 1}
		if len(prog.Main.Stmts) > 0 {
			loc = prog.Main.Stmts[len(prog.Main.Stmts)-1].Location()
		}
		return report.NewError(loc, report.MainMustNotReturn,
			"the main script must not return a value")
	}

	return nil
}

// checkDefn checks one function or procedure definition (spec.md 4.3,
// "check_defn").
func checkDefn(def *ast.Definition, defs map[string]*ast.Definition) *report.CompileError {
	obligation := rtns.DefTy(def.ReturnType)

	result, err := checkBlock(def.Body, obligation, def.SymT, defs)
	if err != nil {
		return err
	}

	if def.ReturnType != common.NoneTy {
		switch result.Kind {
		case rtns.VoidKind:
			return report.NewError(def.Loc, report.BodyNeverReturns,
				"function %q never returns a value", def.Name)
		case rtns.VoidOrKind:
			return report.NewError(def.Loc, report.MaybeMissingReturn,
				"function %q may not return a value on every path", def.Name)
		case rtns.DefKind:
			if !result.Ty.Equal(def.ReturnType) {
				return report.NewError(def.Loc, report.TypeMismatch,
					"function %q declared to return %s but its body returns %s",
					def.Name, def.ReturnType, result.Ty)
			}
		}
	}

	return nil
}
