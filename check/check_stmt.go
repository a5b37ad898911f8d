package check

import (
	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
	"github.com/dwislpy/dwislpyc/rtns"
	"github.com/dwislpy/dwislpyc/symbols"
)

// checkStmt checks a single statement and returns its own local
// return-behavior summary (spec.md 4.3). It never sees the enclosing
// block's accumulated summary; checkBlock folds those with rtns.Seq.
func checkStmt(stmt ast.Stmt, expected rtns.Rtns, symt *symbols.SymT, defs map[string]*ast.Definition) (rtns.Rtns, *report.CompileError) {
	switch s := stmt.(type) {

	case *ast.Pass:
		return rtns.Void(), nil

	case *ast.Ntro:
		ty, err := checkExpr(s.Init, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}
		if !ty.Equal(s.Type) {
			return rtns.Rtns{}, report.NewError(s.Init.Location(), report.TypeMismatch,
				"%q is declared %s but initialized with a value of type %s", s.Name, s.Type, ty)
		}
		if _, ok := symt.AddLocal(s.Name, s.Type); !ok {
			return rtns.Rtns{}, report.NewError(s.Loc, report.RedefinedName,
				"%q is already declared in this scope", s.Name)
		}
		return rtns.Void(), nil

	case *ast.Asgn:
		info, ok := symt.GetInfo(s.Name)
		if !ok {
			return rtns.Rtns{}, report.NewError(s.Loc, report.UnknownIdentifier,
				"%q is not declared in this scope", s.Name)
		}
		ty, err := checkExpr(s.Expr, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}
		if !ty.Equal(info.Type) {
			return rtns.Rtns{}, report.NewError(s.Expr.Location(), report.TypeMismatch,
				"%q has type %s but is assigned a value of type %s", s.Name, info.Type, ty)
		}
		return rtns.Void(), nil

	case *ast.Prnt:
		if _, err := checkExpr(s.Expr, symt, defs); err != nil {
			return rtns.Rtns{}, err
		}
		return rtns.Void(), nil

	case *ast.PRtn:
		if expected.Kind == rtns.VoidKind {
			return rtns.Rtns{}, report.NewError(s.Loc, report.UnexpectedReturn,
				"return statement outside of any function or procedure")
		}
		return rtns.DefTy(common.NoneTy), nil

	case *ast.FRtn:
		if expected.Kind == rtns.VoidKind {
			return rtns.Rtns{}, report.NewError(s.Loc, report.UnexpectedReturn,
				"return statement outside of any function or procedure")
		}
		ty, err := checkExpr(s.Expr, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}
		if expected.Ty == common.NoneTy {
			return rtns.Rtns{}, report.NewError(s.Loc, report.ProcedureCannotReturnValue,
				"a procedure cannot return a value")
		}
		if !ty.Equal(expected.Ty) {
			return rtns.Rtns{}, report.NewError(s.Expr.Location(), report.TypeMismatch,
				"returned value has type %s, expected %s", ty, expected.Ty)
		}
		return rtns.DefTy(ty), nil

	case *ast.IfEl:
		condTy, err := checkExpr(s.Cond, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}
		if !condTy.Equal(common.BoolTy) {
			return rtns.Rtns{}, report.NewError(s.Cond.Location(), report.TypeMismatch,
				"if condition has type %s, expected bool", condTy)
		}

		thenR, err := checkBlock(s.Then, expected, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}

		elseR := rtns.Void()
		if s.Else != nil {
			elseR, err = checkBlock(s.Else, expected, symt, defs)
			if err != nil {
				return rtns.Rtns{}, err
			}
		}

		return rtns.Sum(thenR, elseR, s.Loc)

	case *ast.Whle:
		condTy, err := checkExpr(s.Cond, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}
		if !condTy.Equal(common.BoolTy) {
			return rtns.Rtns{}, report.NewError(s.Cond.Location(), report.TypeMismatch,
				"while condition has type %s, expected bool", condTy)
		}

		bodyR, err := checkBlock(s.Body, expected, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}

		// The loop body may run zero times, so any return on its path is
		// only ever a maybe-return from the loop statement's own point of
		// view (spec.md 4.2, `voidify`).
		return rtns.Voidify(bodyR), nil

	case *ast.PCll:
		def, ok := defs[s.Name]
		if !ok {
			return rtns.Rtns{}, report.NewError(s.Loc, report.UnknownIdentifier,
				"%q is not a known procedure", s.Name)
		}
		if def.ReturnType != common.NoneTy {
			return rtns.Rtns{}, report.NewError(s.Loc, report.TypeMismatch,
				"%q returns a value of type %s; call it as an expression instead", s.Name, def.ReturnType)
		}
		if err := checkCallArgs(s.Loc, def, s.Args, symt, defs); err != nil {
			return rtns.Rtns{}, err
		}
		return rtns.Void(), nil

	default:
		panic("check: unhandled statement variant")
	}
}

// checkCallArgs checks the argument count and per-argument types of a call
// (used by both PCll and FCll) against the formals of def.
func checkCallArgs(loc report.Location, def *ast.Definition, args []ast.Expr, symt *symbols.SymT, defs map[string]*ast.Definition) *report.CompileError {
	if len(args) != def.SymT.Arity() {
		return report.NewError(loc, report.ArityMismatch,
			"%q expects %d argument(s), got %d", def.Name, def.SymT.Arity(), len(args))
	}

	for i, arg := range args {
		ty, err := checkExpr(arg, symt, defs)
		if err != nil {
			return err
		}
		_, info, _ := def.SymT.GetFormal(i)
		if !ty.Equal(info.Type) {
			return report.NewError(arg.Location(), report.TypeMismatch,
				"argument %d to %q has type %s, expected %s", i+1, def.Name, ty, info.Type)
		}
	}

	return nil
}
