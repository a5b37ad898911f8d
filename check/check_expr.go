package check

import (
	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
	"github.com/dwislpy/dwislpyc/symbols"
)

// checkExpr checks an expression, fills its type slot via SetType exactly
// once (spec.md 3, "Lifecycles"), and returns that type.
func checkExpr(expr ast.Expr, symt *symbols.SymT, defs map[string]*ast.Definition) (common.Type, *report.CompileError) {
	switch e := expr.(type) {

	case *ast.Ltrl:
		ty := e.Value.Type()
		e.SetType(ty)
		return ty, nil

	case *ast.Lkup:
		info, ok := symt.GetInfo(e.Name)
		if !ok {
			return common.Type(0), report.NewError(e.Loc, report.UnknownIdentifier,
				"%q is not declared in this scope", e.Name)
		}
		e.SetType(info.Type)
		return info.Type, nil

	case *ast.BinExpr:
		return checkBinExpr(e, symt, defs)

	case *ast.Not:
		ty, err := checkExpr(e.Operand, symt, defs)
		if err != nil {
			return common.Type(0), err
		}
		if !ty.Equal(common.BoolTy) {
			return common.Type(0), report.NewError(e.Operand.Location(), report.TypeMismatch,
				"operand of `not` has type %s, expected bool", ty)
		}
		e.SetType(common.BoolTy)
		return common.BoolTy, nil

	case *ast.Inpt:
		ty, err := checkExpr(e.Prompt, symt, defs)
		if err != nil {
			return common.Type(0), err
		}
		if !ty.Equal(common.StrTy) {
			return common.Type(0), report.NewError(e.Prompt.Location(), report.TypeMismatch,
				"input() prompt has type %s, expected str", ty)
		}
		e.SetType(common.IntTy)
		return common.IntTy, nil

	case *ast.IntC:
		ty, err := checkExpr(e.Operand, symt, defs)
		if err != nil {
			return common.Type(0), err
		}
		switch ty {
		case common.IntTy, common.BoolTy, common.StrTy:
			e.SetType(common.IntTy)
			return common.IntTy, nil
		default:
			return common.Type(0), report.NewError(e.Operand.Location(), report.TypeMismatch,
				"int() cannot convert a value of type %s", ty)
		}

	case *ast.StrC:
		if _, err := checkExpr(e.Operand, symt, defs); err != nil {
			return common.Type(0), err
		}
		e.SetType(common.StrTy)
		return common.StrTy, nil

	case *ast.FCll:
		def, ok := defs[e.Name]
		if !ok {
			return common.Type(0), report.NewError(e.Loc, report.UnknownIdentifier,
				"%q is not a known function", e.Name)
		}
		if err := checkCallArgs(e.Loc, def, e.Args, symt, defs); err != nil {
			return common.Type(0), err
		}
		e.SetType(def.ReturnType)
		return def.ReturnType, nil

	default:
		panic("check: unhandled expression variant")
	}
}

// checkBinExpr dispatches a BinExpr by operator family: arithmetic,
// relational, equality, or logical (spec.md 4.3).
func checkBinExpr(e *ast.BinExpr, symt *symbols.SymT, defs map[string]*ast.Definition) (common.Type, *report.CompileError) {
	lt, err := checkExpr(e.Left, symt, defs)
	if err != nil {
		return common.Type(0), err
	}
	rt, err := checkExpr(e.Right, symt, defs)
	if err != nil {
		return common.Type(0), err
	}

	switch e.Op {
	case ast.Plus, ast.Mnus, ast.Tmes, ast.IDiv, ast.IMod:
		if !lt.Equal(common.IntTy) || !rt.Equal(common.IntTy) {
			return common.Type(0), report.NewError(e.Loc, report.TypeMismatch,
				"arithmetic operands must both be int, got %s and %s", lt, rt)
		}
		e.SetType(common.IntTy)
		return common.IntTy, nil

	case ast.Less, ast.LsEq:
		if !lt.Equal(common.IntTy) || !rt.Equal(common.IntTy) {
			return common.Type(0), report.NewError(e.Loc, report.TypeMismatch,
				"comparison operands must both be int, got %s and %s", lt, rt)
		}
		e.SetType(common.BoolTy)
		return common.BoolTy, nil

	case ast.Equl:
		if !lt.Equal(rt) {
			return common.Type(0), report.NewError(e.Loc, report.TypeMismatch,
				"== operands must have the same type, got %s and %s", lt, rt)
		}
		e.SetType(common.BoolTy)
		return common.BoolTy, nil

	case ast.And, ast.Or:
		if !lt.Equal(common.BoolTy) || !rt.Equal(common.BoolTy) {
			return common.Type(0), report.NewError(e.Loc, report.TypeMismatch,
				"logical operands must both be bool, got %s and %s", lt, rt)
		}
		e.SetType(common.BoolTy)
		return common.BoolTy, nil

	default:
		panic("check: unhandled binary operator")
	}
}
