package translate

import (
	"sort"

	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/ir"
	"github.com/dwislpy/dwislpyc/symbols"
)

// wellKnown holds the string labels allocated once in the global table at
// the start of translation and referenced throughout (spec.md 9, "Global
// string labels").
type wellKnown struct {
	Eoln, True, False, None string
}

func internWellKnown(global *symbols.SymT) wellKnown {
	return wellKnown{
		Eoln:  global.AddString(common.EolnContent),
		True:  global.AddString(common.TrueContent),
		False: global.AddString(common.FalseContent),
		None:  global.AddString(common.NoneContent),
	}
}

// translator carries the state threaded through every translation call: the
// program's definitions (for call lowering) and the well-known string
// labels. It does not carry the symbol table or exit label, since those
// change per-definition and are passed explicitly (spec.md 4.5 threads the
// exit label as an argument, not as translator state).
type translator struct {
	defs map[string]*ast.Definition
	wk   wellKnown
}

// Translate lowers a checked program to a three-address IR artifact
// (spec.md 4.5). The caller must have already run check.Check successfully;
// Translate assumes every expression's type slot is filled. Definitions are
// translated in sorted-by-name order rather than map iteration order, so
// that the `$S<N>` labels symbols.SymT.AddString mints for string literals
// are assigned the same way on every run of the same AST (spec.md 8,
// "Determinism").
func Translate(prog *ast.Program) *ir.Artifact {
	tr := &translator{
		defs: prog.Defs,
		wk:   internWellKnown(prog.Globals),
	}

	artifact := ir.NewArtifact(prog.Globals)

	names := make([]string, 0, len(prog.Defs))
	for name := range prog.Defs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		artifact.Defs[name] = tr.translateDefn(prog.Defs[name])
	}

	artifact.Main = tr.translateMain(prog.Main, prog.Globals)

	return artifact
}
