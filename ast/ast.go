package ast

import (
	"github.com/dwislpy/dwislpyc/common"
	"github.com/dwislpy/dwislpyc/report"
	"github.com/dwislpy/dwislpyc/symbols"
)

// Program is the root AST node (spec.md 3, "Program"): the parser hands the
// core a map of definitions by name plus a main block and the global symbol
// table (spec.md 6, "Parser -> Core").
type Program struct {
	Defs map[string]*Definition
	Main *Block

	// Globals is the global symbol table. It has no parent of its own; it
	// *is* the parent every Definition's SymT points to.
	Globals *symbols.SymT
}

// NewProgram creates an empty program ready to have definitions and a main
// block attached, wired to a fresh global symbol table.
func NewProgram() *Program {
	return &Program{
		Defs:    make(map[string]*Definition),
		Globals: symbols.NewSymT(),
	}
}

// AddDef registers a definition by name. It is a programmer error to add two
// definitions under the same name; the parser is assumed to have already
// rejected that (spec.md 1, out of scope).
func (p *Program) AddDef(def *Definition) {
	if _, ok := p.Defs[def.Name]; ok {
		panic("ast: duplicate definition name reached the core: " + def.Name)
	}
	p.Defs[def.Name] = def
}

// SetMain attaches the program's main block.
func (p *Program) SetMain(main *Block) {
	p.Main = main
}

// Definition is a named function or procedure (spec.md 3, "Definition").
// ReturnType is NoneTy for a procedure.
type Definition struct {
	Name       string
	ReturnType common.Type
	Body       *Block
	SymT       *symbols.SymT
	Loc        report.Location
}

// NewDefinition constructs a Definition whose SymT is already parented to
// the program's global table, matching spec.md 6's contract that formals
// arrive pre-populated.
func NewDefinition(name string, retTy common.Type, loc report.Location, global *symbols.SymT) *Definition {
	symt := symbols.NewSymT()
	symt.SetParent(global)
	return &Definition{Name: name, ReturnType: retTy, SymT: symt, Loc: loc}
}
