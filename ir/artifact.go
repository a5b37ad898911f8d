package ir

import (
	"github.com/dwislpy/dwislpyc/symbols"
)

// Artifact is the translator's output (spec.md 6, "Core -> Back-end"): an
// ordered instruction vector per definition, one for the main script, and
// the completed symbol table the back-end needs to lay out frames and
// string data.
type Artifact struct {
	Defs   map[string][]Instr
	Main   []Instr
	Global *symbols.SymT
}

// NewArtifact creates an empty artifact over the given global symbol table.
func NewArtifact(global *symbols.SymT) *Artifact {
	return &Artifact{Defs: make(map[string][]Instr), Global: global}
}
