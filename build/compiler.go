package build

import (
	"fmt"

	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/check"
	"github.com/dwislpy/dwislpyc/ir"
	"github.com/dwislpy/dwislpyc/mods"
	"github.com/dwislpy/dwislpyc/report"
	"github.com/dwislpy/dwislpyc/translate"
)

// Parser is the external collaborator that produces a checked-ready AST from
// source text (spec.md 1, "Out of scope": tokenizing and parsing). The core
// depends only on this interface, never on a concrete tokenizer/parser.
type Parser interface {
	Parse(path string) (*ast.Program, error)
}

// Compiler is the data structure responsible for running the core pipeline
// -- check then translate -- over one project (spec.md 2, "Control flow").
type Compiler struct {
	cfg      *mods.Config
	parser   Parser
	reporter *report.Reporter
}

// NewCompiler creates a compiler bound to a loaded project config and the
// parser it should use to obtain the program's AST.
func NewCompiler(cfg *mods.Config, parser Parser) *Compiler {
	return &Compiler{cfg: cfg, parser: parser}
}

// Compile runs parse -> check -> translate and reports a single diagnostic
// on the first failure (spec.md 7, "Policy"). It returns the completed
// artifact on success; writing it out is left to the caller.
func (c *Compiler) Compile() (*ir.Artifact, error) {
	report.BeginPhase("Parsing")
	prog, err := c.parser.Parse(c.cfg.EntryPath)
	if err != nil {
		report.EndPhase(false)
		return nil, err
	}
	report.EndPhase(true)

	c.reporter = report.NewReporter(c.cfg.LogLevel, c.cfg.EntryPath, nil)

	report.BeginPhase("Checking")
	if cerr := check.Check(prog); cerr != nil {
		report.EndPhase(false)
		c.reporter.Report(cerr)
		return nil, fmt.Errorf("compilation failed: %w", cerr)
	}
	report.EndPhase(true)

	report.BeginPhase("Translating")
	artifact := translate.Translate(prog)
	report.EndPhase(true)

	return artifact, nil
}
