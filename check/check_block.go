package check

import (
	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/report"
	"github.com/dwislpy/dwislpyc/rtns"
	"github.com/dwislpy/dwislpyc/symbols"
)

// checkBlock folds rtns.Seq across a block's statements, starting from Void
// (spec.md 4.3, "check_block"). expected is the declared return obligation
// of the enclosing definition (or rtns.Void() for the main script); it is
// threaded unchanged into every statement, including through nested blocks.
func checkBlock(block *ast.Block, expected rtns.Rtns, symt *symbols.SymT, defs map[string]*ast.Definition) (rtns.Rtns, *report.CompileError) {
	acc := rtns.Void()

	for _, stmt := range block.Stmts {
		local, err := checkStmt(stmt, expected, symt, defs)
		if err != nil {
			return rtns.Rtns{}, err
		}

		acc, err = rtns.Seq(acc, local, stmt.Location())
		if err != nil {
			return rtns.Rtns{}, err
		}
	}

	return acc, nil
}
