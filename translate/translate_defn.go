package translate

import (
	"github.com/dwislpy/dwislpyc/ast"
	"github.com/dwislpy/dwislpyc/ir"
	"github.com/dwislpy/dwislpyc/symbols"
)

// translateDefn lowers one function or procedure definition to its
// instruction vector (spec.md 4.5, the `LBL entry; ENTER; body; LBL exit;
// LEAVE` shape). The entry/exit labels are fixed from the definition's name
// rather than minted, matching the back-end's contract (spec.md 6) that
// every definition begins with `LBL <name>` and ends with `LBL <name>_done`.
func (tr *translator) translateDefn(def *ast.Definition) []ir.Instr {
	exit := def.Name + "_done"

	out := make([]ir.Instr, 0, 16)
	out = append(out, ir.LBL{Label: def.Name}, ir.ENTER{})

	tr.translateBlock(def.Body, exit, def.SymT, &out)

	out = append(out, ir.LBL{Label: exit}, ir.LEAVE{})
	return out
}

// translateMain lowers the main script the same way, under the fixed name
// "main".
func (tr *translator) translateMain(main *ast.Block, global *symbols.SymT) []ir.Instr {
	exit := "main_done"

	out := make([]ir.Instr, 0, 16)
	out = append(out, ir.LBL{Label: "main"}, ir.ENTER{})

	tr.translateBlock(main, exit, global, &out)

	out = append(out, ir.LBL{Label: exit}, ir.LEAVE{})
	return out
}
