package ir

import (
	"strings"
	"testing"

	"github.com/dwislpy/dwislpyc/symbols"
)

func TestInstrReprRoundTripsOperands(t *testing.T) {
	cases := []struct {
		instr Instr
		want  string
	}{
		{SET{Dest: "%t0", Imm: 42}, "SET %t0, 42"},
		{MOV{Dest: "%t1", Src: "%t0"}, "MOV %t1, %t0"},
		{Arith{Op: OpAdd, Dest: "%t2", Lhs: "%t0", Rhs: "%t1"}, "ADD %t2, %t0, %t1"},
		{BCN{Op: Lt, Lhs: "%t0", Rhs: "%t1", Then: "L0", Else: "L1"}, "BCN lt, %t0, %t1, L0, L1"},
		{BCZ{Op: Gtz, Operand: "%t0", Then: "L0", Else: "L1"}, "BCZ gtz, %t0, L0, L1"},
		{JMP{Label: "L0"}, "JMP L0"},
		{LBL{Label: "L0"}, "LBL L0"},
		{RTN{Operand: "%t0"}, "RTN %t0"},
		{NOP{}, "NOP"},
	}

	for _, c := range cases {
		if got := c.instr.Repr(); got != c.want {
			t.Errorf("Repr() = %q, want %q", got, c.want)
		}
	}
}

func TestCallReprOmitsDestWhenDiscarded(t *testing.T) {
	withDest := CLL{Name: "f", Args: []string{"%t0", "%t1"}, Dest: "%t2"}
	if got, want := withDest.Repr(), "CLL f, [%t0, %t1], %t2"; got != want {
		t.Errorf("Repr() = %q, want %q", got, want)
	}

	discarded := CLL{Name: "f", Args: []string{"%t0"}, Dest: ""}
	if got, want := discarded.Repr(), "CLL f, [%t0]"; got != want {
		t.Errorf("Repr() = %q, want %q", got, want)
	}
}

func TestArtifactStringOrdersDefinitionsBeforeMain(t *testing.T) {
	global := symbols.NewSymT()
	a := NewArtifact(global)
	a.Defs["zebra"] = []Instr{LBL{Label: "zebra"}, RTN{Operand: "%t0"}}
	a.Defs["alpha"] = []Instr{LBL{Label: "alpha"}, RTN{Operand: "%t0"}}
	a.Main = []Instr{LBL{Label: "main"}, NOP{}}

	out := a.String()

	alphaIdx := strings.Index(out, "LBL alpha")
	zebraIdx := strings.Index(out, "LBL zebra")
	mainIdx := strings.Index(out, "LBL main")

	if alphaIdx < 0 || zebraIdx < 0 || mainIdx < 0 {
		t.Fatalf("expected all three labels in listing, got:\n%s", out)
	}
	if !(alphaIdx < zebraIdx && zebraIdx < mainIdx) {
		t.Fatalf("expected definitions sorted by name before main, got:\n%s", out)
	}
}

func TestArtifactStringIndentsNonLabelInstructions(t *testing.T) {
	global := symbols.NewSymT()
	a := NewArtifact(global)
	a.Main = []Instr{LBL{Label: "main"}, NOP{}}

	out := a.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	if lines[0] != "LBL main" {
		t.Fatalf("expected label line unindented, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "    ") {
		t.Fatalf("expected instruction line indented, got %q", lines[1])
	}
}
