package ir

import "fmt"

// Instr is the parent interface for the three-address instruction set of
// spec.md 4.4. Every instruction refers to operands only by names minted
// from the symbol table: locals, formals, temporaries, and labels.
type Instr interface {
	Repr() string
}

// NumCmpOp enumerates the numeric comparisons usable in BCN.
type NumCmpOp int

const (
	Lt NumCmpOp = iota
	Le
	Eq
	Ne
	Gt
	Ge
)

func (op NumCmpOp) String() string {
	return [...]string{"lt", "le", "eq", "ne", "gt", "ge"}[op]
}

// ZeroCmpOp enumerates the zero comparisons usable in BCZ.
type ZeroCmpOp int

const (
	Gtz ZeroCmpOp = iota
	Eqz
)

func (op ZeroCmpOp) String() string {
	return [...]string{"gtz", "eqz"}[op]
}

// LBL defines a label at this point in the instruction stream.
type LBL struct{ Label string }

func (i LBL) Repr() string { return fmt.Sprintf("LBL %s", i.Label) }

// ENTER marks a function's frame prologue.
type ENTER struct{}

func (ENTER) Repr() string { return "ENTER" }

// LEAVE marks a function's frame epilogue.
type LEAVE struct{}

func (LEAVE) Repr() string { return "LEAVE" }

// SET stores an integer immediate in Dest.
type SET struct {
	Dest string
	Imm  int64
}

func (i SET) Repr() string { return fmt.Sprintf("SET %s, %d", i.Dest, i.Imm) }

// STL loads a pointer to an interned string label into Dest.
type STL struct {
	Dest  string
	Label string
}

func (i STL) Repr() string { return fmt.Sprintf("STL %s, %s", i.Dest, i.Label) }

// MOV copies the value of Src into Dest.
type MOV struct {
	Dest, Src string
}

func (i MOV) Repr() string { return fmt.Sprintf("MOV %s, %s", i.Dest, i.Src) }

// ArithOp enumerates the binary arithmetic opcodes.
type ArithOp int

const (
	OpAdd ArithOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
)

func (op ArithOp) String() string {
	return [...]string{"ADD", "SUB", "MUL", "DIV", "MOD"}[op]
}

// Arith is a binary arithmetic instruction (ADD/SUB/MUL/DIV/MOD).
type Arith struct {
	Op        ArithOp
	Dest      string
	Lhs, Rhs  string
}

func (i Arith) Repr() string {
	return fmt.Sprintf("%s %s, %s, %s", i.Op, i.Dest, i.Lhs, i.Rhs)
}

// BCN branches by numeric comparison of Lhs and Rhs: to Then if the compare
// holds, to Else otherwise.
type BCN struct {
	Op         NumCmpOp
	Lhs, Rhs   string
	Then, Else string
}

func (i BCN) Repr() string {
	return fmt.Sprintf("BCN %s, %s, %s, %s, %s", i.Op, i.Lhs, i.Rhs, i.Then, i.Else)
}

// BCZ branches by comparing Operand against zero.
type BCZ struct {
	Op         ZeroCmpOp
	Operand    string
	Then, Else string
}

func (i BCZ) Repr() string {
	return fmt.Sprintf("BCZ %s, %s, %s, %s", i.Op, i.Operand, i.Then, i.Else)
}

// JMP unconditionally jumps to Label.
type JMP struct{ Label string }

func (i JMP) Repr() string { return fmt.Sprintf("JMP %s", i.Label) }

// PTI prints an integer-valued operand followed by no newline.
type PTI struct{ Operand string }

func (i PTI) Repr() string { return fmt.Sprintf("PTI %s", i.Operand) }

// PTS prints a string-pointer operand.
type PTS struct{ Operand string }

func (i PTS) Repr() string { return fmt.Sprintf("PTS %s", i.Operand) }

// GTI reads a line from the console and parses it as an integer into Dest.
type GTI struct{ Dest string }

func (i GTI) Repr() string { return fmt.Sprintf("GTI %s", i.Dest) }

// CLL calls a definition by name with Args, optionally storing the result in
// Dest ("" means the result is discarded).
type CLL struct {
	Name string
	Args []string
	Dest string
}

func (i CLL) Repr() string {
	argList := ""
	for idx, a := range i.Args {
		if idx > 0 {
			argList += ", "
		}
		argList += a
	}
	if i.Dest == "" {
		return fmt.Sprintf("CLL %s, [%s]", i.Name, argList)
	}
	return fmt.Sprintf("CLL %s, [%s], %s", i.Name, argList, i.Dest)
}

// RTN sets the function's return value to Operand.
type RTN struct{ Operand string }

func (i RTN) Repr() string { return fmt.Sprintf("RTN %s", i.Operand) }

// NOP performs no operation.
type NOP struct{}

func (NOP) Repr() string { return "NOP" }
