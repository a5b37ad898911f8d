package report

import "fmt"

// ErrorKind enumerates the single diagnostic taxonomy of spec.md 7. A
// CompileError always carries exactly one of these.
type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	TypeMismatch
	UnknownIdentifier
	RedefinedName
	UnexpectedReturn
	BodyNeverReturns
	MaybeMissingReturn
	Unreachable
	ArityMismatch
	ProcedureCannotReturnValue
	MainMustNotReturn
)

var errorKindNames = map[ErrorKind]string{
	SyntaxError:                "SyntaxError",
	TypeMismatch:                "TypeMismatch",
	UnknownIdentifier:           "UnknownIdentifier",
	RedefinedName:               "RedefinedName",
	UnexpectedReturn:            "UnexpectedReturn",
	BodyNeverReturns:            "BodyNeverReturns",
	MaybeMissingReturn:          "MaybeMissingReturn",
	Unreachable:                 "Unreachable",
	ArityMismatch:               "ArityMismatch",
	ProcedureCannotReturnValue:  "ProcedureCannotReturnValue",
	MainMustNotReturn:           "MainMustNotReturn",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "UnknownError"
}

// CompileError is the single diagnostic kind produced by the core (spec.md
// 7): a location, a kind, and a descriptive message. The core aborts the
// offending pass at the first CompileError and surfaces it to the caller; no
// partial IR is ever handed to the back-end.
type CompileError struct {
	Loc  Location
	Kind ErrorKind
	Msg  string
}

// NewError constructs a CompileError, formatting Msg the way fmt.Sprintf
// would.
func NewError(loc Location, kind ErrorKind, format string, args ...interface{}) *CompileError {
	return &CompileError{Loc: loc, Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Loc, e.Kind, e.Msg)
}
