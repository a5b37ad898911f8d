package report

import "fmt"

// Location is a (line, column, source-file) triple attached immutably to
// every AST node at construction (spec.md 3, "Location"). Lines and columns
// are 1-indexed for display purposes.
type Location struct {
	Line, Col int
	File      string
}

// NewLocation builds a Location for the given file at the given line/column.
func NewLocation(file string, line, col int) Location {
	return Location{File: file, Line: line, Col: col}
}

// String renders the location the way diagnostics print it: "file:line:col".
func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Col)
}
