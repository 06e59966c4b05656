// File: diag.go
// Title: Diagnostic Records and Accumulation
// Description: Defines the Diagnostic value produced for every scanner or
//              parser failure and the append-only List that collects them
//              over one parse pass. A diagnostic carries everything needed
//              to render a caret-pointing message without re-reading the
//              source.
// Version: v0.1.0
// Created: 2026-08-25

package diag

import (
	"fmt"
	"strings"
)

// Diagnostic is one structured, recoverable error record
type Diagnostic struct {
	Line     int    // 1-based line number
	LineText string // the source line, as written
	Column   int    // 1-based column of the offending position
	Code     Code
	Message  string
}

// String renders the diagnostic as a caret-pointing block:
//
//	Error - INVALID_NUMBER: number of inputs must be between 1 and 16
//	Line 2 Char 10:
//	g1 = AND(17);
//	         ^
//	Description: The parameter is outside the range allowed for this device kind.
func (d Diagnostic) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Error - %s: %s\n", d.Code, d.Message)
	fmt.Fprintf(&b, "Line %d Char %d:\n", d.Line, d.Column)
	b.WriteString(d.LineText)
	b.WriteString("\n")
	if d.Column > 0 {
		b.WriteString(strings.Repeat(" ", d.Column-1))
	}
	b.WriteString("^\n")
	fmt.Fprintf(&b, "Description: %s\n", d.Code.Description())

	return b.String()
}

// List accumulates diagnostics in detection order. It is append-only for
// the lifetime of one parse pass and is never shared between passes.
type List struct {
	diags []Diagnostic
}

// NewList creates an empty diagnostic list
func NewList() *List {
	return &List{}
}

// Add appends a diagnostic to the list
func (l *List) Add(d Diagnostic) {
	l.diags = append(l.diags, d)
}

// Len returns the number of recorded diagnostics
func (l *List) Len() int {
	return len(l.diags)
}

// Empty reports whether no diagnostic has been recorded
func (l *List) Empty() bool {
	return len(l.diags) == 0
}

// All returns the recorded diagnostics in detection order. The returned
// slice is a copy; mutating it does not affect the list.
func (l *List) All() []Diagnostic {
	out := make([]Diagnostic, len(l.diags))
	copy(out, l.diags)
	return out
}

// CountByCode returns how many diagnostics carry the given code
func (l *List) CountByCode(code Code) int {
	n := 0
	for _, d := range l.diags {
		if d.Code == code {
			n++
		}
	}
	return n
}
