// File: token.go
// Title: Definition-Language Tokens
// Description: Token kinds and the Token value handed from the scanner to
//              the parser. One token is live at a time; the parser never
//              buffers beyond its current lookahead.
// Version: v0.1.0
// Created: 2026-08-25

package parser

import (
	"fmt"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
)

// Kind represents the type of a lexical token
type Kind int

const (
	// KindEOF marks the end of the character stream
	KindEOF Kind = iota

	// KindHeading is a section name: devices, conns or monit
	KindHeading

	// KindLogic is a device-kind keyword: AND, OR, NAND, NOR, XOR,
	// DTYPE, CLOCK or SWITCH
	KindLogic

	// KindName is a user-chosen identifier
	KindName

	// KindNumber is an unsigned integer literal
	KindNumber

	// Fixed single-character tokens
	KindEqual        // =
	KindDot          // .
	KindComma        // ,
	KindSemicolon    // ;
	KindOpenParen    // (
	KindCloseParen   // )
	KindOpenBracket  // [
	KindCloseBracket // ]
)

// String returns the token kind name
func (k Kind) String() string {
	switch k {
	case KindEOF:
		return "EOF"
	case KindHeading:
		return "HEADING"
	case KindLogic:
		return "LOGIC"
	case KindName:
		return "NAME"
	case KindNumber:
		return "NUMBER"
	case KindEqual:
		return "EQUAL"
	case KindDot:
		return "DOT"
	case KindComma:
		return "COMMA"
	case KindSemicolon:
		return "SEMICOLON"
	case KindOpenParen:
		return "OPEN_PAREN"
	case KindCloseParen:
		return "CLOSE_PAREN"
	case KindOpenBracket:
		return "OPEN_BRACKET"
	case KindCloseBracket:
		return "CLOSE_BRACKET"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Kind   Kind
	ID     names.ID // interned identity for NAME and LOGIC tokens
	Text   string   // token text as written
	Value  int      // parsed value for NUMBER tokens
	Line   int      // line number (1-based)
	Column int      // column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case KindEOF:
		return "EOF"
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
	}
}
