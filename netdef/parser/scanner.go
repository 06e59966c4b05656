// File: scanner.go
// Title: Definition-Language Scanner
// Description: Converts the characters of a circuit definition file into a
//              lazy sequence of tokens. Skips whitespace and #-comments,
//              classifies words against the fixed keyword sets, interns
//              NAME/LOGIC identities at scan time and records a diagnostic
//              for every character the language does not know.
// Version: v0.1.0
// Created: 2026-08-25

package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/diag"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/utils/stringx"
)

// sectionNames is the fixed set of section headings
var sectionNames = map[string]bool{
	"devices": true,
	"conns":   true,
	"monit":   true,
}

// isReserved reports whether a word collides case-insensitively with a
// section name or a device-kind keyword
func isReserved(word string) bool {
	lower := strings.ToLower(word)
	if sectionNames[lower] {
		return true
	}
	for keyword := range devicePolicies {
		if stringx.EqualIgnoreCase(word, keyword) {
			return true
		}
	}
	return false
}

// Scanner performs lexical analysis of a circuit definition file. The
// cursor state is owned exclusively by one Scanner instance.
type Scanner struct {
	table *names.Table
	diags *diag.List

	input   string
	lines   []string
	pos     int  // current position in input (points to current char)
	readPos int  // current reading position (after current char)
	ch      byte // current char under examination
	line    int  // current line number (1-based)
	column  int  // current column number (1-based)

	atEOF    bool
	eofToken Token
}

// NewScanner creates a scanner over the given input. NAME and LOGIC
// identities resolve through table; diagnostics accumulate into diags.
func NewScanner(input string, table *names.Table, diags *diag.List) *Scanner {
	s := &Scanner{
		table: table,
		diags: diags,
		input: input,
		lines: stringx.SplitLines(input),
		line:  1,
	}
	s.readChar() // load first character
	return s
}

// Next returns the next token. After the end of the stream it keeps
// returning the same EOF token with no further side effects.
func (s *Scanner) Next() Token {
	if s.atEOF {
		return s.eofToken
	}

	for {
		s.skipWhitespace()

		if s.ch == '#' {
			s.skipComment()
			continue
		}

		line, column := s.line, s.column

		switch {
		case s.ch == 0:
			s.atEOF = true
			s.eofToken = Token{Kind: KindEOF, ID: names.NoID, Line: line, Column: column}
			return s.eofToken

		case isLetter(s.ch):
			return s.scanWord(line, column)

		case isDigit(s.ch):
			return s.scanNumber(line, column)
		}

		if kind, ok := punctuation(s.ch); ok {
			tok := Token{Kind: kind, ID: names.NoID, Text: string(s.ch), Line: line, Column: column}
			s.readChar()
			return tok
		}

		// Unscannable character: record a diagnostic, consume it and
		// carry on with the next token.
		s.addDiag(diag.InvalidCharacter, fmt.Sprintf("invalid character %q", string(s.ch)), line, column)
		s.readChar()
	}
}

// ScanAll returns every remaining token up to and including EOF
func (s *Scanner) ScanAll() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == KindEOF {
			return tokens
		}
	}
}

// LineText returns the source text of a 1-based line number, for
// caret-style diagnostic rendering
func (s *Scanner) LineText(line int) string {
	if line < 1 || line > len(s.lines) {
		return ""
	}
	return s.lines[line-1]
}

// scanWord consumes a maximal alphanumeric run starting with a letter and
// classifies it as HEADING, LOGIC or NAME
func (s *Scanner) scanWord(line, column int) Token {
	start := s.pos
	for isLetter(s.ch) || isDigit(s.ch) {
		s.readChar()
	}
	word := s.input[start:s.pos]

	if sectionNames[word] {
		return Token{Kind: KindHeading, ID: names.NoID, Text: word, Line: line, Column: column}
	}

	if _, ok := devicePolicies[word]; ok {
		return Token{Kind: KindLogic, ID: s.table.LookupOne(word), Text: word, Line: line, Column: column}
	}

	// A reserved-word collision still yields a usable NAME token; the
	// caller decides whether to proceed.
	if isReserved(word) {
		s.addDiag(diag.InvalidName, fmt.Sprintf("invalid name: %s", word), line, column)
	}
	return Token{Kind: KindName, ID: s.table.LookupOne(word), Text: word, Line: line, Column: column}
}

// scanNumber consumes a maximal digit run
func (s *Scanner) scanNumber(line, column int) Token {
	start := s.pos
	for isDigit(s.ch) {
		s.readChar()
	}
	text := s.input[start:s.pos]

	value, err := strconv.Atoi(text)
	if err != nil {
		s.addDiag(diag.InvalidNumber, fmt.Sprintf("number %s is too large", text), line, column)
		value = 0
	}
	return Token{Kind: KindNumber, ID: names.NoID, Text: text, Value: value, Line: line, Column: column}
}

func (s *Scanner) addDiag(code diag.Code, message string, line, column int) {
	s.diags.Add(diag.Diagnostic{
		Line:     line,
		LineText: s.LineText(line),
		Column:   column,
		Code:     code,
		Message:  message,
	})
}

// readChar advances the cursor by one character
func (s *Scanner) readChar() {
	if s.readPos >= len(s.input) {
		s.ch = 0
	} else {
		s.ch = s.input[s.readPos]
	}

	s.pos = s.readPos
	s.readPos++

	if s.ch == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
}

func (s *Scanner) skipWhitespace() {
	for s.ch == ' ' || s.ch == '\t' || s.ch == '\n' || s.ch == '\r' {
		s.readChar()
	}
}

func (s *Scanner) skipComment() {
	for s.ch != '\n' && s.ch != 0 {
		s.readChar()
	}
}

func punctuation(ch byte) (Kind, bool) {
	switch ch {
	case '=':
		return KindEqual, true
	case '.':
		return KindDot, true
	case ',':
		return KindComma, true
	case ';':
		return KindSemicolon, true
	case '(':
		return KindOpenParen, true
	case ')':
		return KindCloseParen, true
	case '[':
		return KindOpenBracket, true
	case ']':
		return KindCloseBracket, true
	default:
		return KindEOF, false
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
