// File: codes.go
// Title: Diagnostic Code Definitions
// Description: Defines the closed set of diagnostic codes raised while
//              scanning and parsing circuit definition files, together
//              with a user-facing description per code.
// Version: v0.1.0
// Created: 2026-08-25

package diag

// Code classifies a diagnostic
type Code string

// Diagnostic codes raised by the scanner and parser
const (
	// Scanner-level
	InvalidCharacter Code = "INVALID_CHARACTER"

	// Parser-level
	InvalidHeader    Code = "INVALID_HEADER"
	InvalidName      Code = "INVALID_NAME"
	NameDefined      Code = "NAME_DEFINED"
	InvalidLogicGate Code = "INVALID_LOGIC_GATE"
	InvalidNumber    Code = "INVALID_NUMBER"
	SyntaxError      Code = "SYNTAX_ERROR"
	OverflowError    Code = "OVERFLOW_ERROR"
	InvalidPin       Code = "INVALID_PIN"
	InvalidDevice    Code = "INVALID_DEVICE"
)

// descriptions carries the longer user-facing explanation per code
var descriptions = map[Code]string{
	InvalidCharacter: "This character is not allowed in the definition file.",
	InvalidHeader:    "Section headers must be written as [devices], [conns] or [monit], in this order.",
	InvalidName:      "The name is either a reserved word or not a valid device name. Names must start with a letter and may only contain letters and digits.",
	NameDefined:      "Each device name may be declared only once across the whole [devices] section.",
	InvalidLogicGate: "The device kind must be one of AND, OR, NAND, NOR, XOR, DTYPE, CLOCK or SWITCH.",
	InvalidNumber:    "The parameter is outside the range allowed for this device kind.",
	SyntaxError:      "The statement does not follow the definition-file grammar.",
	OverflowError:    "A section loop ran past its iteration bound; check that the file has the expected section structure.",
	InvalidPin:       "The pin does not exist on the addressed device.",
	InvalidDevice:    "The device has not been declared in the [devices] section.",
}

// String returns the code text
func (c Code) String() string {
	return string(c)
}

// Description returns the longer explanation for the code
func (c Code) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "Unknown error."
}

// IsValid reports whether the code belongs to the closed taxonomy
func (c Code) IsValid() bool {
	_, ok := descriptions[c]
	return ok
}
