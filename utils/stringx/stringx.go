// File: stringx.go
// Title: String Utility Functions
// Description: Small string helpers shared by the scanner, the diagnostic
//              renderer and the configuration loader. Only operations that
//              the standard library does not cover directly (or covers
//              awkwardly) live here.
// Version: v0.1.0
// Created: 2026-08-25

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsEmpty returns true if the string has length 0.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	if IsEmpty(s) {
		return true
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// EqualIgnoreCase reports whether two strings are equal under Unicode
// case-folding.
func EqualIgnoreCase(a, b string) bool {
	return strings.EqualFold(a, b)
}

// SplitLines splits a string into lines, handling \n, \r\n and \r endings.
// The line terminators are not part of the returned lines.
func SplitLines(s string) []string {
	if IsEmpty(s) {
		return []string{}
	}

	normalized := strings.ReplaceAll(s, "\r\n", "\n")
	normalized = strings.ReplaceAll(normalized, "\r", "\n")
	return strings.Split(normalized, "\n")
}

// Truncate shortens a string to at most maxLen runes, appending "..." when
// truncation occurred. maxLen values of 3 or less return only dots.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return strings.Repeat(".", maxLen)
	}

	runes := []rune(s)
	return string(runes[:maxLen-3]) + "..."
}
