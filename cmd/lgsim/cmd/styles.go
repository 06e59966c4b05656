// File: styles.go
// Title: Diagnostic Output Styles
// Description: Terminal styles for rendering parser diagnostics.
// Version: v0.1.0
// Created: 2026-08-25

package cmd

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	colorError     = lipgloss.Color("#EF4444")
	colorAccent    = lipgloss.Color("#F59E0B")
	colorSecondary = lipgloss.Color("#10B981")
	colorMuted     = lipgloss.Color("#6B7280")
)

// Styles
var (
	errorHeadStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	positionStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	caretStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	descriptionStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Italic(true)

	okStyle = lipgloss.NewStyle().
		Foreground(colorSecondary)

	failStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)
)
