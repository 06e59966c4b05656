// File: format.go
// Title: Log Output Formatters
// Description: Formatter implementations that turn log entries into bytes.
//              JSON is the default for machine consumption; the text format
//              is meant for terminals.
// Version: v0.1.0
// Created: 2026-08-25

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Entry represents a single log entry with all its metadata
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	Fields    Fields
}

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Format identifies an output format
type Format int

const (
	// FormatJSON emits one JSON object per entry (default)
	FormatJSON Format = iota

	// FormatText emits a human-readable single line per entry
	FormatText
)

// ParseFormat converts a string into a Format
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "text", "console":
		return FormatText, nil
	default:
		return FormatJSON, fmt.Errorf("unknown log format: %q", s)
	}
}

// Formatter converts an entry into output bytes
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter renders entries as JSON objects
type JSONFormatter struct {
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format renders the entry as a single JSON line
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"time":    entry.Timestamp.Format(f.TimestampFormat),
		"level":   entry.Level.String(),
		"message": entry.Message,
	}
	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	for k, v := range entry.Fields {
		data[k] = v
	}

	line, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return append(line, '\n'), nil
}

// TextFormatter renders entries as readable single lines
type TextFormatter struct {
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with a compact timestamp
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "2006-01-02 15:04:05"}
}

// Format renders the entry as "time [LEVEL] (logger) message key=value ..."
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(f.TimestampFormat))
	b.WriteString(" [")
	b.WriteString(strings.ToUpper(entry.Level.String()))
	b.WriteString("]")
	if entry.Logger != "" {
		b.WriteString(" (")
		b.WriteString(entry.Logger)
		b.WriteString(")")
	}
	b.WriteString(" ")
	b.WriteString(entry.Message)

	if len(entry.Fields) > 0 {
		keys := make([]string, 0, len(entry.Fields))
		for k := range entry.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(fmt.Sprintf(" %s=%v", k, entry.Fields[k]))
		}
	}
	b.WriteString("\n")

	return []byte(b.String()), nil
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	default:
		return NewJSONFormatter()
	}
}
