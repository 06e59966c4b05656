// File: names.go
// Title: Symbol Name Interner
// Description: Maps device, keyword and pin names to stable numeric
//              identities so the scanner and parser can compare handles
//              instead of strings. Lookup interns unseen names; Query
//              never interns.
// Version: v0.1.0
// Created: 2026-08-25

package names

import (
	"sync"
)

// ID is a stable numeric handle for an interned name
type ID int

// NoID marks the absence of an identity (tokens without one, unconnected pins)
const NoID ID = -1

// Table interns names and resolves them back to strings
type Table struct {
	mu    sync.RWMutex
	ids   map[string]ID
	names []string
}

// NewTable creates an empty intern table
func NewTable() *Table {
	return &Table{
		ids: make(map[string]ID),
	}
}

// Lookup returns the identities for the given names, interning any that
// have not been seen before. The result preserves input order.
func (t *Table) Lookup(names []string) []ID {
	t.mu.Lock()
	defer t.mu.Unlock()

	ids := make([]ID, len(names))
	for i, name := range names {
		id, ok := t.ids[name]
		if !ok {
			id = ID(len(t.names))
			t.ids[name] = id
			t.names = append(t.names, name)
		}
		ids[i] = id
	}
	return ids
}

// LookupOne interns a single name and returns its identity
func (t *Table) LookupOne(name string) ID {
	return t.Lookup([]string{name})[0]
}

// Query returns the identity of a name without interning it. The second
// return value is false when the name has never been interned.
func (t *Table) Query(name string) (ID, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.ids[name]
	if !ok {
		return NoID, false
	}
	return id, true
}

// NameOf resolves an identity back to its name. Unknown identities
// resolve to the empty string.
func (t *Table) NameOf(id ID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if id < 0 || int(id) >= len(t.names) {
		return ""
	}
	return t.names[id]
}

// Len returns the number of interned names
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.names)
}
