// File: doc.go
// Title: Package Documentation
// Description: Package overview for the definition-language front end.
// Version: v0.1.0
// Created: 2026-08-25

// Package netdef translates textual circuit definitions into an in-memory
// logic-gate network.
//
// A definition file has a fixed section order:
//
//	[devices]
//	sw1, sw2 = SWITCH(0);
//	g1 = NAND(2);
//	[conns]
//	sw1 = g1.I1;
//	sw2 = g1.I2;
//
// The Engine wires the scanner and parser to the symbol table, the device
// registry, the connection fabric and the monitor registry, runs one parse
// pass and reports every diagnostic found in that pass:
//
//	engine := netdef.New(netdef.Options{})
//	result := engine.Build(source)
//	if !result.OK {
//	    for _, d := range result.Diagnostics {
//	        fmt.Print(d)
//	    }
//	}
//
// Parsing never stops at the first violation: each one becomes a single
// diagnostic and parsing resumes at the next statement or section
// boundary, so a user can fix many mistakes per edit cycle. A pass is
// accepted only when its diagnostic sequence is empty; partially built
// registry state from a failed pass is kept but never simulated.
package netdef
