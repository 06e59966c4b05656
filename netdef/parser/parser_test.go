// File: parser_test.go
// Title: Definition-Language Parser Tests
// Description: Unit tests for the recursive-descent parser: grammar
//              acceptance, per-kind parameter policies, connection
//              resolution, diagnostic accumulation and statement-level
//              recovery.
// Version: v0.1.0
// Created: 2026-08-25

package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/diag"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/monitors"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/network"
)

// harness bundles one parse pass with its collaborators
type harness struct {
	table *names.Table
	reg   *devices.Registry
	net   *network.Network
	mon   *monitors.Registry
	diags *diag.List
	ok    bool
}

func parseSource(t *testing.T, source string, opts Options) *harness {
	t.Helper()

	h := &harness{
		table: names.NewTable(),
		diags: diag.NewList(),
	}
	h.reg = devices.New(h.table)
	h.net = network.New(h.reg)
	h.mon = monitors.New(h.reg)

	p := New(source, h.table, h.reg, h.net, h.mon, h.diags, opts)
	h.ok = p.ParseNetwork()
	return h
}

// device returns the created device for a source-level name, or nil
func (h *harness) device(name string) *devices.Device {
	id, ok := h.table.Query(name)
	if !ok {
		return nil
	}
	return h.reg.Get(id)
}

func (h *harness) id(t *testing.T, name string) names.ID {
	t.Helper()
	id, ok := h.table.Query(name)
	require.True(t, ok, "name %q was never interned", name)
	return id
}

func TestParseWellFormedNetwork(t *testing.T) {
	source := `
# D-type driven through a NAND, clock at half-period 5
[devices]
sw1, sw2 = SWITCH(0);
g1 = NAND(2);
clk1 = CLOCK(5);
ff1 = DTYPE;
x1 = XOR;
[conns]
sw1 = g1.I1;
sw2 = g1.I2;
g1 = ff1.DATA;
clk1 = ff1.CLK;
ff1.Q = x1.I1;
sw1 = x1.I2;
`
	h := parseSource(t, source, Options{})

	require.True(t, h.ok, "diagnostics: %v", h.diags.All())
	assert.True(t, h.diags.Empty())
	assert.Equal(t, 6, h.reg.Count())
	assert.Equal(t, 6, h.net.Count())

	require.NotNil(t, h.device("sw1"))
	assert.Equal(t, devices.KindSwitch, h.device("sw1").Kind)
	assert.Equal(t, 0, h.device("sw1").SwitchState)

	g1 := h.device("g1")
	require.NotNil(t, g1)
	assert.Equal(t, devices.KindNand, g1.Kind)
	assert.Len(t, g1.Inputs, 2)

	clk1 := h.device("clk1")
	require.NotNil(t, clk1)
	assert.Equal(t, 5, clk1.ClockPeriod)

	x1 := h.device("x1")
	require.NotNil(t, x1)
	assert.Equal(t, devices.KindXor, x1.Kind)
	assert.Len(t, x1.Inputs, 2, "XOR defaults to two inputs")

	// The flip-flop's Q output drives the XOR's first input.
	conn, found := h.net.Source(h.id(t, "x1"), x1.Inputs[0])
	require.True(t, found)
	assert.Equal(t, h.id(t, "ff1"), conn.Source)
	assert.Equal(t, h.reg.Q, conn.SourcePin)

	// Primary outputs carry the NoID pin.
	conn, found = h.net.Source(h.id(t, "g1"), g1.Inputs[0])
	require.True(t, found)
	assert.Equal(t, h.id(t, "sw1"), conn.Source)
	assert.Equal(t, names.NoID, conn.SourcePin)
}

func TestParseOmittedGateParameterDefaultsToTwo(t *testing.T) {
	source := `
[devices]
g1 = AND;
sw1, sw2 = SWITCH;
[conns]
sw1 = g1.I1;
sw2 = g1.I2;
`
	h := parseSource(t, source, Options{})

	require.True(t, h.ok, "diagnostics: %v", h.diags.All())
	assert.Len(t, h.device("g1").Inputs, 2)
	assert.Equal(t, 0, h.device("sw1").SwitchState)
}

func TestParseDuplicateNameInOneBatch(t *testing.T) {
	source := `
[devices]
a, a = AND(2);
[conns]
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.Len())
	assert.Equal(t, 1, h.diags.CountByCode(diag.NameDefined))
	assert.Equal(t, 0, h.reg.Count(), "abandoned statement must create nothing")
}

func TestParseDuplicateNameAcrossStatements(t *testing.T) {
	source := `
[devices]
a = AND(2);
a = OR(2);
[conns]
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.CountByCode(diag.NameDefined))

	// The first declaration wins; the duplicate statement is abandoned.
	require.Equal(t, 1, h.reg.Count())
	assert.Equal(t, devices.KindAnd, h.device("a").Kind)
}

func TestParseParameterRangeViolations(t *testing.T) {
	tests := []struct {
		name      string
		statement string
	}{
		{"and with 17 inputs", "g = AND(17);"},
		{"and with 0 inputs", "g = AND(0);"},
		{"xor with 3 inputs", "g = XOR(3);"},
		{"clock with period 0", "g = CLOCK(0);"},
		{"switch with state 2", "g = SWITCH(2);"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := fmt.Sprintf("[devices]\n%s\n[conns]\n", tt.statement)
			h := parseSource(t, source, Options{})

			assert.False(t, h.ok)
			assert.Equal(t, 1, h.diags.Len(), "exactly one diagnostic: %v", h.diags.All())
			assert.Equal(t, 1, h.diags.CountByCode(diag.InvalidNumber))
			assert.Equal(t, 0, h.reg.Count(), "range violation must not create a device")
		})
	}
}

func TestParseParameterRangeDiagnosticPointsAtNumber(t *testing.T) {
	h := parseSource(t, "[devices]\ng = AND(17);\n[conns]\n", Options{})

	require.Equal(t, 1, h.diags.Len())
	d := h.diags.All()[0]
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 9, d.Column, "diagnostic must point at the number, not the ';'")
	assert.Equal(t, "g = AND(17);", d.LineText)
}

func TestParseDeviceSyntaxErrors(t *testing.T) {
	tests := []struct {
		name      string
		statement string
		wantCode  diag.Code
	}{
		{"missing equals", "g AND(2);", diag.SyntaxError},
		{"unknown kind", "g = FOO;", diag.InvalidLogicGate},
		{"clock without parameter", "c = CLOCK;", diag.SyntaxError},
		{"dtype with parameter", "d = DTYPE(1);", diag.SyntaxError},
		{"missing close paren", "g = AND(2;", diag.SyntaxError},
		{"missing semicolon", "g = AND(2) h = OR(2);", diag.SyntaxError},
		{"number as name", "1g = AND(2);", diag.InvalidName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := fmt.Sprintf("[devices]\n%s\n[conns]\n", tt.statement)
			h := parseSource(t, source, Options{})

			assert.False(t, h.ok)
			assert.Equal(t, 1, h.diags.Len(), "exactly one diagnostic: %v", h.diags.All())
			assert.Equal(t, 1, h.diags.CountByCode(tt.wantCode))
		})
	}
}

func TestParseTrailingCommaBeforeEquals(t *testing.T) {
	source := `
[devices]
a, b, = AND(2);
[conns]
`
	h := parseSource(t, source, Options{})

	require.True(t, h.ok, "diagnostics: %v", h.diags.All())
	assert.Equal(t, 2, h.reg.Count())
	assert.NotNil(t, h.device("a"))
	assert.NotNil(t, h.device("b"))
}

func TestParseRecoveryCollectsOneDiagnosticPerStatement(t *testing.T) {
	source := `
[devices]
g1 = AND(17);
g2 AND(2);
g3 = NOR(2);
[conns]
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 2, h.diags.Len(), "one diagnostic per broken statement: %v", h.diags.All())
	assert.Equal(t, 1, h.diags.CountByCode(diag.InvalidNumber))
	assert.Equal(t, 1, h.diags.CountByCode(diag.SyntaxError))

	// Parsing resumed after each broken statement.
	require.Equal(t, 1, h.reg.Count())
	assert.Equal(t, devices.KindNor, h.device("g3").Kind)
}

func TestParseDiagnosticsStayOrdered(t *testing.T) {
	source := `
[devices]
g1 = AND(17);
g2 = XOR(3);
g3 = SWITCH(9);
[conns]
`
	h := parseSource(t, source, Options{})

	require.Equal(t, 3, h.diags.Len())
	lines := []int{}
	for _, d := range h.diags.All() {
		lines = append(lines, d.Line)
	}
	assert.Equal(t, []int{3, 4, 5}, lines, "diagnostics must keep detection order")
}

func TestParseMissingCloseBracketHeader(t *testing.T) {
	source := `
[devices
sw1 = SWITCH(1);
[conns]
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.GreaterOrEqual(t, h.diags.CountByCode(diag.InvalidHeader), 1)
}

func TestParseWrongSectionName(t *testing.T) {
	source := `
[monit]
sw1 = SWITCH(1);
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.GreaterOrEqual(t, h.diags.CountByCode(diag.InvalidHeader), 1)
}

func TestParseMissingConnsSection(t *testing.T) {
	source := `
[devices]
sw1 = SWITCH(1);
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.CountByCode(diag.SyntaxError))
	assert.Contains(t, h.diags.All()[0].Message, "[conns]")

	// The switch from the successful prefix is kept.
	assert.Equal(t, 1, h.reg.Count())
}

func TestParseEmptyConnsSectionAtEOF(t *testing.T) {
	source := `
[devices]
sw1 = SWITCH(1);
[conns]
`
	h := parseSource(t, source, Options{})

	assert.True(t, h.ok, "a device with no connections is legal: %v", h.diags.All())
	assert.Equal(t, 0, h.net.Count())
}

func TestParseReservedWordAsDeviceName(t *testing.T) {
	source := `
[devices]
and = AND(2);
[conns]
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.CountByCode(diag.InvalidName))

	// The scanner flags the collision but still hands over a NAME token,
	// so the device itself is created.
	assert.Equal(t, 1, h.reg.Count())
}

func TestParseConnUndeclaredDevice(t *testing.T) {
	source := `
[devices]
x1 = AND(2);
sw1 = SWITCH(0);
[conns]
sw1 = x1.I1;
x1.I1 = nosuch.I1;
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.Len(), "exactly one diagnostic: %v", h.diags.All())
	assert.Equal(t, 1, h.diags.CountByCode(diag.InvalidDevice))
	assert.Equal(t, 1, h.net.Count(), "no connection request for the broken statement")
}

func TestParseConnPinViolations(t *testing.T) {
	devicesSection := `
[devices]
g1 = AND(2);
ff1 = DTYPE;
sw1 = SWITCH(0);
[conns]
`
	tests := []struct {
		name      string
		statement string
		wantCode  diag.Code
	}{
		{"input pin out of range", "sw1 = g1.I3;", diag.InvalidPin},
		{"pin number above 16", "sw1 = g1.I17;", diag.InvalidName},
		{"pin zero", "sw1 = g1.I0;", diag.InvalidName},
		{"output pin as destination", "sw1 = ff1.Q;", diag.InvalidPin},
		{"dtype pin on gate", "sw1 = g1.DATA;", diag.InvalidPin},
		{"selector that is not an output", "ff1.DATA = g1.I1;", diag.InvalidPin},
		{"gate with output selector", "g1.Q = ff1.DATA;", diag.InvalidPin},
		{"missing destination pin", "sw1 = g1;", diag.SyntaxError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := parseSource(t, devicesSection+tt.statement+"\n", Options{})

			assert.False(t, h.ok)
			assert.Equal(t, 1, h.diags.Len(), "exactly one diagnostic: %v", h.diags.All())
			assert.Equal(t, 1, h.diags.CountByCode(tt.wantCode))
			assert.Equal(t, 0, h.net.Count())
		})
	}
}

func TestParseConnDoubleDrivenInput(t *testing.T) {
	source := `
[devices]
g1 = AND(2);
sw1, sw2 = SWITCH(0);
[conns]
sw1 = g1.I1;
sw2 = g1.I1;
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.CountByCode(diag.SyntaxError))
	assert.Contains(t, h.diags.All()[0].Message, "already connected")

	// The first wire stands.
	require.Equal(t, 1, h.net.Count())
	conn, found := h.net.Source(h.id(t, "g1"), h.device("g1").Inputs[0])
	require.True(t, found)
	assert.Equal(t, h.id(t, "sw1"), conn.Source)
}

func TestParseConnFanOutList(t *testing.T) {
	source := `
[devices]
g1 = AND(2);
g2 = OR(2);
sw1 = SWITCH(1);
[conns]
sw1 = g1.I1, g1.I2, g2.I1;
sw1 = g2.I2;
`
	h := parseSource(t, source, Options{})

	require.True(t, h.ok, "diagnostics: %v", h.diags.All())
	assert.Equal(t, 4, h.net.Count())

	for _, pin := range h.device("g1").Inputs {
		conn, found := h.net.Source(h.id(t, "g1"), pin)
		require.True(t, found)
		assert.Equal(t, h.id(t, "sw1"), conn.Source)
	}
}

func TestParseConnQbarSelector(t *testing.T) {
	source := `
[devices]
ff1 = DTYPE;
g1 = AND(2);
sw1 = SWITCH(0);
clk1 = CLOCK(1);
[conns]
clk1 = ff1.CLK;
sw1 = ff1.DATA;
ff1.QBAR = g1.I1;
sw1 = g1.I2;
`
	h := parseSource(t, source, Options{})

	require.True(t, h.ok, "diagnostics: %v", h.diags.All())

	conn, found := h.net.Source(h.id(t, "g1"), h.device("g1").Inputs[0])
	require.True(t, found)
	assert.Equal(t, h.id(t, "ff1"), conn.Source)
	assert.Equal(t, h.reg.QBAR, conn.SourcePin)
}

func TestParseConnSetClearPins(t *testing.T) {
	source := `
[devices]
ff1 = DTYPE;
sw1, sw2 = SWITCH(0);
[conns]
sw1 = ff1.SET;
sw2 = ff1.CLEAR;
`
	h := parseSource(t, source, Options{})

	require.True(t, h.ok, "diagnostics: %v", h.diags.All())
	assert.Equal(t, 2, h.net.Count())

	conn, found := h.net.Source(h.id(t, "ff1"), h.reg.SET)
	require.True(t, found)
	assert.Equal(t, h.id(t, "sw1"), conn.Source)
}

func TestParseStatementIterationOverflow(t *testing.T) {
	var b strings.Builder
	b.WriteString("[devices]\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "g%d = AND(2);\n", i)
	}
	b.WriteString("[conns]\n")

	h := parseSource(t, b.String(), Options{MaxStatementIterations: 3})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.CountByCode(diag.OverflowError))
	assert.Equal(t, 3, h.reg.Count(), "statements before the guard are kept")
}

func TestParseEmptySource(t *testing.T) {
	h := parseSource(t, "", Options{})

	assert.False(t, h.ok)
	assert.GreaterOrEqual(t, h.diags.Len(), 1)
	assert.Equal(t, 0, h.reg.Count())
	assert.Equal(t, 0, h.net.Count())
}

func TestParseScannerAndParserDiagnosticsInterleave(t *testing.T) {
	source := `
[devices]
g$1 = AND(2);
g2 = XOR(3);
[conns]
`
	h := parseSource(t, source, Options{})

	assert.False(t, h.ok)
	assert.Equal(t, 1, h.diags.CountByCode(diag.InvalidCharacter))
	assert.Equal(t, 1, h.diags.CountByCode(diag.InvalidNumber))
}
