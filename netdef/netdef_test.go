// File: netdef_test.go
// Title: Definition-Language Engine Tests
// Description: Integration tests running whole definition files through
//              the engine and checking the resulting netlist and
//              diagnostic sequences.
// Version: v0.1.0
// Created: 2026-08-25

package netdef

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/diag"
)

func readTestdata(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(data)
}

func TestEngineBuildLatch(t *testing.T) {
	engine := New(Options{})
	result := engine.Build(readTestdata(t, "latch.def"))

	require.True(t, result.OK, "diagnostics: %v", result.Diagnostics)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, 7, result.Devices)
	assert.Equal(t, 8, result.Connections)
	assert.NotEmpty(t, result.PassID)
	assert.GreaterOrEqual(t, result.Duration.Nanoseconds(), int64(0))

	ffID, ok := engine.Names.Query("ff1")
	require.True(t, ok)
	ff := engine.Devices.Get(ffID)
	require.NotNil(t, ff)
	assert.Equal(t, devices.KindDType, ff.Kind)

	// Every flip-flop input is driven.
	for _, pin := range ff.Inputs {
		_, found := engine.Network.Source(ffID, pin)
		assert.True(t, found, "pin %s undriven", engine.Names.NameOf(pin))
	}
}

func TestEngineBuildBrokenCollectsAllDiagnostics(t *testing.T) {
	engine := New(Options{})
	result := engine.Build(readTestdata(t, "broken.def"))

	assert.False(t, result.OK)
	require.Len(t, result.Diagnostics, 6, "diagnostics: %v", result.Diagnostics)

	codes := make([]diag.Code, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		codes = append(codes, d.Code)
	}
	assert.Equal(t, []diag.Code{
		diag.InvalidNumber, // AND(17)
		diag.SyntaxError,   // missing '='
		diag.NameDefined,   // sw1 declared twice
		diag.SyntaxError,   // CLOCK without parameter
		diag.InvalidPin,    // g3.I9 on a two-input gate
		diag.InvalidDevice, // ghost never declared
	}, codes)

	// The successful prefix survives the failed pass.
	assert.Equal(t, 2, result.Devices)
	assert.Equal(t, 1, result.Connections)
}

func TestEngineDiagnosticRendering(t *testing.T) {
	engine := New(Options{})
	result := engine.Build(readTestdata(t, "broken.def"))

	require.NotEmpty(t, result.Diagnostics)
	first := result.Diagnostics[0]
	rendered := first.String()
	assert.Contains(t, rendered, string(diag.InvalidNumber))
	assert.Contains(t, rendered, "g1 = AND(17);")
	assert.Contains(t, rendered, "^")
	assert.Contains(t, rendered, diag.InvalidNumber.Description())
}

func TestEngineResetsBetweenPasses(t *testing.T) {
	engine := New(Options{})

	first := engine.Build(readTestdata(t, "latch.def"))
	require.True(t, first.OK)

	second := engine.Build("[devices]\nonly = SWITCH(1);\n[conns]\n")
	require.True(t, second.OK, "diagnostics: %v", second.Diagnostics)

	assert.Equal(t, 1, second.Devices)
	assert.Equal(t, 1, engine.Devices.Count(), "previous pass must not leak")
	_, ok := engine.Names.Query("ff1")
	assert.False(t, ok, "symbol table must be fresh per pass")

	assert.NotEqual(t, first.PassID, second.PassID)
}

func TestEngineBuildEmptySource(t *testing.T) {
	engine := New(Options{})
	result := engine.Build("")

	assert.False(t, result.OK)
	assert.NotEmpty(t, result.Diagnostics)
	assert.Equal(t, 0, result.Devices)
}
