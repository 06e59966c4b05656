// File: monitors_test.go
// Title: Monitor Registry Tests
// Description: Unit tests for monitor point recording and its statuses.
// Version: v0.1.0
// Created: 2026-08-25

package monitors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
)

func TestAddMonitor(t *testing.T) {
	table := names.NewTable()
	reg := devices.New(table)
	mon := New(reg)

	sw := table.LookupOne("sw1")
	ff := table.LookupOne("ff1")
	require.NoError(t, reg.MakeSwitch(sw, 0))
	require.NoError(t, reg.MakeDType(ff))

	assert.Equal(t, StatusOK, mon.Add(sw, names.NoID))
	assert.Equal(t, StatusOK, mon.Add(ff, reg.Q))
	assert.Equal(t, StatusMonitorPresent, mon.Add(sw, names.NoID))
	assert.Equal(t, StatusNotOutput, mon.Add(ff, reg.DATA))
	assert.Equal(t, StatusDeviceAbsent, mon.Add(table.LookupOne("ghost"), names.NoID))

	points := mon.Points()
	require.Len(t, points, 2)
	assert.Equal(t, sw, points[0].Device)
	assert.Equal(t, ff, points[1].Device)
}
