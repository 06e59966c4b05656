// File: policy.go
// Title: Device-Kind Parameter Policies
// Description: One policy record per device kind drives the shared device
//              production in the parser: whether a parenthesised parameter
//              is allowed or required, its valid range, the default applied
//              when it is omitted, and the registry call that creates the
//              device.
// Version: v0.1.0
// Created: 2026-08-25

package parser

import (
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
)

// paramMode states how a device kind treats its parenthesised parameter
type paramMode int

const (
	// paramOptional applies the default when the parameter is omitted
	paramOptional paramMode = iota

	// paramRequired rejects statements without a parameter
	paramRequired

	// paramNone rejects statements with a parameter
	paramNone
)

// devicePolicy is the per-kind policy record
type devicePolicy struct {
	kind         devices.Kind
	mode         paramMode
	defaultParam int
	minParam     int
	maxParam     int
	rangeMessage string
	create       func(reg *devices.Registry, id names.ID, param int) error
}

func gatePolicy(kind devices.Kind) devicePolicy {
	return devicePolicy{
		kind:         kind,
		mode:         paramOptional,
		defaultParam: 2,
		minParam:     1,
		maxParam:     devices.MaxGateInputs,
		rangeMessage: "number of inputs must be between 1 and 16",
		create: func(reg *devices.Registry, id names.ID, param int) error {
			return reg.MakeGate(id, kind, param)
		},
	}
}

// devicePolicies maps device-kind keywords to their policies. The map keys
// double as the scanner's LOGIC keyword set.
var devicePolicies = map[string]devicePolicy{
	"AND":  gatePolicy(devices.KindAnd),
	"OR":   gatePolicy(devices.KindOr),
	"NAND": gatePolicy(devices.KindNand),
	"NOR":  gatePolicy(devices.KindNor),
	"XOR": {
		kind:         devices.KindXor,
		mode:         paramOptional,
		defaultParam: 2,
		minParam:     2,
		maxParam:     2,
		rangeMessage: "number of inputs must be 2",
		create: func(reg *devices.Registry, id names.ID, param int) error {
			return reg.MakeGate(id, devices.KindXor, param)
		},
	},
	"DTYPE": {
		kind: devices.KindDType,
		mode: paramNone,
		create: func(reg *devices.Registry, id names.ID, _ int) error {
			return reg.MakeDType(id)
		},
	},
	"CLOCK": {
		kind:         devices.KindClock,
		mode:         paramRequired,
		minParam:     1,
		maxParam:     int(^uint(0) >> 1),
		rangeMessage: "clock period must be greater than 0",
		create: func(reg *devices.Registry, id names.ID, param int) error {
			return reg.MakeClock(id, param)
		},
	},
	"SWITCH": {
		kind:         devices.KindSwitch,
		mode:         paramOptional,
		defaultParam: 0,
		minParam:     0,
		maxParam:     1,
		rangeMessage: "initial output must be 0 or 1",
		create: func(reg *devices.Registry, id names.ID, param int) error {
			return reg.MakeSwitch(id, param)
		},
	},
}
