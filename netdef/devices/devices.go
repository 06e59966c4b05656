// File: devices.go
// Title: Device Registry
// Description: Owns the devices created while parsing a definition file.
//              Devices are keyed by their interned name identity and expose
//              their ordered declared input pins so the parser can resolve
//              I<n> references. Kind-specific construction rules live here;
//              parameter-range policy lives in the parser.
// Version: v0.1.0
// Created: 2026-08-25

package devices

import (
	"fmt"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
)

// Kind identifies a logic primitive
type Kind int

const (
	KindAnd Kind = iota
	KindOr
	KindNand
	KindNor
	KindXor
	KindDType
	KindClock
	KindSwitch
)

// String returns the definition-language keyword for the kind
func (k Kind) String() string {
	switch k {
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindNand:
		return "NAND"
	case KindNor:
		return "NOR"
	case KindXor:
		return "XOR"
	case KindDType:
		return "DTYPE"
	case KindClock:
		return "CLOCK"
	case KindSwitch:
		return "SWITCH"
	default:
		return "UNKNOWN"
	}
}

// IsGate reports whether the kind is an input-counted gate
func (k Kind) IsGate() bool {
	switch k {
	case KindAnd, KindOr, KindNand, KindNor, KindXor:
		return true
	default:
		return false
	}
}

// MaxGateInputs is the largest declarable input count for a gate
const MaxGateInputs = 16

// Device is one created netlist device
type Device struct {
	ID   names.ID
	Kind Kind

	// Inputs holds the declared input pin identities in pin order
	// (I1..In for gates, CLK/DATA/SET/CLEAR for DTYPE).
	Inputs []names.ID

	// Outputs holds the output pin identities. Devices with a single
	// unnamed primary output carry names.NoID.
	Outputs []names.ID

	ClockPeriod int
	SwitchState int
}

// HasInput reports whether pin is a declared input of the device
func (d *Device) HasInput(pin names.ID) bool {
	for _, p := range d.Inputs {
		if p == pin {
			return true
		}
	}
	return false
}

// HasOutput reports whether pin addresses an output of the device
func (d *Device) HasOutput(pin names.ID) bool {
	for _, p := range d.Outputs {
		if p == pin {
			return true
		}
	}
	return false
}

// Registry owns all devices created during one parse pass
type Registry struct {
	table   *names.Table
	devices map[names.ID]*Device
	order   []names.ID

	// Fixed DTYPE pin identities, interned once at construction.
	CLK, DATA, SET, CLEAR, Q, QBAR names.ID
}

// New creates a registry bound to the given intern table
func New(table *names.Table) *Registry {
	pins := table.Lookup([]string{"CLK", "DATA", "SET", "CLEAR", "Q", "QBAR"})
	return &Registry{
		table:   table,
		devices: make(map[names.ID]*Device),
		CLK:     pins[0],
		DATA:    pins[1],
		SET:     pins[2],
		CLEAR:   pins[3],
		Q:       pins[4],
		QBAR:    pins[5],
	}
}

func (r *Registry) add(d *Device) error {
	if _, exists := r.devices[d.ID]; exists {
		return fmt.Errorf("device %q already exists", r.table.NameOf(d.ID))
	}
	r.devices[d.ID] = d
	r.order = append(r.order, d.ID)
	return nil
}

// gateInputPins interns and returns the ordered pin identities I1..In
func (r *Registry) gateInputPins(n int) []names.ID {
	pinNames := make([]string, n)
	for i := 0; i < n; i++ {
		pinNames[i] = fmt.Sprintf("I%d", i+1)
	}
	return r.table.Lookup(pinNames)
}

// MakeGate creates an input-counted gate device
func (r *Registry) MakeGate(id names.ID, kind Kind, inputs int) error {
	if !kind.IsGate() {
		return fmt.Errorf("kind %s is not a gate", kind)
	}
	if inputs < 1 || inputs > MaxGateInputs {
		return fmt.Errorf("gate input count %d out of range 1..%d", inputs, MaxGateInputs)
	}
	return r.add(&Device{
		ID:      id,
		Kind:    kind,
		Inputs:  r.gateInputPins(inputs),
		Outputs: []names.ID{names.NoID},
	})
}

// MakeDType creates a D-type flip-flop with CLK/DATA/SET/CLEAR inputs and
// Q/QBAR outputs
func (r *Registry) MakeDType(id names.ID) error {
	return r.add(&Device{
		ID:      id,
		Kind:    KindDType,
		Inputs:  []names.ID{r.CLK, r.DATA, r.SET, r.CLEAR},
		Outputs: []names.ID{r.Q, r.QBAR},
	})
}

// MakeClock creates a clock source with the given half-period
func (r *Registry) MakeClock(id names.ID, period int) error {
	if period < 1 {
		return fmt.Errorf("clock period %d must be at least 1", period)
	}
	return r.add(&Device{
		ID:          id,
		Kind:        KindClock,
		Outputs:     []names.ID{names.NoID},
		ClockPeriod: period,
	})
}

// MakeSwitch creates a switch with the given initial output (0 or 1)
func (r *Registry) MakeSwitch(id names.ID, initial int) error {
	if initial != 0 && initial != 1 {
		return fmt.Errorf("switch initial output %d must be 0 or 1", initial)
	}
	return r.add(&Device{
		ID:          id,
		Kind:        KindSwitch,
		Outputs:     []names.ID{names.NoID},
		SwitchState: initial,
	})
}

// Get returns the device with the given identity, or nil
func (r *Registry) Get(id names.ID) *Device {
	return r.devices[id]
}

// Count returns the number of created devices
func (r *Registry) Count() int {
	return len(r.devices)
}

// IDs returns the device identities in creation order
func (r *Registry) IDs() []names.ID {
	out := make([]names.ID, len(r.order))
	copy(out, r.order)
	return out
}
