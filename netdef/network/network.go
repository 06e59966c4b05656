// File: network.go
// Title: Connection Fabric
// Description: Records pin-to-pin connections between created devices and
//              enforces the wiring contract: sources must be outputs,
//              destinations must be free inputs. Every request returns a
//              Status from a closed enumeration; the parser folds non-OK
//              statuses into its diagnostic sequence.
// Version: v0.1.0
// Created: 2026-08-25

package network

import (
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
)

// Status is the closed result enumeration of a connection request
type Status int

const (
	// StatusOK means the connection was made
	StatusOK Status = iota

	// StatusDeviceAbsent means one of the addressed devices does not exist
	StatusDeviceAbsent

	// StatusPortAbsent means an addressed pin does not exist on its device
	StatusPortAbsent

	// StatusInputConnected means the destination input is already driven
	StatusInputConnected

	// StatusInputToInput means the named source pin is an input
	StatusInputToInput

	// StatusOutputToOutput means the named destination pin is an output
	StatusOutputToOutput
)

// String returns a short description of the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "no error"
	case StatusDeviceAbsent:
		return "device absent"
	case StatusPortAbsent:
		return "port absent"
	case StatusInputConnected:
		return "input already connected"
	case StatusInputToInput:
		return "input connected to input"
	case StatusOutputToOutput:
		return "output connected to output"
	default:
		return "unknown status"
	}
}

// Connection is one recorded wire
type Connection struct {
	Source    names.ID
	SourcePin names.ID // names.NoID for the primary output
	Dest      names.ID
	DestPin   names.ID
}

type inputKey struct {
	device names.ID
	pin    names.ID
}

// Network is the connection fabric for one parse pass
type Network struct {
	registry *devices.Registry
	byInput  map[inputKey]Connection
	order    []Connection
}

// New creates an empty fabric over the given device registry
func New(registry *devices.Registry) *Network {
	return &Network{
		registry: registry,
		byInput:  make(map[inputKey]Connection),
	}
}

// Connect wires an output pin of the source device to an input pin of the
// destination device. sourcePin is names.NoID for the primary output.
func (n *Network) Connect(source, sourcePin, dest, destPin names.ID) Status {
	sourceDev := n.registry.Get(source)
	destDev := n.registry.Get(dest)
	if sourceDev == nil || destDev == nil {
		return StatusDeviceAbsent
	}

	if !sourceDev.HasOutput(sourcePin) {
		if sourceDev.HasInput(sourcePin) {
			return StatusInputToInput
		}
		return StatusPortAbsent
	}

	if !destDev.HasInput(destPin) {
		if destDev.HasOutput(destPin) {
			return StatusOutputToOutput
		}
		return StatusPortAbsent
	}

	key := inputKey{device: dest, pin: destPin}
	if _, taken := n.byInput[key]; taken {
		return StatusInputConnected
	}

	conn := Connection{Source: source, SourcePin: sourcePin, Dest: dest, DestPin: destPin}
	n.byInput[key] = conn
	n.order = append(n.order, conn)
	return StatusOK
}

// Source returns the connection driving the given input, if any
func (n *Network) Source(dest, destPin names.ID) (Connection, bool) {
	conn, ok := n.byInput[inputKey{device: dest, pin: destPin}]
	return conn, ok
}

// Count returns the number of recorded connections
func (n *Network) Count() int {
	return len(n.order)
}

// Connections returns all recorded connections in creation order
func (n *Network) Connections() []Connection {
	out := make([]Connection, len(n.order))
	copy(out, n.order)
	return out
}
