// File: monitors.go
// Title: Monitor Registry
// Description: Records the output pins a later simulation run should
//              observe. The [monit] section of the definition language is
//              grammatically defined but not actioned by the parser, so
//              this registry is populated programmatically for now.
// Version: v0.1.0
// Created: 2026-08-25

package monitors

import (
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
)

// Status is the closed result enumeration of a monitor request
type Status int

const (
	// StatusOK means the monitor point was recorded
	StatusOK Status = iota

	// StatusDeviceAbsent means the addressed device does not exist
	StatusDeviceAbsent

	// StatusNotOutput means the addressed pin is not an output
	StatusNotOutput

	// StatusMonitorPresent means the point is already monitored
	StatusMonitorPresent
)

// String returns a short description of the status
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "no error"
	case StatusDeviceAbsent:
		return "device absent"
	case StatusNotOutput:
		return "pin is not an output"
	case StatusMonitorPresent:
		return "monitor already present"
	default:
		return "unknown status"
	}
}

// Point is one monitored output pin
type Point struct {
	Device names.ID
	Pin    names.ID // names.NoID for the primary output
}

// Registry holds the ordered set of monitor points
type Registry struct {
	registry *devices.Registry
	seen     map[Point]bool
	order    []Point
}

// New creates an empty monitor registry over the given device registry
func New(registry *devices.Registry) *Registry {
	return &Registry{
		registry: registry,
		seen:     make(map[Point]bool),
	}
}

// Add records a monitor on an output pin of a device
func (r *Registry) Add(device, pin names.ID) Status {
	dev := r.registry.Get(device)
	if dev == nil {
		return StatusDeviceAbsent
	}
	if !dev.HasOutput(pin) {
		return StatusNotOutput
	}

	point := Point{Device: device, Pin: pin}
	if r.seen[point] {
		return StatusMonitorPresent
	}
	r.seen[point] = true
	r.order = append(r.order, point)
	return StatusOK
}

// Points returns the monitor points in registration order
func (r *Registry) Points() []Point {
	out := make([]Point, len(r.order))
	copy(out, r.order)
	return out
}

// Count returns the number of monitor points
func (r *Registry) Count() int {
	return len(r.order)
}
