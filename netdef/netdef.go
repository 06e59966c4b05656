// File: netdef.go
// Title: Definition-Language Engine
// Description: The Engine owns the collaborators of one parse pass (symbol
//              table, device registry, connection fabric, monitor registry),
//              runs the parser over a definition source and returns the
//              ordered diagnostic sequence plus pass metadata.
// Version: v0.1.0
// Created: 2026-08-25

package netdef

import (
	"time"

	"github.com/google/uuid"

	lgslog "github.com/YunfeiZhai703/logic-gate-simulator-2/core/log"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/diag"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/monitors"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/network"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/parser"
)

// Options configures the engine
type Options struct {
	// Logger for engine and parser logging (optional, defaults to the
	// default logger)
	Logger *lgslog.Logger

	// MaxStatementIterations bounds each statement-list loop
	// (default: parser.DefaultMaxStatementIterations)
	MaxStatementIterations int
}

// Engine coordinates one parse pass and owns the resulting netlist
type Engine struct {
	Names    *names.Table
	Devices  *devices.Registry
	Network  *network.Network
	Monitors *monitors.Registry

	logger  *lgslog.Logger
	options Options
}

// Result is the outcome of one parse pass
type Result struct {
	// OK is true only when the diagnostic sequence is empty
	OK bool

	// PassID identifies this pass in log output
	PassID string

	// Diagnostics holds every diagnostic of the pass in detection order
	Diagnostics []diag.Diagnostic

	// Devices and Connections count the netlist built so far, including
	// the successful prefix of a failed pass
	Devices     int
	Connections int

	Duration time.Duration
}

// New creates an engine with fresh collaborators
func New(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = lgslog.GetDefault()
	}

	e := &Engine{
		logger:  opts.Logger.WithName("netdef"),
		options: opts,
	}
	e.reset()
	return e
}

// reset gives the engine fresh collaborators for a new pass
func (e *Engine) reset() {
	e.Names = names.NewTable()
	e.Devices = devices.New(e.Names)
	e.Network = network.New(e.Devices)
	e.Monitors = monitors.New(e.Devices)
}

// Build runs one parse pass over the given definition source. The engine's
// collaborators are replaced at the start of every pass, so the netlist
// left on the engine always belongs to the most recent source.
func (e *Engine) Build(source string) *Result {
	e.reset()

	passID := uuid.NewString()
	logger := e.logger.WithField("pass_id", passID)

	logger.Debug("starting parse pass", lgslog.Fields{
		"source_bytes": len(source),
	})

	diags := diag.NewList()
	p := parser.New(source, e.Names, e.Devices, e.Network, e.Monitors, diags,
		parser.Options{
			Logger:                 logger,
			MaxStatementIterations: e.options.MaxStatementIterations,
		})

	start := time.Now()
	ok := p.ParseNetwork()
	duration := time.Since(start)

	logger.Info("parse pass result", lgslog.Fields{
		"ok":          ok,
		"diagnostics": diags.Len(),
		"duration_ms": duration.Milliseconds(),
	})

	return &Result{
		OK:          ok,
		PassID:      passID,
		Diagnostics: diags.All(),
		Devices:     e.Devices.Count(),
		Connections: e.Network.Count(),
		Duration:    duration,
	}
}
