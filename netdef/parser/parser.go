// File: parser.go
// Title: Definition-Language Parser
// Description: Recursive-descent parser over the scanner's token stream.
//              Recognizes the sectioned definition grammar, validates names
//              and per-kind parameters, issues creation and connection
//              requests to the external registries and accumulates one
//              diagnostic per violation instead of stopping at the first.
// Version: v0.1.0
// Created: 2026-08-25

package parser

import (
	"fmt"
	"regexp"
	"strconv"

	lgslog "github.com/YunfeiZhai703/logic-gate-simulator-2/core/log"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/devices"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/diag"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/monitors"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/names"
	"github.com/YunfeiZhai703/logic-gate-simulator-2/netdef/network"
)

// DefaultMaxStatementIterations bounds each statement-list loop. It is a
// circuit breaker against scanner/parser desynchronization, not a limit
// on circuit size.
const DefaultMaxStatementIterations = 500

// pinPattern matches gate input pins I1..I16
var pinPattern = regexp.MustCompile(`^I(1[0-6]|[1-9])$`)

// phase names the states of the parse pass
type phase int

const (
	phaseDevicesHeader phase = iota
	phaseDeviceStatements
	phaseConnsHeader
	phaseConnStatements

	// The monit phases are defined by the grammar but are not reachable
	// from the conns phases: the [monit] section is not actioned.
	phaseMonitHeader
	phaseMonitStatements

	phaseDone
)

// String returns the phase name
func (ph phase) String() string {
	switch ph {
	case phaseDevicesHeader:
		return "devices-header"
	case phaseDeviceStatements:
		return "devices"
	case phaseConnsHeader:
		return "conns-header"
	case phaseConnStatements:
		return "conns"
	case phaseMonitHeader:
		return "monit-header"
	case phaseMonitStatements:
		return "monit"
	case phaseDone:
		return "done"
	default:
		return "unknown"
	}
}

// Options configures parser behavior
type Options struct {
	// Logger for parse tracing (optional, defaults to the default logger)
	Logger *lgslog.Logger

	// MaxStatementIterations bounds each statement-list loop
	// (default: DefaultMaxStatementIterations)
	MaxStatementIterations int
}

// Parser analyses the token stream and builds the logic network through
// the external registries
type Parser struct {
	scanner  *Scanner
	table    *names.Table
	devices  *devices.Registry
	network  *network.Network
	monitors *monitors.Registry
	diags    *diag.List
	logger   *lgslog.Logger
	options  Options

	current Token

	// declared is the pending-name set: identities accepted in the
	// devices section. It only grows there and is read-only afterwards.
	declared map[names.ID]bool
}

// New creates a parser over the given source, wired to its collaborators.
// Diagnostics from both scanning and parsing accumulate into diags.
func New(source string, table *names.Table, reg *devices.Registry,
	net *network.Network, mon *monitors.Registry, diags *diag.List,
	opts Options) *Parser {

	if opts.Logger == nil {
		opts.Logger = lgslog.GetDefault()
	}
	if opts.MaxStatementIterations == 0 {
		opts.MaxStatementIterations = DefaultMaxStatementIterations
	}

	return &Parser{
		scanner:  NewScanner(source, table, diags),
		table:    table,
		devices:  reg,
		network:  net,
		monitors: mon,
		diags:    diags,
		logger:   opts.Logger.WithName("netdef-parser"),
		options:  opts,
		declared: make(map[names.ID]bool),
	}
}

// ParseNetwork runs one parse pass over the whole source. It returns true
// only when the diagnostic sequence is empty at the end of the pass.
// Registry and fabric mutations from the successful prefix are kept even
// when the pass fails.
func (p *Parser) ParseNetwork() bool {
	p.advance()

	for ph := phaseDevicesHeader; ph != phaseDone; {
		next := p.step(ph)
		p.logger.Debug("phase complete", lgslog.Fields{
			"phase":       ph.String(),
			"next":        next.String(),
			"diagnostics": p.diags.Len(),
		})
		ph = next
	}

	p.logger.Info("parse pass finished", lgslog.Fields{
		"devices":     p.devices.Count(),
		"connections": p.network.Count(),
		"diagnostics": p.diags.Len(),
	})
	return p.diags.Empty()
}

// step executes one phase and returns the next
func (p *Parser) step(ph phase) phase {
	switch ph {
	case phaseDevicesHeader:
		if p.parseSectionHeader("devices") {
			return phaseDeviceStatements
		}
		// Cascading diagnostics inside a broken section are the
		// accepted trade-off; carry on with the next header.
		return phaseConnsHeader

	case phaseDeviceStatements:
		p.parseDeviceStatements()
		return phaseConnsHeader

	case phaseConnsHeader:
		if p.parseSectionHeader("conns") {
			return phaseConnStatements
		}
		return phaseDone

	case phaseConnStatements:
		p.parseConnStatements()
		return phaseDone

	case phaseMonitHeader:
		if p.parseSectionHeader("monit") {
			return phaseMonitStatements
		}
		return phaseDone

	case phaseMonitStatements:
		p.parseMonitStatements()
		return phaseDone

	default:
		return phaseDone
	}
}

// advance loads the next token
func (p *Parser) advance() {
	p.current = p.scanner.Next()
	if p.logger.IsLevelEnabled(lgslog.LevelTrace) {
		p.logger.Trace("token", lgslog.Fields{
			"token": p.current.String(),
			"line":  p.current.Line,
			"col":   p.current.Column,
		})
	}
}

// record adds a diagnostic at the current token
func (p *Parser) record(code diag.Code, message string) {
	p.recordAt(p.current, code, message)
}

// recordAt adds a diagnostic pointing at the given token
func (p *Parser) recordAt(tok Token, code diag.Code, message string) {
	p.diags.Add(diag.Diagnostic{
		Line:     tok.Line,
		LineText: p.scanner.LineText(tok.Line),
		Column:   tok.Column,
		Code:     code,
		Message:  message,
	})
}

// syncStatement skips to the next statement or section boundary so one
// malformed statement yields exactly one diagnostic
func (p *Parser) syncStatement() {
	for {
		switch p.current.Kind {
		case KindSemicolon:
			p.advance()
			return
		case KindEOF, KindOpenBracket, KindHeading:
			return
		}
		p.advance()
	}
}

// parseSectionHeader expects '[' HEADING(name) ']'. A mismatch records one
// INVALID_HEADER diagnostic without fine-grained recovery inside the header.
func (p *Parser) parseSectionHeader(name string) bool {
	if p.current.Kind != KindOpenBracket {
		p.record(diag.InvalidHeader, "expected '['")
		return false
	}
	p.advance()

	if p.current.Kind != KindHeading || p.current.Text != name {
		p.record(diag.InvalidHeader, fmt.Sprintf("expected '%s'", name))
		return false
	}
	p.advance()

	if p.current.Kind != KindCloseBracket {
		p.record(diag.InvalidHeader, "expected ']'")
		return false
	}
	p.advance()
	return true
}

// ---------------------------------------------------------------------------
// [devices] section
// ---------------------------------------------------------------------------

// parseDeviceStatements consumes device statements until the next section's
// opening bracket. End of input or a bare section name before '[' means the
// [conns] section is missing.
func (p *Parser) parseDeviceStatements() {
	for i := 0; ; i++ {
		switch p.current.Kind {
		case KindOpenBracket:
			return
		case KindEOF, KindHeading:
			p.record(diag.SyntaxError, "expected [conns] section")
			return
		}

		if i >= p.options.MaxStatementIterations {
			p.record(diag.OverflowError, fmt.Sprintf(
				"devices section exceeded %d statements without reaching [conns]",
				p.options.MaxStatementIterations))
			return
		}

		p.parseDeviceStatement()
	}
}

// parseDeviceStatement recognizes
//
//	name (',' name)* '=' KIND ['(' NUMBER ')'] ';'
//
// and issues one creation request per accepted name on success.
func (p *Parser) parseDeviceStatement() {
	id, ok := p.acceptFreshName()
	if !ok {
		p.syncStatement()
		return
	}
	batch := []names.ID{id}

	for p.current.Kind == KindComma {
		p.advance()
		if p.current.Kind == KindEqual {
			break // tolerate a trailing comma before '='
		}
		id, ok := p.acceptFreshName()
		if !ok {
			p.syncStatement()
			return
		}
		batch = append(batch, id)
	}

	if p.current.Kind != KindEqual {
		p.record(diag.SyntaxError, "expected '='")
		p.syncStatement()
		return
	}
	p.advance()

	if p.current.Kind != KindLogic {
		p.record(diag.InvalidLogicGate, "expected device kind")
		p.syncStatement()
		return
	}
	policy := devicePolicies[p.current.Text]
	kindText := p.current.Text
	p.advance()

	param, ok := p.parseDeviceParameter(policy)
	if !ok {
		p.syncStatement()
		return
	}

	for _, id := range batch {
		if err := policy.create(p.devices, id, param); err != nil {
			// The pending-name set keeps registry duplicates out; any
			// residual failure is a registry-contract violation.
			p.logger.ErrorWithErr("device creation rejected", err, lgslog.Fields{
				"device": p.table.NameOf(id),
				"kind":   kindText,
			})
		}
	}
	p.advance() // consume ';'
}

// acceptFreshName admits a NAME token that has not been declared before,
// in this batch or earlier, and adds it to the pending-name set
func (p *Parser) acceptFreshName() (names.ID, bool) {
	if p.current.Kind != KindName {
		p.record(diag.InvalidName, "expected device name")
		return names.NoID, false
	}
	if p.declared[p.current.ID] {
		p.record(diag.NameDefined, fmt.Sprintf("name '%s' already defined", p.current.Text))
		return names.NoID, false
	}

	id := p.current.ID
	p.declared[id] = true
	p.advance()
	return id, true
}

// parseDeviceParameter applies the kind's parameter policy and returns the
// parameter value to create devices with. The terminating ';' is left as
// the current token.
func (p *Parser) parseDeviceParameter(policy devicePolicy) (int, bool) {
	if policy.mode == paramNone {
		if p.current.Kind != KindSemicolon {
			p.record(diag.SyntaxError, "expected ';'")
			return 0, false
		}
		return 0, true
	}

	if p.current.Kind == KindSemicolon {
		if policy.mode == paramRequired {
			p.record(diag.SyntaxError, "expected '('")
			return 0, false
		}
		return policy.defaultParam, true
	}

	if p.current.Kind != KindOpenParen {
		p.record(diag.SyntaxError, "expected '('")
		return 0, false
	}
	p.advance()

	if p.current.Kind != KindNumber {
		p.record(diag.SyntaxError, "expected number")
		return 0, false
	}
	numTok := p.current
	p.advance()

	if p.current.Kind != KindCloseParen {
		p.record(diag.SyntaxError, "expected ')'")
		return 0, false
	}
	p.advance()

	if p.current.Kind != KindSemicolon {
		p.record(diag.SyntaxError, "expected ';'")
		return 0, false
	}

	if numTok.Value < policy.minParam || numTok.Value > policy.maxParam {
		p.recordAt(numTok, diag.InvalidNumber, policy.rangeMessage)
		return 0, false
	}
	return numTok.Value, true
}

// ---------------------------------------------------------------------------
// [conns] section
// ---------------------------------------------------------------------------

// parseConnStatements consumes connection statements until the next
// section's opening bracket or end of input
func (p *Parser) parseConnStatements() {
	for i := 0; ; i++ {
		switch p.current.Kind {
		case KindOpenBracket, KindEOF:
			return
		case KindHeading:
			p.record(diag.SyntaxError, "expected '['")
			return
		}

		if i >= p.options.MaxStatementIterations {
			p.record(diag.OverflowError, fmt.Sprintf(
				"conns section exceeded %d statements",
				p.options.MaxStatementIterations))
			return
		}

		p.parseConnStatement()
	}
}

// parseConnStatement recognizes
//
//	name ['.' pin] '=' name '.' pin (',' name '.' pin)* ';'
//
// The first name drives the connection; each following pair receives it.
func (p *Parser) parseConnStatement() {
	driver, ok := p.requireDeclaredName()
	if !ok {
		p.syncStatement()
		return
	}

	deviceToks := []Token{driver}
	var pinToks []Token

	// An optional suffix on the driver selects a flip-flop output. It is
	// collected leniently here and validated during resolution, where the
	// statement shape decides whether it really is the output selector.
	if p.current.Kind == KindDot {
		p.advance()
		if p.current.Kind != KindName {
			p.record(diag.InvalidPin, "expected output pin after '.'")
			p.syncStatement()
			return
		}
		pinToks = append(pinToks, p.current)
		p.advance()
	}

	if p.current.Kind != KindEqual {
		p.record(diag.SyntaxError, "expected '='")
		p.syncStatement()
		return
	}
	p.advance()

	for {
		dest, ok := p.requireDeclaredName()
		if !ok {
			p.syncStatement()
			return
		}

		if p.current.Kind != KindDot {
			p.record(diag.SyntaxError, "expected '.'")
			p.syncStatement()
			return
		}
		p.advance()

		pin, ok := p.requirePinName()
		if !ok {
			p.syncStatement()
			return
		}

		deviceToks = append(deviceToks, dest)
		pinToks = append(pinToks, pin)

		if p.current.Kind == KindComma {
			p.advance()
			continue
		}
		break
	}

	if p.current.Kind != KindSemicolon {
		p.record(diag.SyntaxError, "expected ';'")
		p.syncStatement()
		return
	}
	p.advance()

	p.resolveConnections(deviceToks, pinToks)
}

// requireDeclaredName admits a NAME token whose device was declared in the
// devices section
func (p *Parser) requireDeclaredName() (Token, bool) {
	if p.current.Kind != KindName {
		p.record(diag.SyntaxError, "expected device name")
		return Token{}, false
	}
	if !p.declared[p.current.ID] {
		p.record(diag.InvalidDevice, fmt.Sprintf("device '%s' not declared in [devices]", p.current.Text))
		return Token{}, false
	}

	tok := p.current
	p.advance()
	return tok, true
}

// requirePinName admits a pin of the form I1..I16 or one of CLK, DATA,
// Q, QBAR
func (p *Parser) requirePinName() (Token, bool) {
	if p.current.Kind != KindName {
		p.record(diag.InvalidName, "expected pin name")
		return Token{}, false
	}

	text := p.current.Text
	if !pinPattern.MatchString(text) {
		switch text {
		case "CLK", "DATA", "Q", "QBAR":
		default:
			p.record(diag.InvalidName, fmt.Sprintf("invalid pin name '%s'", text))
			return Token{}, false
		}
	}

	tok := p.current
	p.advance()
	return tok, true
}

// resolveConnections turns a grammatically accepted statement into
// connection requests. When the statement carries as many pins as device
// names, the leading pin is the driver's flip-flop output selector;
// otherwise the driver's primary output is used.
func (p *Parser) resolveConnections(deviceToks, pinToks []Token) {
	driver := deviceToks[0]
	sourcePin := names.NoID

	if len(pinToks) == len(deviceToks) {
		selector := pinToks[0]
		switch selector.Text {
		case "Q":
			sourcePin = p.devices.Q
		case "QBAR":
			sourcePin = p.devices.QBAR
		default:
			p.recordAt(selector, diag.InvalidPin,
				fmt.Sprintf("invalid output pin '%s' for device '%s'", selector.Text, driver.Text))
			return
		}
		pinToks = pinToks[1:]
	}

	for i, dest := range deviceToks[1:] {
		pin := pinToks[i]

		destPin, ok := p.resolveDestPin(dest, pin)
		if !ok {
			continue
		}

		status := p.network.Connect(driver.ID, sourcePin, dest.ID, destPin)
		if status != network.StatusOK {
			p.recordAt(pin, statusCode(status),
				fmt.Sprintf("connection to '%s.%s' failed: %s", dest.Text, pin.Text, status))
		}
	}
}

// resolveDestPin maps a destination pin token onto the destination
// device's pin identity
func (p *Parser) resolveDestPin(dest, pin Token) (names.ID, bool) {
	switch pin.Text {
	case "CLK":
		return p.devices.CLK, true
	case "DATA":
		return p.devices.DATA, true
	case "SET":
		return p.devices.SET, true
	case "CLEAR":
		return p.devices.CLEAR, true
	case "Q", "QBAR":
		p.recordAt(pin, diag.InvalidPin, fmt.Sprintf("'%s' is not an input pin", pin.Text))
		return names.NoID, false
	}

	// I<n> indexes the destination's declared ordered input pins.
	dev := p.devices.Get(dest.ID)
	if dev == nil {
		p.recordAt(dest, diag.InvalidDevice, fmt.Sprintf("device '%s' was never created", dest.Text))
		return names.NoID, false
	}

	n, _ := strconv.Atoi(pin.Text[1:])
	if n-1 >= len(dev.Inputs) {
		p.recordAt(pin, diag.InvalidPin,
			fmt.Sprintf("device '%s' only has %d inputs", dest.Text, len(dev.Inputs)))
		return names.NoID, false
	}
	return dev.Inputs[n-1], true
}

// statusCode folds a connection-fabric status into the diagnostic taxonomy
func statusCode(status network.Status) diag.Code {
	switch status {
	case network.StatusDeviceAbsent:
		return diag.InvalidDevice
	case network.StatusPortAbsent:
		return diag.InvalidPin
	default:
		return diag.SyntaxError
	}
}

// ---------------------------------------------------------------------------
// [monit] section — grammatically defined, not actioned
// ---------------------------------------------------------------------------

// parseMonitStatements recognizes monitor statements without acting on
// them. The monit phases are not reachable from ParseNetwork.
func (p *Parser) parseMonitStatements() {
	for i := 0; ; i++ {
		switch p.current.Kind {
		case KindOpenBracket, KindEOF:
			return
		case KindHeading:
			p.record(diag.SyntaxError, "expected '['")
			return
		}

		if i >= p.options.MaxStatementIterations {
			p.record(diag.OverflowError, fmt.Sprintf(
				"monit section exceeded %d statements",
				p.options.MaxStatementIterations))
			return
		}

		p.parseMonitStatement()
	}
}

// parseMonitStatement recognizes name ['.' pin] (',' name ['.' pin])* ';'
func (p *Parser) parseMonitStatement() {
	for {
		if _, ok := p.requireDeclaredName(); !ok {
			p.syncStatement()
			return
		}
		if p.current.Kind == KindDot {
			p.advance()
			if _, ok := p.requirePinName(); !ok {
				p.syncStatement()
				return
			}
		}
		if p.current.Kind == KindComma {
			p.advance()
			continue
		}
		break
	}

	if p.current.Kind != KindSemicolon {
		p.record(diag.SyntaxError, "expected ';'")
		p.syncStatement()
		return
	}
	p.advance()
}
