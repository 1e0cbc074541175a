// Package machine implements the push-driven state machine at the heart of
// DSV parsing.
//
// DSV (delimiter-separated values) is the plain-text record format described
// in chapter five, "Textuality", of Eric S. Raymond, "The Art of Unix
// Programming" (2003): records end at a line feed, fields are split on a
// single separator byte, and a single escape byte makes the following byte
// literal. /etc/passwd is the canonical example.
//
// The machine consumes one byte per Feed call and invokes a Sink for every
// structural event. It holds exactly two booleans of state:
//
//	escaping  the previous byte was an unescaped escape byte
//	inRecord  a record is open and not yet terminated
//
// The full transition table, with S = separator, E = escape, LF = '\n':
//
//	(escaping, inRecord)  input     events                        next state
//	(false, false)        LF        -                             (false, false)
//	(false, false)        E         OnRecordStart                 (true,  true)
//	(false, false)        S         OnRecordStart, OnFieldEnd     (false, true)
//	(false, false)        other     OnRecordStart, OnFieldChar    (false, true)
//	(false, true)         E         -                             (true,  true)
//	(false, true)         S         OnFieldEnd                    (false, true)
//	(false, true)         LF        OnFieldEnd, OnRecordEnd       (false, false)
//	(false, true)         other     OnFieldChar                   (false, true)
//	(true,  *)            any       OnFieldChar                   (false, true)
//
// Record start is lazy: OnRecordStart fires on the first non-LF byte of a
// record, so runs of bare line feeds produce no events at all. The branch
// order in Feed (escape state, then separator, then escape, then LF) is
// load-bearing: it defines behavior when a caller configures colliding
// separator and escape bytes.
//
// The machine has no error states. Every byte sequence is accepted; there is
// no such thing as malformed DSV. It also allocates nothing per byte: all
// buffering happens in the Sink.
package machine

// LF is the record terminator. It is not configurable; carriage returns are
// ordinary field bytes.
const LF byte = '\n'

// Sink receives the structural events emitted by a Machine.
//
// Events arrive synchronously from Feed, Finish, and Reset, in strict input
// order. Within one record the sequence is always OnRecordStart, then one or
// more fields (each zero or more OnFieldCharacter calls followed by exactly
// one OnFieldEnd), then OnRecordEnd.
type Sink interface {
	// OnRecordStart is invoked once per record, before any of its fields.
	OnRecordStart()

	// OnFieldCharacter is invoked once per content byte, in input order.
	OnFieldCharacter(c byte)

	// OnFieldEnd is invoked once per field, after its last content byte.
	// A field may have zero content bytes.
	OnFieldEnd()

	// OnRecordEnd is invoked once per record, after its final OnFieldEnd.
	OnRecordEnd()

	// OnReset is invoked by Machine.Reset. The sink should discard any
	// partially accumulated field or record.
	OnReset()
}

// Config fixes the two tunable bytes of the format. The record terminator is
// always LF.
type Config struct {
	// Separator delimits fields within a record.
	Separator byte
	// Escape makes the byte after it literal, whatever it is.
	Escape byte
}

// Machine is the DSV state machine. It is not safe for concurrent use; two
// machines sharing no sink may run in parallel.
//
// The zero Machine is not usable; construct one with New.
type Machine struct {
	cfg  Config
	sink Sink

	// true if the previous byte was an unescaped escape byte
	escaping bool
	// true if a record is open
	inRecord bool
}

// New returns a Machine that reports events to sink. The configuration is
// fixed for the machine's lifetime.
//
// Separator and Escape should be distinct and should differ from LF; New does
// not enforce this, and colliding values fall through the documented branch
// order in Feed.
func New(cfg Config, sink Sink) *Machine {
	return &Machine{cfg: cfg, sink: sink}
}

// Feed consumes a single byte and emits the events dictated by the
// transition table. It never blocks and never fails.
func (m *Machine) Feed(c byte) {
	if m.escaping {
		m.sink.OnFieldCharacter(c)
		m.escaping = false
		return
	}
	if !m.inRecord && c != LF {
		m.inRecord = true
		m.sink.OnRecordStart()
	}
	switch c {
	case m.cfg.Separator:
		m.sink.OnFieldEnd()
	case m.cfg.Escape:
		m.escaping = true
	case LF:
		if m.inRecord {
			m.sink.OnFieldEnd()
			m.inRecord = false
			m.sink.OnRecordEnd()
		}
	default:
		m.sink.OnFieldCharacter(c)
	}
}

// Finish signals end of input. If a record is open it is closed with
// OnFieldEnd and OnRecordEnd; a pending escape is discarded silently (the
// escape byte itself was never emitted, and no byte follows it). Finish on an
// idle machine emits nothing. Afterwards the machine is in its initial state
// and may parse fresh input.
func (m *Machine) Finish() {
	if m.inRecord {
		m.sink.OnFieldEnd()
		m.escaping = false
		m.inRecord = false
		m.sink.OnRecordEnd()
	}
}

// Reset abandons any in-progress record without flushing it, returns the
// machine to its initial state, and notifies the sink via OnReset so it can
// drop partial data of its own.
func (m *Machine) Reset() {
	m.escaping = false
	m.inRecord = false
	m.sink.OnReset()
}

// InRecord reports whether a record is open, i.e. whether Finish would emit
// closing events.
func (m *Machine) InRecord() bool {
	return m.inRecord
}
