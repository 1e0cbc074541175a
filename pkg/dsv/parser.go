package dsv

import (
	"github.com/shapestone/shape-dsv/internal/machine"
)

// Parser is a push-driven DSV parser. Bytes go in through FeedByte,
// FeedString, or Parse; structural events come out through the Sink given at
// construction.
//
// A Parser holds only two booleans of state and allocates nothing per byte;
// all buffering happens in the sink. It is not safe for concurrent use.
type Parser struct {
	m    *machine.Machine
	opts Options
}

// NewParser creates a parser with the UNIX DSV configuration
// (separator ':', escape '\\') reporting events to sink.
func NewParser(sink Sink) *Parser {
	return NewParserWithOptions(sink, DefaultOptions())
}

// NewParserWithOptions creates a parser with custom separator and escape
// bytes. The options are not validated here; call Options.Validate if the
// values come from outside. Colliding values behave deterministically
// (separator takes precedence over escape, escape over line feed).
func NewParserWithOptions(sink Sink, opts Options) *Parser {
	return &Parser{
		m: machine.New(machine.Config{
			Separator: opts.Separator,
			Escape:    opts.Escape,
		}, sink),
		opts: opts,
	}
}

// Options returns the parser's configuration.
func (p *Parser) Options() Options {
	return p.opts
}

// FeedByte consumes a single byte. It never blocks and never fails.
func (p *Parser) FeedByte(c byte) {
	p.m.Feed(c)
}

// FeedString consumes every byte of input in order.
func (p *Parser) FeedString(input string) {
	for i := 0; i < len(input); i++ {
		p.m.Feed(input[i])
	}
}

// Finish signals end of input. An open record is closed with its final
// field; a dangling escape is discarded. Finish on an idle parser is a
// no-op, and the parser may be reused for fresh input afterwards.
func (p *Parser) Finish() {
	p.m.Finish()
}

// Reset abandons any in-progress record without flushing it and notifies the
// sink via OnReset. Reset is the correct way to abandon a partial parse.
func (p *Parser) Reset() {
	p.m.Reset()
}

// InRecord reports whether a record is open, i.e. whether Finish would emit
// closing events.
func (p *Parser) InRecord() bool {
	return p.m.InRecord()
}

// Parse pumps src into the parser until it reports end of input. It does NOT
// call Finish, so a trailing unterminated record stays open; use
// ParseAndFinish to close it, or keep feeding from another source.
//
// A read failure is returned as-is with the parser state intact: a caller
// that recovers may resume feeding where it left off.
func (p *Parser) Parse(src Source) error {
	for !src.EOF() {
		c, err := src.ReadChar()
		if err != nil {
			if IsEndOfInput(err) {
				return nil
			}
			return err
		}
		p.m.Feed(c)
	}
	return nil
}

// ParseAndFinish is Parse followed by Finish.
func (p *Parser) ParseAndFinish(src Source) error {
	if err := p.Parse(src); err != nil {
		return err
	}
	p.Finish()
	return nil
}
