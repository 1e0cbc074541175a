// Package dsv error taxonomy.
//
// The parser itself never fails: every byte sequence is valid DSV. The only
// errors in this package originate in input sources (end of input, which is
// not really an error, and genuine I/O failures) and in configuration.
package dsv

import (
	"errors"
	"fmt"
)

// ErrEndOfInput signals normal exhaustion of a Source. It is the DSV
// analogue of io.EOF: Parser.Parse recovers it internally and returns nil.
var ErrEndOfInput = errors.New("dsv: end of input")

// IsEndOfInput reports whether err signals normal end of input.
func IsEndOfInput(err error) bool {
	return errors.Is(err, ErrEndOfInput)
}

// IOError is a read failure from an input source. It carries an identifier
// for the source (a file name, or "reader" for anonymous streams) and wraps
// the underlying operating-system error.
//
// An IOError is returned by Parser.Parse with the parser's state intact: a
// caller that recovers from the failure may resume feeding bytes where it
// left off.
type IOError struct {
	// Source identifies where the failure happened.
	Source string
	// Err is the underlying error.
	Err error
}

// Error returns a formatted message naming the failed source.
func (e *IOError) Error() string {
	return fmt.Sprintf("dsv: read %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *IOError) Unwrap() error {
	return e.Err
}
