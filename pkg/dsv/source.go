package dsv

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Source produces the bytes a Parser consumes. ReadChar returns ErrEndOfInput
// when the source is exhausted; EOF reports exhaustion without consuming
// anything.
//
// A source may additionally expose a sticky error accessor (see
// ReaderSource.Err). The parser never inspects it; callers of Parser.Parse
// typically do.
type Source interface {
	// ReadChar returns the next byte, ErrEndOfInput at exhaustion, or an
	// *IOError on read failure.
	ReadChar() (byte, error)

	// EOF reports whether further reads would return ErrEndOfInput.
	EOF() bool
}

// ReaderSource adapts an io.Reader to the Source interface with internal
// buffering. It does not own the reader: it never closes it, and the caller
// manages its lifetime.
type ReaderSource struct {
	name string
	br   *bufio.Reader
	err  error // sticky read failure
}

// NewReaderSource wraps an io.Reader. The source identifies itself as
// "reader" in errors; use NewFileSource for named files.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{name: "reader", br: bufio.NewReader(r)}
}

// NewFileSource wraps an open file. The file's name is used in error
// reporting. The source does not close the file.
func NewFileSource(f *os.File) *ReaderSource {
	return &ReaderSource{name: f.Name(), br: bufio.NewReader(f)}
}

// ReadChar returns the next byte from the reader.
func (s *ReaderSource) ReadChar() (byte, error) {
	if s.err != nil {
		return 0, s.err
	}
	c, err := s.br.ReadByte()
	if err == io.EOF {
		return 0, ErrEndOfInput
	}
	if err != nil {
		s.err = &IOError{Source: s.name, Err: errors.Wrap(err, "read byte")}
		return 0, s.err
	}
	return c, nil
}

// EOF reports whether the reader is exhausted. A source in a failure state
// is not at EOF; check Err.
func (s *ReaderSource) EOF() bool {
	if s.err != nil {
		return false
	}
	_, err := s.br.Peek(1)
	return err == io.EOF
}

// Err returns the sticky read failure, if any.
func (s *ReaderSource) Err() error {
	return s.err
}

// StringSource reads bytes from a string. It does not copy the string and
// never fails; it is rewindable, so the same source can drive several parses.
type StringSource struct {
	s   string
	pos int
}

// NewStringSource wraps a string.
func NewStringSource(s string) *StringSource {
	return &StringSource{s: s}
}

// ReadChar returns the next byte, or ErrEndOfInput past the end.
func (s *StringSource) ReadChar() (byte, error) {
	if s.pos >= len(s.s) {
		return 0, ErrEndOfInput
	}
	c := s.s[s.pos]
	s.pos++
	return c, nil
}

// EOF reports whether the cursor is past the last byte.
func (s *StringSource) EOF() bool {
	return s.pos >= len(s.s)
}

// Rewind moves the read cursor back to the start of the string.
func (s *StringSource) Rewind() {
	s.pos = 0
}
