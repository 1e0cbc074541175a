package dsv

import "io"

// Scanner provides a streaming interface for reading DSV records one at a
// time. Records are materialized incrementally as bytes are pulled from the
// reader, so memory use is bounded by the largest record, not the file.
//
// Example usage:
//
//	file, _ := os.Open("/etc/passwd")
//	defer file.Close()
//
//	scanner := dsv.NewScanner(file)
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    user, _ := record.Get(0)
//	    fmt.Println(user)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	source     *ReaderSource
	parser     *Parser
	sink       *RecordSink
	hasHeaders bool
	headers    []string
	pending    [][]string // drained from the sink, not yet handed out
	current    Record
	done       bool
	err        error
}

// NewScanner creates a Scanner reading DSV from reader with the UNIX
// configuration. Use NewScannerWithOptions for other separators.
func NewScanner(reader io.Reader) *Scanner {
	return NewScannerWithOptions(reader, DefaultOptions())
}

// NewScannerWithOptions creates a Scanner with custom separator and escape
// bytes.
func NewScannerWithOptions(reader io.Reader, opts Options) *Scanner {
	sink := &RecordSink{}
	return &Scanner{
		source: NewReaderSource(reader),
		parser: NewParserWithOptions(sink, opts),
		sink:   sink,
	}
}

// SetHasHeaders sets whether the first record should be treated as column
// names for GetByName access. Returns the Scanner for method chaining.
func (s *Scanner) SetHasHeaders(hasHeaders bool) *Scanner {
	s.hasHeaders = hasHeaders
	return s
}

// Scan advances the scanner to the next record. It returns false when input
// is exhausted or a read fails; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	for {
		if rec, ok := s.take(); ok {
			if s.hasHeaders && s.headers == nil {
				s.headers = rec
				continue
			}
			s.current = Record{fields: rec, headers: s.headers}
			return true
		}
		if s.done {
			return false
		}
		if !s.fill() {
			return false
		}
	}
}

// take pops the next unconsumed record, draining the sink so consumed
// records are not retained for the life of the scan.
func (s *Scanner) take() ([]string, bool) {
	if len(s.pending) == 0 {
		s.pending = s.sink.drain()
	}
	if len(s.pending) == 0 {
		return nil, false
	}
	rec := s.pending[0]
	s.pending = s.pending[1:]
	return rec, true
}

// fill feeds bytes until the sink gains a record or input ends. Returns
// false on read failure.
func (s *Scanner) fill() bool {
	for s.sink.Len() == 0 {
		c, err := s.source.ReadChar()
		if err != nil {
			if IsEndOfInput(err) {
				s.parser.Finish()
				s.done = true
				return true
			}
			s.err = err
			s.done = true
			return false
		}
		s.parser.FeedByte(c)
	}
	return true
}

// Record returns the current record. Call it only after Scan returns true.
func (s *Scanner) Record() Record {
	return s.current
}

// Headers returns the header record when SetHasHeaders(true) was used and at
// least one record has been scanned. Otherwise it returns nil.
func (s *Scanner) Headers() []string {
	return s.headers
}

// Err returns the read failure that stopped the scan, or nil at normal end
// of input.
func (s *Scanner) Err() error {
	return s.err
}
