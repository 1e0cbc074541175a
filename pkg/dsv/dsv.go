// Package dsv provides parsing and rendering of DSV (delimiter-separated
// values) text.
//
// DSV is the plain-text record format described in chapter five,
// "Textuality", of Eric S. Raymond, "The Art of Unix Programming" (2003).
// Records are separated by a line feed, fields by a single separator byte,
// and a single escape byte makes the following byte literal — including the
// separator, the escape itself, and the line feed. The classic UNIX
// configuration is separator ':' and escape '\\', the format of /etc/passwd.
//
// There is no quoting, no multi-byte delimiter, and no such thing as a
// syntax error: every byte sequence is valid DSV.
//
// # Parsing APIs
//
// The package provides three levels of API:
//
//   - Parse(string) / ParseReader(io.Reader) - materialize all records as [][]string
//   - Scanner - stream records one at a time from an io.Reader
//   - Parser + Sink - push bytes and receive structural events
//
// Use Parse for small documents, Scanner for large files, and the
// event-level Parser when you want to materialize records yourself.
//
// # Example usage with Parse:
//
//	records, err := dsv.Parse("root:x:0:0:root:/root:/bin/sh\n")
//	if err != nil {
//	    // handle error
//	}
//	// records is [][]string{{"root", "x", "0", "0", "root", "/root", "/bin/sh"}}
//
// # Example usage with a custom Sink:
//
//	sink := &dsv.RecordSink{}
//	p := dsv.NewParser(sink)
//	p.FeedString("a:b")
//	p.Finish() // closes the unterminated trailing record
//	// sink.Records() is [][]string{{"a", "b"}}
//
// # Thread Safety
//
// The top-level functions are safe for concurrent use; each call builds its
// own parser. A Parser or Scanner instance is not safe for concurrent use.
package dsv

import (
	"io"
)

// Parse parses a complete DSV document with the UNIX configuration
// (separator ':', escape '\\') and returns its records.
//
// A trailing record without a final line feed is included. Blank lines
// produce no records.
//
// Example:
//
//	records, err := dsv.Parse("a:b:c\nd:e:f\n")
//	// records is [][]string{{"a", "b", "c"}, {"d", "e", "f"}}
func Parse(input string) ([][]string, error) {
	return ParseWithOptions(input, DefaultOptions())
}

// ParseWithOptions parses a complete DSV document with custom separator and
// escape bytes.
//
// Example:
//
//	opts := dsv.Options{Separator: '|', Escape: '\\'}
//	records, err := dsv.ParseWithOptions("a|b\n", opts)
func ParseWithOptions(input string, opts Options) ([][]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sink := &RecordSink{}
	p := NewParserWithOptions(sink, opts)
	if err := p.ParseAndFinish(NewStringSource(input)); err != nil {
		return nil, err
	}
	return sink.Records(), nil
}

// ParseReader parses DSV from an io.Reader with the UNIX configuration and
// returns its records.
//
// The reader can be any io.Reader implementation: an os.File, a
// bytes.Buffer, a network stream. The reader is not closed.
//
// Example:
//
//	file, err := os.Open("/etc/passwd")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	records, err := dsv.ParseReader(file)
func ParseReader(reader io.Reader) ([][]string, error) {
	return ParseReaderWithOptions(reader, DefaultOptions())
}

// ParseReaderWithOptions parses DSV from an io.Reader with custom options.
func ParseReaderWithOptions(reader io.Reader, opts Options) ([][]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	sink := &RecordSink{}
	p := NewParserWithOptions(sink, opts)
	if err := p.ParseAndFinish(NewReaderSource(reader)); err != nil {
		return nil, err
	}
	return sink.Records(), nil
}

// Format returns the format identifier for this parser.
func Format() string {
	return "DSV"
}
