package dsv

import "fmt"

// The UNIX DSV configuration, used by /etc/passwd and friends.
const (
	// UnixSeparator is the conventional UNIX field separator.
	UnixSeparator byte = ':'
	// UnixEscape is the conventional UNIX escape byte.
	UnixEscape byte = '\\'
)

// Options configures a Parser. Both values are fixed at construction; the
// record terminator is always '\n' and cannot be changed.
type Options struct {
	// Separator is the byte that delimits fields within a record.
	// Default: ':'
	Separator byte

	// Escape is the byte that makes the following byte literal.
	// Default: '\\'
	Escape byte
}

// DefaultOptions returns the UNIX DSV configuration.
func DefaultOptions() Options {
	return Options{
		Separator: UnixSeparator,
		Escape:    UnixEscape,
	}
}

// validControl reports whether c can serve as separator or escape.
func validControl(c byte) bool {
	return c != 0 && c != '\n'
}

// Validate checks that the options are sensible: separator and escape must
// be non-zero, must differ from the line feed, and must differ from each
// other.
//
// NewParserWithOptions does not call Validate; a parser built with colliding
// bytes still behaves deterministically (separator wins over escape, escape
// wins over line feed), but such a configuration is almost certainly a bug
// in the caller. The top-level Parse functions do validate.
func (o Options) Validate() error {
	if !validControl(o.Separator) {
		return &OptionsError{Field: "Separator", Message: "invalid separator byte"}
	}
	if !validControl(o.Escape) {
		return &OptionsError{Field: "Escape", Message: "invalid escape byte"}
	}
	if o.Separator == o.Escape {
		return &OptionsError{Field: "Escape", Message: "escape byte same as separator"}
	}
	return nil
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return fmt.Sprintf("dsv: invalid %s: %s", e.Field, e.Message)
}
