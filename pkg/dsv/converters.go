// Package dsv type converters for field values.
//
// DSV fields are plain text; these converters turn them into typed Go values
// by delegating to strconv. They exist so schema validation and callers of
// the DOM share one conversion vocabulary.
package dsv

import (
	"fmt"
	"strconv"
	"strings"
)

// Converter transforms a string field value into a typed Go value.
type Converter interface {
	// Convert transforms a field value into the target type.
	Convert(value string) (interface{}, error)
}

// ConverterFunc is a function adapter for the Converter interface.
type ConverterFunc func(string) (interface{}, error)

// Convert implements Converter.
func (f ConverterFunc) Convert(value string) (interface{}, error) {
	return f(value)
}

// IntConverter converts field values to int64.
type IntConverter struct {
	// Base is the numeric base for parsing (default: 10).
	Base int
}

// Convert implements Converter for IntConverter.
func (c IntConverter) Convert(value string) (interface{}, error) {
	if value == "" {
		return int64(0), nil
	}
	base := c.Base
	if base == 0 {
		base = 10
	}
	return strconv.ParseInt(strings.TrimSpace(value), base, 64)
}

// UintConverter converts field values to uint64. Useful for the uid/gid
// columns of passwd-style files.
type UintConverter struct {
	// Base is the numeric base for parsing (default: 10).
	Base int
}

// Convert implements Converter for UintConverter.
func (c UintConverter) Convert(value string) (interface{}, error) {
	if value == "" {
		return uint64(0), nil
	}
	base := c.Base
	if base == 0 {
		base = 10
	}
	return strconv.ParseUint(strings.TrimSpace(value), base, 64)
}

// FloatConverter converts field values to float64.
type FloatConverter struct{}

// Convert implements Converter for FloatConverter.
func (c FloatConverter) Convert(value string) (interface{}, error) {
	if value == "" {
		return float64(0), nil
	}
	return strconv.ParseFloat(strings.TrimSpace(value), 64)
}

// BoolConverter converts field values to bool.
// Recognizes: true/false, 1/0, yes/no, y/n, on/off, t/f (case-insensitive).
type BoolConverter struct{}

// Convert implements Converter for BoolConverter.
func (c BoolConverter) Convert(value string) (interface{}, error) {
	if value == "" {
		return false, nil
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1", "yes", "y", "on", "t":
		return true, nil
	case "false", "0", "no", "n", "off", "f":
		return false, nil
	default:
		return false, fmt.Errorf("cannot convert %q to bool", value)
	}
}
