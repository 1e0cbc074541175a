// Package dsv schema definition and validation.
//
// DSV files rarely carry a header row, so columns are validated by position.
// Schemas can be built in code or loaded from YAML:
//
//	columns:
//	  - name: user
//	    type: string
//	    required: true
//	  - name: uid
//	    type: uint
package dsv

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// ColumnType represents the expected type of a column.
type ColumnType string

const (
	ColumnTypeString ColumnType = "string"
	ColumnTypeInt    ColumnType = "int"
	ColumnTypeUint   ColumnType = "uint"
	ColumnTypeFloat  ColumnType = "float"
	ColumnTypeBool   ColumnType = "bool"
	ColumnTypeAny    ColumnType = "any"
)

// converterFor maps a column type to its Converter. String and any are
// accepted as-is.
func converterFor(t ColumnType) Converter {
	switch t {
	case ColumnTypeInt:
		return IntConverter{}
	case ColumnTypeUint:
		return UintConverter{}
	case ColumnTypeFloat:
		return FloatConverter{}
	case ColumnTypeBool:
		return BoolConverter{}
	default:
		return nil
	}
}

// ColumnDefinition defines the schema for a single column, identified by
// position.
type ColumnDefinition struct {
	// Name is the column name, used in error messages and as the header for
	// documents built from this schema.
	Name string `yaml:"name"`
	// Type is the expected data type (default: any).
	Type ColumnType `yaml:"type"`
	// Required indicates the column must have a non-empty value.
	Required bool `yaml:"required"`
	// AllowedValues restricts values to a specific set when non-empty.
	AllowedValues []string `yaml:"allowed,omitempty"`
}

// Schema defines the expected structure of DSV records.
type Schema struct {
	// Columns defines the expected columns in order.
	Columns []ColumnDefinition `yaml:"columns"`
	// AllowExtraFields permits records with more fields than the schema.
	AllowExtraFields bool `yaml:"allow_extra_fields"`
}

// NewSchema creates a new empty schema.
func NewSchema() *Schema {
	return &Schema{Columns: make([]ColumnDefinition, 0)}
}

// AddColumn adds a column definition. Returns the Schema for chaining.
func (s *Schema) AddColumn(col ColumnDefinition) *Schema {
	s.Columns = append(s.Columns, col)
	return s
}

// AddSimpleColumn adds a column with just name and type.
func (s *Schema) AddSimpleColumn(name string, colType ColumnType) *Schema {
	return s.AddColumn(ColumnDefinition{Name: name, Type: colType})
}

// AddRequiredColumn adds a required column with name and type.
func (s *Schema) AddRequiredColumn(name string, colType ColumnType) *Schema {
	return s.AddColumn(ColumnDefinition{Name: name, Type: colType, Required: true})
}

// Headers returns the column names in order.
func (s *Schema) Headers() []string {
	headers := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		headers[i] = col.Name
	}
	return headers
}

// LoadSchema parses a YAML schema definition.
func LoadSchema(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.UnmarshalStrict(data, &s); err != nil {
		return nil, errors.Wrap(err, "parse schema")
	}
	return &s, nil
}

// LoadSchemaFile reads and parses a YAML schema file.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read schema %s", path)
	}
	return LoadSchema(data)
}

// ValidationError represents a schema violation in one field.
type ValidationError struct {
	// Row is the record number (0-indexed).
	Row int
	// Column is the column name, or the index for columns beyond the schema.
	Column string
	// Value is the offending value.
	Value string
	// Message describes the violation.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("row %d, column %q: %s (value: %q)", e.Row, e.Column, e.Message, e.Value)
}

// ValidationResult collects all violations found in one document.
type ValidationResult struct {
	// Valid indicates whether validation passed.
	Valid bool
	// Errors contains all violations.
	Errors []ValidationError
}

// AddError records a violation.
func (r *ValidationResult) AddError(err ValidationError) {
	r.Errors = append(r.Errors, err)
	r.Valid = false
}

// Validate checks every record of doc against the schema, by position.
func (s *Schema) Validate(doc *Document) *ValidationResult {
	result := &ValidationResult{Valid: true}

	for row, record := range doc.Records() {
		if !s.AllowExtraFields && record.Len() > len(s.Columns) {
			result.AddError(ValidationError{
				Row:     row,
				Column:  fmt.Sprintf("%d", len(s.Columns)),
				Message: fmt.Sprintf("record has %d fields, schema defines %d", record.Len(), len(s.Columns)),
			})
		}

		for i, col := range s.Columns {
			value, ok := record.Get(i)
			if !ok {
				if col.Required {
					result.AddError(ValidationError{
						Row:     row,
						Column:  col.Name,
						Message: "required column is missing",
					})
				}
				continue
			}

			if col.Required && value == "" {
				result.AddError(ValidationError{
					Row:     row,
					Column:  col.Name,
					Message: "required column is empty",
				})
				continue
			}

			if len(col.AllowedValues) > 0 && !contains(col.AllowedValues, value) {
				result.AddError(ValidationError{
					Row:     row,
					Column:  col.Name,
					Value:   value,
					Message: "value not in allowed set",
				})
				continue
			}

			if conv := converterFor(col.Type); conv != nil && value != "" {
				if _, err := conv.Convert(value); err != nil {
					result.AddError(ValidationError{
						Row:     row,
						Column:  col.Name,
						Value:   value,
						Message: fmt.Sprintf("not a valid %s", col.Type),
					})
				}
			}
		}
	}

	return result
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
