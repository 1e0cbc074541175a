// Package dsv document API.
//
// Document represents a DSV file with optional column names and data
// records:
//
//	doc := dsv.NewDocument().
//		SetHeaders([]string{"user", "home"}).
//		AddRecord([]string{"root", "/root"}).
//		AddRecord([]string{"bin", "/bin"})
//
// Record represents a single row with typed access:
//
//	record, _ := doc.GetRecord(0)
//	user, _ := record.Get(0)            // by index
//	home, _ := record.GetByName("home") // by header name
//
// Round-trip: parse DSV and render back to DSV:
//
//	doc, _ := dsv.ParseDocument("root:/root\nbin:/bin\n")
//	out := doc.DSV()
package dsv

// Document represents a DSV file with a fluent API for manipulation.
// All setter methods return *Document to enable method chaining.
//
// DSV files in the wild (passwd, group) rarely carry a header row, so
// headers are purely a caller-side convention: ParseDocument never treats
// the first record specially.
type Document struct {
	headers []string
	records [][]string
}

// Record represents a single row in a DSV file. It provides access to field
// values by index or by header name.
type Record struct {
	fields  []string
	headers []string // reference to document headers for name-based access
}

// NewDocument creates a new empty Document.
func NewDocument() *Document {
	return &Document{
		headers: []string{},
		records: make([][]string, 0),
	}
}

// ParseDocument parses DSV text with the UNIX configuration into a Document.
//
// Example:
//
//	doc, err := dsv.ParseDocument("root:x:0\nbin:x:1\n")
//	if err != nil {
//	    // handle error
//	}
//	doc.RecordCount() // 2
func ParseDocument(input string) (*Document, error) {
	return ParseDocumentWithOptions(input, DefaultOptions())
}

// ParseDocumentWithOptions parses DSV text with custom options into a
// Document.
func ParseDocumentWithOptions(input string, opts Options) (*Document, error) {
	records, err := ParseWithOptions(input, opts)
	if err != nil {
		return nil, err
	}

	doc := NewDocument()
	for _, record := range records {
		doc.AddRecord(record)
	}
	return doc, nil
}

// SetHeaders sets the column names for this document. Headers are used by
// Record.GetByName. Returns the Document for method chaining.
func (d *Document) SetHeaders(headers []string) *Document {
	d.headers = headers
	return d
}

// AddRecord appends a data record. Returns the Document for method chaining.
func (d *Document) AddRecord(fields []string) *Document {
	d.records = append(d.records, fields)
	return d
}

// Headers returns the column names, or an empty slice if none are set.
func (d *Document) Headers() []string {
	return d.headers
}

// Records returns all data records as Record values.
func (d *Document) Records() []Record {
	records := make([]Record, len(d.records))
	for i, fields := range d.records {
		records[i] = Record{fields: fields, headers: d.headers}
	}
	return records
}

// RecordCount returns the number of data records in the document.
func (d *Document) RecordCount() int {
	return len(d.records)
}

// GetRecord returns the record at the given index, or (Record{}, false) when
// the index is out of bounds.
func (d *Document) GetRecord(index int) (Record, bool) {
	if index < 0 || index >= len(d.records) {
		return Record{}, false
	}
	return Record{fields: d.records[index], headers: d.headers}, true
}

// DSV renders the document back to DSV text with the UNIX configuration.
// Headers, if set, are not written: they are access metadata, not content.
func (d *Document) DSV() string {
	return d.DSVWithOptions(DefaultOptions())
}

// DSVWithOptions renders the document with custom separator and escape
// bytes.
func (d *Document) DSVWithOptions(opts Options) string {
	return RenderWithOptions(d.records, opts)
}

// Get returns the field value at the given index, or ("", false) when the
// index is out of bounds.
func (r Record) Get(index int) (string, bool) {
	if index < 0 || index >= len(r.fields) {
		return "", false
	}
	return r.fields[index], true
}

// GetByName returns the field value under the named column, or ("", false)
// when the name is unknown or no headers are set.
func (r Record) GetByName(name string) (string, bool) {
	for i, header := range r.headers {
		if header == name {
			return r.Get(i)
		}
	}
	return "", false
}

// Fields returns a copy of all field values in the record.
func (r Record) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// Len returns the number of fields in the record.
func (r Record) Len() int {
	return len(r.fields)
}
