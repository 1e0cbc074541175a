package dsv

// Sink receives the structural events emitted during parsing and decides how
// to materialize fields and records. Implement it to build records in
// whatever shape you need; RecordSink is the ready-made [][]string form.
//
// Events arrive synchronously and in strict input order. Within one record
// the sequence is always OnRecordStart, then one or more fields (each zero
// or more OnFieldCharacter calls followed by exactly one OnFieldEnd), then
// OnRecordEnd.
type Sink interface {
	// OnRecordStart is invoked once per record, before any of its fields.
	// Sinks typically allocate or reset per-record storage here.
	OnRecordStart()

	// OnFieldCharacter is invoked once per content byte, in input order.
	// Sinks typically append the byte to a field buffer.
	OnFieldCharacter(c byte)

	// OnFieldEnd is invoked once per field, after its last content byte.
	// Zero content bytes yield an empty field. Sinks typically finalize the
	// buffered field here and clear the buffer.
	OnFieldEnd()

	// OnRecordEnd is invoked once per record, after its final OnFieldEnd.
	// Sinks typically commit the assembled record here.
	OnRecordEnd()

	// OnReset is invoked when the parser is reset. The sink must discard any
	// partial field or record.
	OnReset()
}

// FieldBuffer accumulates the bytes of the current field. It is meant to be
// embedded in a Sink implementation: it provides OnFieldCharacter and
// OnReset, and the embedder supplies the remaining hooks, reading Field and
// calling ClearField from its OnFieldEnd.
type FieldBuffer struct {
	buf []byte
}

// OnFieldCharacter appends c to the field buffer.
func (b *FieldBuffer) OnFieldCharacter(c byte) {
	b.buf = append(b.buf, c)
}

// OnReset clears the field buffer.
func (b *FieldBuffer) OnReset() {
	b.ClearField()
}

// Field returns the buffered field text.
func (b *FieldBuffer) Field() string {
	return string(b.buf)
}

// ClearField empties the buffer, keeping its capacity for the next field.
func (b *FieldBuffer) ClearField() {
	b.buf = b.buf[:0]
}

// RecordSink materializes records as [][]string. It is the sink behind the
// top-level Parse functions and the Scanner.
//
// Example:
//
//	sink := &dsv.RecordSink{}
//	p := dsv.NewParser(sink)
//	p.FeedString("a:b\nc:d\n")
//	p.Finish()
//	// sink.Records() is [][]string{{"a", "b"}, {"c", "d"}}
type RecordSink struct {
	FieldBuffer

	fields  []string
	records [][]string
}

// OnRecordStart begins a fresh record.
func (s *RecordSink) OnRecordStart() {
	s.fields = make([]string, 0, 8)
}

// OnFieldEnd stores the buffered field in the current record.
func (s *RecordSink) OnFieldEnd() {
	s.fields = append(s.fields, s.Field())
	s.ClearField()
}

// OnRecordEnd commits the assembled record.
func (s *RecordSink) OnRecordEnd() {
	s.records = append(s.records, s.fields)
	s.fields = nil
}

// OnReset discards the partial field and record. Committed records are kept.
func (s *RecordSink) OnReset() {
	s.FieldBuffer.OnReset()
	s.fields = nil
}

// Records returns all committed records. The slice is owned by the sink;
// callers that keep parsing should copy it.
func (s *RecordSink) Records() [][]string {
	return s.records
}

// Len returns the number of committed records.
func (s *RecordSink) Len() int {
	return len(s.records)
}

// drain removes and returns all committed records, leaving the sink empty
// for the next batch. The Scanner uses it to keep its memory bounded by the
// largest record instead of the whole input.
func (s *RecordSink) drain() [][]string {
	records := s.records
	s.records = nil
	return records
}
