package machine

import (
	"reflect"
	"testing"
)

// traceSink records every event as a readable string so tests can compare
// whole event streams.
type traceSink struct {
	events []string
}

func (s *traceSink) OnRecordStart() { s.events = append(s.events, "start") }

func (s *traceSink) OnFieldCharacter(c byte) { s.events = append(s.events, "char:"+string(c)) }

func (s *traceSink) OnFieldEnd() { s.events = append(s.events, "fieldend") }

func (s *traceSink) OnRecordEnd() { s.events = append(s.events, "recordend") }

func (s *traceSink) OnReset() { s.events = append(s.events, "reset") }

// unixConfig is the classic UNIX DSV configuration used by /etc/passwd.
var unixConfig = Config{Separator: ':', Escape: '\\'}

func feed(m *Machine, input string) {
	for i := 0; i < len(input); i++ {
		m.Feed(input[i])
	}
}

func TestFeed_EventStream(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		finish bool
		want   []string
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:   "empty input with finish",
			input:  "",
			finish: true,
			want:   nil,
		},
		{
			name:  "only line feeds",
			input: "\n\n\n",
			want:  nil,
		},
		{
			name:  "single record",
			input: "a:b:c\n",
			want: []string{
				"start",
				"char:a", "fieldend",
				"char:b", "fieldend",
				"char:c", "fieldend",
				"recordend",
			},
		},
		{
			name:  "empty fields",
			input: "::\n",
			want: []string{
				"start",
				"fieldend", "fieldend", "fieldend",
				"recordend",
			},
		},
		{
			name:  "escaped separator is literal",
			input: "a\\:b\n",
			want: []string{
				"start",
				"char:a", "char::", "char:b", "fieldend",
				"recordend",
			},
		},
		{
			name:  "escaped escape is literal",
			input: "a\\\\b\n",
			want: []string{
				"start",
				"char:a", "char:\\", "char:b", "fieldend",
				"recordend",
			},
		},
		{
			name:  "escaped line feed is literal",
			input: "a\\\nb\n",
			want: []string{
				"start",
				"char:a", "char:\n", "char:b", "fieldend",
				"recordend",
			},
		},
		{
			name:  "escape as first byte of input opens a record",
			input: "\\\na:b\n",
			want: []string{
				"start",
				"char:\n", "char:a", "fieldend",
				"char:b", "fieldend",
				"recordend",
			},
		},
		{
			name:  "blank line between records emits nothing",
			input: "a:b\n\nc:d\n",
			want: []string{
				"start",
				"char:a", "fieldend", "char:b", "fieldend",
				"recordend",
				"start",
				"char:c", "fieldend", "char:d", "fieldend",
				"recordend",
			},
		},
		{
			name:   "trailing record without newline is closed by finish",
			input:  "a:b",
			finish: true,
			want: []string{
				"start",
				"char:a", "fieldend", "char:b", "fieldend",
				"recordend",
			},
		},
		{
			name:   "dangling escape is discarded but the record is closed",
			input:  "a\\",
			finish: true,
			want: []string{
				"start",
				"char:a", "fieldend",
				"recordend",
			},
		},
		{
			name:  "carriage return is an ordinary field byte",
			input: "a\r:b\n",
			want: []string{
				"start",
				"char:a", "char:\r", "fieldend",
				"char:b", "fieldend",
				"recordend",
			},
		},
		{
			name:  "unescaped escape byte is never emitted",
			input: "\\a\n",
			want: []string{
				"start",
				"char:a", "fieldend",
				"recordend",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &traceSink{}
			m := New(unixConfig, sink)
			feed(m, tt.input)
			if tt.finish {
				m.Finish()
			}
			if !reflect.DeepEqual(sink.events, tt.want) {
				t.Errorf("event stream mismatch\n got: %v\nwant: %v", sink.events, tt.want)
			}
		})
	}
}

func TestFeed_PasswdLine(t *testing.T) {
	sink := &traceSink{}
	m := New(unixConfig, sink)
	feed(m, "root:x:0:0:root:/root:/bin/sh\n")

	fieldEnds := 0
	for _, e := range sink.events {
		if e == "fieldend" {
			fieldEnds++
		}
	}
	if fieldEnds != 7 {
		t.Errorf("got %d fields, want 7", fieldEnds)
	}
	if sink.events[0] != "start" || sink.events[len(sink.events)-1] != "recordend" {
		t.Errorf("record not properly bracketed: %v", sink.events)
	}
}

func TestFinish_Idempotent(t *testing.T) {
	sink := &traceSink{}
	m := New(unixConfig, sink)
	feed(m, "a:b")
	m.Finish()
	n := len(sink.events)
	m.Finish()
	m.Finish()
	if len(sink.events) != n {
		t.Errorf("repeated Finish emitted events: %v", sink.events[n:])
	}
}

func TestReset_DiscardsOpenRecord(t *testing.T) {
	sink := &traceSink{}
	m := New(unixConfig, sink)
	feed(m, "a:b")
	m.Reset()

	want := []string{"start", "char:a", "fieldend", "char:b", "reset"}
	if !reflect.DeepEqual(sink.events, want) {
		t.Errorf("got %v, want %v", sink.events, want)
	}
	if m.InRecord() {
		t.Error("machine still in record after Reset")
	}

	// Finish after Reset must be a no-op: there is nothing to flush.
	m.Finish()
	if len(sink.events) != len(want) {
		t.Errorf("Finish after Reset emitted events: %v", sink.events[len(want):])
	}
}

func TestReset_Repeated(t *testing.T) {
	sink := &traceSink{}
	m := New(unixConfig, sink)
	m.Reset()
	m.Reset()

	want := []string{"reset", "reset"}
	if !reflect.DeepEqual(sink.events, want) {
		t.Errorf("got %v, want %v", sink.events, want)
	}
}

func TestReset_MidEscape(t *testing.T) {
	sink := &traceSink{}
	m := New(unixConfig, sink)
	feed(m, "a\\")
	m.Reset()

	// The byte after Reset must not be treated as escaped.
	m.Feed(':')
	want := []string{"start", "char:a", "reset", "start", "fieldend"}
	if !reflect.DeepEqual(sink.events, want) {
		t.Errorf("got %v, want %v", sink.events, want)
	}
}

// Escape commutativity: for a byte that is not separator, escape, or LF,
// feeding "\x" and feeding "x" produce identical streams.
func TestEscape_CommutesOnLiterals(t *testing.T) {
	for _, c := range []byte{'a', '0', ' ', '\r', ',', 0x00, 0xff} {
		plain := &traceSink{}
		m := New(unixConfig, plain)
		m.Feed(c)
		m.Finish()

		escaped := &traceSink{}
		m = New(unixConfig, escaped)
		m.Feed('\\')
		m.Feed(c)
		m.Finish()

		if !reflect.DeepEqual(plain.events, escaped.events) {
			t.Errorf("byte %q: plain %v != escaped %v", c, plain.events, escaped.events)
		}
	}
}

// When separator and escape collide, the separator branch wins: the switch in
// Feed tests the separator first. Misconfiguration, but deterministic.
func TestFeed_CollidingSeparatorAndEscape(t *testing.T) {
	sink := &traceSink{}
	m := New(Config{Separator: ':', Escape: ':'}, sink)
	feed(m, "a:b\n")

	want := []string{
		"start",
		"char:a", "fieldend", "char:b", "fieldend",
		"recordend",
	}
	if !reflect.DeepEqual(sink.events, want) {
		t.Errorf("got %v, want %v", sink.events, want)
	}
}

// A separator equal to LF never reaches the LF branch.
func TestFeed_SeparatorIsLineFeed(t *testing.T) {
	sink := &traceSink{}
	m := New(Config{Separator: '\n', Escape: '\\'}, sink)
	feed(m, "a\nb")
	m.Finish()

	// Every "\n" ends a field, never a record; Finish closes the one record.
	want := []string{
		"start",
		"char:a", "fieldend", "char:b", "fieldend",
		"recordend",
	}
	if !reflect.DeepEqual(sink.events, want) {
		t.Errorf("got %v, want %v", sink.events, want)
	}
}

func TestFeed_AlternateConfig(t *testing.T) {
	sink := &traceSink{}
	m := New(Config{Separator: '|', Escape: '^'}, sink)
	feed(m, "a|b^|c\n")

	want := []string{
		"start",
		"char:a", "fieldend",
		"char:b", "char:|", "char:c", "fieldend",
		"recordend",
	}
	if !reflect.DeepEqual(sink.events, want) {
		t.Errorf("got %v, want %v", sink.events, want)
	}
}

func BenchmarkFeed(b *testing.B) {
	line := []byte("root:x:0:0:root:/root:/bin/sh\n")
	m := New(unixConfig, nopSink{})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, c := range line {
			m.Feed(c)
		}
	}
}

type nopSink struct{}

func (nopSink) OnRecordStart()        {}
func (nopSink) OnFieldCharacter(byte) {}
func (nopSink) OnFieldEnd()           {}
func (nopSink) OnRecordEnd()          {}
func (nopSink) OnReset()              {}
