package dsv

import (
	"reflect"
	"testing"
)

func TestDocument_Fluent(t *testing.T) {
	doc := NewDocument().
		SetHeaders([]string{"user", "home"}).
		AddRecord([]string{"root", "/root"}).
		AddRecord([]string{"bin", "/bin"})

	if doc.RecordCount() != 2 {
		t.Fatalf("got %d records, want 2", doc.RecordCount())
	}
	if !reflect.DeepEqual(doc.Headers(), []string{"user", "home"}) {
		t.Errorf("headers: got %q", doc.Headers())
	}

	record, ok := doc.GetRecord(0)
	if !ok {
		t.Fatal("GetRecord(0) failed")
	}
	if user, _ := record.Get(0); user != "root" {
		t.Errorf("got %q, want root", user)
	}
	if home, ok := record.GetByName("home"); !ok || home != "/root" {
		t.Errorf("GetByName(home) = (%q, %v), want (/root, true)", home, ok)
	}
	if _, ok := record.GetByName("shell"); ok {
		t.Error("GetByName(shell) should fail")
	}

	if _, ok := doc.GetRecord(2); ok {
		t.Error("GetRecord(2) should fail")
	}
	if _, ok := record.Get(5); ok {
		t.Error("Get(5) should fail")
	}
}

func TestParseDocument(t *testing.T) {
	doc, err := ParseDocument("root:x:0\nbin:x:1\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if doc.RecordCount() != 2 {
		t.Fatalf("got %d records, want 2", doc.RecordCount())
	}
	records := doc.Records()
	if !reflect.DeepEqual(records[1].Fields(), []string{"bin", "x", "1"}) {
		t.Errorf("got %q", records[1].Fields())
	}
}

func TestDocument_RoundTrip(t *testing.T) {
	input := "root:x:0:0:root:/root:/bin/sh\nname with \\: colon:b\n"
	doc, err := ParseDocument(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := doc.DSV(); got != input {
		t.Errorf("round trip mismatch\n got: %q\nwant: %q", got, input)
	}
}

func TestDocument_DSVWithOptions(t *testing.T) {
	doc := NewDocument().AddRecord([]string{"a", "b"})
	opts := Options{Separator: '|', Escape: '^'}
	if got := doc.DSVWithOptions(opts); got != "a|b\n" {
		t.Errorf("got %q, want a|b\\n", got)
	}
}

func TestRecord_FieldsReturnsCopy(t *testing.T) {
	doc := NewDocument().AddRecord([]string{"a", "b"})
	record, _ := doc.GetRecord(0)

	fields := record.Fields()
	fields[0] = "mutated"

	again, _ := doc.GetRecord(0)
	if v, _ := again.Get(0); v != "a" {
		t.Errorf("document mutated through Fields copy: %q", v)
	}
}

func TestRecord_NoHeaders(t *testing.T) {
	doc := NewDocument().AddRecord([]string{"a"})
	record, _ := doc.GetRecord(0)
	if _, ok := record.GetByName("anything"); ok {
		t.Error("GetByName without headers should fail")
	}
	if record.Len() != 1 {
		t.Errorf("got Len %d, want 1", record.Len())
	}
}
