package hpack

import (
	"bytes"
	"testing"
)

func TestEncodeIndexedHeaderFieldLargeIndex(t *testing.T) {
	dest := make([]byte, 3)
	n, ok := (&Encoder{}).EncodeIndexedHeaderField(dest, 0x0AAA)
	if !ok || n != 3 {
		t.Fatalf("EncodeIndexedHeaderField() = %d, %v; want 3, true", n, ok)
	}
	want := []byte{0xFF, 0xAB, 0x14}
	if !bytes.Equal(dest, want) {
		t.Fatalf("got % x; want % x", dest, want)
	}
}

func TestEncodeLiteralHeaderFieldWithoutIndexingLargeIndex(t *testing.T) {
	e := NewEncoder(DefaultDynamicTableSize)
	dest := make([]byte, 9)
	n, ok, err := e.EncodeLiteralHeaderFieldWithoutIndexing(dest, 0x0AAA, "value")
	if err != nil || !ok || n != 9 {
		t.Fatalf("EncodeLiteralHeaderFieldWithoutIndexing() = %d, %v, %v", n, ok, err)
	}
	want := []byte{0x0F, 0x9B, 0x15, 0x05, 0x76, 0x61, 0x6C, 0x75, 0x65}
	if !bytes.Equal(dest, want) {
		t.Fatalf("got % x; want % x", dest, want)
	}
}

func TestEncodeStringLiteralScenario(t *testing.T) {
	dest := make([]byte, 6)
	n, ok, err := EncodeStringLiteral(dest, "value", StringOptions{})
	if err != nil || !ok || n != 6 {
		t.Fatalf("EncodeStringLiteral() = %d, %v, %v", n, ok, err)
	}
	want := []byte{0x05, 0x76, 0x61, 0x6C, 0x75, 0x65}
	if !bytes.Equal(dest, want) {
		t.Fatalf("got % x; want % x", dest, want)
	}
}

func TestSetDynamicHeaderTableSizeCollapsesToSmallest(t *testing.T) {
	e := NewEncoder(DefaultDynamicTableSize)
	if err := e.SetDynamicHeaderTableSize(1); err != nil {
		t.Fatalf("SetDynamicHeaderTableSize(1) error = %v", err)
	}
	if err := e.SetDynamicHeaderTableSize(2); err != nil {
		t.Fatalf("SetDynamicHeaderTableSize(2) error = %v", err)
	}

	dest := make([]byte, 1)
	n, ok := e.WriteHeadersBegin(dest)
	if !ok || n != 1 {
		t.Fatalf("WriteHeadersBegin() = %d, %v; want 1, true", n, ok)
	}
	if dest[0] != 0x21 {
		t.Fatalf("dest[0] = %#x; want 0x21 (size update, value 1)", dest[0])
	}

	// A second flush with nothing pending writes nothing.
	n, ok = e.WriteHeadersBegin(make([]byte, 4))
	if !ok || n != 0 {
		t.Fatalf("second WriteHeadersBegin() = %d, %v; want 0, true", n, ok)
	}
}

func TestSetDynamicHeaderTableSizeRejectsAboveMax(t *testing.T) {
	e := NewEncoder(100)
	if err := e.SetDynamicHeaderTableSize(200); err != ErrSizeUpdateExceedsMax {
		t.Fatalf("err = %v; want ErrSizeUpdateExceedsMax", err)
	}
}

func TestEncodeLiteralFieldThenIndexedOnSecondCall(t *testing.T) {
	e := NewEncoder(DefaultDynamicTableSize)
	field := HeaderField{Name: "name", Value: "value"}

	dest := make([]byte, 32)
	lookup := e.Lookup(field)
	n, ok, err := e.EncodeLiteralField(dest, lookup, field)
	if err != nil || !ok {
		t.Fatalf("first EncodeLiteralField() = %d, %v, %v", n, ok, err)
	}
	want := []byte{0x40, 0x04, 0x6E, 0x61, 0x6D, 0x65, 0x05, 0x76, 0x61, 0x6C, 0x75, 0x65}
	if !bytes.Equal(dest[:n], want) {
		t.Fatalf("first call got % x; want % x", dest[:n], want)
	}

	// Second call: the pair is now in the dynamic table as the most
	// recent entry, combined index 62 — representation #1.
	lookup = e.Lookup(field)
	if lookup.ExactIndex != StaticTableSize+1 {
		t.Fatalf("ExactIndex = %d; want %d", lookup.ExactIndex, StaticTableSize+1)
	}
	dest2 := make([]byte, 1)
	n, ok, err = e.EncodeLiteralField(dest2, lookup, field)
	if err != nil || !ok || n != 1 {
		t.Fatalf("second EncodeLiteralField() = %d, %v, %v", n, ok, err)
	}
	if dest2[0] != 0xBE {
		t.Fatalf("dest2[0] = %#x; want 0xBE (0x80 | 62)", dest2[0])
	}
}

func TestEncodeLiteralHeaderFieldWithoutIndexingNewNameJoined(t *testing.T) {
	e := NewEncoder(DefaultDynamicTableSize)
	dest := make([]byte, 19)
	n, ok, err := e.EncodeLiteralHeaderFieldWithoutIndexingNewName(dest, "name", []string{"first", "second"}, ";")
	if err != nil || !ok || n != 19 {
		t.Fatalf("EncodeLiteralHeaderFieldWithoutIndexingNewName() = %d, %v, %v", n, ok, err)
	}
	want := []byte{
		0x00, 0x04, 0x6E, 0x61, 0x6D, 0x65,
		0x0C, 0x66, 0x69, 0x72, 0x73, 0x74, 0x3B, 0x73, 0x65, 0x63, 0x6F, 0x6E, 0x64,
	}
	if !bytes.Equal(dest, want) {
		t.Fatalf("got % x; want % x", dest, want)
	}
	if e.dynamicTable.Count() != 0 {
		t.Fatalf("without-indexing representation must not touch the dynamic table")
	}
}

func TestEncodeLiteralHeaderFieldWithoutIndexingNewNameRejectsNonASCIISeparator(t *testing.T) {
	e := NewEncoder(DefaultDynamicTableSize)
	dest := make([]byte, 64)
	n, ok, err := e.EncodeLiteralHeaderFieldWithoutIndexingNewName(dest, "name", []string{"a", "b"}, "\xC3\xA9")
	if err != ErrInvalidCharEncoding {
		t.Fatalf("err = %v; want ErrInvalidCharEncoding", err)
	}
	if ok || n != 0 {
		t.Fatalf("n, ok = %d, %v; want 0, false", n, ok)
	}
}

func TestEncodeIndexedHeaderFieldAtomicOnShortBuffer(t *testing.T) {
	dest := []byte{0xAA, 0xAA}
	n, ok := (&Encoder{}).EncodeIndexedHeaderField(dest, 0x0AAA)
	if ok || n != 0 {
		t.Fatalf("EncodeIndexedHeaderField() = %d, %v; want 0, false", n, ok)
	}
	if dest[0] != 0xAA || dest[1] != 0xAA {
		t.Fatalf("dest mutated on failed write: % x", dest)
	}
}

func TestEncoderStatusPseudoHeaderFastPath(t *testing.T) {
	dest := make([]byte, 1)
	n, ok, err := EncodeStatusPseudoHeader(dest, 404)
	if err != nil || !ok || n != 1 {
		t.Fatalf("EncodeStatusPseudoHeader(404) = %d, %v, %v", n, ok, err)
	}
	if dest[0] != 0x80|13 {
		t.Fatalf("dest[0] = %#x; want %#x", dest[0], byte(0x80|13))
	}
}

func TestEncoderStatusPseudoHeaderFallback(t *testing.T) {
	dest := make([]byte, 16)
	n, ok, err := EncodeStatusPseudoHeader(dest, 418)
	if err != nil || !ok {
		t.Fatalf("EncodeStatusPseudoHeader(418) = %d, %v, %v", n, ok, err)
	}
	// representation #4: prefix(4-bit index 8) + "418"
	if dest[0]&0xF0 != 0 {
		t.Fatalf("dest[0] high nibble = %#x; want 0 (without-indexing)", dest[0]&0xF0)
	}
}

func TestBeginEncodeAndResumeAcrossBuffers(t *testing.T) {
	e := NewEncoder(DefaultDynamicTableSize)
	fields := []HeaderField{
		{Name: "name-one", Value: "value-one"},
		{Name: "name-two", Value: "value-two"},
	}

	tiny := make([]byte, 20) // fits exactly the first field's new-name literal
	session, n, err := e.BeginEncode(tiny, fields, true)
	if err != nil {
		t.Fatalf("BeginEncode() error = %v", err)
	}
	if n == 0 {
		t.Fatalf("expected some progress on first buffer")
	}
	if session.Done() {
		t.Fatalf("session should not be done yet")
	}

	rest := make([]byte, 64)
	n2, err := e.Encode(session, rest)
	if err != nil {
		t.Fatalf("Encode() resume error = %v", err)
	}
	if n2 == 0 || !session.Done() {
		t.Fatalf("expected remaining fields to be written on resume, n2=%d done=%v", n2, session.Done())
	}
}

func TestBeginEncodeThrowsOnNoProgress(t *testing.T) {
	e := NewEncoder(DefaultDynamicTableSize)
	fields := []HeaderField{{Name: "name", Value: "value"}}
	dest := make([]byte, 0)

	_, _, err := e.BeginEncode(dest, fields, true)
	if err != ErrEncodingFailure {
		t.Fatalf("err = %v; want ErrEncodingFailure", err)
	}
}
