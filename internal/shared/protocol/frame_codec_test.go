package protocol

import (
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

func TestEncodeHeaderBlockFrameRoundTripsRequestLine(t *testing.T) {
	enc := hpack.NewEncoder(hpack.DefaultDynamicTableSize)
	head := HTTPRequestHead{Method: "GET", URL: "/widgets", ContentLength: -1}
	fields := []hpack.HeaderField{
		{Name: ":method", Value: "GET"},
		{Name: ":path", Value: "/widgets"},
		{Name: "x-request-id", Value: "abc-123"},
	}

	frame, err := EncodeHeaderBlockFrame(enc, "stream-7", head, fields, 0)
	if err != nil {
		t.Fatalf("EncodeHeaderBlockFrame() error = %v", err)
	}
	if frame.StreamID != "stream-7" {
		t.Fatalf("StreamID = %q; want stream-7", frame.StreamID)
	}
	if len(frame.HeaderBlock) == 0 {
		t.Fatalf("HeaderBlock is empty")
	}

	var got HTTPRequestHead
	if err := msgpack.Unmarshal(frame.RequestLine, &got); err != nil {
		t.Fatalf("msgpack.Unmarshal(RequestLine) error = %v", err)
	}
	if got != head {
		t.Fatalf("round-tripped head = %+v; want %+v", got, head)
	}
}

func TestEncodeHeaderBlockFrameIndexesRepeatedField(t *testing.T) {
	enc := hpack.NewEncoder(hpack.DefaultDynamicTableSize)
	fields := []hpack.HeaderField{{Name: "x-trace", Value: "same-every-time"}}

	first, err := EncodeHeaderBlockFrame(enc, "a", HTTPRequestHead{}, fields, 0)
	if err != nil {
		t.Fatalf("first EncodeHeaderBlockFrame() error = %v", err)
	}
	second, err := EncodeHeaderBlockFrame(enc, "b", HTTPRequestHead{}, fields, 0)
	if err != nil {
		t.Fatalf("second EncodeHeaderBlockFrame() error = %v", err)
	}

	// The pair was inserted into enc's dynamic table by the first call, so
	// the second call emits the one-octet indexed form instead of a fresh
	// literal.
	if len(second.HeaderBlock) >= len(first.HeaderBlock) {
		t.Fatalf("second HeaderBlock (%d bytes) should be shorter than first (%d bytes) once indexed",
			len(second.HeaderBlock), len(first.HeaderBlock))
	}
}

func TestWorstCaseFieldSizeBoundsActualEncoding(t *testing.T) {
	field := hpack.HeaderField{Name: "content-type", Value: "application/json; charset=utf-8"}
	bound := worstCaseFieldSize(field)

	enc := hpack.NewEncoder(hpack.DefaultDynamicTableSize)
	dest := make([]byte, bound)
	n, ok, err := enc.EncodeLiteralField(dest, hpack.LookupResult{}, field)
	if err != nil || !ok {
		t.Fatalf("EncodeLiteralField() = %d, %v, %v; want success within bound %d", n, ok, err, bound)
	}
	if n > bound {
		t.Fatalf("encoded %d bytes, exceeding computed bound %d", n, bound)
	}
}
