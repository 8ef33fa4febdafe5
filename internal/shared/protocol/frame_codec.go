package protocol

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/yyocio-drip/hpack/internal/shared/compression/hpack"
)

// HeaderBlockFrame pairs one HPACK-compressed header list with the
// request/response-line metadata that doesn't travel through the header
// list itself — method and URL for a request, status line for a response.
// RequestLine is whichever of those msgpack-encodes, typically an
// HTTPRequestHead or HTTPResponseHead; HeaderBlock is opaque bytes produced
// by an hpack.Encoder.
type HeaderBlockFrame struct {
	StreamID      string
	RequestLine   []byte
	HeaderBlock   []byte
	ContentLength int64
}

// sizeUpdatePreludeSlack is a generous upper bound on the bytes a pending
// dynamic-table size update prelude could add ahead of the header list
// proper — at most 6 octets for a uint32 value under a 5-bit prefix.
const sizeUpdatePreludeSlack = 8

// worstCaseFieldSize bounds the bytes field could take on the wire: the
// widest representation is #3, a literal with a new name, which needs one
// flag octet plus two length-prefixed strings. Every other representation
// this package emits is no larger, so sizing against this bound means
// BeginEncode never runs out of room partway through the list.
func worstCaseFieldSize(field hpack.HeaderField) int {
	return 1 +
		hpack.IntegerEncodedLength(7, uint64(len(field.Name))) + len(field.Name) +
		hpack.IntegerEncodedLength(7, uint64(len(field.Value))) + len(field.Value)
}

// EncodeHeaderBlockFrame msgpack-encodes requestLine and compresses headers
// with enc into a scratch buffer sized up front from a worst-case bound, so
// a single BeginEncode/Encode pass always has room. This matters because
// enc's dynamic table isn't rolled back on a partial encode: retrying a
// stateful BeginEncode call against a bigger buffer would re-walk fields
// already Inserted by the first attempt and double-index them, so unlike
// the core package's allocating literal helper (which retries a pure,
// non-mutating function), this call site must get the size right in one
// shot rather than grow-and-retry.
func EncodeHeaderBlockFrame(enc *hpack.Encoder, streamID string, requestLine interface{}, headers []hpack.HeaderField, contentLength int64) (*HeaderBlockFrame, error) {
	line, err := msgpack.Marshal(requestLine)
	if err != nil {
		return nil, fmt.Errorf("protocol: marshal request line for stream %s: %w", streamID, err)
	}

	need := sizeUpdatePreludeSlack
	for _, f := range headers {
		need += worstCaseFieldSize(f)
	}
	scratch := make([]byte, need)

	session, n, err := enc.BeginEncode(scratch, headers, false)
	if err != nil {
		return nil, fmt.Errorf("protocol: encode header block for stream %s: %w", streamID, err)
	}
	if !session.Done() {
		return nil, fmt.Errorf("protocol: encode header block for stream %s: %w", streamID, hpack.ErrEncodingFailure)
	}

	return &HeaderBlockFrame{
		StreamID:      streamID,
		RequestLine:   line,
		HeaderBlock:   append([]byte(nil), scratch[:n]...),
		ContentLength: contentLength,
	}, nil
}

// Decoding a HeaderBlockFrame back into header pairs is out of scope: this
// package only ever produces HeaderBlock bytes, the same way the core hpack
// package only ever produces HPACK bytes for its one connection direction.
// A real peer runs an RFC 7541 decoder against HeaderBlock and a
// msgpack.Unmarshal against RequestLine into whichever head type it
// expects.
