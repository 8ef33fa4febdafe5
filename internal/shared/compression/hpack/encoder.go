package hpack

// Wire representation lead bits, RFC 7541 §6.
const (
	reprIndexedField        byte = 0x80 // 1xxxxxxx
	reprLiteralIncremental  byte = 0x40 // 01xxxxxx
	reprLiteralWithoutIndex byte = 0x00 // 0000xxxx
	reprDynamicTableSize    byte = 0x20 // 001xxxxx
)

// Encoder is a single HTTP/2 connection's write-side HPACK state: the
// dynamic table it maintains on behalf of its peer's decoder, plus any
// table-size update the peer has asked for but that hasn't been flushed to
// the wire yet.
//
// An Encoder is not safe for concurrent use. Callers that fan a connection's
// writes out across goroutines must serialize their own access to it, the
// same way they'd serialize writes to the underlying socket.
type Encoder struct {
	dynamicTable      *DynamicTable
	maxTableSize      uint32 // cap configured by the owner; SetDynamicHeaderTableSize may not exceed it
	pendingSizeUpdate *uint32
}

// NewEncoder returns an Encoder whose dynamic table is bounded by maxSize
// bytes of RFC-cost accounting. A zero maxSize is treated as
// DefaultDynamicTableSize.
func NewEncoder(maxSize uint32) *Encoder {
	if maxSize == 0 {
		maxSize = DefaultDynamicTableSize
	}
	return &Encoder{
		dynamicTable: NewDynamicTable(maxSize),
		maxTableSize: maxSize,
	}
}

// DynamicTable exposes the encoder's table for inspection (size, entry
// count, the CLI's `hpackctl inspect` rendering).
func (e *Encoder) DynamicTable() *DynamicTable { return e.dynamicTable }

// LookupResult describes what EncodeLiteralField found in the combined
// index space for a header's name and, separately, its exact name+value
// pair.
type LookupResult struct {
	// ExactIndex is the combined index of a full name+value match, or 0.
	ExactIndex int
	// NameIndex is the combined index of a name-only match, or 0.
	NameIndex int
}

// Lookup searches the static table and then the dynamic table for field,
// returning the best exact and name-only combined indices found. The static
// table is checked first so a field that happens to collide with a dynamic
// entry still prefers the cheaper, universally-known static index.
func (e *Encoder) Lookup(field HeaderField) LookupResult {
	var r LookupResult
	if exact, nameOnly := StaticTableLookup(field.Name, field.Value); exact != 0 || nameOnly != 0 {
		r.ExactIndex, r.NameIndex = exact, nameOnly
	}
	if r.ExactIndex == 0 {
		if exact, nameOnly := e.dynamicTable.Lookup(field.Name, field.Value); exact != 0 {
			r.ExactIndex = exact
			if r.NameIndex == 0 {
				r.NameIndex = nameOnly
			}
		} else if r.NameIndex == 0 && nameOnly != 0 {
			r.NameIndex = nameOnly
		}
	}
	return r
}

// EncodeIndexedHeaderField writes representation #1 (RFC 7541 §6.1): a
// single combined index referring to a field already known in full to both
// sides. index must be >= 1.
//
// If dest is too small, nothing is written and (0, false) is returned.
func (e *Encoder) EncodeIndexedHeaderField(dest []byte, index int) (written int, ok bool) {
	return encodeIndexedHeaderField(dest, index)
}

func encodeIndexedHeaderField(dest []byte, index int) (written int, ok bool) {
	need := IntegerEncodedLength(7, uint64(index))
	if len(dest) < need {
		return 0, false
	}
	dest[0] = reprIndexedField
	WriteInteger(dest, 7, uint64(index))
	return need, true
}

// EncodeLiteralHeaderFieldWithoutIndexing writes representation #4 (RFC 7541
// §6.2.2, indexed name): nameIndex must refer to a combined index already
// known to both sides to carry the right name. The pair is not added to the
// dynamic table — this is the form callers reach for to keep a sensitive or
// one-off header out of compression history.
func (e *Encoder) EncodeLiteralHeaderFieldWithoutIndexing(dest []byte, nameIndex int, value string) (written int, ok bool, err error) {
	return encodeLiteralWithoutIndexing(dest, nameIndex, value)
}

func encodeLiteralWithoutIndexing(dest []byte, nameIndex int, value string) (written int, ok bool, err error) {
	return encodeLiteralWithoutIndexingOpts(dest, nameIndex, value, StringOptions{})
}

func encodeLiteralWithoutIndexingOpts(dest []byte, nameIndex int, value string, opts StringOptions) (written int, ok bool, err error) {
	prefixNeed := IntegerEncodedLength(4, uint64(nameIndex))
	valueNeed, err := sizeStringLiteral(value, opts)
	if err != nil {
		return 0, false, err
	}
	need := prefixNeed + valueNeed
	if len(dest) < need {
		return 0, false, nil
	}

	dest[0] = reprLiteralWithoutIndex
	WriteInteger(dest, 4, uint64(nameIndex))
	off := prefixNeed
	n, _, _ := EncodeStringLiteral(dest[off:], value, opts)
	off += n
	return off, true, nil
}

// EncodeLiteralHeaderFieldWithoutIndexingNewName writes representation #5
// (RFC 7541 §6.2.2, new name): neither the name nor the value is assumed
// known, and the pair is not added to the dynamic table. values are joined
// with separator into a single length-prefixed string, per the multi-value
// StringWriter form — this is the shape used for headers like
// Accept-Encoding where the caller already has several values to combine.
// The name is lowercased and ASCII-enforced; values are copied through
// untouched. A separator containing a non-ASCII byte is rejected with
// ErrInvalidCharEncoding and nothing is written; an ASCII separator is
// copied through as given. An internal length overflow while summing the
// joined values is surfaced as ErrEncodingFailure, not the raw internal
// error.
func (e *Encoder) EncodeLiteralHeaderFieldWithoutIndexingNewName(dest []byte, name string, values []string, separator string) (written int, ok bool, err error) {
	n, ok, err := encodeLiteralWithoutIndexingNewName(dest, name, values, separator)
	if err == errIntegerOverflow {
		return 0, false, ErrEncodingFailure
	}
	return n, ok, err
}

func encodeLiteralWithoutIndexingNewName(dest []byte, name string, values []string, separator string) (written int, ok bool, err error) {
	nameNeed, err := sizeStringLiteral(name, StringOptions{Lowercase: true, OnlyASCII: true})
	if err != nil {
		return 0, false, err
	}
	for i := 0; i < len(separator); i++ {
		if separator[i]&0x80 != 0 {
			return 0, false, ErrInvalidCharEncoding
		}
	}
	_, valueNeed, err := sizeJoinedStringLiteral(values, separator)
	if err != nil {
		return 0, false, err
	}
	// prefix octet (0000 + 4-bit index field, always 0 for new name) + name + joined values
	need := 1 + nameNeed + valueNeed
	if len(dest) < need {
		return 0, false, nil
	}

	dest[0] = reprLiteralWithoutIndex
	off := 1
	n, _, _ := EncodeStringLiteral(dest[off:], name, StringOptions{Lowercase: true, OnlyASCII: true})
	off += n
	n, _, _ = EncodeJoinedStringLiteral(dest[off:], values, separator)
	off += n
	return off, true, nil
}

// encodeLiteralFieldWithIndexing writes a literal with incremental indexing
// (RFC 7541 §6.2.1): representation #2 (indexed name) when nameIndex is
// non-zero, representation #3 (new name) when it is 0. Either way the field,
// once both sides have processed it, is added to the dynamic table. This never mutates the table itself — Insert is called
// only after the write succeeds, in EncodeLiteralField.
func encodeLiteralFieldWithIndexing(dest []byte, nameIndex int, field HeaderField) (written int, ok bool, err error) {
	if nameIndex == 0 {
		nameNeed, err := sizeStringLiteral(field.Name, StringOptions{Lowercase: true, OnlyASCII: true})
		if err != nil {
			return 0, false, err
		}
		valueNeed, err := sizeStringLiteral(field.Value, StringOptions{})
		if err != nil {
			return 0, false, err
		}
		need := 1 + nameNeed + valueNeed
		if len(dest) < need {
			return 0, false, nil
		}
		dest[0] = reprLiteralIncremental
		off := 1
		n, _, _ := EncodeStringLiteral(dest[off:], field.Name, StringOptions{Lowercase: true, OnlyASCII: true})
		off += n
		n, _, _ = EncodeStringLiteral(dest[off:], field.Value, StringOptions{})
		off += n
		return off, true, nil
	}

	prefixNeed := IntegerEncodedLength(6, uint64(nameIndex))
	valueNeed, err := sizeStringLiteral(field.Value, StringOptions{})
	if err != nil {
		return 0, false, err
	}
	need := prefixNeed + valueNeed
	if len(dest) < need {
		return 0, false, nil
	}
	dest[0] = reprLiteralIncremental
	WriteInteger(dest, 6, uint64(nameIndex))
	off := prefixNeed
	n, _, _ := EncodeStringLiteral(dest[off:], field.Value, StringOptions{})
	off += n
	return off, true, nil
}

// EncodeLiteralField writes field using the cheapest representation its
// lookup result allows: representation #1 (indexed field) if lookup.ExactIndex
// is already known, with no table mutation, since both sides already have
// the pair in full; otherwise representation #2 (lookup.NameIndex known) or
// #3 (new name), which add field to the dynamic table on success — both
// always index, per RFC 7541 §6.2.1. Callers that need a non-indexing literal must call
// EncodeLiteralHeaderFieldWithoutIndexing directly instead.
func (e *Encoder) EncodeLiteralField(dest []byte, lookup LookupResult, field HeaderField) (written int, ok bool, err error) {
	if lookup.ExactIndex != 0 {
		n, ok := e.EncodeIndexedHeaderField(dest, lookup.ExactIndex)
		return n, ok, nil
	}

	n, ok, err := encodeLiteralFieldWithIndexing(dest, lookup.NameIndex, field)
	if !ok || err != nil {
		return 0, ok, err
	}
	// When the name itself was new (no prior index), what goes on the wire
	// is the lowercased name — the dynamic table must store that same form,
	// or it drifts from what a peer decoder reconstructs from the stream.
	stored := field
	if lookup.NameIndex == 0 {
		stored.Name = foldLowerASCII(field.Name)
	}
	e.dynamicTable.Insert(stored)
	return n, true, nil
}

// EncodeDynamicTableSizeUpdate writes representation #6 (RFC 7541 §6.3) and
// resizes the encoder's own dynamic table to match — the two must never
// drift apart, since the update is what tells the peer's decoder to do the
// same.
func (e *Encoder) EncodeDynamicTableSizeUpdate(dest []byte, newSize uint32) (written int, ok bool) {
	need := IntegerEncodedLength(5, uint64(newSize))
	if len(dest) < need {
		return 0, false
	}
	dest[0] = reprDynamicTableSize
	WriteInteger(dest, 5, uint64(newSize))
	e.dynamicTable.Resize(newSize)
	return need, true
}

// SetDynamicHeaderTableSize records a pending change to the dynamic table
// size that will be flushed as a size-update instruction the next time
// WriteHeadersBegin or BeginEncode runs. Only the most restrictive pending
// value survives between flushes: a later call that asks for a larger size
// than an already-pending smaller one is silently capped, since RFC 7541
// §6.3 only requires the decoder to learn about the binding minimum before
// it sees any indexed reference that depends on it.
//
// newSize above the encoder's configured maximum is rejected with
// ErrSizeUpdateExceedsMax and has no effect.
func (e *Encoder) SetDynamicHeaderTableSize(newSize uint32) error {
	if newSize > e.maxTableSize {
		return ErrSizeUpdateExceedsMax
	}
	if e.pendingSizeUpdate == nil || newSize < *e.pendingSizeUpdate {
		e.pendingSizeUpdate = &newSize
		e.dynamicTable.Resize(newSize)
	}
	return nil
}

// WriteHeadersBegin flushes a pending dynamic table size update, if any,
// into dest as representation #6. It returns (0, true) if there was nothing
// pending. If dest is too small to hold a pending update, nothing is
// written and the update remains pending for the next call.
func (e *Encoder) WriteHeadersBegin(dest []byte) (written int, ok bool) {
	if e.pendingSizeUpdate == nil {
		return 0, true
	}
	n, ok := e.EncodeDynamicTableSizeUpdate(dest, *e.pendingSizeUpdate)
	if !ok {
		return 0, false
	}
	e.pendingSizeUpdate = nil
	return n, true
}

// EncodeSession is an explicit, caller-held cursor over a header list being
// encoded across possibly several destination buffers. Unlike stashing an
// iterator inside the Encoder, the caller can park a session, hand the
// Encoder to other work, and resume later with a fresh buffer.
type EncodeSession struct {
	fields []HeaderField
	next   int
}

// Done reports whether every field in the session has been written.
func (s *EncodeSession) Done() bool { return s.next >= len(s.fields) }

// Remaining returns the fields not yet written.
func (s *EncodeSession) Remaining() []HeaderField { return s.fields[s.next:] }

// BeginEncode starts a session for fields and immediately writes as many of
// them as fit in dest, flushing any pending table-size update first.
//
// If throwIfNoneEncoded is true, fields is non-empty and nothing at all fits
// in dest (neither a pending size-update prelude nor the first field),
// ErrEncodingFailure is returned and dest is left untouched. A prelude that
// fits ahead of a field that does not counts as progress: it is written and
// included in written, and no error is returned.
func (e *Encoder) BeginEncode(dest []byte, fields []HeaderField, throwIfNoneEncoded bool) (session *EncodeSession, written int, err error) {
	session = &EncodeSession{fields: fields}
	n, err := e.Encode(session, dest)
	if err != nil {
		return session, 0, err
	}
	if throwIfNoneEncoded && n == 0 && len(fields) > 0 {
		return session, 0, ErrEncodingFailure
	}
	return session, n, nil
}

// Encode writes as many of session's remaining fields as fit into dest,
// advancing the session's cursor by exactly the fields it wrote. A size
// update prelude is flushed first if one is pending. Encode stops at the
// first field (or prelude) that doesn't fit; it never writes a partial
// representation.
func (e *Encoder) Encode(session *EncodeSession, dest []byte) (written int, err error) {
	off := 0

	n, ok := e.WriteHeadersBegin(dest[off:])
	if !ok {
		return 0, nil
	}
	off += n

	for session.next < len(session.fields) {
		field := session.fields[session.next]
		n, advanced, ferr := e.encodeOneField(dest[off:], field)
		if ferr != nil {
			return off, ferr
		}
		if !advanced {
			break
		}
		off += n
		session.next++
	}

	return off, nil
}

// encodeOneField picks the cheapest representation for field given the
// encoder's current tables and writes it.
func (e *Encoder) encodeOneField(dest []byte, field HeaderField) (written int, ok bool, err error) {
	lookup := e.Lookup(field)
	if lookup.ExactIndex != 0 {
		n, ok := e.EncodeIndexedHeaderField(dest, lookup.ExactIndex)
		return n, ok, nil
	}
	return e.EncodeLiteralField(dest, lookup, field)
}

