package hpack

// initialGrowingBufferSize is the starting scratch size EncodeLiteralWithoutIndexingGrowing
// tries before doubling; it covers most header values in one allocation.
const initialGrowingBufferSize = 64

// EncodeLiteralWithoutIndexingGrowing encodes a single without-indexing
// literal field (representation #4, indexed name) against an already
// allocated, exponentially growing scratch buffer, returning the trimmed
// result. Every other encode function in this package takes a caller-owned
// buffer and never allocates; this is the one explicit exception, for call
// sites with no natural buffer to reuse — an occasional long host name or
// cookie value, where pre-measuring the exact size isn't worth the extra
// pass over the string.
//
// index must refer to a name already present in the static or dynamic
// table; this helper has no new-name form, since a caller reaching for a
// growing allocation already knows which index it's citing.
func EncodeLiteralWithoutIndexingGrowing(index int, value string, opts StringOptions) ([]byte, error) {
	if index <= 0 {
		panic("hpack: EncodeLiteralWithoutIndexingGrowing requires a positive name index")
	}

	buf := make([]byte, initialGrowingBufferSize)
	for {
		n, ok, err := encodeLiteralWithoutIndexingOpts(buf, index, value, opts)
		if err != nil {
			return nil, err
		}
		if ok {
			return buf[:n], nil
		}
		buf = make([]byte, len(buf)*2)
	}
}
