package hpack

// StringOptions controls how EncodeStringLiteral transcodes a string into
// the HPACK character-mode wire form.
type StringOptions struct {
	// Lowercase folds ASCII 'A'..'Z' to lowercase while copying, as RFC 7540
	// §8.1.2 requires for header names.
	Lowercase bool

	// OnlyASCII rejects any byte with the high bit set, returning
	// ErrInvalidCharEncoding instead of writing anything.
	OnlyASCII bool
}

// foldLowerASCII folds ASCII 'A'..'Z' to lowercase, the same single-pass
// rule EncodeStringLiteral applies under StringOptions.Lowercase. Callers
// that need to mirror what was actually put on the wire outside of an
// EncodeStringLiteral call (e.g. canonicalizing a dynamic-table entry) use
// this instead of a full Unicode-aware lowercasing.
func foldLowerASCII(s string) string {
	buf := []byte(s)
	changed := false
	for i, c := range buf {
		if c >= 'A' && c <= 'Z' {
			buf[i] = c | 0x20
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(buf)
}

// sizeStringLiteral validates str against opts and returns the number of
// bytes EncodeStringLiteral would need to write it, including its own
// length prefix. It performs no writes.
func sizeStringLiteral(str string, opts StringOptions) (need int, err error) {
	if opts.OnlyASCII {
		for i := 0; i < len(str); i++ {
			if str[i]&0x80 != 0 {
				return 0, ErrInvalidCharEncoding
			}
		}
	}
	return IntegerEncodedLength(7, uint64(len(str))) + len(str), nil
}

// EncodeStringLiteral writes the wire form [H=0|length(7+)][octets] into
// dest, transcoding str per opts. H is always written 0 — Huffman is out of
// scope — but the bit position is reserved so a real decoder still parses
// the prefix correctly.
//
// If dest is too small, nothing is written and (0, false, nil) is returned.
// If opts.OnlyASCII rejects a code point, nothing is written and the error
// is ErrInvalidCharEncoding.
func EncodeStringLiteral(dest []byte, str string, opts StringOptions) (written int, ok bool, err error) {
	need, err := sizeStringLiteral(str, opts)
	if err != nil {
		return 0, false, err
	}
	if len(dest) < need {
		return 0, false, nil
	}

	prefixLen := IntegerEncodedLength(7, uint64(len(str)))
	dest[0] = 0 // H=0, non-Huffman
	WriteInteger(dest, 7, uint64(len(str)))

	if opts.Lowercase {
		for i := 0; i < len(str); i++ {
			c := str[i]
			if c >= 'A' && c <= 'Z' {
				c |= 0x20
			}
			dest[prefixLen+i] = c
		}
	} else {
		copy(dest[prefixLen:need], str)
	}

	return need, true, nil
}

// sizeJoinedStringLiteral computes the payload length (the values joined by
// separator, with no length prefix) and the total wire length (payload plus
// its own length prefix) that EncodeJoinedStringLiteral would need. Lengths
// are summed with overflow checks; an overflow is reported as
// errIntegerOverflow rather than silently wrapping.
func sizeJoinedStringLiteral(values []string, separator string) (payloadLen, need int, err error) {
	total := 0
	for i, v := range values {
		if i > 0 {
			nt := total + len(separator)
			if nt < total {
				return 0, 0, errIntegerOverflow
			}
			total = nt
		}
		nt := total + len(v)
		if nt < total {
			return 0, 0, errIntegerOverflow
		}
		total = nt
	}
	return total, IntegerEncodedLength(7, uint64(total)) + total, nil
}

// EncodeJoinedStringLiteral writes a single length-prefixed string formed by
// joining values with separator, in the same [H=0|length(7+)][octets] wire
// form as EncodeStringLiteral. Unlike EncodeStringLiteral, values are not
// transcoded — they are copied through exactly as given. Callers that need
// ASCII enforcement on values must check it themselves; EncodeJoinedStringLiteral
// does not look inside them.
func EncodeJoinedStringLiteral(dest []byte, values []string, separator string) (written int, ok bool, err error) {
	payloadLen, need, err := sizeJoinedStringLiteral(values, separator)
	if err != nil {
		return 0, false, err
	}
	if len(dest) < need {
		return 0, false, nil
	}

	prefixLen := IntegerEncodedLength(7, uint64(payloadLen))
	dest[0] = 0
	WriteInteger(dest, 7, uint64(payloadLen))

	off := prefixLen
	for i, v := range values {
		if i > 0 {
			off += copy(dest[off:], separator)
		}
		off += copy(dest[off:], v)
	}

	return need, true, nil
}
