package hpack

// EncodeStatusPseudoHeader writes a :status header field, taking the
// representation-#1 fast path through the fixed RFC 7541 Appendix A status
// entries when code matches one of them exactly, and falling back to a
// without-indexing literal against the :status name index otherwise. The
// fast path never touches a dynamic table, so it needs no Encoder.
func EncodeStatusPseudoHeader(dest []byte, code int) (written int, ok bool, err error) {
	if idx, known := statusCodeStaticIndex[code]; known {
		n, ok := encodeIndexedHeaderField(dest, idx)
		return n, ok, nil
	}

	_, nameIndex := StaticTableLookup(":status", "")
	return encodeLiteralWithoutIndexing(dest, nameIndex, formatStatusCode(code))
}

// StatusCodeFastPathIndex reports whether code is one of the seven
// well-known status values EncodeStatusPseudoHeader takes the indexed-field
// fast path for, and if so, the static table index it uses.
func StatusCodeFastPathIndex(code int) (index int, ok bool) {
	index, ok = statusCodeStaticIndex[code]
	return
}

func formatStatusCode(code int) string {
	if code <= 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	n := code
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
