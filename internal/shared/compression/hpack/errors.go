package hpack

import "errors"

var (
	// ErrEncodingFailure is raised by BeginEncode when nothing of a non-empty
	// header list fits in the destination buffer and the caller opted into
	// throwIfNoneEncoded. EncodeLiteralHeaderFieldWithoutIndexingNewName also
	// returns it in place of errIntegerOverflow.
	ErrEncodingFailure = errors.New("hpack: destination buffer too small to encode any header")

	// ErrInvalidCharEncoding is returned when a non-ASCII code point is
	// presented where only-ASCII was required (a header name, a multi-value
	// separator, or a :status value).
	ErrInvalidCharEncoding = errors.New("hpack: non-ASCII code point where only-ASCII encoding is required")

	// ErrSizeUpdateExceedsMax is returned by SetDynamicHeaderTableSize when
	// the requested size is above the encoder's configured cap.
	ErrSizeUpdateExceedsMax = errors.New("hpack: dynamic table size update exceeds encoder's configured maximum")

	// errIntegerOverflow is internal: the sum of a multi-value string's
	// lengths plus separators overflowed the index type. It is not exported:
	// EncodeLiteralHeaderFieldWithoutIndexingNewName converts it to
	// ErrEncodingFailure at its boundary, while EncodeJoinedStringLiteral
	// returns it as is.
	errIntegerOverflow = errors.New("hpack: integer overflow while summing joined string lengths")
)
