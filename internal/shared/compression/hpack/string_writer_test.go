package hpack

import "testing"

func TestEncodeStringLiteralRoundTripLength(t *testing.T) {
	str := "custom-value"
	dest := make([]byte, 64)
	n, ok, err := EncodeStringLiteral(dest, str, StringOptions{})
	if err != nil || !ok {
		t.Fatalf("EncodeStringLiteral() = %d, %v, %v", n, ok, err)
	}
	if dest[0]&0x80 != 0 {
		t.Fatalf("H bit set; Huffman is out of scope")
	}
	gotLen := int(dest[0] & 0x7F)
	if gotLen != len(str) {
		t.Fatalf("length prefix = %d; want %d", gotLen, len(str))
	}
	if string(dest[1:n]) != str {
		t.Fatalf("payload = %q; want %q", dest[1:n], str)
	}
}

func TestEncodeStringLiteralLowercase(t *testing.T) {
	dest := make([]byte, 32)
	n, ok, err := EncodeStringLiteral(dest, "Content-Type", StringOptions{Lowercase: true})
	if err != nil || !ok {
		t.Fatalf("EncodeStringLiteral() = %d, %v, %v", n, ok, err)
	}
	if string(dest[1:n]) != "content-type" {
		t.Fatalf("payload = %q; want lowercased", dest[1:n])
	}
}

func TestEncodeStringLiteralRejectsNonASCII(t *testing.T) {
	dest := make([]byte, 32)
	n, ok, err := EncodeStringLiteral(dest, "café", StringOptions{OnlyASCII: true})
	if err != ErrInvalidCharEncoding {
		t.Fatalf("err = %v; want ErrInvalidCharEncoding", err)
	}
	if ok || n != 0 {
		t.Fatalf("n, ok = %d, %v; want 0, false on rejected input", n, ok)
	}
}

func TestEncodeStringLiteralTooSmallWritesNothing(t *testing.T) {
	dest := []byte{0xAA, 0xAA}
	n, ok, err := EncodeStringLiteral(dest, "too long for this buffer", StringOptions{})
	if err != nil || ok || n != 0 {
		t.Fatalf("n, ok, err = %d, %v, %v; want 0, false, nil", n, ok, err)
	}
	if dest[0] != 0xAA || dest[1] != 0xAA {
		t.Fatalf("dest mutated on failed write: % x", dest)
	}
}

func TestEncodeJoinedStringLiteral(t *testing.T) {
	dest := make([]byte, 32)
	n, ok, err := EncodeJoinedStringLiteral(dest, []string{"gzip", "br", "deflate"}, ", ")
	if err != nil || !ok {
		t.Fatalf("EncodeJoinedStringLiteral() = %d, %v, %v", n, ok, err)
	}
	want := "gzip, br, deflate"
	gotLen := int(dest[0] & 0x7F)
	if gotLen != len(want) {
		t.Fatalf("length prefix = %d; want %d", gotLen, len(want))
	}
	if string(dest[1:n]) != want {
		t.Fatalf("payload = %q; want %q", dest[1:n], want)
	}
}

func TestEncodeJoinedStringLiteralSingleValueNoSeparator(t *testing.T) {
	dest := make([]byte, 16)
	n, ok, err := EncodeJoinedStringLiteral(dest, []string{"gzip"}, ", ")
	if err != nil || !ok {
		t.Fatalf("EncodeJoinedStringLiteral() = %d, %v, %v", n, ok, err)
	}
	if string(dest[1:n]) != "gzip" {
		t.Fatalf("payload = %q; want %q", dest[1:n], "gzip")
	}
}

func TestEncodeJoinedStringLiteralTooSmallWritesNothing(t *testing.T) {
	dest := []byte{0xAA}
	n, ok, err := EncodeJoinedStringLiteral(dest, []string{"gzip", "br"}, ", ")
	if err != nil || ok || n != 0 {
		t.Fatalf("n, ok, err = %d, %v, %v; want 0, false, nil", n, ok, err)
	}
	if dest[0] != 0xAA {
		t.Fatalf("dest mutated on failed write: % x", dest)
	}
}
