package hpack

import (
	"bytes"
	"strings"
	"testing"
)

func TestEncodeLiteralWithoutIndexingGrowingShortValue(t *testing.T) {
	got, err := EncodeLiteralWithoutIndexingGrowing(0x0AAA, "value", StringOptions{})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	want := []byte{0x0F, 0x9B, 0x15, 0x05, 0x76, 0x61, 0x6C, 0x75, 0x65}
	if !bytes.Equal(got, want) {
		t.Fatalf("got % x; want % x", got, want)
	}
}

func TestEncodeLiteralWithoutIndexingGrowingExceedsInitialBuffer(t *testing.T) {
	long := strings.Repeat("x", initialGrowingBufferSize*3)
	got, err := EncodeLiteralWithoutIndexingGrowing(8, long, StringOptions{})
	if err != nil {
		t.Fatalf("error = %v", err)
	}
	if !strings.HasSuffix(string(got), long) {
		t.Fatalf("result doesn't end with the original value")
	}
}

func TestEncodeLiteralWithoutIndexingGrowingRejectsNonPositiveIndex(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for index <= 0")
		}
	}()
	EncodeLiteralWithoutIndexingGrowing(0, "value", StringOptions{})
}

func TestEncodeLiteralWithoutIndexingGrowingRejectsNonASCII(t *testing.T) {
	_, err := EncodeLiteralWithoutIndexingGrowing(8, "café", StringOptions{OnlyASCII: true})
	if err != ErrInvalidCharEncoding {
		t.Fatalf("err = %v; want ErrInvalidCharEncoding", err)
	}
}
