package format

import (
	"errors"
	"testing"
)

func TestPutReadHeaderRoundTrip(t *testing.T) {
	b := make([]byte, 64)
	for i := range b {
		b[i] = 0xAA
	}
	PutHeader(b, 16, 32, true)

	h, err := ReadHeader(b, 16)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Offset != 16 || h.Size != 32 || !h.Free() || !h.FlagValid() {
		t.Fatalf("unexpected header: %+v", h)
	}
	for i := 16 + HeaderReservedOffset; i < 32; i++ {
		if b[i] != 0 {
			t.Fatalf("reserved byte %d not cleared: 0x%x", i, b[i])
		}
	}
	if b[48] != 0xAA {
		t.Fatalf("payload byte clobbered")
	}
}

func TestPutSizeAndFree(t *testing.T) {
	b := make([]byte, HeaderSize)
	PutHeader(b, 0, 16, false)
	PutSize(b, 0, 96)
	PutFree(b, 0, true)

	h, err := ReadHeader(b, 0)
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Size != 96 || !h.Free() {
		t.Fatalf("unexpected header: %+v", h)
	}
	PutFree(b, 0, false)
	if h, _ = ReadHeader(b, 0); h.Free() {
		t.Fatalf("expected used header")
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	b := make([]byte, 20)
	if _, err := ReadHeader(b, 8); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	if _, err := ReadHeader(b, -16); !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated for negative offset, got %v", err)
	}
}

func TestHeaderFlagValid(t *testing.T) {
	h := Header{Flag: 0x7F}
	if h.FlagValid() {
		t.Fatalf("0x7F must not be a valid flag")
	}
	if h.Free() {
		t.Fatalf("corrupt flag must not read as free")
	}
}

func TestHeaderEnd(t *testing.T) {
	h := Header{Offset: 32, Size: 64}
	end, ok := h.End()
	if !ok || end != 32+HeaderSize+64 {
		t.Fatalf("End() = %d,%v", end, ok)
	}
	if h.Payload() != 48 {
		t.Fatalf("Payload() = %d", h.Payload())
	}

	h.Size = 1 << 62
	if _, ok := h.End(); ok {
		t.Fatalf("huge size must not produce an end offset")
	}
}

func TestPayloadHeaderOffsets(t *testing.T) {
	if PayloadOffset(0) != HeaderSize {
		t.Fatalf("PayloadOffset(0) = %d", PayloadOffset(0))
	}
	if HeaderOffset(PayloadOffset(96)) != 96 {
		t.Fatalf("HeaderOffset does not invert PayloadOffset")
	}
}
