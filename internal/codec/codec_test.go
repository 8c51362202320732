package codec

import (
	"encoding/binary"
	"testing"
)

func TestUintRoundTrip(t *testing.T) {
	cases := []struct {
		width int
		value uint64
	}{
		{Width16, 0},
		{Width16, 1},
		{Width16, 0xBEEF},
		{Width16, 0xFFFF},
		{Width32, 0},
		{Width32, 1234},
		{Width32, 0xDEADBEEF},
		{Width32, 0xFFFFFFFF},
		{Width64, 0},
		{Width64, 0x0102030405060708},
		{Width64, 0xFFFFFFFFFFFFFFFF},
	}
	for _, tc := range cases {
		buf := make([]byte, tc.width)
		PutUint(buf, 0, tc.width, tc.value)
		got := Uint(buf, 0, tc.width)
		if got != tc.value {
			t.Fatalf("width %d: round trip %#x -> %#x", tc.width, tc.value, got)
		}
	}
}

func TestUintLittleEndianLayout(t *testing.T) {
	b := []byte{0x78, 0x56, 0x34, 0x12}
	if got := Uint(b, 0, Width32); got != 0x12345678 {
		t.Fatalf("Uint32 = %#x, want 0x12345678", got)
	}
	if got := Uint(b, 0, Width16); got != 0x5678 {
		t.Fatalf("Uint16 = %#x, want 0x5678", got)
	}

	b8 := make([]byte, 8)
	binary.LittleEndian.PutUint64(b8, 0x1122334455667788)
	if got := Uint(b8, 0, Width64); got != 0x1122334455667788 {
		t.Fatalf("Uint64 = %#x", got)
	}
}

func TestUintAtOffset(t *testing.T) {
	buf := make([]byte, 16)
	PutUint(buf, 8, Width32, 1234)
	if got := Uint(buf, 8, Width32); got != 1234 {
		t.Fatalf("Uint at offset 8 = %d, want 1234", got)
	}
	// Surrounding bytes stay zero.
	if Uint(buf, 0, Width64) != 0 {
		t.Fatalf("leading bytes disturbed")
	}
}

func TestValidWidth(t *testing.T) {
	for _, w := range []int{2, 4, 8} {
		if !ValidWidth(w) {
			t.Fatalf("ValidWidth(%d) = false", w)
		}
	}
	for _, w := range []int{0, 1, 3, 5, 6, 7, 16} {
		if ValidWidth(w) {
			t.Fatalf("ValidWidth(%d) = true", w)
		}
	}
}
