package format

import "testing"

func TestAlign16(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0}, {1, 16}, {15, 16}, {16, 16}, {17, 32}, {50, 64}, {100, 112}, {1000, 1008},
	}
	for _, c := range cases {
		if got := Align16(c.in); got != c.want {
			t.Fatalf("Align16(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestIsAligned16(t *testing.T) {
	if !IsAligned16(0) || !IsAligned16(1008) {
		t.Fatalf("expected aligned")
	}
	if IsAligned16(8) || IsAligned16U64(24) {
		t.Fatalf("expected misaligned")
	}
	if !IsAligned16U64(64) {
		t.Fatalf("expected aligned u64")
	}
}
