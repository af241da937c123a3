package mathx

import "testing"

func TestClamp(t *testing.T) {
	for _, c := range []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{11, 10, 0, 10}, // swapped bounds
	} {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Fatalf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
	if got := Clamp[uint64](5000, 0, 0x7FF); got != 0x7FF {
		t.Fatalf("Clamp uint64 = %d", got)
	}
}

func TestCeilDiv(t *testing.T) {
	for _, c := range []struct{ a, b, want uint32 }{
		{0, 4, 0},
		{8, 4, 2},
		{9, 4, 3},
		{48_000_000, 400_000, 120},
		{7, 0, 0},
	} {
		if got := CeilDiv(c.a, c.b); got != c.want {
			t.Fatalf("CeilDiv(%d,%d) = %d, want %d", c.a, c.b, got, c.want)
		}
	}
}
