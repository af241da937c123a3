package conv

import "testing"

func TestHex(t *testing.T) {
	var buf [8]byte
	for _, c := range []struct {
		n      uint32
		digits int
		want   string
	}{
		{0, 8, "00000000"},
		{0xDEADBEEF, 8, "DEADBEEF"},
		{0x1234ABCD, 4, "ABCD"},
		{0x1F, 2, "1F"},
		{0x1FF, 2, "FF"},
		{0xA, 0, "A"},
		{0xCAFE, 12, "0000CAFE"},
	} {
		if got := string(Hex(buf[:], c.n, c.digits)); got != c.want {
			t.Fatalf("Hex(%#x, %d) = %q, want %q", c.n, c.digits, got, c.want)
		}
	}
	if got := Hex(buf[:3], 0, 4); len(got) != 0 {
		t.Fatalf("short buffer returned %q", got)
	}
	if got := string(U32Hex(buf[:], 42)); got != "0000002A" {
		t.Fatalf("U32Hex = %q", got)
	}
}

func TestUtoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    uint64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{42, "42"},
		{4294967295, "4294967295"},
		{18446744073709551615, "18446744073709551615"},
	} {
		if got := string(Utoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Utoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestDecPadding(t *testing.T) {
	var buf [8]byte
	for _, c := range []struct {
		n     uint64
		width int
		want  string
	}{
		{5, 2, "05"},
		{123, 2, "123"},
		{0, 0, "0"},
		{0, 3, "000"},
		{123456789, 1, ""}, // does not fit in 8 bytes
	} {
		if got := string(Dec(buf[:], c.n, c.width)); got != c.want {
			t.Fatalf("Dec(%d, %d) = %q, want %q", c.n, c.width, got, c.want)
		}
	}
}

func TestDeci(t *testing.T) {
	var buf [24]byte
	for _, c := range []struct {
		v    int64
		want string
	}{
		{0, "0.0"},
		{250, "25.0"},
		{253, "25.3"},
		{-5, "-0.5"},
		{-123, "-12.3"},
		{1499, "149.9"},
	} {
		if got := string(Deci(buf[:], c.v)); got != c.want {
			t.Fatalf("Deci(%d) = %q, want %q", c.v, got, c.want)
		}
	}
}
