package gpo

import (
	"testing"

	"softcore-bsp/device/soc"
	"softcore-bsp/internal/sim"
)

func newPort() (*Port, *sim.Space) {
	s := sim.New()
	return New(soc.MapGPO(s, soc.GPO1_BASE)), s
}

func TestSetClearEncoding(t *testing.T) {
	p, s := newPort()
	p.Set(Pin0 | Pin3)
	p.Clear(Pin3)
	want := []uint32{0x0000_0009, 0x0008_0000}
	if len(s.GPO.Writes) != len(want) {
		t.Fatalf("writes = %#x, want %#x", s.GPO.Writes, want)
	}
	for i := range want {
		if s.GPO.Writes[i] != want[i] {
			t.Fatalf("write %d = %#x, want %#x", i, s.GPO.Writes[i], want[i])
		}
	}
	if s.GPO.Out != uint16(Pin0) {
		t.Fatalf("Out = %#04x, want %#04x", s.GPO.Out, Pin0)
	}
}

func TestSetClearRoundTrip(t *testing.T) {
	for _, c := range []struct {
		before uint16
		mask   Pins
	}{
		{0x0000, Pin0},
		{0xFFFF, Pin15},
		{0x0F0F, Pin4 | Pin8},
		{0x1234, 0x00FF},
		{0xA5A5, AllPins},
	} {
		p, s := newPort()
		s.GPO.Out = c.before
		p.Set(c.mask)
		if s.GPO.Out&uint16(c.mask) != uint16(c.mask) {
			t.Fatalf("Set(%#04x): Out = %#04x", c.mask, s.GPO.Out)
		}
		if s.GPO.Out&^uint16(c.mask) != c.before&^uint16(c.mask) {
			t.Fatalf("Set(%#04x) touched other pins: %#04x -> %#04x", c.mask, c.before, s.GPO.Out)
		}
		p.Clear(c.mask)
		// Round trip restores pins outside the mask; masked pins end low.
		if got, want := s.GPO.Out, c.before&^uint16(c.mask); got != want {
			t.Fatalf("Set+Clear(%#04x) from %#04x = %#04x, want %#04x", c.mask, c.before, got, want)
		}
		if c.before&uint16(c.mask) == 0 && s.GPO.Out != c.before {
			t.Fatalf("round trip from %#04x with mask %#04x = %#04x", c.before, c.mask, s.GPO.Out)
		}
	}
}

func TestApplySetWins(t *testing.T) {
	p, s := newPort()
	s.GPO.Out = 0x00F0
	p.Apply(Pin0|Pin1, Pin1|Pin4)
	if s.GPO.Out != 0x00E3 {
		t.Fatalf("Out = %#04x, want 0x00e3", s.GPO.Out)
	}
	if s.GPO.Writes[0] != 0x0012_0003 {
		t.Fatalf("BSR = %#x", s.GPO.Writes[0])
	}
}

func TestPin(t *testing.T) {
	if Pin(0) != Pin0 || Pin(15) != Pin15 || Pin(16) != 0 {
		t.Fatalf("Pin mapping wrong: %#x %#x %#x", Pin(0), Pin(15), Pin(16))
	}
	p, s := newPort()
	p.Write(Pin(2), true)
	p.Write(Pin(2), false)
	if s.GPO.Out != 0 || len(s.GPO.Writes) != 2 {
		t.Fatalf("Write: Out=%#x writes=%d", s.GPO.Out, len(s.GPO.Writes))
	}
}
