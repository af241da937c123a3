//go:build !tinygo

package sim

import (
	"testing"

	"softcore-bsp/device/soc"
)

func mustPanic(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatalf("%s did not panic", what)
		}
	}()
	f()
}

func TestAccessModesEnforced(t *testing.T) {
	s := New()
	mustPanic(t, "read of GPO.BSR", func() { s.Cell(soc.GPO1_BASE).Get() })
	mustPanic(t, "read of TRACE.TD", func() { s.Cell(soc.TRACE_BASE + 0x8).Get() })
	mustPanic(t, "write of TIMER.LO", func() { s.Cell(soc.TIMER1_BASE + 0x4).Set(1) })
	mustPanic(t, "write of I2C.SR", func() { s.Cell(soc.I2C1_BASE + 0x4).Set(1) })
	mustPanic(t, "unmapped address", func() { s.Cell(soc.PERIPH_BASE + 0x1000) })
}

func TestGPOSetWins(t *testing.T) {
	s := New()
	bsr := s.Cell(soc.GPO1_BASE)
	bsr.Set(0x0000_00FF)
	bsr.Set(0x0012_0003) // clear 1 and 4, set 0 and 1
	if s.GPO.Out != 0x00EF {
		t.Fatalf("Out = %#x, want 0xef", s.GPO.Out)
	}
}

func TestTimerStrobeAndRun(t *testing.T) {
	s := New()
	cr, lo := s.Cell(soc.TIMER1_BASE), s.Cell(soc.TIMER1_BASE+0x4)
	s.Timer.Count = 99
	if lo.Get() != 99 || lo.Get() != 99 {
		t.Fatalf("stopped counter advanced")
	}
	cr.Set(soc.TIMER_CR_RUN | soc.TIMER_CR_CLR)
	if cr.Get() != soc.TIMER_CR_RUN {
		t.Fatalf("CLR did not self-clear: %#x", cr.Get())
	}
	if a, b := lo.Get(), lo.Get(); a != 0 || b != 1 {
		t.Fatalf("reads after clear = %d, %d", a, b)
	}
}

func TestI2CXferLog(t *testing.T) {
	s := New()
	s.I2C.Attach(0x50, &Memory{})
	cr, sr := s.Cell(soc.I2C1_BASE), s.Cell(soc.I2C1_BASE+0x4)
	s.Cell(soc.I2C1_BASE + 0x8).Set(0x42)
	cr.Set(0x50 | soc.I2C_CMD_XFER<<soc.I2C_CR_CMD_Pos)
	if sr.Get() != soc.I2C_SR_BUSY {
		t.Fatalf("not busy right after the command")
	}
	if sr.Get() != soc.I2C_SR_DONE {
		t.Fatalf("SR = %#x, want DONE", sr.Get())
	}
	if got, want := s.I2C.Log(), "S W a0+ W 42+ P"; got != want {
		t.Fatalf("log %q, want %q", got, want)
	}
	if soc.I2C_CR_CMD.Fld2Val(cr.Get()) != 0 {
		t.Fatalf("CMD reads back non-zero")
	}

	cr.Set(0x51 | soc.I2C_CMD_XFER<<soc.I2C_CR_CMD_Pos)
	sr.Get()
	if sr.Get() != soc.I2C_SR_DONE|soc.I2C_SR_ERR {
		t.Fatalf("absent device: SR = %#x", sr.Get())
	}
}

func TestAHT20Frame(t *testing.T) {
	a := &AHT20{Calibrated: true, HumidityRaw: 0x12345, TempRaw: 0xABCDE}
	f := a.buildFrame()
	want := [6]byte{0x08, 0x12, 0x34, 0x5A, 0xBC, 0xDE}
	for i := range want {
		if f[i] != want[i] {
			t.Fatalf("frame % x, want % x", f[:6], want)
		}
	}
	if f[6] != crc8(f[:6]) {
		t.Fatalf("crc %#x", f[6])
	}
}
