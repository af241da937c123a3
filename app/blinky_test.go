package app

import (
	"strconv"
	"strings"
	"testing"

	"softcore-bsp/board"
	"softcore-bsp/drivers/aht20"
	"softcore-bsp/drivers/gpo"
	"softcore-bsp/internal/sim"
)

func newBlinky() (*Blinky, *board.Board, *sim.Space) {
	s := sim.New()
	s.Timer.Step = 25
	b := board.New(s, board.Config{})
	b.Init()
	s.Trace.Reset()
	return &Blinky{Clock: b.Timer, LED: b.GPO, Log: b.Log, PeriodUs: 1000}, b, s
}

func lines(s *sim.Space) []string {
	out := strings.Split(string(s.Trace.Sent()), "\r\n")
	return out[:len(out)-1]
}

func TestStepTogglesLED(t *testing.T) {
	bl, _, s := newBlinky()

	bl.Step()
	if bl.On() || s.GPO.Out&1 != 0 {
		t.Fatalf("first step must drive the LED low (out=%#x)", s.GPO.Out)
	}
	if last := s.GPO.Writes[len(s.GPO.Writes)-1]; last != uint32(gpo.Pin0)<<16 {
		t.Fatalf("BSR write = %#x", last)
	}
	bl.Step()
	if !bl.On() || s.GPO.Out&1 != 1 {
		t.Fatalf("second step must drive the LED high (out=%#x)", s.GPO.Out)
	}
	if bl.Steps != 2 {
		t.Fatalf("Steps = %d", bl.Steps)
	}
}

func TestStepLogsTimer(t *testing.T) {
	bl, _, s := newBlinky()
	bl.Step()
	bl.Step()

	ls := lines(s)
	if len(ls) != 2 {
		t.Fatalf("trace lines %q", ls)
	}
	var prev uint64
	for i, l := range ls {
		v, ok := strings.CutPrefix(l, "Timer is now ")
		if !ok {
			t.Fatalf("line %d = %q", i, l)
		}
		us, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
		if us < prev+1000 {
			t.Fatalf("line %d: %d us, previous %d; period not honoured", i, us, prev)
		}
		prev = us
	}
}

func TestCustomPin(t *testing.T) {
	bl, _, s := newBlinky()
	bl.Pin = gpo.Pin5
	bl.Step()
	bl.Step()
	if s.GPO.Out != uint16(gpo.Pin5) {
		t.Fatalf("out = %#x", s.GPO.Out)
	}
}

func TestSensorLogging(t *testing.T) {
	bl, b, s := newBlinky()
	s.I2C.Attach(aht20.Address, &sim.AHT20{Calibrated: true, HumidityRaw: 576_717, TempRaw: 393_216})
	d := aht20.New(b.I2C, b.Timer)
	d.Configure()
	bl.Sensor, bl.SensorEvery = &d, 2

	bl.Step()
	bl.Step()
	ls := lines(s)
	if len(ls) != 3 {
		t.Fatalf("trace lines %q", ls)
	}
	if got, want := ls[2], "T=25.0C RH=55.0%"; got != want {
		t.Fatalf("sensor line %q, want %q", got, want)
	}
}

func TestSensorErrorLogged(t *testing.T) {
	bl, b, s := newBlinky()
	d := aht20.New(b.I2C, b.Timer)
	bl.Sensor, bl.SensorEvery = &d, 1

	bl.Step()
	ls := lines(s)
	if len(ls) != 2 || ls[1] != "aht20: aht20.trigger: nack" {
		t.Fatalf("trace lines %q", ls)
	}
}
