//go:build !tinygo

package sim

import "softcore-bsp/device/soc"

// Timer models the microsecond counter. Hardware time is driven by bus
// accesses: while RUN is set, every LO or HI read advances Count by Step
// after the value is sampled.
type Timer struct {
	CR    uint32
	Count uint64
	Step  uint64
	Reads int
}

func (t *Timer) mapInto(s *Space, base uintptr) {
	s.add(base+0x0, "TIMER.CR", func() uint32 { return t.CR }, t.writeCR)
	s.add(base+0x4, "TIMER.LO", func() uint32 { return uint32(t.sample()) }, nil)
	s.add(base+0x8, "TIMER.HI", func() uint32 { return uint32(t.sample() >> 32) }, nil)
}

func (t *Timer) writeCR(v uint32) {
	if v&soc.TIMER_CR_CLR != 0 {
		t.Count = 0
	}
	t.CR = v &^ soc.TIMER_CR_CLR
}

func (t *Timer) sample() uint64 {
	v := t.Count
	t.Reads++
	if t.CR&soc.TIMER_CR_RUN != 0 {
		t.Count += t.Step
	}
	return v
}

// Running reports the RUN bit.
func (t *Timer) Running() bool { return t.CR&soc.TIMER_CR_RUN != 0 }
