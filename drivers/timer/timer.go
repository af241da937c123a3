// Package timer drives the free-running microsecond counter.
//
// The counter is 64 bits wide and exposed as two 32-bit words. ReadUs returns
// a consistent snapshot: the high word is sampled on both sides of the low
// word and the read is retried if a carry landed in between.
package timer

import "softcore-bsp/device/soc"

type Timer struct {
	regs *soc.TIMER_Type
}

func New(regs *soc.TIMER_Type) *Timer {
	return &Timer{regs: regs}
}

// Start lets the counter advance.
func (t *Timer) Start() { t.regs.CR.SetBits(soc.TIMER_CR_RUN) }

// Pause freezes the counter; its value is retained.
func (t *Timer) Pause() { t.regs.CR.ClearBits(soc.TIMER_CR_RUN) }

// Clear zeroes the counter. The run state is unchanged.
func (t *Timer) Clear() { t.regs.CR.SetBits(soc.TIMER_CR_CLR) }

// Running reports whether the counter is advancing.
func (t *Timer) Running() bool { return t.regs.CR.HasBits(soc.TIMER_CR_RUN) }

// ReadUs returns the counter in microseconds.
func (t *Timer) ReadUs() uint64 {
	for {
		hi := t.regs.HI.Get()
		lo := t.regs.LO.Get()
		if t.regs.HI.Get() == hi {
			return Compose(lo, hi)
		}
	}
}

// Since returns the microseconds elapsed since start (wrapping subtraction).
func (t *Timer) Since(start uint64) uint64 { return t.ReadUs() - start }

// SleepUs busy-waits until at least us microseconds have elapsed. There is no
// bound: if the counter is paused this never returns.
func (t *Timer) SleepUs(us uint64) {
	start := t.ReadUs()
	for t.ReadUs()-start < us {
	}
}

// Compose joins the two counter halves.
func Compose(lo, hi uint32) uint64 { return uint64(lo) | uint64(hi)<<32 }

// Split is the inverse of Compose.
func Split(v uint64) (lo, hi uint32) { return uint32(v), uint32(v >> 32) }
