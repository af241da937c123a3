//go:build !tinygo

package sim

import (
	"io"

	"softcore-bsp/device/soc"
)

// Trace models the diagnostic transmitter. Every byte written to TD is
// recorded and, when Line is set, shifted out to it as the far end of the wire.
type Trace struct {
	CR uint32

	// BusyPolls is how many SR reads report TXRDY low after a TD write.
	BusyPolls int
	// Stuck keeps TXRDY low forever.
	Stuck bool

	Line io.Writer

	sent []byte
	busy int
	rx   []byte
}

func newTrace() *Trace {
	return &Trace{BusyPolls: 1}
}

func (t *Trace) mapInto(s *Space, base uintptr) {
	s.add(base+0x0, "TRACE.CR", func() uint32 { return t.CR }, func(v uint32) { t.CR = v })
	s.add(base+0x4, "TRACE.SR", t.readSR, nil)
	s.add(base+0x8, "TRACE.TD", nil, t.writeTD)
	s.add(base+0xC, "TRACE.RD", t.readRD, nil)
}

func (t *Trace) readSR() uint32 {
	var v uint32
	switch {
	case t.busy > 0:
		t.busy--
	case !t.Stuck:
		v |= soc.TRACE_SR_TXRDY
	}
	if len(t.rx) > 0 {
		v |= soc.TRACE_SR_RXRDY
	}
	return v
}

func (t *Trace) writeTD(v uint32) {
	b := byte(v & soc.TRACE_DAT_Msk)
	t.sent = append(t.sent, b)
	if t.Line != nil {
		_, _ = t.Line.Write([]byte{b})
	}
	t.busy = t.BusyPolls
}

func (t *Trace) readRD() uint32 {
	if len(t.rx) == 0 {
		return 0
	}
	b := t.rx[0]
	t.rx = t.rx[1:]
	return uint32(b)
}

// Divisor returns the programmed baud divisor field.
func (t *Trace) Divisor() uint32 { return soc.TRACE_CR_DIV.Fld2Val(t.CR) }

// Sent returns every byte written to TD so far.
func (t *Trace) Sent() []byte { return t.sent }

// Reset forgets the transmit history.
func (t *Trace) Reset() { t.sent = t.sent[:0] }

// Inject queues bytes as if they arrived on the receive pin.
func (t *Trace) Inject(p ...byte) { t.rx = append(t.rx, p...) }
