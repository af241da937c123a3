// Package trace drives the TRACE diagnostic serial transmitter.
//
// PutChar writes the byte first and then polls TXRDY for a bounded number of
// iterations, so a dead transmitter yields errcode.Timeout instead of hanging
// the only thread of execution.
package trace

import (
	"softcore-bsp/device/soc"
	"softcore-bsp/errcode"
	"softcore-bsp/x/mathx"
)

const (
	DefaultBaud       = 115200
	DefaultOversample = 1
	DefaultTimeout    = 10000 // TXRDY/RXRDY polls
)

// Config controls the transmitter. All fields are optional.
type Config struct {
	// SysClockHz defaults to soc.SYS_FREQ.
	SysClockHz uint32
	// Baud defaults to 115200.
	Baud uint32
	// Oversample is clocks per bit period divided by the divisor step. Default 1.
	Oversample uint32
	// Timeout bounds each ready poll, in iterations. Default 10000.
	Timeout uint32
}

type UART struct {
	regs    *soc.TRACE_Type
	timeout uint32
}

func New(regs *soc.TRACE_Type) *UART {
	return &UART{regs: regs, timeout: DefaultTimeout}
}

// Configure applies cfg and programs the baud divisor.
func (u *UART) Configure(cfg Config) {
	if cfg.SysClockHz == 0 {
		cfg.SysClockHz = soc.SYS_FREQ
	}
	if cfg.Baud == 0 {
		cfg.Baud = DefaultBaud
	}
	if cfg.Oversample == 0 {
		cfg.Oversample = DefaultOversample
	}
	if cfg.Timeout != 0 {
		u.timeout = cfg.Timeout
	}
	u.SetDivisor(Divisor(cfg.SysClockHz, cfg.Baud, cfg.Oversample))
}

// Divisor derives sysHz/(baud*oversample) - 1, clamped to the DIV field.
func Divisor(sysHz, baud, oversample uint32) uint16 {
	den := uint64(baud) * uint64(oversample)
	if den == 0 {
		return 0
	}
	q := uint64(sysHz) / den
	if q > 0 {
		q--
	}
	return uint16(mathx.Clamp(q, 0, uint64(soc.TRACE_CR_DIV.Max())))
}

// SetDivisor writes the divisor field, leaving the rest of CR intact.
func (u *UART) SetDivisor(div uint16) {
	u.regs.CR.ReplaceField(soc.TRACE_CR_DIV, uint32(div))
}

// TransmitReady reports TXRDY without blocking.
func (u *UART) TransmitReady() bool { return u.regs.SR.HasBits(soc.TRACE_SR_TXRDY) }

// ReceiveReady reports RXRDY without blocking.
func (u *UART) ReceiveReady() bool { return u.regs.SR.HasBits(soc.TRACE_SR_RXRDY) }

// PutChar writes c and waits for the transmitter to report ready again.
func (u *UART) PutChar(c byte) error {
	u.regs.TD.Set(soc.TRACE_DAT.Val2Fld(uint32(c)))
	for i := uint32(0); i < u.timeout; i++ {
		if u.TransmitReady() {
			return nil
		}
	}
	return errcode.Timeout
}

// WriteByte is PutChar under the io.ByteWriter name.
func (u *UART) WriteByte(c byte) error { return u.PutChar(c) }

// Write sends p byte by byte and stops at the first timeout.
func (u *UART) Write(p []byte) (int, error) {
	for i, c := range p {
		if err := u.PutChar(c); err != nil {
			return i, err
		}
	}
	return len(p), nil
}

// ReadByte waits, bounded, for a received byte.
func (u *UART) ReadByte() (byte, error) {
	for i := uint32(0); i < u.timeout; i++ {
		if u.ReceiveReady() {
			return byte(u.regs.RD.Field(soc.TRACE_DAT)), nil
		}
	}
	return 0, errcode.Timeout
}
