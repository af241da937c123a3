// Package i2c is a polled master for the I2C bus controller.
//
// Two layers share one register contract:
//
//	m.WriteByteTo(addr, b)        // addressed transfer: START, addr|W, b, STOP in hardware
//	m.Start(); m.SendByte(b) ... // explicit sequencing, one condition or byte per call
//
// Every wait is bounded by Config.Timeout poll iterations and reports
// errcode.Timeout. A NACK reports errcode.Nack. Nothing is retried.
package i2c

import (
	"tinygo.org/x/drivers"

	"softcore-bsp/device/soc"
	"softcore-bsp/errcode"
	"softcore-bsp/x/mathx"
)

const (
	DefaultRateHz  = 100_000
	DefaultTimeout = 10000 // SR polls
)

// Config controls the bus clock and poll bounds. All fields are optional.
type Config struct {
	// SysClockHz defaults to soc.SYS_FREQ.
	SysClockHz uint32
	// RateHz is the SCL frequency. Default 100 kHz.
	RateHz uint32
	// Timeout bounds each status wait, in iterations. Default 10000.
	Timeout uint32
}

type Master struct {
	regs    *soc.I2C_Type
	timeout uint32

	// open is true between a START and the STOP that releases the bus.
	// A transaction started while open begins with a repeated START.
	open bool
}

var _ drivers.I2C = (*Master)(nil)

func New(regs *soc.I2C_Type) *Master {
	return &Master{regs: regs, timeout: DefaultTimeout}
}

// Configure applies cfg and programs the bit-clock divisor.
func (m *Master) Configure(cfg Config) {
	if cfg.SysClockHz == 0 {
		cfg.SysClockHz = soc.SYS_FREQ
	}
	if cfg.RateHz == 0 {
		cfg.RateHz = DefaultRateHz
	}
	if cfg.Timeout != 0 {
		m.timeout = cfg.Timeout
	}
	m.SetDivisor(Divisor(cfg.SysClockHz, cfg.RateHz))
}

// Divisor derives the DIV field for an SCL rate: the controller takes four
// divided clocks per bit, so DIV = ceil(sysHz/(4*sclHz)) - 1.
func Divisor(sysHz, sclHz uint32) uint16 {
	q := mathx.CeilDiv(uint64(sysHz), 4*uint64(sclHz))
	if q > 0 {
		q--
	}
	return uint16(mathx.Clamp(q, 0, uint64(soc.I2C_CR_DIV.Max())))
}

func (m *Master) SetDivisor(div uint16) {
	m.regs.CR.ReplaceField(soc.I2C_CR_DIV, uint32(div))
}

// Busy reports a command in flight.
func (m *Master) Busy() bool { return m.regs.SR.HasBits(soc.I2C_SR_BUSY) }

// ---- status polling ----

func (m *Master) waitIdle() error {
	for i := uint32(0); i < m.timeout; i++ {
		if !m.Busy() {
			return nil
		}
	}
	return errcode.Timeout
}

// waitDone polls for DONE or ERR; ERR maps to Nack.
func (m *Master) waitDone() error {
	for i := uint32(0); i < m.timeout; i++ {
		sr := m.regs.SR.Get()
		if sr&soc.I2C_SR_BUSY != 0 {
			continue
		}
		if sr&soc.I2C_SR_ERR != 0 {
			return errcode.Nack
		}
		if sr&soc.I2C_SR_DONE != 0 {
			return nil
		}
	}
	return errcode.Timeout
}

// issue waits for the controller to be idle, starts cmd and waits for it to
// finish. extra carries ADDR, RW and NACK; DIV is preserved.
func (m *Master) issue(cmd, extra uint32) error {
	if err := m.waitIdle(); err != nil {
		return err
	}
	m.command(cmd, extra)
	return m.waitIdle()
}

// command writes CR without waiting. The caller has seen !BUSY.
func (m *Master) command(cmd, extra uint32) {
	m.regs.CR.Modify(
		soc.I2C_CR_ADDR_Msk|soc.I2C_CR_RW_Msk|soc.I2C_CR_CMD_Msk|soc.I2C_CR_NACK_Msk,
		extra|soc.I2C_CR_CMD.Val2Fld(cmd),
	)
}

// abort ends a transaction that failed mid-way. The STOP is best effort;
// the bus is considered released either way.
func (m *Master) abort() {
	_ = m.Stop()
	m.open = false
}

// ---- addressed single-byte transfers ----

// xfer runs one addressed transfer. The controller generates its own START
// and STOP, so the bus is free afterwards whatever the outcome.
func (m *Master) xfer(addr uint8, read bool, b byte) error {
	if addr > 0x7F {
		return errcode.InvalidParams
	}
	if err := m.waitIdle(); err != nil {
		return err
	}
	extra := soc.I2C_CR_ADDR.Val2Fld(uint32(addr))
	if read {
		extra |= soc.I2C_CR_RW
	} else {
		m.regs.TX.Set(soc.I2C_DAT.Val2Fld(uint32(b)))
	}
	m.command(soc.I2C_CMD_XFER, extra)
	err := m.waitDone()
	m.open = false
	return err
}

// WriteByteTo sends one byte to the device at addr in a single hardware
// transaction.
func (m *Master) WriteByteTo(addr, b uint8) error {
	return m.xfer(addr, false, b)
}

// ReadByteFrom reads one byte from the device at addr. On error no data is
// consumed from RX.
func (m *Master) ReadByteFrom(addr uint8) (byte, error) {
	if err := m.xfer(addr, true, 0); err != nil {
		return 0, err
	}
	return byte(m.regs.RX.Field(soc.I2C_DAT)), nil
}

// ---- explicit sequencing ----

// Start claims the bus. If the bus is already held it issues a repeated
// START instead.
func (m *Master) Start() error {
	cmd := uint32(soc.I2C_CMD_START)
	if m.open {
		cmd = soc.I2C_CMD_RESTART
	}
	if err := m.issue(cmd, 0); err != nil {
		return err
	}
	m.open = true
	return nil
}

// Restart issues a repeated START without releasing the bus.
func (m *Master) Restart() error {
	if err := m.issue(soc.I2C_CMD_RESTART, 0); err != nil {
		return err
	}
	m.open = true
	return nil
}

// Stop releases the bus.
func (m *Master) Stop() error {
	err := m.issue(soc.I2C_CMD_STOP, 0)
	if err == nil {
		m.open = false
	}
	return err
}

// SendByte shifts b out and reports whether the slave acknowledged it.
func (m *Master) SendByte(b byte) (acked bool, err error) {
	if err := m.waitIdle(); err != nil {
		return false, err
	}
	m.regs.TX.Set(soc.I2C_DAT.Val2Fld(uint32(b)))
	m.command(soc.I2C_CMD_WRITE, 0)
	if err := m.waitIdle(); err != nil {
		return false, err
	}
	return !m.regs.SR.HasBits(soc.I2C_SR_ERR), nil
}

// RecvByte shifts one byte in. final makes the master NACK it, which tells
// the slave the read is over.
func (m *Master) RecvByte(final bool) (byte, error) {
	var nack uint32
	if final {
		nack = soc.I2C_CR_NACK
	}
	if err := m.issue(soc.I2C_CMD_READ, nack); err != nil {
		return 0, err
	}
	return byte(m.regs.RX.Field(soc.I2C_DAT)), nil
}

// ---- transactions ----

// WriteTx sends the address byte and then buf. It returns how many bytes,
// address included, were acknowledged. With restart set the bus is left
// held and the next transaction opens with a repeated START; otherwise it
// ends with STOP. A NACK or timeout ends the transaction early with STOP.
func (m *Master) WriteTx(addr uint8, buf []byte, restart bool) (int, error) {
	if addr > 0x7F {
		return 0, errcode.InvalidParams
	}
	if err := m.Start(); err != nil {
		return 0, err
	}
	sent := 0
	ack, err := m.SendByte(addr << 1)
	for i := 0; err == nil && ack; i++ {
		sent++
		if i == len(buf) {
			break
		}
		ack, err = m.SendByte(buf[i])
	}
	if err != nil {
		m.abort()
		return sent, err
	}
	if !ack {
		m.abort()
		return sent, errcode.Nack
	}
	if restart {
		return sent, nil
	}
	return sent, m.Stop()
}

// ReadTx addresses the device for reading and fills buf, acknowledging
// every byte but the last. It returns the number of bytes read.
func (m *Master) ReadTx(addr uint8, buf []byte, restart bool) (int, error) {
	if addr > 0x7F {
		return 0, errcode.InvalidParams
	}
	if err := m.Start(); err != nil {
		return 0, err
	}
	ack, err := m.SendByte(addr<<1 | 1)
	if err != nil {
		m.abort()
		return 0, err
	}
	if !ack {
		m.abort()
		return 0, errcode.Nack
	}
	for i := range buf {
		b, err := m.RecvByte(i == len(buf)-1)
		if err != nil {
			m.abort()
			return i, err
		}
		buf[i] = b
	}
	if restart {
		return len(buf), nil
	}
	return len(buf), m.Stop()
}

// Tx implements drivers.I2C: write w, then read r after a repeated START,
// then STOP. Either half may be empty; with both empty it addresses the
// device and stops.
func (m *Master) Tx(addr uint16, w, r []byte) error {
	if addr > 0x7F {
		return errcode.InvalidParams
	}
	a := uint8(addr)
	if len(w) > 0 || len(r) == 0 {
		if _, err := m.WriteTx(a, w, len(r) > 0); err != nil {
			return err
		}
	}
	if len(r) > 0 {
		if _, err := m.ReadTx(a, r, false); err != nil {
			return err
		}
	}
	return nil
}

// Probe reports whether a device acknowledges addr.
func (m *Master) Probe(addr uint8) bool {
	_, err := m.WriteTx(addr, nil, false)
	return err == nil
}
