// Package soc is the canonical register contract of the softcore SoC: memory
// map, register blocks and bit definitions for GPO, TRACE, TIMER and I2C.
//
// Naming follows the TinyGo device packages: PERIPH_REG_FIELD with _Pos and
// _Msk companions. Multi-bit fields are also exported as mmio.Field values.
package soc

import "softcore-bsp/mmio"

// Clocks.
const (
	MCU_FREQ = 16_000_000
	SYS_FREQ = 48_000_000
)

// Memory map
const (
	SRAM_BASE   uintptr = 0x00000000
	PERIPH_BASE uintptr = 0x80000000

	GPO1_BASE   = PERIPH_BASE + 0x00
	TRACE_BASE  = PERIPH_BASE + 0x40
	TIMER1_BASE = PERIPH_BASE + 0x80
	I2C1_BASE   = PERIPH_BASE + 0xC0
)

// Register blocks. Offsets are 4-byte words in declaration order.

type GPO_Type struct {
	BSR mmio.WO // bit set/reset
}

type TRACE_Type struct {
	CR mmio.RW // control
	SR mmio.RO // status
	TD mmio.WO // transmit data
	RD mmio.RO // receive data
}

type TIMER_Type struct {
	CR mmio.RW // control
	LO mmio.RO // counter low word
	HI mmio.RO // counter high word
}

type I2C_Type struct {
	CR mmio.RW // control / command
	SR mmio.RO // status
	TX mmio.RW // write data
	RX mmio.RO // read data
}

func MapGPO(s mmio.Space, base uintptr) *GPO_Type {
	return &GPO_Type{
		BSR: mmio.NewWO(s.Cell(base + 0x0)),
	}
}

func MapTRACE(s mmio.Space, base uintptr) *TRACE_Type {
	return &TRACE_Type{
		CR: mmio.NewRW(s.Cell(base + 0x0)),
		SR: mmio.NewRO(s.Cell(base + 0x4)),
		TD: mmio.NewWO(s.Cell(base + 0x8)),
		RD: mmio.NewRO(s.Cell(base + 0xC)),
	}
}

func MapTIMER(s mmio.Space, base uintptr) *TIMER_Type {
	return &TIMER_Type{
		CR: mmio.NewRW(s.Cell(base + 0x0)),
		LO: mmio.NewRO(s.Cell(base + 0x4)),
		HI: mmio.NewRO(s.Cell(base + 0x8)),
	}
}

func MapI2C(s mmio.Space, base uintptr) *I2C_Type {
	return &I2C_Type{
		CR: mmio.NewRW(s.Cell(base + 0x0)),
		SR: mmio.NewRO(s.Cell(base + 0x4)),
		TX: mmio.NewRW(s.Cell(base + 0x8)),
		RX: mmio.NewRO(s.Cell(base + 0xC)),
	}
}

// ----- GPO -----

// BSR: bits [15:0] drive the pin high, bits [31:16] drive it low.
const (
	GPO_BSR_SET_Pos = 0
	GPO_BSR_SET_Msk = 0xFFFF << GPO_BSR_SET_Pos
	GPO_BSR_CLR_Pos = 16
	GPO_BSR_CLR_Msk = 0xFFFF << GPO_BSR_CLR_Pos
)

// ----- TRACE -----

const (
	TRACE_CR_DIV_Pos = 0
	TRACE_CR_DIV_Msk = 0x7FF << TRACE_CR_DIV_Pos // [10:0] baud divisor

	TRACE_SR_TXRDY_Pos = 0
	TRACE_SR_TXRDY_Msk = 0x1 << TRACE_SR_TXRDY_Pos
	TRACE_SR_TXRDY     = TRACE_SR_TXRDY_Msk // ready for TX
	TRACE_SR_RXRDY_Pos = 1
	TRACE_SR_RXRDY_Msk = 0x1 << TRACE_SR_RXRDY_Pos
	TRACE_SR_RXRDY     = TRACE_SR_RXRDY_Msk // RX byte waiting

	TRACE_DAT_Pos = 0
	TRACE_DAT_Msk = 0xFF << TRACE_DAT_Pos
)

var (
	TRACE_CR_DIV = mmio.Field{Pos: TRACE_CR_DIV_Pos, Msk: TRACE_CR_DIV_Msk}
	TRACE_DAT    = mmio.Field{Pos: TRACE_DAT_Pos, Msk: TRACE_DAT_Msk}
)

// ----- TIMER -----

const (
	TIMER_CR_RUN_Pos = 0
	TIMER_CR_RUN_Msk = 0x1 << TIMER_CR_RUN_Pos
	TIMER_CR_RUN     = TIMER_CR_RUN_Msk // count while set
	TIMER_CR_CLR_Pos = 1
	TIMER_CR_CLR_Msk = 0x1 << TIMER_CR_CLR_Pos
	TIMER_CR_CLR     = TIMER_CR_CLR_Msk // strobe: zero the counter, reads back 0
)

// ----- I2C -----

const (
	I2C_CR_ADDR_Pos = 0
	I2C_CR_ADDR_Msk = 0x7F << I2C_CR_ADDR_Pos // [6:0] device address
	I2C_CR_RW_Pos   = 7
	I2C_CR_RW_Msk   = 0x1 << I2C_CR_RW_Pos
	I2C_CR_RW       = I2C_CR_RW_Msk // 0=write, 1=read
	I2C_CR_CMD_Pos  = 8
	I2C_CR_CMD_Msk  = 0x7 << I2C_CR_CMD_Pos // [10:8] command, reads back 0
	I2C_CR_NACK_Pos = 11
	I2C_CR_NACK_Msk = 0x1 << I2C_CR_NACK_Pos
	I2C_CR_NACK     = I2C_CR_NACK_Msk // master NACKs the byte of a READ
	I2C_CR_DIV_Pos  = 16
	I2C_CR_DIV_Msk  = 0xFFFF << I2C_CR_DIV_Pos // [31:16] bit-clock divisor

	I2C_SR_BUSY_Pos = 0
	I2C_SR_BUSY_Msk = 0x1 << I2C_SR_BUSY_Pos
	I2C_SR_BUSY     = I2C_SR_BUSY_Msk
	I2C_SR_DONE_Pos = 1
	I2C_SR_DONE_Msk = 0x1 << I2C_SR_DONE_Pos
	I2C_SR_DONE     = I2C_SR_DONE_Msk
	I2C_SR_ERR_Pos  = 2
	I2C_SR_ERR_Msk  = 0x1 << I2C_SR_ERR_Pos
	I2C_SR_ERR      = I2C_SR_ERR_Msk // NACK seen on the last address or data byte

	I2C_DAT_Pos = 0
	I2C_DAT_Msk = 0xFF << I2C_DAT_Pos
)

// I2C_CR_CMD values.
const (
	I2C_CMD_NONE    = 0
	I2C_CMD_XFER    = 1 // START, ADDR|RW, one data byte, STOP
	I2C_CMD_START   = 2
	I2C_CMD_RESTART = 3
	I2C_CMD_STOP    = 4
	I2C_CMD_WRITE   = 5 // shift out TX
	I2C_CMD_READ    = 6 // shift into RX; NACK selects the master's acknowledge
)

var (
	I2C_CR_ADDR = mmio.Field{Pos: I2C_CR_ADDR_Pos, Msk: I2C_CR_ADDR_Msk}
	I2C_CR_CMD  = mmio.Field{Pos: I2C_CR_CMD_Pos, Msk: I2C_CR_CMD_Msk}
	I2C_CR_DIV  = mmio.Field{Pos: I2C_CR_DIV_Pos, Msk: I2C_CR_DIV_Msk}
	I2C_DAT     = mmio.Field{Pos: I2C_DAT_Pos, Msk: I2C_DAT_Msk}
)
