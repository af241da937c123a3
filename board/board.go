// Package board brings up the SoC: it maps every peripheral, derives the
// clock divisors from Config and starts the microsecond timer.
package board

import (
	"softcore-bsp/device/soc"
	"softcore-bsp/drivers/gpo"
	"softcore-bsp/drivers/i2c"
	"softcore-bsp/drivers/timer"
	"softcore-bsp/drivers/trace"
	"softcore-bsp/mmio"
	"softcore-bsp/x/fmtx"
)

// Config describes the clock tree and bus rates. Zero fields take defaults.
type Config struct {
	SysClockHz      uint32 // default soc.SYS_FREQ (48 MHz)
	TraceBaud       uint32 // default 115200
	TraceOversample uint32 // default 1
	I2CRateHz       uint32 // default 100 kHz
	TraceTimeout    uint32 // TXRDY polls per byte, default trace.DefaultTimeout
	I2CTimeout      uint32 // SR polls per wait, default i2c.DefaultTimeout
}

func (c Config) withDefaults() Config {
	if c.SysClockHz == 0 {
		c.SysClockHz = soc.SYS_FREQ
	}
	if c.TraceBaud == 0 {
		c.TraceBaud = trace.DefaultBaud
	}
	if c.TraceOversample == 0 {
		c.TraceOversample = trace.DefaultOversample
	}
	if c.I2CRateHz == 0 {
		c.I2CRateHz = i2c.DefaultRateHz
	}
	if c.TraceTimeout == 0 {
		c.TraceTimeout = trace.DefaultTimeout
	}
	if c.I2CTimeout == 0 {
		c.I2CTimeout = i2c.DefaultTimeout
	}
	return c
}

type Board struct {
	GPO   *gpo.Port
	Trace *trace.UART
	Timer *timer.Timer
	I2C   *i2c.Master

	// Log prints to the TRACE line.
	Log *fmtx.Printer

	cfg Config
}

// New maps the peripherals of space at the soc base addresses. Nothing is
// written until Init.
func New(space mmio.Space, cfg Config) *Board {
	return assemble(
		soc.MapGPO(space, soc.GPO1_BASE),
		soc.MapTRACE(space, soc.TRACE_BASE),
		soc.MapTIMER(space, soc.TIMER1_BASE),
		soc.MapI2C(space, soc.I2C1_BASE),
		cfg,
	)
}

func assemble(g *soc.GPO_Type, tr *soc.TRACE_Type, tm *soc.TIMER_Type, bus *soc.I2C_Type, cfg Config) *Board {
	b := &Board{
		GPO:   gpo.New(g),
		Trace: trace.New(tr),
		Timer: timer.New(tm),
		I2C:   i2c.New(bus),
		cfg:   cfg.withDefaults(),
	}
	b.Log = fmtx.New(b.Trace)
	return b
}

// Config returns the effective configuration, defaults applied.
func (b *Board) Config() Config { return b.cfg }

// Init programs the TRACE baud divisor, clears and starts the timer and
// programs the I2C bit clock.
func (b *Board) Init() {
	b.Trace.Configure(trace.Config{
		SysClockHz: b.cfg.SysClockHz,
		Baud:       b.cfg.TraceBaud,
		Oversample: b.cfg.TraceOversample,
		Timeout:    b.cfg.TraceTimeout,
	})
	b.Timer.Clear()
	b.Timer.Start()
	b.I2C.Configure(i2c.Config{
		SysClockHz: b.cfg.SysClockHz,
		RateHz:     b.cfg.I2CRateHz,
		Timeout:    b.cfg.I2CTimeout,
	})
}
