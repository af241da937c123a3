//go:build tinygo

package soc

import "softcore-bsp/mmio"

// Peripherals
var (
	GPO1   = MapGPO(mmio.Physical{}, GPO1_BASE)
	TRACE  = MapTRACE(mmio.Physical{}, TRACE_BASE)
	TIMER1 = MapTIMER(mmio.Physical{}, TIMER1_BASE)
	I2C1   = MapI2C(mmio.Physical{}, I2C1_BASE)
)
