//go:build tinygo

package board

import "softcore-bsp/device/soc"

// Default returns the board wired to the fixed peripheral instances.
func Default(cfg Config) *Board {
	return assemble(soc.GPO1, soc.TRACE, soc.TIMER1, soc.I2C1, cfg)
}
