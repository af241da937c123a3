// Package gpo drives the general purpose output port through its single
// write-only bit set/reset register. Writes are write-1-to-act, so no
// read-modify-write is ever needed and pins outside the mask are untouched.
package gpo

import "softcore-bsp/device/soc"

// Pins is a mask of output pins 0..15.
type Pins uint16

const (
	Pin0 Pins = 1 << iota
	Pin1
	Pin2
	Pin3
	Pin4
	Pin5
	Pin6
	Pin7
	Pin8
	Pin9
	Pin10
	Pin11
	Pin12
	Pin13
	Pin14
	Pin15

	AllPins Pins = 0xFFFF
)

// Pin returns the mask for pin n (0..15); other n give an empty mask.
func Pin(n uint8) Pins {
	if n > 15 {
		return 0
	}
	return 1 << n
}

type Port struct {
	regs *soc.GPO_Type
}

func New(regs *soc.GPO_Type) *Port {
	return &Port{regs: regs}
}

// Set drives the pins in p high.
func (o *Port) Set(p Pins) {
	o.regs.BSR.Set(uint32(p) << soc.GPO_BSR_SET_Pos)
}

// Clear drives the pins in p low.
func (o *Port) Clear(p Pins) {
	o.regs.BSR.Set(uint32(p) << soc.GPO_BSR_CLR_Pos)
}

// Apply sets and clears pins in one write. A pin named in both masks ends high.
func (o *Port) Apply(set, clear Pins) {
	o.regs.BSR.Set(uint32(set)<<soc.GPO_BSR_SET_Pos | uint32(clear)<<soc.GPO_BSR_CLR_Pos)
}

// Write drives p high or low.
func (o *Port) Write(p Pins, high bool) {
	if high {
		o.Set(p)
	} else {
		o.Clear(p)
	}
}
