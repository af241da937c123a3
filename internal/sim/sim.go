//go:build !tinygo

// Package sim is a register-level model of the SoC peripherals for host
// builds. Space implements mmio.Space at the soc base addresses, so drivers
// run unchanged against it. Reading a write-only word or writing a read-only
// one panics.
package sim

import (
	"strconv"

	"softcore-bsp/device/soc"
	"softcore-bsp/mmio"
)

// Space is a simulated SoC address space.
type Space struct {
	GPO   *GPO
	Trace *Trace
	Timer *Timer
	I2C   *I2C

	cells map[uintptr]mmio.Cell
}

// New returns a space with every peripheral in its reset state.
func New() *Space {
	s := &Space{
		GPO:   &GPO{},
		Trace: newTrace(),
		Timer: &Timer{Step: 1},
		I2C:   newI2C(),
		cells: make(map[uintptr]mmio.Cell),
	}
	s.GPO.mapInto(s, soc.GPO1_BASE)
	s.Trace.mapInto(s, soc.TRACE_BASE)
	s.Timer.mapInto(s, soc.TIMER1_BASE)
	s.I2C.mapInto(s, soc.I2C1_BASE)
	return s
}

func (s *Space) Cell(addr uintptr) mmio.Cell {
	c, ok := s.cells[addr]
	if !ok {
		panic("sim: unmapped address 0x" + strconv.FormatUint(uint64(addr), 16))
	}
	return c
}

func (s *Space) add(addr uintptr, name string, get func() uint32, set func(uint32)) {
	s.cells[addr] = &cell{name: name, get: get, set: set}
}

// cell dispatches accesses to a model; a nil hook marks the missing direction.
type cell struct {
	name string
	get  func() uint32
	set  func(uint32)
}

func (c *cell) Get() uint32 {
	if c.get == nil {
		panic("sim: read of write-only register " + c.name)
	}
	return c.get()
}

func (c *cell) Set(v uint32) {
	if c.set == nil {
		panic("sim: write to read-only register " + c.name)
	}
	c.set(v)
}
