//go:build tinygo

package mmio

import (
	"runtime/volatile"
	"unsafe"
)

// Physical is the real address space of the SoC.
type Physical struct{}

func (Physical) Cell(addr uintptr) Cell {
	return (*volatile.Register32)(unsafe.Pointer(addr))
}
