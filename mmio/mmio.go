// Package mmio is the register access layer. Every peripheral word is reached
// through a Cell, and every Cell is wrapped in an access-mode type (RW, RO, WO)
// so that reading a write-only register or writing a read-only one does not
// compile.
//
// On TinyGo the cells are runtime/volatile registers at fixed addresses (see
// Physical). On a host they are supplied by a simulator or by Word values.
package mmio

// Cell is one 32-bit hardware word. *volatile.Register32 satisfies it.
type Cell interface {
	Get() uint32
	Set(uint32)
}

// Space hands out the cell backing a physical address.
type Space interface {
	Cell(addr uintptr) Cell
}

// Word is a plain memory-backed cell.
type Word struct{ V uint32 }

func (w *Word) Get() uint32  { return w.V }
func (w *Word) Set(v uint32) { w.V = v }

// ---------------- Access modes ----------------

// RW is a read-write register.
type RW struct{ c Cell }

// RO is a read-only register.
type RO struct{ c Cell }

// WO is a write-only register.
type WO struct{ c Cell }

func NewRW(c Cell) RW { return RW{c} }
func NewRO(c Cell) RO { return RO{c} }
func NewWO(c Cell) WO { return WO{c} }

func (r RW) Get() uint32  { return r.c.Get() }
func (r RW) Set(v uint32) { r.c.Set(v) }

// Modify writes (Get() &^ clear) | set as one read followed by one write.
func (r RW) Modify(clear, set uint32) {
	r.c.Set((r.c.Get() &^ clear) | set)
}

func (r RW) SetBits(m uint32)      { r.Modify(0, m) }
func (r RW) ClearBits(m uint32)    { r.Modify(m, 0) }
func (r RW) HasBits(m uint32) bool { return r.c.Get()&m != 0 }
func (r RW) Field(f Field) uint32  { return f.Fld2Val(r.c.Get()) }
func (r RW) ReplaceField(f Field, v uint32) {
	r.Modify(f.Msk, f.Val2Fld(v))
}

func (r RO) Get() uint32           { return r.c.Get() }
func (r RO) HasBits(m uint32) bool { return r.c.Get()&m != 0 }
func (r RO) Field(f Field) uint32  { return f.Fld2Val(r.c.Get()) }

func (r WO) Set(v uint32) { r.c.Set(v) }
