package mmio

// Field describes a sub-range of a register: Pos is the lowest bit, Msk the
// in-place mask.
type Field struct {
	Pos uint8
	Msk uint32
}

// Bits builds a field of width bits starting at pos.
func Bits(pos, width uint8) Field {
	var m uint32
	if width >= 32 {
		m = ^uint32(0)
	} else {
		m = (uint32(1) << width) - 1
	}
	return Field{Pos: pos, Msk: m << pos}
}

// Bit is a one-bit field.
func Bit(pos uint8) Field { return Bits(pos, 1) }

// Val2Fld shifts v into place; bits of v wider than the field are dropped.
func (f Field) Val2Fld(v uint32) uint32 { return (v << f.Pos) & f.Msk }

// Fld2Val extracts the field from a register value.
func (f Field) Fld2Val(reg uint32) uint32 { return (reg & f.Msk) >> f.Pos }

// Max is the largest value the field can hold.
func (f Field) Max() uint32 { return f.Msk >> f.Pos }
