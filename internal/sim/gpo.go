//go:build !tinygo

package sim

import "softcore-bsp/device/soc"

// GPO models the output port. Out is the externally observed pin state.
type GPO struct {
	Out    uint16
	Writes []uint32
}

func (g *GPO) mapInto(s *Space, base uintptr) {
	s.add(base+0x0, "GPO.BSR", nil, g.writeBSR)
}

// Set wins when a write names the same pin in both halves.
func (g *GPO) writeBSR(v uint32) {
	g.Writes = append(g.Writes, v)
	set := uint16((v & soc.GPO_BSR_SET_Msk) >> soc.GPO_BSR_SET_Pos)
	clr := uint16((v & soc.GPO_BSR_CLR_Msk) >> soc.GPO_BSR_CLR_Pos)
	g.Out = (g.Out &^ clr) | set
}
