//go:build !tinygo

package sim

// Memory is a 256-byte register file addressed by the first written byte,
// like a small EEPROM. The pointer auto-increments on reads and writes.
type Memory struct {
	Data     [256]byte
	ReadOnly bool // NACK data bytes after the pointer

	ptr   byte
	first bool
}

func (m *Memory) Begin(read bool) bool {
	m.first = !read
	return true
}

func (m *Memory) Put(b byte) bool {
	if m.first {
		m.ptr, m.first = b, false
		return true
	}
	if m.ReadOnly {
		return false
	}
	m.Data[m.ptr] = b
	m.ptr++
	return true
}

func (m *Memory) Get(bool) byte {
	v := m.Data[m.ptr]
	m.ptr++
	return v
}

func (m *Memory) End() { m.first = false }

// AHT20 answers the sensor's command set: 0xBE initialise, 0xBA soft reset,
// 0x71 status, 0xAC trigger. A data read returns status plus the 20-bit
// humidity and temperature words.
type AHT20 struct {
	Calibrated  bool
	BusyReads   int // data reads reporting busy after each trigger
	HumidityRaw uint32
	TempRaw     uint32
	Triggers    int
	BadCRC      bool // corrupt the frame checksum

	cmd        []byte
	statusMode bool
	busy       int
	frame      [7]byte
	idx        int
}

func (a *AHT20) Begin(read bool) bool {
	a.idx = 0
	if !read {
		a.cmd = a.cmd[:0]
		return true
	}
	if !a.statusMode {
		a.frame = a.buildFrame()
		if a.busy > 0 {
			a.busy--
		}
	}
	return true
}

func (a *AHT20) Put(b byte) bool {
	a.cmd = append(a.cmd, b)
	return true
}

func (a *AHT20) Get(bool) byte {
	if a.statusMode {
		return a.status()
	}
	if a.idx >= len(a.frame) {
		return 0xFF
	}
	v := a.frame[a.idx]
	a.idx++
	return v
}

func (a *AHT20) End() {
	if len(a.cmd) == 0 {
		return
	}
	switch a.cmd[0] {
	case 0xBE:
		a.Calibrated = true
	case 0xBA:
		a.Calibrated, a.statusMode = false, false
	case 0x71:
		a.statusMode = true
	case 0xAC:
		a.statusMode = false
		a.busy = a.BusyReads
		a.Triggers++
	}
	a.cmd = a.cmd[:0]
}

func (a *AHT20) status() byte {
	var s byte
	if a.Calibrated {
		s |= 0x08
	}
	if a.busy > 0 {
		s |= 0x80
	}
	return s
}

func (a *AHT20) buildFrame() [7]byte {
	h, t := a.HumidityRaw&0xFFFFF, a.TempRaw&0xFFFFF
	f := [7]byte{
		a.status(),
		byte(h >> 12),
		byte(h >> 4),
		byte(h&0x0F)<<4 | byte(t>>16),
		byte(t >> 8),
		byte(t),
	}
	f[6] = crc8(f[:6])
	if a.BadCRC {
		f[6] ^= 0xFF
	}
	return f
}

// crc8 uses polynomial 0x31, initial value 0xFF.
func crc8(p []byte) byte {
	crc := byte(0xFF)
	for _, b := range p {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
