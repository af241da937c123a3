//go:build !tinygo

package sim

import (
	"strconv"

	"softcore-bsp/device/soc"
)

// EventKind is a bus condition or byte seen on the simulated I2C wires.
type EventKind uint8

const (
	EvStart EventKind = iota
	EvRestart
	EvStop
	EvWrite // master to slave; Ack is the slave's acknowledge
	EvRead  // slave to master; Ack is the master's acknowledge
)

// Event is one entry in the bus log.
type Event struct {
	Kind EventKind
	Byte byte
	Ack  bool
}

func (e Event) String() string {
	switch e.Kind {
	case EvStart:
		return "S"
	case EvRestart:
		return "Sr"
	case EvStop:
		return "P"
	}
	s := "W "
	if e.Kind == EvRead {
		s = "R "
	}
	s += hex2(e.Byte)
	if e.Ack {
		return s + "+"
	}
	return s + "-"
}

func hex2(b byte) string {
	h := strconv.FormatUint(uint64(b), 16)
	if len(h) == 1 {
		h = "0" + h
	}
	return h
}

// Device is a slave on the simulated bus.
type Device interface {
	// Begin is the address phase; the return value is the address ACK.
	Begin(read bool) bool
	// Put receives a data byte and returns the ACK.
	Put(b byte) bool
	// Get returns the next byte; ack is the master's acknowledge.
	Get(ack bool) byte
	// End is called on STOP or repeated START.
	End()
}

// I2C models the bus controller and the wires behind it.
type I2C struct {
	CR, TX, RX uint32

	// BusyPolls is how many SR reads report BUSY after a command.
	BusyPolls int
	// Hang keeps BUSY asserted forever.
	Hang bool
	// Stall holds BUSY for this many further SR reads, as a slave
	// stretching the clock would. A Device may set it mid-command.
	Stall int

	Events []Event

	devs map[uint8]Device
	cur  Device

	busy      int
	done, err bool
	active    bool // bus owned: START seen and no STOP yet
	addrPhase bool // next WRITE is an address byte
	Commands  int
}

func newI2C() *I2C {
	return &I2C{BusyPolls: 1, devs: make(map[uint8]Device)}
}

// Attach places d at the 7-bit address addr.
func (b *I2C) Attach(addr uint8, d Device) { b.devs[addr&0x7F] = d }

// Divisor returns the programmed bit-clock divisor.
func (b *I2C) Divisor() uint32 { return soc.I2C_CR_DIV.Fld2Val(b.CR) }

// Log renders Events in a compact form, e.g. "S W a0+ W aa+ P".
func (b *I2C) Log() string {
	s := ""
	for i, e := range b.Events {
		if i > 0 {
			s += " "
		}
		s += e.String()
	}
	return s
}

func (b *I2C) mapInto(s *Space, base uintptr) {
	s.add(base+0x0, "I2C.CR", func() uint32 { return b.CR }, b.writeCR)
	s.add(base+0x4, "I2C.SR", b.readSR, nil)
	s.add(base+0x8, "I2C.TX", func() uint32 { return b.TX }, func(v uint32) { b.TX = v & soc.I2C_DAT_Msk })
	s.add(base+0xC, "I2C.RX", func() uint32 { return b.RX }, nil)
}

func (b *I2C) readSR() uint32 {
	if b.Hang {
		return soc.I2C_SR_BUSY
	}
	if b.Stall > 0 {
		b.Stall--
		return soc.I2C_SR_BUSY
	}
	if b.busy > 0 {
		b.busy--
		return soc.I2C_SR_BUSY
	}
	var v uint32
	if b.done {
		v |= soc.I2C_SR_DONE
	}
	if b.err {
		v |= soc.I2C_SR_ERR
	}
	return v
}

func (b *I2C) writeCR(v uint32) {
	cmd := soc.I2C_CR_CMD.Fld2Val(v)
	b.CR = v &^ soc.I2C_CR_CMD_Msk
	if cmd == soc.I2C_CMD_NONE {
		return
	}
	b.Commands++
	b.done, b.err = false, false
	b.busy = b.BusyPolls

	switch cmd {
	case soc.I2C_CMD_START:
		b.start()
	case soc.I2C_CMD_RESTART:
		b.restart()
	case soc.I2C_CMD_STOP:
		b.stop()
	case soc.I2C_CMD_WRITE:
		b.err = !b.write(byte(b.TX))
	case soc.I2C_CMD_READ:
		b.RX = uint32(b.read(v&soc.I2C_CR_NACK == 0))
	case soc.I2C_CMD_XFER:
		addr := byte(soc.I2C_CR_ADDR.Fld2Val(v)) << 1
		rd := v&soc.I2C_CR_RW != 0
		if rd {
			addr |= 1
		}
		b.start()
		ack := b.write(addr)
		if ack {
			if rd {
				b.RX = uint32(b.read(false))
			} else {
				ack = b.write(byte(b.TX))
			}
		}
		b.stop()
		b.err = !ack
	default:
		b.err = true
	}
	b.done = true
}

func (b *I2C) start() {
	if b.active {
		b.restart()
		return
	}
	b.Events = append(b.Events, Event{Kind: EvStart})
	b.active, b.addrPhase = true, true
}

func (b *I2C) restart() {
	b.Events = append(b.Events, Event{Kind: EvRestart})
	b.release()
	b.active, b.addrPhase = true, true
}

func (b *I2C) stop() {
	b.Events = append(b.Events, Event{Kind: EvStop})
	b.release()
	b.active, b.addrPhase = false, false
}

func (b *I2C) release() {
	if b.cur != nil {
		b.cur.End()
		b.cur = nil
	}
}

func (b *I2C) write(v byte) bool {
	ack := false
	switch {
	case !b.active:
	case b.addrPhase:
		b.addrPhase = false
		if d, ok := b.devs[v>>1]; ok && d.Begin(v&1 == 1) {
			b.cur, ack = d, true
		}
	case b.cur != nil:
		ack = b.cur.Put(v)
	}
	b.Events = append(b.Events, Event{Kind: EvWrite, Byte: v, Ack: ack})
	return ack
}

func (b *I2C) read(ack bool) byte {
	v := byte(0xFF) // released SDA
	if b.active && b.cur != nil {
		v = b.cur.Get(ack)
	}
	b.Events = append(b.Events, Event{Kind: EvRead, Byte: v, Ack: ack})
	return v
}
