package conv

const hexd = "0123456789ABCDEF"

// Hex writes the low digits nibbles of n as uppercase hex without 0x,
// zero-padded, into the end of buf. digits is clamped to 1..8.
func Hex(buf []byte, n uint32, digits int) []byte {
	if digits < 1 {
		digits = 1
	} else if digits > 8 {
		digits = 8
	}
	if len(buf) < digits {
		return buf[:0]
	}
	i := len(buf)
	for j := 0; j < digits; j++ {
		i--
		buf[i] = hexd[n&0xF]
		n >>= 4
	}
	return buf[i:]
}

// U32Hex writes 8-digit uppercase hex without 0x, zero-padded.
func U32Hex(buf []byte, n uint32) []byte { return Hex(buf, n, 8) }
