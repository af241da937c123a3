package conv

// Dec writes n in base 10 into the end of buf, zero-padded to at least width
// digits, and returns the written tail. A buf too short for the result
// yields an empty slice, never a truncated number.
func Dec(buf []byte, n uint64, width int) []byte {
	if width < 1 {
		width = 1
	}
	i := len(buf)
	for ; n > 0 || width > 0; width-- {
		if i == 0 {
			return buf[:0]
		}
		i--
		buf[i] = hexd[n%10]
		n /= 10
	}
	return buf[i:]
}

// Utoa is Dec without padding. 20 bytes hold any uint64.
func Utoa(buf []byte, n uint64) []byte { return Dec(buf, n, 1) }
