package conv

// Deci writes a tenths value as a decimal with one fractional digit, e.g.
// 253 -> "25.3", -5 -> "-0.5". buf should be length >= 22.
// No allocations; no fmt/strconv dependency.
func Deci(buf []byte, v int64) []byte {
	if len(buf) < 3 {
		return buf[:0]
	}
	neg := v < 0
	var u uint64
	if neg {
		u = uint64(-v)
	} else {
		u = uint64(v)
	}
	i := len(buf)
	i--
	buf[i] = byte('0' + u%10)
	i--
	buf[i] = '.'
	i -= len(Utoa(buf[:i], u/10))
	if neg && i > 0 {
		i--
		buf[i] = '-'
	}
	return buf[i:]
}
