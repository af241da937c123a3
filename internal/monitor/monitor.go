// Package monitor reassembles the TRACE byte stream into lines on the host
// and picks out the firmware's timer reports.
package monitor

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

const timerPrefix = "Timer is now "

// MaxLine bounds a single line; longer runs are split.
const MaxLine = 4096

// Line is one CRLF-terminated trace line.
type Line struct {
	Text string

	// HasTimer is set for "Timer is now N" lines. DeltaUs is the distance
	// from the previous timer report modulo 2^32 (the firmware prints the
	// low word), or 0 for the first one.
	HasTimer bool
	TimerUs  uint32
	DeltaUs  uint32
}

type Reader struct {
	sc   *bufio.Scanner
	last uint32
	seen bool
}

func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 256), MaxLine)
	sc.Split(splitLines)
	return &Reader{sc: sc}
}

// Next returns the next line, or io.EOF when the stream ends.
func (r *Reader) Next() (Line, error) {
	if !r.sc.Scan() {
		if err := r.sc.Err(); err != nil {
			return Line{}, err
		}
		return Line{}, io.EOF
	}
	ln := Line{Text: r.sc.Text()}
	if v, ok := strings.CutPrefix(ln.Text, timerPrefix); ok {
		if us, err := strconv.ParseUint(v, 10, 32); err == nil {
			ln.HasTimer, ln.TimerUs = true, uint32(us)
			if r.seen {
				ln.DeltaUs = ln.TimerUs - r.last
			}
			r.last, r.seen = ln.TimerUs, true
		}
	}
	return ln, nil
}

// splitLines is bufio.ScanLines with a length cap: a line that fills the
// buffer is returned as is instead of failing the scan.
func splitLines(data []byte, atEOF bool) (int, []byte, error) {
	adv, tok, err := bufio.ScanLines(data, atEOF)
	if err != nil || adv > 0 || atEOF {
		return adv, tok, err
	}
	if len(data) >= MaxLine {
		return MaxLine, data[:MaxLine], nil
	}
	return 0, nil, nil
}
