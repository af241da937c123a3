package monitor

import (
	"io"
	"strings"
	"testing"
)

func collect(t *testing.T, in string) []Line {
	t.Helper()
	r := NewReader(strings.NewReader(in))
	var out []Line
	for {
		ln, err := r.Next()
		if err == io.EOF {
			return out
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		out = append(out, ln)
	}
}

func TestCRLFLines(t *testing.T) {
	got := collect(t, "boot\r\nhello\r\n\r\npartial")
	want := []string{"boot", "hello", "", "partial"}
	if len(got) != len(want) {
		t.Fatalf("got %d lines: %+v", len(got), got)
	}
	for i := range want {
		if got[i].Text != want[i] {
			t.Fatalf("line %d = %q, want %q", i, got[i].Text, want[i])
		}
	}
}

func TestTimerDeltas(t *testing.T) {
	got := collect(t, "Timer is now 500010\r\nT=25.0C\r\nTimer is now 1000020\r\nTimer is now 4294967290\r\nTimer is now 10\r\nTimer is now x\r\n")
	if len(got) != 6 {
		t.Fatalf("got %d lines", len(got))
	}
	for i, c := range []struct {
		has   bool
		us    uint32
		delta uint32
	}{
		{true, 500010, 0},
		{false, 0, 0},
		{true, 1000020, 500010},
		{true, 4294967290, 4293967270},
		{true, 10, 16}, // low word wrapped
		{false, 0, 0},
	} {
		g := got[i]
		if g.HasTimer != c.has || g.TimerUs != c.us || g.DeltaUs != c.delta {
			t.Fatalf("line %d %q = {%v %d %d}, want {%v %d %d}", i, g.Text, g.HasTimer, g.TimerUs, g.DeltaUs, c.has, c.us, c.delta)
		}
	}
}

func TestLongLineSplit(t *testing.T) {
	in := strings.Repeat("a", MaxLine+10) + "\r\n"
	got := collect(t, in)
	if len(got) != 2 || len(got[0].Text) != MaxLine || got[1].Text != strings.Repeat("a", 10) {
		t.Fatalf("split = %d lines", len(got))
	}
}
