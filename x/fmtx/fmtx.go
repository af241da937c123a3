// Package fmtx is the diagnostic formatter for the TRACE line: a single-pass,
// allocation-free printf with at most three arguments.
//
// Directives:
//
//	%d  decimal uint32
//	%x  8 hex digits
//	%h  4 hex digits
//	%b  2 hex digits
//	%s  string up to the first NUL (a non-string argument prints nothing)
//	%c  low byte of the argument
//
// Any other character after '%' is written out together with the '%'. Once
// three arguments have been consumed a '%' is an ordinary character. Every
// '\n' in the format or in a %s payload goes out as "\r\n". Output errors
// are ignored: a byte the transmitter refuses is dropped and printing
// continues.
package fmtx

import (
	"io"
	"strings"

	"softcore-bsp/x/conv"
)

// MaxArgs is the number of arguments Printf consults.
const MaxArgs = 3

// Arg is one formatter argument: a number or a string.
type Arg struct {
	n   uint32
	s   string
	b   []byte
	str bool
}

// U is a numeric argument for %d %x %h %b %c.
func U(v uint32) Arg { return Arg{n: v} }

// Str is a string argument for %s.
func Str(s string) Arg { return Arg{s: s, str: true} }

// Bytes is a %s argument backed by a byte slice, for text built in a
// caller-owned buffer.
func Bytes(b []byte) Arg { return Arg{b: b, str: true} }

// Char is a %c argument.
func Char(c byte) Arg { return Arg{n: uint32(c)} }

type Printer struct {
	w io.ByteWriter
}

func New(w io.ByteWriter) *Printer { return &Printer{w: w} }

func (p *Printer) put(c byte) { _ = p.w.WriteByte(c) }

// Printf writes format to the output, substituting up to MaxArgs arguments.
// Missing arguments read as zero.
func (p *Printer) Printf(format string, args ...Arg) {
	var av [MaxArgs]Arg
	copy(av[:], args)
	ai := 0

	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' || ai >= MaxArgs || i+1 == len(format) {
			p.literal(c)
			continue
		}
		i++
		switch format[i] {
		case 'd':
			p.dec(av[ai].n)
		case 'x':
			p.hex(av[ai].n, 8)
		case 'h':
			p.hex(av[ai].n, 4)
		case 'b':
			p.hex(av[ai].n, 2)
		case 's':
			p.str(av[ai])
		case 'c':
			p.put(byte(av[ai].n))
		default:
			p.put('%')
			p.literal(format[i])
			continue
		}
		ai++
	}
}

// Print writes s through the formatter with no arguments, so directives in s
// print zero values.
func (p *Printer) Print(s string) { p.Printf(s) }

func (p *Printer) literal(c byte) {
	if c == '\n' {
		p.put('\r')
	}
	p.put(c)
}

func (p *Printer) dec(v uint32) {
	var buf [10]byte
	for _, c := range conv.Utoa(buf[:], uint64(v)) {
		p.put(c)
	}
}

func (p *Printer) hex(v uint32, digits int) {
	var buf [8]byte
	for _, c := range conv.Hex(buf[:], v, digits) {
		p.put(c)
	}
}

func (p *Printer) str(a Arg) {
	if !a.str {
		return
	}
	for i := 0; i < len(a.s) && a.s[i] != 0; i++ {
		p.literal(a.s[i])
	}
	for i := 0; i < len(a.b) && a.b[i] != 0; i++ {
		p.literal(a.b[i])
	}
}

// Sprintf formats into a string. It allocates; firmware paths use Printf.
func Sprintf(format string, args ...Arg) string {
	var sb strings.Builder
	New(&sb).Printf(format, args...)
	return sb.String()
}
