// cmd/tracemon prints the board's TRACE output line by line and reports the
// spacing of the firmware's timer lines.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/mattn/go-tty"
	"github.com/tarm/serial"

	"softcore-bsp/internal/monitor"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path")
	baud    = flag.Int("baud", 115200, "Baud rate of the TRACE line")
	rawTTY  = flag.Bool("tty", false, "Open the device as a raw tty (USB-CDC bridges) instead of a serial port")
	deltas  = flag.Bool("deltas", true, "Annotate timer lines with the microseconds since the previous one")
	stamp   = flag.Bool("stamp", false, "Prefix lines with host time")
	timeout = flag.Duration("read-timeout", 0, "Serial read timeout (0 blocks)")
)

func open() (io.ReadCloser, error) {
	if *rawTTY {
		t, err := tty.OpenDevice(*device)
		if err != nil {
			return nil, fmt.Errorf("open tty %s: %w", *device, err)
		}
		restore := t.MustRaw()
		return rawTTYReader{t: t, restore: restore}, nil
	}
	p, err := serial.OpenPort(&serial.Config{
		Name:        *device,
		Baud:        *baud,
		ReadTimeout: *timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port %s: %w", *device, err)
	}
	return p, nil
}

type rawTTYReader struct {
	t       *tty.TTY
	restore func() error
}

func (r rawTTYReader) Read(p []byte) (int, error) { return r.t.Input().Read(p) }

func (r rawTTYReader) Close() error {
	r.restore()
	return r.t.Close()
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("tracemon: ")

	port, err := open()
	if err != nil {
		log.Fatal(err)
	}
	defer port.Close()
	log.Printf("listening on %s", *device)

	r := monitor.NewReader(port)
	for {
		ln, err := r.Next()
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		if *stamp {
			fmt.Print(time.Now().Format("15:04:05.000 "))
		}
		if *deltas && ln.HasTimer && ln.DeltaUs != 0 {
			fmt.Printf("%s  (+%d us)\n", ln.Text, ln.DeltaUs)
			continue
		}
		fmt.Println(ln.Text)
	}
}
