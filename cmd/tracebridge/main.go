//go:build rp2040 || rp2350

// cmd/tracebridge turns a Pico into a TRACE-to-USB adapter: the soft core's
// TRACE TX pin drives UART1 RX, and every byte received is forwarded to the
// USB serial port, where cmd/tracemon picks it up.
package main

import (
	"machine"
	"time"

	"github.com/jangala-dev/tinygo-uartx/uartx"
)

// ---------- Configuration ----------

const traceBaud = 115200

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(1500 * time.Millisecond)
	println("[bridge] boot …")

	u := uartx.UART1
	if err := u.Configure(uartx.UARTConfig{
		BaudRate: traceBaud,
		TX:       machine.GP8,
		RX:       machine.GP9,
	}); err != nil {
		println("[bridge] FAIL: uart1 configure:", err.Error())
		return
	}
	println("[bridge] uart1 rx on GP9 at", traceBaud, "baud")

	// No logging past this point: println shares the USB port with the
	// forwarded stream.
	var buf [64]byte
	for {
		n, _ := u.Read(buf[:]) // blocks until at least one byte arrives
		if n > 0 {
			_, _ = machine.Serial.Write(buf[:n])
		}
	}
}
