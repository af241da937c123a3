// Package app is the blink-and-log application: every period it toggles an
// LED, reports the timer on the TRACE line and, when a sensor is attached,
// logs a temperature/humidity sample.
package app

import (
	"softcore-bsp/drivers/aht20"
	"softcore-bsp/drivers/gpo"
	"softcore-bsp/x/conv"
	"softcore-bsp/x/fmtx"
)

const DefaultPeriodUs = 500_000

// Clock is the part of the timer the application needs.
type Clock interface {
	ReadUs() uint64
	SleepUs(us uint64)
}

// Pins is the part of the output port the application needs.
type Pins interface {
	Write(p gpo.Pins, high bool)
}

// Blinky holds the loop state. The zero toggle starts high, so the first Step
// drives the LED low.
type Blinky struct {
	Clock    Clock
	LED      Pins
	Pin      gpo.Pins // default gpo.Pin0
	Log      *fmtx.Printer
	PeriodUs uint64 // default DefaultPeriodUs

	// Sensor is optional; it is read every SensorEvery steps.
	Sensor      *aht20.Device
	SensorEvery uint32

	off   bool // inverted so the zero value means "on"
	Steps uint32
}

// Step runs one iteration of the loop.
func (b *Blinky) Step() {
	period := b.PeriodUs
	if period == 0 {
		period = DefaultPeriodUs
	}
	pin := b.Pin
	if pin == 0 {
		pin = gpo.Pin0
	}

	b.Clock.SleepUs(period)
	b.off = !b.off
	b.LED.Write(pin, !b.off)
	b.Log.Printf("Timer is now %d\n", fmtx.U(uint32(b.Clock.ReadUs())))
	b.Steps++

	if b.Sensor != nil && b.SensorEvery != 0 && b.Steps%b.SensorEvery == 0 {
		b.logSensor()
	}
}

// On reports the LED state after the last Step.
func (b *Blinky) On() bool { return !b.off }

func (b *Blinky) logSensor() {
	if err := b.Sensor.Read(); err != nil {
		b.Log.Printf("aht20: %s\n", fmtx.Str(err.Error()))
		return
	}
	var tb, hb [24]byte
	b.Log.Printf("T=%sC RH=%s%c\n",
		fmtx.Bytes(conv.Deci(tb[:], int64(b.Sensor.DeciCelsius()))),
		fmtx.Bytes(conv.Deci(hb[:], int64(b.Sensor.DeciRelHumidity()))),
		fmtx.Char('%'))
}
