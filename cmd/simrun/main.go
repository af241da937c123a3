// cmd/simrun runs the firmware application against the peripheral simulator
// and prints the TRACE stream.
package main

import (
	"flag"
	"fmt"
	"os"

	"softcore-bsp/app"
	"softcore-bsp/board"
	"softcore-bsp/drivers/aht20"
	"softcore-bsp/internal/sim"
)

var (
	steps    = flag.Int("steps", 10, "Application steps to run")
	period   = flag.Uint64("period", app.DefaultPeriodUs, "Blink period in microseconds")
	tick     = flag.Uint64("tick", 1000, "Simulated microseconds per timer read")
	sensor   = flag.Bool("sensor", true, "Attach a simulated AHT20")
	every    = flag.Uint("every", 5, "Steps between sensor reads")
	busLog   = flag.Bool("buslog", false, "Print the I2C bus log at the end")
	tempRaw  = flag.Uint("traw", 393_216, "AHT20 raw temperature word (20 bits)")
	humidRaw = flag.Uint("hraw", 576_717, "AHT20 raw humidity word (20 bits)")
)

func main() {
	flag.Parse()

	s := sim.New()
	s.Timer.Step = *tick
	s.Trace.Line = os.Stdout

	b := board.New(s, board.Config{})
	b.Init()

	bl := &app.Blinky{Clock: b.Timer, LED: b.GPO, Log: b.Log, PeriodUs: *period}

	if *sensor {
		s.I2C.Attach(aht20.Address, &sim.AHT20{
			BusyReads:   1,
			TempRaw:     uint32(*tempRaw),
			HumidityRaw: uint32(*humidRaw),
		})
		d := aht20.New(b.I2C, b.Timer)
		d.Configure()
		bl.Sensor, bl.SensorEvery = &d, uint32(*every)
	}

	for i := 0; i < *steps; i++ {
		bl.Step()
	}

	fmt.Fprintf(os.Stderr, "simrun: %d steps, led=%v, gpo writes=%d, i2c commands=%d\n",
		bl.Steps, bl.On(), len(s.GPO.Writes), s.I2C.Commands)
	if *busLog {
		fmt.Fprintln(os.Stderr, s.I2C.Log())
	}
}
