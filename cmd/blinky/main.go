//go:build tinygo

// cmd/blinky is the firmware image: bring the board up, then blink and log
// forever.
package main

import (
	"softcore-bsp/app"
	"softcore-bsp/board"
	"softcore-bsp/drivers/aht20"
)

// ---------- Configuration ----------

const (
	periodUs    = 500_000
	sensorEvery = 10 // steps between AHT20 reads
)

func main() {
	b := board.Default(board.Config{})
	b.Init()
	println("[main] board up")
	b.Log.Print("softcore-bsp\n")

	bl := &app.Blinky{
		Clock:    b.Timer,
		LED:      b.GPO,
		Log:      b.Log,
		PeriodUs: periodUs,
	}

	sensor := aht20.New(b.I2C, b.Timer)
	if b.I2C.Probe(aht20.Address) {
		sensor.Configure()
		bl.Sensor, bl.SensorEvery = &sensor, sensorEvery
		println("[main] aht20 found")
	} else {
		println("[main] no aht20 on i2c1")
	}

	for {
		bl.Step()
	}
}
