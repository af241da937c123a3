// Package aht20 provides a driver for the AHT20 temperature/humidity sensor.
// It exposes a two-phase measurement API:
//
//	d.Trigger()              // start a measurement (fast)
//	err := d.Collect(&s)     // fetch when ready; returns ErrNotReady while busy
//
// For convenience, d.Read() performs trigger + bounded polling until ready.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
//
// There is no scheduler to sleep on: delays are busy-waits on the board's
// microsecond timer, passed in as a Sleeper. Conversions are fixed-point and
// return tenths of units (deci-°C and deci-%RH).
package aht20

import (
	"errors"

	"tinygo.org/x/drivers"

	"softcore-bsp/errcode"
)

// I2C address.
const Address = 0x38

// Commands and status bits (per datasheet/common driver practice).
const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08
)

// Errors returned by the driver. Bus failures are returned wrapped with the
// operation name; errors.Is(err, errcode.Nack) still matches.
var (
	ErrTimeout  = &errcode.E{C: errcode.Timeout, Op: "aht20", Msg: "measurement not ready"}
	ErrNotReady = errors.New("aht20: not ready")
	ErrProtocol = &errcode.E{C: errcode.Error, Op: "aht20", Msg: "crc mismatch"}
)

// Sleeper busy-waits for a number of microseconds. *timer.Timer satisfies it.
type Sleeper interface {
	SleepUs(us uint64)
}

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x38 if zero.
	Address uint16
	// PollIntervalUs is slept by Read() between Collect() attempts. Default 15 ms.
	PollIntervalUs uint32
	// MaxPolls bounds the Collect() attempts in Read(). Default 20.
	MaxPolls int
	// TriggerHintUs is a nominal conversion time used only as a hint (no sleep
	// is performed in Trigger). Default 80 ms.
	TriggerHintUs uint32
	// SkipCRC accepts frames without checking the trailing CRC-8.
	SkipCRC bool
}

const (
	defaultPollUs    = 15_000
	defaultMaxPolls  = 20
	defaultHintUs    = 80_000
	initGuardUs      = 10_000
	softResetGuardUs = 20_000
)

// Device wraps an I2C connection to an AHT20 device.
type Device struct {
	bus     drivers.I2C
	clk     Sleeper
	Address uint16

	cfg      Config
	buf      [7]byte // reuse buffer to avoid allocations
	humidity uint32  // last raw humidity sample
	temp     uint32  // last raw temperature sample
}

// New creates a new AHT20 connection. The I2C bus must already be configured.
// This function only creates the Device object; it does not touch the device.
func New(bus drivers.I2C, clk Sleeper) Device {
	return Device{
		bus:     bus,
		clk:     clk,
		Address: Address,
	}
}

// Configure initialises the device if needed and applies optional config.
// It may be called with no cfg.
func (d *Device) Configure(cfgs ...Config) {
	var c Config
	if len(cfgs) > 0 {
		c = cfgs[0]
	}
	if c.Address != 0 {
		d.Address = c.Address
	}
	c.Address = d.Address
	if c.PollIntervalUs == 0 {
		c.PollIntervalUs = defaultPollUs
	}
	if c.MaxPolls <= 0 {
		c.MaxPolls = defaultMaxPolls
	}
	if c.TriggerHintUs == 0 {
		c.TriggerHintUs = defaultHintUs
	}
	d.cfg = c

	// Check initialisation state.
	st, _ := d.Status() // ignore error; will attempt init anyway
	if st&statusCalibrated != 0 {
		return // device is already initialised
	}

	// Force initialisation; tolerate devices that do not ACK immediately.
	_ = d.bus.Tx(d.Address, []byte{cmdInitialize, 0x08, 0x00}, nil)
	d.clk.SleepUs(initGuardUs)
}

// Reset issues a soft reset and waits out the restart time.
func (d *Device) Reset() error {
	if err := d.bus.Tx(d.Address, []byte{cmdSoftReset}, nil); err != nil {
		return errcode.Wrap("aht20.reset", err)
	}
	d.clk.SleepUs(softResetGuardUs)
	return nil
}

// Status reads and returns the status byte.
func (d *Device) Status() (byte, error) {
	data := d.buf[:1]
	if err := d.bus.Tx(d.Address, []byte{cmdStatus}, data); err != nil {
		return 0, errcode.Wrap("aht20.status", err)
	}
	return data[0], nil
}

// Trigger starts a measurement. It is a quick register write with no blocking.
// After Trigger, the device needs time to convert; see d.TriggerHintUs().
func (d *Device) Trigger() error {
	// Ensure the device has been configured at least once.
	if d.cfg.PollIntervalUs == 0 {
		d.Configure()
	}
	return errcode.Wrap("aht20.trigger", d.bus.Tx(d.Address, []byte{cmdTrigger, 0x33, 0x00}, nil))
}

// TriggerHintUs returns the nominal conversion time to wait before attempting Collect.
func (d *Device) TriggerHintUs() uint32 {
	if d.cfg.TriggerHintUs > 0 {
		return d.cfg.TriggerHintUs
	}
	return defaultHintUs
}

// Collect attempts to read one measurement into the device cache and the
// provided sample. If the device is not ready yet, ErrNotReady is returned.
func (d *Device) Collect(out *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, nil, data); err != nil {
		return errcode.Wrap("aht20.collect", err)
	}
	// Check status bits in byte 0.
	if (data[0]&statusCalibrated) == 0 || (data[0]&statusBusy) != 0 {
		return ErrNotReady
	}
	if !d.cfg.SkipCRC && CRC8(data[:6]) != data[6] {
		return ErrProtocol
	}
	// Parse raw values.
	hraw := (uint32(data[1]) << 12) | (uint32(data[2]) << 4) | (uint32(data[3]) >> 4)
	traw := (uint32(data[3]&0x0F) << 16) | (uint32(data[4]) << 8) | uint32(data[5])

	d.humidity = hraw
	d.temp = traw

	if out != nil {
		out.RawHumidity = hraw
		out.RawTemp = traw
	}
	return nil
}

// Read performs a full measurement cycle: Trigger followed by bounded
// polling until Collect succeeds or MaxPolls attempts have failed.
func (d *Device) Read() error {
	if err := d.Trigger(); err != nil {
		return err
	}
	for i := 0; ; i++ {
		err := d.Collect(nil)
		switch err {
		case nil:
			return nil
		case ErrNotReady:
			if i+1 >= d.cfg.MaxPolls {
				return ErrTimeout
			}
			d.clk.SleepUs(uint64(d.cfg.PollIntervalUs))
		default:
			return err
		}
	}
}

// CRC8 is the sensor's frame checksum: polynomial 0x31, initial value 0xFF.
func CRC8(p []byte) byte {
	crc := byte(0xFF)
	for _, b := range p {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&0x80 != 0 {
				crc = crc<<1 ^ 0x31
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// Sample holds raw readings.
type Sample struct {
	RawHumidity uint32
	RawTemp     uint32
}

// Fixed-point conversion helpers operating on Sample.

func (s Sample) DeciRelHumidity() int32 {
	return (int32(s.RawHumidity) * 1000) / 0x100000
}

func (s Sample) DeciCelsius() int32 {
	return ((int32(s.RawTemp) * 2000) / 0x100000) - 500
}

// Accessors for the last cached sample.

func (d *Device) RawHumidity() uint32 { return d.humidity }
func (d *Device) RawTemp() uint32     { return d.temp }

// DeciRelHumidity returns tenths of %RH.
func (d *Device) DeciRelHumidity() int32 {
	return Sample{RawHumidity: d.humidity}.DeciRelHumidity()
}

// DeciCelsius returns tenths of °C.
func (d *Device) DeciCelsius() int32 {
	return Sample{RawTemp: d.temp}.DeciCelsius()
}
