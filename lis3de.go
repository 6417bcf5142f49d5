// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// SPI port parameters used by NewSPI. The LIS3DE samples data on the rising
// clock edge with the clock idling high.
var (
	SPIFrequency = 10 * physic.MegaHertz
	SPIMode      = spi.Mode3
	SPIBits      = 8
)

// Transport moves register images between the driver and the device on
// whatever bus the device is wired to. Implementations must support
// multi-byte transfers starting at reg; the device auto-increments the
// register address internally.
//
// Errors are returned to the caller of the accessor untouched. The driver
// itself never retries or interprets them.
type Transport interface {
	// ReadReg reads len(buf) bytes starting at register reg.
	ReadReg(reg uint8, buf []byte) error
	// WriteReg writes len(buf) bytes starting at register reg.
	WriteReg(reg uint8, buf []byte) error
}

// i2cTransport drives the device through an I²C bus. Multi-byte transfers
// need the auto-increment bit (7) set in the sub-address byte.
type i2cTransport struct {
	d *i2c.Dev
}

func (t *i2cTransport) ReadReg(reg uint8, buf []byte) error {
	if len(buf) > 1 {
		reg |= 0x80
	}
	return t.d.Tx([]byte{reg}, buf)
}

func (t *i2cTransport) WriteReg(reg uint8, buf []byte) error {
	if len(buf) > 1 {
		reg |= 0x80
	}
	w := make([]byte, 1+len(buf))
	w[0] = reg
	copy(w[1:], buf)
	return t.d.Tx(w, nil)
}

// spiTransport drives the device through a 4-wire SPI connection. The
// address byte carries the read flag in bit 7 and the auto-increment flag
// in bit 6.
type spiTransport struct {
	c spi.Conn
}

func (t *spiTransport) ReadReg(reg uint8, buf []byte) error {
	w := make([]byte, 1+len(buf))
	w[0] = reg | 0x80
	if len(buf) > 1 {
		w[0] |= 0x40
	}
	r := make([]byte, len(w))
	if err := t.c.Tx(w, r); err != nil {
		return err
	}
	copy(buf, r[1:])
	return nil
}

func (t *spiTransport) WriteReg(reg uint8, buf []byte) error {
	w := make([]byte, 1+len(buf))
	w[0] = reg
	if len(buf) > 1 {
		w[0] |= 0x40
	}
	copy(w[1:], buf)
	r := make([]byte, len(w))
	return t.c.Tx(w, r)
}

// Opts holds the configuration applied when a Dev is created.
type Opts struct {
	// DataRate is the output data rate programmed on start. ODRPowerDown
	// leaves the device asleep.
	DataRate DataRate
	// Mode selects normal or low-power operation.
	Mode OperatingMode
	// Scale is the full-scale range programmed on start.
	Scale FullScale
}

// DefaultOpts starts the device at 100Hz, normal mode, ±2g.
var DefaultOpts = Opts{
	DataRate: ODR100Hz,
	Mode:     ModeNormal,
	Scale:    Scale2g,
}

// Dev is a handle to a LIS3DE. It holds no state beyond the transport; all
// configuration lives in the device registers.
type Dev struct {
	t Transport
}

// New creates a device handle over a caller-supplied transport, verifies the
// device identity and applies opts. Pass nil opts to leave the device
// configuration untouched.
func New(t Transport, opts *Opts) (*Dev, error) {
	d := &Dev{t: t}
	id, err := d.ID()
	if err != nil {
		return nil, fmt.Errorf("lis3de: reading WHO_AM_I: %v", err)
	}
	if id != DeviceID {
		return nil, fmt.Errorf("lis3de: unexpected device ID %#02x, want %#02x", id, DeviceID)
	}
	if opts == nil {
		return d, nil
	}
	if err := d.SetFullScale(opts.Scale); err != nil {
		return nil, err
	}
	if err := d.SetOperatingMode(opts.Mode); err != nil {
		return nil, err
	}
	if err := d.SetDataRate(opts.DataRate); err != nil {
		return nil, err
	}
	return d, nil
}

// NewI2C creates a device handle on an I²C bus. addr is 0x28 or 0x29
// depending on the SDO pin wiring.
func NewI2C(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	return New(&i2cTransport{d: &i2c.Dev{Bus: b, Addr: addr}}, opts)
}

// NewSPI creates a device handle on a SPI port using the package-level port
// parameters.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	c, err := p.Connect(SPIFrequency, SPIMode, SPIBits)
	if err != nil {
		return nil, fmt.Errorf("lis3de: connecting SPI: %v", err)
	}
	return New(&spiTransport{c: c}, opts)
}

func (d *Dev) String() string {
	return "lis3de"
}

// Halt puts the device in power-down mode. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SetDataRate(ODRPowerDown)
}

// readReg reads a single register.
func (d *Dev) readReg(reg uint8) (byte, error) {
	var b [1]byte
	err := d.t.ReadReg(reg, b[:])
	return b[0], err
}

// writeReg writes a single register wholesale.
func (d *Dev) writeReg(reg uint8, v byte) error {
	return d.t.WriteReg(reg, []byte{v})
}

// updateReg read-modify-writes the bits of reg selected by mask. Bits
// outside mask keep the value read back; nothing is written if the read
// fails.
func (d *Dev) updateReg(reg uint8, mask, v byte) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, cur&^mask|v&mask)
}

// ID returns the WHO_AM_I register content, DeviceID on a working part.
func (d *Dev) ID() (uint8, error) {
	return d.readReg(RegWhoAmI)
}

// SelfTest selects the electrostatic self-test actuation.
type SelfTest uint8

const (
	SelfTestDisabled SelfTest = 0
	SelfTestPositive SelfTest = 1
	SelfTestNegative SelfTest = 2
)

// SetSelfTest enables or disables the self-test actuation.
func (d *Dev) SetSelfTest(st SelfTest) error {
	return d.updateReg(RegCtrl4, ctrl4STMask, byte(st)<<ctrl4STShift)
}

// SelfTest returns the programmed self-test mode. Reserved patterns read as
// SelfTestDisabled.
func (d *Dev) SelfTest() (SelfTest, error) {
	v, err := d.readReg(RegCtrl4)
	if err != nil {
		return SelfTestDisabled, err
	}
	switch SelfTest(v & ctrl4STMask >> ctrl4STShift) {
	case SelfTestPositive:
		return SelfTestPositive, nil
	case SelfTestNegative:
		return SelfTestNegative, nil
	default:
		return SelfTestDisabled, nil
	}
}

// SetBoot set to true reboots the memory content, reloading the factory
// calibration parameters.
func (d *Dev) SetBoot(on bool) error {
	return d.updateReg(RegCtrl5, ctrl5Boot, flag(on, ctrl5Boot))
}

// Boot returns the boot bit of CTRL_REG5.
func (d *Dev) Boot() (bool, error) {
	v, err := d.readReg(RegCtrl5)
	return v&ctrl5Boot != 0, err
}

// WireMode selects between 4-wire and 3-wire SPI signalling.
type WireMode uint8

const (
	SPI4Wire WireMode = 0
	SPI3Wire WireMode = 1
)

// SetWireMode selects the SPI signalling mode. Switching to 3-wire on a
// 4-wire hookup makes the device unreachable until the register is rewritten.
func (d *Dev) SetWireMode(m WireMode) error {
	return d.updateReg(RegCtrl4, ctrl4SIM, flag(m == SPI3Wire, ctrl4SIM))
}

// WireMode returns the programmed SPI signalling mode.
func (d *Dev) WireMode() (WireMode, error) {
	v, err := d.readReg(RegCtrl4)
	if err != nil {
		return SPI4Wire, err
	}
	if v&ctrl4SIM != 0 {
		return SPI3Wire, nil
	}
	return SPI4Wire, nil
}

// flag returns mask when on is set, for composing register images.
func flag(on bool, mask byte) byte {
	if on {
		return mask
	}
	return 0
}

var _ conn.Resource = &Dev{}
