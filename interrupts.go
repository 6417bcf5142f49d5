// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

// NotificationMode selects whether an interrupt is pulsed or held until its
// source register is read.
type NotificationMode uint8

const (
	NotifyPulsed  NotificationMode = 0
	NotifyLatched NotificationMode = 1
)

// HighPassRoute selects which event generators receive high-pass filtered
// data.
type HighPassRoute uint8

const (
	HPRouteNone        HighPassRoute = 0
	HPRouteInt1        HighPassRoute = 1
	HPRouteInt2        HighPassRoute = 2
	HPRouteInt1Int2    HighPassRoute = 3
	HPRouteTap         HighPassRoute = 4
	HPRouteInt1Tap     HighPassRoute = 5
	HPRouteInt2Tap     HighPassRoute = 6
	HPRouteInt1Int2Tap HighPassRoute = 7
)

// GenConfig is an interrupt generator configuration register image. The
// register is written wholesale.
type GenConfig struct {
	// AOI combines the enabled events with AND instead of OR.
	AOI bool
	// Detect6D turns the generator into an orientation detector.
	Detect6D bool
	ZHigh    bool
	ZLow     bool
	YHigh    bool
	YLow     bool
	XHigh    bool
	XLow     bool
}

func (c GenConfig) encode() byte {
	return flag(c.AOI, intCfgAOI) |
		flag(c.Detect6D, intCfg6D) |
		flag(c.ZHigh, intCfgZHigh) |
		flag(c.ZLow, intCfgZLow) |
		flag(c.YHigh, intCfgYHigh) |
		flag(c.YLow, intCfgYLow) |
		flag(c.XHigh, intCfgXHigh) |
		flag(c.XLow, intCfgXLow)
}

func decodeGenConfig(v byte) GenConfig {
	return GenConfig{
		AOI:      v&intCfgAOI != 0,
		Detect6D: v&intCfg6D != 0,
		ZHigh:    v&intCfgZHigh != 0,
		ZLow:     v&intCfgZLow != 0,
		YHigh:    v&intCfgYHigh != 0,
		YLow:     v&intCfgYLow != 0,
		XHigh:    v&intCfgXHigh != 0,
		XLow:     v&intCfgXLow != 0,
	}
}

// GenSource is a decoded interrupt generator source register. Reading the
// source register clears it when the generator is latched.
type GenSource struct {
	Active bool
	ZHigh  bool
	ZLow   bool
	YHigh  bool
	YLow   bool
	XHigh  bool
	XLow   bool
}

func decodeGenSource(v byte) GenSource {
	return GenSource{
		Active: v&intSrcActive != 0,
		ZHigh:  v&intSrcZHigh != 0,
		ZLow:   v&intSrcZLow != 0,
		YHigh:  v&intSrcYHigh != 0,
		YLow:   v&intSrcYLow != 0,
		XHigh:  v&intSrcXHigh != 0,
		XLow:   v&intSrcXLow != 0,
	}
}

// Int1PinConfig is the CTRL_REG3 image routing events to the INT1 pin.
type Int1PinConfig struct {
	Click     bool // tap event
	AOI1      bool // generator 1 event
	AOI2      bool // generator 2 event
	DRDY1     bool
	DRDY2     bool
	Watermark bool
	Overrun   bool
}

func (c Int1PinConfig) encode() byte {
	return flag(c.Click, ctrl3I1Click) |
		flag(c.AOI1, ctrl3I1AOI1) |
		flag(c.AOI2, ctrl3I1AOI2) |
		flag(c.DRDY1, ctrl3I1DRDY1) |
		flag(c.DRDY2, ctrl3I1DRDY2) |
		flag(c.Watermark, ctrl3I1WTM) |
		flag(c.Overrun, ctrl3I1Overrun)
}

// Int2PinConfig is the CTRL_REG6 image routing events to the INT2 pin.
type Int2PinConfig struct {
	Click    bool // tap event
	IG1      bool // generator 1 event
	IG2      bool // generator 2 event
	Boot     bool // boot status
	Activity bool // activity event
	// ActiveLow inverts the polarity of both interrupt pins.
	ActiveLow bool
}

func (c Int2PinConfig) encode() byte {
	return flag(c.Click, ctrl6I2Click) |
		flag(c.IG1, ctrl6I2IG1) |
		flag(c.IG2, ctrl6I2IG2) |
		flag(c.Boot, ctrl6BootI2) |
		flag(c.Activity, ctrl6P2Act) |
		flag(c.ActiveLow, ctrl6HLActive)
}

// SetInt1Config writes the generator 1 configuration register.
func (d *Dev) SetInt1Config(c GenConfig) error {
	return d.writeReg(RegInt1Cfg, c.encode())
}

// Int1Config returns the generator 1 configuration register.
func (d *Dev) Int1Config() (GenConfig, error) {
	v, err := d.readReg(RegInt1Cfg)
	return decodeGenConfig(v), err
}

// Int1Source returns the generator 1 source register.
func (d *Dev) Int1Source() (GenSource, error) {
	v, err := d.readReg(RegInt1Src)
	return decodeGenSource(v), err
}

// SetInt1Threshold sets the generator 1 event threshold.
// 1 LSB = 16mg@±2g / 32mg@±4g / 62mg@±8g / 186mg@±16g.
func (d *Dev) SetInt1Threshold(ths uint8) error {
	return d.updateReg(RegInt1Ths, lowSevenMask, ths)
}

// Int1Threshold returns the generator 1 event threshold.
func (d *Dev) Int1Threshold() (uint8, error) {
	v, err := d.readReg(RegInt1Ths)
	return v & lowSevenMask, err
}

// SetInt1Duration sets the minimum generator 1 event duration, in 1/ODR
// steps.
func (d *Dev) SetInt1Duration(dur uint8) error {
	return d.updateReg(RegInt1Duration, lowSevenMask, dur)
}

// Int1Duration returns the minimum generator 1 event duration.
func (d *Dev) Int1Duration() (uint8, error) {
	v, err := d.readReg(RegInt1Duration)
	return v & lowSevenMask, err
}

// SetInt2Config writes the generator 2 configuration register.
func (d *Dev) SetInt2Config(c GenConfig) error {
	return d.writeReg(RegInt2Cfg, c.encode())
}

// Int2Config returns the generator 2 configuration register.
func (d *Dev) Int2Config() (GenConfig, error) {
	v, err := d.readReg(RegInt2Cfg)
	return decodeGenConfig(v), err
}

// Int2Source returns the generator 2 source register.
func (d *Dev) Int2Source() (GenSource, error) {
	v, err := d.readReg(RegInt2Src)
	return decodeGenSource(v), err
}

// SetInt2Threshold sets the generator 2 event threshold.
// 1 LSB = 16mg@±2g / 32mg@±4g / 62mg@±8g / 186mg@±16g.
func (d *Dev) SetInt2Threshold(ths uint8) error {
	return d.updateReg(RegInt2Ths, lowSevenMask, ths)
}

// Int2Threshold returns the generator 2 event threshold.
func (d *Dev) Int2Threshold() (uint8, error) {
	v, err := d.readReg(RegInt2Ths)
	return v & lowSevenMask, err
}

// SetInt2Duration sets the minimum generator 2 event duration, in 1/ODR
// steps.
func (d *Dev) SetInt2Duration(dur uint8) error {
	return d.updateReg(RegInt2Duration, lowSevenMask, dur)
}

// Int2Duration returns the minimum generator 2 event duration.
func (d *Dev) Int2Duration() (uint8, error) {
	v, err := d.readReg(RegInt2Duration)
	return v & lowSevenMask, err
}

// SetHighPassRoute selects which event generators receive high-pass
// filtered data.
func (d *Dev) SetHighPassRoute(r HighPassRoute) error {
	return d.updateReg(RegCtrl2, ctrl2HPMask, byte(r)<<ctrl2HPShift)
}

// HighPassRoute returns the programmed event generator routing.
func (d *Dev) HighPassRoute() (HighPassRoute, error) {
	v, err := d.readReg(RegCtrl2)
	if err != nil {
		return HPRouteNone, err
	}
	switch r := HighPassRoute(v & ctrl2HPMask >> ctrl2HPShift); r {
	case HPRouteInt1, HPRouteInt2, HPRouteInt1Int2, HPRouteTap,
		HPRouteInt1Tap, HPRouteInt2Tap, HPRouteInt1Int2Tap:
		return r, nil
	default:
		return HPRouteNone, nil
	}
}

// SetInt1PinConfig writes the INT1 pin routing register.
func (d *Dev) SetInt1PinConfig(c Int1PinConfig) error {
	return d.writeReg(RegCtrl3, c.encode())
}

// Int1PinConfig returns the INT1 pin routing register.
func (d *Dev) Int1PinConfig() (Int1PinConfig, error) {
	v, err := d.readReg(RegCtrl3)
	return Int1PinConfig{
		Click:     v&ctrl3I1Click != 0,
		AOI1:      v&ctrl3I1AOI1 != 0,
		AOI2:      v&ctrl3I1AOI2 != 0,
		DRDY1:     v&ctrl3I1DRDY1 != 0,
		DRDY2:     v&ctrl3I1DRDY2 != 0,
		Watermark: v&ctrl3I1WTM != 0,
		Overrun:   v&ctrl3I1Overrun != 0,
	}, err
}

// SetInt2PinConfig writes the INT2 pin routing register.
func (d *Dev) SetInt2PinConfig(c Int2PinConfig) error {
	return d.writeReg(RegCtrl6, c.encode())
}

// Int2PinConfig returns the INT2 pin routing register.
func (d *Dev) Int2PinConfig() (Int2PinConfig, error) {
	v, err := d.readReg(RegCtrl6)
	return Int2PinConfig{
		Click:     v&ctrl6I2Click != 0,
		IG1:       v&ctrl6I2IG1 != 0,
		IG2:       v&ctrl6I2IG2 != 0,
		Boot:      v&ctrl6BootI2 != 0,
		Activity:  v&ctrl6P2Act != 0,
		ActiveLow: v&ctrl6HLActive != 0,
	}, err
}

// SetInt1Detect4D restricts generator 1 6D detection to the X/Y plane.
// Effective when Detect6D is set in the generator configuration.
func (d *Dev) SetInt1Detect4D(on bool) error {
	return d.updateReg(RegCtrl5, ctrl5D4DIG1, flag(on, ctrl5D4DIG1))
}

// Int1Detect4D returns the generator 1 4D detection bit.
func (d *Dev) Int1Detect4D() (bool, error) {
	v, err := d.readReg(RegCtrl5)
	return v&ctrl5D4DIG1 != 0, err
}

// SetInt1Notification selects pulsed or latched mode for generator 1. In
// latched mode the interrupt stays active until Int1Source is read.
func (d *Dev) SetInt1Notification(m NotificationMode) error {
	return d.updateReg(RegCtrl5, ctrl5LIRIG1, flag(m == NotifyLatched, ctrl5LIRIG1))
}

// Int1Notification returns the generator 1 notification mode.
func (d *Dev) Int1Notification() (NotificationMode, error) {
	v, err := d.readReg(RegCtrl5)
	if err != nil {
		return NotifyPulsed, err
	}
	if v&ctrl5LIRIG1 != 0 {
		return NotifyLatched, nil
	}
	return NotifyPulsed, nil
}

// SetInt2Detect4D restricts generator 2 6D detection to the X/Y plane.
// Effective when Detect6D is set in the generator configuration.
func (d *Dev) SetInt2Detect4D(on bool) error {
	return d.updateReg(RegCtrl5, ctrl5D4DIG2, flag(on, ctrl5D4DIG2))
}

// Int2Detect4D returns the generator 2 4D detection bit.
func (d *Dev) Int2Detect4D() (bool, error) {
	v, err := d.readReg(RegCtrl5)
	return v&ctrl5D4DIG2 != 0, err
}

// SetInt2Notification selects pulsed or latched mode for generator 2. In
// latched mode the interrupt stays active until Int2Source is read.
func (d *Dev) SetInt2Notification(m NotificationMode) error {
	return d.updateReg(RegCtrl5, ctrl5LIRIG2, flag(m == NotifyLatched, ctrl5LIRIG2))
}

// Int2Notification returns the generator 2 notification mode.
func (d *Dev) Int2Notification() (NotificationMode, error) {
	v, err := d.readReg(RegCtrl5)
	if err != nil {
		return NotifyPulsed, err
	}
	if v&ctrl5LIRIG2 != 0 {
		return NotifyLatched, nil
	}
	return NotifyPulsed, nil
}
