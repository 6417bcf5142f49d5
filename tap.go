// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

// TapConfig is the CLICK_CFG register image enabling single and double tap
// recognition per axis.
type TapConfig struct {
	XSingle bool
	XDouble bool
	YSingle bool
	YDouble bool
	ZSingle bool
	ZDouble bool
}

func (c TapConfig) encode() byte {
	return flag(c.XSingle, clickCfgXS) |
		flag(c.XDouble, clickCfgXD) |
		flag(c.YSingle, clickCfgYS) |
		flag(c.YDouble, clickCfgYD) |
		flag(c.ZSingle, clickCfgZS) |
		flag(c.ZDouble, clickCfgZD)
}

// TapSource is the decoded CLICK_SRC register. Reading it clears a latched
// tap interrupt.
type TapSource struct {
	Active bool
	Double bool
	Single bool
	// Negative is set when the triggering acceleration was negative.
	Negative bool
	Z        bool
	Y        bool
	X        bool
}

// SetTapConfig writes the tap detector configuration register.
func (d *Dev) SetTapConfig(c TapConfig) error {
	return d.writeReg(RegClickCfg, c.encode())
}

// TapConfig returns the tap detector configuration register.
func (d *Dev) TapConfig() (TapConfig, error) {
	v, err := d.readReg(RegClickCfg)
	return TapConfig{
		XSingle: v&clickCfgXS != 0,
		XDouble: v&clickCfgXD != 0,
		YSingle: v&clickCfgYS != 0,
		YDouble: v&clickCfgYD != 0,
		ZSingle: v&clickCfgZS != 0,
		ZDouble: v&clickCfgZD != 0,
	}, err
}

// TapSource returns the tap detector source register.
func (d *Dev) TapSource() (TapSource, error) {
	v, err := d.readReg(RegClickSrc)
	return TapSource{
		Active:   v&clickSrcActive != 0,
		Double:   v&clickSrcDouble != 0,
		Single:   v&clickSrcSingle != 0,
		Negative: v&clickSrcSign != 0,
		Z:        v&clickSrcZ != 0,
		Y:        v&clickSrcY != 0,
		X:        v&clickSrcX != 0,
	}, err
}

// SetTapThreshold sets the tap detection threshold. 1 LSB = full scale/128.
func (d *Dev) SetTapThreshold(ths uint8) error {
	return d.updateReg(RegClickThs, lowSevenMask, ths)
}

// TapThreshold returns the tap detection threshold.
func (d *Dev) TapThreshold() (uint8, error) {
	v, err := d.readReg(RegClickThs)
	return v & lowSevenMask, err
}

// SetTapNotification selects pulsed or latched tap interrupts. Pulsed
// interrupts stay high for the latency window; latched ones until TapSource
// is read.
func (d *Dev) SetTapNotification(m NotificationMode) error {
	return d.updateReg(RegClickThs, clickThsLIR, flag(m == NotifyLatched, clickThsLIR))
}

// TapNotification returns the tap notification mode.
func (d *Dev) TapNotification() (NotificationMode, error) {
	v, err := d.readReg(RegClickThs)
	if err != nil {
		return NotifyPulsed, err
	}
	if v&clickThsLIR != 0 {
		return NotifyLatched, nil
	}
	return NotifyPulsed, nil
}

// SetShockDuration sets the maximum time, in 1/ODR steps, the acceleration
// may stay over threshold for the event to count as a tap.
func (d *Dev) SetShockDuration(dur uint8) error {
	return d.updateReg(RegTimeLimit, lowSevenMask, dur)
}

// ShockDuration returns the tap shock window.
func (d *Dev) ShockDuration() (uint8, error) {
	v, err := d.readReg(RegTimeLimit)
	return v & lowSevenMask, err
}

// SetQuietDuration sets the dead time, in 1/ODR steps, after a first tap
// during which detection is suspended when double tap is enabled.
func (d *Dev) SetQuietDuration(dur uint8) error {
	return d.writeReg(RegTimeLatency, dur)
}

// QuietDuration returns the tap quiet window.
func (d *Dev) QuietDuration() (uint8, error) {
	return d.readReg(RegTimeLatency)
}

// SetDoubleTapWindow sets the time, in 1/ODR steps, after the quiet window
// within which a second tap must start.
func (d *Dev) SetDoubleTapWindow(win uint8) error {
	return d.writeReg(RegTimeWindow, win)
}

// DoubleTapWindow returns the double tap window.
func (d *Dev) DoubleTapWindow() (uint8, error) {
	return d.readReg(RegTimeWindow)
}

// SetActivityThreshold sets the sleep-to-wake / return-to-sleep threshold
// used in low-power mode.
// 1 LSB = 16mg@±2g / 32mg@±4g / 62mg@±8g / 186mg@±16g.
func (d *Dev) SetActivityThreshold(ths uint8) error {
	return d.updateReg(RegActThs, lowSevenMask, ths)
}

// ActivityThreshold returns the activity threshold.
func (d *Dev) ActivityThreshold() (uint8, error) {
	v, err := d.readReg(RegActThs)
	return v & lowSevenMask, err
}

// SetActivityDuration sets the return-to-sleep delay;
// duration = (8*val + 1)/ODR.
func (d *Dev) SetActivityDuration(dur uint8) error {
	return d.writeReg(RegActDur, dur)
}

// ActivityDuration returns the return-to-sleep delay.
func (d *Dev) ActivityDuration() (uint8, error) {
	return d.readReg(RegActDur)
}
