// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

// FIFOMode selects how the 32-level hardware FIFO collects samples.
type FIFOMode uint8

const (
	// FIFOBypass disables the queue; output registers hold the latest
	// sample only.
	FIFOBypass FIFOMode = 0
	// FIFOStop fills the queue once and stops.
	FIFOStop FIFOMode = 1
	// FIFOStream keeps the queue filled, discarding the oldest samples.
	FIFOStream FIFOMode = 2
	// FIFOStreamToStop streams until the selected trigger fires, then
	// behaves like FIFOStop.
	FIFOStreamToStop FIFOMode = 3
)

// FIFOTrigger selects the interrupt generator that switches
// FIFOStreamToStop mode.
type FIFOTrigger uint8

const (
	TriggerInt1 FIFOTrigger = 0
	TriggerInt2 FIFOTrigger = 1
)

// FIFOStatus is the decoded FIFO_SRC_REG register.
type FIFOStatus struct {
	// Level is the number of unread samples in the queue.
	Level     uint8
	Empty     bool
	Overrun   bool
	Watermark bool
}

// SetFIFOEnable turns the hardware FIFO on or off.
func (d *Dev) SetFIFOEnable(on bool) error {
	return d.updateReg(RegCtrl5, ctrl5FIFOEn, flag(on, ctrl5FIFOEn))
}

// FIFOEnabled reports whether the hardware FIFO is on.
func (d *Dev) FIFOEnabled() (bool, error) {
	v, err := d.readReg(RegCtrl5)
	return v&ctrl5FIFOEn != 0, err
}

// SetFIFOWatermark sets the level (0-31) at which the watermark flag and
// interrupt assert.
func (d *Dev) SetFIFOWatermark(level uint8) error {
	return d.updateReg(RegFIFOCtrl, fifoCtrlFTHMask, level<<fifoCtrlFTHShift)
}

// FIFOWatermark returns the programmed watermark level.
func (d *Dev) FIFOWatermark() (uint8, error) {
	v, err := d.readReg(RegFIFOCtrl)
	return v & fifoCtrlFTHMask >> fifoCtrlFTHShift, err
}

// SetFIFOTrigger selects the generator that triggers FIFOStreamToStop mode.
func (d *Dev) SetFIFOTrigger(t FIFOTrigger) error {
	return d.updateReg(RegFIFOCtrl, fifoCtrlTR, flag(t == TriggerInt2, fifoCtrlTR))
}

// FIFOTrigger returns the programmed trigger selection.
func (d *Dev) FIFOTrigger() (FIFOTrigger, error) {
	v, err := d.readReg(RegFIFOCtrl)
	if err != nil {
		return TriggerInt1, err
	}
	if v&fifoCtrlTR != 0 {
		return TriggerInt2, nil
	}
	return TriggerInt1, nil
}

// SetFIFOMode selects the FIFO collection mode.
func (d *Dev) SetFIFOMode(m FIFOMode) error {
	return d.updateReg(RegFIFOCtrl, fifoCtrlFMMask, byte(m)<<fifoCtrlFMShift)
}

// FIFOMode returns the programmed collection mode.
func (d *Dev) FIFOMode() (FIFOMode, error) {
	v, err := d.readReg(RegFIFOCtrl)
	if err != nil {
		return FIFOBypass, err
	}
	switch m := FIFOMode(v & fifoCtrlFMMask >> fifoCtrlFMShift); m {
	case FIFOStop, FIFOStream, FIFOStreamToStop:
		return m, nil
	default:
		return FIFOBypass, nil
	}
}

// FIFOStatus returns the decoded FIFO status register.
func (d *Dev) FIFOStatus() (FIFOStatus, error) {
	v, err := d.readReg(RegFIFOSrc)
	return FIFOStatus{
		Level:     v & fifoSrcFSSMask,
		Empty:     v&fifoSrcEmpty != 0,
		Overrun:   v&fifoSrcOvr != 0,
		Watermark: v&fifoSrcWTM != 0,
	}, err
}

// FIFODataLevel returns the number of unread samples in the queue.
func (d *Dev) FIFODataLevel() (uint8, error) {
	v, err := d.readReg(RegFIFOSrc)
	return v & fifoSrcFSSMask, err
}

// FIFOEmpty reports whether the queue is empty.
func (d *Dev) FIFOEmpty() (bool, error) {
	v, err := d.readReg(RegFIFOSrc)
	return v&fifoSrcEmpty != 0, err
}

// FIFOOverrun reports whether the queue overflowed.
func (d *Dev) FIFOOverrun() (bool, error) {
	v, err := d.readReg(RegFIFOSrc)
	return v&fifoSrcOvr != 0, err
}

// FIFOWatermarkReached reports whether the queue level passed the
// programmed watermark.
func (d *Dev) FIFOWatermarkReached() (bool, error) {
	v, err := d.readReg(RegFIFOSrc)
	return v&fifoSrcWTM != 0, err
}
