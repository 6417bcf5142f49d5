// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

import "encoding/binary"

// OperatingMode selects between normal and low-power operation. Low-power
// drops the sample resolution from 10 to 8 bits.
type OperatingMode uint8

const (
	ModeNormal   OperatingMode = 0
	ModeLowPower OperatingMode = 1
)

// DataRate is the accelerometer output data rate.
type DataRate uint8

const (
	ODRPowerDown DataRate = 0
	ODR1Hz       DataRate = 1
	ODR10Hz      DataRate = 2
	ODR25Hz      DataRate = 3
	ODR50Hz      DataRate = 4
	ODR100Hz     DataRate = 5
	ODR200Hz     DataRate = 6
	ODR400Hz     DataRate = 7
	// ODR1600HzLP is available in low-power mode only.
	ODR1600HzLP DataRate = 8
	// ODR1344Hz runs at 1.344kHz in normal mode and 5.376kHz in low-power
	// mode.
	ODR1344Hz DataRate = 9
)

// FullScale is the measurable acceleration range.
type FullScale uint8

const (
	Scale2g  FullScale = 0
	Scale4g  FullScale = 1
	Scale8g  FullScale = 2
	Scale16g FullScale = 3
)

// HighPassMode selects how the high-pass filter reference is managed.
type HighPassMode uint8

const (
	// HPNormalWithReset resets the filter by reading REFERENCE.
	HPNormalWithReset HighPassMode = 0
	// HPReference filters against the REFERENCE register content.
	HPReference HighPassMode = 1
	HPNormal    HighPassMode = 2
	// HPAutoResetOnInt resets the filter on an interrupt event.
	HPAutoResetOnInt HighPassMode = 3
)

// HighPassBandwidth selects the high-pass filter cutoff frequency. The
// resulting cutoff scales with the output data rate, from the most
// aggressive setting (ODR/50) down to the lightest (ODR/400 and below).
type HighPassBandwidth uint8

const (
	HPAggressive HighPassBandwidth = 0
	HPStrong     HighPassBandwidth = 1
	HPMedium     HighPassBandwidth = 2
	HPLight      HighPassBandwidth = 3
)

// AuxADCMode routes the auxiliary ADC input.
type AuxADCMode uint8

const (
	AuxDisabled AuxADCMode = 0
	// AuxOnPads samples the external ADC input pads.
	AuxOnPads AuxADCMode = 1
	// AuxOnTemperature routes the internal temperature sensor to ADC
	// channel 3.
	AuxOnTemperature AuxADCMode = 3
)

// AuxStatus is the decoded STATUS_REG_AUX register.
type AuxStatus struct {
	ADC1Ready   bool
	ADC2Ready   bool
	ADC3Ready   bool
	ADCReady    bool // new data on all three channels
	ADC1Overrun bool
	ADC2Overrun bool
	ADC3Overrun bool
	ADCOverrun  bool
}

// Status is the decoded STATUS_REG register.
type Status struct {
	XReady   bool
	YReady   bool
	ZReady   bool
	Ready    bool // new sample set on all axes
	XOverrun bool
	YOverrun bool
	ZOverrun bool
	Overrun  bool
}

// AuxStatusReg returns the raw STATUS_REG_AUX byte.
func (d *Dev) AuxStatusReg() (uint8, error) {
	return d.readReg(RegStatusAux)
}

// AuxStatus returns the decoded auxiliary ADC status flags.
func (d *Dev) AuxStatus() (AuxStatus, error) {
	v, err := d.readReg(RegStatusAux)
	return AuxStatus{
		ADC1Ready:   v&aux1Ready != 0,
		ADC2Ready:   v&aux2Ready != 0,
		ADC3Ready:   v&aux3Ready != 0,
		ADCReady:    v&auxAllReady != 0,
		ADC1Overrun: v&aux1Ovr != 0,
		ADC2Overrun: v&aux2Ovr != 0,
		ADC3Overrun: v&aux3Ovr != 0,
		ADCOverrun:  v&auxAllOvr != 0,
	}, err
}

// TemperatureDataReady reports whether a new temperature sample is available.
func (d *Dev) TemperatureDataReady() (bool, error) {
	v, err := d.readReg(RegStatusAux)
	return v&aux3Ready != 0, err
}

// TemperatureDataOverrun reports whether a temperature sample was overwritten
// before being read.
func (d *Dev) TemperatureDataOverrun() (bool, error) {
	v, err := d.readReg(RegStatusAux)
	return v&aux3Ovr != 0, err
}

// TemperatureRaw returns the raw temperature sample. Convert with
// FromLSBToCelsius.
func (d *Dev) TemperatureRaw() (int16, error) {
	v, err := d.readReg(RegOutADC1H)
	return int16(int8(v)), err
}

// ADCRaw returns the three auxiliary ADC channels in one burst read. Samples
// are left-justified two's complement; resolution is 10 bits in normal mode,
// 8 bits in low-power mode.
func (d *Dev) ADCRaw() ([3]int16, error) {
	var buf [6]byte
	err := d.t.ReadReg(RegOutADC1L, buf[:])
	var ch [3]int16
	for i := range ch {
		ch[i] = int16(binary.LittleEndian.Uint16(buf[2*i:]))
	}
	return ch, err
}

// SetAuxADC routes the auxiliary ADC. Enabling it also forces block data
// update on, which the ADC needs for coherent multi-byte samples; if that
// write fails the ADC configuration is left untouched.
func (d *Dev) SetAuxADC(m AuxADCMode) error {
	cur, err := d.readReg(RegTempCfg)
	if err != nil {
		return err
	}
	if m != AuxDisabled {
		if err := d.SetBlockDataUpdate(true); err != nil {
			return err
		}
	}
	cur &^= tempCfgTempEn | tempCfgADCEn
	cur |= flag(m&0x02 != 0, tempCfgTempEn)
	cur |= flag(m&0x01 != 0, tempCfgADCEn)
	return d.writeReg(RegTempCfg, cur)
}

// AuxADC returns the auxiliary ADC routing. Decode note: a register image
// with both TEMP_EN and ADC enable set reads back as AuxDisabled; only the
// pads pattern (ADC on, TEMP_EN clear) reports AuxOnPads.
func (d *Dev) AuxADC() (AuxADCMode, error) {
	v, err := d.readReg(RegTempCfg)
	if err != nil {
		return AuxDisabled, err
	}
	if v&tempCfgTempEn == 0 && v&tempCfgADCEn != 0 {
		return AuxOnPads, nil
	}
	return AuxDisabled, nil
}

// SetOperatingMode selects normal or low-power operation.
func (d *Dev) SetOperatingMode(m OperatingMode) error {
	return d.updateReg(RegCtrl1, ctrl1LPEn, flag(m == ModeLowPower, ctrl1LPEn))
}

// OperatingMode returns the programmed operating mode.
func (d *Dev) OperatingMode() (OperatingMode, error) {
	v, err := d.readReg(RegCtrl1)
	if err != nil {
		return ModeNormal, err
	}
	if v&ctrl1LPEn != 0 {
		return ModeLowPower, nil
	}
	return ModeNormal, nil
}

// SetDataRate selects the output data rate. ODRPowerDown stops sampling.
func (d *Dev) SetDataRate(odr DataRate) error {
	return d.updateReg(RegCtrl1, ctrl1ODRMask, byte(odr)<<ctrl1ODRShift)
}

// DataRate returns the programmed output data rate. Reserved rate codes read
// as ODRPowerDown.
func (d *Dev) DataRate() (DataRate, error) {
	v, err := d.readReg(RegCtrl1)
	if err != nil {
		return ODRPowerDown, err
	}
	switch odr := DataRate(v & ctrl1ODRMask >> ctrl1ODRShift); odr {
	case ODRPowerDown, ODR1Hz, ODR10Hz, ODR25Hz, ODR50Hz, ODR100Hz,
		ODR200Hz, ODR400Hz, ODR1600HzLP, ODR1344Hz:
		return odr, nil
	default:
		return ODRPowerDown, nil
	}
}

// SetHighPassOnOutputs routes the high-pass filtered data to the output
// registers and the FIFO.
func (d *Dev) SetHighPassOnOutputs(on bool) error {
	return d.updateReg(RegCtrl2, ctrl2FDS, flag(on, ctrl2FDS))
}

// HighPassOnOutputs reports whether output data goes through the high-pass
// filter.
func (d *Dev) HighPassOnOutputs() (bool, error) {
	v, err := d.readReg(RegCtrl2)
	return v&ctrl2FDS != 0, err
}

// SetHighPassBandwidth selects the high-pass filter cutoff frequency.
func (d *Dev) SetHighPassBandwidth(bw HighPassBandwidth) error {
	return d.updateReg(RegCtrl2, ctrl2HPCFMask, byte(bw)<<ctrl2HPCFShift)
}

// HighPassBandwidth returns the programmed cutoff selection.
func (d *Dev) HighPassBandwidth() (HighPassBandwidth, error) {
	v, err := d.readReg(RegCtrl2)
	if err != nil {
		return HPLight, err
	}
	switch bw := HighPassBandwidth(v & ctrl2HPCFMask >> ctrl2HPCFShift); bw {
	case HPAggressive, HPStrong, HPMedium:
		return bw, nil
	default:
		return HPLight, nil
	}
}

// SetHighPassMode selects the high-pass filter reference management.
func (d *Dev) SetHighPassMode(m HighPassMode) error {
	return d.updateReg(RegCtrl2, ctrl2HPMMask, byte(m)<<ctrl2HPMShift)
}

// HighPassMode returns the programmed filter mode.
func (d *Dev) HighPassMode() (HighPassMode, error) {
	v, err := d.readReg(RegCtrl2)
	if err != nil {
		return HPNormalWithReset, err
	}
	switch m := HighPassMode(v & ctrl2HPMMask >> ctrl2HPMShift); m {
	case HPReference, HPNormal, HPAutoResetOnInt:
		return m, nil
	default:
		return HPNormalWithReset, nil
	}
}

// SetFullScale selects the measurable acceleration range.
func (d *Dev) SetFullScale(fs FullScale) error {
	return d.updateReg(RegCtrl4, ctrl4FSMask, byte(fs)<<ctrl4FSShift)
}

// FullScale returns the programmed range.
func (d *Dev) FullScale() (FullScale, error) {
	v, err := d.readReg(RegCtrl4)
	if err != nil {
		return Scale2g, err
	}
	switch fs := FullScale(v & ctrl4FSMask >> ctrl4FSShift); fs {
	case Scale4g, Scale8g, Scale16g:
		return fs, nil
	default:
		return Scale2g, nil
	}
}

// SetBlockDataUpdate set to true holds output register updates until both
// bytes of a sample have been read.
func (d *Dev) SetBlockDataUpdate(on bool) error {
	return d.updateReg(RegCtrl4, ctrl4BDU, flag(on, ctrl4BDU))
}

// BlockDataUpdate returns the BDU bit of CTRL_REG4.
func (d *Dev) BlockDataUpdate() (bool, error) {
	v, err := d.readReg(RegCtrl4)
	return v&ctrl4BDU != 0, err
}

// SetFilterReference writes the high-pass filter reference.
// 1 LSB is roughly 16mg at ±2g, doubling with each range step.
func (d *Dev) SetFilterReference(ref uint8) error {
	return d.writeReg(RegReference, ref)
}

// FilterReference returns the high-pass filter reference. Reading it also
// resets the filter in HPNormalWithReset mode.
func (d *Dev) FilterReference() (uint8, error) {
	return d.readReg(RegReference)
}

// DataReady reports whether a new sample set is available on all axes.
func (d *Dev) DataReady() (bool, error) {
	v, err := d.readReg(RegStatus)
	return v&statusZYXRdy != 0, err
}

// DataOverrun reports whether a sample set was overwritten before being
// read.
func (d *Dev) DataOverrun() (bool, error) {
	v, err := d.readReg(RegStatus)
	return v&statusZYXOvr != 0, err
}

// Status returns the decoded accelerometer status flags.
func (d *Dev) Status() (Status, error) {
	v, err := d.readReg(RegStatus)
	return Status{
		XReady:   v&statusXRdy != 0,
		YReady:   v&statusYRdy != 0,
		ZReady:   v&statusZRdy != 0,
		Ready:    v&statusZYXRdy != 0,
		XOverrun: v&statusXOvr != 0,
		YOverrun: v&statusYOvr != 0,
		ZOverrun: v&statusZOvr != 0,
		Overrun:  v&statusZYXOvr != 0,
	}, err
}

// AccelerationRaw returns the three axis samples, sign-extended to int16.
// The output registers are not adjacent, so three single-byte reads are
// issued; the first failure aborts the sequence and its error is returned.
func (d *Dev) AccelerationRaw() ([3]int16, error) {
	var s [3]int16
	for i, reg := range [3]uint8{RegOutX, RegOutY, RegOutZ} {
		v, err := d.readReg(reg)
		if err != nil {
			return s, err
		}
		s[i] = int16(int8(v))
	}
	return s, nil
}
