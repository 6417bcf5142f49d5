// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

// Register addresses. The map is fixed by the datasheet; the accelerometer
// output registers are not contiguous (OUT_X/OUT_Y/OUT_Z sit two addresses
// apart with reserved bytes between them), so the axis reader issues three
// single-byte transfers instead of one burst.
const (
	RegStatusAux    = 0x07 // STATUS_REG_AUX, auxiliary ADC data-ready/overrun flags
	RegOutADC1L     = 0x08 // OUT_ADC1_L, ADC channel 1 low byte
	RegOutADC1H     = 0x09 // OUT_ADC1_H, ADC channel 1 high byte
	RegOutADC2L     = 0x0A // OUT_ADC2_L
	RegOutADC2H     = 0x0B // OUT_ADC2_H
	RegOutADC3L     = 0x0C // OUT_ADC3_L
	RegOutADC3H     = 0x0D // OUT_ADC3_H
	RegWhoAmI       = 0x0F // WHO_AM_I, reads DeviceID
	RegTempCfg      = 0x1F // TEMP_CFG_REG, ADC and temperature sensor enables
	RegCtrl1        = 0x20 // CTRL_REG1, ODR, low-power enable, axis enables
	RegCtrl2        = 0x21 // CTRL_REG2, high-pass filter configuration
	RegCtrl3        = 0x22 // CTRL_REG3, INT1 pin routing
	RegCtrl4        = 0x23 // CTRL_REG4, BDU, full scale, self test, SPI mode
	RegCtrl5        = 0x24 // CTRL_REG5, boot, FIFO enable, latch/4D options
	RegCtrl6        = 0x25 // CTRL_REG6, INT2 pin routing
	RegReference    = 0x26 // REFERENCE, high-pass filter reference
	RegStatus       = 0x27 // STATUS_REG, accelerometer data-ready/overrun flags
	RegOutX         = 0x29 // OUT_X, X-axis sample (8-bit)
	RegOutY         = 0x2B // OUT_Y, Y-axis sample (8-bit)
	RegOutZ         = 0x2D // OUT_Z, Z-axis sample (8-bit)
	RegFIFOCtrl     = 0x2E // FIFO_CTRL_REG, FIFO mode, trigger, watermark
	RegFIFOSrc      = 0x2F // FIFO_SRC_REG, FIFO level and flags
	RegInt1Cfg      = 0x30 // IG1_CFG, interrupt generator 1 configuration
	RegInt1Src      = 0x31 // IG1_SOURCE, generator 1 source (cleared on read when latched)
	RegInt1Ths      = 0x32 // IG1_THS, generator 1 threshold
	RegInt1Duration = 0x33 // IG1_DURATION, generator 1 minimum event duration
	RegInt2Cfg      = 0x34 // IG2_CFG, interrupt generator 2 configuration
	RegInt2Src      = 0x35 // IG2_SOURCE
	RegInt2Ths      = 0x36 // IG2_THS
	RegInt2Duration = 0x37 // IG2_DURATION
	RegClickCfg     = 0x38 // CLICK_CFG, tap detector axis enables
	RegClickSrc     = 0x39 // CLICK_SRC, tap detector source
	RegClickThs     = 0x3A // CLICK_THS, tap threshold and latch option
	RegTimeLimit    = 0x3B // TIME_LIMIT, tap shock window
	RegTimeLatency  = 0x3C // TIME_LATENCY, tap quiet window
	RegTimeWindow   = 0x3D // TIME_WINDOW, double-tap window
	RegActThs       = 0x3E // ACT_THS, activity threshold
	RegActDur       = 0x3F // ACT_DUR, activity duration

	// DeviceID is the WHO_AM_I value of a LIS3DE.
	DeviceID = 0x33
)

// Per-field masks and shifts. Field positions come straight off the
// datasheet register tables.
const (
	// STATUS_REG_AUX (07h)
	aux1Ready   = 0x01 // 1DA
	aux2Ready   = 0x02 // 2DA
	aux3Ready   = 0x04 // 3DA
	auxAllReady = 0x08 // 321DA
	aux1Ovr     = 0x10 // 1OR
	aux2Ovr     = 0x20 // 2OR
	aux3Ovr     = 0x40 // 3OR
	auxAllOvr   = 0x80 // 321OR

	// TEMP_CFG_REG (1Fh)
	tempCfgTempEn = 0x40 // TEMP_EN
	tempCfgADCEn  = 0x80 // ADC_PD (set enables the ADC)

	// CTRL_REG1 (20h)
	ctrl1ODRMask  = 0xF0
	ctrl1ODRShift = 4
	ctrl1LPEn     = 0x08
	ctrl1ZEn      = 0x04
	ctrl1YEn      = 0x02
	ctrl1XEn      = 0x01

	// CTRL_REG2 (21h)
	ctrl2HPMMask   = 0xC0 // HPM[1:0]
	ctrl2HPMShift  = 6
	ctrl2HPCFMask  = 0x30 // HPCF[1:0]
	ctrl2HPCFShift = 4
	ctrl2FDS       = 0x08
	ctrl2HPMask    = 0x07 // HPCLICK | HPIS2 | HPIS1
	ctrl2HPShift   = 0

	// CTRL_REG3 (22h)
	ctrl3I1Click   = 0x80
	ctrl3I1AOI1    = 0x40
	ctrl3I1AOI2    = 0x20
	ctrl3I1DRDY1   = 0x10
	ctrl3I1DRDY2   = 0x08
	ctrl3I1WTM     = 0x04
	ctrl3I1Overrun = 0x02

	// CTRL_REG4 (23h)
	ctrl4BDU     = 0x80
	ctrl4FSMask  = 0x30
	ctrl4FSShift = 4
	ctrl4STMask  = 0x06
	ctrl4STShift = 1
	ctrl4SIM     = 0x01

	// CTRL_REG5 (24h)
	ctrl5Boot   = 0x80
	ctrl5FIFOEn = 0x40
	ctrl5LIRIG1 = 0x08
	ctrl5D4DIG1 = 0x04
	ctrl5LIRIG2 = 0x02
	ctrl5D4DIG2 = 0x01

	// CTRL_REG6 (25h)
	ctrl6I2Click   = 0x80
	ctrl6I2IG1     = 0x40
	ctrl6I2IG2     = 0x20
	ctrl6BootI2    = 0x10
	ctrl6P2Act     = 0x08
	ctrl6HLActive  = 0x02

	// STATUS_REG (27h)
	statusZYXOvr = 0x80
	statusZOvr   = 0x40
	statusYOvr   = 0x20
	statusXOvr   = 0x10
	statusZYXRdy = 0x08
	statusZRdy   = 0x04
	statusYRdy   = 0x02
	statusXRdy   = 0x01

	// FIFO_CTRL_REG (2Eh)
	fifoCtrlFMMask   = 0xC0
	fifoCtrlFMShift  = 6
	fifoCtrlTR       = 0x20
	fifoCtrlFTHMask  = 0x1F
	fifoCtrlFTHShift = 0

	// FIFO_SRC_REG (2Fh)
	fifoSrcWTM     = 0x80
	fifoSrcOvr     = 0x40
	fifoSrcEmpty   = 0x20
	fifoSrcFSSMask = 0x1F

	// IG1_CFG / IG2_CFG (30h/34h)
	intCfgAOI   = 0x80
	intCfg6D    = 0x40
	intCfgZHigh = 0x20
	intCfgZLow  = 0x10
	intCfgYHigh = 0x08
	intCfgYLow  = 0x04
	intCfgXHigh = 0x02
	intCfgXLow  = 0x01

	// IG1_SOURCE / IG2_SOURCE (31h/35h)
	intSrcActive = 0x40
	intSrcZHigh  = 0x20
	intSrcZLow   = 0x10
	intSrcYHigh  = 0x08
	intSrcYLow   = 0x04
	intSrcXHigh  = 0x02
	intSrcXLow   = 0x01

	// IG1_THS / IG2_THS / CLICK_THS / ACT_THS / IG*_DURATION / TIME_LIMIT
	lowSevenMask = 0x7F

	// CLICK_CFG (38h)
	clickCfgZD = 0x20
	clickCfgZS = 0x10
	clickCfgYD = 0x08
	clickCfgYS = 0x04
	clickCfgXD = 0x02
	clickCfgXS = 0x01

	// CLICK_SRC (39h)
	clickSrcActive = 0x40
	clickSrcDouble = 0x20
	clickSrcSingle = 0x10
	clickSrcSign   = 0x08
	clickSrcZ      = 0x04
	clickSrcY      = 0x02
	clickSrcX      = 0x01

	// CLICK_THS (3Ah)
	clickThsLIR = 0x80
)
