// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

var errBus = errors.New("bus failure")

// fakeTransport is a scripted register file behind the Transport seam. It
// records the operation order and can fail individual registers, which the
// playback buses cannot express.
type fakeTransport struct {
	regs      map[uint8]byte
	ops       []string
	writes    int
	failRead  map[uint8]error
	failWrite map[uint8]error
}

func newFakeTransport() *fakeTransport {
	return &fakeTransport{
		regs:      map[uint8]byte{RegWhoAmI: DeviceID},
		failRead:  map[uint8]error{},
		failWrite: map[uint8]error{},
	}
}

func (f *fakeTransport) ReadReg(reg uint8, buf []byte) error {
	if err := f.failRead[reg]; err != nil {
		return err
	}
	f.ops = append(f.ops, fmt.Sprintf("R%02X/%d", reg, len(buf)))
	for i := range buf {
		buf[i] = f.regs[reg+uint8(i)]
	}
	return nil
}

func (f *fakeTransport) WriteReg(reg uint8, buf []byte) error {
	if err := f.failWrite[reg]; err != nil {
		return err
	}
	f.ops = append(f.ops, fmt.Sprintf("W%02X/%d", reg, len(buf)))
	f.writes++
	for i := range buf {
		f.regs[reg+uint8(i)] = buf[i]
	}
	return nil
}

func (f *fakeTransport) opLog() string {
	return strings.Join(f.ops, " ")
}

func newTestDev(t *testing.T) (*Dev, *fakeTransport) {
	t.Helper()
	f := newFakeTransport()
	d, err := New(f, nil)
	if err != nil {
		t.Fatal(err)
	}
	f.ops = nil
	f.writes = 0
	return d, f
}

func TestNew(t *testing.T) {
	f := newFakeTransport()
	d, err := New(f, &DefaultOpts)
	if err != nil {
		t.Fatal(err)
	}
	if got := f.regs[RegCtrl1]; got != byte(ODR100Hz)<<ctrl1ODRShift {
		t.Errorf("CTRL_REG1 = %#02x after New", got)
	}
	if got := f.regs[RegCtrl4]; got != byte(Scale2g)<<ctrl4FSShift {
		t.Errorf("CTRL_REG4 = %#02x after New", got)
	}
	if s := d.String(); s != "lis3de" {
		t.Errorf("String() = %q", s)
	}
}

func TestNewWrongID(t *testing.T) {
	f := newFakeTransport()
	f.regs[RegWhoAmI] = 0xE5
	if _, err := New(f, &DefaultOpts); err == nil {
		t.Fatal("expected an error for a wrong WHO_AM_I")
	}
}

func TestNewTransportFailure(t *testing.T) {
	f := newFakeTransport()
	f.failRead[RegWhoAmI] = errBus
	if _, err := New(f, &DefaultOpts); err == nil {
		t.Fatal("expected the transport error to propagate")
	}
}

func TestHalt(t *testing.T) {
	d, f := newTestDev(t)
	f.regs[RegCtrl1] = byte(ODR400Hz)<<ctrl1ODRShift | ctrl1XEn | ctrl1YEn | ctrl1ZEn
	if err := d.Halt(); err != nil {
		t.Fatal(err)
	}
	if got := f.regs[RegCtrl1]; got&ctrl1ODRMask != 0 {
		t.Errorf("ODR bits still set after Halt: %#02x", got)
	}
	if got := f.regs[RegCtrl1]; got&(ctrl1XEn|ctrl1YEn|ctrl1ZEn) == 0 {
		t.Errorf("axis enables were clobbered by Halt: %#02x", got)
	}
}

// rmwCase exercises one read-modify-write setter against every possible
// value of the unrelated bits in its register.
type rmwCase struct {
	name string
	reg  uint8
	mask byte
	want byte
	call func(*Dev) error
}

func rmwCases() []rmwCase {
	return []rmwCase{
		{"SetDataRate", RegCtrl1, ctrl1ODRMask, byte(ODR400Hz) << ctrl1ODRShift,
			func(d *Dev) error { return d.SetDataRate(ODR400Hz) }},
		{"SetOperatingMode", RegCtrl1, ctrl1LPEn, ctrl1LPEn,
			func(d *Dev) error { return d.SetOperatingMode(ModeLowPower) }},
		{"SetHighPassMode", RegCtrl2, ctrl2HPMMask, byte(HPReference) << ctrl2HPMShift,
			func(d *Dev) error { return d.SetHighPassMode(HPReference) }},
		{"SetHighPassBandwidth", RegCtrl2, ctrl2HPCFMask, byte(HPMedium) << ctrl2HPCFShift,
			func(d *Dev) error { return d.SetHighPassBandwidth(HPMedium) }},
		{"SetHighPassOnOutputs", RegCtrl2, ctrl2FDS, ctrl2FDS,
			func(d *Dev) error { return d.SetHighPassOnOutputs(true) }},
		{"SetHighPassRoute", RegCtrl2, ctrl2HPMask, byte(HPRouteTap),
			func(d *Dev) error { return d.SetHighPassRoute(HPRouteTap) }},
		{"SetFullScale", RegCtrl4, ctrl4FSMask, byte(Scale8g) << ctrl4FSShift,
			func(d *Dev) error { return d.SetFullScale(Scale8g) }},
		{"SetBlockDataUpdate", RegCtrl4, ctrl4BDU, ctrl4BDU,
			func(d *Dev) error { return d.SetBlockDataUpdate(true) }},
		{"SetSelfTest", RegCtrl4, ctrl4STMask, byte(SelfTestNegative) << ctrl4STShift,
			func(d *Dev) error { return d.SetSelfTest(SelfTestNegative) }},
		{"SetWireMode", RegCtrl4, ctrl4SIM, ctrl4SIM,
			func(d *Dev) error { return d.SetWireMode(SPI3Wire) }},
		{"SetBoot", RegCtrl5, ctrl5Boot, ctrl5Boot,
			func(d *Dev) error { return d.SetBoot(true) }},
		{"SetFIFOEnable", RegCtrl5, ctrl5FIFOEn, ctrl5FIFOEn,
			func(d *Dev) error { return d.SetFIFOEnable(true) }},
		{"SetInt1Notification", RegCtrl5, ctrl5LIRIG1, ctrl5LIRIG1,
			func(d *Dev) error { return d.SetInt1Notification(NotifyLatched) }},
		{"SetInt1Detect4D", RegCtrl5, ctrl5D4DIG1, ctrl5D4DIG1,
			func(d *Dev) error { return d.SetInt1Detect4D(true) }},
		{"SetInt2Notification", RegCtrl5, ctrl5LIRIG2, ctrl5LIRIG2,
			func(d *Dev) error { return d.SetInt2Notification(NotifyLatched) }},
		{"SetInt2Detect4D", RegCtrl5, ctrl5D4DIG2, ctrl5D4DIG2,
			func(d *Dev) error { return d.SetInt2Detect4D(true) }},
		{"SetFIFOWatermark", RegFIFOCtrl, fifoCtrlFTHMask, 17,
			func(d *Dev) error { return d.SetFIFOWatermark(17) }},
		{"SetFIFOTrigger", RegFIFOCtrl, fifoCtrlTR, fifoCtrlTR,
			func(d *Dev) error { return d.SetFIFOTrigger(TriggerInt2) }},
		{"SetFIFOMode", RegFIFOCtrl, fifoCtrlFMMask, byte(FIFOStream) << fifoCtrlFMShift,
			func(d *Dev) error { return d.SetFIFOMode(FIFOStream) }},
		{"SetInt1Threshold", RegInt1Ths, lowSevenMask, 0x55,
			func(d *Dev) error { return d.SetInt1Threshold(0x55) }},
		{"SetInt1Duration", RegInt1Duration, lowSevenMask, 0x2A,
			func(d *Dev) error { return d.SetInt1Duration(0x2A) }},
		{"SetInt2Threshold", RegInt2Ths, lowSevenMask, 0x55,
			func(d *Dev) error { return d.SetInt2Threshold(0x55) }},
		{"SetInt2Duration", RegInt2Duration, lowSevenMask, 0x2A,
			func(d *Dev) error { return d.SetInt2Duration(0x2A) }},
		{"SetTapThreshold", RegClickThs, lowSevenMask, 0x40,
			func(d *Dev) error { return d.SetTapThreshold(0x40) }},
		{"SetTapNotification", RegClickThs, clickThsLIR, clickThsLIR,
			func(d *Dev) error { return d.SetTapNotification(NotifyLatched) }},
		{"SetShockDuration", RegTimeLimit, lowSevenMask, 0x11,
			func(d *Dev) error { return d.SetShockDuration(0x11) }},
		{"SetActivityThreshold", RegActThs, lowSevenMask, 0x22,
			func(d *Dev) error { return d.SetActivityThreshold(0x22) }},
	}
}

func TestSettersPreserveUnrelatedBits(t *testing.T) {
	for _, tc := range rmwCases() {
		t.Run(tc.name, func(t *testing.T) {
			d, f := newTestDev(t)
			for seed := 0; seed < 256; seed++ {
				f.regs[tc.reg] = byte(seed)
				if err := tc.call(d); err != nil {
					t.Fatalf("seed %#02x: %v", seed, err)
				}
				got := f.regs[tc.reg]
				if got&^tc.mask != byte(seed)&^tc.mask {
					t.Fatalf("seed %#02x: unrelated bits changed, got %#02x", seed, got)
				}
				if got&tc.mask != tc.want {
					t.Fatalf("seed %#02x: field = %#02x, want %#02x", seed, got&tc.mask, tc.want)
				}
			}
		})
	}
}

func TestSettersSkipWriteWhenReadFails(t *testing.T) {
	for _, tc := range rmwCases() {
		t.Run(tc.name, func(t *testing.T) {
			d, f := newTestDev(t)
			f.failRead[tc.reg] = errBus
			if err := tc.call(d); err != errBus {
				t.Fatalf("err = %v, want %v", err, errBus)
			}
			if f.writes != 0 {
				t.Fatalf("%d write(s) issued after a failed read", f.writes)
			}
		})
	}
}

func TestSelfTestDecode(t *testing.T) {
	d, f := newTestDev(t)
	for code := byte(0); code < 4; code++ {
		f.regs[RegCtrl4] = code << ctrl4STShift
		got, err := d.SelfTest()
		if err != nil {
			t.Fatal(err)
		}
		want := SelfTest(code)
		if code == 3 {
			want = SelfTestDisabled
		}
		if got != want {
			t.Errorf("code %d: got %d, want %d", code, got, want)
		}
	}
}

func TestWireModeRoundTrip(t *testing.T) {
	d, _ := newTestDev(t)
	if err := d.SetWireMode(SPI3Wire); err != nil {
		t.Fatal(err)
	}
	if m, err := d.WireMode(); err != nil || m != SPI3Wire {
		t.Fatalf("got %d, %v", m, err)
	}
	if err := d.SetWireMode(SPI4Wire); err != nil {
		t.Fatal(err)
	}
	if m, err := d.WireMode(); err != nil || m != SPI4Wire {
		t.Fatalf("got %d, %v", m, err)
	}
}

func TestBootRoundTrip(t *testing.T) {
	d, _ := newTestDev(t)
	if err := d.SetBoot(true); err != nil {
		t.Fatal(err)
	}
	if on, err := d.Boot(); err != nil || !on {
		t.Fatalf("got %t, %v", on, err)
	}
}

func TestGettersPropagateTransportError(t *testing.T) {
	d, f := newTestDev(t)
	f.failRead[RegCtrl1] = errBus
	if _, err := d.DataRate(); err != errBus {
		t.Errorf("DataRate err = %v", err)
	}
	f.failRead[RegCtrl4] = errBus
	if _, err := d.FullScale(); err != errBus {
		t.Errorf("FullScale err = %v", err)
	}
	f.failRead[RegStatus] = errBus
	if _, err := d.DataReady(); err != errBus {
		t.Errorf("DataReady err = %v", err)
	}
}
