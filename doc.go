// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package lis3de controls an ST LIS3DE 3-axis accelerometer over I²C or SPI.
//
// The LIS3DE combines an 8-bit accelerometer with a 3-channel auxiliary ADC
// (the third channel can be routed to an internal temperature sensor), a
// 32-level FIFO, two programmable interrupt generators and a tap/double-tap
// detector. This package exposes one typed getter/setter pair per device
// feature and converts raw sample codes to engineering units on request only.
//
// All methods are synchronous and issue at most one register read followed by
// one register write on the bus. The package performs no locking; callers
// sharing a Dev across goroutines must serialize access themselves.
//
// # Datasheet
//
// https://www.st.com/resource/en/datasheet/lis3de.pdf
package lis3de
