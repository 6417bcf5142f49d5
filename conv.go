// Copyright 2024 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lis3de

// Conversion helpers turning raw sample codes into engineering units. They
// are pure functions over the sign-extended codes returned by the raw
// getters and never touch the bus.

// FromFS2ToMilliG converts a raw sample taken at ±2g to milli-g.
func FromFS2ToMilliG(lsb int16) float32 {
	return float32(lsb) * 15.6
}

// FromFS4ToMilliG converts a raw sample taken at ±4g to milli-g.
func FromFS4ToMilliG(lsb int16) float32 {
	return float32(lsb) * 31.2
}

// FromFS8ToMilliG converts a raw sample taken at ±8g to milli-g.
func FromFS8ToMilliG(lsb int16) float32 {
	return float32(lsb) * 62.5
}

// FromFS16ToMilliG converts a raw sample taken at ±16g to milli-g.
func FromFS16ToMilliG(lsb int16) float32 {
	return float32(lsb) * 187.5
}

// FromLSBToCelsius converts a raw temperature code to degrees Celsius.
// The sensor counts 1°C per LSB around a 25°C center.
func FromLSBToCelsius(lsb int16) float32 {
	return float32(lsb)*1.0 + 25.0
}

// MilliG converts a raw sample to milli-g at the given full scale.
func MilliG(lsb int16, fs FullScale) float32 {
	switch fs {
	case Scale4g:
		return FromFS4ToMilliG(lsb)
	case Scale8g:
		return FromFS8ToMilliG(lsb)
	case Scale16g:
		return FromFS16ToMilliG(lsb)
	default:
		return FromFS2ToMilliG(lsb)
	}
}
