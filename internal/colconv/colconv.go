// seehuhn.de/go/ryb - colour conversions for the red-yellow-blue colour wheel
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package colconv contains the floating point building blocks shared by the
// colour conversions.
//
// Products are wrapped in explicit float64 conversions where they feed
// into an addition.  This stops the compiler from fusing them into FMA
// instructions, so that results agree across architectures.
package colconv

import (
	"math"

	"fortio.org/safecast"
)

// Smoothstep blends between a (at t=0) and b (at t=1) using the weight
// 3t²-2t³.  The blend has zero slope at both end points.
func Smoothstep(t, a, b float64) float64 {
	w := float64(t*t) * (3 - float64(2*t))
	return a + float64(w*(b-a))
}

// Ramp returns 255*v*frac + 255*(1-v).
// This is a channel which rises from the darkening floor 255*(1-v) to
// 255 as frac goes from 0 to 1.
func Ramp(v, frac float64) float64 {
	return float64(255*v*frac) + float64(255*(1-v))
}

// Clamp restricts v to the interval [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// ToByte converts a channel value to 8 bits.  The fractional part is
// discarded (rounding toward zero) and the result saturates at 0 and 255.
// NaN maps to 0.
//
// Saturation is done by the clamp.  The checked conversion afterwards only
// asserts that the clamped value fits into a byte, and panics otherwise.
func ToByte(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	x = Clamp(math.Trunc(x), 0, 255)
	return safecast.MustConvert[uint8](x)
}

// HueSector splits a hue angle (in degrees) into one of the six 60° sectors
// and the fractional position inside the sector.
//
// The sector is computed as floor(h/60) mod 6 with the sign of h preserved,
// so most negative hues give negative sectors.  The exception is
// -360 < h < -300, where the remainder is -0 and sector 0 is used.  The
// third return value is false if the sector lies outside 0, ..., 5.
func HueSector(h float64) (sector int, frac float64, ok bool) {
	x := math.Floor(h / 60)
	hi := math.Mod(x, 6)
	if math.IsNaN(hi) || hi < 0 || hi > 5 {
		return 0, 0, false
	}
	return int(hi), h/60 - x, true
}
