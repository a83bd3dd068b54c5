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

package color

import (
	stdcolor "image/color"
	"math"

	"seehuhn.de/go/ryb/internal/colconv"
)

// RGBToHSV converts an RGB colour to HSV.
//
// The hue is in the range [0, 360).  Grays (including black and white) get
// hue 0.  Black gets saturation 0.
func RGBToHSV(c stdcolor.RGBA) HSV {
	r, g, b := int(c.R), int(c.G), int(c.B)
	hi := max(r, g, b)
	lo := min(r, g, b)
	d := float64(hi - lo)

	var h float64
	switch hi {
	case lo:
		h = 0
	case r:
		h = math.Mod(float64(60*(g-b))/d+360, 360)
	case g:
		h = float64(60*(b-r))/d + 120
	default: // b
		h = float64(60*(r-g))/d + 240
	}

	var s float64
	if hi > 0 {
		s = d / float64(hi)
	}
	v := float64(hi) / 255

	return NewHSV(h, s, v)
}

// HSVToRGB converts an HSV colour to RGB.
//
// This reproduces the quantisation of the original colour picker: the
// intermediate values are rounded to 0 or 1 before being scaled to 255, and
// the channel carrying the value V is not scaled at all.  As a result,
// for s and v in [0, 1] every output channel is 0, 1 or 255.  In the
// sector 60° <= h < 120° the blue channel is computed like in the sector
// 120° <= h < 180°.  Use [HSVToRGBExact] for the usual conversion.
//
// A [*HueError] is returned if the hue is negative or not finite.
func HSVToRGB(c HSV) (stdcolor.RGBA, error) {
	sector, f, ok := colconv.HueSector(c.h)
	if !ok {
		return stdcolor.RGBA{}, &HueError{Op: "HSVToRGB", Hue: c.h}
	}

	p := math.RoundToEven(c.v*(1-c.s)) * 255
	q := math.RoundToEven(c.v*(1-float64(c.s*f))) * 255
	t := math.RoundToEven(c.v*(1-float64(c.s*(1-f)))) * 255
	if sector == 1 {
		// the legacy table has (q, V, t) instead of (q, V, p) here
		p = t
	}

	return sectorRGB(sector, c.v, p, q, t), nil
}

// HSVToRGBExact converts an HSV colour to RGB, rounding each channel to the
// nearest of the 256 levels.
//
// Unlike [HSVToRGB], this conversion is an inverse of [RGBToHSV]:
// HSVToRGBExact(RGBToHSV(c)) == c for every opaque RGB colour c.
//
// A [*HueError] is returned if the hue is negative or not finite.
func HSVToRGBExact(c HSV) (stdcolor.RGBA, error) {
	sector, f, ok := colconv.HueSector(c.h)
	if !ok {
		return stdcolor.RGBA{}, &HueError{Op: "HSVToRGBExact", Hue: c.h}
	}

	v := math.Round(c.v * 255)
	p := math.Round(c.v * (1 - c.s) * 255)
	q := math.Round(c.v * (1 - float64(c.s*f)) * 255)
	t := math.Round(c.v * (1 - float64(c.s*(1-f))) * 255)

	return sectorRGB(sector, v, p, q, t), nil
}

// sectorRGB assigns v, p, q, t to the RGB channels, as appropriate for the
// given hue sector.  Here v is the largest channel and p the smallest; q
// and t are the falling and rising channels.
func sectorRGB(sector int, v, p, q, t float64) stdcolor.RGBA {
	var r, g, b float64
	switch sector {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	default:
		panic("unreachable")
	}
	return opaque(colconv.ToByte(r), colconv.ToByte(g), colconv.ToByte(b))
}

// RGBToRYB would convert an RGB colour to RYB.
//
// This direction is not implemented: the function always returns
// [ErrUnsupported].
func RGBToRYB(c stdcolor.RGBA) (RYB, error) {
	return RYB{}, ErrUnsupported
}

// HSVToRYB converts an HSV colour to RYB, via RGB.
//
// Since [RGBToRYB] is not implemented, this function always fails.  Errors
// from [HSVToRGB] take precedence over [ErrUnsupported].
func HSVToRYB(c HSV) (RYB, error) {
	rgb, err := HSVToRGB(c)
	if err != nil {
		return RYB{}, err
	}
	return RGBToRYB(rgb)
}

// RYBToHSV converts an RYB colour to HSV, via RGB.
func RYBToHSV(c RYB) HSV {
	return RGBToHSV(RYBToRGB(c))
}
