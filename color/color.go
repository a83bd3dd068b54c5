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

// Package color converts between RGB, HSV and RYB colours.
//
// RYB (red-yellow-blue) is the painter's colour wheel, where mixing yellow
// and blue gives green.  The package supports the following conversions:
//   - [RGBToHSV] and [HSVToRGB]: the usual hue/saturation/value model
//   - [RYBToRGB]: maps paint-like RYB mixtures to device RGB
//   - [RYBToHSV]: RYB to HSV, via RGB
//   - [RYBHSVToRYB] and [RYBHSVToRGB]: a hue wheel laid out over the RYB
//     primaries, for use in colour pickers
//
// The direction from RGB to RYB is not implemented.  [RGBToRYB] and
// [HSVToRYB] always return [ErrUnsupported].
//
// RGB colours are represented by [image/color.RGBA] values.  All RGB
// colours returned by this package are fully opaque.  The alpha channel of
// RGB arguments is ignored.
//
// All functions in this package are pure and can be used concurrently.
package color

import (
	stdcolor "image/color"
	"math"
	"strconv"

	"seehuhn.de/go/ryb/internal/float"
)

// HSV is a colour in the hue/saturation/value model.
// HSV values are created using [NewHSV] and cannot be modified.
type HSV struct {
	h, s, v float64
}

// NewHSV returns a new HSV colour.
//
// The hue h is given in degrees and is reduced modulo 360.  As with the
// Go % operator, the result keeps the sign of h.  Saturation s and value v
// should be in the range [0, 1], but this is not checked.
func NewHSV(h, s, v float64) HSV {
	return HSV{h: math.Mod(h, 360), s: s, v: v}
}

// H returns the hue in degrees.
func (c HSV) H() float64 { return c.h }

// S returns the saturation.
func (c HSV) S() float64 { return c.s }

// V returns the value.
func (c HSV) V() float64 { return c.v }

func (c HSV) String() string {
	return "hsv(" + float.Format(c.h, 2) + ", " +
		float.Format(c.s, 3) + ", " + float.Format(c.v, 3) + ")"
}

// RYB is a colour in the red-yellow-blue model, with 8 bits per channel.
// The value 0 means no paint, 255 means full strength.
// RYB values are created using [NewRYB] and cannot be modified.
type RYB struct {
	r, y, b uint8
}

// NewRYB returns a new RYB colour.
func NewRYB(r, y, b uint8) RYB {
	return RYB{r: r, y: y, b: b}
}

// R returns the red channel.
func (c RYB) R() uint8 { return c.r }

// Y returns the yellow channel.
func (c RYB) Y() uint8 { return c.y }

// B returns the blue channel.
func (c RYB) B() uint8 { return c.b }

// RGBA implements the [image/color.Color] interface.
// The colour is converted using [RYBToRGB].
func (c RYB) RGBA() (r, g, b, a uint32) {
	return RYBToRGB(c).RGBA()
}

func (c RYB) String() string {
	return "ryb(" + strconv.Itoa(int(c.r)) + ", " +
		strconv.Itoa(int(c.y)) + ", " + strconv.Itoa(int(c.b)) + ")"
}

// opaque returns a fully opaque RGB colour.
func opaque(r, g, b uint8) stdcolor.RGBA {
	return stdcolor.RGBA{R: r, G: g, B: b, A: 0xFF}
}
