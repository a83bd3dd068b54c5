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

// cornerTable holds, for one RGB output channel, the response at the eight
// corners of the RYB cube.  Entry [i][j] belongs to blue=j and, for
// i=0,1,2,3, to (red, yellow) = (0,0), (0,1), (1,0), (1,1).
//
// The numbers are an empirical fit to the mixing of real paints, following
// Gossett and Chen, "Paint Inspired Color Mixing and Compositing for
// Visualization" (2004).
type cornerTable [4][2]float64

var (
	rybRed = cornerTable{
		{1.0, 0.163},
		{1.0, 0.0},
		{1.0, 0.5},
		{1.0, 0.2},
	}
	rybGreen = cornerTable{
		{1.0, 0.373},
		{1.0, 0.66},
		{0.0, 0.0},
		{0.5, 0.094},
	}
	rybBlue = cornerTable{
		{1.0, 0.6},
		{0.0, 0.2},
		{0.0, 0.5},
		{0.0, 0.0},
	}
)

// eval interpolates the table at (r, y, b) in [0,1]³, first along the blue
// axis, then along yellow and finally along red.  The result is scaled to
// 0..255 and rounded up.
func (tab *cornerTable) eval(r, y, b float64) float64 {
	x0 := colconv.Smoothstep(b, tab[0][0], tab[0][1])
	x1 := colconv.Smoothstep(b, tab[1][0], tab[1][1])
	x2 := colconv.Smoothstep(b, tab[2][0], tab[2][1])
	x3 := colconv.Smoothstep(b, tab[3][0], tab[3][1])
	y0 := colconv.Smoothstep(y, x0, x1)
	y1 := colconv.Smoothstep(y, x2, x3)
	return math.Ceil(255 * colconv.Smoothstep(r, y0, y1))
}

// RYBToRGB converts an RYB colour to RGB.
//
// No paint, RYB (0, 0, 0), gives white.  Full strength of all three paints
// gives a dark brown.
func RYBToRGB(c RYB) stdcolor.RGBA {
	r := float64(c.r) / 255
	y := float64(c.y) / 255
	b := float64(c.b) / 255

	return opaque(
		colconv.ToByte(rybRed.eval(r, y, b)),
		colconv.ToByte(rybGreen.eval(r, y, b)),
		colconv.ToByte(rybBlue.eval(r, y, b)),
	)
}
