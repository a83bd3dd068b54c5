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

// RYBHSVToRYB converts a point on the RYB hue wheel to an RYB colour.
//
// The hue h (in degrees, 0 <= h < 360) runs through red (0°), orange,
// yellow (120°), green, blue (240°) and purple back to red.  Each 60°
// sector fades one of the primaries in or out, while the remaining primary
// is set to max(active primaries)*(1-v).  Finally all three channels are
// multiplied by the saturation s.
//
// Channels are rounded toward zero.  If s or v are outside [0, 1], the
// channels saturate at 0 and 255.  A [*HueError] is returned if h is not in
// the range [0, 360).
func RYBHSVToRYB(h, s, v float64) (RYB, error) {
	if !(h >= 0 && h < 360) {
		return RYB{}, &HueError{Op: "RYBHSVToRYB", Hue: h}
	}

	var r, y, b float64
	switch int(h / 60) {
	case 0: // red to orange
		r = 255
		y = colconv.Ramp(v, h/60)
		b = math.Max(r, y) * (1 - v)
	case 1: // orange to yellow
		r = colconv.Ramp(v, 1-(h-60)/60)
		y = 255
		b = math.Max(r, y) * (1 - v)
	case 2: // yellow to green
		y = 255
		b = colconv.Ramp(v, (h-120)/60)
		r = math.Max(y, b) * (1 - v)
	case 3: // green to blue
		y = colconv.Ramp(v, 1-(h-180)/60)
		b = 255
		r = math.Max(y, b) * (1 - v)
	case 4: // blue to purple
		b = 255
		r = colconv.Ramp(v, (h-240)/60)
		y = math.Max(r, b) * (1 - v)
	default: // purple to red
		b = colconv.Ramp(v, 1-(h-300)/60)
		r = 255
		y = math.Max(r, b) * (1 - v)
	}

	return NewRYB(
		colconv.ToByte(r*s),
		colconv.ToByte(y*s),
		colconv.ToByte(b*s),
	), nil
}

// RYBHSVToRGB converts a point on the RYB hue wheel to an RGB colour.
// This is the same as applying [RYBHSVToRYB] followed by [RYBToRGB].
func RYBHSVToRGB(h, s, v float64) (stdcolor.RGBA, error) {
	c, err := RYBHSVToRYB(h, s, v)
	if err != nil {
		return stdcolor.RGBA{}, err
	}
	return RYBToRGB(c), nil
}
