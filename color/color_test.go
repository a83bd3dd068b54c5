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
	"errors"
	stdcolor "image/color"
	"testing"
)

// RYB values can be used wherever Go expects a colour.
var _ stdcolor.Color = RYB{}

func TestNewHSV(t *testing.T) {
	cases := []struct {
		h, s, v float64
		wantH   float64
	}{
		{0, 0, 0, 0},
		{20, 0.75, 0.5, 20},
		{360, 1, 1, 0},
		{725, 1, 1, 5},
		{-30, 1, 1, -30},
		{-390, 1, 1, -30},
	}
	for _, c := range cases {
		hsv := NewHSV(c.h, c.s, c.v)
		if hsv.H() != c.wantH || hsv.S() != c.s || hsv.V() != c.v {
			t.Errorf("NewHSV(%g, %g, %g) = %v", c.h, c.s, c.v, hsv)
		}
	}
}

// Saturation and value are stored as given.
func TestNewHSVNoClamping(t *testing.T) {
	hsv := NewHSV(10, 1.5, -0.25)
	if hsv.S() != 1.5 || hsv.V() != -0.25 {
		t.Errorf("got %v", hsv)
	}
}

// TestColorsComparable verifies that the colour types can be compared using
// the "==" operator.
func TestColorsComparable(t *testing.T) {
	if NewHSV(380, 0.5, 0.5) != NewHSV(20, 0.5, 0.5) {
		t.Error("equal HSV colours are not equal")
	}
	if NewHSV(20, 0.5, 0.5) == NewHSV(20, 0.5, 0.6) {
		t.Error("different HSV colours are equal")
	}
	if NewRYB(1, 2, 3) != NewRYB(1, 2, 3) {
		t.Error("equal RYB colours are not equal")
	}
	if NewRYB(1, 2, 3) == NewRYB(3, 2, 1) {
		t.Error("different RYB colours are equal")
	}
}

func TestRYBAccessors(t *testing.T) {
	c := NewRYB(10, 20, 30)
	if c.R() != 10 || c.Y() != 20 || c.B() != 30 {
		t.Errorf("got %d %d %d", c.R(), c.Y(), c.B())
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		in   interface{ String() string }
		want string
	}{
		{NewHSV(20, 0.75, 128.0/255.0), "hsv(20, 0.75, 0.502)"},
		{NewHSV(0, 0, 0), "hsv(0, 0, 0)"},
		{NewHSV(141.17647, 0.85, 1), "hsv(141.18, 0.85, 1)"},
		{NewRYB(255, 0, 127), "ryb(255, 0, 127)"},
		{RYB{}, "ryb(0, 0, 0)"},
	}
	for _, c := range cases {
		if got := c.in.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

// The RGBA method of RYB colours agrees with RYBToRGB.
func TestRYBRGBA(t *testing.T) {
	for _, c := range []RYB{{}, NewRYB(255, 255, 255), NewRYB(0, 0, 255), NewRYB(200, 100, 50)} {
		r, g, b, a := c.RGBA()
		want := RYBToRGB(c)
		r2, g2, b2, a2 := want.RGBA()
		if r != r2 || g != g2 || b != b2 || a != a2 {
			t.Errorf("%v: RGBA() = %d %d %d %d, want %d %d %d %d",
				c, r, g, b, a, r2, g2, b2, a2)
		}
		if a != 0xffff {
			t.Errorf("%v: alpha = %d", c, a)
		}
	}

	// via the image/color machinery
	got := stdcolor.RGBAModel.Convert(NewRYB(0, 0, 255)).(stdcolor.RGBA)
	if want := opaque(42, 96, 153); got != want {
		t.Errorf("RGBAModel.Convert: got %v, want %v", got, want)
	}
}

func TestErrors(t *testing.T) {
	var err error = &HueError{Op: "RYBHSVToRYB", Hue: 360}
	if !errors.Is(err, ErrInvalidHue) {
		t.Error("HueError does not match ErrInvalidHue")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("HueError does not match ErrInvalidArgument")
	}
	if errors.Is(err, ErrUnsupported) {
		t.Error("HueError matches ErrUnsupported")
	}
	if want := "RYBHSVToRYB: hue 360 out of range"; err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}

	if !errors.Is(ErrUnsupported, errors.ErrUnsupported) {
		t.Error("ErrUnsupported does not match errors.ErrUnsupported")
	}
	if errors.Is(ErrUnsupported, ErrInvalidArgument) {
		t.Error("ErrUnsupported matches ErrInvalidArgument")
	}

	var hueErr *HueError
	if !errors.As(err, &hueErr) || hueErr.Hue != 360 {
		t.Error("errors.As failed for HueError")
	}
}
