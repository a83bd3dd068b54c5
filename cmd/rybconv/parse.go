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

package main

import (
	"errors"
	"fmt"
	stdcolor "image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"seehuhn.de/go/ryb/color"
)

// The input models understood by the -from flag.
const (
	modelHex    = "hex"
	modelName   = "name"
	modelRGB    = "rgb"
	modelRYB    = "ryb"
	modelHSV    = "hsv"
	modelRYBHSV = "rybhsv"
)

var errUnknownModel = errors.New("unknown colour model")

// sample holds one colour in all representations.  If the RYB
// representation cannot be computed, RYB is nil and RYBErr gives the
// reason.
type sample struct {
	Input string
	Model string

	RGB    *stdcolor.RGBA
	HSV    *color.HSV
	RYB    *color.RYB
	RYBErr error
}

// convert parses arg in the given model and fills in all other
// representations.  If exact is set, HSV colours are converted to RGB
// using [color.HSVToRGBExact].
func convert(model, arg string, exact bool) (*sample, error) {
	s := &sample{Input: arg, Model: model}

	switch model {
	case modelHex, modelName, modelRGB:
		rgb, err := parseRGB(model, arg)
		if err != nil {
			return nil, err
		}
		s.setRGB(rgb)
		ryb, err := color.RGBToRYB(rgb)
		s.setRYB(ryb, err)

	case modelRYB:
		x, err := parseInts(arg)
		if err != nil {
			return nil, err
		}
		ryb := color.NewRYB(x[0], x[1], x[2])
		s.setRYB(ryb, nil)
		s.setRGB(color.RYBToRGB(ryb))

	case modelHSV:
		x, err := parseFloats(arg)
		if err != nil {
			return nil, err
		}
		hsv := color.NewHSV(x[0], x[1], x[2])
		s.HSV = &hsv
		hsvToRGB := color.HSVToRGB
		if exact {
			hsvToRGB = color.HSVToRGBExact
		}
		rgb, err := hsvToRGB(hsv)
		if err != nil {
			return nil, err
		}
		s.RGB = &rgb
		ryb, err := color.RGBToRYB(rgb)
		s.setRYB(ryb, err)

	case modelRYBHSV:
		x, err := parseFloats(arg)
		if err != nil {
			return nil, err
		}
		ryb, err := color.RYBHSVToRYB(x[0], x[1], x[2])
		if err != nil {
			return nil, err
		}
		s.setRYB(ryb, nil)
		s.setRGB(color.RYBToRGB(ryb))

	default:
		return nil, fmt.Errorf("%w %q", errUnknownModel, model)
	}

	return s, nil
}

func (s *sample) setRGB(rgb stdcolor.RGBA) {
	s.RGB = &rgb
	if s.HSV == nil {
		hsv := color.RGBToHSV(rgb)
		s.HSV = &hsv
	}
}

func (s *sample) setRYB(ryb color.RYB, err error) {
	if err != nil {
		s.RYBErr = err
		return
	}
	s.RYB = &ryb
}

// parseRGB reads an RGB colour given as hex string, colour name, or
// comma-separated list of three integers.
func parseRGB(model, arg string) (stdcolor.RGBA, error) {
	switch model {
	case modelHex:
		if !strings.HasPrefix(arg, "#") {
			arg = "#" + arg
		}
		c, err := colorful.Hex(arg)
		if err != nil {
			return stdcolor.RGBA{}, err
		}
		r, g, b := c.RGB255()
		return stdcolor.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
	case modelName:
		c, ok := colornames.Map[strings.ToLower(arg)]
		if !ok {
			return stdcolor.RGBA{}, fmt.Errorf("unknown colour name %q", arg)
		}
		return c, nil
	default:
		x, err := parseInts(arg)
		if err != nil {
			return stdcolor.RGBA{}, err
		}
		return stdcolor.RGBA{R: x[0], G: x[1], B: x[2], A: 0xFF}, nil
	}
}

func splitTriple(arg string) ([]string, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%q: expected three comma-separated values", arg)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts, nil
}

func parseInts(arg string) ([3]uint8, error) {
	var res [3]uint8
	parts, err := splitTriple(arg)
	if err != nil {
		return res, err
	}
	for i, p := range parts {
		x, err := strconv.ParseUint(p, 10, 8)
		if err != nil {
			return res, fmt.Errorf("%q: channel values must be in the range 0-255", arg)
		}
		res[i] = uint8(x)
	}
	return res, nil
}

func parseFloats(arg string) ([3]float64, error) {
	var res [3]float64
	parts, err := splitTriple(arg)
	if err != nil {
		return res, err
	}
	for i, p := range parts {
		x, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return res, fmt.Errorf("%q: %w", arg, err)
		}
		res[i] = x
	}
	return res, nil
}
