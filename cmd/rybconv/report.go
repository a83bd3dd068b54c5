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
	"fmt"
	stdcolor "image/color"
	"io"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// reporter prints the representations of a colour, one per line.
// Numbers are formatted according to the conventions of the given language.
type reporter struct {
	w      io.Writer
	p      *message.Printer
	swatch bool
}

func newReporter(w io.Writer, lang language.Tag, swatch bool) *reporter {
	return &reporter{
		w:      w,
		p:      message.NewPrinter(lang),
		swatch: swatch,
	}
}

func (r *reporter) write(s *sample) error {
	_, err := fmt.Fprintf(r.w, "%s %s:\n", s.Model, s.Input)
	if err != nil {
		return err
	}

	if s.RGB != nil {
		c := *s.RGB
		_, err = r.p.Fprintf(r.w, "  rgb  %s  %3d %3d %3d%s\n",
			hexString(c), c.R, c.G, c.B, r.swatchFor(c))
		if err != nil {
			return err
		}
	}

	if s.HSV != nil {
		c := *s.HSV
		_, err = r.p.Fprintf(r.w, "  hsv  %7.2f° %6.3f %6.3f\n", c.H(), c.S(), c.V())
		if err != nil {
			return err
		}
	}

	if s.RYB != nil {
		c := *s.RYB
		_, err = r.p.Fprintf(r.w, "  ryb  %3d %3d %3d\n", c.R(), c.Y(), c.B())
	} else if s.RYBErr != nil {
		_, err = fmt.Fprintf(r.w, "  ryb  n/a (%v)\n", s.RYBErr)
	}
	return err
}

// swatchFor returns a small block painted in the given colour, or the empty
// string if swatches are disabled.
func (r *reporter) swatchFor(c stdcolor.RGBA) string {
	if !r.swatch {
		return ""
	}
	style := lipgloss.NewStyle().Background(lipgloss.Color(hexString(c)))
	return "  " + style.Render("      ")
}

func hexString(c stdcolor.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
