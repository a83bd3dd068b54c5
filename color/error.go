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
	"fmt"
	"strconv"
)

var (
	// ErrInvalidArgument is the base error for arguments outside the
	// domain of a conversion.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidHue indicates a hue outside the valid range.
	ErrInvalidHue = fmt.Errorf("%w: hue out of range", ErrInvalidArgument)

	// ErrUnsupported is returned by conversions from RGB to RYB.
	ErrUnsupported = fmt.Errorf("RGB to RYB conversion: %w", errors.ErrUnsupported)
)

// HueError is returned when a conversion receives a hue it cannot handle.
// HueError values match [ErrInvalidHue] and [ErrInvalidArgument] under
// [errors.Is].
type HueError struct {
	Op  string  // the conversion which failed
	Hue float64 // the offending hue, in degrees
}

func (err *HueError) Error() string {
	return err.Op + ": hue " + strconv.FormatFloat(err.Hue, 'g', -1, 64) +
		" out of range"
}

func (err *HueError) Unwrap() error {
	return ErrInvalidHue
}
