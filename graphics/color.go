// seehuhn.de/go/resume - generate one-page résumés as PDF files
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

package graphics

import (
	"fmt"
)

// RGB represents a color in the DeviceRGB color space.
// All components must be in the range [0, 1].
type RGB [3]float64

// Black is the initial fill and stroke color.
var Black = RGB{0, 0, 0}

// Validate checks that all components are finite and in range.
func (c RGB) Validate() error {
	for i, x := range c {
		if !isFinite(x) || x < 0 || x > 1 {
			return fmt.Errorf("color component %d out of range: %g", i, x)
		}
	}
	return nil
}

// Gray returns the RGB color for the given gray level.
func Gray(g float64) RGB {
	return RGB{g, g, g}
}

func (c RGB) operands(w *Writer) []any {
	return []any{w.coord(c[0]), w.coord(c[1]), w.coord(c[2])}
}
