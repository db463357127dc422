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

import "fmt"

// This file implements the color operators for the DeviceRGB color space,
// see table 73 of ISO 32000-2:2020.

// SetStrokeColor sets the color used for stroking operations.
//
// This implements the PDF graphics operator "RG".
func (w *Writer) SetStrokeColor(c RGB) {
	if !w.isValid("SetStrokeColor", objPage|objText) {
		return
	}
	if err := c.Validate(); err != nil {
		w.Err = fmt.Errorf("SetStrokeColor: %w", err)
		return
	}

	w.StrokeColor = c
	w.Set |= StateStrokeColor

	_, w.Err = fmt.Fprintln(w.Content, append(c.operands(w), "RG")...)
}

// SetFillColor sets the color used for non-stroking operations,
// including text.
//
// This implements the PDF graphics operator "rg".
func (w *Writer) SetFillColor(c RGB) {
	if !w.isValid("SetFillColor", objPage|objText) {
		return
	}
	if err := c.Validate(); err != nil {
		w.Err = fmt.Errorf("SetFillColor: %w", err)
		return
	}

	w.FillColor = c
	w.Set |= StateFillColor

	_, w.Err = fmt.Fprintln(w.Content, append(c.operands(w), "rg")...)
}
