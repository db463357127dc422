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
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/resume/pdf"
)

// ShowTextAt writes a complete text object which shows s at (x, y), using
// the given font and size.  The string must already be encoded for the font.
func (w *Writer) ShowTextAt(font pdf.Name, size, x, y float64, s pdf.String) {
	w.TextStart()
	w.TextSetFont(font, size)
	w.TextSetMatrix(matrix.Translate(x, y))
	w.TextShowRaw(s)
	w.TextEnd()
}

// HorizontalLine strokes a line from (x0, y) to (x1, y), using the given
// color and line width.  The graphics state is saved and restored around the
// line, so that the current stroke color and line width are not affected.
func (w *Writer) HorizontalLine(x0, x1, y float64, col RGB, width float64) {
	w.PushGraphicsState()
	w.SetStrokeColor(col)
	w.SetLineWidth(width)
	w.MoveTo(x0, y)
	w.LineTo(x1, y)
	w.Stroke()
	w.PopGraphicsState()
}
