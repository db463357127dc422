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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/resume/pdf"
)

// This file implements the text object and text state operators,
// see tables 103, 105, 106 and 107 of ISO 32000-2:2020.

// TextStart starts a new text object.
//
// This implements the PDF graphics operator "BT".
func (w *Writer) TextStart() {
	if !w.isValid("TextStart", objPage) {
		return
	}
	w.currentObject = objText

	w.nesting = append(w.nesting, pairTypeBT)

	w.State.TextMatrix = matrix.Identity
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "BT")
}

// TextEnd ends the current text object.
//
// This implements the PDF graphics operator "ET".
func (w *Writer) TextEnd() {
	if !w.isValid("TextEnd", objText) {
		return
	}
	w.currentObject = objPage

	if len(w.nesting) == 0 || w.nesting[len(w.nesting)-1] != pairTypeBT {
		w.Err = errors.New("TextEnd: no matching TextStart")
		return
	}
	w.nesting = w.nesting[:len(w.nesting)-1]
	w.Set &^= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, "ET")
}

// TextSetFont sets the font and font size.  The font is identified by its
// name in the /Font resource dictionary of the page.
//
// This implements the PDF graphics operator "Tf".
func (w *Writer) TextSetFont(name pdf.Name, size float64) {
	if !w.isValid("TextSetFont", objText|objPage) {
		return
	}
	if name == "" {
		w.Err = errors.New("TextSetFont: missing font name")
		return
	}
	if size <= 0 || !isFinite(size) {
		w.Err = fmt.Errorf("TextSetFont: invalid font size %g", size)
		return
	}

	w.State.TextFont = name
	w.State.TextFontSize = size
	w.State.Set |= StateTextFont

	err := name.PDF(w.Content)
	if err != nil {
		w.Err = err
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, "", w.coord(size), "Tf")
}

// TextSetMatrix replaces the current text matrix and line matrix.
//
// This implements the PDF graphics operator "Tm".
func (w *Writer) TextSetMatrix(M matrix.Matrix) {
	if !w.isValid("TextSetMatrix", objText) {
		return
	}
	for _, x := range M {
		if !isFinite(x) {
			w.Err = fmt.Errorf("TextSetMatrix: invalid matrix %v", M)
			return
		}
	}

	w.TextMatrix = M
	w.Set |= StateTextMatrix

	_, w.Err = fmt.Fprintln(w.Content, w.coord(M[0]), w.coord(M[1]), w.coord(M[2]), w.coord(M[3]), w.coord(M[4]), w.coord(M[5]), "Tm")
}

// TextShowRaw shows an already encoded text in the PDF file.
//
// This implements the PDF graphics operator "Tj".
func (w *Writer) TextShowRaw(s pdf.String) {
	if !w.isValid("TextShowRaw", objText) {
		return
	}
	if err := w.mustBeSet(StateTextFont | StateTextMatrix); err != nil {
		w.Err = fmt.Errorf("TextShowRaw: %w", err)
		return
	}

	w.Err = s.PDF(w.Content)
	if w.Err != nil {
		return
	}
	_, w.Err = fmt.Fprintln(w.Content, " Tj")
}
