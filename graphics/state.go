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
	"math"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/resume/pdf"
)

// State collects the graphics state parameters tracked by a [Writer].
type State struct {
	LineWidth   float64
	StrokeColor RGB
	FillColor   RGB

	TextFont     pdf.Name
	TextFontSize float64
	TextMatrix   matrix.Matrix

	// Set records which of the parameters above have been set
	// explicitly in the content stream.
	Set StateBits
}

// NewState returns the initial graphics state of a page.
func NewState() State {
	return State{
		LineWidth:  1,
		TextMatrix: matrix.Identity,
	}
}

// StateBits is used to indicate which fields of a [State] are in use.
type StateBits uint32

// Possible values for StateBits.
const (
	StateLineWidth StateBits = 1 << iota
	StateStrokeColor
	StateFillColor
	StateTextFont
	StateTextMatrix
)

var stateNames = map[StateBits]string{
	StateLineWidth:   "LineWidth",
	StateStrokeColor: "StrokeColor",
	StateFillColor:   "FillColor",
	StateTextFont:    "TextFont",
	StateTextMatrix:  "TextMatrix",
}

func (b StateBits) String() string {
	var names []string
	for bit := StateLineWidth; bit <= StateTextMatrix; bit <<= 1 {
		if b&bit != 0 {
			names = append(names, stateNames[bit])
		}
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, "|")
}

func (w *Writer) mustBeSet(bits StateBits) error {
	missing := bits &^ w.Set
	if missing == 0 {
		return nil
	}
	return fmt.Errorf("parameters %s not set", missing)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
