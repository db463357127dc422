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

package pdf

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
)

// CheckRect verifies that r has finite coordinates and a positive width and
// height.
func CheckRect(r rect.Rect) error {
	for _, x := range []float64{r.LLx, r.LLy, r.URx, r.URy} {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: non-finite coordinate %g", ErrDegenerateRect, x)
		}
	}
	if r.URx <= r.LLx || r.URy <= r.LLy {
		return fmt.Errorf("%w: [%g %g %g %g]",
			ErrDegenerateRect, r.LLx, r.LLy, r.URx, r.URy)
	}
	return nil
}

// RoundRect rounds the coordinates of r to two decimal places.  This is
// the precision used by [RectArray], so checks on the rounded rectangle
// apply to the rectangle written to the file.
func RoundRect(r rect.Rect) rect.Rect {
	return rect.Rect{
		LLx: roundCoord(r.LLx),
		LLy: roundCoord(r.LLy),
		URx: roundCoord(r.URx),
		URy: roundCoord(r.URy),
	}
}

func roundCoord(x float64) float64 {
	return math.Round(100*x) / 100
}

// RectArray converts r to a PDF rectangle, i.e. to an array of the four
// coordinates LLx, LLy, URx, URy.  Coordinates are rounded to two decimal
// places.
func RectArray(r rect.Rect) Array {
	r = RoundRect(r)
	return Array{Number(r.LLx), Number(r.LLy), Number(r.URx), Number(r.URy)}
}

// GetRect converts a PDF rectangle array back to a [rect.Rect].
func GetRect(obj Object) (rect.Rect, error) {
	a, ok := obj.(Array)
	if !ok || len(a) != 4 {
		return rect.Rect{}, fmt.Errorf("expected rectangle but got %s", Format(obj))
	}
	var values [4]float64
	for i, elem := range a {
		switch x := elem.(type) {
		case Integer:
			values[i] = float64(x)
		case Real:
			values[i] = float64(x)
		case Number:
			values[i] = float64(x)
		default:
			return rect.Rect{}, fmt.Errorf("expected number but got %s", Format(elem))
		}
	}
	return rect.Rect{
		LLx: math.Min(values[0], values[2]),
		LLy: math.Min(values[1], values[3]),
		URx: math.Max(values[0], values[2]),
		URy: math.Max(values[1], values[3]),
	}, nil
}

// RectInside reports whether inner lies completely within outer.
func RectInside(inner, outer rect.Rect) bool {
	return inner.LLx >= outer.LLx && inner.URx <= outer.URx &&
		inner.LLy >= outer.LLy && inner.URy <= outer.URy
}

// RectOverlap reports whether the interiors of a and b intersect.
// Rectangles which only share an edge do not overlap.
func RectOverlap(a, b rect.Rect) bool {
	return a.LLx < b.URx && b.LLx < a.URx && a.LLy < b.URy && b.LLy < a.URy
}
