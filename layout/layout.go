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

// Package layout places items on a page from top to bottom.
//
// Every item of a page is described by a [Step], which declares how far the
// cursor moves down after the item has been drawn.  [Place] turns an ordered
// list of steps into the baseline of each step, starting from the top
// margin.  Since the positions are derived from the list alone, several
// items can share a baseline by declaring an advance of zero for all but the
// last of them.
package layout

import (
	"fmt"
	"math"
)

// Step is one item in a vertically laid out page.
type Step interface {
	// Advance returns the vertical distance between the baseline of this
	// step and the baseline of the following step.
	Advance() float64
}

// Space is a step which draws nothing.
type Space float64

// Advance implements the [Step] interface.
func (s Space) Advance() float64 {
	return float64(s)
}

// Cursor tracks the current vertical position on the page.
// The y coordinate decreases as content is added.
type Cursor struct {
	Y float64
}

// Next moves the cursor past the given step and returns the baseline
// at which the step is placed.
func (c *Cursor) Next(s Step) (float64, error) {
	h := s.Advance()
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return 0, fmt.Errorf("invalid advance %g", h)
	}
	y := c.Y
	c.Y -= h
	return y, nil
}

// Place computes the baseline of every step, starting at top.
// Element i of the result is the y coordinate of steps[i].
func Place(top float64, steps []Step) ([]float64, error) {
	if math.IsNaN(top) || math.IsInf(top, 0) {
		return nil, fmt.Errorf("invalid top position %g", top)
	}

	c := &Cursor{Y: top}
	res := make([]float64, len(steps))
	for i, s := range steps {
		y, err := c.Next(s)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		res[i] = y
	}
	return res, nil
}
