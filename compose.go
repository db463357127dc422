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

package resume

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/resume/font/standard"
	"seehuhn.de/go/resume/graphics"
	"seehuhn.de/go/resume/layout"
	"seehuhn.de/go/resume/pdf"
)

// placedLink is the active area of a hyperlink, as found while composing
// the content stream.
type placedLink struct {
	Rect  rect.Rect
	URI   string
	Order int
}

// composed holds the result of running the drawing script.
type composed struct {
	Content []byte
	Links   []placedLink
}

// compose runs the drawing script described by the configuration.
// The configuration must have been validated.
func compose(cfg *Config) (*composed, error) {
	font := standard.Font(cfg.Font)
	fontName := pdf.Name(cfg.FontResource)

	steps := make([]layout.Step, len(cfg.Blocks))
	for i, b := range cfg.Blocks {
		steps[i] = layout.Space(b.Advance)
	}
	baselines, err := layout.Place(cfg.Top, steps)
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := graphics.NewWriter(buf)
	res := &composed{}

	for i, b := range cfg.Blocks {
		y := baselines[i]
		switch {
		case b.Text != nil:
			if b.Text.Color != nil {
				w.SetFillColor(*b.Text.Color)
			}
			s, err := font.Encode(b.Text.Content)
			if err != nil {
				return nil, invalid(fmt.Sprintf("blocks[%d].text.content", i), err)
			}
			w.ShowTextAt(fontName, b.Text.Size, b.Text.X, y, s)

		case b.Links != nil:
			l := b.Links
			if l.Color != nil {
				w.SetFillColor(*l.Color)
			}
			for j, item := range l.Items {
				s, err := font.Encode(item.Label)
				if err != nil {
					return nil, invalid(fmt.Sprintf("blocks[%d].links.items[%d].label", i, j), err)
				}
				w.ShowTextAt(fontName, l.Size, item.X, y, s)
				res.Links = append(res.Links, placedLink{
					Rect: rect.Rect{
						LLx: item.X,
						LLy: y - l.Below,
						URx: item.X + item.Width,
						URy: y + l.Above,
					},
					URI:   item.URI,
					Order: item.Order,
				})
			}

		case b.Rule:
			r := cfg.Rule
			w.HorizontalLine(r.X0, r.X1, y, r.Color, r.LineWidth)
		}
	}

	err = w.Close()
	if err != nil {
		return nil, err
	}
	res.Content = buf.Bytes()
	return res, nil
}
