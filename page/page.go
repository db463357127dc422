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

// Package page implements PDF page objects.
package page

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/resume/pdf"
)

// A4 is the media box of an A4 page, rounded to whole points.
var A4 = rect.Rect{URx: 595, URy: 842}

// Page describes a single page of a document.
type Page struct {
	// MediaBox gives the boundaries of the physical medium.
	MediaBox rect.Rect

	// Parent is the page tree node containing the page.
	Parent pdf.Reference

	// Contents is the content stream of the page.
	Contents pdf.Reference

	// Fonts maps resource names, as used in the content stream, to font
	// dictionaries.
	Fonts map[pdf.Name]pdf.Reference

	// Annots lists the annotations of the page, in order.
	Annots []pdf.Reference
}

// AsDict returns the page dictionary.
func (p *Page) AsDict() (pdf.Dict, error) {
	err := pdf.CheckRect(pdf.RoundRect(p.MediaBox))
	if err != nil {
		return nil, fmt.Errorf("page MediaBox: %w", err)
	}
	if p.Parent == 0 {
		return nil, errors.New("page without parent")
	}

	dict := pdf.Dict{
		"Type":     pdf.Name("Page"),
		"Parent":   p.Parent,
		"MediaBox": pdf.RectArray(p.MediaBox),
	}
	if p.Contents != 0 {
		dict["Contents"] = p.Contents
	}

	resources := pdf.Dict{}
	if len(p.Fonts) > 0 {
		fonts := pdf.Dict{}
		for name, ref := range p.Fonts {
			if name == "" || ref == 0 {
				return nil, fmt.Errorf("invalid font resource %q", name)
			}
			fonts[name] = ref
		}
		resources["Font"] = fonts
	}
	dict["Resources"] = resources

	if len(p.Annots) > 0 {
		annots := make(pdf.Array, len(p.Annots))
		for i, ref := range p.Annots {
			annots[i] = ref
		}
		dict["Annots"] = annots
	}

	return dict, nil
}

// Decode reads a page from its dictionary.
func Decode(dict pdf.Dict) (*Page, error) {
	if dict["Type"] != pdf.Name("Page") {
		return nil, fmt.Errorf("expected /Page but got %s", pdf.Format(dict["Type"]))
	}
	mediaBox, err := pdf.GetRect(dict["MediaBox"])
	if err != nil {
		return nil, fmt.Errorf("page MediaBox: %w", err)
	}

	p := &Page{MediaBox: mediaBox}
	p.Parent, _ = dict["Parent"].(pdf.Reference)
	p.Contents, _ = dict["Contents"].(pdf.Reference)

	resources, _ := dict["Resources"].(pdf.Dict)
	if fonts, ok := resources["Font"].(pdf.Dict); ok && len(fonts) > 0 {
		p.Fonts = make(map[pdf.Name]pdf.Reference, len(fonts))
		for name, obj := range fonts {
			ref, ok := obj.(pdf.Reference)
			if !ok {
				return nil, fmt.Errorf("font %q is not an indirect object", name)
			}
			p.Fonts[name] = ref
		}
	}

	annots, _ := dict["Annots"].(pdf.Array)
	for _, obj := range annots {
		ref, ok := obj.(pdf.Reference)
		if !ok {
			return nil, errors.New("annotation is not an indirect object")
		}
		p.Annots = append(p.Annots, ref)
	}

	return p, nil
}

// FontNames returns the resource names of the page fonts, in sorted order.
func (p *Page) FontNames() []pdf.Name {
	res := make([]pdf.Name, 0, len(p.Fonts))
	for name := range p.Fonts {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}
