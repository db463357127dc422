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

// Package annotation implements link annotations.
//
// See section 12.5.6.5 of ISO 32000-2:2020.
package annotation

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/resume/action"
	"seehuhn.de/go/resume/pdf"
)

// Link represents a hypertext link annotation.
type Link struct {
	// Rect is the active area of the link, in default user space units.
	Rect rect.Rect

	// Action is performed when the link annotation is activated.
	//
	// This corresponds to the /A entry in the PDF annotation dictionary.
	Action *action.URI
}

// AsDict returns the annotation dictionary.  The action is stored as a
// direct object.  No border is drawn around the link.
func (l *Link) AsDict() (pdf.Dict, error) {
	err := pdf.CheckRect(pdf.RoundRect(l.Rect))
	if err != nil {
		return nil, fmt.Errorf("link annotation: %w", err)
	}
	if l.Action == nil {
		return nil, errors.New("link annotation without action")
	}
	a, err := l.Action.AsDict()
	if err != nil {
		return nil, fmt.Errorf("link annotation: %w", err)
	}

	dict := pdf.Dict{
		"Type":    pdf.Name("Annot"),
		"Subtype": pdf.Name("Link"),
		"Rect":    pdf.RectArray(l.Rect),
		"Border":  pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(0)},
		"A":       a,
	}
	return dict, nil
}

// Decode reads a link annotation from its dictionary.
// The action must be given as a direct object.
func Decode(dict pdf.Dict) (*Link, error) {
	if dict["Subtype"] != pdf.Name("Link") {
		return nil, fmt.Errorf("unsupported annotation type %s", pdf.Format(dict["Subtype"]))
	}
	r, err := pdf.GetRect(dict["Rect"])
	if err != nil {
		return nil, err
	}
	a, ok := dict["A"].(pdf.Dict)
	if !ok {
		return nil, errors.New("link annotation without action")
	}
	uri, err := action.Decode(a)
	if err != nil {
		return nil, err
	}
	return &Link{Rect: r, Action: uri}, nil
}
