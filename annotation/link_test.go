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

package annotation

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/resume/action"
	"seehuhn.de/go/resume/pdf"
)

func TestLinkDict(t *testing.T) {
	l := &Link{
		Rect:   rect.Rect{LLx: 300, LLy: 738, URx: 350, URy: 750},
		Action: &action.URI{URI: "https://github.com/lordtt13"},
	}
	dict, err := l.AsDict()
	if err != nil {
		t.Fatal(err)
	}

	want := pdf.Dict{
		"Type":    pdf.Name("Annot"),
		"Subtype": pdf.Name("Link"),
		"Rect":    pdf.Array{pdf.Number(300), pdf.Number(738), pdf.Number(350), pdf.Number(750)},
		"Border":  pdf.Array{pdf.Integer(0), pdf.Integer(0), pdf.Integer(0)},
		"A": pdf.Dict{
			"S":   pdf.Name("URI"),
			"URI": pdf.String("https://github.com/lordtt13"),
		},
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("wrong annotation dict (-want +got):\n%s", d)
	}

	l2, err := Decode(dict)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(l, l2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestLinkInvalid(t *testing.T) {
	uri := &action.URI{URI: "mailto:someone@example.com"}
	cases := []struct {
		name       string
		link       *Link
		degenerate bool
	}{
		{"zero width", &Link{Rect: rect.Rect{LLx: 50, LLy: 0, URx: 50, URy: 10}, Action: uri}, true},
		{"zero height", &Link{Rect: rect.Rect{LLx: 0, LLy: 10, URx: 50, URy: 10}, Action: uri}, true},
		{"flipped", &Link{Rect: rect.Rect{LLx: 60, LLy: 0, URx: 50, URy: 10}, Action: uri}, true},
		{"NaN", &Link{Rect: rect.Rect{LLx: math.NaN(), URx: 50, URy: 10}, Action: uri}, true},
		{"no action", &Link{Rect: rect.Rect{URx: 50, URy: 10}}, false},
		{"bad URI", &Link{Rect: rect.Rect{URx: 50, URy: 10}, Action: &action.URI{URI: "no scheme"}}, false},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.link.AsDict()
			if err == nil {
				t.Fatal("invalid annotation accepted")
			}
			if got := errors.Is(err, pdf.ErrDegenerateRect); got != test.degenerate {
				t.Errorf("errors.Is(err, ErrDegenerateRect) = %t, error %q", got, err)
			}
		})
	}
}
