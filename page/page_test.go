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

package page

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/resume/pdf"
)

func TestPageDict(t *testing.T) {
	p := &Page{
		MediaBox: A4,
		Parent:   pdf.NewReference(2, 0),
		Contents: pdf.NewReference(5, 0),
		Fonts:    map[pdf.Name]pdf.Reference{"F1": pdf.NewReference(4, 0)},
		Annots:   []pdf.Reference{pdf.NewReference(6, 0), pdf.NewReference(7, 0)},
	}
	dict, err := p.AsDict()
	if err != nil {
		t.Fatal(err)
	}
	want := "<<\n/Annots [6 0 R 7 0 R]\n/Contents 5 0 R\n/MediaBox [0 0 595 842]\n" +
		"/Parent 2 0 R\n/Resources <<\n/Font <<\n/F1 4 0 R\n>>\n>>\n/Type /Page\n>>"
	if got := pdf.Format(dict); got != want {
		t.Errorf("wrong page dict:\n%s", cmp.Diff(want, got))
	}

	p2, err := Decode(dict)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(p, p2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]pdf.Name{"F1"}, p2.FontNames()); d != "" {
		t.Errorf("wrong font names (-want +got):\n%s", d)
	}
}

func TestPageInvalid(t *testing.T) {
	parent := pdf.NewReference(2, 0)

	_, err := (&Page{MediaBox: rect.Rect{URx: 595}, Parent: parent}).AsDict()
	if !errors.Is(err, pdf.ErrDegenerateRect) {
		t.Errorf("expected ErrDegenerateRect, got %v", err)
	}

	_, err = (&Page{MediaBox: A4}).AsDict()
	if err == nil {
		t.Error("page without parent accepted")
	}

	_, err = (&Page{
		MediaBox: A4,
		Parent:   parent,
		Fonts:    map[pdf.Name]pdf.Reference{"F1": 0},
	}).AsDict()
	if err == nil {
		t.Error("missing font reference accepted")
	}

	_, err = Decode(pdf.Dict{"Type": pdf.Name("Pages")})
	if err == nil {
		t.Error("page tree node decoded as page")
	}
}
