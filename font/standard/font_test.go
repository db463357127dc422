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

package standard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/resume/pdf"
)

func TestParse(t *testing.T) {
	for _, f := range All {
		g, err := Parse(string(f))
		if err != nil {
			t.Error(err)
		}
		if g != f {
			t.Errorf("%s != %s", g, f)
		}
	}

	for _, name := range []string{"", "helvetica", "Arial", "Times-Regular"} {
		_, err := Parse(name)
		if err == nil {
			t.Errorf("%q accepted as a standard font", name)
		}
	}
}

func TestDict(t *testing.T) {
	dict, err := Helvetica.Dict()
	if err != nil {
		t.Fatal(err)
	}
	want := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name("Helvetica"),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
	if d := cmp.Diff(want, dict); d != "" {
		t.Errorf("wrong font dict (-want +got):\n%s", d)
	}

	dict, err = ZapfDingbats.Dict()
	if err != nil {
		t.Fatal(err)
	}
	if _, hasEncoding := dict["Encoding"]; hasEncoding {
		t.Error("symbolic font with /Encoding")
	}

	_, err = Font("Comic-Sans").Dict()
	if err == nil {
		t.Error("invalid font accepted")
	}
}

func TestEncode(t *testing.T) {
	cases := []struct {
		in  string
		out pdf.String
	}{
		{"Tanmay Thakur", pdf.String("Tanmay Thakur")},
		{"Backend & Infrastructure Engineer", pdf.String("Backend & Infrastructure Engineer")},
		{"résumé", pdf.String("r\xe9sum\xe9")},
		{"re\u0301sume\u0301", pdf.String("r\xe9sum\xe9")}, // decomposed accents
		{"2017 – 2021", pdf.String("2017 \x96 2021")},
		{"€5", pdf.String("\x805")},
		{"", pdf.String{}},
	}
	for _, test := range cases {
		got, err := Helvetica.Encode(test.in)
		if err != nil {
			t.Errorf("%q: %v", test.in, err)
			continue
		}
		if d := cmp.Diff(test.out, got); d != "" {
			t.Errorf("%q: wrong encoding (-want +got):\n%s", test.in, d)
		}
	}
}

func TestEncodeErrors(t *testing.T) {
	cases := []struct {
		font Font
		in   string
		bad  rune
	}{
		{Helvetica, "東京", '東'},
		{Helvetica, "tab\there", '\t'},
		{Helvetica, "line\nbreak", '\n'},
		{Helvetica, "\u0085", '\u0085'},
		{TimesRoman, "α", 'α'},
		{Symbol, "é", 'é'},
	}
	for _, test := range cases {
		_, err := test.font.Encode(test.in)
		var encErr *EncodingError
		if !errors.As(err, &encErr) {
			t.Errorf("%q: expected EncodingError, got %v", test.in, err)
			continue
		}
		if encErr.Rune != test.bad || encErr.Font != test.font {
			t.Errorf("%q: wrong error %v", test.in, encErr)
		}
	}
}
