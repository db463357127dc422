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
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"
)

func TestTextObject(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetFillColor(RGB{0.23, 0.51, 0.96})
	w.ShowTextAt("F1", 10, 220, 760, []byte("LinkedIn"))
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := `0.23 0.51 0.96 rg
BT
/F1 10 Tf
1 0 0 1 220 760 Tm
(LinkedIn) Tj
ET
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}
}

func TestHorizontalLine(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetStrokeColor(Black)
	w.HorizontalLine(50, 545, 725, Gray(0.8), 1)
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	want := `0 0 0 RG
q
0.8 0.8 0.8 RG
1 w
50 725 m
545 725 l
S
Q
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("wrong content stream (-want +got):\n%s", d)
	}

	if w.StrokeColor != Black {
		t.Errorf("stroke color not restored: %v", w.StrokeColor)
	}
}

// TestNoSuppression checks that repeated state changes are written
// unchanged.
func TestNoSuppression(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.SetFillColor(Black)
	w.SetFillColor(Black)
	w.ShowTextAt("F1", 10, 50, 700, []byte("a"))
	w.ShowTextAt("F1", 10, 50, 685, []byte("b"))
	err := w.Close()
	if err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if n := strings.Count(out, "0 0 0 rg\n"); n != 2 {
		t.Errorf("found %d fill color operators, want 2", n)
	}
	if n := strings.Count(out, "/F1 10 Tf\n"); n != 2 {
		t.Errorf("found %d font operators, want 2", n)
	}
}

func TestStateErrors(t *testing.T) {
	cases := []struct {
		name string
		draw func(w *Writer)
	}{
		{"Tj outside BT", func(w *Writer) {
			w.TextShowRaw([]byte("x"))
		}},
		{"Tj without font", func(w *Writer) {
			w.TextStart()
			w.TextShowRaw([]byte("x"))
			w.TextEnd()
		}},
		{"nested BT", func(w *Writer) {
			w.TextStart()
			w.TextStart()
		}},
		{"unclosed BT", func(w *Writer) {
			w.TextStart()
		}},
		{"unbalanced Q", func(w *Writer) {
			w.PopGraphicsState()
		}},
		{"unclosed q", func(w *Writer) {
			w.PushGraphicsState()
		}},
		{"q inside BT", func(w *Writer) {
			w.TextStart()
			w.PushGraphicsState()
		}},
		{"LineTo without MoveTo", func(w *Writer) {
			w.LineTo(1, 1)
		}},
		{"unpainted path", func(w *Writer) {
			w.MoveTo(0, 0)
			w.LineTo(1, 1)
		}},
		{"text inside path", func(w *Writer) {
			w.MoveTo(0, 0)
			w.TextStart()
		}},
		{"color out of range", func(w *Writer) {
			w.SetFillColor(RGB{0, 1.5, 0})
		}},
		{"NaN color", func(w *Writer) {
			w.SetStrokeColor(RGB{math.NaN(), 0, 0})
		}},
		{"negative line width", func(w *Writer) {
			w.SetLineWidth(-1)
		}},
		{"zero font size", func(w *Writer) {
			w.TextSetFont("F1", 0)
		}},
		{"infinite coordinate", func(w *Writer) {
			w.MoveTo(math.Inf(1), 0)
		}},
		{"infinite text position", func(w *Writer) {
			w.TextStart()
			w.TextSetMatrix(matrix.Translate(math.Inf(-1), 0))
		}},
	}
	for _, test := range cases {
		t.Run(test.name, func(t *testing.T) {
			w := NewWriter(&bytes.Buffer{})
			test.draw(w)
			if w.Close() == nil {
				t.Error("error not detected")
			}
		})
	}
}

// TestStickyError checks that nothing is written after the first error.
func TestStickyError(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)
	w.TextEnd()
	first := w.Err
	if first == nil {
		t.Fatal("error not detected")
	}
	w.SetFillColor(Black)
	w.ShowTextAt("F1", 12, 0, 0, []byte("x"))
	if w.Err != first {
		t.Errorf("error changed from %q to %q", first, w.Err)
	}
	if buf.Len() != 0 {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "0"},
		{1, "1"},
		{800, "800"},
		{0.8, "0.8"},
		{-2.5, "-2.5"},
		{0.23, "0.23"},
	}
	for _, test := range cases {
		if got := format(test.in); got != test.out {
			t.Errorf("format(%g) = %q, want %q", test.in, got, test.out)
		}
	}
}
