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
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// writeTestFile writes a minimal one-page document.
func writeTestFile(t *testing.T) []byte {
	t.Helper()

	w := NewWriter(V1_7)
	catalogRef := w.Alloc()
	pagesRef := w.Alloc()
	pageRef := w.Alloc()
	fontRef := w.Alloc()
	contentRef := w.Alloc()

	catalog, err := (&Catalog{Pages: pagesRef}).AsDict()
	if err != nil {
		t.Fatal(err)
	}
	objects := map[Reference]Object{
		catalogRef: catalog,
		pagesRef: Dict{
			"Type":  Name("Pages"),
			"Kids":  Array{pageRef},
			"Count": Integer(1),
		},
		pageRef: Dict{
			"Type":      Name("Page"),
			"Parent":    pagesRef,
			"MediaBox":  Array{Integer(0), Integer(0), Integer(200), Integer(100)},
			"Resources": Dict{"Font": Dict{"F1": fontRef}},
			"Contents":  contentRef,
		},
		fontRef: Dict{
			"Type":     Name("Font"),
			"Subtype":  Name("Type1"),
			"BaseFont": Name("Helvetica"),
		},
		contentRef: &Stream{
			Data: []byte("BT\n/F1 24 Tf\n1 0 0 1 30 30 Tm\n(Hello World) Tj\nET\n"),
		},
	}
	for ref, obj := range objects {
		err := w.Put(ref, obj)
		if err != nil {
			t.Fatal(err)
		}
	}

	info, err := w.Write((&Info{Title: "Test", Producer: "writer_test"}).AsDict())
	if err != nil {
		t.Fatal(err)
	}

	data, err := w.Close(catalogRef, info)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestWriterRoundTrip(t *testing.T) {
	data := writeTestFile(t)

	if !bytes.HasPrefix(data, []byte("%PDF-1.7\n")) {
		t.Errorf("wrong header %q", data[:10])
	}
	if !bytes.HasSuffix(data, []byte("%%EOF\n")) {
		t.Error("missing end-of-file marker")
	}

	f, err := Read(data)
	if err != nil {
		t.Fatal(err)
	}
	if f.Version != V1_7 {
		t.Errorf("wrong version %s", f.Version)
	}
	if f.NumObjects() != 6 {
		t.Errorf("wrong number of objects: %d", f.NumObjects())
	}
	if f.Trailer["Size"] != Integer(7) {
		t.Errorf("wrong /Size %s", Format(f.Trailer["Size"]))
	}
	if f.Trailer["Root"] != NewReference(1, 0) {
		t.Errorf("wrong /Root %s", Format(f.Trailer["Root"]))
	}
	if f.Trailer["Info"] != NewReference(6, 0) {
		t.Errorf("wrong /Info %s", Format(f.Trailer["Info"]))
	}

	err = f.CheckReferences()
	if err != nil {
		t.Error(err)
	}

	pages, err := f.Pages()
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]Reference{NewReference(3, 0)}, pages); d != "" {
		t.Errorf("wrong pages (-want +got):\n%s", d)
	}

	obj, err := f.Get(NewReference(5, 0))
	if err != nil {
		t.Fatal(err)
	}
	stm, ok := obj.(*Stream)
	if !ok {
		t.Fatalf("content stream has type %T", obj)
	}
	want := "BT\n/F1 24 Tf\n1 0 0 1 30 30 Tm\n(Hello World) Tj\nET\n"
	if string(stm.Data) != want {
		t.Errorf("wrong stream data:\n%s", cmp.Diff(want, string(stm.Data)))
	}

	infoDict, err := f.GetDict(f.Trailer["Info"])
	if err != nil {
		t.Fatal(err)
	}
	if title, _ := infoDict["Title"].(String); title.AsTextString() != "Test" {
		t.Errorf("wrong title %q", title)
	}
}

// TestXRefOffsets checks every xref entry against the file contents,
// independently of the reader.
func TestXRefOffsets(t *testing.T) {
	data := writeTestFile(t)

	m := regexp.MustCompile(`startxref\n(\d+)\n%%EOF\n$`).FindSubmatch(data)
	if m == nil {
		t.Fatal("startxref not found")
	}
	xRefPos, _ := strconv.Atoi(string(m[1]))
	if !bytes.HasPrefix(data[xRefPos:], []byte("xref\n0 7\n0000000000 65535 f\r\n")) {
		t.Fatalf("no xref table at %d", xRefPos)
	}

	entries := data[xRefPos+len("xref\n0 7\n"):]
	for i := 1; i < 7; i++ {
		entry := entries[20*i : 20*i+20]
		pos, err := strconv.Atoi(string(entry[:10]))
		if err != nil {
			t.Fatal(err)
		}
		header := fmt.Sprintf("%d 0 obj\n", i)
		if !bytes.HasPrefix(data[pos:], []byte(header)) {
			t.Errorf("xref entry %d points to %q", i, data[pos:pos+10])
		}
	}
}

func TestWriterDeterministic(t *testing.T) {
	a := writeTestFile(t)
	b := writeTestFile(t)
	if !bytes.Equal(a, b) {
		t.Error("output differs between runs")
	}
}

func TestWriterErrors(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		w := NewWriter(V1_7)
		ref := w.Alloc()
		err := w.Put(ref, Integer(1))
		if err != nil {
			t.Fatal(err)
		}
		err = w.Put(ref, Integer(2))
		if !errors.Is(err, ErrDuplicateObject) {
			t.Errorf("expected ErrDuplicateObject, got %v", err)
		}
	})

	t.Run("unallocated", func(t *testing.T) {
		w := NewWriter(V1_7)
		err := w.Put(NewReference(1, 0), Integer(1))
		if !errors.Is(err, ErrDanglingReference) {
			t.Errorf("expected ErrDanglingReference, got %v", err)
		}
	})

	t.Run("dangling", func(t *testing.T) {
		w := NewWriter(V1_7)
		catalog := w.Alloc()
		err := w.Put(catalog, Dict{"Type": Name("Catalog"), "Pages": NewReference(9, 0)})
		if err != nil {
			t.Fatal(err)
		}
		data, err := w.Close(catalog, 0)
		if !errors.Is(err, ErrDanglingReference) {
			t.Errorf("expected ErrDanglingReference, got %v", err)
		}
		if data != nil {
			t.Error("partial output returned")
		}
	})

	t.Run("unwritten", func(t *testing.T) {
		w := NewWriter(V1_7)
		catalog := w.Alloc()
		pages := w.Alloc()
		err := w.Put(catalog, Dict{"Type": Name("Catalog"), "Pages": pages})
		if err != nil {
			t.Fatal(err)
		}
		data, err := w.Close(catalog, 0)
		if !errors.Is(err, ErrUnwrittenObject) {
			t.Errorf("expected ErrUnwrittenObject, got %v", err)
		}
		if data != nil {
			t.Error("partial output returned")
		}
	})

	t.Run("no catalog", func(t *testing.T) {
		w := NewWriter(V1_7)
		_, err := w.Close(0, 0)
		if err == nil {
			t.Error("missing catalog not detected")
		}
	})

	t.Run("bad value", func(t *testing.T) {
		w := NewWriter(V1_7)
		catalog, err := w.Write(Dict{"X": Real(1 / zero())})
		if err != nil {
			t.Fatal(err)
		}
		data, err := w.Close(catalog, 0)
		if err == nil || data != nil {
			t.Error("non-finite number not detected")
		}
	})
}

func zero() float64 { return 0 }
