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
	"io"
)

// Writer collects the objects of a PDF document in memory and serializes
// them into a complete PDF file.
//
// Object numbers are handed out by [Writer.Alloc] in increasing order,
// starting at 1.  Every allocated number must be defined exactly once,
// using [Writer.Put], before [Writer.Close] is called.
type Writer struct {
	Version Version

	objects []Object // objects[i] holds object number i+1
}

// NewWriter prepares a new, empty PDF document.
func NewWriter(ver Version) *Writer {
	return &Writer{
		Version: ver,
	}
}

// Alloc allocates an object number for an indirect object.
func (pdf *Writer) Alloc() Reference {
	pdf.objects = append(pdf.objects, nil)
	return NewReference(uint32(len(pdf.objects)), 0)
}

// Put defines the object stored under a previously allocated reference.
func (pdf *Writer) Put(ref Reference, obj Object) error {
	idx, err := pdf.index(ref)
	if err != nil {
		return err
	}
	if obj == nil {
		return fmt.Errorf("%s: cannot store a null object", ref)
	}
	if pdf.objects[idx] != nil {
		return fmt.Errorf("%s: %w", ref, ErrDuplicateObject)
	}
	pdf.objects[idx] = obj
	return nil
}

// Write allocates a new object number and stores obj under this number.
// The returned reference can be used to refer to this object from other
// parts of the file.
func (pdf *Writer) Write(obj Object) (Reference, error) {
	ref := pdf.Alloc()
	err := pdf.Put(ref, obj)
	if err != nil {
		return 0, err
	}
	return ref, nil
}

// Get returns the object stored under ref.  The second return value
// indicates whether the object has been defined.
func (pdf *Writer) Get(ref Reference) (Object, bool) {
	idx, err := pdf.index(ref)
	if err != nil || pdf.objects[idx] == nil {
		return nil, false
	}
	return pdf.objects[idx], true
}

// NumObjects returns the number of allocated objects.
func (pdf *Writer) NumObjects() int {
	return len(pdf.objects)
}

func (pdf *Writer) index(ref Reference) (int, error) {
	n := int(ref.Number())
	if ref.Generation() != 0 || n < 1 || n > len(pdf.objects) {
		return 0, fmt.Errorf("%s: %w", ref, ErrDanglingReference)
	}
	return n - 1, nil
}

// Close validates the object graph and serializes the complete PDF file.
// The catalog reference is required, info may be zero.
//
// If any allocated object is undefined, or if any reference does not resolve
// to a defined object, an error is returned and no data is produced.
func (pdf *Writer) Close(catalog, info Reference) ([]byte, error) {
	if catalog == 0 {
		return nil, errors.New("missing /Catalog")
	}
	err := pdf.check(catalog, info)
	if err != nil {
		return nil, err
	}
	ver, err := pdf.Version.ToString()
	if err != nil {
		return nil, err
	}

	buf := &bytes.Buffer{}
	w := &posWriter{w: buf}

	_, err = fmt.Fprintf(w, "%%PDF-%s\n%%\x80\x80\x80\x80\n", ver)
	if err != nil {
		return nil, err
	}

	offsets := make([]int64, len(pdf.objects))
	for i, obj := range pdf.objects {
		offsets[i] = w.pos
		_, err = fmt.Fprintf(w, "%d 0 obj\n", i+1)
		if err != nil {
			return nil, err
		}
		err = obj.PDF(w)
		if err != nil {
			return nil, fmt.Errorf("obj_%d: %w", i+1, err)
		}
		_, err = w.Write([]byte("\nendobj\n"))
		if err != nil {
			return nil, err
		}
	}

	trailer := Dict{
		"Size": Integer(len(pdf.objects) + 1),
		"Root": catalog,
	}
	if info != 0 {
		trailer["Info"] = info
	}

	xRefPos := w.pos
	err = writeXRefTable(w, offsets, trailer)
	if err != nil {
		return nil, err
	}

	_, err = fmt.Fprintf(w, "\nstartxref\n%d\n%%%%EOF\n", xRefPos)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// check makes sure that every allocated object is defined and that every
// reference resolves.
func (pdf *Writer) check(roots ...Reference) error {
	for i, obj := range pdf.objects {
		if obj == nil {
			return fmt.Errorf("obj_%d: %w", i+1, ErrUnwrittenObject)
		}
	}

	for _, ref := range roots {
		if ref == 0 {
			continue
		}
		if _, err := pdf.index(ref); err != nil {
			return err
		}
	}
	for i, obj := range pdf.objects {
		for _, ref := range References(obj) {
			if _, err := pdf.index(ref); err != nil {
				return fmt.Errorf("in obj_%d: %w", i+1, err)
			}
		}
	}
	return nil
}

type posWriter struct {
	w   io.Writer
	pos int64
}

func (w *posWriter) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += int64(n)
	return n, err
}
