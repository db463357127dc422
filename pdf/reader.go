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

	"golang.org/x/exp/slices"
)

// File is a PDF file which has been parsed into memory.
//
// Only files with a classic cross-reference table are supported, and stream
// lengths must be given as direct objects.  This covers all files written by
// [Writer].
type File struct {
	Version Version
	Trailer Dict

	objects map[Reference]Object
}

type reader struct {
	data []byte
}

func (r *reader) scannerAt(pos int64) *scanner {
	return newScanner(r.data, pos)
}

// Read parses a complete PDF file.  Every object listed in the
// cross-reference table is read, and the recorded byte offsets are checked
// against the object headers found in the file.
func Read(data []byte) (*File, error) {
	r := &reader{data: data}

	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		return nil, &MalformedFileError{Err: errors.New("PDF header not found")}
	}
	s := r.scannerAt(5)
	verString := s.ReadKeyword()
	ver, err := ParseVersion(verString)
	if err != nil {
		return nil, &MalformedFileError{Pos: 5, Err: err}
	}

	xRefPos, err := r.findXRef()
	if err != nil {
		return nil, err
	}
	xref, trailer, err := readXRefTable(r.scannerAt(xRefPos))
	if err != nil {
		return nil, err
	}

	size, ok := trailer["Size"].(Integer)
	if !ok || int(size) != len(xref) {
		return nil, &MalformedFileError{
			Pos: xRefPos,
			Err: fmt.Errorf("trailer /Size %s does not match %d xref entries",
				Format(trailer["Size"]), len(xref)),
		}
	}
	if _, ok := trailer["Root"].(Reference); !ok {
		return nil, &MalformedFileError{Pos: xRefPos, Err: errors.New("missing /Root in trailer")}
	}

	numbers := make([]uint32, 0, len(xref))
	for number := range xref {
		numbers = append(numbers, number)
	}
	slices.Sort(numbers)

	f := &File{
		Version: ver,
		Trailer: trailer,
		objects: make(map[Reference]Object),
	}
	for _, number := range numbers {
		entry := xref[number]
		if !entry.InUse {
			continue
		}
		ref := NewReference(number, entry.Generation)
		obj, err := r.readIndirect(ref, entry.Pos)
		if err != nil {
			return nil, err
		}
		if obj != nil {
			f.objects[ref] = obj
		}
	}
	return f, nil
}

func (r *reader) readIndirect(ref Reference, pos int64) (Object, error) {
	if pos <= 0 || pos >= int64(len(r.data)) {
		return nil, &MalformedFileError{Pos: pos, Err: fmt.Errorf("%s: invalid offset", ref)}
	}
	s := r.scannerAt(pos)

	number, err := s.ReadInteger()
	if err != nil {
		return nil, err
	}
	s.SkipWhiteSpace()
	generation, err := s.ReadInteger()
	if err != nil {
		return nil, err
	}
	s.SkipWhiteSpace()
	err = s.SkipString("obj")
	if err != nil {
		return nil, err
	}
	if uint32(number) != ref.Number() || uint16(generation) != ref.Generation() {
		return nil, &MalformedFileError{
			Pos: pos,
			Err: fmt.Errorf("xref entry for %s points to obj_%d", ref, number),
		}
	}

	obj, err := s.ReadObject()
	if err != nil {
		return nil, err
	}
	s.SkipWhiteSpace()

	if dict, isDict := obj.(Dict); isDict && s.HasPrefix("stream") {
		s.pos += int64(len("stream"))
		if s.HasPrefix("\r\n") {
			s.pos += 2
		} else if s.HasPrefix("\n") {
			s.pos++
		} else {
			return nil, s.error(errors.New("missing end of line after stream keyword"))
		}

		length, ok := dict["Length"].(Integer)
		if !ok || length < 0 {
			return nil, s.error(fmt.Errorf("%s: stream without valid /Length", ref))
		}
		end := s.pos + int64(length)
		if end > int64(len(s.buf)) {
			return nil, s.error(fmt.Errorf("%s: stream data exceeds file size", ref))
		}
		data := bytes.Clone(s.buf[s.pos:end])
		s.pos = end

		s.SkipWhiteSpace()
		if !s.HasPrefix("endstream") {
			return nil, s.error(fmt.Errorf("%s: wrong stream length %d", ref, length))
		}
		s.pos += int64(len("endstream"))
		s.SkipWhiteSpace()

		obj = &Stream{Dict: dict, Data: data}
	}

	err = s.SkipString("endobj")
	if err != nil {
		return nil, err
	}
	return obj, nil
}

// NumObjects returns the number of objects stored in the file.
func (f *File) NumObjects() int {
	return len(f.objects)
}

// Refs returns the references of all objects in the file, in increasing
// order.
func (f *File) Refs() []Reference {
	res := make([]Reference, 0, len(f.objects))
	for ref := range f.objects {
		res = append(res, ref)
	}
	slices.Sort(res)
	return res
}

// Get returns the object stored under ref.
func (f *File) Get(ref Reference) (Object, error) {
	obj, ok := f.objects[ref]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ref, ErrDanglingReference)
	}
	return obj, nil
}

// Resolve follows obj, if it is a reference.  Other objects are returned
// unchanged.
func (f *File) Resolve(obj Object) (Object, error) {
	if ref, ok := obj.(Reference); ok {
		return f.Get(ref)
	}
	return obj, nil
}

// GetDict resolves obj and makes sure the result is a dictionary.
// For streams, the stream dictionary is returned.
func (f *File) GetDict(obj Object) (Dict, error) {
	obj, err := f.Resolve(obj)
	if err != nil {
		return nil, err
	}
	switch x := obj.(type) {
	case Dict:
		return x, nil
	case *Stream:
		return x.Dict, nil
	default:
		return nil, fmt.Errorf("expected Dict but got %T", obj)
	}
}

// Catalog returns the document catalog.
func (f *File) Catalog() (Dict, error) {
	catalog, err := f.GetDict(f.Trailer["Root"])
	if err != nil {
		return nil, err
	}
	if catalog["Type"] != Name("Catalog") {
		return nil, errors.New("/Root is not a catalog")
	}
	return catalog, nil
}

// CheckReferences verifies that every reference in the trailer and in every
// object resolves to an object present in the file.
func (f *File) CheckReferences() error {
	for _, ref := range References(f.Trailer) {
		if _, err := f.Get(ref); err != nil {
			return fmt.Errorf("in trailer: %w", err)
		}
	}
	for _, from := range f.Refs() {
		for _, ref := range References(f.objects[from]) {
			if _, err := f.Get(ref); err != nil {
				return fmt.Errorf("in %s: %w", from, err)
			}
		}
	}
	return nil
}

// Pages returns the references of all pages, in document order.
func (f *File) Pages() ([]Reference, error) {
	catalog, err := f.Catalog()
	if err != nil {
		return nil, err
	}

	var res []Reference
	seen := make(map[Reference]bool)
	var walk func(obj Object) error
	walk = func(obj Object) error {
		ref, ok := obj.(Reference)
		if !ok {
			return fmt.Errorf("page tree node %s is not a reference", Format(obj))
		}
		if seen[ref] {
			return fmt.Errorf("%s: loop in page tree", ref)
		}
		seen[ref] = true

		node, err := f.GetDict(ref)
		if err != nil {
			return err
		}
		switch node["Type"] {
		case Name("Page"):
			res = append(res, ref)
		case Name("Pages"):
			kids, _ := node["Kids"].(Array)
			for _, kid := range kids {
				err := walk(kid)
				if err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%s: invalid page tree node type %s", ref, Format(node["Type"]))
		}
		return nil
	}

	err = walk(catalog["Pages"])
	if err != nil {
		return nil, err
	}
	return res, nil
}
