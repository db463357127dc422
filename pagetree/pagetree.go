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

// Package pagetree implements PDF page trees.
//
// Only flat page trees are written: the root node lists all pages directly.
// Files read with [pdf.Read] may contain nested trees.
package pagetree

import (
	"errors"
	"fmt"

	"seehuhn.de/go/resume/pdf"
)

var errInvalidPageTree = errors.New("invalid page tree")

// Tree is the root node of a flat page tree.
type Tree struct {
	Kids []pdf.Reference
}

// New creates a page tree root.  The page count must equal the number of
// kids, and the tree must contain at least one page.
func New(count int, kids []pdf.Reference) (*Tree, error) {
	if len(kids) == 0 {
		return nil, fmt.Errorf("%w: no pages", errInvalidPageTree)
	}
	if count != len(kids) {
		return nil, fmt.Errorf("%w: /Count %d for %d kids",
			errInvalidPageTree, count, len(kids))
	}
	for _, kid := range kids {
		if kid == 0 {
			return nil, fmt.Errorf("%w: missing page reference", errInvalidPageTree)
		}
	}
	return &Tree{Kids: kids}, nil
}

// AsDict returns the page tree node dictionary.
func (t *Tree) AsDict() pdf.Dict {
	kids := make(pdf.Array, len(t.Kids))
	for i, ref := range t.Kids {
		kids[i] = ref
	}
	return pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(t.Kids)),
	}
}

// Getter gives access to the objects of a document.
// [*pdf.Writer] implements this interface.
type Getter interface {
	Get(ref pdf.Reference) (pdf.Object, bool)
}

// CheckKids verifies that every kid of the tree is a page whose /Parent
// entry points back to parent.
func (t *Tree) CheckKids(r Getter, parent pdf.Reference) error {
	for _, ref := range t.Kids {
		obj, ok := r.Get(ref)
		if !ok {
			return fmt.Errorf("page %s: %w", ref, pdf.ErrUnwrittenObject)
		}
		dict, ok := obj.(pdf.Dict)
		if !ok || dict["Type"] != pdf.Name("Page") {
			return fmt.Errorf("%w: kid %s is not a page", errInvalidPageTree, ref)
		}
		if dict["Parent"] != parent {
			return fmt.Errorf("%w: page %s has wrong parent %s",
				errInvalidPageTree, ref, pdf.Format(dict["Parent"]))
		}
	}
	return nil
}

// NumPages returns the number of pages in a document, as given by the
// /Count entry of the page tree root.
func NumPages(f *pdf.File) (int, error) {
	catalog, err := f.Catalog()
	if err != nil {
		return 0, err
	}
	root, err := f.GetDict(catalog["Pages"])
	if err != nil {
		return 0, err
	}
	count, ok := root["Count"].(pdf.Integer)
	if !ok || count < 0 {
		return 0, errInvalidPageTree
	}
	return int(count), nil
}

// GetPage returns the dictionary of the given page (0-based).
// The /Count entries of the tree are checked against the pages found.
func GetPage(f *pdf.File, pageNo int) (pdf.Reference, pdf.Dict, error) {
	pages, err := f.Pages()
	if err != nil {
		return 0, nil, err
	}
	count, err := NumPages(f)
	if err != nil {
		return 0, nil, err
	}
	if count != len(pages) {
		return 0, nil, fmt.Errorf("%w: /Count %d for %d pages",
			errInvalidPageTree, count, len(pages))
	}
	if pageNo < 0 || pageNo >= len(pages) {
		return 0, nil, fmt.Errorf("page %d not found", pageNo)
	}
	ref := pages[pageNo]
	dict, err := f.GetDict(ref)
	if err != nil {
		return 0, nil, err
	}
	return ref, dict, nil
}
