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

package resume

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/resume/action"
	"seehuhn.de/go/resume/annotation"
	"seehuhn.de/go/resume/font/standard"
	"seehuhn.de/go/resume/metadata"
	"seehuhn.de/go/resume/page"
	"seehuhn.de/go/resume/pagetree"
	"seehuhn.de/go/resume/pdf"
)

// Builder assembles the object graph of a single-page document.
//
// Object numbers are allocated by the underlying [pdf.Writer].  Each
// New* method defines one previously allocated object.  Link annotations
// are reserved before the page is written, since the page lists them, and
// finalized once the content stream has determined their position.
type Builder struct {
	w *pdf.Writer

	pageTree    *pagetree.Tree
	pageTreeRef pdf.Reference

	page    *page.Page
	pageRef pdf.Reference

	annots    map[pdf.Reference]bool // reserved annotations; true once finalized
	annotRect []rect.Rect
}

// NewBuilder starts a new document.
func NewBuilder(ver pdf.Version) *Builder {
	return &Builder{
		w:      pdf.NewWriter(ver),
		annots: make(map[pdf.Reference]bool),
	}
}

// Alloc reserves an object number.
func (b *Builder) Alloc() pdf.Reference {
	return b.w.Alloc()
}

// NewCatalog defines the document catalog.  The metadata reference
// may be zero.
func (b *Builder) NewCatalog(ref, pages, metadata pdf.Reference) error {
	catalog := &pdf.Catalog{Pages: pages, Metadata: metadata}
	dict, err := catalog.AsDict()
	if err != nil {
		return err
	}
	return b.w.Put(ref, dict)
}

// NewPageTree defines the root of the page tree.  The count must equal
// the number of kids.
func (b *Builder) NewPageTree(ref pdf.Reference, count int, kids []pdf.Reference) error {
	tree, err := pagetree.New(count, kids)
	if err != nil {
		return err
	}
	err = b.w.Put(ref, tree.AsDict())
	if err != nil {
		return err
	}
	b.pageTree = tree
	b.pageTreeRef = ref
	return nil
}

// NewPage defines the page.  Only one page is supported.
func (b *Builder) NewPage(ref pdf.Reference, p *page.Page) error {
	if b.page != nil {
		return errors.New("document already has a page")
	}
	dict, err := p.AsDict()
	if err != nil {
		return err
	}
	err = b.w.Put(ref, dict)
	if err != nil {
		return err
	}
	b.page = p
	b.pageRef = ref
	return nil
}

// NewFont defines a font dictionary for one of the 14 standard fonts.
func (b *Builder) NewFont(ref pdf.Reference, name string) error {
	font, err := standard.Parse(name)
	if err != nil {
		return err
	}
	dict, err := font.Dict()
	if err != nil {
		return err
	}
	return b.w.Put(ref, dict)
}

// NewContentStream defines a content stream holding the given operators.
func (b *Builder) NewContentStream(ref pdf.Reference, data []byte) error {
	return b.w.Put(ref, &pdf.Stream{Data: data})
}

// NewInfo writes the document information dictionary.
func (b *Builder) NewInfo(info *pdf.Info) (pdf.Reference, error) {
	return b.w.Write(info.AsDict())
}

// NewMetadata writes an XMP metadata stream mirroring info.
func (b *Builder) NewMetadata(info *pdf.Info) (pdf.Reference, error) {
	stm, err := metadata.New(info)
	if err != nil {
		return 0, err
	}
	return stm.Embed(b.w)
}

// ReserveAnnotations allocates object numbers for n annotations.
// Each of them must be finalized using [Builder.FinalizeAnnotation]
// before the document is closed.
func (b *Builder) ReserveAnnotations(n int) []pdf.Reference {
	res := make([]pdf.Reference, n)
	for i := range res {
		ref := b.w.Alloc()
		b.annots[ref] = false
		res[i] = ref
	}
	return res
}

// FinalizeAnnotation defines a reserved link annotation.
// The rectangle is rounded to the precision used in the file.  The rounded
// rectangle must have positive width and height, must lie within the
// MediaBox of the page, and must not overlap any previously finalized
// annotation.
func (b *Builder) FinalizeAnnotation(ref pdf.Reference, r rect.Rect, uri string) error {
	r = pdf.RoundRect(r)
	done, reserved := b.annots[ref]
	if !reserved {
		return fmt.Errorf("annotation %s was not reserved", ref)
	}
	if done {
		return fmt.Errorf("annotation %s: %w", ref, pdf.ErrDuplicateObject)
	}
	if err := pdf.CheckRect(r); err != nil {
		return fmt.Errorf("annotation %s: %w", ref, err)
	}
	if b.page == nil {
		return errors.New("annotations must be finalized after the page is defined")
	}
	if !pdf.RectInside(r, pdf.RoundRect(b.page.MediaBox)) {
		return fmt.Errorf("annotation %s: rectangle %v outside the page", ref, r)
	}
	for _, other := range b.annotRect {
		if pdf.RectOverlap(r, other) {
			return fmt.Errorf("annotation %s: rectangle %v overlaps %v", ref, r, other)
		}
	}

	link := &annotation.Link{
		Rect:   r,
		Action: &action.URI{URI: uri},
	}
	dict, err := link.AsDict()
	if err != nil {
		return err
	}
	err = b.w.Put(ref, dict)
	if err != nil {
		return err
	}
	b.annots[ref] = true
	b.annotRect = append(b.annotRect, r)
	return nil
}

// Close checks the page tree and the annotations and serializes the
// document.  The info reference may be zero.
func (b *Builder) Close(catalog, info pdf.Reference) ([]byte, error) {
	if b.pageTree == nil {
		return nil, errors.New("missing page tree")
	}
	err := b.pageTree.CheckKids(b.w, b.pageTreeRef)
	if err != nil {
		return nil, err
	}
	if b.page == nil {
		return nil, errors.New("missing page")
	}
	for _, ref := range b.page.Annots {
		if !b.annots[ref] {
			return nil, fmt.Errorf("annotation %s: %w", ref, pdf.ErrUnwrittenObject)
		}
	}
	return b.w.Close(catalog, info)
}
