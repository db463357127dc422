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
	"golang.org/x/exp/slices"

	"seehuhn.de/go/resume/page"
	"seehuhn.de/go/resume/pdf"
)

// Generate produces the PDF file for the given configuration.
// No data is returned if the configuration is invalid or if the
// document cannot be constructed.
func Generate(cfg *Config) ([]byte, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}
	ver, err := pdf.ParseVersion(cfg.Version)
	if err != nil {
		return nil, err
	}

	numLinks := 0
	for _, b := range cfg.Blocks {
		if b.Links != nil {
			numLinks += len(b.Links.Items)
		}
	}

	b := NewBuilder(ver)
	catalogRef := b.Alloc()
	pagesRef := b.Alloc()
	pageRef := b.Alloc()
	fontRef := b.Alloc()
	contentRef := b.Alloc()
	annots := b.ReserveAnnotations(numLinks)

	var infoRef, metadataRef pdf.Reference
	if info := cfg.Info(); info != nil {
		infoRef, err = b.NewInfo(info)
		if err != nil {
			return nil, err
		}
		metadataRef, err = b.NewMetadata(info)
		if err != nil {
			return nil, err
		}
	}

	err = b.NewCatalog(catalogRef, pagesRef, metadataRef)
	if err != nil {
		return nil, err
	}
	err = b.NewPageTree(pagesRef, 1, []pdf.Reference{pageRef})
	if err != nil {
		return nil, err
	}
	err = b.NewPage(pageRef, &page.Page{
		MediaBox: cfg.MediaBox(),
		Parent:   pagesRef,
		Contents: contentRef,
		Fonts:    map[pdf.Name]pdf.Reference{pdf.Name(cfg.FontResource): fontRef},
		Annots:   annots,
	})
	if err != nil {
		return nil, err
	}
	err = b.NewFont(fontRef, cfg.Font)
	if err != nil {
		return nil, err
	}

	c, err := compose(cfg)
	if err != nil {
		return nil, err
	}
	err = b.NewContentStream(contentRef, c.Content)
	if err != nil {
		return nil, err
	}
	for i, link := range annotationOrder(c.Links) {
		err = b.FinalizeAnnotation(annots[i], link.Rect, link.URI)
		if err != nil {
			return nil, err
		}
	}

	return b.Close(catalogRef, infoRef)
}

// GenerateDefault produces the built-in résumé.
func GenerateDefault() ([]byte, error) {
	return Generate(DefaultConfig())
}

// annotationOrder returns the links in the order of their annotations
// in the /Annots array of the page.
func annotationOrder(links []placedLink) []placedLink {
	res := slices.Clone(links)
	slices.SortStableFunc(res, func(a, b placedLink) int {
		return a.Order - b.Order
	})
	return res
}
