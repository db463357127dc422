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

import "errors"

// Catalog represents a PDF Document Catalog.  The only required field in this
// structure is Pages, which specifies the root of the page tree.
//
// The Document Catalog is documented in section 7.7.2 of ISO 32000-2:2020.
type Catalog struct {
	Pages Reference

	// Metadata (optional) refers to an XMP metadata stream.
	Metadata Reference
}

// AsDict returns the catalog dictionary.
func (c *Catalog) AsDict() (Dict, error) {
	if c.Pages == 0 {
		return nil, errors.New("missing /Pages in catalog")
	}
	dict := Dict{
		"Type":  Name("Catalog"),
		"Pages": c.Pages,
	}
	if c.Metadata != 0 {
		dict["Metadata"] = c.Metadata
	}
	return dict, nil
}

// Info represents a PDF Document Information Dictionary.
// Empty fields are omitted.  Dates are not supported.
//
// The Document Information Dictionary is documented in section 14.3.3 of
// ISO 32000-2:2020.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string
}

// AsDict returns the document information dictionary.
func (info *Info) AsDict() Dict {
	dict := Dict{}
	add := func(key Name, val string) {
		if val != "" {
			dict[key] = TextString(val)
		}
	}
	add("Title", info.Title)
	add("Author", info.Author)
	add("Subject", info.Subject)
	add("Keywords", info.Keywords)
	add("Creator", info.Creator)
	add("Producer", info.Producer)
	return dict
}
