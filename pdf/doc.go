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

// Package pdf implements the native PDF object types, an in-memory object
// store which serializes to a complete PDF file, and a reader for the files
// produced this way.
//
// A Writer keeps all objects of a document in memory.  Object numbers are
// allocated by the Writer, so that forward references can be created before
// the referenced object is known:
//
//	w := pdf.NewWriter(pdf.V1_7)
//	catalogRef := w.Alloc()
//	pagesRef := w.Alloc()
//	... use w.Put() to define every allocated object ...
//	data, err := w.Close(catalogRef, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Close checks that every reference resolves to an object before any output
// is produced.  If the check fails, no data is returned.
//
// The following types implement the native PDF object types.
// All of these implement the [Object] interface:
//
//	Array
//	Boolean
//	Dict
//	Integer
//	Name
//	Real
//	Reference
//	Stream
//	String
package pdf
