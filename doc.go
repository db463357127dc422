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

// Package resume generates one-page résumés as PDF files.
//
// The content of the résumé is described by a [Config].  The page is laid
// out from top to bottom as a list of blocks: single lines of text, a row
// of hyperlinks, and horizontal rules.  Every block declares how far the
// following block is moved down; no text measurement or line breaking is
// performed.
//
// [Generate] builds the object graph of the document using a [Builder],
// composes the content stream, and returns the complete PDF file:
//
//	data, err := resume.Generate(resume.DefaultConfig())
//
// Output is deterministic: the same configuration always produces the same
// bytes.
package resume
