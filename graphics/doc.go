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

// Package graphics writes PDF content streams.
//
// A [Writer] emits one operator per line.  Each method checks that the
// operator is allowed in the current graphics object (page level, path
// construction, or inside a text object) and that operands are valid.
// The first error is stored in [Writer.Err] and all later calls are ignored.
//
// Operators are written exactly as requested.  In particular, setting a
// color or font which is already in effect produces a new operator in the
// content stream.
package graphics
