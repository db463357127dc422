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
	"errors"
	"strconv"
)

// Errors reported when an object graph cannot be serialized.
var (
	ErrDuplicateObject   = errors.New("object already written")
	ErrDanglingReference = errors.New("reference to undefined object")
	ErrUnwrittenObject   = errors.New("object allocated but never written")
	ErrDegenerateRect    = errors.New("degenerate rectangle")
)

// MalformedFileError indicates that a PDF file could not be parsed.
type MalformedFileError struct {
	Pos int64
	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Pos > 0 {
		middle = " at byte " + strconv.FormatInt(err.Pos, 10)
	}
	tail := ""
	if err.Err != nil {
		tail = ": " + err.Err.Error()
	}
	return "malformed PDF file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
