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

package graphics

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Writer writes a PDF content stream.
type Writer struct {
	Content io.Writer
	Err     error

	currentObject objectType

	State
	stack []State

	nesting []pairType
}

type pairType byte

const (
	pairTypeQ  pairType = iota + 1 // q ... Q
	pairTypeBT                     // BT ... ET
)

// NewWriter allocates a new Writer object.
func NewWriter(out io.Writer) *Writer {
	return &Writer{
		Content:       out,
		currentObject: objPage,
		State:         NewState(),
	}
}

// Close checks that all q/Q and BT/ET pairs have been closed and that no
// path construction is pending.  The first error encountered while writing
// the content stream, if any, is returned.
func (w *Writer) Close() error {
	if w.Err != nil {
		return w.Err
	}
	if len(w.nesting) > 0 {
		switch w.nesting[len(w.nesting)-1] {
		case pairTypeBT:
			return errors.New("unclosed text object")
		default:
			return errors.New("unbalanced PushGraphicsState")
		}
	}
	if w.currentObject != objPage {
		return fmt.Errorf("content stream ends inside %s object", w.currentObject)
	}
	return nil
}

// isValid returns true, if the current graphics object is one of the given
// types and if w.Err is nil.  Otherwise it sets w.Err and returns false.
func (w *Writer) isValid(cmd string, ss objectType) bool {
	if w.Err != nil {
		return false
	}

	if w.currentObject&ss != 0 {
		return true
	}

	w.Err = fmt.Errorf("unexpected state %q for %q", w.currentObject, cmd)
	return false
}

func (w *Writer) coord(x float64) string {
	return format(x)
}

// See Figure 9 (p. 113) of PDF 32000-1:2008.
type objectType int

const (
	objPage objectType = 1 << iota
	objPath
	objText
)

func (s objectType) String() string {
	switch s {
	case objPage:
		return "page"
	case objPath:
		return "path"
	case objText:
		return "text"
	default:
		return fmt.Sprintf("objectType(%d)", s)
	}
}

func format(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
