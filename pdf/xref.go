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
	"io"
)

// writeXRefTable writes a cross-reference table with a single subsection,
// followed by the trailer dictionary.  Entry 0 is the head of the (empty)
// list of free objects, offsets[i] is the file position of object i+1.
func writeXRefTable(w io.Writer, offsets []int64, trailer Dict) error {
	_, err := fmt.Fprintf(w, "xref\n0 %d\n", len(offsets)+1)
	if err != nil {
		return err
	}
	_, err = w.Write([]byte("0000000000 65535 f\r\n"))
	if err != nil {
		return err
	}
	for _, pos := range offsets {
		_, err = fmt.Fprintf(w, "%010d %05d n\r\n", pos, 0)
		if err != nil {
			return err
		}
	}

	_, err = w.Write([]byte("trailer\n"))
	if err != nil {
		return err
	}
	return trailer.PDF(w)
}

type xRefEntry struct {
	Pos        int64
	Generation uint16
	InUse      bool
}

func (r *reader) findXRef() (int64, error) {
	idx := bytes.LastIndex(r.data, []byte("startxref"))
	if idx < 0 {
		return 0, &MalformedFileError{Err: errors.New("startxref not found")}
	}
	s := r.scannerAt(int64(idx + len("startxref")))
	s.SkipWhiteSpace()

	xRefPos, err := s.ReadInteger()
	if err != nil {
		return 0, err
	}
	if xRefPos <= 0 || int64(xRefPos) >= int64(len(r.data)) {
		return 0, &MalformedFileError{
			Pos: s.pos,
			Err: errors.New("invalid xref position"),
		}
	}
	return int64(xRefPos), nil
}

func readXRefTable(s *scanner) (map[uint32]*xRefEntry, Dict, error) {
	err := s.SkipString("xref")
	if err != nil {
		return nil, nil, err
	}
	s.SkipWhiteSpace()

	xref := make(map[uint32]*xRefEntry)
	for {
		c, ok := s.Peek()
		if !ok || c < '0' || c > '9' {
			break
		}

		start, err := s.ReadInteger()
		if err != nil {
			return nil, nil, err
		}
		s.SkipWhiteSpace()
		length, err := s.ReadInteger()
		if err != nil {
			return nil, nil, err
		}
		s.SkipWhiteSpace()
		if start < 0 || length < 0 {
			return nil, nil, s.error(errors.New("invalid xref subsection header"))
		}

		for i := start; i < start+length; i++ {
			pos, err := s.ReadInteger()
			if err != nil {
				return nil, nil, err
			}
			s.SkipWhiteSpace()
			gen, err := s.ReadInteger()
			if err != nil {
				return nil, nil, err
			}
			s.SkipWhiteSpace()
			kw := s.ReadKeyword()
			s.SkipWhiteSpace()
			if (kw != "n" && kw != "f") || gen < 0 || gen > 65535 {
				return nil, nil, s.error(fmt.Errorf("malformed xref entry for object %d", i))
			}
			if _, seen := xref[uint32(i)]; seen {
				return nil, nil, s.error(fmt.Errorf("duplicate xref entry for object %d", i))
			}
			xref[uint32(i)] = &xRefEntry{
				Pos:        int64(pos),
				Generation: uint16(gen),
				InUse:      kw == "n",
			}
		}
	}

	err = s.SkipString("trailer")
	if err != nil {
		return nil, nil, err
	}
	s.SkipWhiteSpace()
	trailer, err := s.ReadDict()
	if err != nil {
		return nil, nil, err
	}
	return xref, trailer, nil
}
