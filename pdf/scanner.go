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
	"strconv"
)

// scanner tokenizes PDF objects held in memory.
type scanner struct {
	buf []byte
	pos int64
}

func newScanner(buf []byte, pos int64) *scanner {
	return &scanner{buf: buf, pos: pos}
}

func (s *scanner) error(err error) *MalformedFileError {
	return &MalformedFileError{Pos: s.pos, Err: err}
}

func (s *scanner) atEOF() bool {
	return s.pos >= int64(len(s.buf))
}

// Peek returns the next byte without consuming it.
func (s *scanner) Peek() (byte, bool) {
	if s.atEOF() {
		return 0, false
	}
	return s.buf[s.pos], true
}

// HasPrefix reports whether the unread input starts with pat.
func (s *scanner) HasPrefix(pat string) bool {
	return !s.atEOF() && bytes.HasPrefix(s.buf[s.pos:], []byte(pat))
}

// SkipWhiteSpace skips all input until the next non-whitespace character.
// Comments are treated as white space.
func (s *scanner) SkipWhiteSpace() {
	for !s.atEOF() {
		c := s.buf[s.pos]
		switch {
		case isSpace[c]:
			s.pos++
		case c == '%':
			for !s.atEOF() && s.buf[s.pos] != '\n' && s.buf[s.pos] != '\r' {
				s.pos++
			}
		default:
			return
		}
	}
}

// SkipString consumes pat, which must be the next item in the input.
func (s *scanner) SkipString(pat string) error {
	if !s.HasPrefix(pat) {
		return s.error(fmt.Errorf("expected %q", pat))
	}
	s.pos += int64(len(pat))
	return nil
}

// ReadKeyword reads a sequence of regular characters.
func (s *scanner) ReadKeyword() string {
	start := s.pos
	for !s.atEOF() {
		c := s.buf[s.pos]
		if isSpace[c] || isDelimiter[c] {
			break
		}
		s.pos++
	}
	return string(s.buf[start:s.pos])
}

// ReadInteger reads an integer without leading white space.
func (s *scanner) ReadInteger() (Integer, error) {
	start := s.pos
	kw := s.ReadKeyword()
	x, err := strconv.ParseInt(kw, 10, 64)
	if err != nil {
		return 0, &MalformedFileError{Pos: start, Err: fmt.Errorf("expected integer but got %q", kw)}
	}
	return Integer(x), nil
}

// ReadObject reads the next PDF object.  Indirect references are recognized
// and returned as [Reference] values.  The PDF null object is returned as nil.
func (s *scanner) ReadObject() (Object, error) {
	s.SkipWhiteSpace()
	c, ok := s.Peek()
	if !ok {
		return nil, s.error(io.ErrUnexpectedEOF)
	}

	switch {
	case c == '/':
		return s.ReadName()
	case c == '(':
		return s.readLiteralString()
	case c == '<':
		if s.HasPrefix("<<") {
			return s.ReadDict()
		}
		return s.readHexString()
	case c == '[':
		return s.readArray()
	case c == '+' || c == '-' || c == '.' || c >= '0' && c <= '9':
		return s.readNumberOrReference()
	}

	start := s.pos
	kw := s.ReadKeyword()
	switch kw {
	case "true":
		return Boolean(true), nil
	case "false":
		return Boolean(false), nil
	case "null":
		return nil, nil
	}
	return nil, &MalformedFileError{Pos: start, Err: fmt.Errorf("unexpected token %q", kw)}
}

func (s *scanner) readNumberOrReference() (Object, error) {
	start := s.pos
	kw := s.ReadKeyword()
	x, err := strconv.ParseInt(kw, 10, 64)
	if err != nil {
		y, err := strconv.ParseFloat(kw, 64)
		if err != nil {
			return nil, &MalformedFileError{Pos: start, Err: fmt.Errorf("malformed number %q", kw)}
		}
		return Real(y), nil
	}

	if x <= 0 || x > 0xFFFFFFFF {
		return Integer(x), nil
	}

	// Check whether this is the start of a reference to an indirect object.
	save := s.pos
	s.SkipWhiteSpace()
	if c, ok := s.Peek(); ok && c >= '0' && c <= '9' {
		gen, err := strconv.ParseInt(s.ReadKeyword(), 10, 32)
		s.SkipWhiteSpace()
		if err == nil && gen >= 0 && gen <= 65535 && s.HasPrefix("R") {
			s.pos++
			if c, ok := s.Peek(); !ok || isSpace[c] || isDelimiter[c] {
				return NewReference(uint32(x), uint16(gen)), nil
			}
		}
	}
	s.pos = save
	return Integer(x), nil
}

// ReadName reads a PDF name object, decoding #xx escape sequences.
func (s *scanner) ReadName() (Name, error) {
	err := s.SkipString("/")
	if err != nil {
		return "", err
	}
	raw := s.ReadKeyword()
	var res []byte
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c == '#' {
			if i+3 > len(raw) {
				return "", s.error(errors.New("malformed name escape"))
			}
			x, err := strconv.ParseUint(raw[i+1:i+3], 16, 8)
			if err != nil {
				return "", s.error(errors.New("malformed name escape"))
			}
			c = byte(x)
			i += 2
		}
		res = append(res, c)
	}
	return Name(res), nil
}

func (s *scanner) readLiteralString() (String, error) {
	err := s.SkipString("(")
	if err != nil {
		return nil, err
	}

	var res []byte
	level := 0
	for {
		if s.atEOF() {
			return nil, s.error(io.ErrUnexpectedEOF)
		}
		c := s.buf[s.pos]
		s.pos++
		switch c {
		case '(':
			level++
		case ')':
			if level == 0 {
				return String(res), nil
			}
			level--
		case '\\':
			if s.atEOF() {
				return nil, s.error(io.ErrUnexpectedEOF)
			}
			c = s.buf[s.pos]
			s.pos++
			switch c {
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			case 't':
				c = '\t'
			case 'b':
				c = '\b'
			case 'f':
				c = '\f'
			case '\r':
				if p, ok := s.Peek(); ok && p == '\n' {
					s.pos++
				}
				continue
			case '\n':
				continue
			case '0', '1', '2', '3', '4', '5', '6', '7':
				x := int(c - '0')
				for k := 0; k < 2; k++ {
					p, ok := s.Peek()
					if !ok || p < '0' || p > '7' {
						break
					}
					x = 8*x + int(p-'0')
					s.pos++
				}
				c = byte(x)
			}
		}
		res = append(res, c)
	}
}

func (s *scanner) readHexString() (String, error) {
	err := s.SkipString("<")
	if err != nil {
		return nil, err
	}

	var res []byte
	var digits []byte
	for {
		if s.atEOF() {
			return nil, s.error(io.ErrUnexpectedEOF)
		}
		c := s.buf[s.pos]
		s.pos++
		if c == '>' {
			break
		}
		if isSpace[c] {
			continue
		}
		digits = append(digits, c)
	}
	if len(digits)%2 != 0 {
		digits = append(digits, '0')
	}
	for i := 0; i < len(digits); i += 2 {
		x, err := strconv.ParseUint(string(digits[i:i+2]), 16, 8)
		if err != nil {
			return nil, s.error(errors.New("malformed hex string"))
		}
		res = append(res, byte(x))
	}
	return String(res), nil
}

func (s *scanner) readArray() (Array, error) {
	err := s.SkipString("[")
	if err != nil {
		return nil, err
	}

	res := Array{}
	for {
		s.SkipWhiteSpace()
		if s.HasPrefix("]") {
			s.pos++
			return res, nil
		}
		obj, err := s.ReadObject()
		if err != nil {
			return nil, err
		}
		res = append(res, obj)
	}
}

// ReadDict reads a PDF dictionary.  Entries with null values are omitted.
func (s *scanner) ReadDict() (Dict, error) {
	err := s.SkipString("<<")
	if err != nil {
		return nil, err
	}

	res := Dict{}
	for {
		s.SkipWhiteSpace()
		if s.HasPrefix(">>") {
			s.pos += 2
			return res, nil
		}
		key, err := s.ReadName()
		if err != nil {
			return nil, err
		}
		val, err := s.ReadObject()
		if err != nil {
			return nil, err
		}
		if val != nil {
			res[key] = val
		}
	}
}

var (
	isSpace = map[byte]bool{
		0:  true,
		9:  true,
		10: true,
		12: true,
		13: true,
		32: true,
	}
	isDelimiter = map[byte]bool{
		'(': true,
		')': true,
		'<': true,
		'>': true,
		'[': true,
		']': true,
		'{': true,
		'}': true,
		'/': true,
		'%': true,
	}
)
