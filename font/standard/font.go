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

// Package standard provides access to the 14 standard PDF fonts.
//
// The standard fonts are never embedded.  Text is encoded using
// WinAnsiEncoding, except for the two symbolic fonts, which use their
// built-in encodings.
package standard

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"

	"seehuhn.de/go/resume/pdf"
)

// Font identifies the individual fonts.
type Font string

// Constants for the 14 standard PDF fonts.
const (
	Courier              Font = "Courier"
	CourierBold          Font = "Courier-Bold"
	CourierBoldOblique   Font = "Courier-BoldOblique"
	CourierOblique       Font = "Courier-Oblique"
	Helvetica            Font = "Helvetica"
	HelveticaBold        Font = "Helvetica-Bold"
	HelveticaBoldOblique Font = "Helvetica-BoldOblique"
	HelveticaOblique     Font = "Helvetica-Oblique"
	TimesRoman           Font = "Times-Roman"
	TimesBold            Font = "Times-Bold"
	TimesBoldItalic      Font = "Times-BoldItalic"
	TimesItalic          Font = "Times-Italic"
	Symbol               Font = "Symbol"
	ZapfDingbats         Font = "ZapfDingbats"
)

// All contains the 14 standard fonts.
var All = []Font{
	Courier,
	CourierBold,
	CourierBoldOblique,
	CourierOblique,
	Helvetica,
	HelveticaBold,
	HelveticaBoldOblique,
	HelveticaOblique,
	TimesRoman,
	TimesBold,
	TimesBoldItalic,
	TimesItalic,
	Symbol,
	ZapfDingbats,
}

// Parse converts a font name into a Font.
// An error is returned if the name is not one of the standard fonts.
func Parse(name string) (Font, error) {
	f := Font(name)
	if !f.IsValid() {
		return "", fmt.Errorf("%q is not a standard font", name)
	}
	return f, nil
}

// IsValid reports whether f is one of the 14 standard fonts.
func (f Font) IsValid() bool {
	for _, g := range All {
		if f == g {
			return true
		}
	}
	return false
}

// IsSymbolic reports whether the font uses a built-in symbolic encoding.
func (f Font) IsSymbolic() bool {
	return f == Symbol || f == ZapfDingbats
}

// Dict returns the font dictionary for f.
func (f Font) Dict() (pdf.Dict, error) {
	if !f.IsValid() {
		return nil, fmt.Errorf("%q is not a standard font", string(f))
	}
	dict := pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(f),
	}
	if !f.IsSymbolic() {
		dict["Encoding"] = pdf.Name("WinAnsiEncoding")
	}
	return dict, nil
}

// Encode converts UTF-8 text into the single-byte encoding of the font.
// The text is normalized to NFC first.  For the symbolic fonts only
// printable ASCII is accepted, and the bytes select glyphs from the
// built-in encoding.
//
// If a character cannot be represented, an [*EncodingError] is returned.
func (f Font) Encode(text string) (pdf.String, error) {
	text = norm.NFC.String(text)

	res := make(pdf.String, 0, len(text))
	for _, r := range text {
		if r < 0x20 || r >= 0x7F && r <= 0x9F {
			return nil, &EncodingError{Font: f, Rune: r}
		}
		if r < 0x7F {
			res = append(res, byte(r))
			continue
		}
		if f.IsSymbolic() {
			return nil, &EncodingError{Font: f, Rune: r}
		}
		c, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			return nil, &EncodingError{Font: f, Rune: r}
		}
		res = append(res, c)
	}
	return res, nil
}

// EncodingError is returned by [Font.Encode] if a character cannot be
// shown using the font.
type EncodingError struct {
	Font Font
	Rune rune
}

func (err *EncodingError) Error() string {
	return fmt.Sprintf("font %s cannot show %q (%U)", err.Font, err.Rune, err.Rune)
}
