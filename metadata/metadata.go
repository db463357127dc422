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

// Package metadata implements XMP metadata streams.
//
// See section 14.3.2 of ISO 32000-2:2020.
package metadata

import (
	"bytes"
	"errors"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/resume/pdf"
)

// Stream represents an XMP metadata stream for a document.
type Stream struct {
	Data *xmp.Packet
}

// PDF is the XMP namespace for PDF metadata.
// See https://developer.adobe.com/xmp/docs/XMPNamespaces/pdf/
type PDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

var defaultLang = language.MustParse("x-default")

// New creates an XMP packet which mirrors the fields of the document
// information dictionary.  No dates are included.
func New(info *pdf.Info) (*Stream, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(defaultLang, info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(defaultLang, info.Subject)
	}

	pdfInfo := &PDF{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	models := []any{dc, pdfInfo}
	if info.Creator != "" {
		basic := &xmp.Basic{CreatorTool: xmp.NewAgentName(info.Creator)}
		models = append(models, basic)
	}

	packet := xmp.NewPacket()
	err := packet.Set(models...)
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}

// Embed adds the XMP metadata stream to the PDF file.
// The stream is not compressed, so that the metadata remains readable
// by tools which do not understand PDF.
func (s *Stream) Embed(w *pdf.Writer) (pdf.Reference, error) {
	if w.Version < pdf.V1_4 {
		return 0, errors.New("XMP metadata streams require PDF 1.4")
	}

	body := &bytes.Buffer{}
	err := s.Data.Write(body, &xmp.PacketOptions{Pretty: true})
	if err != nil {
		return 0, err
	}

	stm := &pdf.Stream{
		Dict: pdf.Dict{
			"Type":    pdf.Name("Metadata"),
			"Subtype": pdf.Name("XML"),
		},
		Data: body.Bytes(),
	}
	return w.Write(stm)
}

// Decode reads an XMP metadata stream.
func Decode(stm *pdf.Stream) (*Stream, error) {
	if stm.Dict["Type"] != pdf.Name("Metadata") {
		return nil, errors.New("not a metadata stream")
	}
	packet, err := xmp.Read(bytes.NewReader(stm.Data))
	if err != nil {
		return nil, err
	}
	return &Stream{Data: packet}, nil
}
