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

// Package action implements PDF actions.
//
// Only URI actions are supported.  See section 12.6.4.8 of ISO 32000-2:2020.
package action

import (
	"errors"
	"fmt"
	"net/url"

	"seehuhn.de/go/resume/pdf"
)

// URI represents a URI action that resolves a uniform resource identifier.
type URI struct {
	// URI is the uniform resource identifier to resolve.
	// It must be absolute and consist of printable 7-bit ASCII characters.
	URI string
}

// Validate checks that the URI can be stored in a URI action.
func (a *URI) Validate() error {
	if a.URI == "" {
		return errors.New("URI action must have a non-empty URI")
	}
	for i := 0; i < len(a.URI); i++ {
		c := a.URI[i]
		if c <= 0x20 || c >= 0x7F {
			return fmt.Errorf("URI %q: invalid character at position %d", a.URI, i)
		}
	}
	u, err := url.Parse(a.URI)
	if err != nil {
		return err
	}
	if u.Scheme == "" {
		return fmt.Errorf("URI %q is not absolute", a.URI)
	}
	return nil
}

// AsDict returns the action dictionary.
func (a *URI) AsDict() (pdf.Dict, error) {
	err := a.Validate()
	if err != nil {
		return nil, err
	}
	dict := pdf.Dict{
		"S":   pdf.Name("URI"),
		"URI": pdf.String(a.URI),
	}
	return dict, nil
}

// Decode reads a URI action from its dictionary.
func Decode(dict pdf.Dict) (*URI, error) {
	if dict["S"] != pdf.Name("URI") {
		return nil, fmt.Errorf("unsupported action type %s", pdf.Format(dict["S"]))
	}
	uri, ok := dict["URI"].(pdf.String)
	if !ok {
		return nil, errors.New("URI action without /URI")
	}
	return &URI{URI: string(uri)}, nil
}
