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

package resume

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/resume/action"
	"seehuhn.de/go/resume/font/standard"
	"seehuhn.de/go/resume/graphics"
	"seehuhn.de/go/resume/pdf"
)

// Config describes the content and the layout of a résumé.
type Config struct {
	// Version is the PDF version of the output file.
	Version string `yaml:"version"`

	// Font is one of the 14 standard PDF fonts.  All text uses this font.
	Font string `yaml:"font"`

	// FontResource is the name used for the font in the content stream.
	FontResource string `yaml:"font_resource"`

	// PageWidth and PageHeight give the size of the page, in PDF units.
	PageWidth  float64 `yaml:"page_width"`
	PageHeight float64 `yaml:"page_height"`

	// Top is the baseline of the first block.
	Top float64 `yaml:"top"`

	// Rule describes the appearance of horizontal rules.
	Rule RuleStyle `yaml:"rule"`

	// The following fields are optional.  If any of them is set, the
	// document gets an information dictionary and an XMP metadata stream.
	Title    string `yaml:"title,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Subject  string `yaml:"subject,omitempty"`
	Keywords string `yaml:"keywords,omitempty"`
	Creator  string `yaml:"creator,omitempty"`
	Producer string `yaml:"producer,omitempty"`

	Blocks []Block `yaml:"blocks"`
}

// RuleStyle describes the horizontal rules separating résumé sections.
type RuleStyle struct {
	X0        float64      `yaml:"x0"`
	X1        float64      `yaml:"x1"`
	LineWidth float64      `yaml:"line_width"`
	Color     graphics.RGB `yaml:"color"`
}

// Block is one item of the page.  Exactly one of Text, Links and Rule
// must be set.
type Block struct {
	Text  *Text  `yaml:"text,omitempty"`
	Links *Links `yaml:"links,omitempty"`
	Rule  bool   `yaml:"rule,omitempty"`

	// Advance is the distance between the baseline of this block and the
	// baseline of the next block.
	Advance float64 `yaml:"advance"`
}

// Text is a single line of text.
type Text struct {
	Size float64 `yaml:"size"`
	X    float64 `yaml:"x"`

	// Color, if set, changes the fill color before the text is shown.
	// Otherwise the color of the previous block is kept.
	Color *graphics.RGB `yaml:"color,omitempty"`

	Content string `yaml:"content"`
}

// Links is a row of hyperlinks sharing a baseline.
type Links struct {
	Size  float64       `yaml:"size"`
	Color *graphics.RGB `yaml:"color,omitempty"`

	// Above and Below give the extent of the active link area above
	// and below the baseline.
	Above float64 `yaml:"above"`
	Below float64 `yaml:"below"`

	Items []Link `yaml:"items"`
}

// Link is a single hyperlink.  Since text is not measured, the width of
// the active area must be given explicitly.
type Link struct {
	X     float64 `yaml:"x"`
	Width float64 `yaml:"width"`
	Label string  `yaml:"label"`
	URI   string  `yaml:"uri"`

	// Order determines the position of the link annotation in the
	// /Annots array of the page, and thus its object number.  Links with
	// smaller Order come first; ties keep the order of the script.
	Order int `yaml:"order,omitempty"`
}

// InvalidConfigError is returned when a configuration value cannot be
// used.  Field names the offending value, for example "blocks[3].text".
type InvalidConfigError struct {
	Field string
	Err   error
}

func (err *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid config value %s: %v", err.Field, err.Err)
}

func (err *InvalidConfigError) Unwrap() error {
	return err.Err
}

func invalid(field string, err error) error {
	return &InvalidConfigError{Field: field, Err: err}
}

// LoadConfig reads a YAML configuration file.  Values missing from the
// file are taken from [DefaultConfig]; a "blocks" list in the file replaces
// the default content as a whole.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML configuration, starting from [DefaultConfig].
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (cfg *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// MediaBox returns the page rectangle.
func (cfg *Config) MediaBox() rect.Rect {
	return rect.Rect{URx: cfg.PageWidth, URy: cfg.PageHeight}
}

// Info returns the document information, or nil if no metadata
// is configured.
func (cfg *Config) Info() *pdf.Info {
	info := &pdf.Info{
		Title:    cfg.Title,
		Author:   cfg.Author,
		Subject:  cfg.Subject,
		Keywords: cfg.Keywords,
		Creator:  cfg.Creator,
		Producer: cfg.Producer,
	}
	if *info == (pdf.Info{}) {
		return nil
	}
	return info
}

// Validate checks the configuration.  All text is checked to be
// representable in the configured font.  The first problem found is
// returned as an [*InvalidConfigError].
func (cfg *Config) Validate() error {
	ver, err := pdf.ParseVersion(cfg.Version)
	if err != nil {
		return invalid("version", err)
	}
	if cfg.Info() != nil && ver < pdf.V1_4 {
		return invalid("version", errors.New("metadata requires PDF 1.4 or newer"))
	}
	font, err := standard.Parse(cfg.Font)
	if err != nil {
		return invalid("font", err)
	}
	if cfg.FontResource == "" {
		return invalid("font_resource", errors.New("missing name"))
	}
	if err := pdf.CheckRect(cfg.MediaBox()); err != nil {
		return invalid("page_width/page_height", err)
	}
	if !isFinite(cfg.Top) {
		return invalid("top", fmt.Errorf("invalid position %g", cfg.Top))
	}

	if !isFinite(cfg.Rule.X0) || !isFinite(cfg.Rule.X1) {
		return invalid("rule", errors.New("invalid end points"))
	}
	if cfg.Rule.LineWidth < 0 || !isFinite(cfg.Rule.LineWidth) {
		return invalid("rule.line_width", fmt.Errorf("invalid width %g", cfg.Rule.LineWidth))
	}
	if err := cfg.Rule.Color.Validate(); err != nil {
		return invalid("rule.color", err)
	}

	for i := range cfg.Blocks {
		err := cfg.Blocks[i].validate(font)
		if err != nil {
			var cfgErr *InvalidConfigError
			if errors.As(err, &cfgErr) {
				cfgErr.Field = fmt.Sprintf("blocks[%d].%s", i, cfgErr.Field)
				return cfgErr
			}
			return invalid(fmt.Sprintf("blocks[%d]", i), err)
		}
	}
	return nil
}

func (b *Block) validate(font standard.Font) error {
	n := 0
	if b.Text != nil {
		n++
	}
	if b.Links != nil {
		n++
	}
	if b.Rule {
		n++
	}
	if n != 1 {
		return errors.New("exactly one of text, links and rule must be given")
	}
	if b.Advance < 0 || !isFinite(b.Advance) {
		return invalid("advance", fmt.Errorf("invalid advance %g", b.Advance))
	}

	switch {
	case b.Text != nil:
		t := b.Text
		if t.Size <= 0 || !isFinite(t.Size) {
			return invalid("text.size", fmt.Errorf("invalid font size %g", t.Size))
		}
		if !isFinite(t.X) {
			return invalid("text.x", fmt.Errorf("invalid position %g", t.X))
		}
		if t.Color != nil {
			if err := t.Color.Validate(); err != nil {
				return invalid("text.color", err)
			}
		}
		if _, err := font.Encode(t.Content); err != nil {
			return invalid("text.content", err)
		}

	case b.Links != nil:
		l := b.Links
		if l.Size <= 0 || !isFinite(l.Size) {
			return invalid("links.size", fmt.Errorf("invalid font size %g", l.Size))
		}
		if l.Color != nil {
			if err := l.Color.Validate(); err != nil {
				return invalid("links.color", err)
			}
		}
		if !isFinite(l.Above) || !isFinite(l.Below) || l.Above+l.Below <= 0 {
			return invalid("links", fmt.Errorf("invalid link height %g+%g", l.Above, l.Below))
		}
		if len(l.Items) == 0 {
			return invalid("links.items", errors.New("no links"))
		}
		for j, item := range l.Items {
			field := fmt.Sprintf("links.items[%d]", j)
			if !isFinite(item.X) || item.Width <= 0 || !isFinite(item.Width) {
				return invalid(field, fmt.Errorf("invalid link area x=%g width=%g", item.X, item.Width))
			}
			if _, err := font.Encode(item.Label); err != nil {
				return invalid(field+".label", err)
			}
			if err := (&action.URI{URI: item.URI}).Validate(); err != nil {
				return invalid(field+".uri", err)
			}
		}
	}
	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
