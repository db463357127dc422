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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/resume/font/standard"
	"seehuhn.de/go/resume/graphics"
)

func TestDefaultConfigValid(t *testing.T) {
	err := DefaultConfig().Validate()
	if err != nil {
		t.Fatal(err)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		field  string
		modify func(cfg *Config)
	}{
		{"version", func(cfg *Config) { cfg.Version = "3.0" }},
		{"version", func(cfg *Config) { cfg.Version = "1.3"; cfg.Title = "x" }},
		{"font", func(cfg *Config) { cfg.Font = "Arial" }},
		{"font_resource", func(cfg *Config) { cfg.FontResource = "" }},
		{"page_width/page_height", func(cfg *Config) { cfg.PageWidth = 0 }},
		{"top", func(cfg *Config) { cfg.Top = math.NaN() }},
		{"rule.color", func(cfg *Config) { cfg.Rule.Color = graphics.RGB{0, 0, 2} }},
		{"rule.line_width", func(cfg *Config) { cfg.Rule.LineWidth = -1 }},
		{"blocks[0]", func(cfg *Config) { cfg.Blocks[0].Rule = true }},
		{"blocks[1]", func(cfg *Config) { cfg.Blocks[1].Text = nil }},
		{"blocks[0].advance", func(cfg *Config) { cfg.Blocks[0].Advance = -25 }},
		{"blocks[0].text.size", func(cfg *Config) { cfg.Blocks[0].Text.Size = 0 }},
		{"blocks[0].text.x", func(cfg *Config) { cfg.Blocks[0].Text.X = math.Inf(1) }},
		{"blocks[0].text.color", func(cfg *Config) { cfg.Blocks[0].Text.Color = &graphics.RGB{math.NaN(), 0, 0} }},
		{"blocks[2].text.content", func(cfg *Config) { cfg.Blocks[2].Text.Content = "東京, 日本" }},
		{"blocks[3].links.items", func(cfg *Config) { cfg.Blocks[3].Links.Items = nil }},
		{"blocks[3].links", func(cfg *Config) { cfg.Blocks[3].Links.Above = -2 }},
		{"blocks[3].links.size", func(cfg *Config) { cfg.Blocks[3].Links.Size = -10 }},
		{"blocks[3].links.items[1]", func(cfg *Config) { cfg.Blocks[3].Links.Items[1].Width = 0 }},
		{"blocks[3].links.items[2].uri", func(cfg *Config) { cfg.Blocks[3].Links.Items[2].URI = "github.com/lordtt13" }},
		{"blocks[3].links.items[0].label", func(cfg *Config) { cfg.Blocks[3].Links.Items[0].Label = "✉ mail" }},
	}
	for _, test := range cases {
		t.Run(test.field, func(t *testing.T) {
			cfg := DefaultConfig()
			test.modify(cfg)

			err := cfg.Validate()
			var cfgErr *InvalidConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected InvalidConfigError, got %v", err)
			}
			if cfgErr.Field != test.field {
				t.Errorf("error for field %q, want %q", cfgErr.Field, test.field)
			}

			data, err := Generate(cfg)
			if err == nil || data != nil {
				t.Error("invalid configuration accepted by Generate")
			}
		})
	}
}

func TestUnencodableText(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Blocks[0].Text.Content = "Tanmay Thakur 🚀"
	_, err := Generate(cfg)
	var encErr *standard.EncodingError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected EncodingError, got %v", err)
	}
	if encErr.Rune != '🚀' {
		t.Errorf("wrong rune %q", encErr.Rune)
	}
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
font: Times-Roman
top: 780
title: My Résumé
rule:
  x0: 40
  x1: 555
  line_width: 0.5
  color: [0.5, 0.5, 0.5]
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultConfig()
	want.Font = "Times-Roman"
	want.Top = 780
	want.Title = "My Résumé"
	want.Rule = RuleStyle{X0: 40, X1: 555, LineWidth: 0.5, Color: graphics.Gray(0.5)}
	if d := cmp.Diff(want, cfg); d != "" {
		t.Errorf("wrong config (-want +got):\n%s", d)
	}
	if err := cfg.Validate(); err != nil {
		t.Error(err)
	}
}

func TestParseConfigBlocks(t *testing.T) {
	data := []byte(`
blocks:
  - text: {size: 20, x: 72, color: [0, 0, 0], content: "Jane Doe"}
    advance: 20
  - links:
      size: 10
      above: 10
      below: 2
      items:
        - {x: 72, width: 100, label: "jane@example.com", uri: "mailto:jane@example.com"}
    advance: 15
  - rule: true
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	black := graphics.Black
	want := []Block{
		{Text: &Text{Size: 20, X: 72, Color: &black, Content: "Jane Doe"}, Advance: 20},
		{
			Links: &Links{
				Size:  10,
				Above: 10,
				Below: 2,
				Items: []Link{{X: 72, Width: 100, Label: "jane@example.com", URI: "mailto:jane@example.com"}},
			},
			Advance: 15,
		},
		{Rule: true},
	}
	if d := cmp.Diff(want, cfg.Blocks); d != "" {
		t.Errorf("wrong blocks (-want +got):\n%s", d)
	}

	pdfData, err := Generate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(pdfData) == 0 {
		t.Error("no output")
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, data := range []string{
		"top: [1, 2]",
		"rule: {color: [1, 2]}",
		"blocks: {}",
		"\tfont: x",
	} {
		_, err := ParseConfig([]byte(data))
		if err == nil {
			t.Errorf("%q: invalid YAML accepted", data)
		}
	}
}

func TestConfigMarshal(t *testing.T) {
	cfg := DefaultConfig()
	data, err := cfg.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	cfg2, err := ParseConfig(data)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(cfg, cfg2); d != "" {
		t.Errorf("round trip failed (-want +got):\n%s", d)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.yaml")
	err := os.WriteFile(path, []byte("author: Tanmay Thakur\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Author != "Tanmay Thakur" || len(cfg.Blocks) != len(DefaultConfig().Blocks) {
		t.Errorf("wrong config %#v", cfg)
	}

	_, err = LoadConfig(filepath.Join(dir, "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}
