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

// Resume-pdf writes a one-page résumé as a PDF file.
//
// Usage:
//
//	resume-pdf [-config resume.yaml] [-o resume.pdf] [-check] [-dump-config]
//
// Without -config the built-in résumé is used.  Without -o the PDF file is
// written to standard output, unless standard output is a terminal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/resume"
	"seehuhn.de/go/resume/annotation"
	"seehuhn.de/go/resume/page"
	"seehuhn.de/go/resume/pagetree"
	"seehuhn.de/go/resume/pdf"
)

func main() {
	configFile := flag.String("config", "", "YAML configuration file")
	outFile := flag.String("o", "", "output file name")
	check := flag.Bool("check", false, "parse the generated file and print a summary")
	dumpConfig := flag.Bool("dump-config", false, "print the effective configuration and exit")
	flag.Parse()

	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	err := run(*configFile, *outFile, *check, *dumpConfig)
	if err != nil {
		log.Fatal(err)
	}
}

func run(configFile, outFile string, check, dumpConfig bool) error {
	cfg := resume.DefaultConfig()
	if configFile != "" {
		var err error
		cfg, err = resume.LoadConfig(configFile)
		if err != nil {
			return err
		}
	}

	if dumpConfig {
		data, err := cfg.Marshal()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	data, err := resume.Generate(cfg)
	if err != nil {
		return err
	}

	if check {
		err = summarize(os.Stderr, data)
		if err != nil {
			return fmt.Errorf("generated file is invalid: %w", err)
		}
	}

	if outFile == "" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("refusing to write PDF data to a terminal, use -o")
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outFile, data, 0o644)
}

// summarize parses a PDF file and prints its pages, fonts and links.
func summarize(w io.Writer, data []byte) error {
	f, err := pdf.Read(data)
	if err != nil {
		return err
	}
	err = f.CheckReferences()
	if err != nil {
		return err
	}

	numPages, err := pagetree.NumPages(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "PDF-%s, %d bytes, %d objects, %d page(s)\n",
		f.Version, len(data), f.NumObjects(), numPages)

	for i := 0; i < numPages; i++ {
		ref, dict, err := pagetree.GetPage(f, i)
		if err != nil {
			return err
		}
		p, err := page.Decode(dict)
		if err != nil {
			return err
		}
		box := p.MediaBox
		fmt.Fprintf(w, "page %d (%s): MediaBox [%g %g %g %g]\n",
			i+1, ref, box.LLx, box.LLy, box.URx, box.URy)

		for _, name := range p.FontNames() {
			font, err := f.GetDict(p.Fonts[name])
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "  font /%s: %s\n", name, pdf.Format(font["BaseFont"]))
		}

		for _, ref := range p.Annots {
			dict, err := f.GetDict(ref)
			if err != nil {
				return err
			}
			link, err := annotation.Decode(dict)
			if err != nil {
				return err
			}
			r := link.Rect
			fmt.Fprintf(w, "  link [%g %g %g %g] %s\n",
				r.LLx, r.LLy, r.URx, r.URy, link.Action.URI)
		}
	}
	return nil
}
