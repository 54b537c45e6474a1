/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Command pdftext extracts text, HTML or SVG from a PDF file, writing the
// result into the current directory under the input file's base name with
// the matching extension.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jrmuizel/pdf-extract/extractor"
)

func main() {
	format := flag.String("format", "txt", "output format: txt, html or svg")
	password := flag.String("password", "", "password to decrypt the document, if encrypted")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: pdftext [-format txt|html|svg] [-password pw] file.pdf")
		os.Exit(1)
	}
	if err := run(flag.Arg(0), *format, *password); err != nil {
		fmt.Fprintln(os.Stderr, "pdftext:", err)
		os.Exit(1)
	}
}

func run(path, format, password string) error {
	ext, err := extFor(format)
	if err != nil {
		return err
	}

	// The document loader, CMap parser and Type1 encoding parser are
	// external collaborators (PDF object parsing is out of this library's
	// scope); an embedding application wires in its own implementations
	// here. With no loader configured, x.Open fails fast with a clear error
	// instead of reading garbage.
	x := extractor.New(nil, nil, nil, nil)
	doc, err := x.Open(path)
	if err != nil {
		return err
	}

	if doc.IsEncrypted() {
		if password == "" {
			return fmt.Errorf("%s is encrypted; pass -password", path)
		}
		if err := doc.Decrypt([]byte(password)); err != nil {
			return err
		}
	}

	sink, render := extractor.NewOutputSink(format)
	if sink == nil {
		return fmt.Errorf("unsupported format %q", format)
	}
	if err := doc.OutputDoc(sink); err != nil {
		return err
	}

	outPath := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)) + ext
	return os.WriteFile(outPath, []byte(render()), 0o644)
}

func extFor(format string) (string, error) {
	switch format {
	case "txt":
		return ".txt", nil
	case "html":
		return ".html", nil
	case "svg":
		return ".svg", nil
	default:
		return "", fmt.Errorf("unsupported format %q", format)
	}
}
