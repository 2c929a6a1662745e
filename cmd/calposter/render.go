package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/posterlab/calgrid"
)

// writePoster renders through the sink matching the requested format and
// writes the document to path. Rendering happens before the file is
// created, so a failed layout never leaves a partial output file behind.
func writePoster(path, format string, width, height float64, render func(calgrid.RenderSink) error) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
		if format == "" {
			format = "pdf"
		}
	}

	switch strings.ToLower(format) {
	case "pdf":
		sink := calgrid.NewPDFSink(width, height)
		if err := render(sink); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return sink.Output(f)

	case "png":
		sink := calgrid.NewImageSink(int(width), int(height), calgrid.NewFontCache())
		if err := render(sink); err != nil {
			return err
		}
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		return sink.EncodePNG(f)

	case "svg":
		var buf strings.Builder
		sink := calgrid.NewSVGSink(&buf, width, height, calgrid.NewFontCache())
		if err := render(sink); err != nil {
			return err
		}
		sink.End()
		return os.WriteFile(path, []byte(buf.String()), 0o644)

	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
