package assets

import (
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"

	"raycast/render"
)

const (
	FormatPNG = "png"
	FormatBMP = "bmp"
)

// FormatFromPath picks a snapshot format from a file extension, defaulting to
// PNG.
func FormatFromPath(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		return FormatBMP
	}
	return FormatPNG
}

// EncodeFrame writes f as an image in format.
func EncodeFrame(w io.Writer, f *render.Frame, format string) error {
	img := f.Image()
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encoding %s snapshot: %w", format, err)
	}
	return nil
}
