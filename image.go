package flowgrad

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// Image renders the current parameters as an *image.NRGBA and applies the
// parameter set's Adjustments. With zero adjustments the pixels are the
// buffer Generate would return.
func (g *Generator) Image(width, height int) (*image.NRGBA, error) {
	buf, err := g.Generate(width, height)
	if err != nil {
		return nil, err
	}
	img := &image.NRGBA{
		Pix:    buf,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	g.params.Adjust.Apply(img)
	return img, nil
}

// Thumbnail renders at width×height and scales the result down so that its
// longer side is at most maxSide pixels. Images that already fit are
// returned as rendered.
func (g *Generator) Thumbnail(width, height, maxSide int) (*image.NRGBA, error) {
	img, err := g.Image(width, height)
	if err != nil {
		return nil, err
	}
	return Downscale(img, maxSide), nil
}

// Downscale scales src so that its longer side is at most maxSide, keeping
// the aspect ratio. A non-positive maxSide or an image that already fits
// returns src unchanged.
func Downscale(src *image.NRGBA, maxSide int) *image.NRGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide <= 0 || (w <= maxSide && h <= maxSide) {
		return src
	}

	tw, th := maxSide, maxSide
	if w >= h {
		th = max(1, h*maxSide/w)
	} else {
		tw = max(1, w*maxSide/h)
	}
	dst := image.NewNRGBA(image.Rect(0, 0, tw, th))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Src, nil)
	return dst
}

// Supported output formats.
const (
	FormatPNG  = "png"
	FormatBMP  = "bmp"
	FormatTIFF = "tiff"
)

// FormatFromPath picks an output format from a file extension.
// Unknown or missing extensions select PNG.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatPNG
	}
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("flowgrad: unsupported image format %q", format)
	}
}

// SaveImage encodes img to path, choosing the format from its extension.
func SaveImage(path string, img image.Image) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, img, FormatFromPath(path))
}
