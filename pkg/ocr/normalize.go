package ocr

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"

	// Raster formats accepted at the transport boundary.
	_ "image/gif"
	_ "image/jpeg"

	"github.com/pkg/errors"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// NormalizeImage decodes an uploaded raster image (PNG, JPEG, GIF, BMP or
// TIFF) and re-encodes it as RGBA PNG, the canonical encoding every strategy
// receives. Paletted, grayscale and CMYK inputs all come out as plain RGBA.
func NormalizeImage(data []byte) ([]byte, error) {
	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	rgba, ok := src.(*image.RGBA)
	if !ok {
		b := src.Bounds()
		rgba = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(rgba, rgba.Bounds(), src, b.Min, draw.Src)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, rgba); err != nil {
		return nil, errors.Wrapf(err, "failed to re-encode %s image as PNG", format)
	}
	return buf.Bytes(), nil
}
