package ocr

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeImagePNG(t *testing.T) {
	out, err := NormalizeImage(testPNG(t))
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, decoded.Bounds().Dx())
	assert.Equal(t, 4, decoded.Bounds().Dy())
}

func TestNormalizeImageConvertsJPEG(t *testing.T) {
	img := image.NewYCbCr(image.Rect(0, 0, 8, 6), image.YCbCrSubsampleRatio420)
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, nil))

	out, err := NormalizeImage(buf.Bytes())
	require.NoError(t, err)

	_, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
}

func TestNormalizeImagePaletted(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 3, 3), color.Palette{
		color.Black, color.White,
	})
	img.SetColorIndex(1, 1, 1)
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	out, err := NormalizeImage(buf.Bytes())
	require.NoError(t, err)

	decoded, _, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	_, white := decoded.(*image.Paletted)
	assert.False(t, white, "normalized image must not stay paletted")
}

func TestNormalizeImageRejectsGarbage(t *testing.T) {
	_, err := NormalizeImage([]byte("definitely not an image"))
	assert.Error(t, err)

	_, err = NormalizeImage(nil)
	assert.Error(t, err)
}
