package rawpreview_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumen-gallery/lumen-backend/internal/media/rawpreview"
)

func jpegBytes(t *testing.T, width, height int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func TestEmbeddedPreviewFromContainer(t *testing.T) {
	small := jpegBytes(t, 32, 24)
	large := jpegBytes(t, 320, 240)

	// Simulated RAW container: opaque sensor data with two JPEG renditions
	// embedded, the way vendor formats store thumbnail plus preview.
	var container bytes.Buffer
	container.Write(bytes.Repeat([]byte{0x42, 0x00, 0x13}, 512))
	container.Write(small)
	container.Write(bytes.Repeat([]byte{0x07, 0x7F}, 256))
	container.Write(large)
	container.Write(bytes.Repeat([]byte{0x00}, 128))

	d := rawpreview.NewDecoder()
	img, err := d.EmbeddedPreview(container.Bytes())
	require.NoError(t, err)

	bounds := img.Bounds()
	assert.Equal(t, 320, bounds.Dx())
	assert.Equal(t, 240, bounds.Dy())
}

func TestEmbeddedPreviewPlainJPEG(t *testing.T) {
	d := rawpreview.NewDecoder()
	img, err := d.EmbeddedPreview(jpegBytes(t, 64, 48))
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
}

func TestEmbeddedPreviewNone(t *testing.T) {
	d := rawpreview.NewDecoder()

	_, err := d.EmbeddedPreview(bytes.Repeat([]byte{0xAB, 0xCD}, 1024))
	assert.ErrorIs(t, err, rawpreview.ErrNoPreview)

	_, err = d.EmbeddedPreview(nil)
	assert.ErrorIs(t, err, rawpreview.ErrNoPreview)
}
