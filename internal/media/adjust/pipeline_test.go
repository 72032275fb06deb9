package adjust_test

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
	"github.com/lumen-gallery/lumen-backend/internal/media/adjust"
	"github.com/lumen-gallery/lumen-backend/internal/media/rawpreview"
)

// gradientImage gives every operation real tonal variation to act on.
func gradientImage(width, height int) *image.NRGBA {
	img := imaging.New(width, height, color.NRGBA{A: 255})
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / width),
				G: uint8(y * 255 / height),
				B: uint8((x + y) * 255 / (width + height)),
				A: 255,
			})
		}
	}
	return img
}

func TestApplyIdentityIsNoOp(t *testing.T) {
	base := gradientImage(64, 48)

	out := adjust.Apply(base, valueobject.DefaultSettings())

	assert.Equal(t, base.Pix, out.Pix)
}

func TestApplyDoesNotMutateBase(t *testing.T) {
	base := gradientImage(32, 32)
	before := make([]uint8, len(base.Pix))
	copy(before, base.Pix)

	adjust.Apply(base, valueobject.ProcessingSettings{
		Exposure:       1.5,
		Contrast:       40,
		Saturation:     30,
		Temperature:    7200,
		Sharpening:     80,
		NoiseReduction: 60,
		Clarity:        50,
	})

	assert.Equal(t, before, base.Pix)
}

func TestApplyIdempotent(t *testing.T) {
	base := gradientImage(64, 48)
	s := valueobject.ProcessingSettings{
		Exposure:       0.7,
		Shadows:        30,
		Highlights:     20,
		Contrast:       -15,
		Vibrance:       25,
		Saturation:     -10,
		Temperature:    4800,
		Tint:           12,
		Clarity:        35,
		Sharpening:     60,
		NoiseReduction: 40,
	}
	require.NoError(t, s.Validate())

	first := adjust.Apply(base, s)
	second := adjust.Apply(base, s)

	assert.Equal(t, first.Pix, second.Pix)
}

func TestExposureBrightens(t *testing.T) {
	base := imaging.New(16, 16, color.NRGBA{R: 60, G: 60, B: 60, A: 255})

	out := adjust.Apply(base, settingsWith(func(s *valueobject.ProcessingSettings) { s.Exposure = 1 }))

	// 2^1 doubles each channel.
	c := out.NRGBAAt(8, 8)
	assert.InDelta(t, 120, int(c.R), 1)
	assert.InDelta(t, 120, int(c.G), 1)
	assert.InDelta(t, 120, int(c.B), 1)
}

func TestTemperatureWarmBoostsRed(t *testing.T) {
	base := imaging.New(16, 16, color.NRGBA{R: 100, G: 100, B: 100, A: 255})

	warm := adjust.Apply(base, settingsWith(func(s *valueobject.ProcessingSettings) { s.Temperature = 9000 }))
	cool := adjust.Apply(base, settingsWith(func(s *valueobject.ProcessingSettings) { s.Temperature = 3000 }))

	assert.Greater(t, int(warm.NRGBAAt(8, 8).R), 100)
	assert.Equal(t, 100, int(warm.NRGBAAt(8, 8).B))
	assert.Greater(t, int(cool.NRGBAAt(8, 8).B), 100)
	assert.Equal(t, 100, int(cool.NRGBAAt(8, 8).R))
}

func TestNoiseReductionThreshold(t *testing.T) {
	base := gradientImage(32, 32)

	// At or below 25 the step must not engage.
	atIdentity := adjust.Apply(base, settingsWith(func(s *valueobject.ProcessingSettings) { s.NoiseReduction = 25 }))
	below := adjust.Apply(base, settingsWith(func(s *valueobject.ProcessingSettings) { s.NoiseReduction = 10 }))
	above := adjust.Apply(base, settingsWith(func(s *valueobject.ProcessingSettings) { s.NoiseReduction = 90 }))

	assert.Equal(t, base.Pix, atIdentity.Pix)
	assert.Equal(t, base.Pix, below.Pix)
	assert.NotEqual(t, base.Pix, above.Pix)
}

func TestNegativeClarityHasNoEffect(t *testing.T) {
	base := gradientImage(32, 32)

	out := adjust.Apply(base, settingsWith(func(s *valueobject.ProcessingSettings) { s.Clarity = -60 }))

	assert.Equal(t, base.Pix, out.Pix)
}

func settingsWith(mod func(*valueobject.ProcessingSettings)) valueobject.ProcessingSettings {
	s := valueobject.DefaultSettings()
	mod(&s)
	return s
}

func TestRendererProducesOutput(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradientImage(320, 240), &jpeg.Options{Quality: 90}))

	r := adjust.NewRenderer(rawpreview.NewDecoder(), zap.NewNop())
	res := r.Render(buf.Bytes(), "base.jpg", false, settingsWith(func(s *valueobject.ProcessingSettings) { s.Contrast = 30 }))

	assert.False(t, res.Fallback)
	assert.Equal(t, 320, res.Width)
	assert.Equal(t, 240, res.Height)

	img, err := jpeg.Decode(bytes.NewReader(res.Bytes))
	require.NoError(t, err)
	assert.Equal(t, 320, img.Bounds().Dx())
}

func TestRendererIdempotent(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradientImage(200, 150), &jpeg.Options{Quality: 90}))

	s := settingsWith(func(s *valueobject.ProcessingSettings) {
		s.Exposure = -0.5
		s.Vibrance = 40
	})
	r := adjust.NewRenderer(rawpreview.NewDecoder(), zap.NewNop())

	first := r.Render(buf.Bytes(), "base.jpg", false, s)
	second := r.Render(buf.Bytes(), "base.jpg", false, s)

	assert.Equal(t, first.Bytes, second.Bytes)
}

func TestRendererFallbackOnUndecodableBase(t *testing.T) {
	r := adjust.NewRenderer(rawpreview.NewDecoder(), zap.NewNop())

	res := r.Render([]byte("garbage"), "missing.jpg", false, valueobject.DefaultSettings())

	assert.True(t, res.Fallback)
	assert.Equal(t, "base image decode failed", res.Reason)
	assert.NotEmpty(t, res.Bytes)
}

func TestRendererRawWithoutPreviewStillRenders(t *testing.T) {
	r := adjust.NewRenderer(rawpreview.NewDecoder(), zap.NewNop())

	res := r.Render(bytes.Repeat([]byte{0x31}, 1024), "shot.nef", true, valueobject.DefaultSettings())

	// The stand-in is adjusted and encoded; the operation itself succeeded.
	assert.False(t, res.Fallback)
	assert.NotEmpty(t, res.Bytes)
}
