// Package adjust implements the non-destructive tone/color/detail pipeline
// applied to RAW originals. Operations run in a fixed order and each one is a
// no-op at its parameter's identity value, so an untouched slider costs
// nothing. The pipeline is deterministic: identical settings on an identical
// base image produce identical output.
package adjust

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"

	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
)

// Apply runs the ordered adjustment sequence over a base image and returns
// the adjusted result. The input image is never modified; settings must be
// validated by the caller before any pixel work starts.
func Apply(base image.Image, s valueobject.ProcessingSettings) *image.NRGBA {
	img := imaging.Clone(base)

	img = applyExposure(img, s.Exposure)
	img = applyContrast(img, s.Contrast)
	img = applySaturation(img, s.Saturation)
	img = applyVibrance(img, s.Vibrance)
	img = applySharpening(img, s.Sharpening)
	img = applyNoiseReduction(img, s.NoiseReduction)
	img = applyTemperatureTint(img, s.Temperature, s.Tint)
	img = applyShadowsHighlights(img, s.Shadows, s.Highlights)
	img = applyClarity(img, s.Clarity)

	return img
}

// applyExposure scales brightness multiplicatively: 2^ev.
func applyExposure(img *image.NRGBA, ev float64) *image.NRGBA {
	if ev == 0 {
		return img
	}
	scale := math.Pow(2, ev)
	return adjustChannels(img, scale, scale, scale)
}

// applyContrast applies a linear gain of 1+contrast/100 around mid-gray.
func applyContrast(img *image.NRGBA, contrast float64) *image.NRGBA {
	if contrast == 0 {
		return img
	}
	return imaging.AdjustContrast(img, contrast)
}

// applySaturation scales saturation by max(0, 1+saturation/100).
func applySaturation(img *image.NRGBA, saturation float64) *image.NRGBA {
	if saturation == 0 {
		return img
	}
	if saturation < -100 {
		saturation = -100
	}
	return imaging.AdjustSaturation(img, saturation)
}

// applyVibrance is a second, gentler saturation pass: max(0, 1+vibrance/200).
// Vibrance and saturation compose rather than exclude each other.
func applyVibrance(img *image.NRGBA, vibrance float64) *image.NRGBA {
	if vibrance == 0 {
		return img
	}
	return imaging.AdjustSaturation(img, vibrance/2)
}

// applySharpening runs an unsharp mask whose sigma shrinks as the slider
// rises: sigma = max(0.5, 3 - value/50). Smaller blur radius means stronger
// edge emphasis.
func applySharpening(img *image.NRGBA, sharpening float64) *image.NRGBA {
	if sharpening == valueobject.IdentitySharpening {
		return img
	}
	sigma := math.Max(0.5, 3-sharpening/50)
	return imaging.Sharpen(img, sigma)
}

// applyNoiseReduction engages only above the identity value 25; the blur
// radius scales linearly as (value-25)/100.
func applyNoiseReduction(img *image.NRGBA, nr float64) *image.NRGBA {
	if nr <= valueobject.IdentityNoiseReduction {
		return img
	}
	radius := (nr - valueobject.IdentityNoiseReduction) / 100
	return imaging.Blur(img, radius)
}

// applyTemperatureTint approximates white balance as per-channel tinting.
// Warmer than 5500K pushes the red channel toward 255, cooler pushes blue;
// tint biases green by tint/100 * 0.1.
func applyTemperatureTint(img *image.NRGBA, temperature, tint float64) *image.NRGBA {
	if temperature == valueobject.IdentityTemperature && tint == 0 {
		return img
	}

	dev := (temperature - valueobject.IdentityTemperature) / 4500
	if dev > 1 {
		dev = 1
	} else if dev < -1 {
		dev = -1
	}
	greenBias := tint / 100 * 0.1

	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		r, g, b := float64(c.R), float64(c.G), float64(c.B)
		if dev > 0 {
			r += (255 - r) * dev * 0.2
		} else if dev < 0 {
			b += (255 - b) * -dev * 0.2
		}
		if greenBias > 0 {
			g += (255 - g) * greenBias
		} else if greenBias < 0 {
			g *= 1 + greenBias
		}
		return color.NRGBA{R: clamp255(r), G: clamp255(g), B: clamp255(b), A: c.A}
	})
}

// applyShadowsHighlights approximates shadow lift and highlight recovery as a
// single gamma: the average of 1+shadows/200 and 1-highlights/200.
func applyShadowsHighlights(img *image.NRGBA, shadows, highlights float64) *image.NRGBA {
	if shadows == 0 && highlights == 0 {
		return img
	}
	shadowGamma := 1 + shadows/200
	highlightGamma := 1 - highlights/200
	gamma := (shadowGamma + highlightGamma) / 2
	if gamma == 1 {
		return img
	}
	return imaging.AdjustGamma(img, gamma)
}

// applyClarity blends a sharpened copy over the image with opacity
// |clarity|/100 as a local-contrast approximation. Negative clarity is
// accepted but has no softening effect.
func applyClarity(img *image.NRGBA, clarity float64) *image.NRGBA {
	if clarity <= 0 {
		return img
	}
	sharpened := imaging.Sharpen(img, 1.5)
	return imaging.Overlay(img, sharpened, image.Pt(0, 0), clarity/100)
}

func adjustChannels(img *image.NRGBA, rs, gs, bs float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: clamp255(float64(c.R) * rs),
			G: clamp255(float64(c.G) * gs),
			B: clamp255(float64(c.B) * bs),
			A: c.A,
		}
	})
}

func clamp255(v float64) uint8 {
	if v > 255 {
		return 255
	}
	if v < 0 {
		return 0
	}
	return uint8(v + 0.5)
}
