package derivative

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	placeholderBG     = color.NRGBA{R: 38, G: 38, B: 42, A: 255}
	placeholderBorder = color.NRGBA{R: 90, G: 90, B: 98, A: 255}
	placeholderText   = color.NRGBA{R: 225, G: 225, B: 228, A: 255}
)

// RenderPlaceholder draws a deterministic labeled stand-in image. It is used
// both for the synthetic RAW render (no embedded preview, no demosaicing) and
// as the neutral fallback when derivative generation fails.
func RenderPlaceholder(width, height int, lines []string) *image.NRGBA {
	if width < 16 {
		width = 16
	}
	if height < 16 {
		height = 16
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Vertical tonal ramp keeps the stand-in visually distinct from a flat
	// fill and gives adjustment operations real gradients to act on.
	for y := 0; y < height; y++ {
		shade := uint8(int(placeholderBG.R) + y*40/height)
		row := color.NRGBA{R: shade, G: shade, B: shade + 4, A: 255}
		for x := 0; x < width; x++ {
			img.SetNRGBA(x, y, row)
		}
	}

	drawBorder(img, 4)
	drawLabel(img, lines)

	return img
}

func drawBorder(img *image.NRGBA, inset int) {
	b := img.Bounds()
	for x := b.Min.X + inset; x < b.Max.X-inset; x++ {
		img.SetNRGBA(x, b.Min.Y+inset, placeholderBorder)
		img.SetNRGBA(x, b.Max.Y-inset-1, placeholderBorder)
	}
	for y := b.Min.Y + inset; y < b.Max.Y-inset; y++ {
		img.SetNRGBA(b.Min.X+inset, y, placeholderBorder)
		img.SetNRGBA(b.Max.X-inset-1, y, placeholderBorder)
	}
}

func drawLabel(img *image.NRGBA, lines []string) {
	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 2
	b := img.Bounds()
	startY := b.Min.Y + (b.Dy()-lineHeight*len(lines))/2 + face.Metrics().Ascent.Ceil()

	for i, line := range lines {
		width := font.MeasureString(face, line).Ceil()
		x := b.Min.X + (b.Dx()-width)/2
		if x < b.Min.X+8 {
			x = b.Min.X + 8
		}
		d := &font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(placeholderText),
			Face: face,
			Dot:  fixed.P(x, startY+i*lineHeight),
		}
		d.DrawString(line)
	}
}
