// Package rawpreview pulls embedded preview images out of camera-RAW
// containers. Most vendor RAW formats are TIFF-based and carry at least one
// JPEG rendition alongside the sensor data; extracting it avoids full
// demosaicing entirely.
package rawpreview

import (
	"bytes"
	"errors"
	"image"
	"image/jpeg"

	"github.com/rwcarlsen/goexif/exif"
)

var ErrNoPreview = errors.New("no embedded preview found")

// Decoder resolves a renderable base image from RAW container bytes.
type Decoder struct{}

func NewDecoder() *Decoder {
	return &Decoder{}
}

// EmbeddedPreview returns the best embedded rendition it can find: the EXIF
// thumbnail when the container parses as TIFF, otherwise the largest JPEG
// stream found by marker scan. Returns ErrNoPreview when neither yields a
// decodable image.
func (d *Decoder) EmbeddedPreview(data []byte) (image.Image, error) {
	if x, err := exif.Decode(bytes.NewReader(data)); err == nil {
		if thumb, err := x.JpegThumbnail(); err == nil && len(thumb) > 0 {
			if img, err := jpeg.Decode(bytes.NewReader(thumb)); err == nil {
				return img, nil
			}
		}
	}

	if seg := largestJPEGSegment(data); seg != nil {
		if img, err := jpeg.Decode(bytes.NewReader(seg)); err == nil {
			return img, nil
		}
	}

	return nil, ErrNoPreview
}

var (
	jpegSOI = []byte{0xFF, 0xD8, 0xFF}
	jpegEOI = []byte{0xFF, 0xD9}
)

// largestJPEGSegment scans for SOI..EOI spans and returns the longest one.
// RAW containers commonly hold several renditions; the largest is the most
// useful base for derivatives.
func largestJPEGSegment(data []byte) []byte {
	var best []byte
	offset := 0
	for {
		start := bytes.Index(data[offset:], jpegSOI)
		if start < 0 {
			break
		}
		start += offset
		end := bytes.Index(data[start+len(jpegSOI):], jpegEOI)
		if end < 0 {
			break
		}
		end += start + len(jpegSOI) + len(jpegEOI)
		if seg := data[start:end]; len(seg) > len(best) {
			best = seg
		}
		offset = start + len(jpegSOI)
	}
	return best
}
