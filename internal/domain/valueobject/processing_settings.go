package valueobject

import (
	"fmt"
)

// ProcessingSettings is an immutable snapshot of the eleven adjustment
// parameters. A value is constructed once per render invocation and never
// mutated; a new invocation always carries its own snapshot.
type ProcessingSettings struct {
	Exposure       float64 `json:"exposure"`
	Shadows        float64 `json:"shadows"`
	Highlights     float64 `json:"highlights"`
	Contrast       float64 `json:"contrast"`
	Vibrance       float64 `json:"vibrance"`
	Saturation     float64 `json:"saturation"`
	Temperature    float64 `json:"temperature"`
	Tint           float64 `json:"tint"`
	Clarity        float64 `json:"clarity"`
	Sharpening     float64 `json:"sharpening"`
	NoiseReduction float64 `json:"noiseReduction"`
}

const (
	IdentityTemperature    = 5500
	IdentitySharpening     = 25
	IdentityNoiseReduction = 25
)

// DefaultSettings returns the identity value for every parameter. Applying it
// to an image is a documented no-op.
func DefaultSettings() ProcessingSettings {
	return ProcessingSettings{
		Temperature:    IdentityTemperature,
		Sharpening:     IdentitySharpening,
		NoiseReduction: IdentityNoiseReduction,
	}
}

type settingsRange struct {
	name     string
	value    float64
	min, max float64
}

// Validate rejects any parameter outside its documented range. It runs as a
// gate before any pixel operation, so an invalid snapshot causes no side
// effects.
func (s ProcessingSettings) Validate() error {
	ranges := []settingsRange{
		{"exposure", s.Exposure, -2, 2},
		{"shadows", s.Shadows, 0, 100},
		{"highlights", s.Highlights, 0, 100},
		{"contrast", s.Contrast, -100, 100},
		{"vibrance", s.Vibrance, -100, 100},
		{"saturation", s.Saturation, -100, 100},
		{"temperature", s.Temperature, 2000, 10000},
		{"tint", s.Tint, -100, 100},
		{"clarity", s.Clarity, -100, 100},
		{"sharpening", s.Sharpening, 0, 100},
		{"noiseReduction", s.NoiseReduction, 0, 100},
	}
	for _, r := range ranges {
		if r.value < r.min || r.value > r.max {
			return fmt.Errorf("%s must be between %g and %g, got %g", r.name, r.min, r.max, r.value)
		}
	}
	return nil
}

// IsIdentity reports whether every parameter equals its identity value.
func (s ProcessingSettings) IsIdentity() bool {
	return s == DefaultSettings()
}

// Map returns the snapshot as a metadata-bag friendly map, used when recording
// processing history on a photo.
func (s ProcessingSettings) Map() map[string]any {
	return map[string]any{
		"exposure":       s.Exposure,
		"shadows":        s.Shadows,
		"highlights":     s.Highlights,
		"contrast":       s.Contrast,
		"vibrance":       s.Vibrance,
		"saturation":     s.Saturation,
		"temperature":    s.Temperature,
		"tint":           s.Tint,
		"clarity":        s.Clarity,
		"sharpening":     s.Sharpening,
		"noiseReduction": s.NoiseReduction,
	}
}
