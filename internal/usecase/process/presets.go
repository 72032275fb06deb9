package process

import "github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"

// presets are curated full settings snapshots. Applying one replaces whatever
// per-field values the caller sent.
var presets = map[string]valueobject.ProcessingSettings{
	"portrait": {
		Exposure: 0.1, Shadows: 15, Highlights: 10, Contrast: 5,
		Vibrance: 10, Saturation: -5, Temperature: 5800, Tint: 5,
		Clarity: -10, Sharpening: 40, NoiseReduction: 35,
	},
	"landscape": {
		Exposure: 0, Shadows: 20, Highlights: 25, Contrast: 15,
		Vibrance: 30, Saturation: 10, Temperature: 5500, Tint: 0,
		Clarity: 25, Sharpening: 50, NoiseReduction: 25,
	},
	"dramatic": {
		Exposure: -0.2, Shadows: 35, Highlights: 40, Contrast: 40,
		Vibrance: 15, Saturation: -10, Temperature: 5200, Tint: 0,
		Clarity: 40, Sharpening: 45, NoiseReduction: 25,
	},
	"soft": {
		Exposure: 0.2, Shadows: 25, Highlights: 15, Contrast: -15,
		Vibrance: 5, Saturation: -15, Temperature: 5700, Tint: 3,
		Clarity: -20, Sharpening: 15, NoiseReduction: 45,
	},
	"vivid": {
		Exposure: 0.1, Shadows: 10, Highlights: 20, Contrast: 20,
		Vibrance: 45, Saturation: 25, Temperature: 5600, Tint: 0,
		Clarity: 20, Sharpening: 55, NoiseReduction: 25,
	},
}

var presetOrder = []string{"portrait", "landscape", "dramatic", "soft", "vivid"}

// Preset returns the named preset's settings.
func Preset(name string) (valueobject.ProcessingSettings, bool) {
	s, ok := presets[name]
	return s, ok
}

// PresetNames returns the available preset names in a stable order.
func PresetNames() []string {
	out := make([]string, len(presetOrder))
	copy(out, presetOrder)
	return out
}

// Presets returns every preset keyed by name.
func Presets() map[string]valueobject.ProcessingSettings {
	out := make(map[string]valueobject.ProcessingSettings, len(presets))
	for name, s := range presets {
		out[name] = s
	}
	return out
}
