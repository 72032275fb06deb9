package request

// ProcessPhoto carries an adjustment request. Settings fields are pointers so
// omitted ones fall back to their identity values; Preset, when set, replaces
// the whole snapshot.
type ProcessPhoto struct {
	Settings  *ProcessSettings `json:"settings"`
	Preset    string           `json:"preset"`
	SaveAsNew bool             `json:"saveAsNew"`
}

type ProcessSettings struct {
	Exposure       *float64 `json:"exposure"`
	Shadows        *float64 `json:"shadows"`
	Highlights     *float64 `json:"highlights"`
	Contrast       *float64 `json:"contrast"`
	Vibrance       *float64 `json:"vibrance"`
	Saturation     *float64 `json:"saturation"`
	Temperature    *float64 `json:"temperature"`
	Tint           *float64 `json:"tint"`
	Clarity        *float64 `json:"clarity"`
	Sharpening     *float64 `json:"sharpening"`
	NoiseReduction *float64 `json:"noiseReduction"`
}
