package valueobject

// CaptureMetadata holds best-effort capture information pulled from an
// uploaded file. Zero values mean "unknown"; callers must tolerate a partially
// or entirely empty value.
type CaptureMetadata struct {
	CameraMake   string
	CameraModel  string
	LensModel    string
	CapturedAt   string
	ISO          string
	Aperture     string
	ExposureTime string
	FocalLength  string
	WhiteBalance string
	ColorSpace   string
	Orientation  string
	Software     string
	Artist       string
	Copyright    string

	Format   string
	HasAlpha bool
	Width    int
	Height   int
}

// Map flattens the known fields into a metadata bag, skipping unknowns so the
// stored document stays small.
func (m CaptureMetadata) Map() map[string]any {
	out := make(map[string]any)
	put := func(key, val string) {
		if val != "" {
			out[key] = val
		}
	}
	put("cameraMake", m.CameraMake)
	put("cameraModel", m.CameraModel)
	put("lensModel", m.LensModel)
	put("capturedAt", m.CapturedAt)
	put("iso", m.ISO)
	put("aperture", m.Aperture)
	put("exposureTime", m.ExposureTime)
	put("focalLength", m.FocalLength)
	put("whiteBalance", m.WhiteBalance)
	put("colorSpace", m.ColorSpace)
	put("orientation", m.Orientation)
	put("software", m.Software)
	put("artist", m.Artist)
	put("copyright", m.Copyright)
	put("format", m.Format)
	if m.HasAlpha {
		out["hasAlpha"] = true
	}
	if m.Width > 0 {
		out["pixelWidth"] = m.Width
	}
	if m.Height > 0 {
		out["pixelHeight"] = m.Height
	}
	return out
}
