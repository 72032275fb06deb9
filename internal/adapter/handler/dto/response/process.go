package response

import (
	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
	"github.com/lumen-gallery/lumen-backend/internal/usecase/process"
)

type ProcessResponse struct {
	Photo        PhotoResponse                  `json:"photo"`
	ProcessedURL string                         `json:"processed_url"`
	Settings     valueobject.ProcessingSettings `json:"settings"`
	NewPhotoID   string                         `json:"new_photo_id,omitempty"`
	Updated      bool                           `json:"updated"`
}

func ProcessResultToResponse(result *process.ProcessResult) ProcessResponse {
	resp := ProcessResponse{
		Photo:        PhotoFromEntity(result.Photo),
		ProcessedURL: result.ProcessedURL,
		Settings:     result.Settings,
		Updated:      !result.SavedAsNew,
	}
	if result.SavedAsNew {
		resp.NewPhotoID = result.Photo.ID.String()
		resp.Updated = false
	}
	return resp
}

type PresetsResponse struct {
	Presets []PresetResponse `json:"presets"`
}

type PresetResponse struct {
	Name     string                         `json:"name"`
	Settings valueobject.ProcessingSettings `json:"settings"`
}

func PresetsToResponse(names []string, byName map[string]valueobject.ProcessingSettings) PresetsResponse {
	out := PresetsResponse{Presets: make([]PresetResponse, 0, len(names))}
	for _, name := range names {
		out.Presets = append(out.Presets, PresetResponse{Name: name, Settings: byName[name]})
	}
	return out
}
