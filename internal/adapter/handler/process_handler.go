package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/handler/dto/request"
	"github.com/lumen-gallery/lumen-backend/internal/adapter/handler/dto/response"
	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/domain/valueobject"
	"github.com/lumen-gallery/lumen-backend/internal/pkg/apperror"
	"github.com/lumen-gallery/lumen-backend/internal/pkg/httputil"
	"github.com/lumen-gallery/lumen-backend/internal/usecase/process"
)

type ProcessHandler struct {
	processSvc ProcessService
}

func NewProcessHandler(processSvc ProcessService) *ProcessHandler {
	return &ProcessHandler{processSvc: processSvc}
}

func (h *ProcessHandler) Process(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid photo id")
		return
	}

	var req request.ProcessPhoto
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.ValidationError(c, err)
		return
	}

	ownerID := httputil.GetUserID(c)

	result, err := h.processSvc.Process(c.Request.Context(), process.ProcessInput{
		OwnerID:   ownerID,
		PhotoID:   photoID,
		Settings:  mergeSettings(req.Settings),
		Preset:    req.Preset,
		SaveAsNew: req.SaveAsNew,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPhotoNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "PHOTO_NOT_FOUND", "photo not found")
		case errors.Is(err, domain.ErrForbidden):
			httputil.ErrorWithCode(c, http.StatusForbidden, "ACCESS_DENIED", "access denied")
		case errors.Is(err, domain.ErrInvalidSettings):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_SETTINGS", err.Error())
		default:
			httputil.HandleError(c, apperror.ProcessingFailed(err))
		}
		return
	}

	httputil.OK(c, response.ProcessResultToResponse(result))
}

func (h *ProcessHandler) Presets(c *gin.Context) {
	httputil.OK(c, response.PresetsToResponse(process.PresetNames(), process.Presets()))
}

// mergeSettings overlays the request's sparse settings onto the identity
// snapshot, so omitted fields leave the image untouched for that operation.
func mergeSettings(req *request.ProcessSettings) valueobject.ProcessingSettings {
	settings := valueobject.DefaultSettings()
	if req == nil {
		return settings
	}

	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&settings.Exposure, req.Exposure)
	set(&settings.Shadows, req.Shadows)
	set(&settings.Highlights, req.Highlights)
	set(&settings.Contrast, req.Contrast)
	set(&settings.Vibrance, req.Vibrance)
	set(&settings.Saturation, req.Saturation)
	set(&settings.Temperature, req.Temperature)
	set(&settings.Tint, req.Tint)
	set(&settings.Clarity, req.Clarity)
	set(&settings.Sharpening, req.Sharpening)
	set(&settings.NoiseReduction, req.NoiseReduction)
	return settings
}
