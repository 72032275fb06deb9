package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/handler/dto/response"
	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/pkg/apperror"
	"github.com/lumen-gallery/lumen-backend/internal/pkg/httputil"
	"github.com/lumen-gallery/lumen-backend/internal/usecase/ingest"
)

type PhotoHandler struct {
	ingestSvc     IngestService
	maxUploadSize int64
}

func NewPhotoHandler(ingestSvc IngestService, maxUploadSize int64) *PhotoHandler {
	return &PhotoHandler{ingestSvc: ingestSvc, maxUploadSize: maxUploadSize}
}

func (h *PhotoHandler) Upload(c *gin.Context) {
	collectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid collection id")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the upload size limit")
			return
		}
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_FILE", "file is required")
		return
	}
	defer file.Close()

	ownerID := httputil.GetUserID(c)

	photo, err := h.ingestSvc.Upload(c.Request.Context(), ingest.UploadInput{
		OwnerID:      ownerID,
		CollectionID: collectionID,
		File:         file,
		Filename:     header.Filename,
		Size:         header.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrCollectionNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "COLLECTION_NOT_FOUND", "collection not found")
		case errors.Is(err, domain.ErrForbidden):
			httputil.ErrorWithCode(c, http.StatusForbidden, "ACCESS_DENIED", "access denied")
		case errors.Is(err, domain.ErrUnsupportedFormat):
			httputil.ErrorWithCode(c, http.StatusBadRequest, "UNSUPPORTED_TYPE", "file type is not supported")
		case errors.Is(err, domain.ErrFileTooLarge):
			httputil.ErrorWithCode(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds the upload size limit")
		default:
			httputil.HandleError(c, apperror.UploadFailed(err))
		}
		return
	}

	httputil.Created(c, response.PhotoFromEntity(photo))
}

func (h *PhotoHandler) Get(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid photo id")
		return
	}

	ownerID := httputil.GetUserID(c)

	photo, err := h.ingestSvc.Get(c.Request.Context(), ownerID, photoID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrPhotoNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "PHOTO_NOT_FOUND", "photo not found")
		case errors.Is(err, domain.ErrForbidden):
			httputil.ErrorWithCode(c, http.StatusForbidden, "ACCESS_DENIED", "access denied")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.OK(c, response.PhotoFromEntity(photo))
}

func (h *PhotoHandler) Delete(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httputil.ErrorWithCode(c, http.StatusBadRequest, "INVALID_ID", "invalid photo id")
		return
	}

	ownerID := httputil.GetUserID(c)

	if err := h.ingestSvc.Delete(c.Request.Context(), ownerID, photoID); err != nil {
		switch {
		case errors.Is(err, domain.ErrPhotoNotFound):
			httputil.ErrorWithCode(c, http.StatusNotFound, "PHOTO_NOT_FOUND", "photo not found")
		case errors.Is(err, domain.ErrForbidden):
			httputil.ErrorWithCode(c, http.StatusForbidden, "ACCESS_DENIED", "access denied")
		default:
			httputil.InternalError(c)
		}
		return
	}

	httputil.NoContent(c)
}
