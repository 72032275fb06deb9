package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumen-gallery/lumen-backend/internal/adapter/handler"
	"github.com/lumen-gallery/lumen-backend/internal/domain"
	"github.com/lumen-gallery/lumen-backend/internal/domain/entity"
	"github.com/lumen-gallery/lumen-backend/internal/mocks"
)

const testMaxUploadSize = 1 << 20

func createMultipartRequest(t *testing.T, url, fieldName, fileName string, fileContent []byte) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, fieldName, fileName))
	h.Set("Content-Type", "application/octet-stream")

	part, err := writer.CreatePart(h)
	require.NoError(t, err)

	_, err = part.Write(fileContent)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestPhotoHandler_Upload(t *testing.T) {
	t.Run("uploads photo successfully", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		ownerID := uuid.New()
		collectionID := uuid.New()
		router.POST("/collections/:id/photos", func(c *gin.Context) {
			c.Set("user_id", ownerID)
			h.Upload(c)
		})

		photo := &entity.Photo{
			ID:               uuid.New(),
			CollectionID:     collectionID,
			OriginalFilename: "wedding.jpg",
			Filename:         "abc.jpg",
			Width:            1200,
			Height:           800,
			ProcessingStatus: entity.StatusCompleted,
			Variants: map[entity.VariantKind]string{
				entity.VariantOriginal: "http://files/orig.jpg",
				entity.VariantWeb:      "http://files/web.jpg",
			},
		}

		ingestSvc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(photo, nil)

		req := createMultipartRequest(t, "/collections/"+collectionID.String()+"/photos", "file", "wedding.jpg", []byte{0xFF, 0xD8, 0xFF, 0xE0})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "wedding.jpg", resp["original_filename"])
		assert.Equal(t, "completed", resp["processing_status"])
		variants := resp["variants"].(map[string]any)
		assert.Equal(t, "http://files/web.jpg", variants["web"])
	})

	t.Run("rejects unsupported file type", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		collectionID := uuid.New()
		router.POST("/collections/:id/photos", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Upload(c)
		})

		ingestSvc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, domain.ErrUnsupportedFormat)

		req := createMultipartRequest(t, "/collections/"+collectionID.String()+"/photos", "file", "notes.pdf", []byte("%PDF"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "UNSUPPORTED_TYPE")
	})

	t.Run("rejects oversized upload", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, 16)

		router := setupRouter()
		collectionID := uuid.New()
		router.POST("/collections/:id/photos", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Upload(c)
		})

		req := createMultipartRequest(t, "/collections/"+collectionID.String()+"/photos", "file", "big.jpg", bytes.Repeat([]byte{0xAB}, 4096))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
		assert.Contains(t, w.Body.String(), "FILE_TOO_LARGE")
	})

	t.Run("returns 404 for unknown collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		collectionID := uuid.New()
		router.POST("/collections/:id/photos", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Upload(c)
		})

		ingestSvc.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, domain.ErrCollectionNotFound)

		req := createMultipartRequest(t, "/collections/"+collectionID.String()+"/photos", "file", "a.jpg", []byte{0xFF, 0xD8})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "COLLECTION_NOT_FOUND")
	})

	t.Run("rejects invalid collection id", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		router.POST("/collections/:id/photos", h.Upload)

		req := createMultipartRequest(t, "/collections/not-a-uuid/photos", "file", "a.jpg", []byte{0xFF, 0xD8})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_ID")
	})

	t.Run("requires a file part", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		collectionID := uuid.New()
		router.POST("/collections/:id/photos", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Upload(c)
		})

		req := createMultipartRequest(t, "/collections/"+collectionID.String()+"/photos", "attachment", "a.jpg", []byte{0xFF, 0xD8})
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_FILE")
	})
}

func TestPhotoHandler_Get(t *testing.T) {
	t.Run("returns photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		ownerID := uuid.New()
		photoID := uuid.New()
		router.GET("/photos/:id", func(c *gin.Context) {
			c.Set("user_id", ownerID)
			h.Get(c)
		})

		parentID := uuid.New()
		photo := &entity.Photo{
			ID:            photoID,
			CollectionID:  uuid.New(),
			ParentPhotoID: &parentID,
			Filename:      "abc.jpg",
			IsRaw:         true,
			RawFormat:     "cr2",
		}
		ingestSvc.EXPECT().Get(gomock.Any(), ownerID, photoID).Return(photo, nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/photos/"+photoID.String(), nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, parentID.String(), resp["parent_photo_id"])
		assert.Equal(t, true, resp["is_raw"])
		assert.Equal(t, "cr2", resp["raw_format"])
	})

	t.Run("returns 404 for unknown photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		photoID := uuid.New()
		router.GET("/photos/:id", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Get(c)
		})

		ingestSvc.EXPECT().Get(gomock.Any(), gomock.Any(), photoID).Return(nil, domain.ErrPhotoNotFound)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/photos/"+photoID.String(), nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "PHOTO_NOT_FOUND")
	})
}

func TestPhotoHandler_Delete(t *testing.T) {
	t.Run("deletes photo", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		ownerID := uuid.New()
		photoID := uuid.New()
		router.DELETE("/photos/:id", func(c *gin.Context) {
			c.Set("user_id", ownerID)
			h.Delete(c)
		})

		ingestSvc.EXPECT().Delete(gomock.Any(), ownerID, photoID).Return(nil)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/photos/"+photoID.String(), nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("returns 403 for non-owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		ingestSvc := mocks.NewMockIngestService(ctrl)
		h := handler.NewPhotoHandler(ingestSvc, testMaxUploadSize)

		router := setupRouter()
		photoID := uuid.New()
		router.DELETE("/photos/:id", func(c *gin.Context) {
			c.Set("user_id", uuid.New())
			h.Delete(c)
		})

		ingestSvc.EXPECT().Delete(gomock.Any(), gomock.Any(), photoID).Return(domain.ErrForbidden)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/photos/"+photoID.String(), nil))

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ACCESS_DENIED")
	})
}
