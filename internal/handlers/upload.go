package handlers

//go:generate mockgen -source=upload.go -destination=upload_mock.go -package=handlers

import (
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/sbilibin2017/gw-recipes/internal/validation"
)

const (
	imageField = "image"
	// maxUploadBody leaves room for the other multipart fields next to a full-size image.
	maxUploadBody = services.MaxImageSize + 1<<20
)

// Uploader stores an image with the media host.
type Uploader interface {
	Upload(ctx context.Context, data []byte, contentType string) (*models.UploadResult, error)
}

// NewUploadHandler uploads one image sent in the multipart field "image".
// @Summary Upload image
// @Description Stores an image of at most 5 MiB with the media host
// @Tags upload
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Success 200 {object} models.UploadResult
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /upload [post]
func NewUploadHandler(svc Uploader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !parseMultipart(w, r) {
			return
		}

		data, contentType, ok := readImage(w, r)
		if !ok {
			return
		}
		if data == nil {
			writeValidationError(w, &validation.Error{Fields: []models.FieldError{{Field: imageField, Message: "is required"}}})
			return
		}

		res, err := svc.Upload(r.Context(), data, contentType)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}

// parseMultipart caps the body size and parses the form.
func parseMultipart(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
	if err := r.ParseMultipartForm(maxUploadBody); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || r.ContentLength > maxUploadBody {
			writeError(w, http.StatusBadRequest, services.ErrImageTooLarge.Error())
			return false
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return false
	}
	return true
}

// readImage returns the attached image, or nil data when none was sent.
// Oversized and non-image files are rejected here.
func readImage(w http.ResponseWriter, r *http.Request) ([]byte, string, bool) {
	file, header, err := r.FormFile(imageField)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, "", true
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, "", false
	}
	defer file.Close()

	if header.Size > services.MaxImageSize {
		writeError(w, http.StatusBadRequest, services.ErrImageTooLarge.Error())
		return nil, "", false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, "", false
	}

	return data, contentTypeOf(header, data), true
}

func contentTypeOf(header *multipart.FileHeader, data []byte) string {
	if ct := header.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" {
		return ct
	}
	return http.DetectContentType(data)
}
