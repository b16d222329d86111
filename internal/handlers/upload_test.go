package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/gw-recipes/internal/models"
	"github.com/sbilibin2017/gw-recipes/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

type formFile struct {
	name        string
	contentType string
	data        []byte
}

// multipartRequest builds a POST with the given text fields and optional image.
func multipartRequest(t *testing.T, target string, fields map[string]string, file *formFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename=%q`, file.name))
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestUploadHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	small := append(append([]byte{}, pngHeader...), make([]byte, 1024)...)

	tests := []struct {
		name          string
		file          *formFile
		mockSetup     func(m *MockUploader)
		expectedCode  int
		expectedError string
	}{
		{
			name: "stored",
			file: &formFile{name: "paella.png", contentType: "image/png", data: small},
			mockSetup: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), small, "image/png").
					Return(&models.UploadResult{URL: "https://res.cloudinary.com/demo/recetas/x.png", PublicID: "recetas/x"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "content type sniffed when missing",
			file: &formFile{name: "paella.png", data: small},
			mockSetup: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), small, "image/png").
					Return(&models.UploadResult{URL: "https://example.com/x.png", PublicID: "x"}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "6 MiB file rejected before upload",
			file:          &formFile{name: "big.png", contentType: "image/png", data: make([]byte, 6<<20)},
			mockSetup:     func(m *MockUploader) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: services.ErrImageTooLarge.Error(),
		},
		{
			name:          "missing file",
			mockSetup:     func(m *MockUploader) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "validation failed",
		},
		{
			name: "not an image",
			file: &formFile{name: "notes.txt", contentType: "text/plain", data: []byte("hola")},
			mockSetup: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), []byte("hola"), "text/plain").Return(nil, services.ErrUnsupportedMediaType)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: services.ErrUnsupportedMediaType.Error(),
		},
		{
			name: "provider failure",
			file: &formFile{name: "paella.png", contentType: "image/png", data: small},
			mockSetup: func(m *MockUploader) {
				m.EXPECT().Upload(gomock.Any(), small, "image/png").
					Return(nil, fmt.Errorf("%w: %v", services.ErrUploadFailed, "Invalid Signature"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "image upload failed: Invalid Signature",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewMockUploader(ctrl)
			tt.mockSetup(svc)

			rr := httptest.NewRecorder()
			NewUploadHandler(svc)(rr, multipartRequest(t, "/api/upload", nil, tt.file))

			assert.Equal(t, tt.expectedCode, rr.Code)
			if tt.expectedError == "" {
				var resp models.UploadResult
				decodeBody(t, rr, &resp)
				assert.NotEmpty(t, resp.URL)
				return
			}
			var resp models.ErrorResponse
			decodeBody(t, rr, &resp)
			assert.Equal(t, tt.expectedError, resp.Error)
		})
	}
}
