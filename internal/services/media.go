package services

//go:generate mockgen -source=media.go -destination=media_mock.go -package=services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sbilibin2017/gw-recipes/internal/logger"
	"github.com/sbilibin2017/gw-recipes/internal/models"
)

// MaxImageSize is the largest accepted image, 5 MiB.
const MaxImageSize = 5 << 20

var (
	ErrImageTooLarge        = errors.New("image exceeds 5 MiB")
	ErrUnsupportedMediaType = errors.New("only image files are allowed")
	ErrUploadFailed         = errors.New("image upload failed")
)

// ImageHost stores an image with an external provider.
type ImageHost interface {
	Upload(ctx context.Context, data []byte, contentType string) (*models.UploadResult, error)
}

type MediaService struct {
	host ImageHost
}

func NewMediaService(host ImageHost) *MediaService {
	return &MediaService{host: host}
}

// Upload checks size and type before any network call. Provider failures
// are not retried.
func (svc *MediaService) Upload(ctx context.Context, data []byte, contentType string) (*models.UploadResult, error) {
	if len(data) > MaxImageSize {
		return nil, ErrImageTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, ErrUnsupportedMediaType
	}

	res, err := svc.host.Upload(ctx, data, contentType)
	if err != nil {
		logger.Log.Errorw("failed to upload image", "content_type", contentType, "size", len(data), "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return res, nil
}
