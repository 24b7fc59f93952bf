package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/kepl/map2-server/internal/domain/repository"
	"github.com/kepl/map2-server/pkg/helpers"
)

// maxUploadBytes caps listing images at 5 MiB.
const maxUploadBytes = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService stores listing images in GCS under a per-user prefix and
// hands back the public URL clients put into imageUrl fields.
type UploadService struct {
	Users     repository.UserRepository
	GCS       *storage.Client
	GCSBucket string
}

func NewUploadService(users repository.UserRepository, gcs *storage.Client, bucket string) *UploadService {
	return &UploadService{Users: users, GCS: gcs, GCSBucket: bucket}
}

func (s *UploadService) UploadImage(ctx context.Context, callerID, filename, contentType string, size int64, r io.Reader) (string, error) {
	caller, err := resolveCaller(ctx, s.Users, callerID)
	if err != nil {
		return "", err
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", errors.New("gcs not configured")
	}
	if !allowedImageTypes[contentType] {
		return "", validationf("unsupported content type %q", contentType)
	}
	if size > maxUploadBytes {
		return "", validationf("file exceeds %d bytes", maxUploadBytes)
	}

	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("listings", caller.ID, id+ext))
	return helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, io.LimitReader(r, maxUploadBytes))
}
