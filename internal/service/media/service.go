package media

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
)

// MaxUploadSize is the per-file limit for admin image uploads.
const MaxUploadSize = 5 << 20

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type Service interface {
	Upload(ctx context.Context, folder, fileName, mimeType string, fileSize int64, reader io.Reader) (string, error)
	Delete(ctx context.Context, objectPath string) error
}

type service struct {
	minioClient *minio.Client
	cfg         *config.Config
}

func NewService(minioClient *minio.Client, cfg *config.Config) Service {
	return &service{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Upload stores the image under folder/<epoch-ms>-<sanitized-name> and
// returns its public URL.
func (s *service) Upload(ctx context.Context, folder, fileName, mimeType string, fileSize int64, reader io.Reader) (string, error) {
	if !allowedMimeTypes[mimeType] {
		return "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFileType, mimeType)
	}
	if fileSize > MaxUploadSize {
		return "", domain.ErrFileTooLarge
	}

	objectPath := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), sanitizeFileName(fileName))

	_, err := s.minioClient.PutObject(ctx, s.cfg.MinIOBucket, objectPath, reader, fileSize, minio.PutObjectOptions{
		ContentType: mimeType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	return s.getPublicURL(objectPath), nil
}

func (s *service) Delete(ctx context.Context, objectPath string) error {
	return s.minioClient.RemoveObject(ctx, s.cfg.MinIOBucket, objectPath, minio.RemoveObjectOptions{})
}

func (s *service) getPublicURL(objectPath string) string {
	scheme := "http"
	if s.cfg.MinIOPublicUseSSL {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", scheme, s.cfg.MinIOPublicEndpoint, s.cfg.MinIOBucket, url.PathEscape(objectPath))
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}
