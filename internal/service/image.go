package service

import (
	"context"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/artshowcase/showcase/internal/model"
	"github.com/artshowcase/showcase/internal/storage"
	"github.com/artshowcase/showcase/internal/validation"
)

// ObjectStore is the part of storage.S3Storage the image service needs.
type ObjectStore interface {
	storage.Storage
	KeyFromURL(u string) (string, bool)
}

// ImageService uploads artwork images to object storage. The resulting URL
// is saved as the artwork's imageURL; the backend never sees the file.
type ImageService struct {
	store       ObjectStore
	constraints validation.FileConstraints
}

func NewImageService(store ObjectStore, maxBytes int64) *ImageService {
	return &ImageService{
		store:       store,
		constraints: validation.ImageConstraints.WithMaxSize(maxBytes),
	}
}

// Upload validates and stores an image and returns its public URL.
func (s *ImageService) Upload(ctx context.Context, sess *model.Session, header *multipart.FileHeader) (string, error) {
	if sess == nil {
		return "", ErrLoginRequired
	}

	contentType, err := validation.ValidateFile(header, s.constraints)
	if err != nil {
		return "", err
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer func() { _ = file.Close() }()

	key := ImageKey(sess.Email, header.Filename)
	url, err := s.store.Save(ctx, key, file, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to save image: %w", err)
	}

	slog.Info("artwork image uploaded", "email", sess.Email, "key", key, "size", header.Size)
	return url, nil
}

// Remove deletes an uploaded image. URLs that point elsewhere are ignored.
func (s *ImageService) Remove(ctx context.Context, imageURL string) error {
	key, ok := s.store.KeyFromURL(imageURL)
	if !ok {
		return nil
	}
	return s.store.Delete(ctx, key)
}

// ImageKey builds a unique object key grouped by owner.
func ImageKey(email, filename string) string {
	owner := strings.NewReplacer("@", "_at_", "/", "_", " ", "_").Replace(strings.ToLower(email))
	ext := strings.ToLower(filepath.Ext(filename))
	return "artworks/" + owner + "/" + uuid.NewString() + ext
}
