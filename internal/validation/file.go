package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// FileError is an upload rejected by the constraints. Its message is meant
// for the user.
type FileError struct {
	Reason string
}

func (e *FileError) Error() string {
	return e.Reason
}

func rejectFile(format string, args ...any) error {
	return &FileError{Reason: fmt.Sprintf(format, args...)}
}

// FileConstraints defines validation rules for file uploads
type FileConstraints struct {
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

// ImageConstraints accepts the artwork image formats browsers render.
var ImageConstraints = FileConstraints{
	AllowedMimeTypes: map[string]bool{
		"image/jpeg": true,
		"image/png":  true,
		"image/webp": true,
		"image/gif":  true,
	},
	AllowedExtensions: map[string]bool{
		".jpg":  true,
		".jpeg": true,
		".png":  true,
		".webp": true,
		".gif":  true,
	},
	MaxSize: 5 << 20, // 5MB
}

// WithMaxSize returns a copy of c with a different size limit.
func (c FileConstraints) WithMaxSize(n int64) FileConstraints {
	if n > 0 {
		c.MaxSize = n
	}
	return c
}

// ValidateFile validates an upload and returns the content type detected
// from its first bytes.
func ValidateFile(header *multipart.FileHeader, constraints FileConstraints) (string, error) {
	// Size first, before reading content
	if header.Size > constraints.MaxSize {
		maxMB := constraints.MaxSize / (1 << 20)
		return "", rejectFile("file too large: maximum size is %d MB", maxMB)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return detect(file, header.Filename, constraints)
}

func detect(r io.Reader, filename string, constraints FileConstraints) (string, error) {
	// http.DetectContentType looks at 512 bytes at most
	buffer := make([]byte, 512)
	n, err := io.ReadFull(r, buffer)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	// Magic numbers, not the client supplied Content-Type
	detectedType := http.DetectContentType(buffer[:n])
	if !constraints.AllowedMimeTypes[detectedType] {
		return "", rejectFile("invalid file type (detected: %s)", detectedType)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !constraints.AllowedExtensions[ext] {
		return "", rejectFile("invalid file extension: %s", ext)
	}

	return detectedType, nil
}
