// File: internal/filestorage/service.go
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".pdf":  true,
}

// Service stores uploaded files on local disk under a base path and maps
// stored files to public URLs under a base URL prefix.
type Service struct {
	storagePath string
	baseURL     string
	logger      *zap.Logger
}

// NewService creates the storage service and ensures the base directory exists.
func NewService(storagePath, baseURL string, logger *zap.Logger) (*Service, error) {
	if storagePath == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage path %s: %w", storagePath, err)
	}
	logger.Info("File storage initialized", zap.String("storagePath", storagePath))
	return &Service{
		storagePath: storagePath,
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		logger:      logger,
	}, nil
}

// StoragePath returns the base directory files are written under.
func (s *Service) StoragePath() string {
	return s.storagePath
}

// Save writes a multipart upload into subDir under the storage path with a
// generated filename and returns the stored file's relative path
// (e.g. "proofs/uuid.jpg").
func (s *Service) Save(fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader == nil {
		return "", fmt.Errorf("fileHeader cannot be nil")
	}

	extension := strings.ToLower(filepath.Ext(filepath.Base(fileHeader.Filename)))
	if extension == "" {
		switch contentType := fileHeader.Header.Get("Content-Type"); {
		case strings.HasPrefix(contentType, "image/jpeg"):
			extension = ".jpg"
		case strings.HasPrefix(contentType, "image/png"):
			extension = ".png"
		case strings.HasPrefix(contentType, "image/webp"):
			extension = ".webp"
		default:
			return "", fmt.Errorf("unsupported file type: %s", contentType)
		}
	}
	if !allowedExtensions[extension] {
		return "", fmt.Errorf("unsupported file extension: %s", extension)
	}

	cleanSubDir := filepath.Clean(subDir)
	if strings.HasPrefix(cleanSubDir, "..") {
		return "", fmt.Errorf("invalid subDir path")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	destinationDir := filepath.Join(s.storagePath, cleanSubDir)
	if err := os.MkdirAll(destinationDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", destinationDir, err)
	}

	uniqueFilename := uuid.New().String() + extension
	destinationPath := filepath.Join(destinationDir, uniqueFilename)

	dst, err := os.Create(destinationPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", destinationPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		os.Remove(destinationPath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	relativePath := filepath.ToSlash(filepath.Join(cleanSubDir, uniqueFilename))
	s.logger.Debug("File saved", zap.String("path", relativePath))
	return relativePath, nil
}

// URL maps a stored relative path to its public URL.
func (s *Service) URL(relativePath string) string {
	if relativePath == "" {
		return ""
	}
	return s.baseURL + "/" + strings.TrimPrefix(filepath.ToSlash(relativePath), "/")
}

// Delete removes a stored file. Deleting a file that no longer exists is not
// an error.
func (s *Service) Delete(relativePath string) error {
	if relativePath == "" {
		return fmt.Errorf("relative path cannot be empty")
	}
	cleanRelativePath := filepath.Clean(relativePath)
	if strings.Contains(cleanRelativePath, "..") {
		s.logger.Warn("Rejected file delete outside storage path", zap.String("relativePath", relativePath))
		return fmt.Errorf("invalid file path for deletion")
	}

	fullPath := filepath.Join(s.storagePath, cleanRelativePath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	if err := os.Remove(fullPath); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}
