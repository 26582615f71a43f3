package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hirebase/job-board-api/internal/constants"
)

var (
	ErrLogoType     = errors.New("only image files are allowed")
	ErrLogoTooLarge = errors.New("logo file is too large")
)

var allowedLogoExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".svg":  true,
}

// SaveLogo validates an uploaded employer logo and stores it under
// uploadDir/logos with a random filename. It returns the public path that is
// persisted on the employer row.
func SaveLogo(c *gin.Context, file *multipart.FileHeader, uploadDir string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedLogoExts[ext] {
		return "", ErrLogoType
	}
	if file.Size > constants.MaxLogoSizeBytes {
		return "", ErrLogoTooLarge
	}

	dir := filepath.Join(uploadDir, "logos")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(dir, filename)); err != nil {
		return "", fmt.Errorf("failed to store logo: %w", err)
	}

	return "/uploads/logos/" + filename, nil
}
