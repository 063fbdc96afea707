// SPDX-License-Identifier: MIT
package media

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF decoder
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

const (
	// MaxIconWidth is the widest icon accepted for categories and servers
	MaxIconWidth = 70
	// MaxIconHeight is the tallest icon accepted for categories and servers
	MaxIconHeight = 70
)

// ErrUnsupportedExtension is returned for icon files that are not jpg, png or gif
var ErrUnsupportedExtension = errors.New("Unsupported file extension")

var validExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var validContentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// IconSizeError reports an icon larger than MaxIconWidth x MaxIconHeight
type IconSizeError struct {
	Width  int
	Height int
}

func (e *IconSizeError) Error() string {
	return fmt.Sprintf("The maximum size allowed dimensions for the image are %dx%d - size of image you uploaded: (%d, %d)",
		MaxIconWidth, MaxIconHeight, e.Width, e.Height)
}

// ValidateImageExtension checks the file name's extension, case-insensitively
func ValidateImageExtension(name string) error {
	if !validExtensions[strings.ToLower(filepath.Ext(name))] {
		return ErrUnsupportedExtension
	}
	return nil
}

// ValidateIconSize decodes the image header and rejects oversized icons
func ValidateIconSize(r io.Reader) error {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}
	if cfg.Width > MaxIconWidth || cfg.Height > MaxIconHeight {
		return &IconSizeError{Width: cfg.Width, Height: cfg.Height}
	}
	return nil
}

// StoreIcon validates the icon at src and copies it into iconsDir under a
// random name. It returns the stored file name.
func StoreIcon(src, iconsDir string) (string, error) {
	if err := ValidateImageExtension(src); err != nil {
		return "", err
	}

	file, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open icon: %w", err)
	}
	defer file.Close()

	// Validate file content type using Magic Bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file for validation: %w", err)
	}
	contentType := http.DetectContentType(buffer[:n])
	if !validContentTypes[contentType] {
		return "", fmt.Errorf("invalid file type: %s (only images allowed)", contentType)
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to reset file pointer: %w", err)
	}
	if err := ValidateIconSize(file); err != nil {
		return "", err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to reset file pointer: %w", err)
	}

	if err := os.MkdirAll(iconsDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create icons directory: %w", err)
	}

	// Generate random filename to avoid conflicts
	randomBytes := make([]byte, 16)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", fmt.Errorf("failed to generate random filename: %w", err)
	}
	filename := hex.EncodeToString(randomBytes) + strings.ToLower(filepath.Ext(src))

	dst, err := os.Create(filepath.Join(iconsDir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", fmt.Errorf("failed to copy file: %w", err)
	}

	return filename, nil
}
