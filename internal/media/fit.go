package media

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// FitIcon scales the image at srcPath down to fit MaxIconWidth x MaxIconHeight,
// keeping its aspect ratio, and writes it as PNG to dstPath. Images that
// already fit are re-encoded unscaled.
func FitIcon(srcPath, dstPath string) error {
	srcFile, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open source image: %w", err)
	}
	defer srcFile.Close()

	img, _, err := image.Decode(srcFile)
	if err != nil {
		return fmt.Errorf("failed to decode image: %w", err)
	}

	width, height := fitWithin(img.Bounds().Dx(), img.Bounds().Dy(), MaxIconWidth, MaxIconHeight)
	icon := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(icon, icon.Bounds(), img, img.Bounds(), draw.Over, nil)

	if err := os.MkdirAll(filepath.Dir(dstPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	dstFile, err := os.Create(dstPath)
	if err != nil {
		return fmt.Errorf("failed to create icon file: %w", err)
	}
	defer dstFile.Close()

	if err := png.Encode(dstFile, icon); err != nil {
		return fmt.Errorf("failed to encode icon: %w", err)
	}

	return nil
}

func fitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= maxW && h <= maxH {
		return w, h
	}
	if w*maxH > h*maxW {
		return maxW, max(1, h*maxW/w)
	}
	return max(1, w*maxH/h), maxH
}
