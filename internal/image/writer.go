package image

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// SavePNG encodes img as PNG at path, creating parent directories as needed.
func SavePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil { // #nosec G301 - Output directory needs standard permissions
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	encodeErr := png.Encode(file, img)
	closeErr := file.Close()

	if encodeErr != nil {
		return fmt.Errorf("failed to encode png: %w", encodeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close image file: %w", closeErr)
	}
	return nil
}
