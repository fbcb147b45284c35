package image

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 60), G: uint8(y * 100), B: 30, A: 255})
		}
	}
	return img
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.png")
	src := testImage()

	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG() unexpected error: %v", err)
	}

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if img.Bounds() != src.Bounds() {
		t.Fatalf("Bounds() = %v, want %v", img.Bounds(), src.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			gr, gg, gb, ga := img.At(x, y).RGBA()
			wr, wg, wb, wa := src.At(x, y).RGBA()
			if gr != wr || gg != wg || gb != wb || ga != wa {
				t.Errorf("pixel (%d, %d) differs after round trip", x, y)
			}
		}
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	if err := os.WriteFile(garbage, []byte("dummy image data"), 0o600); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}

	tests := []struct {
		name         string
		path         string
		wantNotFound bool
	}{
		{name: "empty path", path: ""},
		{name: "missing", path: filepath.Join(dir, "missing.png"), wantNotFound: true},
		{name: "directory", path: dir},
		{name: "not an image", path: garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFileLoader().Load(tt.path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if got := errors.Is(err, ErrInputNotFound); got != tt.wantNotFound {
				t.Errorf("errors.Is(err, ErrInputNotFound) = %v, want %v (err: %v)", got, tt.wantNotFound, err)
			}
		})
	}
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := ValidatePath("nope.png")
	if err == nil || err.Error() != `input file "nope.png" does not exist` {
		t.Errorf("ValidatePath() error = %v", err)
	}
}
