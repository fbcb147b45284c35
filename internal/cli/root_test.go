// Package cli_test provides tests for the CLI package.
package cli_test

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"

	"github.com/jmylchreest/blockart/internal/cli"
	"github.com/jmylchreest/blockart/internal/colour"
	blockimage "github.com/jmylchreest/blockart/internal/image"
)

const testPalette = `name: test
materials:
  - id: minecraft:white_wool
    rgb: [255, 255, 255]
  - id: minecraft:black_wool
    hex: "#151515"
`

// setupTests writes a 3x2 image and a two-colour palette into a temp directory.
// The image is white except for a black run at the end of the first row.
func setupTests(t *testing.T) (dir, imagePath, palettePath string) {
	t.Helper()
	dir = t.TempDir()

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			img.Set(x, y, color.RGBA{R: 240, G: 240, B: 240, A: 255})
		}
	}
	img.Set(1, 0, color.RGBA{R: 10, G: 10, B: 10, A: 255})
	img.Set(2, 0, color.RGBA{R: 30, G: 30, B: 30, A: 255})

	imagePath = filepath.Join(dir, "input.png")
	if err := blockimage.SavePNG(imagePath, img); err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}

	palettePath = filepath.Join(dir, "wool.yaml")
	if err := os.WriteFile(palettePath, []byte(testPalette), 0o600); err != nil {
		t.Fatalf("Failed to create palette file: %v", err)
	}
	return dir, imagePath, palettePath
}

const wantCommands = `/fill ~ ~-1 ~ ~127 ~-1 ~127 minecraft:white_wool
/fill ~1 ~-1 ~0 ~2 ~-1 ~0 minecraft:black_wool
`

func execute(args ...string) (stdout, stderr string, err error) {
	var outBuf, errBuf bytes.Buffer
	rootCmd := cli.NewRootCmd()
	rootCmd.SetOut(&outBuf)
	rootCmd.SetErr(&errBuf)
	rootCmd.SetArgs(args)
	err = rootCmd.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestWrongArgumentCount(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want int
	}{
		{name: "none", args: nil, want: 0},
		{name: "two", args: []string{"a.png", "b.png"}, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(tt.args...)
			var usage *cli.UsageError
			if !errors.As(err, &usage) {
				t.Fatalf("Execute() error = %v, want UsageError", err)
			}
			if usage.Got != tt.want {
				t.Errorf("UsageError.Got = %d, want %d", usage.Got, tt.want)
			}
			if stdout != "" {
				t.Errorf("Expected no commands on stdout, got %q", stdout)
			}
		})
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	stdout, _, err := execute("--out-dir", dir, filepath.Join(dir, "missing.png"))
	if !errors.Is(err, blockimage.ErrInputNotFound) {
		t.Fatalf("Execute() error = %v, want ErrInputNotFound", err)
	}
	if stdout != "" {
		t.Errorf("Expected no commands on stdout, got %q", stdout)
	}
	if _, err := os.Stat(filepath.Join(dir, "First.png")); !os.IsNotExist(err) {
		t.Errorf("Expected no pass image for a missing input")
	}
}

func TestGenerateCommands(t *testing.T) {
	dir, imagePath, palettePath := setupTests(t)
	outDir := filepath.Join(dir, "out")

	stdout, _, err := execute("--palette", palettePath, "--out-dir", outDir, imagePath)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if stdout != wantCommands {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, wantCommands)
	}

	for _, name := range []string{"First.png", "Second.png"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("Expected %s to be written: %v", name, err)
		}
	}
}

func TestGenerateFlags(t *testing.T) {
	dir, imagePath, palettePath := setupTests(t)

	t.Run("area", func(t *testing.T) {
		stdout, _, err := execute("--palette", palettePath, "--no-images", "--area", "256x64", imagePath)
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if first := strings.SplitN(stdout, "\n", 2)[0]; first != "/fill ~ ~-1 ~ ~255 ~-1 ~63 minecraft:white_wool" {
			t.Errorf("base fill = %q", first)
		}
	})

	t.Run("single pass", func(t *testing.T) {
		outDir := filepath.Join(dir, "single")
		_, _, err := execute("--palette", palettePath, "--out-dir", outDir,
			"--passes", "euclidean", "--command-metric", "euclidean", imagePath)
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if _, err := os.Stat(filepath.Join(outDir, "Second.png")); !os.IsNotExist(err) {
			t.Errorf("Expected Second.png not to be written")
		}
	})

	t.Run("unknown metric", func(t *testing.T) {
		_, _, err := execute("--palette", palettePath, "--no-images", "--passes", "hsv", imagePath)
		if !errors.Is(err, colour.ErrUnknownMetric) {
			t.Errorf("Execute() error = %v, want ErrUnknownMetric", err)
		}
	})

	t.Run("command metric not run", func(t *testing.T) {
		_, _, err := execute("--palette", palettePath, "--no-images", "--passes", "euclidean", imagePath)
		if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
			t.Errorf("Execute() error = %v, want invalid configuration", err)
		}
	})

	t.Run("bad area", func(t *testing.T) {
		if _, _, err := execute("--area", "wide", imagePath); err == nil {
			t.Error("Execute() expected error for bad area")
		}
	})

	t.Run("verbose and quiet", func(t *testing.T) {
		if _, _, err := execute("-v", "-q", imagePath); err == nil {
			t.Error("Execute() expected error for -v with -q")
		}
	})
}

func TestCompressedOutput(t *testing.T) {
	dir, imagePath, palettePath := setupTests(t)
	output := filepath.Join(dir, "commands.txt.xz")

	stdout, _, err := execute("--palette", palettePath, "--no-images", "--output", output, imagePath)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if stdout != "" {
		t.Errorf("Expected nothing on stdout with --output, got %q", stdout)
	}

	f, err := os.Open(output)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer f.Close()

	r, err := xz.NewReader(f)
	if err != nil {
		t.Fatalf("xz.NewReader() unexpected error: %v", err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("Failed to decompress output: %v", err)
	}
	if string(data) != wantCommands {
		t.Errorf("output =\n%s\nwant\n%s", data, wantCommands)
	}
}

func TestVerboseSummary(t *testing.T) {
	_, imagePath, palettePath := setupTests(t)

	stdout, stderr, err := execute("-v", "--palette", palettePath, "--no-images", imagePath)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if stdout != wantCommands {
		t.Errorf("stdout =\n%s\nwant\n%s", stdout, wantCommands)
	}

	for _, want := range []string{
		"Background: minecraft:white_wool #ffffff",
		"Commands: 2 (2 fill, 0 setblock, 2 cells overridden)",
		"minecraft:black_wool",
		"image loaded",
	} {
		if !strings.Contains(stderr, want) {
			t.Errorf("Expected stderr to contain %q, got:\n%s", want, stderr)
		}
	}
}

func TestQuiet(t *testing.T) {
	_, imagePath, palettePath := setupTests(t)

	_, stderr, err := execute("-q", "--palette", palettePath, "--no-images", imagePath)
	if err != nil {
		t.Fatalf("Execute() unexpected error: %v", err)
	}
	if stderr != "" {
		t.Errorf("Expected no stderr output with -q, got %q", stderr)
	}
}

func TestPaletteCommand(t *testing.T) {
	_, _, palettePath := setupTests(t)

	t.Run("custom", func(t *testing.T) {
		stdout, _, err := execute("palette", "--palette", palettePath)
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		for _, want := range []string{
			`Palette "test", 2 materials`,
			"1  minecraft:white_wool  #ffffff",
			"2  minecraft:black_wool  #151515",
		} {
			if !strings.Contains(stdout, want) {
				t.Errorf("Expected output to contain %q, got:\n%s", want, stdout)
			}
		}
	})

	t.Run("default", func(t *testing.T) {
		stdout, _, err := execute("palette")
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "minecraft:slime_block") {
			t.Errorf("Expected the built-in palette, got:\n%s", stdout)
		}
	})

	t.Run("export", func(t *testing.T) {
		stdout, _, err := execute("palette", "--export")
		if err != nil {
			t.Fatalf("Execute() unexpected error: %v", err)
		}
		if !strings.Contains(stdout, "name: minecraft-map") {
			t.Errorf("Expected palette YAML, got:\n%s", stdout)
		}
	})

	t.Run("missing palette file", func(t *testing.T) {
		if _, _, err := execute("palette", "--palette", "missing.yaml"); err == nil {
			t.Error("Execute() expected error for a missing palette file")
		}
	})
}
