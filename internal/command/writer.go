package command

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Write writes one command per line to w.
func Write(w io.Writer, cmds []Command) error {
	bw := bufio.NewWriter(w)
	for _, c := range cmds {
		if _, err := fmt.Fprintln(bw, c.String()); err != nil {
			return fmt.Errorf("failed to write command: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush commands: %w", err)
	}
	return nil
}

// Create opens path for writing command text. A ".xz" suffix compresses the
// output with xz and a ".zst" suffix with zstd; anything else is plain text.
// Closing the returned writer flushes the compressor and closes the file.
func Create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xz":
		xzw, err := xz.NewWriter(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create xz writer: %w", err)
		}
		return &compressedFile{w: xzw, f: f}, nil
	case ".zst":
		enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to create zstd writer: %w", err)
		}
		return &compressedFile{w: enc, f: f}, nil
	default:
		return f, nil
	}
}

// WriteFile writes cmds to path, compressing according to the file suffix.
func WriteFile(path string, cmds []Command) error {
	w, err := Create(path)
	if err != nil {
		return err
	}
	writeErr := Write(w, cmds)
	closeErr := w.Close()

	if writeErr != nil {
		return writeErr
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close output file: %w", closeErr)
	}
	return nil
}

// compressedFile closes the compressor before the file underneath it.
type compressedFile struct {
	w io.WriteCloser
	f *os.File
}

func (c *compressedFile) Write(p []byte) (int, error) {
	return c.w.Write(p)
}

func (c *compressedFile) Close() error {
	err := c.w.Close()
	if cerr := c.f.Close(); err == nil {
		err = cerr
	}
	return err
}
