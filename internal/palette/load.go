package palette

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/blockart/internal/colour"
)

// ErrInvalidPalette is returned when a palette file is malformed.
var ErrInvalidPalette = errors.New("invalid palette")

// DefaultName is the name of the built-in palette.
const DefaultName = "minecraft-map"

//go:embed default.yaml
var defaultYAML []byte

//go:embed schema.json
var schemaJSON string

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("palette.schema.json", schemaJSON)
})

var defaultPalette = sync.OnceValue(func() *Palette {
	p, err := Parse(DefaultName, defaultYAML)
	if err != nil {
		panic(fmt.Sprintf("palette: built-in palette is broken: %v", err))
	}
	return p
})

// file is the on-disk palette layout. JSON files use the same keys.
type file struct {
	Name      string      `yaml:"name"`
	Materials []fileEntry `yaml:"materials"`
}

type fileEntry struct {
	ID  string `yaml:"id"`
	RGB []int  `yaml:"rgb"`
	Hex string `yaml:"hex"`
}

// Default returns the built-in Minecraft map colour palette.
func Default() *Palette {
	return defaultPalette()
}

// DefaultYAML returns the source of the built-in palette, useful as a
// starting point for a custom palette file.
func DefaultYAML() []byte {
	return bytes.Clone(defaultYAML)
}

// Load reads a palette from a YAML or JSON file.
func Load(path string) (*Palette, error) {
	data, err := os.ReadFile(path) // #nosec G304 - User-specified palette path, intended to be read
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("palette file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read palette file: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	p, err := Parse(name, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Parse decodes a palette document. YAML is a superset of JSON, so both are
// accepted. The document is checked against the palette schema before any
// entries are built. A name in the document takes precedence over name.
func Parse(name string, data []byte) (*Palette, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	if f.Name != "" {
		name = f.Name
	}

	entries := make([]Entry, 0, len(f.Materials))
	for i, m := range f.Materials {
		c, err := m.colour()
		if err != nil {
			return nil, fmt.Errorf("%w: material %d (%s): %v", ErrInvalidPalette, i, m.ID, err)
		}
		entries = append(entries, Entry{ID: m.ID, Colour: c})
	}

	return New(name, entries)
}

func (e fileEntry) colour() (colour.RGB, error) {
	if e.Hex != "" {
		return colour.ParseHex(e.Hex)
	}
	if len(e.RGB) != 3 {
		return colour.RGB{}, fmt.Errorf("rgb must have 3 channels, got %d", len(e.RGB))
	}
	return colour.RGB{R: uint8(e.RGB[0]), G: uint8(e.RGB[1]), B: uint8(e.RGB[2])}, nil
}

// validate checks the raw document against the embedded JSON schema.
// The YAML tree is round-tripped through encoding/json so the validator
// sees the same value types it would for a JSON file.
func validate(data []byte) error {
	schema, err := compileSchema()
	if err != nil {
		return fmt.Errorf("failed to compile palette schema: %w", err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var inst any
	if err := dec.Decode(&inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}

	if err := schema.Validate(inst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPalette, err)
	}
	return nil
}
