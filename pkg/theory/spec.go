package theory

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

//go:embed righte.toml
var defaultTheory []byte

// Spec is the on-disk form of a theory. Patterns use the text syntax of
// pattern.Parse.
type Spec struct {
	Name      string              `toml:"name" yaml:"name"`
	Version   int                 `toml:"version" yaml:"version"`
	TrailingE bool                `toml:"trailing_e" yaml:"trailing_e"`
	Left      BankSpec            `toml:"left" yaml:"left"`
	Right     BankSpec            `toml:"right" yaml:"right"`
	Vowels    map[string][]string `toml:"vowels" yaml:"vowels"`
	Fragments map[string]string   `toml:"fragments" yaml:"fragments"`
}

// BankSpec describes the chords of one consonant bank.
//
// Columns lists chord=pattern pairs separated by spaces, one line per
// column. Extra adds alternatives to compiled chords and Replace
// overwrites them. ExpandFR and IngChord only apply to the right bank.
type BankSpec struct {
	Columns  []string          `toml:"columns" yaml:"columns"`
	Extra    map[string]string `toml:"extra" yaml:"extra"`
	Replace  map[string]string `toml:"replace" yaml:"replace"`
	ExpandFR bool              `toml:"expand_fr" yaml:"expand_fr"`
	IngChord string            `toml:"ing_chord" yaml:"ing_chord"`
}

// Format is the encoding of a theory file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// DetectFormat picks the format from a file extension.
// Unknown extensions are treated as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// DecodeSpec reads a theory spec in the given format.
func DecodeSpec(r io.Reader, format Format) (Spec, error) {
	var spec Spec
	switch format {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
			return Spec{}, fmt.Errorf("decode YAML theory: %w", err)
		}
	default:
		if _, err := toml.NewDecoder(r).Decode(&spec); err != nil {
			return Spec{}, fmt.Errorf("decode TOML theory: %w", err)
		}
	}
	return spec, nil
}

// DefaultSpec returns the built-in Right E theory spec.
func DefaultSpec() Spec {
	spec, err := DecodeSpec(bytes.NewReader(defaultTheory), FormatTOML)
	if err != nil {
		panic(fmt.Sprintf("embedded theory: %v", err))
	}
	return spec
}

// Default builds the built-in Right E theory.
func Default() *Theory {
	t, err := New(DefaultSpec())
	if err != nil {
		panic(fmt.Sprintf("embedded theory: %v", err))
	}
	return t
}

// LoadFile builds a theory from a TOML or YAML file.
// An empty path yields the built-in theory.
func LoadFile(path string) (*Theory, error) {
	if path == "" {
		log.Debug("Using built-in theory")
		return Default(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open theory %s: %w", path, err)
	}
	defer file.Close()

	spec, err := DecodeSpec(file, DetectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("theory %s: %w", path, err)
	}
	t, err := New(spec)
	if err != nil {
		return nil, fmt.Errorf("theory %s: %w", path, err)
	}
	log.Debugf("Loaded theory %q v%d from %s", t.Name, t.Version, path)
	return t, nil
}
