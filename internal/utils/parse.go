package utils

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// LoadTOMLFile decodes configPath into v. Keys v has no field for are
// reported and otherwise ignored.
func LoadTOMLFile(configPath string, v any) error {
	md, err := toml.DecodeFile(configPath, v)
	if err != nil {
		return fmt.Errorf("decode %s: %w", configPath, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		log.Warnf("Ignoring unknown keys in %s: %s", configPath, strings.Join(keys, ", "))
	}
	return nil
}

// ParseTOMLWithRecovery decodes configPath into a generic map, for
// picking out the values that still have the right type.
func ParseTOMLWithRecovery(configPath string) (map[string]any, error) {
	data := make(map[string]any)
	if _, err := toml.DecodeFile(configPath, &data); err != nil {
		return nil, fmt.Errorf("decode %s: %w", configPath, err)
	}
	return data, nil
}

// ExtractSection extracts a table from parsed TOML data.
func ExtractSection(data map[string]any, sectionName string) (map[string]any, bool) {
	section, ok := data[sectionName].(map[string]any)
	return section, ok
}

// Extract returns data[key] when it holds a T.
func Extract[T any](data map[string]any, key string) (T, bool) {
	val, ok := data[key].(T)
	return val, ok
}

// ExtractInt returns an integer value. TOML integers decode as int64.
func ExtractInt(data map[string]any, key string) (int, bool) {
	val, ok := data[key].(int64)
	return int(val), ok
}
