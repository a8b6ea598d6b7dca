package meshdoc

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies a document encoding.
type Format int

// Supported document encodings.
const (
	YAML Format = iota
	TOML
)

// String returns the format name.
func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name such as "yaml", "yml" or "toml".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}
	return YAML, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatForPath picks the format from a file extension.
func FormatForPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return YAML, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}
