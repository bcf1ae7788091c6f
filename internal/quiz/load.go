package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the encoding of a quiz sheet.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(value string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (expected json|yaml)", value)
	}
}

// FormatForPath infers the sheet format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadSheet reads and parses a quiz sheet file.
func LoadSheet(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Sheet{}, fmt.Errorf("read quiz sheet: %w", err)
	}
	return ParseSheet(data, FormatForPath(path))
}

// ParseSheet decodes a single-document quiz sheet.
func ParseSheet(data []byte, format Format) (Sheet, error) {
	if format == FormatYAML {
		return parseYAMLSheet(data)
	}
	return parseJSONSheet(data)
}

// WriteSheet encodes a sheet to w.
func WriteSheet(w io.Writer, sheet Sheet, format Format) error {
	if format == FormatYAML {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(sheet); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return encoder.Close()
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(sheet); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func parseJSONSheet(data []byte) (Sheet, error) {
	var sheet Sheet
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&sheet); err != nil {
		return Sheet{}, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Sheet{}, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return Sheet{}, fmt.Errorf("parse json: %w", err)
	}
	return sheet, nil
}

func parseYAMLSheet(data []byte) (Sheet, error) {
	var sheet Sheet
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&sheet); err != nil {
		return Sheet{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return Sheet{}, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return Sheet{}, fmt.Errorf("parse yaml: %w", err)
	}
	return sheet, nil
}
