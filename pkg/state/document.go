package state

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/opd-ai/go-lander/pkg/validation"
)

// Format is a scene document encoding.
type Format string

// Supported scene document formats.
const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks a format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported scene file extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// Decode reads and validates a scene document.
func Decode(r io.Reader, format Format) (Scene, error) {
	data, err := io.ReadAll(io.LimitReader(r, validation.MaxDocumentSize+1))
	if err != nil {
		return Scene{}, fmt.Errorf("failed to read scene: %w", err)
	}
	return Unmarshal(data, format)
}

// Unmarshal parses and validates a scene document held in memory.
// Unnamed objects get a generated name of the form "<class>-<id>".
func Unmarshal(data []byte, format Format) (Scene, error) {
	if err := validation.ValidateDocument(data); err != nil {
		return Scene{}, err
	}

	var s Scene
	switch format {
	case FormatJSON:
		err := json.Unmarshal(data, &s)
		if err != nil {
			return Scene{}, fmt.Errorf("failed to parse scene JSON: %w", err)
		}
	case FormatYAML:
		err := yaml.Unmarshal(data, &s)
		if err != nil {
			return Scene{}, fmt.Errorf("failed to parse scene YAML: %w", err)
		}
	default:
		return Scene{}, fmt.Errorf("unknown scene format %q", format)
	}

	if err := normalize(&s); err != nil {
		return Scene{}, err
	}
	return s, nil
}

func normalize(s *Scene) error {
	if err := validation.ValidateObjectCount(len(s.Objects)); err != nil {
		return err
	}
	for i := range s.Objects {
		o := &s.Objects[i]
		name, err := validation.ValidateObjectName(o.Name)
		if err != nil {
			return fmt.Errorf("object %d: %w", i, err)
		}
		if name == "" {
			name = fmt.Sprintf("%s-%s", o.Class, uuid.NewString()[:8])
		}
		o.Name = name
		o.Class = Class(strings.ToLower(strings.TrimSpace(string(o.Class))))
		if o.Class == "" {
			return fmt.Errorf("object %q: class is required", o.Name)
		}
		if err := validation.ValidateAttributeCount(len(o.Values)); err != nil {
			return fmt.Errorf("object %q: %w", o.Name, err)
		}
		for _, attr := range o.Attributes() {
			if err := validation.ValidateFinite(attr, o.Values[attr]); err != nil {
				return fmt.Errorf("object %q: %w", o.Name, err)
			}
		}
	}
	return nil
}

// LoadScene loads a scene document from a .json, .yaml or .yml file.
func LoadScene(path string) (Scene, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return Scene{}, err
	}

	file, err := os.Open(path)
	if err != nil {
		return Scene{}, fmt.Errorf("failed to open scene file: %w", err)
	}
	defer file.Close()

	return Decode(file, format)
}

// SaveScene writes a scene document, choosing the format by extension.
func SaveScene(s Scene, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	var data []byte
	if format == FormatJSON {
		data, err = json.MarshalIndent(s, "", "  ")
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}
