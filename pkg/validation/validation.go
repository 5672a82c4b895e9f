// Package validation checks scene documents before they reach the renderer:
// document size, object counts, object names and numeric attribute values.
package validation

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scene document limits.
const (
	MaxDocumentSize   = 1 << 20 // 1MB per scene file
	MaxObjects        = 4096
	MaxObjectNameLen  = 64
	MaxAttributeCount = 32
)

// Object names are identifiers: letters, digits, hyphens, underscores, dots and colons.
var validObjectNameChars = regexp.MustCompile(`^[a-zA-Z0-9\-_.:]+$`)

// ValidateDocument checks a raw scene document against size constraints.
func ValidateDocument(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("scene document is empty")
	}
	if len(data) > MaxDocumentSize {
		return fmt.Errorf("scene document too large: %d bytes (max %d)", len(data), MaxDocumentSize)
	}
	if !utf8.Valid(data) {
		return fmt.Errorf("scene document contains invalid UTF-8")
	}
	return nil
}

// ValidateObjectCount checks the number of objects in a scene.
func ValidateObjectCount(n int) error {
	if n > MaxObjects {
		return fmt.Errorf("too many objects: %d (max %d)", n, MaxObjects)
	}
	return nil
}

// ValidateObjectName validates and trims an object name. Empty names are
// allowed here; the scene loader assigns generated names to them.
func ValidateObjectName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", nil
	}

	if len(trimmed) > MaxObjectNameLen {
		return "", fmt.Errorf("object name too long: %d characters (max %d)", len(trimmed), MaxObjectNameLen)
	}

	for _, r := range trimmed {
		if unicode.IsControl(r) {
			return "", fmt.Errorf("object name contains control characters")
		}
	}

	if !validObjectNameChars.MatchString(trimmed) {
		return "", fmt.Errorf("object name %q contains invalid characters (only alphanumeric, hyphens, underscores, dots and colons allowed)", trimmed)
	}

	return trimmed, nil
}

// ValidateAttributeCount bounds the number of attributes on one object.
func ValidateAttributeCount(n int) error {
	if n > MaxAttributeCount {
		return fmt.Errorf("too many attributes: %d (max %d)", n, MaxAttributeCount)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite attribute values.
func ValidateFinite(attr string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("attribute %q must be finite, got %v", attr, v)
	}
	return nil
}
