package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	swatchExtRegex = regexp.MustCompile(`(?i)\.(png|jpg|jpeg)$`)
	swatchIDRegex  = regexp.MustCompile(`^[A-Z]{2,4}\d{3,}$`)
)

// SwatchFile holds the fabric fields encoded in a swatch image filename
type SwatchFile struct {
	FabricID  string // e.g. "WO001"
	ColorCode string // e.g. "NV"
	Category  string // e.g. "wool"
}

// ParseSwatchFileName parses a filename following the pattern:
// FABRICID-COLORCODE-CATEGORY.PNG
// Example: WO001-NV-wool.png
func ParseSwatchFileName(filename string) (*SwatchFile, error) {
	if !swatchExtRegex.MatchString(filename) {
		return nil, fmt.Errorf("invalid swatch file extension: %s", filename)
	}
	nameWithoutExt := swatchExtRegex.ReplaceAllString(filename, "")

	// Split by hyphen
	parts := strings.Split(nameWithoutExt, "-")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid filename format: expected 3 parts separated by '-', got %d parts", len(parts))
	}

	// Part 0: FABRICID
	fabricID := strings.ToUpper(strings.TrimSpace(parts[0]))
	if !swatchIDRegex.MatchString(fabricID) {
		return nil, fmt.Errorf("invalid fabric id format: expected letters followed by digits (e.g., WO001), got %s", parts[0])
	}

	// Part 1: COLORCODE
	colorCode := strings.ToUpper(strings.TrimSpace(parts[1]))
	if colorCode == "" {
		return nil, fmt.Errorf("color code cannot be empty")
	}

	// Part 2: CATEGORY
	category := strings.ToLower(strings.TrimSpace(parts[2]))
	if category == "" {
		return nil, fmt.Errorf("category cannot be empty")
	}

	return &SwatchFile{
		FabricID:  fabricID,
		ColorCode: colorCode,
		Category:  category,
	}, nil
}
