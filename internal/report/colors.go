// internal/report/colors.go
package report

import (
	"maps"
	"strings"
)

// FallbackColor is used for algorithms without an entry in the palette.
const FallbackColor = "gray"

// DefaultColors returns the historical algorithm palette.
func DefaultColors() map[string]string {
	return map[string]string{
		"bz2":  "#1f77b4",
		"gz":   "#ff7f0e",
		"lz4":  "#2ca02c",
		"zstd": "#d62728",
	}
}

// Palette maps algorithm names to chart colours.
type Palette struct {
	colors map[string]string
}

// NewPalette layers overrides on top of DefaultColors. Keys are matched
// case-insensitively.
func NewPalette(overrides map[string]string) Palette {
	colors := DefaultColors()
	maps.Copy(colors, overrides)
	normalized := make(map[string]string, len(colors))
	for alg, color := range colors {
		if strings.TrimSpace(color) == "" {
			continue
		}
		normalized[strings.ToLower(alg)] = color
	}
	return Palette{colors: normalized}
}

// Color returns the colour for algorithm or FallbackColor.
func (p Palette) Color(algorithm string) string {
	if c, ok := p.colors[strings.ToLower(algorithm)]; ok {
		return c
	}
	return FallbackColor
}
