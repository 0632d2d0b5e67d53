package config

import (
	"fmt"
	"sort"
)

// Presets holds the named variants per boundary type, keyed by canonical
// type name.
var Presets = map[string]map[string]*Config{
	"strike-slip": {
		"classic": {Type: "strike-slip", Variant: "classic", MaxDisplacement: 40, DurationMs: 3000, FPS: 30},
		"gentle":  {Type: "strike-slip", Variant: "gentle", MaxDisplacement: 50, DurationMs: 3500, FPS: 30},
		"san-andreas": {Type: "strike-slip", Variant: "san-andreas", MaxDisplacement: 150, DurationMs: 4000, FPS: 30,
			Text: TextConfig{Title: "San Andreas Fault", Subtitle: "right-lateral transform, California"}},
	},
	"normal": {
		"classic": {Type: "normal", Variant: "classic", MaxDisplacement: 50, DurationMs: 3500, FPS: 30},
		"basin-and-range": {Type: "normal", Variant: "basin-and-range", MaxDisplacement: 150, DurationMs: 4000, FPS: 30,
			Text: TextConfig{Title: "Basin and Range", Subtitle: "stretched crust, western North America"}},
	},
	"reverse": {
		"classic": {Type: "reverse", Variant: "classic", MaxDisplacement: 50, DurationMs: 4000, FPS: 30},
		"himalaya": {Type: "reverse", Variant: "himalaya", MaxDisplacement: 40, DurationMs: 3000, FPS: 30,
			Text: TextConfig{Title: "Main Himalayan Thrust", Subtitle: "India pushing under Eurasia"}},
	},
	"2-plate": {
		"convergent": {Type: "2-plate", Variant: "convergent", MaxDisplacement: 1, DurationMs: 8000, FPS: 30},
	},
	"3-plate": {
		"afar": {Type: "3-plate", Variant: "afar", MaxDisplacement: 1, DurationMs: 8000, FPS: 30,
			Text: TextConfig{Title: "Afar Triple Junction", Subtitle: "Nubian, Somali and Arabian plates"}},
	},
	"4-plate": {
		"mosaic": {Type: "4-plate", Variant: "mosaic", MaxDisplacement: 1, DurationMs: 8000, FPS: 30},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(boundary, name string) *Config {
	if variants, ok := Presets[boundary]; ok {
		if cfg, ok := variants[name]; ok {
			return cfg.Clone()
		}
	}
	return nil
}

// MustPreset is GetPreset with an error for unknown names.
func MustPreset(boundary, name string) (*Config, error) {
	cfg := GetPreset(boundary, name)
	if cfg == nil {
		return nil, fmt.Errorf("%w: %s/%s (available: %v)", ErrUnknownPreset, boundary, name, ListPresets(boundary))
	}
	return cfg, nil
}

// DefaultPreset returns the first preset of a type in sorted order.
func DefaultPreset(boundary string) *Config {
	names := ListPresets(boundary)
	if len(names) == 0 {
		return nil
	}
	if cfg := GetPreset(boundary, "classic"); cfg != nil {
		return cfg
	}
	return GetPreset(boundary, names[0])
}

func ListPresets(boundary string) []string {
	variants, ok := Presets[boundary]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
