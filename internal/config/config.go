package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/san-kum/faultsim/internal/anim"
	"github.com/san-kum/faultsim/internal/geom"
	"gopkg.in/yaml.v3"
)

const (
	DefaultType            = "strike-slip"
	DefaultMaxDisplacement = 40.0
	DefaultDurationMs      = 3000.0
	DefaultFPS             = 30
)

var (
	ErrInvalidConfig = errors.New("config: invalid configuration")
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Type            string                 `yaml:"type"`
	Variant         string                 `yaml:"variant,omitempty"`
	MaxDisplacement float64                `yaml:"max_displacement"`
	DurationMs      float64                `yaml:"duration_ms"`
	Easing          string                 `yaml:"easing,omitempty"`
	FPS             int                    `yaml:"fps"`
	Width           float64                `yaml:"width,omitempty"`
	Height          float64                `yaml:"height,omitempty"`
	Text            TextConfig             `yaml:"text,omitempty"`
	Colors          ColorConfig            `yaml:"colors,omitempty"`
	Arrows          ArrowConfig            `yaml:"arrows,omitempty"`
	Plates          []geom.PlateDescriptor `yaml:"plates,omitempty"`
}

type TextConfig struct {
	Title     string `yaml:"title,omitempty"`
	Subtitle  string `yaml:"subtitle,omitempty"`
	Narrative string `yaml:"narrative,omitempty"`
}

// ColorConfig overrides the built-in palette. Empty fields keep defaults.
type ColorConfig struct {
	Plates []string `yaml:"plates,omitempty"`
	Trace  string   `yaml:"trace,omitempty"`
	Arrow  string   `yaml:"arrow,omitempty"`
}

// ArrowConfig overrides the arrow ramp. Threshold is in raw displacement
// units; zero keeps the default of a tenth of the range.
type ArrowConfig struct {
	Threshold float64 `yaml:"threshold,omitempty"`
	Gain      float64 `yaml:"gain,omitempty"`
	Cap       float64 `yaml:"cap,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Type:            DefaultType,
		MaxDisplacement: DefaultMaxDisplacement,
		DurationMs:      DefaultDurationMs,
		FPS:             DefaultFPS,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if _, err := geom.ParseType(c.Type); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxDisplacement <= 0 {
		return fmt.Errorf("%w: max_displacement must be positive, got %g", ErrInvalidConfig, c.MaxDisplacement)
	}
	if c.DurationMs <= 0 {
		return fmt.Errorf("%w: duration_ms must be positive, got %g", ErrInvalidConfig, c.DurationMs)
	}
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalidConfig, c.FPS)
	}
	if _, ok := anim.EasingByName(c.Easing); !ok {
		return fmt.Errorf("%w: unknown easing %q", ErrInvalidConfig, c.Easing)
	}
	return nil
}

func (c *Config) BoundaryType() (geom.Type, error) {
	return geom.ParseType(c.Type)
}

func (c *Config) Animation() anim.Config {
	easing, _ := anim.EasingByName(c.Easing)
	return anim.Config{
		MaxDisplacement: c.MaxDisplacement,
		DurationMs:      c.DurationMs,
		Easing:          easing,
	}
}

// Geometry builds the mapper variant: built-in style for the type with
// this config's overrides applied on top.
func (c *Config) Geometry() (geom.Variant, error) {
	t, err := c.BoundaryType()
	if err != nil {
		return geom.Variant{}, err
	}
	v := geom.DefaultVariant(t, c.MaxDisplacement)
	s := &v.Style

	if c.Width > 0 {
		s.Width = c.Width
	}
	if c.Height > 0 {
		s.Height = c.Height
	}
	if c.Text.Title != "" {
		s.Title = c.Text.Title
	}
	if c.Text.Subtitle != "" {
		s.Subtitle = c.Text.Subtitle
	}
	if c.Text.Narrative != "" {
		s.Narrative = c.Text.Narrative
	}
	for i, col := range c.Colors.Plates {
		if i < len(s.PlateColors) && col != "" {
			s.PlateColors[i] = col
		}
	}
	if c.Colors.Trace != "" {
		s.TraceColor = c.Colors.Trace
	}
	if c.Colors.Arrow != "" {
		s.ArrowColor = c.Colors.Arrow
	}
	if c.Arrows.Threshold > 0 {
		s.ArrowThreshold = c.Arrows.Threshold
	}
	if c.Arrows.Gain > 0 {
		s.ArrowGain = c.Arrows.Gain
	}
	if c.Arrows.Cap > 0 {
		s.ArrowCap = c.Arrows.Cap
	}
	if t.IsScenario() && len(c.Plates) > 0 {
		v.Plates = append([]geom.PlateDescriptor(nil), c.Plates...)
	}
	return v, nil
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Colors.Plates = append([]string(nil), c.Colors.Plates...)
	out.Plates = append([]geom.PlateDescriptor(nil), c.Plates...)
	return &out
}
