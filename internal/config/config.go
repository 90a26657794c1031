package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWavelength = 1.55
	DefaultTCore      = 0.22
	DefaultWidth      = 0.5
	DefaultNBox       = 1.44
	DefaultNCore      = 3.47
	DefaultNClad      = 1.44
)

type Config struct {
	Device      string         `yaml:"device"`
	Mode        string         `yaml:"mode"`
	Indices     IndexConfig    `yaml:"indices"`
	Geometry    GeometryConfig `yaml:"geometry"`
	Wavelengths []float64      `yaml:"wavelengths"`
	Widths      []float64      `yaml:"widths"`
	Gaps        []float64      `yaml:"gaps"`
	Orders      []int          `yaml:"orders"`
	Field       FieldConfig    `yaml:"field"`
	Workers     int            `yaml:"workers"`
}

type IndexConfig struct {
	Box  float64 `yaml:"box"`
	Core float64 `yaml:"core"`
	Clad float64 `yaml:"clad"`
	Slot float64 `yaml:"slot"`
}

type GeometryConfig struct {
	TCore float64 `yaml:"t_core"`
	TSlab float64 `yaml:"t_slab"`
}

type FieldConfig struct {
	Points int     `yaml:"points"`
	Extent float64 `yaml:"extent"`
	Output string  `yaml:"output"`
}

func DefaultConfig() *Config {
	return &Config{
		Device: "strip",
		Mode:   "TE",
		Indices: IndexConfig{
			Box:  DefaultNBox,
			Core: DefaultNCore,
			Clad: DefaultNClad,
		},
		Geometry:    GeometryConfig{TCore: DefaultTCore},
		Wavelengths: []float64{DefaultWavelength},
		Widths:      []float64{DefaultWidth},
		Orders:      []int{0},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
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

// Validate rejects configurations the numeric core must never see. All
// geometry and sweep-list validation happens here, at the boundary.
func (c *Config) Validate() error {
	if c.Device != "strip" && c.Device != "slot" {
		return fmt.Errorf("config: device must be 'strip' or 'slot', got %q", c.Device)
	}
	if c.Mode != "TE" && c.Mode != "TM" {
		return fmt.Errorf("config: mode must be 'TE' or 'TM', got %q", c.Mode)
	}
	if len(c.Wavelengths) == 0 {
		return fmt.Errorf("config: must specify at least one wavelength")
	}
	for _, l := range c.Wavelengths {
		if l <= 0 {
			return fmt.Errorf("config: wavelength must be positive, got %g", l)
		}
	}
	if len(c.Widths) == 0 {
		return fmt.Errorf("config: must specify at least one width")
	}
	if len(c.Orders) == 0 {
		return fmt.Errorf("config: must specify at least one mode order")
	}
	for _, j := range c.Orders {
		if j < 0 {
			return fmt.Errorf("config: mode order must be non-negative, got %d", j)
		}
	}
	if c.Indices.Box <= 0 || c.Indices.Core <= 0 || c.Indices.Clad <= 0 {
		return fmt.Errorf("config: must specify box, core and clad refractive indices")
	}
	if c.Geometry.TCore <= 0 {
		return fmt.Errorf("config: must specify core thickness")
	}
	if c.Device == "slot" {
		if len(c.Gaps) == 0 {
			return fmt.Errorf("config: must specify at least one slot width")
		}
		if c.Indices.Slot <= 0 {
			return fmt.Errorf("config: must specify slot refractive index")
		}
	}
	return nil
}

// ValidateField additionally requires the field-map sampling parameters.
func (c *Config) ValidateField() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Field.Points <= 0 {
		return fmt.Errorf("config: must set number of mode points")
	}
	if c.Field.Extent <= 0 {
		return fmt.Errorf("config: must set mode extent")
	}
	return nil
}
