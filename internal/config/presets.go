package config

var Presets = map[string]map[string]*Config{
	"strip": {
		"soi": {
			Device: "strip", Mode: "TE",
			Indices:     IndexConfig{Box: 1.44, Core: 3.47, Clad: 1.44},
			Geometry:    GeometryConfig{TCore: 0.22},
			Wavelengths: []float64{1.55},
			Widths:      []float64{0.5},
			Orders:      []int{0},
		},
		"soi-rib": {
			Device: "strip", Mode: "TE",
			Indices:     IndexConfig{Box: 1.44, Core: 3.47, Clad: 1.44},
			Geometry:    GeometryConfig{TCore: 0.22, TSlab: 0.09},
			Wavelengths: []float64{1.55},
			Widths:      []float64{0.5},
			Orders:      []int{0},
		},
		"nitride": {
			Device: "strip", Mode: "TE",
			Indices:     IndexConfig{Box: 1.44, Core: 2.0, Clad: 1.44},
			Geometry:    GeometryConfig{TCore: 0.4},
			Wavelengths: []float64{1.55},
			Widths:      []float64{1.0},
			Orders:      []int{0},
		},
	},
	"slot": {
		"soi": {
			Device: "slot", Mode: "TE",
			Indices:     IndexConfig{Box: 1.44, Core: 3.47, Clad: 1.44, Slot: 1.44},
			Geometry:    GeometryConfig{TCore: 0.22},
			Wavelengths: []float64{1.55},
			Widths:      []float64{0.22},
			Gaps:        []float64{0.1},
			Orders:      []int{0},
		},
	},
}

func GetPreset(device, preset string) *Config {
	devicePresets, ok := Presets[device]
	if !ok {
		return nil
	}
	cfg, ok := devicePresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(device string) []string {
	devicePresets, ok := Presets[device]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(devicePresets))
	for name := range devicePresets {
		names = append(names, name)
	}
	return names
}
