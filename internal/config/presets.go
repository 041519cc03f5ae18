package config

import "sort"

// Presets are named starting points that show a particular feature of a
// surface.
var Presets = map[string]*Config{
	"default": {
		Function: "paraboloid", X: 1.0, Y: 1.0,
	},
	"bowl-bottom": {
		Function: "paraboloid", X: 0.0, Y: 0.0,
	},
	"bowl-rim": {
		Function: "paraboloid", X: -2.0, Y: 2.0,
		Camera: CameraConfig{Azimuth: 0.8, Elevation: 0.6, Zoom: 1.0},
	},
	"saddle-point": {
		Function: "saddle", X: 0.0, Y: 0.0,
	},
	"saddle-ridge": {
		Function: "saddle", X: 1.0, Y: 1.0,
	},
	"wave-origin": {
		Function: "wave", X: 0.0, Y: 0.0,
	},
	"wave-crest": {
		Function: "wave", X: 1.6, Y: 0.0,
		Camera: CameraConfig{Azimuth: -1.2, Elevation: 0.4, Zoom: 1.2},
	},
	"wave-slope": {
		Function: "wave", X: 0.8, Y: -1.2,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
