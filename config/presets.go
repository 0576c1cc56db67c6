package config

import (
	"fmt"
	"sort"
	"strings"
)

// presets are historical key sheets with known plaintext and ciphertext.
var presets = map[string]Settings{
	"manual-1930": {
		Name:        "manual-1930",
		Description: "Example message from the 1930 Enigma I operating manual.",
		Chassis:     3,
		Reflector:   Wheel{Name: "A"},
		Rotors: []Wheel{
			{Name: "II", Ring: 24, Position: "A"},
			{Name: "I", Ring: 13, Position: "B"},
			{Name: "III", Ring: 22, Position: "L"},
		},
		Plugboard: "AM FI NV PS TU WZ",
		Group:     5,
	},
	"barbarossa-1": {
		Name:        "barbarossa-1",
		Description: "Operation Barbarossa, 7 July 1941, first part.",
		Chassis:     3,
		Reflector:   Wheel{Name: "B"},
		Rotors: []Wheel{
			{Name: "II", Ring: 2, Position: "B"},
			{Name: "IV", Ring: 21, Position: "L"},
			{Name: "V", Ring: 12, Position: "A"},
		},
		Plugboard: "AV BS CG DL FU HZ IN KM OW RX",
		Group:     5,
	},
	"barbarossa-2": {
		Name:        "barbarossa-2",
		Description: "Operation Barbarossa, 7 July 1941, second part.",
		Chassis:     3,
		Reflector:   Wheel{Name: "B"},
		Rotors: []Wheel{
			{Name: "II", Ring: 2, Position: "L"},
			{Name: "IV", Ring: 21, Position: "S"},
			{Name: "V", Ring: 12, Position: "D"},
		},
		Plugboard: "AV BS CG DL FU HZ IN KM OW RX",
		Group:     5,
	},
	"scharnhorst": {
		Name:        "scharnhorst",
		Description: "Signal from the battleship Scharnhorst, 1943, naval M3.",
		Chassis:     3,
		Reflector:   Wheel{Name: "B"},
		Rotors: []Wheel{
			{Name: "III", Ring: 1, Position: "U"},
			{Name: "VI", Ring: 8, Position: "Z"},
			{Name: "VIII", Ring: 13, Position: "V"},
		},
		Plugboard: "AN EZ HK IJ LR MQ OT PV SW UX",
		Group:     5,
	},
}

// Presets returns the names of the built-in key sheets, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named built-in key sheet.
func Preset(name string) (Settings, error) {
	s, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Settings{}, fmt.Errorf("preset %q: %w", name, ErrInvalidSettings)
	}
	s.Rotors = append([]Wheel(nil), s.Rotors...)
	return s, nil
}
