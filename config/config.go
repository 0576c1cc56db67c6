// Package config reads and writes machine key sheets.
//
// A key sheet lists the rotors the way an operator reads them off the
// machine: leftmost (slowest) rotor first. Settings.Build mounts them into
// machine slots, fast rotor in slot 1.
//
//	chassis: 3
//	reflector: {name: A}
//	rotors:
//	  - {name: II, ring: 24, position: A}
//	  - {name: I, ring: 13, position: B}
//	  - {name: III, ring: 22, position: L}
//	plugboard: AM FI NV PS TU WZ
//	group: 5
//
// Values resolve from Default, then a YAML file, then ENIGMA_* environment
// variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/706f6c6c7578/enigma/component"
	"github.com/706f6c6c7578/enigma/machine"
)

// ErrInvalidSettings matches every settings validation failure.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings is a machine key sheet.
type Settings struct {
	Name        string  `yaml:"name,omitempty"`
	Description string  `yaml:"description,omitempty"`
	Chassis     int     `yaml:"chassis,omitempty"`
	Reflector   Wheel   `yaml:"reflector"`
	Rotors      []Wheel `yaml:"rotors"`
	Plugboard   string  `yaml:"plugboard,omitempty"`
	Group       int     `yaml:"group,omitempty"`
}

// Wheel names a cataloged rotor or reflector and its setting. Ring is the
// 1-based ring number (0 means 1) and is ignored for reflectors. Position is
// a single letter, empty means 'A'.
type Wheel struct {
	Name     string `yaml:"name"`
	Ring     int    `yaml:"ring,omitempty"`
	Position string `yaml:"position,omitempty"`
}

// Default returns the built-in key sheet: reflector B, rotors I II III at
// ring 1 and position A, no cables, groups of five.
func Default() Settings {
	return Settings{
		Chassis:   3,
		Reflector: Wheel{Name: "B"},
		Rotors: []Wheel{
			{Name: "I", Ring: 1, Position: "A"},
			{Name: "II", Ring: 1, Position: "A"},
			{Name: "III", Ring: 1, Position: "A"},
		},
		Group: 5,
	}
}

// LoadFile reads a YAML key sheet on top of Default.
func LoadFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return Settings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML key sheet on top of Default. Unknown keys are
// rejected.
func Parse(data []byte) (Settings, error) {
	s := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Settings{}, fmt.Errorf("yaml parse: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Marshal encodes s as YAML.
func Marshal(s Settings) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("yaml encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Validate checks the shape of s. Catalog names are resolved by Build.
func (s Settings) Validate() error {
	chassis := s.chassis()
	if chassis != 3 && chassis != 4 {
		return fmt.Errorf("chassis %d: %w", s.Chassis, ErrInvalidSettings)
	}
	if len(s.Rotors) != chassis && !(chassis == 4 && len(s.Rotors) == 3) {
		return fmt.Errorf("%d rotors on a %d rotor chassis: %w", len(s.Rotors), chassis, ErrInvalidSettings)
	}
	if strings.TrimSpace(s.Reflector.Name) == "" {
		return fmt.Errorf("reflector without name: %w", ErrInvalidSettings)
	}
	if _, err := position(s.Reflector.Position); err != nil {
		return fmt.Errorf("reflector: %w", err)
	}
	for i, w := range s.Rotors {
		if strings.TrimSpace(w.Name) == "" {
			return fmt.Errorf("rotor %d without name: %w", i+1, ErrInvalidSettings)
		}
		if w.Ring < 0 || w.Ring > 26 {
			return fmt.Errorf("rotor %s ring %d: %w", w.Name, w.Ring, ErrInvalidSettings)
		}
		if _, err := position(w.Position); err != nil {
			return fmt.Errorf("rotor %s: %w", w.Name, err)
		}
	}
	if s.Group < 0 {
		return fmt.Errorf("group %d: %w", s.Group, ErrInvalidSettings)
	}
	return nil
}

func (s Settings) chassis() int {
	if s.Chassis == 0 {
		return 3
	}
	return s.Chassis
}

// Build resolves the catalog names and assembles a machine. logger may be
// nil.
func (s Settings) Build(logger *slog.Logger) (*machine.Machine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	b := machine.NewBuilder().WithChassis(machine.Chassis(s.chassis())).WithLogger(logger)
	if strings.TrimSpace(s.Plugboard) != "" {
		b.WithCables(s.Plugboard)
	}

	refl, err := component.ReflectorByName(s.Reflector.Name)
	if err != nil {
		return nil, err
	}
	pos, _ := position(s.Reflector.Position)
	b.WithReflector(refl, pos)

	// Rotors are listed leftmost first, slot 1 is the rightmost.
	n := len(s.Rotors)
	for i, w := range s.Rotors {
		r, err := component.RotorByName(w.Name)
		if err != nil {
			return nil, err
		}
		ring := w.Ring
		if ring == 0 {
			ring = 1
		}
		pos, _ := position(w.Position)
		b.WithRotorRingIndex(n-i, r, ring, pos)
	}
	return b.Build()
}

func position(p string) (byte, error) {
	p = strings.ToUpper(strings.TrimSpace(p))
	switch {
	case p == "":
		return 'A', nil
	case len(p) == 1 && 'A' <= p[0] && p[0] <= 'Z':
		return p[0], nil
	default:
		return 0, fmt.Errorf("position %q: %w", p, ErrInvalidSettings)
	}
}

// ApplyEnv overrides s from ENIGMA_* environment variables:
//
//	ENIGMA_CHASSIS    3 or 4
//	ENIGMA_REFLECTOR  name[:position], e.g. "B" or "Bruno:A"
//	ENIGMA_ROTORS     leftmost first, name[:ring[:position]], e.g. "II:24:A,I:13:B,III:22:L"
//	ENIGMA_PLUGBOARD  cable list, e.g. "AM FI NV"
//	ENIGMA_GROUP      group size, 0 disables grouping
func ApplyEnv(s *Settings) error {
	if val := strings.TrimSpace(os.Getenv("ENIGMA_CHASSIS")); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("ENIGMA_CHASSIS: %w: %w", ErrInvalidSettings, err)
		}
		s.Chassis = n
	}
	if val := strings.TrimSpace(os.Getenv("ENIGMA_REFLECTOR")); val != "" {
		w, err := parseWheel(val, false)
		if err != nil {
			return fmt.Errorf("ENIGMA_REFLECTOR: %w", err)
		}
		s.Reflector = w
	}
	if val := strings.TrimSpace(os.Getenv("ENIGMA_ROTORS")); val != "" {
		rotors, err := ParseRotors(val)
		if err != nil {
			return fmt.Errorf("ENIGMA_ROTORS: %w", err)
		}
		s.Rotors = rotors
	}
	if val, ok := os.LookupEnv("ENIGMA_PLUGBOARD"); ok {
		s.Plugboard = strings.TrimSpace(val)
	}
	if val := strings.TrimSpace(os.Getenv("ENIGMA_GROUP")); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("ENIGMA_GROUP: %w: %w", ErrInvalidSettings, err)
		}
		s.Group = n
	}
	return s.Validate()
}

// ParseRotors parses a comma separated rotor list, leftmost first, where
// each entry is name[:ring[:position]].
func ParseRotors(list string) ([]Wheel, error) {
	var out []Wheel
	for _, item := range strings.Split(list, ",") {
		w, err := parseWheel(item, true)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func parseWheel(item string, withRing bool) (Wheel, error) {
	parts := strings.Split(strings.TrimSpace(item), ":")
	w := Wheel{Name: strings.TrimSpace(parts[0])}
	if w.Name == "" {
		return Wheel{}, fmt.Errorf("empty wheel %q: %w", item, ErrInvalidSettings)
	}
	rest := parts[1:]
	if withRing && len(rest) > 0 {
		ring, err := strconv.Atoi(strings.TrimSpace(rest[0]))
		if err != nil {
			return Wheel{}, fmt.Errorf("wheel %q ring: %w: %w", item, ErrInvalidSettings, err)
		}
		w.Ring = ring
		rest = rest[1:]
	}
	switch len(rest) {
	case 0:
	case 1:
		w.Position = strings.TrimSpace(rest[0])
	default:
		return Wheel{}, fmt.Errorf("wheel %q: %w", item, ErrInvalidSettings)
	}
	return w, nil
}
