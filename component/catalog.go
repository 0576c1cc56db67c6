package component

import (
	"fmt"
	"strings"
)

type rotorEntry struct {
	name        string
	description string
	wiring      string
	notches     string
	thin        bool
}

type reflectorEntry struct {
	name        string
	description string
	wiring      string
}

var rotorCatalog = []rotorEntry{
	{"I", "Rotor I of the Enigma I, M3 and M4.", "EKMFLGDQVZNTOWYHXUSPAIBRCJ", "Q", false},
	{"II", "Rotor II of the Enigma I, M3 and M4.", "AJDKSIRUXBLHWTMCQGZNPYFVOE", "E", false},
	{"III", "Rotor III of the Enigma I, M3 and M4.", "BDFHJLCPRTXVZNYEIWGAKMUSQO", "V", false},
	{"IV", "Rotor IV of the Enigma I, M3 and M4.", "ESOVPZJAYQUIRHXLNFTGKDCMWB", "J", false},
	{"V", "Rotor V of the Enigma I, M3 and M4.", "VZBRGITYUPSDNHLXAWMJQOFECK", "Z", false},
	{"VI", "Rotor VI of the Enigma M3 and M4.", "JPGVOUMFYQBENHZRDKASXLICTW", "ZM", false},
	{"VII", "Rotor VII of the Enigma M3 and M4.", "NZJHGRCXMYSWBOUFAIVLPEKQDT", "ZM", false},
	{"VIII", "Rotor VIII of the Enigma M3 and M4.", "FKQHTLXOCBJSPDZRAMEWNIUYGV", "ZM", false},
	{"Beta", "Thin rotor Beta of the Enigma M4, fourth slot only.", "LEYJVCNIXWPBQMDRTAKZGFUHOS", "", true},
	{"Gamma", "Thin rotor Gamma of the Enigma M4, fourth slot only.", "FSOKANUERHMBTIYCWLQPZXVGJD", "", true},
}

var reflectorCatalog = []reflectorEntry{
	{"A", "Reflector A of the Enigma I.", "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{"B", "Reflector B of the Enigma I, M3 and M4.", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{"C", "Reflector C of the Enigma I, M3 and M4.", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	{"Bruno", "Thin reflector B (Bruno) of the Enigma M4.", "ENKQAUYWJICOPBLMDXZVFTHRGS"},
	{"Caesar", "Thin reflector C (Caesar) of the Enigma M4.", "RDOBJNTKVEHMLFCWZAXGYIPSUQ"},
}

func (e rotorEntry) build() *Rotor {
	return &Rotor{
		Wheel:   Wheel{Wiring: mustWiring(e.name, e.description, e.wiring)},
		notches: e.notches,
		thin:    e.thin,
	}
}

func (e reflectorEntry) build() *Reflector {
	return &Reflector{Wheel: Wheel{Wiring: mustWiring(e.name, e.description, e.wiring)}}
}

// Rotors returns a fresh instance of every cataloged rotor, in catalog order.
func Rotors() []*Rotor {
	out := make([]*Rotor, len(rotorCatalog))
	for i, e := range rotorCatalog {
		out[i] = e.build()
	}
	return out
}

// Reflectors returns a fresh instance of every cataloged reflector.
func Reflectors() []*Reflector {
	out := make([]*Reflector, len(reflectorCatalog))
	for i, e := range reflectorCatalog {
		out[i] = e.build()
	}
	return out
}

// RotorByName returns a fresh rotor by catalog name, ignoring case.
func RotorByName(name string) (*Rotor, error) {
	for _, e := range rotorCatalog {
		if strings.EqualFold(e.name, name) {
			return e.build(), nil
		}
	}
	return nil, fmt.Errorf("rotor %q: %w", name, ErrUnknownComponent)
}

// ReflectorByName returns a fresh reflector by catalog name, ignoring case.
// "UKW-B" style names are accepted as well.
func ReflectorByName(name string) (*Reflector, error) {
	trimmed := strings.TrimPrefix(strings.ToUpper(name), "UKW")
	trimmed = strings.TrimLeft(trimmed, "- ")
	for _, e := range reflectorCatalog {
		if strings.EqualFold(e.name, trimmed) {
			return e.build(), nil
		}
	}
	return nil, fmt.Errorf("reflector %q: %w", name, ErrUnknownComponent)
}

// RotorI returns a fresh rotor I (notch Q).
func RotorI() *Rotor { return rotorCatalog[0].build() }

// RotorII returns a fresh rotor II (notch E).
func RotorII() *Rotor { return rotorCatalog[1].build() }

// RotorIII returns a fresh rotor III (notch V).
func RotorIII() *Rotor { return rotorCatalog[2].build() }

// RotorIV returns a fresh rotor IV (notch J).
func RotorIV() *Rotor { return rotorCatalog[3].build() }

// RotorV returns a fresh rotor V (notch Z).
func RotorV() *Rotor { return rotorCatalog[4].build() }

// RotorVI returns a fresh rotor VI (notches Z and M).
func RotorVI() *Rotor { return rotorCatalog[5].build() }

// RotorVII returns a fresh rotor VII (notches Z and M).
func RotorVII() *Rotor { return rotorCatalog[6].build() }

// RotorVIII returns a fresh rotor VIII (notches Z and M).
func RotorVIII() *Rotor { return rotorCatalog[7].build() }

// RotorBeta returns a fresh thin rotor Beta.
func RotorBeta() *Rotor { return rotorCatalog[8].build() }

// RotorGamma returns a fresh thin rotor Gamma.
func RotorGamma() *Rotor { return rotorCatalog[9].build() }

// ReflectorA returns a fresh reflector A.
func ReflectorA() *Reflector { return reflectorCatalog[0].build() }

// ReflectorB returns a fresh reflector B.
func ReflectorB() *Reflector { return reflectorCatalog[1].build() }

// ReflectorC returns a fresh reflector C.
func ReflectorC() *Reflector { return reflectorCatalog[2].build() }

// ReflectorBruno returns a fresh thin reflector Bruno.
func ReflectorBruno() *Reflector { return reflectorCatalog[3].build() }

// ReflectorCaesar returns a fresh thin reflector Caesar.
func ReflectorCaesar() *Reflector { return reflectorCatalog[4].build() }
