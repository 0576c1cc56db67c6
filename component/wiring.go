package component

import (
	"fmt"

	"github.com/706f6c6c7578/enigma/alphabet"
)

type table = [alphabet.Size]byte

// Wiring is a bijective substitution over the alphabet. The forward and
// reverse tables are mutual inverses.
type Wiring struct {
	name        string
	description string
	forward     table
	reverse     table
}

// NewWiring builds a Wiring from a 26 symbol permutation of the alphabet,
// where mapping[i] is the forward image of the i-th letter.
func NewWiring(name, description, mapping string) (*Wiring, error) {
	w, err := newWiring(name, description, mapping)
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func newWiring(name, description, mapping string) (Wiring, error) {
	if len(mapping) != alphabet.Size {
		return Wiring{}, fmt.Errorf("wiring %s has %d symbols: %w: %w", name, len(mapping), ErrInvalidWiring, ErrWiringLength)
	}

	w := Wiring{name: name, description: description}
	var seen [alphabet.Size]bool
	for i := 0; i < alphabet.Size; i++ {
		j, err := alphabet.Index(mapping[i])
		if err != nil {
			return Wiring{}, fmt.Errorf("wiring %s: %w: %w", name, ErrInvalidWiring, err)
		}
		if seen[j] {
			return Wiring{}, fmt.Errorf("wiring %s repeats %q: %w: %w", name, mapping[i], ErrInvalidWiring, ErrWiringDuplicate)
		}
		seen[j] = true
		w.forward[i] = mapping[i]
		w.reverse[j] = alphabet.Letters[i]
	}
	return w, nil
}

// mustWiring is newWiring for the built-in catalog.
func mustWiring(name, description, mapping string) Wiring {
	w, err := newWiring(name, description, mapping)
	if err != nil {
		panic(err)
	}
	return w
}

// Name returns the short catalog name.
func (w *Wiring) Name() string { return w.name }

// Description returns a human readable description.
func (w *Wiring) Description() string { return w.description }

// Forward returns the forward image of c.
func (w *Wiring) Forward(c byte) (byte, error) {
	i, err := alphabet.Index(c)
	if err != nil {
		return 0, fmt.Errorf("%s forward: %w", w.name, err)
	}
	return w.forward[i], nil
}

// Reverse returns the reverse image of c.
func (w *Wiring) Reverse(c byte) (byte, error) {
	i, err := alphabet.Index(c)
	if err != nil {
		return 0, fmt.Errorf("%s reverse: %w", w.name, err)
	}
	return w.reverse[i], nil
}

// ForwardMapping returns the unrotated forward table.
func (w *Wiring) ForwardMapping() string { return string(w.forward[:]) }

// ReverseMapping returns the unrotated reverse table.
func (w *Wiring) ReverseMapping() string { return string(w.reverse[:]) }

func (w *Wiring) String() string { return w.name }
