package component

import (
	"fmt"
	"strings"

	"github.com/706f6c6c7578/enigma/alphabet"
)

// Rotor is a Wheel with a ring setting and a set of notch positions. When the
// rotor sits on a notch the machine carries a step to its left neighbour.
type Rotor struct {
	Wheel
	notches string
	thin    bool
}

// NewRotor builds a rotor from a wiring permutation and its notch letters.
// The rotor starts at ring 'A', position 'A'.
func NewRotor(name, description, wiring, notches string) (*Rotor, error) {
	w, err := newWiring(name, description, wiring)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(notches); i++ {
		if _, err := alphabet.Index(notches[i]); err != nil {
			return nil, fmt.Errorf("rotor %s notch: %w", name, err)
		}
	}
	return &Rotor{Wheel: Wheel{Wiring: w}, notches: notches}, nil
}

// NewIdentityRotor returns a thin rotor that maps every letter to itself. It
// fills the fourth slot of a four rotor machine when no thin rotor is given.
func NewIdentityRotor() *Rotor {
	return &Rotor{
		Wheel: Wheel{Wiring: mustWiring("Identity", "Straight-through filler for the fourth rotor slot.", alphabet.Letters)},
		thin:  true,
	}
}

// SetRing sets the ring setting (Ringstellung).
func (r *Rotor) SetRing(ring byte) error {
	i, err := alphabet.Index(ring)
	if err != nil {
		return fmt.Errorf("%s ring: %w", r.name, err)
	}
	r.ring = i
	return nil
}

// SetRingIndex sets the ring setting by its 1-based number: 1 is 'A', 26 is 'Z'.
func (r *Rotor) SetRingIndex(n int) error {
	if n < 1 || n > alphabet.Size {
		return fmt.Errorf("%s ring %d: %w", r.name, n, alphabet.ErrOutOfRange)
	}
	r.ring = n - 1
	return nil
}

// Ring returns the ring setting.
func (r *Rotor) Ring() byte {
	return alphabet.Shift(r.ring)
}

// Notches returns the notch letters.
func (r *Rotor) Notches() string {
	return r.notches
}

// AtNotch reports whether the current position is one of the notches.
func (r *Rotor) AtNotch() bool {
	return strings.IndexByte(r.notches, r.Position()) >= 0
}

// Thin reports whether the rotor only fits the fourth slot.
func (r *Rotor) Thin() bool {
	return r.thin
}

// Clone returns an independent copy of r.
func (r *Rotor) Clone() *Rotor {
	c := *r
	return &c
}
