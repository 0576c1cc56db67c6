package component

import (
	"fmt"

	"github.com/706f6c6c7578/enigma/alphabet"
)

// Substitution is one stage of the signal path.
type Substitution interface {
	Name() string
	Forward(c byte) (byte, error)
	Reverse(c byte) (byte, error)
}

// Wheel is a Wiring turned by a position offset and compensated by a ring
// offset. The effective forward mapping is
//
//	out = base[c - ring + position] + ring - position   (mod 26)
//
// and the reverse mapping applies the same formula to the reverse table, so
// both stay mutual inverses for every position and ring value. Reflectors
// keep ring at zero.
type Wheel struct {
	Wiring
	position int
	ring     int
}

// Forward returns the position adjusted forward image of c.
func (w *Wheel) Forward(c byte) (byte, error) {
	return w.substitute(&w.forward, c, "forward")
}

// Reverse returns the position adjusted reverse image of c.
func (w *Wheel) Reverse(c byte) (byte, error) {
	return w.substitute(&w.reverse, c, "reverse")
}

func (w *Wheel) substitute(t *table, c byte, dir string) (byte, error) {
	ci, err := alphabet.Index(c)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", w.name, dir, err)
	}
	wi := int(t[alphabet.Mod(ci-w.ring+w.position)] - 'A')
	return alphabet.Shift(wi + w.ring - w.position), nil
}

// SetPosition turns the wheel to p.
func (w *Wheel) SetPosition(p byte) error {
	i, err := alphabet.Index(p)
	if err != nil {
		return fmt.Errorf("%s position: %w", w.name, err)
	}
	w.position = i
	return nil
}

// AdvancePosition turns the wheel by one step, wrapping from Z to A.
func (w *Wheel) AdvancePosition() {
	w.position = alphabet.Mod(w.position + 1)
}

// Position returns the current position.
func (w *Wheel) Position() byte {
	return alphabet.Shift(w.position)
}
