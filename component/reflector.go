package component

import (
	"fmt"
)

// Reflector is the turnaround wheel of the signal path. Its wiring pairs
// every letter with a different one, so forward and reverse agree.
type Reflector struct {
	Wheel
}

// NewReflector builds a reflector and checks that the wiring is a
// fixed-point-free involution.
func NewReflector(name, description, wiring string) (*Reflector, error) {
	w, err := newWiring(name, description, wiring)
	if err != nil {
		return nil, err
	}
	for i, c := range w.forward {
		if int(c-'A') == i || w.forward[c-'A'] != byte(i)+'A' {
			return nil, fmt.Errorf("reflector %s at %q: %w", name, byte(i)+'A', ErrNotReflecting)
		}
	}
	return &Reflector{Wheel: Wheel{Wiring: w}}, nil
}

// Clone returns an independent copy of r.
func (r *Reflector) Clone() *Reflector {
	c := *r
	return &c
}
