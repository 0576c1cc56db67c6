package component

import (
	"fmt"
	"strings"

	"github.com/706f6c6c7578/enigma/alphabet"
)

// Plugboard (Steckerbrett) swaps pairs of letters. It starts as the identity
// and every cable is its own inverse, so Forward and Reverse always agree.
//
// A letter carries at most one cable: connecting a letter that is already
// in use fails instead of moving the cable.
type Plugboard struct {
	Wiring
}

// NewPlugboard returns a plugboard without cables.
func NewPlugboard() *Plugboard {
	return &Plugboard{Wiring: mustWiring("Plugboard", "Steckerbrett", alphabet.Letters)}
}

// Connect joins a and b with a cable.
func (p *Plugboard) Connect(a, b byte) error {
	ai, bi, err := p.plugs(a, b)
	if err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("cable %c%c: %w", a, b, ErrPlugSelf)
	}
	if p.forward[ai] != a {
		return fmt.Errorf("cable %c%c: %c: %w", a, b, a, ErrPlugInUse)
	}
	if p.forward[bi] != b {
		return fmt.Errorf("cable %c%c: %c: %w", a, b, b, ErrPlugInUse)
	}
	p.swap(ai, bi, b, a)
	return nil
}

// Disconnect removes the cable between a and b.
func (p *Plugboard) Disconnect(a, b byte) error {
	ai, bi, err := p.plugs(a, b)
	if err != nil {
		return err
	}
	if a == b || p.forward[ai] != b || p.forward[bi] != a {
		return fmt.Errorf("cable %c%c: %w", a, b, ErrPlugNotConnected)
	}
	p.swap(ai, bi, a, b)
	return nil
}

// ConnectAll connects a whitespace separated list of two letter cables such
// as "AM FI NV". Either every cable is connected or, on the first failure,
// none is.
func (p *Plugboard) ConnectAll(cables string) error {
	return p.batch(cables, (*Plugboard).Connect)
}

// DisconnectAll removes a whitespace separated list of cables, all or
// nothing like ConnectAll.
func (p *Plugboard) DisconnectAll(cables string) error {
	return p.batch(cables, (*Plugboard).Disconnect)
}

func (p *Plugboard) batch(cables string, op func(*Plugboard, byte, byte) error) error {
	tokens := strings.Fields(cables)
	if len(tokens) == 0 {
		return fmt.Errorf("empty cable list: %w", ErrCableToken)
	}
	for _, tok := range tokens {
		if len(tok) != 2 {
			return fmt.Errorf("cable %q: %w", tok, ErrCableToken)
		}
	}

	work := *p
	for _, tok := range tokens {
		if err := op(&work, tok[0], tok[1]); err != nil {
			return err
		}
	}
	*p = work
	return nil
}

// Pairs returns the connected cables in alphabetical order, e.g. ["AM", "FI"].
func (p *Plugboard) Pairs() []string {
	var pairs []string
	for i, c := range p.forward {
		if a := alphabet.Shift(i); a < c {
			pairs = append(pairs, string([]byte{a, c}))
		}
	}
	return pairs
}

// Clone returns an independent copy of p.
func (p *Plugboard) Clone() *Plugboard {
	c := *p
	return &c
}

func (p *Plugboard) String() string {
	return strings.Join(p.Pairs(), " ")
}

func (p *Plugboard) plugs(a, b byte) (int, int, error) {
	ai, err := alphabet.Index(a)
	if err != nil {
		return 0, 0, fmt.Errorf("plug: %w", err)
	}
	bi, err := alphabet.Index(b)
	if err != nil {
		return 0, 0, fmt.Errorf("plug: %w", err)
	}
	return ai, bi, nil
}

// swap sets the images of the letters at ai and bi.
func (p *Plugboard) swap(ai, bi int, aImage, bImage byte) {
	p.forward[ai], p.forward[bi] = aImage, bImage
	p.reverse[ai], p.reverse[bi] = aImage, bImage
}
