package machine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/706f6c6c7578/enigma/component"
)

// Chassis selects the number of rotor slots.
type Chassis int

const (
	// ThreeRotor is the Enigma I / M3 chassis.
	ThreeRotor Chassis = 3
	// FourRotor is the M4 chassis with a fixed fourth rotor.
	FourRotor Chassis = 4
)

// Builder collects the parts of a machine. Errors from the With methods are
// kept and reported by Build, so calls can be chained:
//
//	m, err := machine.NewBuilder().
//		WithCables("AM FI NV PS TU WZ").
//		WithRotorRingIndex(1, component.RotorIII(), 22, 'L').
//		WithRotorRingIndex(2, component.RotorI(), 13, 'B').
//		WithRotorRingIndex(3, component.RotorII(), 24, 'A').
//		WithReflector(component.ReflectorA(), 'A').
//		Build()
//
// The builder copies every part it is given, so the caller keeps ownership
// of its instances and one builder can produce several machines. The zero
// value is a three rotor builder with an empty plugboard, same as NewBuilder.
type Builder struct {
	chassis   Chassis
	plugboard *component.Plugboard
	rotors    [4]*component.Rotor
	reflector *component.Reflector
	logger    *slog.Logger
	errs      []error
}

// NewBuilder returns a builder for a three rotor machine with an empty
// plugboard.
func NewBuilder() *Builder {
	return &Builder{
		chassis:   ThreeRotor,
		plugboard: component.NewPlugboard(),
	}
}

// WithChassis selects a three or four rotor chassis.
func (b *Builder) WithChassis(c Chassis) *Builder {
	if c != ThreeRotor && c != FourRotor {
		b.errs = append(b.errs, fmt.Errorf("chassis %d: %w", c, ErrChassis))
		return b
	}
	b.chassis = c
	return b
}

// WithRotor mounts a copy of r in slot 1..4 with the given ring setting and
// start position.
func (b *Builder) WithRotor(slot int, r *component.Rotor, ring, position byte) *Builder {
	b.mount(slot, r, func(c *component.Rotor) error { return c.SetRing(ring) }, position)
	return b
}

// WithRotorRingIndex is WithRotor with a 1-based ring number (1 = 'A').
func (b *Builder) WithRotorRingIndex(slot int, r *component.Rotor, ring int, position byte) *Builder {
	b.mount(slot, r, func(c *component.Rotor) error { return c.SetRingIndex(ring) }, position)
	return b
}

func (b *Builder) mount(slot int, r *component.Rotor, setRing func(*component.Rotor) error, position byte) {
	if slot < 1 || slot > len(b.rotors) {
		b.errs = append(b.errs, fmt.Errorf("slot %d: %w", slot, ErrSlot))
		return
	}
	if r == nil {
		b.errs = append(b.errs, fmt.Errorf("slot %d: %w", slot, ErrMissingRotor))
		return
	}
	c := r.Clone()
	if err := setRing(c); err != nil {
		b.errs = append(b.errs, fmt.Errorf("slot %d: %w", slot, err))
		return
	}
	if err := c.SetPosition(position); err != nil {
		b.errs = append(b.errs, fmt.Errorf("slot %d: %w", slot, err))
		return
	}
	b.rotors[slot-1] = c
}

// WithReflector mounts a copy of r at the given position.
func (b *Builder) WithReflector(r *component.Reflector, position byte) *Builder {
	if r == nil {
		b.errs = append(b.errs, ErrMissingReflector)
		return b
	}
	c := r.Clone()
	if err := c.SetPosition(position); err != nil {
		b.errs = append(b.errs, fmt.Errorf("reflector: %w", err))
		return b
	}
	b.reflector = c
	return b
}

// WithCable plugs a cable between x and y.
func (b *Builder) WithCable(x, y byte) *Builder {
	if err := b.board().Connect(x, y); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

// WithCables plugs a whitespace separated list of cables, e.g. "AM FI NV".
func (b *Builder) WithCables(cables string) *Builder {
	if err := b.board().ConnectAll(cables); err != nil {
		b.errs = append(b.errs, err)
	}
	return b
}

func (b *Builder) board() *component.Plugboard {
	if b.plugboard == nil {
		b.plugboard = component.NewPlugboard()
	}
	return b.plugboard
}

// WithLogger sets the logger receiving the per-letter trace at debug level.
func (b *Builder) WithLogger(l *slog.Logger) *Builder {
	b.logger = l
	return b
}

// Build validates the collected parts and returns a ready machine. On any
// error no machine is returned.
func (b *Builder) Build() (*Machine, error) {
	if len(b.errs) > 0 {
		return nil, fmt.Errorf("build: %w", errors.Join(b.errs...))
	}

	chassis := b.chassis
	if chassis == 0 {
		chassis = ThreeRotor
	}
	n := int(chassis)
	for i := 0; i < 3; i++ {
		r := b.rotors[i]
		if r == nil {
			return nil, fmt.Errorf("build: slot %d: %w", i+1, ErrMissingRotor)
		}
		if r.Thin() {
			return nil, fmt.Errorf("build: slot %d: rotor %s: %w", i+1, r.Name(), ErrThinRotorSlot)
		}
	}
	if chassis == ThreeRotor && b.rotors[3] != nil {
		return nil, fmt.Errorf("build: slot 4 on a three rotor chassis: %w", ErrSlot)
	}
	if b.reflector == nil {
		return nil, fmt.Errorf("build: %w", ErrMissingReflector)
	}

	m := &Machine{
		plugboard: b.board().Clone(),
		rotors:    make([]*component.Rotor, n),
		reflector: b.reflector.Clone(),
		logger:    b.logger,
	}
	for i := 0; i < n; i++ {
		if b.rotors[i] == nil {
			m.rotors[i] = component.NewIdentityRotor()
			continue
		}
		m.rotors[i] = b.rotors[i].Clone()
	}
	if m.logger == nil {
		m.logger = slog.New(slog.DiscardHandler)
	}
	m.snapshot()
	return m, nil
}
