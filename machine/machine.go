package machine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/706f6c6c7578/enigma/alphabet"
	"github.com/706f6c6c7578/enigma/component"
)

// Machine is an assembled rotor cipher machine. Use Builder to create one.
type Machine struct {
	plugboard *component.Plugboard
	rotors    []*component.Rotor
	reflector *component.Reflector
	initial   settings
	logger    *slog.Logger
}

// settings are the wheel positions and rings restored before each message.
type settings struct {
	rings     []byte
	positions []byte
	reflector byte
}

func (m *Machine) snapshot() {
	m.initial = settings{
		rings:     make([]byte, len(m.rotors)),
		positions: make([]byte, len(m.rotors)),
		reflector: m.reflector.Position(),
	}
	for i, r := range m.rotors {
		m.initial.rings[i] = r.Ring()
		m.initial.positions[i] = r.Position()
	}
}

// Encode resets the machine to its initial settings and enciphers text.
// Letters outside 'A'..'Z' are skipped without stepping the rotors. The
// result is not grouped.
func (m *Machine) Encode(text string) (string, error) {
	return m.process(text)
}

// Decode is Encode: the cipher is its own inverse under equal settings.
func (m *Machine) Decode(text string) (string, error) {
	return m.process(text)
}

func (m *Machine) process(text string) (string, error) {
	if err := m.Reset(); err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(text))
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !alphabet.Contains(c) {
			continue
		}
		e, err := m.Press(c)
		if err != nil {
			return "", fmt.Errorf("offset %d: %w", i, err)
		}
		out.WriteByte(e)
	}
	return out.String(), nil
}

// Reset restores every wheel to the settings the machine was built with.
func (m *Machine) Reset() error {
	for i, r := range m.rotors {
		if err := r.SetRing(m.initial.rings[i]); err != nil {
			return err
		}
		if err := r.SetPosition(m.initial.positions[i]); err != nil {
			return err
		}
	}
	return m.reflector.SetPosition(m.initial.reflector)
}

// Step advances the rotors by one keystroke.
func (m *Machine) Step() {
	r1, r2, r3 := m.rotors[0], m.rotors[1], m.rotors[2]
	r1Notch, r2Notch := r1.AtNotch(), r2.AtNotch()

	r1.AdvancePosition()
	if r1Notch {
		r2.AdvancePosition()
	}
	if r2Notch {
		r2.AdvancePosition()
		r3.AdvancePosition()
	}
}

// Press steps the rotors and enciphers a single letter without resetting
// the machine first. c is checked before anything moves.
func (m *Machine) Press(c byte) (byte, error) {
	if _, err := alphabet.Index(c); err != nil {
		return 0, fmt.Errorf("press: %w", err)
	}
	m.Step()

	trace := m.logger.Enabled(context.Background(), slog.LevelDebug)
	if trace {
		m.logger.Debug("input", slog.String("letter", string(c)), slog.String("positions", m.Positions()))
	}

	x := c
	var err error
	pass := func(s component.Substitution, forward bool) {
		if err != nil {
			return
		}
		in := x
		if forward {
			x, err = s.Forward(x)
		} else {
			x, err = s.Reverse(x)
		}
		if trace && err == nil {
			m.traceStage(s, forward, in, x)
		}
	}

	pass(m.plugboard, true)
	for _, r := range m.rotors {
		pass(r, true)
	}
	pass(m.reflector, true)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		pass(m.rotors[i], false)
	}
	pass(m.plugboard, false)
	if err != nil {
		return 0, err
	}

	if trace {
		m.logger.Debug("output", slog.String("letter", string(x)))
	}
	return x, nil
}

func (m *Machine) traceStage(s component.Substitution, forward bool, in, out byte) {
	dir := "reverse"
	if forward {
		dir = "forward"
	}
	attrs := []any{
		slog.String("stage", s.Name()),
		slog.String("dir", dir),
		slog.String("in", string(in)),
		slog.String("out", string(out)),
	}
	switch w := s.(type) {
	case *component.Rotor:
		attrs = append(attrs, slog.String("ring", string(w.Ring())), slog.String("position", string(w.Position())))
	case *component.Reflector:
		attrs = append(attrs, slog.String("position", string(w.Position())))
	}
	m.logger.Debug("substitution", attrs...)
}

// Chassis returns the number of rotor slots.
func (m *Machine) Chassis() Chassis {
	return Chassis(len(m.rotors))
}

// Positions returns the current rotor positions as shown in the machine
// windows, leftmost rotor first.
func (m *Machine) Positions() string {
	b := make([]byte, len(m.rotors))
	for i, r := range m.rotors {
		b[len(b)-1-i] = r.Position()
	}
	return string(b)
}

// Rotor returns the name, ring and current position of the rotor in slot
// 1..n.
func (m *Machine) Rotor(slot int) (name string, ring, position byte, err error) {
	if slot < 1 || slot > len(m.rotors) {
		return "", 0, 0, fmt.Errorf("slot %d: %w", slot, ErrSlot)
	}
	r := m.rotors[slot-1]
	return r.Name(), r.Ring(), r.Position(), nil
}

// String summarizes the configuration in key sheet order, e.g.
// "UKW A | II-X I-M III-V | ABL | AM FI NV PS TU WZ".
func (m *Machine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "UKW %s", m.reflector.Name())
	if p := m.reflector.Position(); p != 'A' {
		fmt.Fprintf(&sb, "@%c", p)
	}
	sb.WriteString(" |")
	for i := len(m.rotors) - 1; i >= 0; i-- {
		r := m.rotors[i]
		fmt.Fprintf(&sb, " %s-%c", r.Name(), r.Ring())
	}
	fmt.Fprintf(&sb, " | %s", m.Positions())
	if pairs := m.plugboard.String(); pairs != "" {
		fmt.Fprintf(&sb, " | %s", pairs)
	}
	return sb.String()
}
