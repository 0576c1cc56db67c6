// Package component implements the substitution parts of a rotor cipher
// machine.
//
// A Wiring is an immutable permutation of the alphabet held as a forward and
// a reverse lookup table. A Wheel adds a rotating position and a ring offset
// to a Wiring; Rotor and Reflector are Wheels, the Plugboard is a Wiring that
// is mutated by swapping pairs of letters.
//
// Every symbol argument is range checked against the alphabet and rejected
// with alphabet.ErrOutOfRange before any state changes.
//
// The historical catalog (rotors I to VIII, Beta, Gamma and reflectors A, B,
// C, Bruno, Caesar) is exposed as factories. Each call returns a fresh,
// independently positioned instance.
//
//	r := component.RotorI()
//	_ = r.SetRing('B')
//	_ = r.SetPosition('Q')
//	out, _ := r.Forward('A')
//
// None of the types are safe for concurrent mutation.
package component
