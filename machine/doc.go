// Package machine assembles a plugboard, three or four rotors and a
// reflector into a rotor cipher machine and runs the keystroke loop.
//
// Slot 1 holds the fast (rightmost) rotor. Before each letter is enciphered
// the rotors step like an odometer with the historical double-step anomaly:
// the notch state of rotors 1 and 2 is captured, rotor 1 always advances,
// rotor 2 advances if rotor 1 was on a notch, and rotor 2 advances again
// together with rotor 3 if rotor 2 was on a notch. The fourth rotor and the
// reflector never move.
//
// The signal then runs plugboard → rotors 1..n → reflector → rotors n..1 →
// plugboard. Encode and Decode are the same operation: both first restore
// the settings the machine was built with, so every call is independent.
//
// A Machine is not safe for concurrent use. Serialize calls or build one
// machine per goroutine from the same settings.
package machine
