package machine

import "errors"

var (
	// ErrMissingRotor indicates a required rotor slot without a rotor.
	ErrMissingRotor = errors.New("machine: missing rotor")
	// ErrMissingReflector indicates a machine built without a reflector.
	ErrMissingReflector = errors.New("machine: missing reflector")
	// ErrSlot indicates a rotor slot outside the chassis.
	ErrSlot = errors.New("machine: invalid rotor slot")
	// ErrThinRotorSlot indicates a thin rotor mounted outside the fourth slot.
	ErrThinRotorSlot = errors.New("machine: thin rotors only fit the fourth slot")
	// ErrChassis indicates an unknown chassis.
	ErrChassis = errors.New("machine: unknown chassis")
)
