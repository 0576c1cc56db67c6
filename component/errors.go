package component

import "errors"

var (
	// ErrInvalidWiring matches every malformed wiring.
	ErrInvalidWiring = errors.New("component: invalid wiring")
	// ErrWiringLength indicates a wiring that is not exactly 26 symbols long.
	ErrWiringLength = errors.New("component: wiring must have 26 symbols")
	// ErrWiringDuplicate indicates a symbol used twice in a wiring.
	ErrWiringDuplicate = errors.New("component: duplicate symbol in wiring")
	// ErrNotReflecting indicates a reflector wiring that is not a fixed-point-free involution.
	ErrNotReflecting = errors.New("component: reflector wiring must pair every symbol with another")
	// ErrPlugInUse indicates a plugboard letter that already carries a cable.
	ErrPlugInUse = errors.New("component: plug already in use")
	// ErrPlugSelf indicates a cable from a letter to itself.
	ErrPlugSelf = errors.New("component: cable must join two different letters")
	// ErrPlugNotConnected indicates a cable that is not connected as given.
	ErrPlugNotConnected = errors.New("component: cable not connected")
	// ErrCableToken indicates a malformed cable list entry.
	ErrCableToken = errors.New("component: cable must be two letters")
	// ErrUnknownComponent indicates a catalog lookup for a name that does not exist.
	ErrUnknownComponent = errors.New("component: unknown component")
)
