package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/706f6c6c7578/enigma/alphabet"
	"github.com/706f6c6c7578/enigma/component"
)

var reflectorTables = []struct {
	factory func() *component.Reflector
	name    string
	wiring  string
}{
	{component.ReflectorA, "A", "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{component.ReflectorB, "B", "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{component.ReflectorC, "C", "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
	{component.ReflectorBruno, "Bruno", "ENKQAUYWJICOPBLMDXZVFTHRGS"},
	{component.ReflectorCaesar, "Caesar", "RDOBJNTKVEHMLFCWZAXGYIPSUQ"},
}

func TestReflectorCatalog(t *testing.T) {
	all := component.Reflectors()
	require.Len(t, all, len(reflectorTables))

	for i, tc := range reflectorTables {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.factory()
			assert.Equal(t, tc.name, r.Name())
			assert.Equal(t, tc.name, all[i].Name())
			assert.Equal(t, tc.wiring, r.ForwardMapping())
			// Involutions are their own inverse.
			assert.Equal(t, tc.wiring, r.ReverseMapping())
		})
	}
}

func TestReflectorByName(t *testing.T) {
	for _, name := range []string{"B", "b", "UKW B", "UKW-B", "ukw-b"} {
		r, err := component.ReflectorByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, "B", r.Name())
	}
	_, err := component.ReflectorByName("D")
	assert.ErrorIs(t, err, component.ErrUnknownComponent)
}

// TestReflectorWiring checks every position: the adjusted mapping stays a
// fixed-point-free involution.
func TestReflectorWiring(t *testing.T) {
	for _, tc := range reflectorTables {
		t.Run(tc.name, func(t *testing.T) {
			r := tc.factory()
			for pi := 0; pi < alphabet.Size; pi++ {
				pos := alphabet.Letters[pi]
				require.NoError(t, r.SetPosition(pos))
				for ci := 0; ci < alphabet.Size; ci++ {
					c := alphabet.Letters[ci]
					f, err := r.Forward(c)
					require.NoError(t, err)
					assert.Equal(t, expected(tc.wiring, 'A', pos, c), f)
					assert.NotEqual(t, c, f)

					back, err := r.Reverse(f)
					require.NoError(t, err)
					assert.Equal(t, c, back)
					twice, err := r.Forward(f)
					require.NoError(t, err)
					assert.Equal(t, c, twice)
				}
			}
		})
	}
}

func TestReflectorPosition(t *testing.T) {
	r := component.ReflectorA()
	for c := 0; c < 256; c++ {
		err := r.SetPosition(byte(c))
		if alphabet.Contains(byte(c)) {
			require.NoError(t, err)
			assert.Equal(t, byte(c), r.Position())
		} else {
			assert.ErrorIs(t, err, alphabet.ErrOutOfRange)
		}
	}

	require.NoError(t, r.SetPosition('Z'))
	r.AdvancePosition()
	assert.Equal(t, byte('A'), r.Position())

	_, err := r.Forward('a')
	assert.ErrorIs(t, err, alphabet.ErrOutOfRange)
	_, err = r.Reverse(0)
	assert.ErrorIs(t, err, alphabet.ErrOutOfRange)
}

func TestReflectorInstancesAreIndependent(t *testing.T) {
	a, b := component.ReflectorB(), component.ReflectorB()
	require.NoError(t, a.SetPosition('C'))
	assert.Equal(t, byte('C'), a.Position())
	assert.Equal(t, byte('A'), b.Position())
}

func TestNewReflector(t *testing.T) {
	r, err := component.NewReflector("B", "", "YRUHQSLDPXNGOKMIEBFZCWVJAT")
	require.NoError(t, err)
	assert.Equal(t, "B", r.Name())

	// Rotor I is not an involution.
	_, err = component.NewReflector("I", "", "EKMFLGDQVZNTOWYHXUSPAIBRCJ")
	assert.ErrorIs(t, err, component.ErrNotReflecting)

	// The identity is an involution but has fixed points.
	_, err = component.NewReflector("ID", "", alphabet.Letters)
	assert.ErrorIs(t, err, component.ErrNotReflecting)

	_, err = component.NewReflector("bad", "", "YRU")
	assert.ErrorIs(t, err, component.ErrInvalidWiring)
}
