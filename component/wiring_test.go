package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/706f6c6c7578/enigma/alphabet"
	"github.com/706f6c6c7578/enigma/component"
)

func TestNewWiring(t *testing.T) {
	w, err := component.NewWiring("III", "test", "BDFHJLCPRTXVZNYEIWGAKMUSQO")
	require.NoError(t, err)
	assert.Equal(t, "III", w.Name())
	assert.Equal(t, "test", w.Description())
	assert.Equal(t, "BDFHJLCPRTXVZNYEIWGAKMUSQO", w.ForwardMapping())
	assert.Equal(t, "TAGBPCSDQEUFVNZHYIXJWLRKOM", w.ReverseMapping())

	for i := 0; i < alphabet.Size; i++ {
		c := alphabet.Letters[i]
		f, err := w.Forward(c)
		require.NoError(t, err)
		back, err := w.Reverse(f)
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
}

func TestNewWiring_Errors(t *testing.T) {
	cases := []struct {
		name    string
		mapping string
		err     error
	}{
		{"Empty", "", component.ErrWiringLength},
		{"Short", "ABCDEFGHIJKLMNOPQRSTUVWXY", component.ErrWiringLength},
		{"Long", "ABCDEFGHIJKLMNOPQRSTUVWXYZA", component.ErrWiringLength},
		{"Duplicate", "AACDEFGHIJKLMNOPQRSTUVWXYZ", component.ErrWiringDuplicate},
		{"Lowercase", "abcdefghijklmnopqrstuvwxyz", alphabet.ErrOutOfRange},
		{"Digit", "1BCDEFGHIJKLMNOPQRSTUVWXYZ", alphabet.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, err := component.NewWiring("bad", "", tc.mapping)
			assert.Nil(t, w)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, component.ErrInvalidWiring)
		})
	}
}

func TestWiring_OutOfRange(t *testing.T) {
	w, err := component.NewWiring("id", "", alphabet.Letters)
	require.NoError(t, err)
	for c := 0; c < 256; c++ {
		if alphabet.Contains(byte(c)) {
			continue
		}
		_, err := w.Forward(byte(c))
		assert.ErrorIs(t, err, alphabet.ErrOutOfRange)
		_, err = w.Reverse(byte(c))
		assert.ErrorIs(t, err, alphabet.ErrOutOfRange)
	}
}
