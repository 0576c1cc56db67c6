package alphabet_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/706f6c6c7578/enigma/alphabet"
)

func TestIndexSymbol(t *testing.T) {
	for i := 0; i < alphabet.Size; i++ {
		c, err := alphabet.Symbol(i)
		require.NoError(t, err)
		assert.Equal(t, alphabet.Letters[i], c)

		got, err := alphabet.Index(c)
		require.NoError(t, err)
		assert.Equal(t, i, got)
	}
}

func TestOutOfRange(t *testing.T) {
	for _, c := range []byte{0, '@', '[', 'a', 'z', '1', ' ', 0xff} {
		_, err := alphabet.Index(c)
		assert.ErrorIs(t, err, alphabet.ErrOutOfRange, "Index(%q)", c)
		assert.False(t, alphabet.Contains(c))
	}
	for _, i := range []int{-1, 26, 27, 100} {
		_, err := alphabet.Symbol(i)
		assert.ErrorIs(t, err, alphabet.ErrOutOfRange, "Symbol(%d)", i)
	}
}

func TestMod(t *testing.T) {
	cases := []struct{ in, want int }{
		{0, 0}, {25, 25}, {26, 0}, {27, 1}, {-1, 25}, {-26, 0}, {-27, 25}, {52, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, alphabet.Mod(tc.in), "Mod(%d)", tc.in)
	}
	assert.Equal(t, byte('Z'), alphabet.Shift(-1))
	assert.Equal(t, byte('A'), alphabet.Shift(26))
}
