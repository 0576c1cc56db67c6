package component_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/706f6c6c7578/enigma/alphabet"
	"github.com/706f6c6c7578/enigma/component"
)

// assertInvolution checks forward == reverse and forward(forward(c)) == c.
func assertInvolution(t *testing.T, p *component.Plugboard) {
	t.Helper()
	for ci := 0; ci < alphabet.Size; ci++ {
		c := alphabet.Letters[ci]
		f, err := p.Forward(c)
		require.NoError(t, err)
		r, err := p.Reverse(c)
		require.NoError(t, err)
		assert.Equal(t, f, r, "letter %c", c)
		back, err := p.Forward(f)
		require.NoError(t, err)
		assert.Equal(t, c, back, "letter %c", c)
	}
}

func TestPlugboardIdentity(t *testing.T) {
	p := component.NewPlugboard()
	assert.Equal(t, alphabet.Letters, p.ForwardMapping())
	assert.Equal(t, alphabet.Letters, p.ReverseMapping())
	assert.Empty(t, p.Pairs())
}

func TestPlugboardConnectDisconnect(t *testing.T) {
	p := component.NewPlugboard()
	require.NoError(t, p.Connect('A', 'M'))

	f, err := p.Forward('A')
	require.NoError(t, err)
	assert.Equal(t, byte('M'), f)
	f, err = p.Reverse('M')
	require.NoError(t, err)
	assert.Equal(t, byte('A'), f)
	assert.Equal(t, []string{"AM"}, p.Pairs())
	assertInvolution(t, p)

	require.NoError(t, p.Disconnect('M', 'A'))
	assert.Equal(t, alphabet.Letters, p.ForwardMapping())
	assert.Equal(t, alphabet.Letters, p.ReverseMapping())
}

func TestPlugboardAllPairs(t *testing.T) {
	p := component.NewPlugboard()
	for ai := 0; ai < alphabet.Size; ai++ {
		for bi := 0; bi < alphabet.Size; bi++ {
			a, b := alphabet.Letters[ai], alphabet.Letters[bi]
			if a == b {
				assert.ErrorIs(t, p.Connect(a, b), component.ErrPlugSelf)
				continue
			}
			require.NoError(t, p.Connect(a, b))
			assertInvolution(t, p)
			require.NoError(t, p.Disconnect(a, b))
			require.Equal(t, alphabet.Letters, p.ForwardMapping())
		}
	}
}

func TestPlugboardConflicts(t *testing.T) {
	p := component.NewPlugboard()
	require.NoError(t, p.Connect('A', 'B'))

	assert.ErrorIs(t, p.Connect('A', 'C'), component.ErrPlugInUse)
	assert.ErrorIs(t, p.Connect('C', 'B'), component.ErrPlugInUse)
	assert.ErrorIs(t, p.Connect('A', 'B'), component.ErrPlugInUse)
	assert.ErrorIs(t, p.Disconnect('A', 'C'), component.ErrPlugNotConnected)
	assert.ErrorIs(t, p.Disconnect('C', 'D'), component.ErrPlugNotConnected)
	assert.ErrorIs(t, p.Disconnect('C', 'C'), component.ErrPlugNotConnected)
	assert.Equal(t, []string{"AB"}, p.Pairs())

	assert.ErrorIs(t, p.Connect('a', 'C'), alphabet.ErrOutOfRange)
	assert.ErrorIs(t, p.Connect('C', '!'), alphabet.ErrOutOfRange)
	assert.ErrorIs(t, p.Disconnect('A', 'b'), alphabet.ErrOutOfRange)
	assert.Equal(t, []string{"AB"}, p.Pairs())
}

func TestPlugboardConnectAll(t *testing.T) {
	p := component.NewPlugboard()
	require.NoError(t, p.ConnectAll("AE BJ CM DZ FL GY HX IV KW NR OQ PU ST"))
	assert.Len(t, p.Pairs(), 13)
	assertInvolution(t, p)
	for ci := 0; ci < alphabet.Size; ci++ {
		c := alphabet.Letters[ci]
		f, err := p.Forward(c)
		require.NoError(t, err)
		assert.NotEqual(t, c, f)
	}

	require.NoError(t, p.DisconnectAll("ST  PU\tOQ\nAE BJ CM DZ FL GY HX IV KW NR"))
	assert.Empty(t, p.Pairs())
}

func TestPlugboardBatchIsAtomic(t *testing.T) {
	cases := []struct {
		name   string
		cables string
		err    error
	}{
		{"Blank", "   ", component.ErrCableToken},
		{"Single", "AB C", component.ErrCableToken},
		{"Triple", "AB CDE", component.ErrCableToken},
		{"Conflict", "CD DE", component.ErrPlugInUse},
		{"InUse", "CD AX", component.ErrPlugInUse},
		{"Range", "CD E1", alphabet.ErrOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := component.NewPlugboard()
			require.NoError(t, p.Connect('A', 'Z'))
			assert.ErrorIs(t, p.ConnectAll(tc.cables), tc.err)
			assert.Equal(t, []string{"AZ"}, p.Pairs())
		})
	}

	p := component.NewPlugboard()
	require.NoError(t, p.ConnectAll("AB CD"))
	assert.ErrorIs(t, p.DisconnectAll("AB CE"), component.ErrPlugNotConnected)
	assert.Equal(t, []string{"AB", "CD"}, p.Pairs())
	assert.Equal(t, "AB CD", p.String())
}

func TestPlugboardOutOfRange(t *testing.T) {
	p := component.NewPlugboard()
	_, err := p.Forward('z')
	assert.ErrorIs(t, err, alphabet.ErrOutOfRange)
	_, err = p.Reverse('@')
	assert.ErrorIs(t, err, alphabet.ErrOutOfRange)
}

func TestPlugboardClone(t *testing.T) {
	p := component.NewPlugboard()
	require.NoError(t, p.Connect('Q', 'W'))
	c := p.Clone()
	require.NoError(t, c.Connect('E', 'R'))
	assert.Equal(t, []string{"QW"}, p.Pairs())
	assert.Equal(t, []string{"ER", "QW"}, c.Pairs())
}
