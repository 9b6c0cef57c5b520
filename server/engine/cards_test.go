package engine

import (
	"testing"

	poker "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	deck := NewDeck()
	require.Len(t, deck, 52)

	seen := map[string]bool{}
	tens := 0
	for _, c := range deck {
		assert.False(t, seen[c.String()], c.String())
		seen[c.String()] = true
		if c.Rank() == Ten {
			tens++
		}
	}
	assert.Equal(t, 16, tens)
	assert.True(t, seen["Ks"])
	assert.True(t, seen["Ac"])
	assert.Equal(t, "Ac", deck[0].String())
	assert.Equal(t, "Ks", deck[51].String())
}

func TestCardHoldsLibraryCard(t *testing.T) {
	c, err := ParseCard("qd")
	require.NoError(t, err)
	assert.Equal(t, poker.Diamond, c.pc.Suit())
	assert.Equal(t, poker.Rank(12), c.pc.Rank())
	assert.Equal(t, "Qd", c.String())

	c, err = ParseCard("10H")
	require.NoError(t, err)
	assert.Equal(t, "Th", c.String())
	assert.Equal(t, poker.NameToCard["HT"], c.pc)

	assert.Equal(t, "??", Card{}.String())

	for _, c := range NewDeck() {
		back, err := ParseCard(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, back)
	}
	for _, s := range []string{"Js", "Qd", "Kc", "Th"} {
		c, err := ParseCard(s)
		require.NoError(t, err)
		assert.Equal(t, Ten, c.Rank(), s)
	}
}

func TestWeights(t *testing.T) {
	sum := 0.0
	for _, r := range Ranks {
		sum += Weight(r)
	}
	assert.InDelta(t, 1.0, sum, 1e-12)
	assert.Equal(t, 1.0/13, Weight(Ace))
	assert.Equal(t, 1.0/13, Weight(Nine))
	assert.Equal(t, 4.0/13, Weight(Ten))
	assert.Panics(t, func() { Weight('Q') })
}

func TestParseCard(t *testing.T) {
	cases := map[string]Rank{
		"As":  Ace,
		"ah":  Ace,
		"2c":  Two,
		"9d":  Nine,
		"Th":  Ten,
		"10h": Ten,
		"Js":  Ten,
		"qD":  Ten,
		"Kc":  Ten,
	}
	for in, want := range cases {
		c, err := ParseCard(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, c.Rank(), in)
	}

	for _, in := range []string{"", "A", "1s", "Zs", "Ax", "KKs", " s"} {
		_, err := ParseCard(in)
		assert.ErrorIs(t, err, ErrBadCard, in)
	}
}

func TestParseCards(t *testing.T) {
	cs, err := ParseCards("9s,7d 10c")
	require.NoError(t, err)
	require.Len(t, cs, 3)
	assert.Equal(t, "9s", cs[0].String())
	assert.Equal(t, Ten, cs[2].Rank())

	_, err = ParseCards("9s,7x")
	assert.ErrorIs(t, err, ErrBadCard)
}
