package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"easybj/server/engine"
)

func newTestTable() *Table[float64] {
	return New[float64](engine.DealerCodes(), engine.StandCodes(), "%")
}

func TestSetGet(t *testing.T) {
	tb := newTestTable()
	row, col := engine.HardTotal(12), engine.SoftTotal(13)

	_, err := tb.Get(row, col)
	assert.ErrorIs(t, err, ErrUnset)

	require.NoError(t, tb.Set(row, col, 0.25))
	v, err := tb.Get(row, col)
	require.NoError(t, err)
	assert.Equal(t, 0.25, v)

	require.NoError(t, tb.Set(row, col, v+0.5))
	assert.Equal(t, 0.75, tb.MustGet(row, col))

	require.NoError(t, tb.Clear(row, col))
	_, err = tb.Get(row, col)
	assert.ErrorIs(t, err, ErrUnset)
}

func TestZeroIsNotUnset(t *testing.T) {
	tb := newTestTable()
	tb.MustSet(engine.Twentyone, engine.HardTotal(20), 0)
	v, err := tb.Get(engine.Twentyone, engine.HardTotal(20))
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestKeyNotFound(t *testing.T) {
	tb := newTestTable()

	// Pair AA prints like soft 12 but is not on the stand axis.
	err := tb.Set(engine.PairOf(engine.Ace), engine.HardTotal(4), 1)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	_, err = tb.Get(engine.HardTotal(4), engine.SoftTotal(18))
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, tb.Clear(engine.Busted, engine.HardTotal(4)), ErrKeyNotFound)

	assert.Panics(t, func() { tb.MustGet(engine.Blackjack, engine.HardTotal(4)) })
	assert.Panics(t, func() { tb.MustSet(engine.HardTotal(4), engine.Blackjack, 1) })
	assert.Panics(t, func() { tb.MustGet(engine.HardTotal(4), engine.HardTotal(4)) })
}

func TestLabels(t *testing.T) {
	tb := newTestTable()
	assert.Equal(t, "%", tb.Unit())
	assert.Equal(t, engine.DealerCodes(), tb.Cols())
	assert.Equal(t, engine.StandCodes(), tb.Rows())

	cols := tb.Cols()
	cols[0] = engine.Busted
	assert.Equal(t, engine.HardTotal(4), tb.Cols()[0])

	r, err := tb.Row("AA")
	require.NoError(t, err)
	assert.Equal(t, engine.SoftTotal(12), r)

	pairs := New[string](engine.DealerCodes(), engine.PlayerCodes(), "")
	r, err = pairs.Row("AA")
	require.NoError(t, err)
	assert.Equal(t, engine.PairOf(engine.Ace), r)

	_, err = tb.Col("2")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestComplete(t *testing.T) {
	cols := []engine.Category{engine.HardTotal(17), engine.Busted}
	rows := []engine.Category{engine.HardTotal(4)}
	tb := New[string](cols, rows, "")
	assert.False(t, tb.Complete())
	tb.MustSet(engine.HardTotal(4), engine.HardTotal(17), "S")
	assert.False(t, tb.Complete())
	tb.MustSet(engine.HardTotal(4), engine.Busted, "H")
	assert.True(t, tb.Complete())

	var g Grid = tb
	v, err := g.Cell(engine.HardTotal(4), engine.Busted)
	require.NoError(t, err)
	assert.Equal(t, "H", v)
}

func TestDuplicateLabelsPanic(t *testing.T) {
	assert.Panics(t, func() {
		New[float64]([]engine.Category{engine.HardTotal(4), engine.HardTotal(4)}, nil, "")
	})
}
