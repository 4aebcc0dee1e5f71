package mex_test

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/require"

	"mexset/internal/common"
	"mexset/internal/mex"
)

func TestInsertOnlyWalkthrough(t *testing.T) {
	m, err := mex.NewInsertOnlyMex[uint64](7)
	require.NoError(t, err)
	require.Equal(t, uint64(0), m.Mex())

	steps := []struct {
		value uint64
		want  uint64
	}{
		{1, 0},
		{2, 0},
		{0, 3},
		{4, 3},
		{3, 5},
		{7, 5},
		{5, 6},
	}
	for i, s := range steps {
		require.NoError(t, m.Add(s.value))
		require.Equal(t, s.want, m.Mex(), "step %d: insert %d", i, s.value)
	}
}

func TestInsertOnlyBounds(t *testing.T) {
	m, err := mex.NewInsertOnlyMex[int](7)
	require.NoError(t, err)
	require.Equal(t, 7, m.Universe())

	require.NoError(t, m.Add(7))
	require.True(t, m.Contains(7))

	err = m.Add(8)
	require.ErrorIs(t, err, common.ErrOutOfRange)
	require.Contains(t, err.Error(), "add 8 to universe [0, 7]")
	require.False(t, m.Contains(8))

	require.ErrorIs(t, m.Add(-1), common.ErrNegativeValue)
	require.False(t, m.Contains(-1))
	require.Equal(t, 0, m.Mex())
}

func TestInsertOnlyFillsUniverse(t *testing.T) {
	const n = 20
	m, err := mex.NewInsertOnlyMex[uint8](n)
	require.NoError(t, err)

	for v := n; v >= 0; v-- {
		require.Equal(t, uint8(0), m.Mex())
		require.NoError(t, m.Add(uint8(v)))
	}
	require.Equal(t, uint8(n+1), m.Mex())
}

func TestInsertOnlyDuplicates(t *testing.T) {
	m, err := mex.NewInsertOnlyMex[uint32](10)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, m.Add(0))
		require.NoError(t, m.Add(2))
	}
	require.Equal(t, uint32(1), m.Mex())
	require.True(t, m.Contains(2))
	require.False(t, m.Contains(1))
}

func TestInsertOnlyMonotonic(t *testing.T) {
	const n = 300
	for seed := uint64(1); seed <= 5; seed++ {
		events := common.RandomEvents[uint16](gofakeit.New(seed), 2*n, n, 0)
		m, err := mex.NewInsertOnlyMex[uint16](n)
		require.NoError(t, err)

		got := make([]uint16, 0, len(events))
		var last uint16
		for _, ev := range events {
			require.NoError(t, m.Add(ev.Value))
			require.GreaterOrEqual(t, m.Mex(), last)
			last = m.Mex()
			got = append(got, last)
		}
		common.RequireMexSequence(t, events, got)
	}
}

func TestInsertOnlyConstructorRange(t *testing.T) {
	// The mex can reach n+1, which must fit in the value type.
	_, err := mex.NewInsertOnlyMex[uint8](255)
	require.ErrorIs(t, err, common.ErrOutOfRange)

	_, err = mex.NewInsertOnlyMex[uint8](254)
	require.NoError(t, err)

	_, err = mex.NewInsertOnlyMex[int](-1)
	require.ErrorIs(t, err, common.ErrOutOfRange)
}

func TestInsertOnlyEmptyUniverse(t *testing.T) {
	m, err := mex.NewInsertOnlyMex[uint64](0)
	require.NoError(t, err)

	require.ErrorIs(t, m.Add(1), common.ErrOutOfRange)
	require.NoError(t, m.Add(0))
	require.Equal(t, uint64(1), m.Mex())
}
