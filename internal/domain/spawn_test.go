package domain

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedRand は Intn で決まった値を順に返し、Shuffle では並びを変えない
type scriptedRand struct {
	pos    int
	values []int
}

func (s *scriptedRand) Intn(n int) int {
	out := s.values[s.pos]
	s.pos++
	if out >= n {
		panic("bad test Intn")
	}
	return out
}

func (s *scriptedRand) Shuffle(int, func(i, j int)) {}

func TestSpawnFillsExactlyK(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 300; i++ {
		b := randomBoard(rng, 4)
		empty := b.CountEmpty()
		k := 0
		if empty > 0 {
			k = 1 + rng.Intn(empty)
		}

		spawned, err := Spawn(b, k, rng)
		require.NoError(t, err)

		filled := 0
		for idx, v := range b {
			if v != 0 {
				assert.Equal(t, v, spawned[idx], "non-zero cell changed")
				continue
			}
			if spawned[idx] != 0 {
				filled++
				assert.Contains(t, []int{2, 4}, spawned[idx])
			}
		}
		assert.Equal(t, k, filled)
	}
}

func TestSpawnNotEnoughEmptyCells(t *testing.T) {
	b := NewBoardFromCells([4][4]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 0},
	})

	_, err := Spawn(b, 2, rand.New(rand.NewSource(1)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotEnoughEmptyCells))

	spawned, err := Spawn(b, 1, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 0, spawned.CountEmpty())
}

func TestSpawnValues(t *testing.T) {
	rng := &scriptedRand{values: []int{0, 9}}
	b, err := Spawn(NewBoard(), 2, rng)
	require.NoError(t, err)

	assert.Equal(t, 4, b.Get(0, 0))
	assert.Equal(t, 2, b.Get(0, 1))
	assert.Equal(t, 14, b.CountEmpty())
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	fours := 0
	const trials = 20000
	for i := 0; i < trials; i++ {
		b, err := Spawn(NewBoard(), 1, rng)
		require.NoError(t, err)
		if b.MaxTile() == 4 {
			fours++
		}
	}
	assert.InDelta(t, spawn4Prob, float64(fours)/trials, 0.01)
}

func TestSpawnIsDeterministicWithSeed(t *testing.T) {
	a := InitialBoard(rand.New(rand.NewSource(2024)))
	b := InitialBoard(rand.New(rand.NewSource(2024)))
	assert.Equal(t, a, b)
	assert.Equal(t, 14, a.CountEmpty())
}
