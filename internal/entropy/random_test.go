package entropy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterministicSequence(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64(), "draw %d diverged", i)
	}
}

func TestBetweenBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Between(3, 9)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 9)
	}
	assert.Equal(t, 5, s.Between(5, 5))
	assert.Equal(t, 5, s.Between(5, 2))
}

func TestReadDeterministicBytes(t *testing.T) {
	a := New(42)
	b := New(42)
	bufA := make([]byte, 16)
	bufB := make([]byte, 16)
	for i := 0; i < 20; i++ {
		nA, errA := a.Read(bufA)
		nB, errB := b.Read(bufB)
		require.NoError(t, errA)
		require.NoError(t, errB)
		require.Equal(t, 16, nA)
		require.Equal(t, nA, nB)
		assert.Equal(t, bufA, bufB, "read %d diverged", i)
	}
}

func TestChanceExtremes(t *testing.T) {
	s := New(1)
	for i := 0; i < 50; i++ {
		assert.False(t, s.Chance(0))
		assert.False(t, s.Chance(-0.5))
		assert.True(t, s.Chance(1))
		assert.True(t, s.Chance(1.5))
	}
}

func TestSeedRetained(t *testing.T) {
	s := New(1234)
	assert.Equal(t, int64(1234), s.Seed())
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
