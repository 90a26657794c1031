package parallel

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachVisitsEveryIndex(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 3, 7, 100} {
		n := 53
		seen := make([]int32, n)

		err := ForEach(n, workers, func(i int) error {
			atomic.AddInt32(&seen[i], 1)
			return nil
		})
		require.NoError(t, err)

		for i, c := range seen {
			assert.Equal(t, int32(1), c, "index %d with %d workers", i, workers)
		}
	}
}

func TestForEachOrderedWrites(t *testing.T) {
	n := 40
	out := make([]int, n)

	err := ForEach(n, 4, func(i int) error {
		out[i] = i * i
		return nil
	})
	require.NoError(t, err)

	for i := range out {
		assert.Equal(t, i*i, out[i])
	}
}

func TestForEachEmpty(t *testing.T) {
	called := false
	err := ForEach(0, 4, func(i int) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.False(t, called)
}

func TestForEachError(t *testing.T) {
	boom := errors.New("boom")

	err := ForEach(100, 8, func(i int) error {
		if i == 37 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
}

func TestForEachErrorSequential(t *testing.T) {
	boom := errors.New("boom")
	var count int

	err := ForEach(10, 1, func(i int) error {
		count++
		if i == 3 {
			return boom
		}
		return nil
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 4, count, "sequential run stops at the failing index")
}
