package simulate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUniformDelayStaysInWindow(t *testing.T) {
	min := 1000 * time.Millisecond
	max := 4000 * time.Millisecond

	for i := 0; i < 1000; i++ {
		d := UniformDelay(min, max)
		require.GreaterOrEqual(t, d, min)
		require.Less(t, d, max)
	}
}

func TestUniformDelayDegenerateWindow(t *testing.T) {
	d := UniformDelay(500*time.Millisecond, 500*time.Millisecond)
	require.Equal(t, 500*time.Millisecond, d)
}

func TestRandomFailExtremes(t *testing.T) {
	for i := 0; i < 100; i++ {
		require.False(t, RandomFail(0))
		require.True(t, RandomFail(1))
	}
}

func TestRandomFailRoughRate(t *testing.T) {
	const trials = 20000
	failures := 0
	for i := 0; i < trials; i++ {
		if RandomFail(0.2) {
			failures++
		}
	}
	rate := float64(failures) / trials
	require.InDelta(t, 0.2, rate, 0.03)
}

func TestDeterministicStandIns(t *testing.T) {
	require.Equal(t, time.Duration(0), NoDelay(time.Second, 4*time.Second))
	require.False(t, NeverFail(1))
	require.True(t, AlwaysFail(0))
}
