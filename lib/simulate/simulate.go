package simulate

import (
	"math/rand"
	"time"
)

// DelayFunc picks how long a mock job pretends to run. min is inclusive,
// max exclusive.
type DelayFunc func(min, max time.Duration) time.Duration

// FailFunc decides whether a mock job fails, given the configured failure
// probability.
type FailFunc func(probability float64) bool

// UniformDelay draws a delay uniformly from [min, max).
func UniformDelay(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}

// RandomFail returns true with the given probability.
func RandomFail(probability float64) bool {
	return rand.Float64() < probability
}

// NoDelay, NeverFail and AlwaysFail are deterministic stand-ins for tests.
func NoDelay(min, max time.Duration) time.Duration { return 0 }

func NeverFail(probability float64) bool { return false }

func AlwaysFail(probability float64) bool { return true }
