package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	base := 2 * time.Second

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDuration_ZeroJitter(t *testing.T) {
	base := time.Second
	assert.Equal(t, base, Duration(base, 0))
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	base := time.Second

	first := DurationWithSeed(base, DefaultJitter, rand.New(rand.NewSource(1)))
	second := DurationWithSeed(base, DefaultJitter, rand.New(rand.NewSource(1)))

	assert.Equal(t, first, second)
}

func TestExponentialBackoff_GrowsAndCaps(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	prev := time.Duration(0)
	for attempt := 0; attempt < 4; attempt++ {
		d := ExponentialBackoff(base, max, attempt, 0)
		assert.Greater(t, d, prev, "attempt %d", attempt)
		prev = d
	}

	capped := ExponentialBackoff(base, max, 20, 0)
	assert.Equal(t, max, capped)
}
