package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationRange(t *testing.T) {
	base := 2 * time.Second
	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDurationWithSeedDeterministic(t *testing.T) {
	a := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(1)))
	b := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(1)))
	assert.Equal(t, a, b)
}

func TestExponentialBackoffGrowsToCap(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	prevCap := base
	for attempt := 0; attempt < 8; attempt++ {
		d := ExponentialBackoff(base, max, attempt, 0)

		// без джиттера интервал детерминирован: base*2^attempt, не выше max
		assert.LessOrEqual(t, d, max)
		assert.GreaterOrEqual(t, d, prevCap)
		prevCap = d
	}

	assert.Equal(t, max, ExponentialBackoff(base, max, 100, 0))
}
