package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	t.Parallel()
	a, b := New(42), New(42)
	for range 10 {
		assert.Equal(t, a.Uint64(), b.Uint64())
	}
	assert.NotEqual(t, New(1).Uint64(), New(2).Uint64())
}

func TestResolve(t *testing.T) {
	t.Parallel()
	seed := int64(99)
	got, rng := Resolve(&seed)
	assert.Equal(t, seed, got)
	assert.Equal(t, New(99).Uint64(), rng.Uint64())

	got, rng = Resolve(nil)
	assert.NotZero(t, got)
	assert.Equal(t, New(got).Uint64(), rng.Uint64())
}
