package carve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_Normalized(t *testing.T) {
	o := Options{MaxSteps: -5, Bias: 3}.normalized()
	assert.Equal(t, DefaultMaxSteps, o.MaxSteps)
	assert.Equal(t, 1.0, o.Bias)
	assert.Equal(t, 1.0, o.RelativeWeight)

	o = Options{MaxSteps: 7, Bias: -0.5, RelativeWeight: 2}.normalized()
	assert.Equal(t, Options{MaxSteps: 7, Bias: -0.5, RelativeWeight: 2}, o)
}

func TestBudget(t *testing.T) {
	b := newBudget(Options{MaxSteps: 2})
	assert.True(t, b.take())
	assert.True(t, b.take())
	assert.False(t, b.take())
	assert.True(t, b.exhausted)
	assert.Equal(t, 2, b.used)
}
