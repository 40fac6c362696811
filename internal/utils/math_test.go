package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		expected  float64
	}{
		{"within range", 0.5, 0.1, 0.99, 0.5},
		{"below floor", 0.05, 0.1, 0.99, 0.1},
		{"above ceiling", 1.3, 0.1, 0.99, 0.99},
		{"at floor", 0.1, 0.1, 0.99, 0.1},
		{"at ceiling", 0.99, 0.1, 0.99, 0.99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clamp(tt.v, tt.lo, tt.hi))
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(0, 1, 5))
	assert.Equal(t, 5, ClampInt(9, 1, 5))
	assert.Equal(t, 3, ClampInt(3, 1, 5))
}

func TestRandomFloatRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomFloat()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestRandomIntRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := RandomInt(1, 3)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 3)
	}

	// Degenerate range returns min
	assert.Equal(t, 5, RandomInt(5, 2))
}
