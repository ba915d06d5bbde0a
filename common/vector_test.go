package common

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()
	n, err := Normalize(mgl64.Vec3{0, 3, 4})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, n.Len(), 1e-12)

	_, err = Normalize(mgl64.Vec3{})
	assert.ErrorIs(t, err, ErrZeroVector)
}

func TestApproxEqual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b mgl64.Vec3
		eps  float64
		want bool
	}{
		{"identical", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, 0, true},
		{"noise around zero", mgl64.Vec3{10, 0, 1}, mgl64.Vec3{10, -3.43e-15, 1}, 1e-9, true},
		{"noise on unit axis", mgl64.Vec3{1, -5.18e-16, 0}, mgl64.Vec3{1, -7.28e-16, 0}, 1e-9, true},
		{"outside tolerance", mgl64.Vec3{1, 0, 0}, mgl64.Vec3{1, 1e-6, 0}, 1e-9, false},
		{"absolute on large values", mgl64.Vec3{1e6, 0, 0}, mgl64.Vec3{1e6 + 1e-3, 0, 0}, 1e-6, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApproxEqual(tt.a, tt.b, tt.eps))
		})
	}
}
