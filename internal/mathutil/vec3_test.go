package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	assert.Equal(t, Vec3{5, -3, 9}, a.Add(b))
	assert.Equal(t, Vec3{-3, 7, -3}, a.Sub(b))
	assert.Equal(t, Vec3{2, 4, 6}, a.Scale(2))
	assert.Equal(t, Vec3{-1, -2, -3}, a.Neg())
	assert.Equal(t, 12.0, a.Dot(b))
	assert.Equal(t, 14.0, a.LenSq())
	assert.InDelta(t, math.Sqrt(14), a.Len(), 1e-12)
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 0, 4}.Normalize()
	assert.InDelta(t, 1.0, n.Len(), 1e-12)
	assert.InDelta(t, 0.6, n[0], 1e-12)
	assert.InDelta(t, 0.8, n[2], 1e-12)

	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.True(t, Vec3{}.IsZero())
	assert.False(t, n.IsZero())
}

func TestDeg2Rad(t *testing.T) {
	assert.InDelta(t, math.Pi/2, Deg2Rad(90), 1e-12)
	assert.InDelta(t, math.Pi, Deg2Rad(180), 1e-12)
	assert.True(t, ApproxEqual(1.0, 1.0+1e-10, 1e-9))
	assert.False(t, ApproxEqual(1.0, 1.1, 1e-9))
}
