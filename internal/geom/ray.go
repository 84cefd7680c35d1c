// Package geom implements rays and the closed set of traceable shapes.
package geom

import "whitted-tracer/internal/mathutil"

// Ray is a half-line. Direction must be unit length.
type Ray struct {
	Origin    mathutil.Vec3
	Direction mathutil.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mathutil.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
