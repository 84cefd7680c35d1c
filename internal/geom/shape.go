package geom

import (
	"fmt"
	"math"

	"whitted-tracer/internal/mathutil"
)

// parallelEps is the |direction·normal| below which a ray counts as
// parallel to a plane.
const parallelEps = 1e-6

// Kind tags the variant stored in a Shape.
type Kind uint8

const (
	KindSphere Kind = iota
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindPlane:
		return "plane"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Sphere is given by center and radius (> 0).
type Sphere struct {
	Center mathutil.Vec3
	Radius float64
}

// Plane is an infinite plane through Origin with unit Normal.
type Plane struct {
	Origin mathutil.Vec3
	Normal mathutil.Vec3
}

// Shape is a closed variant over the supported primitives. Only the field
// selected by Kind is meaningful.
type Shape struct {
	Kind   Kind
	Sphere Sphere
	Plane  Plane
}

// NewSphere wraps s as a Shape.
func NewSphere(center mathutil.Vec3, radius float64) Shape {
	return Shape{Kind: KindSphere, Sphere: Sphere{Center: center, Radius: radius}}
}

// NewPlane wraps p as a Shape. The normal is used as given.
func NewPlane(origin, normal mathutil.Vec3) Shape {
	return Shape{Kind: KindPlane, Plane: Plane{Origin: origin, Normal: normal}}
}

// Intersect returns the nearest non-negative distance along r at which the
// shape boundary is crossed.
func (s Shape) Intersect(r Ray) (float64, bool) {
	switch s.Kind {
	case KindSphere:
		return s.Sphere.Intersect(r)
	case KindPlane:
		return s.Plane.Intersect(r)
	}
	panic(fmt.Sprintf("geom: unknown shape kind %v", s.Kind))
}

// SurfaceNormal returns the outward unit normal at p, which is assumed to
// lie on the shape.
func (s Shape) SurfaceNormal(p mathutil.Vec3) mathutil.Vec3 {
	switch s.Kind {
	case KindSphere:
		return s.Sphere.SurfaceNormal(p)
	case KindPlane:
		return s.Plane.SurfaceNormal(p)
	}
	panic(fmt.Sprintf("geom: unknown shape kind %v", s.Kind))
}

// Intersect solves along the ray for the two points at radius from the
// center. When the origin is inside the sphere only the far root is in
// front of it.
func (s Sphere) Intersect(r Ray) (float64, bool) {
	l := s.Center.Sub(r.Origin)
	adj := l.Dot(r.Direction)
	centerDistSq := l.LenSq() - adj*adj
	radiusSq := s.Radius * s.Radius
	if centerDistSq > radiusSq {
		return 0, false
	}
	thickness := math.Sqrt(radiusSq - centerDistSq)
	near, far := adj-thickness, adj+thickness
	switch {
	case near >= 0:
		return near, true
	case far >= 0:
		return far, true
	}
	return 0, false
}

func (s Sphere) SurfaceNormal(p mathutil.Vec3) mathutil.Vec3 {
	return p.Sub(s.Center).Normalize()
}

func (p Plane) Intersect(r Ray) (float64, bool) {
	denom := r.Direction.Dot(p.Normal)
	if math.Abs(denom) < parallelEps {
		return 0, false
	}
	d := p.Origin.Sub(r.Origin).Dot(p.Normal) / denom
	if d >= 0 {
		return d, true
	}
	return 0, false
}

// SurfaceNormal is the plane's fixed normal regardless of p.
func (p Plane) SurfaceNormal(mathutil.Vec3) mathutil.Vec3 {
	return p.Normal
}
