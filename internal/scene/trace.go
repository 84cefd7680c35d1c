package scene

import (
	"math"

	"whitted-tracer/internal/geom"
	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/rgb"
)

// Intersection is a hit on Shapes[Index] at Distance along the ray.
type Intersection struct {
	Distance float64
	Index    int
}

// Interaction is the surface point and unit normal of a hit.
type Interaction struct {
	Point  mathutil.Vec3
	Normal mathutil.Vec3
}

// Trace scans every primitive and returns the nearest hit. On equal
// distances the earlier primitive wins.
func (s *Scene) Trace(r geom.Ray) (Intersection, bool) {
	best := Intersection{Distance: math.Inf(1), Index: -1}
	for i := range s.Shapes {
		d, ok := s.Shapes[i].Shape.Intersect(r)
		if ok && d < best.Distance {
			best = Intersection{Distance: d, Index: i}
		}
	}
	return best, best.Index >= 0
}

// Primitive returns the primitive a hit refers to.
func (s *Scene) Primitive(hit Intersection) *Primitive {
	return &s.Shapes[hit.Index]
}

// Interaction locates the hit point on r and the surface normal there.
func (s *Scene) Interaction(r geom.Ray, hit Intersection) Interaction {
	p := r.At(hit.Distance)
	return Interaction{
		Point:  p,
		Normal: s.Shapes[hit.Index].Shape.SurfaceNormal(p),
	}
}

// LightReflected sums the Lambertian contribution of every light at the hit.
func (s *Scene) LightReflected(r geom.Ray, hit Intersection) rgb.Color {
	it := s.Interaction(r, hit)
	surf := s.Shapes[hit.Index].Surface
	reflected := surf.Albedo / math.Pi

	c := rgb.Black()
	for i := range s.Lights {
		power := s.Lights[i].Power(it, s)
		c = c.Add(surf.Color.Scale(power * reflected))
	}
	return c
}

// Color is the shaded color seen along r, or the background on a miss.
func (s *Scene) Color(r geom.Ray) rgb.Color {
	hit, ok := s.Trace(r)
	if !ok {
		return s.Background
	}
	return s.LightReflected(r, hit)
}

// occluder casts a shadow ray from just above the surface toward the light.
func (s *Scene) occluder(toLight mathutil.Vec3, it Interaction) (Intersection, bool) {
	shadow := geom.Ray{
		Origin:    it.Point.Add(it.Normal.Scale(s.ShadowBias)),
		Direction: toLight,
	}
	return s.Trace(shadow)
}
