package scene

import (
	"whitted-tracer/internal/geom"
	"whitted-tracer/internal/rgb"
)

// ProbeResult describes what a single pixel sees.
type ProbeResult struct {
	X, Y  int
	Ray   geom.Ray
	Hit   bool
	Index int
	Kind  geom.Kind
	Interaction
	Distance float64
	// LightPower holds Power for each light, in scene order.
	LightPower []float64
	Color      rgb.Color
}

// Probe traces the primary ray for pixel (x, y) and records each step of
// shading it.
func (s *Scene) Probe(x, y int) ProbeResult {
	r := NewPrime(x, y, s)
	res := ProbeResult{X: x, Y: y, Ray: r, Index: -1, Color: s.Background}

	hit, ok := s.Trace(r)
	if !ok {
		return res
	}
	res.Hit = true
	res.Index = hit.Index
	res.Kind = s.Shapes[hit.Index].Shape.Kind
	res.Distance = hit.Distance
	res.Interaction = s.Interaction(r, hit)
	res.LightPower = make([]float64, len(s.Lights))
	for i := range s.Lights {
		res.LightPower[i] = s.Lights[i].Power(res.Interaction, s)
	}
	res.Color = s.LightReflected(r, hit)
	return res
}
