package scene

import (
	"fmt"
	"math"

	"whitted-tracer/internal/mathutil"
)

// LightKind tags the variant stored in a Light.
type LightKind uint8

const (
	// Directional light arrives from infinitely far away along Direction.
	Directional LightKind = iota
	// Spherical is a point light with inverse-square falloff.
	Spherical
)

func (k LightKind) String() string {
	switch k {
	case Directional:
		return "directional"
	case Spherical:
		return "spherical"
	}
	return fmt.Sprintf("LightKind(%d)", uint8(k))
}

// Light is a closed variant. Direction (unit) is used by Directional
// lights and Point by Spherical ones.
type Light struct {
	Kind      LightKind
	Direction mathutil.Vec3
	Point     mathutil.Vec3
	Intensity float64
}

// NewDirectional returns a directional light; direction is normalized.
func NewDirectional(direction mathutil.Vec3, intensity float64) Light {
	return Light{Kind: Directional, Direction: direction.Normalize(), Intensity: intensity}
}

// NewSpherical returns a point light at p.
func NewSpherical(p mathutil.Vec3, intensity float64) Light {
	return Light{Kind: Spherical, Point: p, Intensity: intensity}
}

// Power is the incident light at it after the shadow test, already
// weighted by the cosine term.
func (l Light) Power(it Interaction, s *Scene) float64 {
	switch l.Kind {
	case Directional:
		toLight := l.Direction.Neg()
		if _, blocked := s.occluder(toLight, it); blocked {
			return 0
		}
		return math.Max(it.Normal.Dot(toLight), 0) * l.Intensity

	case Spherical:
		toLight := l.Point.Sub(it.Point)
		distSq := toLight.LenSq()
		if distSq == 0 {
			return 0
		}
		dir := toLight.Normalize()
		// Anything past the light does not shadow it.
		if hit, ok := s.occluder(dir, it); ok && hit.Distance*hit.Distance < distSq {
			return 0
		}
		intensity := l.Intensity / (4 * math.Pi * distSq)
		return math.Max(it.Normal.Dot(dir), 0) * intensity
	}
	panic(fmt.Sprintf("scene: unknown light kind %v", l.Kind))
}
