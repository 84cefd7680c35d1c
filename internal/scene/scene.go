// Package scene holds the read-only scene description and everything that
// queries it: primary ray generation, nearest-hit tracing and direct
// lighting with hard shadows.
package scene

import (
	"errors"
	"fmt"

	"whitted-tracer/internal/geom"
	"whitted-tracer/internal/rgb"
)

// DefaultShadowBias is used when a scene file leaves shadow_bias unset.
const DefaultShadowBias = 1e-6

var (
	ErrNoSize     = errors.New("width and height must be positive")
	ErrAspect     = errors.New("width must be >= height")
	ErrFOV        = errors.New("fov must be in (0, 180) degrees")
	ErrRadius     = errors.New("sphere radius must be positive")
	ErrNormal     = errors.New("direction vector must be non-zero")
	ErrIntensity  = errors.New("light intensity must be non-negative")
	ErrShadowBias = errors.New("shadow bias must be positive")
)

// Surface is how a primitive reflects light. Albedo is the diffuse
// reflectance fraction, expected in [0,1].
type Surface struct {
	Color  rgb.Color
	Albedo float64
}

// Primitive pairs a shape with its surface.
type Primitive struct {
	Shape   geom.Shape
	Surface Surface
}

// Scene is built once and then only read. It is safe to share between
// goroutines while rendering.
type Scene struct {
	Width      int
	Height     int
	FOV        float64 // degrees
	Shapes     []Primitive
	Lights     []Light
	ShadowBias float64
	Background rgb.Color
}

// Validate checks the preconditions the tracer relies on.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene: %dx%d: %w", s.Width, s.Height, ErrNoSize)
	}
	if s.Width < s.Height {
		return fmt.Errorf("scene: %dx%d: %w", s.Width, s.Height, ErrAspect)
	}
	if !(s.FOV > 0 && s.FOV < 180) {
		return fmt.Errorf("scene: fov %v: %w", s.FOV, ErrFOV)
	}
	if !(s.ShadowBias > 0) {
		return fmt.Errorf("scene: shadow bias %v: %w", s.ShadowBias, ErrShadowBias)
	}
	for i, p := range s.Shapes {
		switch p.Shape.Kind {
		case geom.KindSphere:
			if !(p.Shape.Sphere.Radius > 0) {
				return fmt.Errorf("scene: shape %d: %w", i, ErrRadius)
			}
		case geom.KindPlane:
			if p.Shape.Plane.Normal.IsZero() {
				return fmt.Errorf("scene: shape %d: plane normal: %w", i, ErrNormal)
			}
		default:
			return fmt.Errorf("scene: shape %d: unknown kind %v", i, p.Shape.Kind)
		}
	}
	for i, l := range s.Lights {
		if l.Intensity < 0 {
			return fmt.Errorf("scene: light %d: %w", i, ErrIntensity)
		}
		if l.Kind == Directional && l.Direction.IsZero() {
			return fmt.Errorf("scene: light %d: direction: %w", i, ErrNormal)
		}
	}
	return nil
}
