package scene

import (
	"fmt"
	"math"

	"whitted-tracer/internal/geom"
	"whitted-tracer/internal/mathutil"
)

// Camera sits at the world origin looking down -z with the image plane one
// unit in front of it. The scale factors are fixed per scene.
type Camera struct {
	width, height float64
	aspect        float64
	fovAdjustment float64
}

// NewCamera derives the camera for s. It panics when s.Width < s.Height;
// callers are expected to have run Validate.
func NewCamera(s *Scene) Camera {
	if s.Width < s.Height {
		panic(fmt.Sprintf("scene: camera needs width >= height, got %dx%d", s.Width, s.Height))
	}
	return Camera{
		width:         float64(s.Width),
		height:        float64(s.Height),
		aspect:        float64(s.Width) / float64(s.Height),
		fovAdjustment: math.Tan(mathutil.Deg2Rad(s.FOV) / 2),
	}
}

// PrimeRay returns the ray through the center of pixel (x, y). Row 0 is
// the top of the image.
func (c Camera) PrimeRay(x, y int) geom.Ray {
	px, py := float64(x)+0.5, float64(y)+0.5
	sensorX := ((px/c.width)*2 - 1) * c.aspect * c.fovAdjustment
	sensorY := (1 - (py/c.height)*2) * c.fovAdjustment
	return geom.Ray{
		Direction: mathutil.Vec3{sensorX, sensorY, -1}.Normalize(),
	}
}

// NewPrime is PrimeRay for a one-off pixel.
func NewPrime(x, y int, s *Scene) geom.Ray {
	return NewCamera(s).PrimeRay(x, y)
}
