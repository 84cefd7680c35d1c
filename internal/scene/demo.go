package scene

import (
	"whitted-tracer/internal/geom"
	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/rgb"
)

// Demo returns the built-in example scene: three spheres over a ground
// plane, lit by two directional lights and one point light.
func Demo() *Scene {
	return &Scene{
		Width:      800,
		Height:     600,
		FOV:        90,
		Background: rgb.RGB(0, 0.4, 0.8),
		ShadowBias: DefaultShadowBias,
		Lights: []Light{
			NewDirectional(mathutil.Vec3{-0.2, -0.9, -0.8}, 1),
			NewDirectional(mathutil.Vec3{0.2, -0.9, -0.8}, 1),
			NewSpherical(mathutil.Vec3{-0.1, -1, 0}, 200),
		},
		Shapes: []Primitive{
			{
				Shape:   geom.NewSphere(mathutil.Vec3{-1.7, -0.7, -7}, 1),
				Surface: Surface{Color: rgb.RGB(1, 0.4, 0.4), Albedo: 1},
			},
			{
				Shape:   geom.NewSphere(mathutil.Vec3{0, 0, -5}, 1),
				Surface: Surface{Color: rgb.RGB(0.4, 1, 0.4), Albedo: 1},
			},
			{
				Shape:   geom.NewSphere(mathutil.Vec3{1, 1, -4}, 1.2),
				Surface: Surface{Color: rgb.RGB(0.4, 0.4, 1), Albedo: 0.9},
			},
			{
				Shape:   geom.NewPlane(mathutil.Vec3{0, -6, 0}, mathutil.Vec3{0, 1, 0}),
				Surface: Surface{Color: rgb.RGB(0.5, 0.5, 0.5), Albedo: 1},
			},
		},
	}
}
