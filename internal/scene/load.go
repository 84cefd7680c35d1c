package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"whitted-tracer/internal/geom"
	"whitted-tracer/internal/mathutil"
	"whitted-tracer/internal/rgb"
)

// sceneFile mirrors the YAML scene description. Colors are display-space
// components in [0,1].
type sceneFile struct {
	Width      int           `yaml:"width"`
	Height     int           `yaml:"height"`
	FOV        float64       `yaml:"fov"`
	ShadowBias *float64      `yaml:"shadow_bias"`
	Background mathutil.Vec3 `yaml:"background"`
	Lights     []lightFile   `yaml:"lights"`
	Shapes     []shapeFile   `yaml:"shapes"`
}

type lightFile struct {
	Directional *struct {
		Direction mathutil.Vec3 `yaml:"direction"`
		Intensity float64       `yaml:"intensity"`
	} `yaml:"directional"`
	Spherical *struct {
		Point     mathutil.Vec3 `yaml:"point"`
		Intensity float64       `yaml:"intensity"`
	} `yaml:"spherical"`
}

type shapeFile struct {
	Sphere *struct {
		Center mathutil.Vec3 `yaml:"center"`
		Radius float64       `yaml:"radius"`
	} `yaml:"sphere"`
	Plane *struct {
		Origin mathutil.Vec3 `yaml:"origin"`
		Normal mathutil.Vec3 `yaml:"normal"`
	} `yaml:"plane"`
	Color  mathutil.Vec3 `yaml:"color"`
	Albedo *float64      `yaml:"albedo"`
}

// Load reads and validates a YAML scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a YAML scene description. Direction vectors are normalized
// and the result is validated.
func Parse(data []byte) (*Scene, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f sceneFile
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty scene description")
		}
		return nil, fmt.Errorf("decode: %w", err)
	}

	s := &Scene{
		Width:      f.Width,
		Height:     f.Height,
		FOV:        f.FOV,
		ShadowBias: DefaultShadowBias,
		Background: displayColor(f.Background),
		Lights:     make([]Light, 0, len(f.Lights)),
		Shapes:     make([]Primitive, 0, len(f.Shapes)),
	}
	if f.ShadowBias != nil {
		s.ShadowBias = *f.ShadowBias
	}

	for i, lf := range f.Lights {
		switch {
		case lf.Directional != nil && lf.Spherical == nil:
			if lf.Directional.Direction.IsZero() {
				return nil, fmt.Errorf("light %d: direction: %w", i, ErrNormal)
			}
			s.Lights = append(s.Lights, NewDirectional(lf.Directional.Direction, lf.Directional.Intensity))
		case lf.Spherical != nil && lf.Directional == nil:
			s.Lights = append(s.Lights, NewSpherical(lf.Spherical.Point, lf.Spherical.Intensity))
		default:
			return nil, fmt.Errorf("light %d: need exactly one of directional, spherical", i)
		}
	}

	for i, sf := range f.Shapes {
		var shape geom.Shape
		switch {
		case sf.Sphere != nil && sf.Plane == nil:
			shape = geom.NewSphere(sf.Sphere.Center, sf.Sphere.Radius)
		case sf.Plane != nil && sf.Sphere == nil:
			if sf.Plane.Normal.IsZero() {
				return nil, fmt.Errorf("shape %d: plane normal: %w", i, ErrNormal)
			}
			shape = geom.NewPlane(sf.Plane.Origin, sf.Plane.Normal.Normalize())
		default:
			return nil, fmt.Errorf("shape %d: need exactly one of sphere, plane", i)
		}
		albedo := 1.0
		if sf.Albedo != nil {
			albedo = *sf.Albedo
		}
		s.Shapes = append(s.Shapes, Primitive{
			Shape:   shape,
			Surface: Surface{Color: displayColor(sf.Color), Albedo: albedo},
		})
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func displayColor(c mathutil.Vec3) rgb.Color {
	return rgb.RGB(c[0], c[1], c[2])
}
