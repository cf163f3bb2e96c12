package scene

import (
	"math"
	"math/rand"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewDefaultScene creates a field of small random spheres around three large ones.
// Placement and materials come from a generator seeded with seed.
func NewDefaultScene(seed int64) *Scene {
	random := rand.New(rand.NewSource(seed))

	s := &Scene{
		Name: "default",
		CameraConfig: renderer.CameraConfig{
			LookFrom:      core.NewVec3(13, 2, 3),
			LookAt:        core.NewVec3(0, 0, 0),
			Up:            core.NewVec3(0, 1, 0),
			VFov:          math.Pi / 6,
			Aperture:      0.2,
			FocusDistance: 10,
		},
	}

	ground := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	s.Surfaces = append(s.Surfaces, geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	// Keep the small spheres clear of the big reflective one
	clearing := core.NewVec3(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)

			if center.Subtract(clearing).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch {
			case chooseMat < 0.8:
				c1 := randomColor(random, 0, 1)
				c2 := randomColor(random, 0, 1)
				mat = material.NewDiffuse(c1.MultiplyVec(c2))
			case chooseMat < 0.95:
				albedo := randomColor(random, 0.5, 1)
				fuzz := 0.5 * random.Float64()
				mat = material.NewReflective(albedo, fuzz)
			default:
				mat = material.NewRefractive(1.5)
			}

			s.Surfaces = append(s.Surfaces, geometry.NewSphere(center, 0.2, mat))
		}
	}

	s.Surfaces = append(s.Surfaces,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewRefractive(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, material.NewDiffuse(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, material.NewReflective(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return s
}

// randomColor draws each channel uniformly from [lo, hi)
func randomColor(random *rand.Rand, lo, hi float64) core.Vec3 {
	span := hi - lo
	return core.NewVec3(
		lo+span*random.Float64(),
		lo+span*random.Float64(),
		lo+span*random.Float64(),
	)
}
