package scene

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewSimpleScene creates one gray sphere resting on a large ground sphere,
// viewed straight down the -z axis from the origin.
func NewSimpleScene() *Scene {
	gray := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))

	return &Scene{
		Name: "simple",
		CameraConfig: renderer.CameraConfig{
			LookFrom: core.NewVec3(0, 0, 0),
			LookAt:   core.NewVec3(0, 0, -1),
			Up:       core.NewVec3(0, 1, 0),
			VFov:     math.Pi / 2,
		},
		Surfaces: []geometry.Surface{
			geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
			geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
		},
	}
}
