package integrator

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// TMin is the smallest accepted hit distance; it keeps a scattered ray from
// re-hitting the surface it just left.
const TMin = 0.00001

var (
	// SkyHorizon is the background color for rays pointing straight down
	SkyHorizon = core.NewVec3(1.0, 1.0, 1.0)
	// SkyZenith is the background color for rays pointing straight up
	SkyZenith = core.NewVec3(0.5, 0.7, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed bounce budget
type PathTracingIntegrator struct {
	MaxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{MaxDepth: maxDepth}
}

// RayColor implements Integrator using the configured bounce budget
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Surface, sampler core.Sampler) core.Vec3 {
	return RayColor(ray, world, sampler, pt.MaxDepth)
}

// RayColor returns the color for a given ray with at most depth bounces left
func RayColor(ray core.Ray, world geometry.Surface, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, TMin, math.Inf(1))
	if !isHit {
		return BackgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(RayColor(scatter.Scattered, world, sampler, depth-1))
}

// BackgroundGradient returns the sky color seen along the ray direction
func BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*horizon + t*zenith
	return SkyHorizon.Multiply(1.0 - t).Add(SkyZenith.Multiply(t))
}
