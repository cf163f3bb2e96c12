package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Diffuse represents a Lambertian surface
type Diffuse struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewDiffuse creates a new diffuse material
func NewDiffuse(albedo core.Vec3) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

// Scatter implements the Material interface. Diffuse surfaces never absorb.
func (d *Diffuse) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// normal + unit vector is cosine-distributed around the normal
	direction := hit.Normal.Add(core.RandomUnitVector(sampler))

	// Opposite unit vector would give a degenerate ray
	if direction.IsNearZero() {
		direction = hit.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: d.Albedo,
	}, true
}
