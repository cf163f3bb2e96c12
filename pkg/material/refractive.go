package material

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Refractive represents a transparent material like glass that can both reflect and refract
type Refractive struct {
	Ratio float64 // Index of refraction of the inside relative to the outside (1.5 for glass in air)
}

// NewRefractive creates a new refractive material
func NewRefractive(ratio float64) *Refractive {
	return &Refractive{Ratio: ratio}
}

// Scatter implements the Material interface for dielectric scattering
func (d *Refractive) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	refractionRatio := d.Ratio
	if hit.FrontFace {
		refractionRatio = 1.0 / d.Ratio // entering the material
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction core.Vec3
	if ShouldReflect(cosTheta, sinTheta, refractionRatio, sampler.Get1D()) {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = Refract(unitDirection, hit.Normal, refractionRatio)
	}

	// Clear glass absorbs nothing
	return ScatterResult{
		Scattered:   core.NewRay(hit.Point, direction),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}

// ShouldReflect decides between reflection and refraction for a uniform draw u in [0, 1).
// Total internal reflection always reflects; otherwise reflection happens with
// the Schlick reflectance as probability.
func ShouldReflect(cosTheta, sinTheta, refractionRatio, u float64) bool {
	cannotRefract := refractionRatio*sinTheta > 1.0
	return cannotRefract || Reflectance(cosTheta, refractionRatio) > u
}

// Refract bends the unit vector uv through a surface with unit normal n using Snell's law
func Refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflectance using Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
