package core

import (
	"math/rand"
)

// Sampler provides the random draws used by the camera, materials and renderer.
// Each render task owns its own Sampler; implementations need not be goroutine safe.
type Sampler interface {
	Get1D() float64    // uniform in [0, 1)
	Get2D() Vec2       // two uniform values in [0, 1)
	GetNormal3D() Vec3 // three independent standard normal values
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler with its own generator seeded by seed
func NewSeededSampler(seed int64) *RandomSampler {
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Get2D returns two random float64 values in [0, 1)
func (r *RandomSampler) Get2D() Vec2 {
	return NewVec2(r.random.Float64(), r.random.Float64())
}

// GetNormal3D returns three standard normal values
func (r *RandomSampler) GetNormal3D() Vec3 {
	return NewVec3(r.random.NormFloat64(), r.random.NormFloat64(), r.random.NormFloat64())
}

// RandomUnitVector returns a direction uniformly distributed on the unit sphere.
// A normalized isotropic Gaussian sample is uniform over directions.
func RandomUnitVector(sampler Sampler) Vec3 {
	for {
		p := sampler.GetNormal3D()
		if !p.IsNearZero() {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk in the XY plane (for depth of field)
func RandomInUnitDisk(sampler Sampler) Vec3 {
	for {
		// Generate random point in [-1,1] x [-1,1] square
		s := sampler.Get2D()
		p := NewVec3(2*s.X-1, 2*s.Y-1, 0)
		// Accept if inside unit disk
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
}
