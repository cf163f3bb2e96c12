package renderer

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// CameraConfig describes a thin-lens camera
type CameraConfig struct {
	LookFrom      core.Vec3 // Lens center
	LookAt        core.Vec3 // Point the camera looks at
	Up            core.Vec3 // World up; zero means +Y
	VFov          float64   // Vertical field of view in radians
	Aperture      float64   // Lens diameter; zero disables depth of field
	FocusDistance float64   // Distance to the plane in focus; zero means |LookAt - LookFrom|
}

// Camera generates rays for rendering
type Camera struct {
	origin     core.Vec3
	forward    core.Vec3 // unit view direction
	right      core.Vec3 // unit right
	up         core.Vec3 // unit up
	horizontal core.Vec3 // viewport offset per unit of normalized x
	vertical   core.Vec3 // viewport offset per unit of normalized y
	center     core.Vec3 // viewport center on the focus plane
	lensRadius float64
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	worldUp := config.Up
	if worldUp.IsNearZero() {
		worldUp = core.NewVec3(0, 1, 0)
	}

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.LookAt.Subtract(config.LookFrom).Length()
	}

	// Orthonormal camera basis
	forward := config.LookAt.Subtract(config.LookFrom).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	// Normalized y spans [-1, 1], so half the viewport height is tan(fov/2) at unit distance
	halfHeight := math.Tan(config.VFov / 2)

	return &Camera{
		origin:     config.LookFrom,
		forward:    forward,
		right:      right,
		up:         up,
		horizontal: right.Multiply(halfHeight * focusDistance),
		vertical:   up.Multiply(halfHeight * focusDistance),
		center:     config.LookFrom.Add(forward.Multiply(focusDistance)),
		lensRadius: config.Aperture / 2,
	}
}

// GetRay generates a ray through normalized screen coordinates.
// y runs from -1 (bottom) to 1 (top); x covers [-aspect, aspect].
// The origin is jittered over the lens so only the focus plane is sharp.
func (c *Camera) GetRay(x, y float64, sampler core.Sampler) core.Ray {
	rd := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
	offset := c.right.Multiply(rd.X).Add(c.up.Multiply(rd.Y))

	origin := c.origin.Add(offset)
	target := c.center.Add(c.horizontal.Multiply(x)).Add(c.vertical.Multiply(y))

	return core.NewRay(origin, target.Subtract(origin))
}

// GetCameraForward returns the unit view direction
func (c *Camera) GetCameraForward() core.Vec3 {
	return c.forward
}
