package renderer

import (
	"errors"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// ErrEmptyScene is returned when there are no surfaces to render
var ErrEmptyScene = errors.New("renderer: scene has no surfaces")

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		MaxDepth:        16,
	}
}

// RenderOptions bundles everything needed to compute one pixel.
// It is shared read-only by all workers.
type RenderOptions struct {
	Width, Height int
	AspectRatio   float64
	Sampling      SamplingConfig
	Camera        *Camera
	World         geometry.Surface // usually the BVH root
}

// NewRenderOptions builds the BVH over surfaces and bundles it with the camera
func NewRenderOptions(width, height int, sampling SamplingConfig, camera *Camera, surfaces []geometry.Surface) (*RenderOptions, error) {
	bvh := geometry.NewBVH(surfaces)
	if bvh == nil {
		return nil, ErrEmptyScene
	}

	return &RenderOptions{
		Width:       width,
		Height:      height,
		AspectRatio: float64(width) / float64(height),
		Sampling:    sampling,
		Camera:      camera,
		World:       bvh,
	}, nil
}

// NormalizedCoordinates maps a (sub)pixel position to camera screen space:
// x in [-aspect, aspect] left to right, y in [-1, 1] bottom to top.
func (opts *RenderOptions) NormalizedCoordinates(sampleX, sampleY float64) (float64, float64) {
	x := (2*sampleX/float64(opts.Width) - 1) * opts.AspectRatio
	y := -(2*sampleY/float64(opts.Height) - 1)
	return x, y
}

// RenderPixel estimates the color of pixel (i, j) by averaging jittered samples.
// The result is gamma corrected (square root) and ready for quantization.
func RenderPixel(opts *RenderOptions, i, j int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}

	for sample := 0; sample < opts.Sampling.SamplesPerPixel; sample++ {
		jitter := sampler.Get2D()
		x, y := opts.NormalizedCoordinates(float64(i)+jitter.X, float64(j)+jitter.Y)

		ray := opts.Camera.GetRay(x, y, sampler)
		colorAccum = colorAccum.Add(integrator.RayColor(ray, opts.World, sampler, opts.Sampling.MaxDepth))
	}

	scale := 1.0 / float64(opts.Sampling.SamplesPerPixel)
	return colorAccum.Map(func(c float64) float64 {
		return math.Sqrt(c * scale)
	})
}
