package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// createTestOptions renders a gray sphere above a large ground sphere, looking down -z
func createTestOptions(t *testing.T, width, height, samples, depth int) *RenderOptions {
	t.Helper()
	gray := material.NewDiffuse(core.NewVec3(0.5, 0.5, 0.5))
	surfaces := []geometry.Surface{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, gray),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, gray),
	}

	opts, err := NewRenderOptions(width, height, SamplingConfig{SamplesPerPixel: samples, MaxDepth: depth}, straightCamera(0, 0), surfaces)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	return opts
}

func TestNewRenderOptions_EmptyScene(t *testing.T) {
	_, err := NewRenderOptions(10, 10, DefaultSamplingConfig(), straightCamera(0, 0), nil)
	if err != ErrEmptyScene {
		t.Errorf("Expected ErrEmptyScene, got %v", err)
	}
}

func TestNormalizedCoordinates(t *testing.T) {
	opts := &RenderOptions{Width: 200, Height: 100, AspectRatio: 2}

	tests := []struct {
		name    string
		sx, sy  float64
		expX    float64
		expY    float64
	}{
		{"Top left corner", 0, 0, -2, 1},
		{"Bottom right corner", 200, 100, 2, -1},
		{"Center", 100, 50, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := opts.NormalizedCoordinates(tt.sx, tt.sy)
			if math.Abs(x-tt.expX) > 1e-12 || math.Abs(y-tt.expY) > 1e-12 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.expX, tt.expY, x, y)
			}
		})
	}
}

func TestRenderPixel_SkyPixel(t *testing.T) {
	opts := createTestOptions(t, 64, 64, 64, 16)
	sampler := core.NewSeededSampler(3)

	// Top row looks up at 45 degrees, above the small sphere
	color := RenderPixel(opts, 32, 0, sampler)

	x, y := opts.NormalizedCoordinates(32.5, 0.5)
	sky := integrator.BackgroundGradient(core.NewRay(core.Vec3{}, core.NewVec3(x, y, -1))).Map(math.Sqrt)
	if !color.EqualsApprox(sky, 0.01) {
		t.Errorf("Expected sky color %v, got %v", sky, color)
	}
}

func TestRenderPixel_DiffuseSpherePixel(t *testing.T) {
	opts := createTestOptions(t, 64, 64, 256, 16)
	sampler := core.NewSeededSampler(4)

	color := RenderPixel(opts, 32, 32, sampler)
	sky := integrator.BackgroundGradient(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1))).Map(math.Sqrt)

	for _, c := range []float64{color.X, color.Y, color.Z} {
		if c < 0.3 || c > 0.75 {
			t.Fatalf("Expected gray sphere channel in [0.3, 0.75], got %v", color)
		}
	}
	if color.EqualsApprox(sky, 0.05) {
		t.Errorf("Sphere pixel %v should not look like the sky %v", color, sky)
	}
	if color.Z < color.X {
		t.Errorf("Expected sky tint (blue >= red), got %v", color)
	}
}

func TestRenderPixel_ZeroDepthIsBlack(t *testing.T) {
	opts := createTestOptions(t, 16, 16, 8, 0)
	sampler := core.NewSeededSampler(5)

	for _, p := range [][2]int{{0, 0}, {8, 8}, {15, 15}} {
		if color := RenderPixel(opts, p[0], p[1], sampler); color != (core.Vec3{}) {
			t.Errorf("Pixel %v: expected black, got %v", p, color)
		}
	}
}
