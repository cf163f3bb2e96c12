package renderer

import (
	"context"
	"errors"
	"image"
	"testing"
)

// silentLogger discards all output
type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

func TestNewTileGrid_CoversImageOnce(t *testing.T) {
	width, height := 37, 21
	tiles := NewTileGrid(width, height, 8, 42)

	if len(tiles) != 5*3 {
		t.Errorf("Expected 15 tiles, got %d", len(tiles))
	}

	covered := make([]int, width*height)
	seeds := make(map[int64]bool)
	for _, tile := range tiles {
		if !tile.Bounds.In(image.Rect(0, 0, width, height)) {
			t.Errorf("Tile %d bounds %v exceed image", tile.ID, tile.Bounds)
		}
		seeds[tile.Seed] = true
		for j := tile.Bounds.Min.Y; j < tile.Bounds.Max.Y; j++ {
			for i := tile.Bounds.Min.X; i < tile.Bounds.Max.X; i++ {
				covered[j*width+i]++
			}
		}
	}

	for idx, count := range covered {
		if count != 1 {
			t.Fatalf("Pixel %d covered %d times", idx, count)
		}
	}
	if len(seeds) != len(tiles) {
		t.Errorf("Expected distinct seeds per tile, got %d for %d tiles", len(seeds), len(tiles))
	}
}

func TestRaytracer_DeterministicAcrossWorkerCounts(t *testing.T) {
	opts := createTestOptions(t, 24, 16, 4, 8)

	render := func(workers int) *Framebuffer {
		rt, err := NewRaytracer(opts, ParallelConfig{TileSize: 5, NumWorkers: workers, Seed: 7}, silentLogger{})
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		fb, stats, err := rt.Render(context.Background())
		if err != nil {
			t.Fatalf("Unexpected render error: %v", err)
		}
		if stats.TotalPixels != 24*16 {
			t.Errorf("Expected %d pixels, got %d", 24*16, stats.TotalPixels)
		}
		if stats.TotalSamples != 24*16*4 {
			t.Errorf("Expected %d samples, got %d", 24*16*4, stats.TotalSamples)
		}
		return fb
	}

	single := render(1)
	parallel := render(4)
	for idx := range single.Pixels {
		if single.Pixels[idx] != parallel.Pixels[idx] {
			t.Fatalf("Pixel %d differs: %v vs %v", idx, single.Pixels[idx], parallel.Pixels[idx])
		}
	}
}

func TestRaytracer_MatchesRenderPixel(t *testing.T) {
	opts := createTestOptions(t, 8, 8, 2, 4)
	rt, err := NewRaytracer(opts, ParallelConfig{TileSize: 8, NumWorkers: 2, Seed: 1}, silentLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	fb, _, err := rt.Render(context.Background())
	if err != nil {
		t.Fatalf("Unexpected render error: %v", err)
	}

	// A single tile renders pixels in row-major order from the tile's sampler
	tile := NewTileGrid(8, 8, 8, 1)[0]
	sampler := tile.Sampler()
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			if expected := RenderPixel(opts, i, j, sampler); fb.At(i, j) != expected {
				t.Fatalf("Pixel (%d, %d): expected %v, got %v", i, j, expected, fb.At(i, j))
			}
		}
	}
}

func TestRaytracer_Cancelled(t *testing.T) {
	opts := createTestOptions(t, 32, 32, 4, 4)
	rt, err := NewRaytracer(opts, ParallelConfig{TileSize: 8, NumWorkers: 2}, silentLogger{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fb, stats, err := rt.Render(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if fb == nil {
		t.Fatal("Expected a framebuffer even when cancelled")
	}
	if stats.TotalPixels != 0 {
		t.Errorf("Expected no pixels rendered after cancellation, got %d", stats.TotalPixels)
	}
}

func TestNewRaytracer_Validation(t *testing.T) {
	if _, err := NewRaytracer(nil, DefaultParallelConfig(), silentLogger{}); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("Expected ErrEmptyScene for nil options, got %v", err)
	}

	opts := createTestOptions(t, 8, 8, 1, 1)
	bad := *opts
	bad.Sampling.SamplesPerPixel = 0
	if _, err := NewRaytracer(&bad, DefaultParallelConfig(), silentLogger{}); err == nil {
		t.Error("Expected error for zero samples per pixel")
	}

	bad = *opts
	bad.Width = 0
	if _, err := NewRaytracer(&bad, DefaultParallelConfig(), silentLogger{}); err == nil {
		t.Error("Expected error for zero width")
	}
}

func TestQuantize(t *testing.T) {
	tests := []struct {
		input    float64
		expected uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 128},
		{0.2, 51},
		{-0.3, 0},
		{1.7, 255},
	}

	for _, tt := range tests {
		if got := Quantize(tt.input); got != tt.expected {
			t.Errorf("Quantize(%f) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}

func TestFramebuffer_ToImage(t *testing.T) {
	fb := NewFramebuffer(3, 2)
	fb.Row(0)[0].X = 1
	fb.Row(1)[1].Z = 0.5

	img := fb.ToImage()
	if img.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	if c := img.RGBAAt(0, 0); c.R != 255 || c.G != 0 || c.B != 0 || c.A != 255 {
		t.Errorf("Unexpected color at (0,0): %v", c)
	}
	if c := img.RGBAAt(1, 1); c.B != 128 || c.R != 0 {
		t.Errorf("Unexpected color at (1,1): %v", c)
	}
}
