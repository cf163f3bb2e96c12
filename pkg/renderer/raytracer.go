package renderer

import (
	"context"
	"fmt"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// ParallelConfig controls how the image is split across workers
type ParallelConfig struct {
	TileSize   int   // Size of each square tile in pixels
	NumWorkers int   // Number of parallel workers (0 = use CPU count)
	Seed       int64 // Base seed; each tile derives its own
}

// DefaultParallelConfig returns sensible default values
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		TileSize:   16,
		NumWorkers: 0,
		Seed:       42,
	}
}

// Raytracer renders a whole image with a pool of workers
type Raytracer struct {
	options *RenderOptions
	config  ParallelConfig
	logger  core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger falls back to stdout.
func NewRaytracer(options *RenderOptions, config ParallelConfig, logger core.Logger) (*Raytracer, error) {
	if options == nil || options.World == nil {
		return nil, ErrEmptyScene
	}
	if options.Width <= 0 || options.Height <= 0 {
		return nil, fmt.Errorf("renderer: invalid image size %dx%d", options.Width, options.Height)
	}
	if options.Sampling.SamplesPerPixel <= 0 {
		return nil, fmt.Errorf("renderer: samples per pixel must be positive, got %d", options.Sampling.SamplesPerPixel)
	}
	if config.TileSize <= 0 {
		config.TileSize = DefaultParallelConfig().TileSize
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &Raytracer{options: options, config: config, logger: logger}, nil
}

// Render renders every pixel and returns the filled framebuffer.
// On cancellation it returns ctx.Err() along with the partially rendered buffer.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	startTime := time.Now()
	framebuffer := NewFramebuffer(rt.options.Width, rt.options.Height)
	tiles := NewTileGrid(rt.options.Width, rt.options.Height, rt.config.TileSize, rt.config.Seed)

	pool := NewWorkerPool(rt.options, framebuffer, rt.config.NumWorkers, len(tiles))
	stats := RenderStats{
		SamplesPerPixel: rt.options.Sampling.SamplesPerPixel,
		Tiles:           len(tiles),
		Workers:         pool.GetNumWorkers(),
	}

	if bvh, ok := rt.options.World.(*geometry.BVH); ok {
		bvhStats := bvh.Stats()
		rt.logger.Printf("BVH: %d surfaces, %d nodes, %d leaves, depth %d\n",
			bvhStats.TotalSurfaces, bvhStats.TotalNodes, bvhStats.LeafNodes, bvhStats.MaxDepth)
	}
	rt.logger.Printf("Rendering %dx%d at %d samples/pixel: %d tiles on %d workers...\n",
		rt.options.Width, rt.options.Height, stats.SamplesPerPixel, stats.Tiles, stats.Workers)

	pool.Start(ctx)
	for _, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile})
	}

	var renderErr error
	for range tiles {
		result, _ := pool.GetResult()
		if result.Error != nil && renderErr == nil {
			renderErr = result.Error
		}
		stats.add(result)
	}
	pool.Stop()

	stats.Duration = time.Since(startTime)
	if renderErr != nil {
		rt.logger.Printf("Render cancelled after %v (%d of %d pixels)\n",
			stats.Duration, stats.TotalPixels, rt.options.Width*rt.options.Height)
		return framebuffer, stats, renderErr
	}

	rt.logger.Printf("Render completed in %v\n", stats.Duration)
	return framebuffer, stats, nil
}
