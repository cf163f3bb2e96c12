package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-sphere-tracer/pkg/config"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

func main() {
	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := parseConfig(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatalf("Error: %v", err)
	}
}

// parseConfig loads the optional config file, then applies any flags given explicitly
func parseConfig(args []string) (*config.Config, error) {
	defaults := config.DefaultConfig()

	fs := flag.NewFlagSet("sphere-tracer", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML config file (flags override its values)")
	sceneType := fs.String("scene", defaults.Scene, "Scene type: "+strings.Join(scene.Names(), ", "))
	output := fs.String("out", defaults.Output, "Output PNG path")
	width := fs.Int("width", defaults.Width, "Image width in pixels")
	height := fs.Int("height", defaults.Height, "Image height in pixels")
	spp := fs.Int("spp", defaults.SamplesPerPixel, "Samples per pixel")
	depth := fs.Int("depth", defaults.MaxDepth, "Maximum ray bounce depth")
	workers := fs.Int("workers", defaults.Workers, "Number of parallel workers (0 = CPU count)")
	seed := fs.Int64("seed", defaults.Seed, "Random seed for scene layout and sampling")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaults
	if *configPath != "" {
		loaded, err := config.LoadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "scene":
			cfg.Scene = *sceneType
		case "out":
			cfg.Output = *output
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "spp":
			cfg.SamplesPerPixel = *spp
		case "depth":
			cfg.MaxDepth = *depth
		case "workers":
			cfg.Workers = *workers
		case "seed":
			cfg.Seed = *seed
		}
	})

	return cfg, cfg.Validate()
}

// createScene builds a scene by name
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	return scene.New(sceneType, seed)
}

// run renders the configured scene and writes it as a PNG.
// A cancelled render still writes the pixels finished so far.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger) error {
	selectedScene, err := createScene(cfg.Scene, cfg.Seed)
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene with %d surfaces", selectedScene.Name, selectedScene.GetPrimitiveCount())

	options, err := renderer.NewRenderOptions(cfg.Width, cfg.Height, cfg.Sampling(), selectedScene.Camera(), selectedScene.Surfaces)
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(options, cfg.Parallel(), logger)
	if err != nil {
		return err
	}

	framebuffer, stats, renderErr := raytracer.Render(ctx)
	logger.Printf("Rendered %d pixels (%d samples) in %v", stats.TotalPixels, stats.TotalSamples, stats.Duration)

	if err := writePNG(cfg.Output, framebuffer); err != nil {
		return err
	}
	logger.Printf("Render saved as %s", cfg.Output)

	return renderErr
}

// writePNG encodes the framebuffer to path, creating parent directories as needed
func writePNG(path string, framebuffer *renderer.Framebuffer) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("error creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, framebuffer.ToImage()); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	return file.Close()
}
