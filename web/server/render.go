package server

import (
	"bytes"
	"fmt"
	"image/png"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string // Scene name, see /api/scenes
	Width           int    // Image width
	Height          int    // Image height
	SamplesPerPixel int    // Rays per pixel
	MaxDepth        int    // Maximum bounce depth
	Seed            int64  // Seed for scene layout and sampling
}

// handleRender renders one image and responds with it as a PNG.
// The render stops early if the client goes away.
func (s *Server) handleRender(c echo.Context) error {
	req, err := s.parseRenderRequest(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": fmt.Sprintf("Invalid request: %v", err)})
	}

	sceneObj, err := scene.New(req.Scene, req.Seed)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}

	options, err := renderer.NewRenderOptions(req.Width, req.Height, renderer.SamplingConfig{
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
	}, sceneObj.Camera(), sceneObj.Surfaces)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	renderID := fmt.Sprintf("render-%d", s.renders.Add(1))
	logger := NewRenderLogger(renderID, s.logger)
	logger.Printf("%s scene %dx%d, %d spp, seed %d", req.Scene, req.Width, req.Height, req.SamplesPerPixel, req.Seed)

	raytracer, err := renderer.NewRaytracer(options, renderer.ParallelConfig{
		TileSize:   s.defaults.TileSize,
		NumWorkers: s.defaults.Workers,
		Seed:       req.Seed,
	}, logger)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	framebuffer, stats, err := raytracer.Render(c.Request().Context())
	if err != nil {
		// Client disconnected, nobody is left to answer
		return err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, framebuffer.ToImage()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to encode image"})
	}

	header := c.Response().Header()
	header.Set("X-Render-Id", renderID)
	header.Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	header.Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}

// parseRenderRequest parses query parameters, falling back to the server defaults
func (s *Server) parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: s.defaults.Scene}
	if sceneName := values.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", min(s.defaults.Width, 2000), 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(values, "height", min(s.defaults.Height, 2000), 1, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(values, "spp", s.defaults.SamplesPerPixel, 1, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "depth", s.defaults.MaxDepth, 1, 1000); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(values, "seed", s.defaults.Seed); err != nil {
		return nil, err
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseInt64Param parses an unbounded 64-bit integer parameter
func parseInt64Param(values url.Values, key string, defaultValue int64) (int64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
