package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of samples taken
	SamplesPerPixel int           // Samples taken for every pixel
	Tiles           int           // Number of tiles the image was split into
	Workers         int           // Number of parallel workers used
	Duration        time.Duration // Wall-clock render time
}

// add merges the counts from one finished tile
func (s *RenderStats) add(tile TileResult) {
	s.TotalPixels += tile.Pixels
	s.TotalSamples += tile.Samples
}
