package renderer

import (
	"image"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Tile is a rectangular block of pixels rendered as one task
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
	Seed   int64           // Seed for the tile's own random generator
}

// NewTile creates a new tile with the specified bounds
func NewTile(id int, bounds image.Rectangle, renderSeed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Seed:   renderSeed*1_000_003 + int64(id),
	}
}

// Sampler returns a fresh generator so the tile renders identically on any worker
func (t *Tile) Sampler() core.Sampler {
	return core.NewSeededSampler(t.Seed)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int, renderSeed int64) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, NewTile(tileID, image.Rect(x0, y0, x1, y1), renderSeed))
			tileID++
		}
	}

	return tiles
}
