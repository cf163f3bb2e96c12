package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// Framebuffer holds gamma-corrected pixel colors in row-major order
type Framebuffer struct {
	Width, Height int
	Pixels        []core.Vec3
}

// NewFramebuffer creates a black framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Row returns the slice backing row j. Distinct rows never alias.
func (fb *Framebuffer) Row(j int) []core.Vec3 {
	return fb.Pixels[j*fb.Width : (j+1)*fb.Width]
}

// At returns the color of pixel (i, j)
func (fb *Framebuffer) At(i, j int) core.Vec3 {
	return fb.Pixels[j*fb.Width+i]
}

// Quantize converts a [0,1] channel to 8 bits: clamp(round(255*c), 0, 255)
func Quantize(c float64) uint8 {
	v := math.Round(255 * c)
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// ToImage converts the framebuffer to an 8-bit RGBA image
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for j := 0; j < fb.Height; j++ {
		for i, c := range fb.Row(j) {
			img.SetRGBA(i, j, color.RGBA{
				R: Quantize(c.X),
				G: Quantize(c.Y),
				B: Quantize(c.Z),
				A: 255,
			})
		}
	}
	return img
}
