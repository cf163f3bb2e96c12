package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	CameraConfig renderer.CameraConfig
	Surfaces     []geometry.Surface // Flat list, the BVH is built from it at render time
}

// Camera builds the scene's camera
func (s *Scene) Camera() *renderer.Camera {
	return renderer.NewCamera(s.CameraConfig)
}

// GetPrimitiveCount returns the total number of surfaces in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Surfaces)
}

// Names lists the built-in scenes accepted by New
func Names() []string {
	return []string{"default", "simple"}
}

// New creates a built-in scene by name. The seed only affects randomized scenes.
func New(name string, seed int64) (*Scene, error) {
	switch name {
	case "default":
		return NewDefaultScene(seed), nil
	case "simple":
		return NewSimpleScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", name)
	}
}
