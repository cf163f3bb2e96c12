package geometry

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// SurfaceList is a flat aggregate tested by linear search
type SurfaceList []Surface

// Hit returns the nearest hit over all surfaces. Each query is bounded by the
// closest hit found so far, so a later hit is always at least as close.
func (l SurfaceList) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, surface := range l {
		if hit, isHit := surface.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of all member boxes, or the zero box when empty
func (l SurfaceList) BoundingBox() core.AABB {
	if len(l) == 0 {
		return core.AABB{}
	}
	box := l[0].BoundingBox()
	for _, surface := range l[1:] {
		box = box.Union(surface.BoundingBox())
	}
	return box
}
