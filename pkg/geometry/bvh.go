package geometry

import (
	"sort"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/material"
)

// maxTreeDepth bounds subdivision; deeper groups become one flat leaf
const maxTreeDepth = 6

// noChild marks a leaf node
const noChild = -1

// bvhNode is an arena entry. Leaves carry a surface (a single surface or a
// SurfaceList); internal nodes reference their children by index.
type bvhNode struct {
	box         core.AABB
	left, right int
	surface     Surface
}

func (n *bvhNode) isLeaf() bool {
	return n.left == noChild
}

// BVH is a median-split Bounding Volume Hierarchy whose nodes live in one
// contiguous slice. It is immutable once built.
type BVH struct {
	nodes []bvhNode
}

// bvhLeaf pairs a surface with its precomputed bounding box during construction
type bvhLeaf struct {
	surface Surface
	box     core.AABB
}

// NewBVH constructs a BVH from a slice of surfaces.
// It returns nil when there is nothing to build from.
func NewBVH(surfaces []Surface) *BVH {
	if len(surfaces) == 0 {
		return nil
	}

	// Work on our own slice; the caller's order is left untouched
	leaves := make([]bvhLeaf, len(surfaces))
	for i, surface := range surfaces {
		leaves[i] = bvhLeaf{surface: surface, box: surface.BoundingBox()}
	}

	bvh := &BVH{nodes: make([]bvhNode, 0, 2*len(leaves))}
	bvh.build(leaves, 0)
	return bvh
}

// build appends the subtree for leaves and returns the index of its root
func (bvh *BVH) build(leaves []bvhLeaf, depth int) int {
	index := len(bvh.nodes)
	bvh.nodes = append(bvh.nodes, bvhNode{left: noChild, right: noChild})

	if len(leaves) == 1 {
		bvh.nodes[index].box = leaves[0].box
		bvh.nodes[index].surface = leaves[0].surface
		return index
	}

	if depth >= maxTreeDepth {
		list := make(SurfaceList, len(leaves))
		box := leaves[0].box
		for i, leaf := range leaves {
			list[i] = leaf.surface
			box = box.Union(leaf.box)
		}
		bvh.nodes[index].box = box
		bvh.nodes[index].surface = list
		return index
	}

	// Cycle the split axis x, y, z with depth and split at the median
	axis := depth % 3
	sort.Slice(leaves, func(i, j int) bool {
		return leaves[i].box.Min.Axis(axis) < leaves[j].box.Min.Axis(axis)
	})
	mid := len(leaves) / 2

	left := bvh.build(leaves[:mid], depth+1)
	right := bvh.build(leaves[mid:], depth+1)

	node := &bvh.nodes[index]
	node.left = left
	node.right = right
	node.box = bvh.nodes[left].box.Union(bvh.nodes[right].box)
	return index
}

// Hit tests if a ray intersects any surface in the BVH
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	if bvh == nil || len(bvh.nodes) == 0 {
		return nil, false
	}
	return bvh.hitNode(0, ray, tMin, tMax)
}

// hitNode recursively tests ray intersection with BVH nodes
func (bvh *BVH) hitNode(index int, ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	node := &bvh.nodes[index]

	// A box miss prunes the whole subtree
	if !node.box.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.isLeaf() {
		return node.surface.Hit(ray, tMin, tMax)
	}

	leftHit, hitLeft := bvh.hitNode(node.left, ray, tMin, tMax)
	closestSoFar := tMax
	if hitLeft {
		closestSoFar = leftHit.T
	}

	// The right query is bounded by the left hit, so any right hit is closer
	if rightHit, hitRight := bvh.hitNode(node.right, ray, tMin, closestSoFar); hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox implements the Surface interface - returns the overall bounding box of the BVH
func (bvh *BVH) BoundingBox() core.AABB {
	if bvh == nil || len(bvh.nodes) == 0 {
		return core.AABB{}
	}
	return bvh.nodes[0].box
}

// BVHStats contains statistics about the BVH structure
type BVHStats struct {
	TotalNodes    int
	LeafNodes     int
	MaxDepth      int
	TotalSurfaces int
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	stats := BVHStats{}
	if bvh == nil || len(bvh.nodes) == 0 {
		return stats
	}
	bvh.collectStats(0, 0, &stats)
	return stats
}

// collectStats recursively collects statistics about the BVH
func (bvh *BVH) collectStats(index, depth int, stats *BVHStats) {
	node := &bvh.nodes[index]
	stats.TotalNodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)

	if !node.isLeaf() {
		bvh.collectStats(node.left, depth+1, stats)
		bvh.collectStats(node.right, depth+1, stats)
		return
	}

	stats.LeafNodes++
	if list, ok := node.surface.(SurfaceList); ok {
		stats.TotalSurfaces += len(list)
	} else {
		stats.TotalSurfaces++
	}
}
