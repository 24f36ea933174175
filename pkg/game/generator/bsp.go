package generator

import (
	"math/rand"

	"towergen/pkg/engine/world"
	"towergen/pkg/game/config"
)

// bspNode represents a node in the BSP tree
type bspNode struct {
	x, z, width, height int
	left, right         *bspNode
	room                *Rect
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// Rooms are kept this many cells smaller than their leaf when they can be.
const roomPadding = 2

// bspRooms partitions the grid until there is one leaf per requested room
// and carves a room inside each leaf. Rooms never overlap.
type bspRooms struct{}

func (bspRooms) carve(grid *world.Grid, p config.Params, rng *rand.Rand) []Warning {
	if p.RoomCount == 0 {
		return nil
	}

	// Leave a 1 cell border when the grid is large enough for it
	root := &bspNode{x: 0, z: 0, width: grid.Width(), height: grid.Height()}
	if grid.Width() > p.MinRoomSize+2 && grid.Height() > p.MinRoomSize+2 {
		root = &bspNode{x: 1, z: 1, width: grid.Width() - 2, height: grid.Height() - 2}
	}

	minSize := p.MinRoomSize + roomPadding
	leaves := []*bspNode{root}
	for len(leaves) < p.RoomCount {
		i := largestSplittable(leaves, minSize)
		if i < 0 {
			break
		}
		node := leaves[i]
		splitBSP(node, minSize, rng)
		leaves = append(leaves[:i], append([]*bspNode{node.left, node.right}, leaves[i+1:]...)...)
	}

	var warnings []Warning
	id := 0
	for _, leaf := range collectLeaves(root) {
		id++
		r, ok := roomInLeaf(leaf, p, rng)
		if !ok {
			warnings = append(warnings, warnf(stageCarve, ErrDegenerateRoom,
				"room %d: leaf %dx%d too small for min size %d", id, leaf.width, leaf.height, p.MinRoomSize))
			continue
		}
		leaf.room = &r
		carveRect(grid, r, id, nil)
	}
	for ; id < p.RoomCount; id++ {
		warnings = append(warnings, warnf(stageCarve, ErrDegenerateRoom,
			"room %d: no space left to partition", id+1))
	}
	return warnings
}

// largestSplittable returns the index of the biggest leaf that can still be
// split, or -1. Ties go to the earliest leaf.
func largestSplittable(leaves []*bspNode, minSize int) int {
	best, bestArea := -1, 0
	for i, n := range leaves {
		if n.width < minSize*2 && n.height < minSize*2 {
			continue
		}
		if area := n.width * n.height; area > bestArea {
			best, bestArea = i, area
		}
	}
	return best
}

// splitBSP splits a node once along its longer splittable axis
func splitBSP(node *bspNode, minSize int, rng *rand.Rand) {
	var splitHorizontal bool
	canH := node.height >= minSize*2
	canV := node.width >= minSize*2
	switch {
	case node.width > node.height && canV:
		splitHorizontal = false
	case node.height > node.width && canH:
		splitHorizontal = true
	case canH && canV:
		splitHorizontal = rng.Intn(2) == 0
	case canV:
		splitHorizontal = false
	case canH:
		splitHorizontal = true
	default:
		return
	}

	if splitHorizontal {
		// top and bottom
		at := minSize + rng.Intn(node.height-minSize*2+1)
		node.left = &bspNode{x: node.x, z: node.z, width: node.width, height: at}
		node.right = &bspNode{x: node.x, z: node.z + at, width: node.width, height: node.height - at}
	} else {
		// left and right
		at := minSize + rng.Intn(node.width-minSize*2+1)
		node.left = &bspNode{x: node.x, z: node.z, width: at, height: node.height}
		node.right = &bspNode{x: node.x + at, z: node.z, width: node.width - at, height: node.height}
	}
}

// collectLeaves returns leaves in depth-first, left-to-right order
func collectLeaves(node *bspNode) []*bspNode {
	if node.isLeaf() {
		return []*bspNode{node}
	}
	var out []*bspNode
	if node.left != nil {
		out = append(out, collectLeaves(node.left)...)
	}
	if node.right != nil {
		out = append(out, collectLeaves(node.right)...)
	}
	return out
}

// roomInLeaf picks a room rectangle inside a leaf, keeping padding when it fits
func roomInLeaf(leaf *bspNode, p config.Params, rng *rand.Rand) (Rect, bool) {
	dim := func(extent int) (int, bool) {
		limit := extent - roomPadding
		if limit < p.MinRoomSize {
			limit = extent
		}
		if limit < p.MinRoomSize {
			return 0, false
		}
		hi := min(p.MaxRoomSize, limit)
		return p.MinRoomSize + rng.Intn(hi-p.MinRoomSize+1), true
	}

	w, okW := dim(leaf.width)
	h, okH := dim(leaf.height)
	if !okW || !okH {
		return Rect{}, false
	}
	return Rect{
		X:      leaf.x + rng.Intn(leaf.width-w+1),
		Z:      leaf.z + rng.Intn(leaf.height-h+1),
		Width:  w,
		Height: h,
	}, true
}
