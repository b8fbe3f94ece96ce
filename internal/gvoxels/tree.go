package gvoxels

import (
	"math"
)

// Tree is a bounded-depth sparse voxel index: a root hash of internal
// nodes, each holding a 16^3 child bitmask over 8^3 leaf bricks. Brick
// payloads live in a flat atlas so lookups touch at most three levels.
// Building happens through Set; after Finalize the tree is immutable
// and safe for concurrent reads.
type Tree struct {
	voxelSize Real
	origin    Point3 // world position of index coordinate (0,0,0)
	channels  int

	nodes  map[nodeKey]*treeNode
	bricks []brickMeta
	atlas  []Real // bricks * channels * BrickVoxels, payload-major

	bmin, bmax Point3
	finalized  bool
}

type nodeKey struct {
	X, Y, Z int
}

type treeNode struct {
	mask  [NodeChildren / 64]uint64
	leafs [NodeChildren]int32 // brick index + 1; 0 means empty child
}

type brickMeta struct {
	ix, iy, iz int // index-space origin, multiples of BrickDim
}

// NewTree creates an empty sparse index. voxelSize is the world size of
// one voxel; origin anchors index coordinate (0,0,0) in world space.
func NewTree(voxelSize Real, origin Point3, channels int) *Tree {
	if voxelSize <= 0 {
		panic("voxel size must be positive")
	}
	if channels <= 0 {
		panic("channel count must be positive")
	}
	t := &Tree{
		voxelSize: voxelSize,
		origin:    origin,
		channels:  channels,
		nodes:     make(map[nodeKey]*treeNode),
	}
	DebugLog("Created tree voxelSize=%.5f origin=%+v channels=%d", voxelSize, origin, channels)
	return t
}

// Set stores a density value at voxel index (ix,iy,iz) for a channel,
// allocating the covering node and brick on demand. Negative values are
// clamped to zero so samplers can guarantee non-negative outputs.
// Set must not be called after Finalize.
func (t *Tree) Set(ix, iy, iz, channel int, v Real) {
	if t.finalized {
		panic("Set on finalized tree")
	}
	if channel < 0 || channel >= t.channels {
		panic("channel out of range")
	}
	if v < 0 || math.IsNaN(v) {
		v = 0
	}

	key := nodeKey{ix &^ (NodeSpan - 1), iy &^ (NodeSpan - 1), iz &^ (NodeSpan - 1)}
	node := t.nodes[key]
	if node == nil {
		node = &treeNode{}
		t.nodes[key] = node
	}

	child := childOffset(ix-key.X, iy-key.Y, iz-key.Z)
	bi := node.leafs[child]
	if bi == 0 {
		meta := brickMeta{ix &^ (BrickDim - 1), iy &^ (BrickDim - 1), iz &^ (BrickDim - 1)}
		t.bricks = append(t.bricks, meta)
		t.atlas = append(t.atlas, make([]Real, t.channels*BrickVoxels)...)
		bi = int32(len(t.bricks)) // stored +1
		node.leafs[child] = bi
		node.mask[child>>6] |= 1 << (child & 63)
	}

	base := (int(bi)-1)*t.channels*BrickVoxels + channel*BrickVoxels
	t.atlas[base+voxelOffset(ix&(BrickDim-1), iy&(BrickDim-1), iz&(BrickDim-1))] = v
}

// Finalize computes the world bounds of the occupied region and locks
// the tree for rendering.
func (t *Tree) Finalize() {
	if t.finalized {
		return
	}
	t.finalized = true
	if len(t.bricks) == 0 {
		t.bmin, t.bmax = t.origin, t.origin
		return
	}
	minI := [3]int{math.MaxInt32, math.MaxInt32, math.MaxInt32}
	maxI := [3]int{math.MinInt32, math.MinInt32, math.MinInt32}
	for _, b := range t.bricks {
		for a, o := range [3]int{b.ix, b.iy, b.iz} {
			if o < minI[a] {
				minI[a] = o
			}
			if o+BrickDim > maxI[a] {
				maxI[a] = o + BrickDim
			}
		}
	}
	t.bmin = t.indexToWorld(minI[0], minI[1], minI[2])
	t.bmax = t.indexToWorld(maxI[0], maxI[1], maxI[2])
	DebugLog("Finalized tree: %d nodes, %d bricks, bounds=%+v..%+v", len(t.nodes), len(t.bricks), t.bmin, t.bmax)
}

// Bounds returns the world-space extent of the occupied region.
func (t *Tree) Bounds() (Point3, Point3) {
	return t.bmin, t.bmax
}

// BrickCount returns the number of allocated leaf bricks.
func (t *Tree) BrickCount() int { return len(t.bricks) }

// Locate resolves a world point to the leaf brick containing it.
// Points outside the bounds (arbitrarily far away) return false without
// touching the node map.
func (t *Tree) Locate(p Point3) (Brick, bool) {
	if !insideBox(p, t.bmin, t.bmax) {
		return Brick{}, false
	}
	ix := int(math.Floor((p.X - t.origin.X) / t.voxelSize))
	iy := int(math.Floor((p.Y - t.origin.Y) / t.voxelSize))
	iz := int(math.Floor((p.Z - t.origin.Z) / t.voxelSize))

	key := nodeKey{ix &^ (NodeSpan - 1), iy &^ (NodeSpan - 1), iz &^ (NodeSpan - 1)}
	node := t.nodes[key]
	if node == nil {
		return Brick{}, false
	}
	child := childOffset(ix-key.X, iy-key.Y, iz-key.Z)
	if node.mask[child>>6]&(1<<(child&63)) == 0 {
		return Brick{}, false
	}
	bi := int(node.leafs[child]) - 1
	meta := t.bricks[bi]
	return Brick{
		Root:  t.indexToWorld(meta.ix, meta.iy, meta.iz),
		Delta: t.voxelSize,
		Atlas: bi * t.channels * BrickVoxels,
		ID:    uint32(bi),
	}, true
}

// SampleDensity fetches a trilinearly filtered density at a world point
// inside the given brick. The atlas coordinate is derived from the
// brick root exactly once per probe so long marches accumulate no
// floating-point drift. Filtering clamps to the brick faces; samples
// never bleed into a neighboring brick's payload.
func (t *Tree) SampleDensity(b Brick, p Point3, channel int) Real {
	base := b.Atlas + channel*BrickVoxels

	// brick-local continuous voxel coordinate
	lx := (p.X - b.Root.X) / b.Delta
	ly := (p.Y - b.Root.Y) / b.Delta
	lz := (p.Z - b.Root.Z) / b.Delta

	// voxel centers sit at +0.5
	ux, uy, uz := lx-0.5, ly-0.5, lz-0.5
	x0 := int(math.Floor(ux))
	y0 := int(math.Floor(uy))
	z0 := int(math.Floor(uz))
	fx := ux - Real(x0)
	fy := uy - Real(y0)
	fz := uz - Real(z0)

	x1 := clamp(x0+1, 0, BrickDim-1)
	y1 := clamp(y0+1, 0, BrickDim-1)
	z1 := clamp(z0+1, 0, BrickDim-1)
	x0 = clamp(x0, 0, BrickDim-1)
	y0 = clamp(y0, 0, BrickDim-1)
	z0 = clamp(z0, 0, BrickDim-1)

	at := func(x, y, z int) Real { return t.atlas[base+voxelOffset(x, y, z)] }

	c00 := at(x0, y0, z0) + (at(x1, y0, z0)-at(x0, y0, z0))*fx
	c10 := at(x0, y1, z0) + (at(x1, y1, z0)-at(x0, y1, z0))*fx
	c01 := at(x0, y0, z1) + (at(x1, y0, z1)-at(x0, y0, z1))*fx
	c11 := at(x0, y1, z1) + (at(x1, y1, z1)-at(x0, y1, z1))*fx

	c0 := c00 + (c10-c00)*fy
	c1 := c01 + (c11-c01)*fy
	v := c0 + (c1-c0)*fz
	if v < 0 {
		return 0
	}
	return v
}

func (t *Tree) indexToWorld(ix, iy, iz int) Point3 {
	return Point3{
		t.origin.X + Real(ix)*t.voxelSize,
		t.origin.Y + Real(iy)*t.voxelSize,
		t.origin.Z + Real(iz)*t.voxelSize,
	}
}

// childOffset linearizes a node-local voxel coordinate to a child slot.
func childOffset(dx, dy, dz int) int {
	cx := dx >> BrickLog2Dim
	cy := dy >> BrickLog2Dim
	cz := dz >> BrickLog2Dim
	return (cz<<NodeLog2Dim|cy)<<NodeLog2Dim | cx
}

// voxelOffset linearizes a brick-local voxel coordinate.
func voxelOffset(x, y, z int) int {
	return (z<<BrickLog2Dim|y)<<BrickLog2Dim | x
}
