package gvoxels

// Brick describes the leaf brick containing a probe point: world
// position of its minimum corner, the physical size of one voxel, and
// the offset of its voxel payload inside the density atlas. Produced
// transiently by Locate; the integrator never stores it across steps.
type Brick struct {
	Root  Point3 // world-space min corner
	Delta Real   // world size of one voxel
	Atlas int    // first payload index in the atlas
	ID    uint32
}

// VolumeIndex is the read-only sparse volume the integrator marches
// through. Implementations must tolerate Locate calls with points
// arbitrarily far outside the volume and must be safe for concurrent
// use from many pixel goroutines (no mutable shared state during a
// render).
type VolumeIndex interface {
	// Bounds returns the world-space extent of the indexed volume.
	Bounds() (bmin, bmax Point3)
	// Locate resolves a world point to the leaf brick containing it.
	// The second result is false for empty space.
	Locate(p Point3) (Brick, bool)
	// SampleDensity fetches a filtered, non-negative density for the
	// given channel at a world point known to lie inside the brick.
	SampleDensity(b Brick, p Point3, channel int) Real
}
