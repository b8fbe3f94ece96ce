package gvoxels

import (
	"math"

	"github.com/golang/glog"
)

// CloudParams describes the procedural density field used by the CLI
// when no external volume is supplied: a sphere of the given world
// radius displaced by fractal noise, with density fading from the
// center to the displaced boundary.
type CloudParams struct {
	Center    Point3
	Radius    Real
	NoiseAmp  Real // fraction of the radius eaten by noise
	Density   Real // peak density at the center
	VoxelSize Real
	NoiseFreq Real
}

// DefaultCloud returns a cloud that fills a ~2-unit ball at the origin.
func DefaultCloud() CloudParams {
	return CloudParams{
		Center:    Point3{0, 0, 0},
		Radius:    1.5,
		NoiseAmp:  0.5,
		Density:   1.0,
		VoxelSize: 0.05,
		NoiseFreq: 3.4,
	}
}

// BuildCloud voxelizes the procedural field into a finalized sparse
// tree with a single density channel.
func BuildCloud(p CloudParams) *Tree {
	ext := p.Radius * (1 + p.NoiseAmp)
	origin := Point3{p.Center.X - ext, p.Center.Y - ext, p.Center.Z - ext}
	tree := NewTree(p.VoxelSize, origin, 1)

	n := int(math.Ceil(2 * ext / p.VoxelSize))
	for iz := 0; iz < n; iz++ {
		for iy := 0; iy < n; iy++ {
			for ix := 0; ix < n; ix++ {
				wp := tree.indexToWorld(ix, iy, iz)
				// sample at the voxel center
				wp = wp.Add(Vec3{1, 1, 1}.Mul(p.VoxelSize * 0.5))
				if d := cloudDensity(p, wp); d > 0 {
					tree.Set(ix, iy, iz, ChDensity, d)
				}
			}
		}
	}
	tree.Finalize()
	glog.Infof("built procedural cloud: %d bricks over %d^3 voxels", tree.BrickCount(), n)
	return tree
}

// cloudDensity evaluates the displaced-sphere field at a world point.
func cloudDensity(p CloudParams, wp Point3) Real {
	v := wp.Sub(p.Center)
	displaced := p.Radius * (1 - p.NoiseAmp*fbm(v.Mul(p.NoiseFreq/p.Radius)))
	r := v.Len()
	if r >= displaced {
		return 0
	}
	return p.Density * (1 - r/displaced)
}

// hash-based value noise and fbm (three octaves are plenty for a brick
// occupancy test).
func hashNoise(n Real) Real {
	x := math.Sin(n) * 43758.5453
	return x - math.Floor(x)
}

func valueNoise(v Vec3) Real {
	p := Vec3{math.Floor(v.X), math.Floor(v.Y), math.Floor(v.Z)}
	f := v.Sub(p)
	// smoothstep fade
	f = Vec3{
		f.X * f.X * (3 - 2*f.X),
		f.Y * f.Y * (3 - 2*f.Y),
		f.Z * f.Z * (3 - 2*f.Z),
	}
	n := p.Dot(Vec3{1, 57, 113})

	lerp := func(a, b, t Real) Real { return a + (b-a)*t }
	return lerp(
		lerp(
			lerp(hashNoise(n+0), hashNoise(n+1), f.X),
			lerp(hashNoise(n+57), hashNoise(n+58), f.X), f.Y),
		lerp(
			lerp(hashNoise(n+113), hashNoise(n+114), f.X),
			lerp(hashNoise(n+170), hashNoise(n+171), f.X), f.Y), f.Z)
}

func fbm(v Vec3) Real {
	f := 0.0
	f += 0.5000 * valueNoise(v)
	v = v.Mul(2.32)
	f += 0.2500 * valueNoise(v)
	v = v.Mul(3.03)
	f += 0.1250 * valueNoise(v)
	return f / 0.875
}
