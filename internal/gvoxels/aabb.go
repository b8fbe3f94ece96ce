package gvoxels

import "math"

// rayBoxIntersect computes the slab-test entry/exit distances of a ray
// against an axis-aligned box. ok is false when the ray misses; callers
// must not march (or touch brick data) in that case. A tangent ray
// (tnear >= tfar) reports ok with an empty interval and yields zero
// marching steps.
func rayBoxIntersect(o Point3, d Vec3, bmin, bmax Point3) (tnear, tfar Real, ok bool) {
	tmin, tmax := Real(math.Inf(-1)), Real(math.Inf(1))

	// X
	if math.Abs(d.X) > epsDenom {
		inv := 1 / d.X
		t1 := (bmin.X - o.X) * inv
		t2 := (bmax.X - o.X) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if o.X < bmin.X || o.X > bmax.X {
		return 0, 0, false
	}

	// Y
	if math.Abs(d.Y) > epsDenom {
		inv := 1 / d.Y
		t1 := (bmin.Y - o.Y) * inv
		t2 := (bmax.Y - o.Y) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if o.Y < bmin.Y || o.Y > bmax.Y {
		return 0, 0, false
	}

	// Z
	if math.Abs(d.Z) > epsDenom {
		inv := 1 / d.Z
		t1 := (bmin.Z - o.Z) * inv
		t2 := (bmax.Z - o.Z) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
	} else if o.Z < bmin.Z || o.Z > bmax.Z {
		return 0, 0, false
	}

	if tmax < 0 || tmin > tmax {
		return 0, 0, false
	}
	if tmin < 0 {
		tmin = 0 // origin inside the box
	}
	return tmin, tmax, true
}

// insideBox reports whether p lies within [bmin, bmax].
func insideBox(p Point3, bmin, bmax Point3) bool {
	return p.X >= bmin.X && p.X <= bmax.X &&
		p.Y >= bmin.Y && p.Y <= bmax.Y &&
		p.Z >= bmin.Z && p.Z <= bmax.Z
}
