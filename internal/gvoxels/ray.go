package gvoxels

// Ray is a world-space ray: origin plus a unit direction. Constructed
// once per pixel and immutable through the integration.
type Ray struct {
	Origin Point3
	Dir    Vec3
}

// At returns the point at parameter t along the ray.
func (r Ray) At(t Real) Point3 {
	return Point3{
		r.Origin.X + r.Dir.X*t,
		r.Origin.Y + r.Dir.Y*t,
		r.Origin.Z + r.Dir.Z*t,
	}
}
