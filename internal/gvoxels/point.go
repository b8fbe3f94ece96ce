package gvoxels

// Point3 represents a position in 3-dimensional world space.
type Point3 struct {
	X, Y, Z Real
}

// Add lets you translate a Point3 by a Vec3.
func (p Point3) Add(v Vec3) Point3 {
	return Point3{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// Sub returns the direction vector from q to p.
func (p Point3) Sub(q Point3) Vec3 {
	return Vec3{p.X - q.X, p.Y - q.Y, p.Z - q.Z}
}
