package gvoxels

import (
	"fmt"
	"math"
)

// Camera is a simple look-at pinhole camera with a vertical field of
// view in degrees.
type Camera struct {
	From   Point3
	To     Point3
	Up     Vec3
	FovDeg Real
}

// Light is a point light.
type Light struct {
	Pos   Point3
	Color RGB
}

// SceneParams is the read-only snapshot the kernel dispatch consumes:
// camera, light, and output resolution. Valid for the duration of one
// render call.
type SceneParams struct {
	Camera Camera
	Light  Light
	Width  int
	Height int
}

// Validate checks the snapshot is renderable.
func (s *SceneParams) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("output resolution must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.Camera.FovDeg <= 0 || s.Camera.FovDeg >= 180 {
		return fmt.Errorf("camera fov must be in (0,180) degrees, got %g", s.Camera.FovDeg)
	}
	if s.Camera.From == s.Camera.To {
		return fmt.Errorf("camera position and target coincide")
	}
	fwd := s.Camera.To.Sub(s.Camera.From).Norm()
	if fwd.Cross(s.Camera.Up).Len() <= epsDenom {
		return fmt.Errorf("camera up %+v is parallel to the view direction", s.Camera.Up)
	}
	return nil
}

// viewBasis caches the per-render camera frame so each pixel only does
// a few multiply-adds to build its ray.
type viewBasis struct {
	origin  Point3
	forward Vec3
	right   Vec3
	up      Vec3
	tanHalf Real
	aspect  Real
	invW    Real
	invH    Real
}

func newViewBasis(s *SceneParams) viewBasis {
	fwd := s.Camera.To.Sub(s.Camera.From).Norm()
	right := fwd.Cross(s.Camera.Up).Norm()
	up := right.Cross(fwd)
	return viewBasis{
		origin:  s.Camera.From,
		forward: fwd,
		right:   right,
		up:      up,
		tanHalf: math.Tan(s.Camera.FovDeg * math.Pi / 360.0),
		aspect:  Real(s.Width) / Real(s.Height),
		invW:    1.0 / Real(s.Width),
		invH:    1.0 / Real(s.Height),
	}
}

// pixelRay builds the camera ray through pixel (x,y), sampling the
// pixel center.
func (vb *viewBasis) pixelRay(x, y int) Ray {
	u := (Real(x)+0.5)*vb.invW*2 - 1
	v := 1 - (Real(y)+0.5)*vb.invH*2
	dir := vb.forward.
		Add(vb.right.Mul(u * vb.tanHalf * vb.aspect)).
		Add(vb.up.Mul(v * vb.tanHalf)).
		Norm()
	return Ray{Origin: vb.origin, Dir: dir}
}
