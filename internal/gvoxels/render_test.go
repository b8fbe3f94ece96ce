package gvoxels

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// emptyVolume advertises real bounds but never resolves a brick. Rays
// intersect the box and march through pure vacuum.
type emptyVolume struct{}

func (emptyVolume) Bounds() (Point3, Point3) { return Point3{0, 0, 0}, Point3{2, 2, 2} }

func (emptyVolume) Locate(Point3) (Brick, bool) { return Brick{}, false }

func (emptyVolume) SampleDensity(Brick, Point3, int) Real { return 0 }

func testScene(w, h int) SceneParams {
	return SceneParams{
		Camera: Camera{
			From:   Point3{1, 1, 6},
			To:     Point3{1, 1, 0},
			Up:     Vec3{0, 1, 0},
			FovDeg: 30,
		},
		Light:  Light{Pos: Point3{10, 10, 5}, Color: white},
		Width:  w,
		Height: h,
	}
}

func TestRenderEmptyVolumeIsBlack(t *testing.T) {
	scene := testScene(32, 24)
	m := DefaultMedium()
	buf := make([]uint32, scene.Width*scene.Height)

	if err := Render(emptyVolume{}, ChDensity, buf, &scene, &m); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for i, px := range buf {
		if px != 0xFF000000 {
			t.Fatalf("pixel %d of an empty volume is %08x, want ff000000", i, px)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	cp := DefaultCloud()
	cp.VoxelSize = 0.15
	tree := BuildCloud(cp)
	scene := testScene(24, 16)
	m := DefaultMedium()

	a := make([]uint32, scene.Width*scene.Height)
	b := make([]uint32, scene.Width*scene.Height)
	if err := Render(tree, ChDensity, a, &scene, &m); err != nil {
		t.Fatalf("first render failed: %v", err)
	}
	if err := Render(tree, ChDensity, b, &scene, &m); err != nil {
		t.Fatalf("second render failed: %v", err)
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("same inputs produced different buffers (-first +second):\n%s", diff)
	}
}

func TestRenderLitCloudHasBrightPixels(t *testing.T) {
	cp := DefaultCloud()
	cp.VoxelSize = 0.2 // coarse grid keeps the test fast
	tree := BuildCloud(cp)

	scene := testScene(32, 24)
	scene.Camera.From = Point3{0, 0, 6}
	scene.Camera.To = Point3{0, 0, 0}
	m := DefaultMedium()

	buf := make([]uint32, scene.Width*scene.Height)
	if err := Render(tree, ChDensity, buf, &scene, &m); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	lit := 0
	for _, px := range buf {
		if px&0x00FFFFFF != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatal("lit cloud rendered fully black")
	}
}

func TestRenderRejectsBadBuffer(t *testing.T) {
	scene := testScene(8, 8)
	m := DefaultMedium()
	if err := Render(emptyVolume{}, ChDensity, make([]uint32, 7), &scene, &m); err == nil {
		t.Fatal("expected an error for a wrongly sized buffer")
	}
}

func TestRenderRejectsBadScene(t *testing.T) {
	scene := testScene(8, 8)
	scene.Camera.To = scene.Camera.From
	m := DefaultMedium()
	if err := Render(emptyVolume{}, ChDensity, make([]uint32, 64), &scene, &m); err == nil {
		t.Fatal("expected an error for a degenerate camera")
	}
}

func TestRenderRejectsCollinearUp(t *testing.T) {
	// A straight-down camera with the default up collapses the view
	// basis to zero vectors; it must be rejected, not rendered.
	scene := testScene(8, 8)
	scene.Camera.From = Point3{0, 5, 0}
	scene.Camera.To = Point3{0, 0, 0}
	scene.Camera.Up = Vec3{0, 1, 0}
	if err := scene.Validate(); err == nil {
		t.Fatal("expected an error for up parallel to the view direction")
	}
	m := DefaultMedium()
	if err := Render(emptyVolume{}, ChDensity, make([]uint32, 64), &scene, &m); err == nil {
		t.Fatal("expected render to reject a collapsed camera basis")
	}

	// Anti-parallel up is equally degenerate.
	scene.Camera.Up = Vec3{0, -1, 0}
	if err := scene.Validate(); err == nil {
		t.Fatal("expected an error for up anti-parallel to the view direction")
	}

	// A tilted up must still pass.
	scene.Camera.Up = Vec3{0, 1, 0.3}
	if err := scene.Validate(); err != nil {
		t.Fatalf("tilted up rejected: %v", err)
	}
}

func TestPackRGBA(t *testing.T) {
	cases := []struct {
		c    RGB
		want uint32
	}{
		{black, 0xFF000000},
		{white, 0xFFFFFFFF},
		{RGB{1, 0, 0}, 0xFF0000FF},
		{RGB{0, 0, 1}, 0xFFFF0000},
		{RGB{2, -1, 0.5}, 0xFF8000FF},
	}
	for _, tc := range cases {
		if got := packRGBA(tc.c); got != tc.want {
			t.Fatalf("packRGBA(%+v) = %08x, want %08x", tc.c, got, tc.want)
		}
	}
}
