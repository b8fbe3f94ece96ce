package gvoxels

import (
	"fmt"
	"math"
	"runtime"
	"sync/atomic"

	"github.com/golang/glog"
	"golang.org/x/sync/errgroup"
)

// packRGBA quantizes a [0,1] color into a packed 8-bit RGBA value
// (R in the low byte). Alpha is fixed at 255: the host compositor
// treats the buffer as opaque and the integrated opacity is already
// folded into the color.
func packRGBA(c RGB) uint32 {
	r := uint32(math.Round(clamp(c.R, 0, 1) * 255))
	g := uint32(math.Round(clamp(c.G, 0, 1) * 255))
	b := uint32(math.Round(clamp(c.B, 0, 1) * 255))
	return r | g<<8 | b<<16 | 0xFF<<24
}

// Render fills buf (row-major, one packed RGBA8 per pixel) by marching
// one camera ray per pixel through the volume. The volume index, scene
// and medium parameters are read-only for the duration of the call;
// every pixel is a pure function of them, so identical inputs produce
// byte-identical buffers. Pixels are independent and are dispatched
// row-by-row over a bounded worker pool with no ordering guarantee.
func Render(vol VolumeIndex, channel int, buf []uint32, scene *SceneParams, medium *MediumParams) error {
	if err := scene.Validate(); err != nil {
		return fmt.Errorf("while validating scene parameters: %w", err)
	}
	if err := medium.Validate(); err != nil {
		return fmt.Errorf("while validating medium parameters: %w", err)
	}
	if len(buf) != scene.Width*scene.Height {
		return fmt.Errorf("output buffer holds %d pixels, want %d", len(buf), scene.Width*scene.Height)
	}

	vb := newViewBasis(scene)
	phase := resolvePhase(medium)

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}

	var eg errgroup.Group
	eg.SetLimit(workers)

	var rowsDone int64
	logEvery := int64(scene.Height / 10)
	if logEvery < 1 {
		logEvery = 1
	}

	for y := 0; y < scene.Height; y++ {
		y := y
		eg.Go(func() error {
			renderRow(vol, channel, buf, scene, medium, &vb, phase, y)
			if n := atomic.AddInt64(&rowsDone, 1); n%logEvery == 0 {
				glog.V(1).Infof("rendered %d/%d rows", n, scene.Height)
			}
			return nil
		})
	}
	return eg.Wait()
}

// renderRow integrates one scanline. Coordinates outside the configured
// resolution perform no work.
func renderRow(vol VolumeIndex, channel int, buf []uint32, scene *SceneParams, medium *MediumParams, vb *viewBasis, phase phaseFunc, y int) {
	if y < 0 || y >= scene.Height {
		return
	}
	row := y * scene.Width
	for x := 0; x < scene.Width; x++ {
		ray := vb.pixelRay(x, y)
		color, _ := integrateRay(vol, channel, ray, scene.Light, medium, phase)
		buf[row+x] = packRGBA(color)
	}
}
