package gvoxels

import (
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
)

// SavePNG writes a packed RGBA8 framebuffer (as filled by Render) to a
// PNG file. gamma != 1 applies display gamma on the way out; the buffer
// itself stays untouched.
func SavePNG(buf []uint32, width, height int, path string, gamma Real) error {
	if len(buf) != width*height {
		return fmt.Errorf("framebuffer holds %d pixels, want %d", len(buf), width*height)
	}

	toByte := func(v uint32) uint8 {
		if gamma == 1 {
			return uint8(v)
		}
		n := math.Pow(Real(v)/255.0, 1.0/gamma)
		return uint8(math.Round(n * 255))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		rowOff := y * img.Stride
		for x := 0; x < width; x++ {
			px := buf[y*width+x]
			p := rowOff + x*4
			img.Pix[p+0] = toByte(px & 0xFF)
			img.Pix[p+1] = toByte(px >> 8 & 0xFF)
			img.Pix[p+2] = toByte(px >> 16 & 0xFF)
			img.Pix[p+3] = uint8(px >> 24)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
