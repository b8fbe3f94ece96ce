package gvoxels

import "math"

// RGB stores per-channel radiometric quantities. Display colors live in
// [0,1]; coefficients (absorption, scattering) may exceed 1.
type RGB struct {
	R, G, B Real
}

func (a RGB) Add(b RGB) RGB  { return RGB{a.R + b.R, a.G + b.G, a.B + b.B} }
func (a RGB) MulC(b RGB) RGB { return RGB{a.R * b.R, a.G * b.G, a.B * b.B} }
func (c RGB) Scale(s Real) RGB {
	return RGB{c.R * s, c.G * s, c.B * s}
}

// Exp returns per-channel exp of the color, used for Beer-Lambert
// attenuation factors exp(-density*extinction*step).
func (c RGB) Exp() RGB {
	return RGB{math.Exp(c.R), math.Exp(c.G), math.Exp(c.B)}
}

// clamp01 clamps each channel to [0,1] (useful before quantization).
func (c RGB) clamp01() RGB {
	return RGB{clamp(c.R, 0, 1), clamp(c.G, 0, 1), clamp(c.B, 0, 1)}
}

var (
	white = RGB{1, 1, 1}
	black = RGB{0, 0, 0}
)
