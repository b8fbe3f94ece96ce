package gvoxels

import "math"

// marchInterval iterates fixed-size steps across a ray's [entry, exit]
// interval. The stopping rule is explicit so it can be tested on its
// own: marching continues while the interval is not exhausted and the
// medium has not become effectively opaque.
type marchInterval struct {
	t, exit, step Real
	minTrans      Real
}

func newMarchInterval(entry, exit, step, minTrans Real) marchInterval {
	// offset past the boundary so the entry voxel is not re-sampled
	return marchInterval{t: entry + marchEpsilon, exit: exit, step: step, minTrans: minTrans}
}

func (mi *marchInterval) more(transR Real) bool {
	return mi.t <= mi.exit && transR >= mi.minTrans
}

func (mi *marchInterval) advance() { mi.t += mi.step }

// integrateRay marches one camera ray through the volume, accumulating
// single-scattered luminance and transmittance, and returns the
// composited pixel color plus its opacity (1 - transmittance.R).
//
// Per step, in order: resolve the brick (empty space contributes
// nothing), sample density, march a shadow ray toward the light, add
// the scattering term, attenuate transmittance by exp(-density*step),
// then recompute the working color as transmittance*color + scattered
// clamped to [0,1]. The scattering term is weighted by 4π*phase(cosθ),
// which is exactly 1 for the isotropic phase, so the default
// configuration reproduces the unweighted single-scattering estimate.
func integrateRay(vol VolumeIndex, channel int, ray Ray, light Light, m *MediumParams, phase phaseFunc) (RGB, Real) {
	bmin, bmax := vol.Bounds()
	entry, exit, ok := rayBoxIntersect(ray.Origin, ray.Dir, bmin, bmax)
	if !ok || entry >= exit {
		return black, 0
	}

	extinction := m.Extinction()
	trans := white
	scattered := black
	color := black

	mi := newMarchInterval(entry, exit, m.StepSize, m.MinTransmittance)
	for mi.more(trans.R) {
		pos := ray.At(mi.t)
		if brick, found := vol.Locate(pos); found {
			if Debug {
				DebugLogOnce("first occupied brick: id=%d root=%+v t=%.4f", brick.ID, brick.Root, mi.t)
			}
			d := vol.SampleDensity(brick, pos, channel)
			shadow := shadowTransmittance(vol, channel, pos, light.Pos, extinction, m.ShadowStep)

			cosTheta := ray.Dir.Dot(light.Pos.Sub(pos).Norm())
			w := 4 * math.Pi * phase(cosTheta)

			scattered = scattered.Add(
				shadow.MulC(trans).MulC(m.Scattering).MulC(light.Color).Scale(d * m.StepSize * w))
			trans = trans.Scale(math.Exp(-d * m.StepSize))
			color = trans.MulC(color).Add(scattered).clamp01()
		}
		mi.advance()
	}

	alpha := 1 - trans.R
	return color.Scale(alpha), alpha
}
