package gvoxels

// shadowTransmittance marches from a scatter point toward the light,
// attenuating per channel by exp(-density*extinction*step) wherever a
// brick is resolved. Vacuum probe points leave the running value
// untouched. The march ends only when the probe exits the volume
// bounds, so callers must keep the step size sane relative to the box
// extent. An empty volume yields exactly (1,1,1).
func shadowTransmittance(vol VolumeIndex, channel int, from Point3, lightPos Point3, extinction RGB, step Real) RGB {
	toLight := lightPos.Sub(from)
	if toLight.Len() <= epsDenom {
		// light coincides with the probe: zero path, no attenuation
		return white
	}
	dir := toLight.Norm()
	bmin, bmax := vol.Bounds()

	trans := white
	pos := from
	for insideBox(pos, bmin, bmax) {
		if brick, ok := vol.Locate(pos); ok {
			d := vol.SampleDensity(brick, pos, channel)
			trans = trans.MulC(extinction.Scale(-d * step).Exp())
		}
		pos = pos.Add(dir.Mul(step))
	}
	return trans
}
