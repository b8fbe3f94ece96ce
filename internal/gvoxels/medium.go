package gvoxels

import "fmt"

// MediumParams configures the participating medium for one render call.
// Coefficients are per-channel; extinction is derived, never stored.
type MediumParams struct {
	Absorption RGB  // 1/distance
	Scattering RGB  // 1/distance
	StepSize   Real // primary march step, world units
	ShadowStep Real // shadow march step, world units

	// Early-out threshold for the primary march: once the red channel
	// of transmittance drops below this, the medium is effectively
	// opaque and marching stops.
	MinTransmittance Real

	Phase      PhaseKind
	PhaseG     Real // HG / Schlick / Cornette-Shanks asymmetry
	PhaseG2    Real // second lobe of double-HG
	PhaseBlend Real // double-HG blend weight f in [0,1]
}

// Extinction returns absorption + scattering per channel.
func (m *MediumParams) Extinction() RGB {
	return m.Absorption.Add(m.Scattering)
}

// DefaultMedium returns the documented defaults:
// absorption 0.01*(0.75, 0.5, 0.0), scattering 10*(0.25, 0.5, 1.0),
// step 0.05 for both marches.
func DefaultMedium() MediumParams {
	return MediumParams{
		Absorption:       RGB{0.75, 0.5, 0.0}.Scale(0.01),
		Scattering:       RGB{0.25, 0.5, 1.0}.Scale(10),
		StepSize:         PrimaryStep,
		ShadowStep:       ShadowStep,
		MinTransmittance: MinTransmittance,
		Phase:            PhaseIsotropic,
	}
}

// Validate rejects parameter sets that would break march termination or
// the sampler's non-negativity contract.
func (m *MediumParams) Validate() error {
	if m.StepSize <= 0 || m.ShadowStep <= 0 {
		return fmt.Errorf("march steps must be positive, got primary=%g shadow=%g", m.StepSize, m.ShadowStep)
	}
	if m.MinTransmittance <= 0 {
		return fmt.Errorf("min transmittance must be positive, got %g", m.MinTransmittance)
	}
	for _, v := range []Real{
		m.Absorption.R, m.Absorption.G, m.Absorption.B,
		m.Scattering.R, m.Scattering.G, m.Scattering.B,
	} {
		if v < 0 || !isFinite(v) {
			return fmt.Errorf("absorption/scattering coefficients must be finite and non-negative")
		}
	}
	if m.PhaseBlend < 0 || m.PhaseBlend > 1 {
		return fmt.Errorf("phase blend weight must be in [0,1], got %g", m.PhaseBlend)
	}
	return nil
}
