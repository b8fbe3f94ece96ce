package gvoxels

import (
	"fmt"
	"math"
)

// PhaseKind selects the phase function weighting the scattering term.
type PhaseKind int

const (
	PhaseIsotropic PhaseKind = iota
	PhaseHenyeyGreenstein
	PhaseDoubleHenyeyGreenstein
	PhaseSchlick
	PhaseRayleigh
	PhaseCornetteShanks
)

var phaseNames = map[string]PhaseKind{
	"isotropic":       PhaseIsotropic,
	"hg":              PhaseHenyeyGreenstein,
	"double-hg":       PhaseDoubleHenyeyGreenstein,
	"schlick":         PhaseSchlick,
	"rayleigh":        PhaseRayleigh,
	"cornette-shanks": PhaseCornetteShanks,
}

// ParsePhaseKind maps a config string to a PhaseKind.
func ParsePhaseKind(s string) (PhaseKind, error) {
	if s == "" {
		return PhaseIsotropic, nil
	}
	k, ok := phaseNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown phase function %q", s)
	}
	return k, nil
}

const invFourPi = 1.0 / (4.0 * math.Pi)

// phaseFunc maps the cosine of the scattering angle to a directional
// probability density (1/sr). All variants are pure.
type phaseFunc func(cosTheta Real) Real

// isotropicPhase scatters uniformly over the sphere.
func isotropicPhase(_ Real) Real { return invFourPi }

// henyeyGreenstein is the classic single-lobe HG phase function with
// asymmetry g in (-1,1); g=0 degenerates to isotropic.
func henyeyGreenstein(cosTheta, g Real) Real {
	denom := 1 + g*g - 2*g*cosTheta
	if denom < epsDenom {
		denom = epsDenom
	}
	return invFourPi * (1 - g*g) / (denom * math.Sqrt(denom))
}

// doubleHenyeyGreenstein blends two HG lobes by weight f.
func doubleHenyeyGreenstein(cosTheta, g1, g2, f Real) Real {
	return (1-f)*henyeyGreenstein(cosTheta, g1) + f*henyeyGreenstein(cosTheta, g2)
}

// schlickPhase is the cheap rational approximation of HG; k plays the
// role of g (k ≈ 1.55g − 0.55g³ matches HG closely).
func schlickPhase(cosTheta, k Real) Real {
	d := 1 - k*cosTheta
	if d*d < epsDenom {
		return invFourPi * (1 - k*k) / epsDenom
	}
	return invFourPi * (1 - k*k) / (d * d)
}

// rayleighPhase models scattering by particles much smaller than the
// wavelength.
func rayleighPhase(cosTheta Real) Real {
	return 3.0 / (16.0 * math.Pi) * (1 + cosTheta*cosTheta)
}

// cornetteShanks refines HG with the Rayleigh-like angular term.
func cornetteShanks(cosTheta, g Real) Real {
	denom := 1 + g*g - 2*g*cosTheta
	if denom < epsDenom {
		denom = epsDenom
	}
	return 3.0 / (8.0 * math.Pi) * (1 - g*g) * (1 + cosTheta*cosTheta) /
		((2 + g*g) * denom * math.Sqrt(denom))
}

// resolvePhase binds the configured kind and parameters to a concrete
// function value once per render call, so the per-step cost is a single
// indirect call instead of a per-pixel switch.
func resolvePhase(m *MediumParams) phaseFunc {
	switch m.Phase {
	case PhaseHenyeyGreenstein:
		g := m.PhaseG
		return func(c Real) Real { return henyeyGreenstein(c, g) }
	case PhaseDoubleHenyeyGreenstein:
		g1, g2, f := m.PhaseG, m.PhaseG2, m.PhaseBlend
		return func(c Real) Real { return doubleHenyeyGreenstein(c, g1, g2, f) }
	case PhaseSchlick:
		k := m.PhaseG
		return func(c Real) Real { return schlickPhase(c, k) }
	case PhaseRayleigh:
		return rayleighPhase
	case PhaseCornetteShanks:
		g := m.PhaseG
		return func(c Real) Real { return cornetteShanks(c, g) }
	default:
		return isotropicPhase
	}
}
