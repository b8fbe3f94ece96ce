package gvoxels

import (
	"math"
	"testing"
)

// integrateOverSphere computes 2π ∫_{-1}^{1} p(µ) dµ with the
// trapezoidal rule; every phase function must integrate to 1.
func integrateOverSphere(p phaseFunc, n int) Real {
	h := 2.0 / Real(n)
	sum := 0.5 * (p(-1) + p(1))
	for i := 1; i < n; i++ {
		sum += p(-1 + Real(i)*h)
	}
	return 2 * math.Pi * sum * h
}

func TestPhaseNormalization(t *testing.T) {
	cases := []struct {
		name string
		p    phaseFunc
	}{
		{"isotropic", isotropicPhase},
		{"hg g=0.3", func(c Real) Real { return henyeyGreenstein(c, 0.3) }},
		{"hg g=-0.7", func(c Real) Real { return henyeyGreenstein(c, -0.7) }},
		{"double-hg", func(c Real) Real { return doubleHenyeyGreenstein(c, 0.4, -0.2, 0.3) }},
		{"rayleigh", rayleighPhase},
		{"cornette-shanks g=0.5", func(c Real) Real { return cornetteShanks(c, 0.5) }},
	}
	for _, tc := range cases {
		got := integrateOverSphere(tc.p, 200000)
		if !nearly(got, 1, 1e-3) {
			t.Errorf("%s: integral over sphere = %.6f, want 1", tc.name, got)
		}
	}
}

func TestSchlickNearNormalized(t *testing.T) {
	// Schlick is an approximation; its integral drifts with k but must
	// stay close to 1 for moderate asymmetry.
	p := func(c Real) Real { return schlickPhase(c, 0.4) }
	got := integrateOverSphere(p, 200000)
	if !nearly(got, 1, 0.05) {
		t.Errorf("schlick k=0.4: integral = %.6f, want ~1", got)
	}
}

func TestHGZeroAsymmetryIsIsotropic(t *testing.T) {
	for _, c := range []Real{-1, -0.5, 0, 0.5, 1} {
		if !nearly(henyeyGreenstein(c, 0), isotropicPhase(c), 1e-12) {
			t.Fatalf("HG(g=0) must equal isotropic at cos=%g", c)
		}
	}
}

func TestDoubleHGDegenerateBlends(t *testing.T) {
	for _, c := range []Real{-0.9, 0, 0.9} {
		if !nearly(doubleHenyeyGreenstein(c, 0.6, -0.3, 0), henyeyGreenstein(c, 0.6), 1e-12) {
			t.Fatalf("f=0 must reduce to the first lobe")
		}
		if !nearly(doubleHenyeyGreenstein(c, 0.6, -0.3, 1), henyeyGreenstein(c, -0.3), 1e-12) {
			t.Fatalf("f=1 must reduce to the second lobe")
		}
	}
}

func TestPhasePositivity(t *testing.T) {
	ps := []phaseFunc{
		isotropicPhase,
		func(c Real) Real { return henyeyGreenstein(c, 0.85) },
		func(c Real) Real { return schlickPhase(c, 0.85) },
		rayleighPhase,
		func(c Real) Real { return cornetteShanks(c, 0.85) },
	}
	for i, p := range ps {
		for c := Real(-1); c <= 1; c += 0.01 {
			if v := p(c); v < 0 || !isFinite(v) {
				t.Fatalf("phase %d returned %g at cos=%g", i, v, c)
			}
		}
	}
}

func TestParsePhaseKind(t *testing.T) {
	if k, err := ParsePhaseKind(""); err != nil || k != PhaseIsotropic {
		t.Fatalf("empty string must default to isotropic, got %v, %v", k, err)
	}
	if k, err := ParsePhaseKind("cornette-shanks"); err != nil || k != PhaseCornetteShanks {
		t.Fatalf("expected cornette-shanks, got %v, %v", k, err)
	}
	if _, err := ParsePhaseKind("mie"); err == nil {
		t.Fatal("unknown phase name must error")
	}
}

func TestResolvePhaseDefaultIsUnitWeight(t *testing.T) {
	m := DefaultMedium()
	p := resolvePhase(&m)
	for _, c := range []Real{-1, 0, 1} {
		if w := 4 * math.Pi * p(c); !nearly(w, 1, 1e-12) {
			t.Fatalf("default phase weight must be 1, got %g at cos=%g", w, c)
		}
	}
}
