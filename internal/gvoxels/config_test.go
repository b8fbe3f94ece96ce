package gvoxels

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}
	return path
}

func TestLoadConfigFillsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `{}`))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Width != OutWidth || cfg.Height != OutHeight {
		t.Fatalf("default resolution %dx%d, want %dx%d", cfg.Width, cfg.Height, OutWidth, OutHeight)
	}
	if cfg.PNGOut != PNGOut {
		t.Fatalf("default output %q, want %q", cfg.PNGOut, PNGOut)
	}
	if cfg.Gamma != Gamma {
		t.Fatalf("default gamma %g, want %g", cfg.Gamma, Gamma)
	}
	if cfg.Camera.From == cfg.Camera.To {
		t.Fatal("default camera must not be degenerate")
	}
	if (cfg.Camera.Up != Vec3{0, 1, 0}) {
		t.Fatalf("default up %+v, want (0,1,0)", cfg.Camera.Up)
	}
	if (cfg.Light.Color != RGB{1, 1, 1}) {
		t.Fatalf("default light color %+v, want white", cfg.Light.Color)
	}

	scene, err := cfg.BuildScene()
	if err != nil {
		t.Fatalf("BuildScene on defaults: %v", err)
	}
	if err := scene.Validate(); err != nil {
		t.Fatalf("default scene invalid: %v", err)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, `{
		"width": 320, "height": 200, "pngOut": "cloud.png",
		"camera": {"from": {"x": 0, "y": 2, "z": 8}, "to": {"x": 0, "y": 0, "z": 0}, "fovDeg": 45},
		"light": {"pos": {"x": 5, "y": 9, "z": 3}, "color": {"r": 1, "g": 0.9, "b": 0.8}},
		"medium": {"stepSize": 0.1, "phase": "hg", "phaseG": 0.4}
	}`))
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 200 || cfg.PNGOut != "cloud.png" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}

	m, err := cfg.Medium.BuildMedium()
	if err != nil {
		t.Fatalf("BuildMedium: %v", err)
	}
	if m.StepSize != 0.1 {
		t.Fatalf("step override %g, want 0.1", m.StepSize)
	}
	if m.Phase != PhaseHenyeyGreenstein || m.PhaseG != 0.4 {
		t.Fatalf("phase override not applied: kind=%v g=%g", m.Phase, m.PhaseG)
	}
	// omitted coefficients keep the documented defaults
	def := DefaultMedium()
	if m.Absorption != def.Absorption || m.Scattering != def.Scattering {
		t.Fatalf("omitted coefficients changed: %+v", m)
	}
	if m.ShadowStep != def.ShadowStep || m.MinTransmittance != def.MinTransmittance {
		t.Fatalf("omitted march parameters changed: %+v", m)
	}
}

func TestBuildMediumUnknownPhase(t *testing.T) {
	mc := MediumCfg{Phase: "mie"}
	if _, err := mc.BuildMedium(); err == nil {
		t.Fatal("expected an error for an unknown phase name")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadConfigBadJSON(t *testing.T) {
	if _, err := loadConfig(writeConfig(t, `{"width": `)); err == nil {
		t.Fatal("expected an error for truncated JSON")
	}
}

func TestCloudCfgDefaults(t *testing.T) {
	var cc CloudCfg
	p := cc.Params()
	def := DefaultCloud()
	if p.Radius != def.Radius || p.VoxelSize != def.VoxelSize || p.Density != def.Density {
		t.Fatalf("zero cloud config must yield defaults, got %+v", p)
	}

	cc.Radius = 2.5
	cc.VoxelSize = 0.1
	p = cc.Params()
	if p.Radius != 2.5 || p.VoxelSize != 0.1 {
		t.Fatalf("cloud overrides not applied: %+v", p)
	}
}
