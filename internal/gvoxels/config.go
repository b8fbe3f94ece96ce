package gvoxels

import (
	"encoding/json"
	"fmt"
	"os"
)

type CameraCfg struct {
	From   Point3 `json:"from"`
	To     Point3 `json:"to"`
	Up     Vec3   `json:"up,omitempty"`
	FovDeg Real   `json:"fovDeg,omitempty"`
}

type LightCfg struct {
	Pos   Point3 `json:"pos"`
	Color RGB    `json:"color"`
}

type MediumCfg struct {
	Absorption       *RGB   `json:"absorption,omitempty"`
	Scattering       *RGB   `json:"scattering,omitempty"`
	StepSize         Real   `json:"stepSize,omitempty"`
	ShadowStep       Real   `json:"shadowStep,omitempty"`
	MinTransmittance Real   `json:"minTransmittance,omitempty"`
	Phase            string `json:"phase,omitempty"`
	PhaseG           Real   `json:"phaseG,omitempty"`
	PhaseG2          Real   `json:"phaseG2,omitempty"`
	PhaseBlend       Real   `json:"phaseBlend,omitempty"`
}

type CloudCfg struct {
	Center    Point3 `json:"center"`
	Radius    Real   `json:"radius,omitempty"`
	NoiseAmp  Real   `json:"noiseAmp,omitempty"`
	Density   Real   `json:"density,omitempty"`
	VoxelSize Real   `json:"voxelSize,omitempty"`
	NoiseFreq Real   `json:"noiseFreq,omitempty"`
}

type Config struct {
	Width  int       `json:"width,omitempty"`
	Height int       `json:"height,omitempty"`
	PNGOut string    `json:"pngOut,omitempty"`
	Gamma  Real      `json:"gamma,omitempty"`
	Camera CameraCfg `json:"camera"`
	Light  LightCfg  `json:"light"`
	Medium MediumCfg `json:"medium,omitempty"`
	Cloud  CloudCfg  `json:"cloud,omitempty"`
}

// BuildMedium validates and constructs the runtime medium parameters,
// filling omitted fields with the documented defaults.
func (mc MediumCfg) BuildMedium() (MediumParams, error) {
	m := DefaultMedium()
	if mc.Absorption != nil {
		m.Absorption = *mc.Absorption
	}
	if mc.Scattering != nil {
		m.Scattering = *mc.Scattering
	}
	if mc.StepSize > 0 {
		m.StepSize = mc.StepSize
	}
	if mc.ShadowStep > 0 {
		m.ShadowStep = mc.ShadowStep
	}
	if mc.MinTransmittance > 0 {
		m.MinTransmittance = mc.MinTransmittance
	}
	phase, err := ParsePhaseKind(mc.Phase)
	if err != nil {
		return m, err
	}
	m.Phase = phase
	m.PhaseG = mc.PhaseG
	m.PhaseG2 = mc.PhaseG2
	m.PhaseBlend = mc.PhaseBlend
	if err := m.Validate(); err != nil {
		return m, err
	}
	return m, nil
}

// Params fills omitted cloud fields with defaults.
func (cc CloudCfg) Params() CloudParams {
	p := DefaultCloud()
	p.Center = cc.Center
	if cc.Radius > 0 {
		p.Radius = cc.Radius
	}
	if cc.NoiseAmp > 0 {
		p.NoiseAmp = cc.NoiseAmp
	}
	if cc.Density > 0 {
		p.Density = cc.Density
	}
	if cc.VoxelSize > 0 {
		p.VoxelSize = cc.VoxelSize
	}
	if cc.NoiseFreq > 0 {
		p.NoiseFreq = cc.NoiseFreq
	}
	return p
}

// BuildScene assembles the render snapshot from the config.
func (cfg *Config) BuildScene() (SceneParams, error) {
	s := SceneParams{
		Camera: Camera{
			From:   cfg.Camera.From,
			To:     cfg.Camera.To,
			Up:     cfg.Camera.Up,
			FovDeg: cfg.Camera.FovDeg,
		},
		Light:  Light{Pos: cfg.Light.Pos, Color: cfg.Light.Color},
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("while parsing %s: %w", path, err)
	}
	// Defaults / validation
	if cfg.Width <= 0 {
		cfg.Width = OutWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = OutHeight
	}
	if cfg.PNGOut == "" {
		cfg.PNGOut = PNGOut
	}
	if cfg.Gamma <= 0 {
		cfg.Gamma = Gamma
	}
	if cfg.Camera.FovDeg <= 0 {
		cfg.Camera.FovDeg = 30
	}
	if (cfg.Camera.Up == Vec3{}) {
		cfg.Camera.Up = Vec3{0, 1, 0}
	}
	if cfg.Camera.From == cfg.Camera.To {
		cfg.Camera.From = Point3{0, 1.0, 5.0}
	}
	if (cfg.Light.Color == RGB{}) {
		cfg.Light.Color = RGB{1, 1, 1}
	}
	if (cfg.Light.Pos == Point3{}) {
		cfg.Light.Pos = Point3{10, 10, 5}
	}
	DebugLog("Loaded config from %s: %dx%d, out=%s", path, cfg.Width, cfg.Height, cfg.PNGOut)
	return &cfg, nil
}
