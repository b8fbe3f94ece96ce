package gvoxels

import (
	"fmt"
	"time"

	"github.com/golang/glog"
)

// Run loads a scene config, voxelizes the procedural cloud, renders one
// frame and writes it out as PNG.
func Run(cfgPath string) error {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return err
	}

	scene, err := cfg.BuildScene()
	if err != nil {
		return fmt.Errorf("while building scene: %w", err)
	}
	medium, err := cfg.Medium.BuildMedium()
	if err != nil {
		return fmt.Errorf("while building medium: %w", err)
	}

	start := time.Now()
	tree := BuildCloud(cfg.Cloud.Params())
	glog.Infof("voxelized cloud in %s", time.Since(start))

	buf := make([]uint32, scene.Width*scene.Height)
	start = time.Now()
	if err := Render(tree, ChDensity, buf, &scene, &medium); err != nil {
		return fmt.Errorf("while rendering: %w", err)
	}
	glog.Infof("rendered %dx%d in %s", scene.Width, scene.Height, time.Since(start))

	if err := SavePNG(buf, scene.Width, scene.Height, cfg.PNGOut, cfg.Gamma); err != nil {
		return fmt.Errorf("while writing %s: %w", cfg.PNGOut, err)
	}
	glog.Infof("saved %s", cfg.PNGOut)
	return nil
}
