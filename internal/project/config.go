package project

import (
	"errors"
	"strings"

	"rigforge/internal/assets"
	appconfig "rigforge/internal/config"
)

// Defaults carries the per-entry animation settings.
type Defaults struct {
	OutputFramerate         int
	EnableLeftHandIK        bool
	EnableRightHandIK       bool
	UseExperimentalFeatures bool
	LeftIKTargetBone        string
	RightIKTargetBone       string
}

// Bones names the IK chains written into the project header.
type Bones struct {
	LeftStart, LeftMid, LeftEnd, LeftTarget     string
	RightStart, RightMid, RightEnd, RightTarget string
}

// Config is the immutable input for one build: the collected assets, the
// derived prefix, and every setting the document needs. Assemble it once and
// pass it by value.
type Config struct {
	Assets    assets.Collection
	Prefix    string
	OutputDir string

	Defaults Defaults
	Bones    Bones

	// Global overrides beat Defaults target bones on every entry when set.
	LeftTargetOverride  string
	RightTargetOverride string

	OutputFormat   string
	OutputPrefix   string
	OutputSuffix   string
	EnableTrimming bool
}

// NewConfig assembles a build config from the application configuration, a
// collected asset set, and its derived prefix.
func NewConfig(cfg *appconfig.Config, col assets.Collection, prefix, outputDir string) (Config, error) {
	if strings.TrimSpace(prefix) == "" {
		return Config{}, errors.New("asset prefix must not be empty")
	}
	if strings.TrimSpace(outputDir) == "" {
		outputDir = cfg.Paths.ProjectsDir
	}
	return Config{
		Assets:    col,
		Prefix:    prefix,
		OutputDir: outputDir,
		Defaults: Defaults{
			OutputFramerate:         cfg.Output.Framerate,
			EnableLeftHandIK:        cfg.IK.EnableLeftHand,
			EnableRightHandIK:       cfg.IK.EnableRightHand,
			UseExperimentalFeatures: cfg.Output.Experimental,
			LeftIKTargetBone:        cfg.IK.LeftTargetBone,
			RightIKTargetBone:       cfg.IK.RightTargetBone,
		},
		Bones: Bones{
			LeftStart:   cfg.IK.LeftStartBone,
			LeftMid:     cfg.IK.LeftMidBone,
			LeftEnd:     cfg.IK.LeftEndBone,
			LeftTarget:  cfg.IK.LeftTargetBone,
			RightStart:  cfg.IK.RightStartBone,
			RightMid:    cfg.IK.RightMidBone,
			RightEnd:    cfg.IK.RightEndBone,
			RightTarget: cfg.IK.RightTargetBone,
		},
		LeftTargetOverride:  cfg.IK.LeftTargetOverride,
		RightTargetOverride: cfg.IK.RightTargetOverride,
		OutputFormat:        cfg.Output.Format,
		OutputPrefix:        cfg.Output.Prefix,
		OutputSuffix:        cfg.Output.Suffix,
		EnableTrimming:      cfg.Output.Trimming,
	}, nil
}

func (c Config) leftTarget() string {
	if c.LeftTargetOverride != "" {
		return c.LeftTargetOverride
	}
	return c.Defaults.LeftIKTargetBone
}

func (c Config) rightTarget() string {
	if c.RightTargetOverride != "" {
		return c.RightTargetOverride
	}
	return c.Defaults.RightIKTargetBone
}
