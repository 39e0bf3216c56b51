package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeOutput()
	c.normalizeIK()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.ProjectsDir) == "" {
		c.Paths.ProjectsDir = defaultProjectsDir
	}
	if c.Paths.ProjectsDir, err = expandPath(c.Paths.ProjectsDir); err != nil {
		return fmt.Errorf("paths.projects_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if strings.TrimSpace(c.Paths.RulesFile) == "" {
		c.Paths.RulesFile = defaultRulesFile
	}
	if c.Paths.RulesFile, err = expandPath(c.Paths.RulesFile); err != nil {
		return fmt.Errorf("paths.rules_file: %w", err)
	}
	return nil
}

func (c *Config) normalizeOutput() {
	if c.Output.Framerate <= 0 {
		c.Output.Framerate = defaultFramerate
	}
	c.Output.Format = strings.TrimSpace(c.Output.Format)
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	if !strings.HasPrefix(c.Output.Format, ".") {
		c.Output.Format = "." + c.Output.Format
	}
	c.Output.Prefix = strings.TrimSpace(c.Output.Prefix)
	c.Output.Suffix = strings.TrimSpace(c.Output.Suffix)
}

func (c *Config) normalizeIK() {
	trim := func(value *string, fallback string) {
		*value = strings.TrimSpace(*value)
		if *value == "" {
			*value = fallback
		}
	}
	trim(&c.IK.LeftStartBone, defaultLeftStartBone)
	trim(&c.IK.LeftMidBone, defaultLeftMidBone)
	trim(&c.IK.LeftEndBone, defaultLeftEndBone)
	trim(&c.IK.LeftTargetBone, defaultLeftTargetBone)
	trim(&c.IK.RightStartBone, defaultRightStartBone)
	trim(&c.IK.RightMidBone, defaultRightMidBone)
	trim(&c.IK.RightEndBone, defaultRightEndBone)
	trim(&c.IK.RightTargetBone, defaultRightTargetBone)
	c.IK.LeftTargetOverride = strings.TrimSpace(c.IK.LeftTargetOverride)
	c.IK.RightTargetOverride = strings.TrimSpace(c.IK.RightTargetOverride)
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
