package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateIK(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.ProjectsDir) == "" {
		return errors.New("paths.projects_dir must be set")
	}
	if strings.TrimSpace(c.Paths.RulesFile) == "" {
		return errors.New("paths.rules_file must be set")
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.Framerate <= 0 {
		return errors.New("output.framerate must be positive")
	}
	if c.Output.Framerate > 960 {
		return fmt.Errorf("output.framerate %d is not a plausible animation framerate", c.Output.Framerate)
	}
	if !strings.HasPrefix(c.Output.Format, ".") {
		return fmt.Errorf("output.format must be a file extension starting with '.', got %q", c.Output.Format)
	}
	return nil
}

func (c *Config) validateIK() error {
	if c.IK.EnableLeftHand {
		for name, value := range map[string]string{
			"ik.left_start_bone":  c.IK.LeftStartBone,
			"ik.left_mid_bone":    c.IK.LeftMidBone,
			"ik.left_end_bone":    c.IK.LeftEndBone,
			"ik.left_target_bone": c.IK.LeftTargetBone,
		} {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("%s must be set when ik.enable_left_hand is true", name)
			}
		}
	}
	if c.IK.EnableRightHand {
		for name, value := range map[string]string{
			"ik.right_start_bone":  c.IK.RightStartBone,
			"ik.right_mid_bone":    c.IK.RightMidBone,
			"ik.right_end_bone":    c.IK.RightEndBone,
			"ik.right_target_bone": c.IK.RightTargetBone,
		} {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("%s must be set when ik.enable_right_hand is true", name)
			}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
