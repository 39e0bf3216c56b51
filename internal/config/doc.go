// Package config loads, normalizes, and validates rigforge configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and centralizes every knob the CLI needs:
// project output directories, the rules file location, per-file animation
// defaults, and the IK bone chain. Always obtain settings through this
// package so downstream code receives sanitized paths and clear validation
// errors.
package config
