package assets

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// File extensions understood by the rig tool.
const (
	ExtAnimation = ".seanim"
	ExtSkeleton  = ".semodel"
)

// Suffix conventions used to classify base assets during a directory scan.
const (
	suffixIdle      = "_idle"
	suffixLeftPose  = "_pose_l"
	suffixRightPose = "_pose_r"
)

// Options names the inputs for one collection pass. Explicit paths win over
// anything discovered in ScanDir.
type Options struct {
	Idle      string
	LeftPose  string
	RightPose string
	Skeleton  string
	Additive  []string
	Normal    []string
	ScanDir   string
}

// Collection is the classified set of asset files for one project. Built
// once by Collect and treated as immutable afterwards.
type Collection struct {
	Idle      string
	LeftPose  string
	RightPose string
	Skeleton  string
	Additive  []string
	Normal    []string
}

// Collect classifies the configured assets, filling gaps from ScanDir when
// one is given. All four base assets are required; additive clips found by
// scanning are appended in natural order after any explicit ones.
func Collect(opts Options) (Collection, error) {
	col := Collection{
		Idle:      strings.TrimSpace(opts.Idle),
		LeftPose:  strings.TrimSpace(opts.LeftPose),
		RightPose: strings.TrimSpace(opts.RightPose),
		Skeleton:  strings.TrimSpace(opts.Skeleton),
		Additive:  append([]string(nil), opts.Additive...),
		Normal:    append([]string(nil), opts.Normal...),
	}

	if opts.ScanDir != "" {
		if err := col.scan(opts.ScanDir); err != nil {
			return Collection{}, err
		}
	}

	if err := col.validate(); err != nil {
		return Collection{}, err
	}
	return col, nil
}

func (c *Collection) scan(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("scan asset directory: %w", err)
	}

	known := make(map[string]struct{})
	explicit := []string{c.Idle, c.LeftPose, c.RightPose, c.Skeleton}
	explicit = append(explicit, c.Additive...)
	explicit = append(explicit, c.Normal...)
	for _, path := range explicit {
		if path != "" {
			known[filepath.Clean(path)] = struct{}{}
		}
	}

	var scanned []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if _, ok := known[filepath.Clean(path)]; ok {
			continue
		}
		stem := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ExtSkeleton:
			if c.Skeleton == "" {
				c.Skeleton = path
			}
		case ExtAnimation:
			switch {
			case strings.HasSuffix(stem, suffixIdle):
				if c.Idle == "" {
					c.Idle = path
				}
			case strings.HasSuffix(stem, suffixLeftPose):
				if c.LeftPose == "" {
					c.LeftPose = path
				}
			case strings.HasSuffix(stem, suffixRightPose):
				if c.RightPose == "" {
					c.RightPose = path
				}
			default:
				scanned = append(scanned, path)
			}
		}
	}

	SortClips(scanned)
	c.Additive = append(c.Additive, scanned...)
	return nil
}

func (c *Collection) validate() error {
	required := []struct {
		label string
		path  string
		ext   string
	}{
		{"idle animation", c.Idle, ExtAnimation},
		{"left pose file", c.LeftPose, ExtAnimation},
		{"right pose file", c.RightPose, ExtAnimation},
		{"skeleton file", c.Skeleton, ExtSkeleton},
	}
	for _, req := range required {
		if req.path == "" {
			return fmt.Errorf("missing %s (%s)", req.label, req.ext)
		}
		if !strings.EqualFold(filepath.Ext(req.path), req.ext) {
			return fmt.Errorf("%s %q: expected a %s file", req.label, req.path, req.ext)
		}
		if err := statFile(req.path); err != nil {
			return fmt.Errorf("%s: %w", req.label, err)
		}
	}
	for _, clip := range c.Additive {
		if err := statFile(clip); err != nil {
			return fmt.Errorf("additive clip: %w", err)
		}
	}
	for _, clip := range c.Normal {
		if err := statFile(clip); err != nil {
			return fmt.Errorf("normal clip: %w", err)
		}
	}
	return nil
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%q is a directory", path)
	}
	return nil
}

// Prefix derives the shared asset prefix: the idle file's base name with the
// extension stripped and the final underscore segment removed. Derived once
// per project and immutable thereafter.
func (c Collection) Prefix() (string, error) {
	base := filepath.Base(c.Idle)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if idx := strings.LastIndex(stem, "_"); idx > 0 {
		stem = stem[:idx]
	}
	if stem == "" {
		return "", errors.New("cannot derive asset prefix from idle animation name")
	}
	return stem, nil
}

var clipCollator = collatorForClips()

// SortClips orders clip paths by base name with numeric-aware collation, so
// clip_2 sorts before clip_10.
func SortClips(paths []string) {
	sort.SliceStable(paths, func(i, j int) bool {
		return clipCollator.CompareString(filepath.Base(paths[i]), filepath.Base(paths[j])) < 0
	})
}
