package mapping

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultRules is the built-in sprint/mantle/slide/crawl table shipped with
// the tool. Every line parses under the validated-agreement rule, so a fresh
// rules file starts clean in `rigforge check`.
var defaultRules = []string{
	"# rigforge mapping rules",
	"# <key1>[,<key2>...] <output_name>,<type>[,<type>...]",
	"# types: 0 normal, 1 additive, 2 gesture, 3 gesture_pose",
	"",
	"walk_offset_additive,walk_to_sprint sprint_in,1,1",
	"sprint_offset_additive,sprint_loop sprint_loop,1,1",
	"walk_offset_additive,sprint_to_walk sprint_out,1,1",
	"walk_offset_additive,walk_to_super_sprint super_sprint_in,1,1",
	"super_sprint_offset_additive,super_sprint_loop super_sprint_loop,1,1",
	"walk_offset_additive,super_sprint_to_walk super_sprint_out,1,1",
	"walk_offset_additive,jog_loop walk_f,1,1",
	"mantle_48_on,mantle_48_on_rhand mantle_48_on,2",
	"mantle_48_over_back,mantle_48_over_back_rhand mantle_48_over,2",
	"mantle_48_over_l,mantle_48_over_l_rhand mantle_48_over_l,2",
	"mantle_48_over_r,mantle_48_over_r_rhand mantle_48_over_r,2",
	"slide_in,slide_in_rhand slide_in,2",
	"slide_loop,slide_loop_rhand slide_loop,2",
	"slide_out,slide_out_rhand slide_out,2",
	"crawl_f crawl_f,1",
	"crawl_in crawl_in,1",
	"crawl_l crawl_l,1",
	"crawl_r crawl_r,1",
}

// DefaultRules returns a copy of the built-in rule table, one line per rule.
func DefaultRules() []string {
	out := make([]string, len(defaultRules))
	copy(out, defaultRules)
	return out
}

// LoadRules reads a rules file and returns its raw lines so callers can
// report parse errors against original line numbers.
func LoadRules(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(strings.TrimRight(text, "\n"), "\n"), nil
}

// SaveRules writes rule lines to path, creating parent directories.
func SaveRules(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create rules directory: %w", err)
		}
	}
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write rules file: %w", err)
	}
	return nil
}
