package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir     string
	configPath  string
	projectsDir string
	logDir      string
	rulesFile   string
	assetDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	homeDir := filepath.Join(base, "home")
	if err := os.MkdirAll(homeDir, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	t.Setenv("HOME", homeDir)

	env := &cliTestEnv{
		baseDir:     base,
		projectsDir: filepath.Join(base, "projects"),
		logDir:      filepath.Join(base, "logs"),
		rulesFile:   filepath.Join(base, "mappings.txt"),
		assetDir:    filepath.Join(base, "assets"),
	}
	if err := os.MkdirAll(env.assetDir, 0o755); err != nil {
		t.Fatalf("mkdir assets: %v", err)
	}

	env.configPath = filepath.Join(homeDir, ".config", "rigforge", "config.toml")
	if err := os.MkdirAll(filepath.Dir(env.configPath), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	content := fmt.Sprintf(
		"[paths]\nprojects_dir = %q\nlog_dir = %q\nrules_file = %q\n",
		env.projectsDir,
		env.logDir,
		env.rulesFile,
	)
	if err := os.WriteFile(env.configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	return env
}

// writeAssets creates the four base assets plus any extra animation clips
// under the env asset directory, all sharing the vm_p08_sn_ultiger prefix.
func (env *cliTestEnv) writeAssets(t *testing.T, extraClips ...string) {
	t.Helper()
	names := []string{
		"vm_p08_sn_ultiger_idle.seanim",
		"vm_p08_sn_ultiger_pose_l.seanim",
		"vm_p08_sn_ultiger_pose_r.seanim",
		"vm_p08_sn_ultiger.semodel",
	}
	names = append(names, extraClips...)
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(env.assetDir, name), []byte("stub"), 0o644); err != nil {
			t.Fatalf("write asset %s: %v", name, err)
		}
	}
}

func (env *cliTestEnv) writeRules(t *testing.T, lines ...string) {
	t.Helper()
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(env.rulesFile, []byte(content), 0o644); err != nil {
		t.Fatalf("write rules: %v", err)
	}
}

func runCLI(t *testing.T, configPath string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}
