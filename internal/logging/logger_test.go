package logging_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rigforge/internal/logging"
)

func TestNewConsoleWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Level:       "debug",
		Format:      "console",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	logger.Info("project written", "entries", 4, "path", "/tmp/out.aprj")
	logger.Debug("resolved clip", "clip", "walk to sprint")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, "INFO project written entries=4") {
		t.Fatalf("missing info line, got:\n%s", text)
	}
	if !strings.Contains(text, `clip="walk to sprint"`) {
		t.Fatalf("values with spaces should be quoted, got:\n%s", text)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Level:       "warn",
		Format:      "console",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("visible")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if strings.Contains(string(data), "hidden") {
		t.Fatal("info line should be filtered at warn level")
	}
	if !strings.Contains(string(data), "WARN visible") {
		t.Fatalf("warn line missing, got:\n%s", data)
	}
}

func TestNewJSONFormat(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "out.log")
	logger, err := logging.New(logging.Options{
		Level:       "info",
		Format:      "json",
		OutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	logger.Info("done", "count", 2)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"done"`) {
		t.Fatalf("unexpected json output:\n%s", data)
	}
	if !strings.Contains(string(data), `"level":"info"`) {
		t.Fatalf("expected lowercase level key:\n%s", data)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopDiscards(t *testing.T) {
	logger := logging.Nop()
	logger.Error("nothing should happen")
}
