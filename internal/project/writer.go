package project

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"rigforge/internal/textutil"
)

// Result describes a completed write.
type Result struct {
	RunID   string
	Path    string
	Entries int
}

// RandomColors returns a ColorFunc drawing 8-digit layer colors.
func RandomColors(rng *rand.Rand) ColorFunc {
	return func() int {
		return rng.Intn(90000000) + 10000000
	}
}

// ProjectFileName is the .aprj file name for a collection: the idle file's
// base name with the extension swapped, sanitized for the filesystem.
func ProjectFileName(idlePath string) string {
	stem := strings.TrimSuffix(filepath.Base(idlePath), filepath.Ext(idlePath))
	return textutil.SanitizeFileName(stem) + ".aprj"
}

// Write serializes the document into dir under a file lock. A second writer
// targeting the same project fails fast instead of interleaving output.
func Write(doc *Document, dir, idlePath string) (Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create projects directory: %w", err)
	}

	path := filepath.Join(dir, ProjectFileName(idlePath))

	lock := flock.New(path + ".lock")
	locked, err := lock.TryLock()
	if err != nil {
		return Result{}, fmt.Errorf("acquire project lock: %w", err)
	}
	if !locked {
		return Result{}, fmt.Errorf("project %s is being written by another rigforge run", path)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return Result{}, fmt.Errorf("encode project: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Result{}, fmt.Errorf("write project: %w", err)
	}

	return Result{
		RunID:   uuid.NewString(),
		Path:    path,
		Entries: len(doc.Animations.Values),
	}, nil
}
