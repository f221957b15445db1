// Package runmeta persists a manifest describing one analysis run.
package runmeta

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

const manifestFileName = "run.yaml"

// Manifest records what one invocation read and produced.
type Manifest struct {
	ID        string        `yaml:"id"`
	CreatedAt time.Time     `yaml:"created_at"`
	Alpha     float64       `yaml:"alpha"`
	Seasons   []SeasonEntry `yaml:"seasons"`
}

// SeasonEntry is the per-season slice of the manifest. Report and Chart are
// paths relative to the manifest directory; Error is set when that season's
// pipeline failed.
type SeasonEntry struct {
	Label  string `yaml:"label"`
	Source string `yaml:"source"`
	Report string `yaml:"report,omitempty"`
	Chart  string `yaml:"chart,omitempty"`
	Error  string `yaml:"error,omitempty"`
}

// New constructs a manifest with a fresh ID. Call Save to persist.
func New(alpha float64) *Manifest {
	return &Manifest{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Alpha:     alpha,
	}
}

// Add appends one season's outcome.
func (m *Manifest) Add(e SeasonEntry) {
	m.Seasons = append(m.Seasons, e)
}

// Save writes run.yaml into dir, creating it if necessary.
func (m *Manifest) Save(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir output dir: %w", err)
	}
	b, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFileName), b, 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Load reads a run.yaml from dir.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, manifestFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	return &m, nil
}
