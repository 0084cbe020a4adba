// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/shapeconv/pkg/types"
)

// Manifest is the on-disk record of one conversion run: which shapes were
// produced, from where, and in which encoding. It lets a shape-pack author
// audit a batch without reopening every output file.
type Manifest struct {
	GeneratedAt time.Time                `yaml:"generated_at"`
	OutputDir   string                   `yaml:"output_dir"`
	Shapes      []types.ConversionRecord `yaml:"shapes"`
}

// WriteManifest saves the run's conversion records as YAML at path.
func WriteManifest(path, outputDir string, records []types.ConversionRecord) error {
	m := Manifest{
		GeneratedAt: time.Now().UTC(),
		OutputDir:   outputDir,
		Shapes:      records,
	}
	data, err := yaml.Marshal(&m)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a previously written manifest.
func ReadManifest(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return m, nil
}
