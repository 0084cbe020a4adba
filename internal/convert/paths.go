// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// outputExt is the extension of written shape definition files.
const outputExt = ".xaml"

// collisionSuffix disambiguates the output name when input and output
// directories coincide.
const collisionSuffix = "_converted"

// BaseName returns the input file's name without directory or extension.
// It is used verbatim as the shape's display name.
func BaseName(inputPath string) string {
	base := filepath.Base(inputPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResolveOutputPath computes where the converted shape for inputPath is
// written. The candidate is <outputDir>/<base>.xaml; if that resolves to the
// same absolute path as the input itself, the collision suffix is appended
// so the source file is never overwritten.
func ResolveOutputPath(inputPath, outputDir string) (string, error) {
	base := BaseName(inputPath)
	candidate := filepath.Join(outputDir, base+outputExt)

	absCandidate, err := filepath.Abs(candidate)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", candidate, err)
	}
	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", inputPath, err)
	}
	if absCandidate == absInput {
		return filepath.Join(outputDir, base+collisionSuffix+outputExt), nil
	}
	return candidate, nil
}

// EnsureOutputDir creates dir and any missing parents. Idempotent: an
// existing directory is not an error.
func EnsureOutputDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}
	return nil
}
