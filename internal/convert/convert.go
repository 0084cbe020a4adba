// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert runs the conversion pipeline: resolve the output path,
// extract the geometry payload, build the shape document, serialize, write.
// Each file is a stateless pass; a batch is the same pass applied to every
// .xaml entry of a directory, one file at a time.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"

	"github.com/pdiddy/shapeconv/internal/geometry"
	"github.com/pdiddy/shapeconv/internal/shape"
	"github.com/pdiddy/shapeconv/pkg/types"
)

// BatchResult holds the outcome of a conversion run.
type BatchResult struct {
	Converted int
	Failed    int
}

// Total returns the number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// File converts a single source document and writes the shape definition
// into cfg.OutputDir, which must already exist. A status line is printed to
// w either way. The returned record describes the written shape.
func File(cfg types.ConvertConfig, inputPath string, w io.Writer) (types.ConversionRecord, error) {
	name := BaseName(inputPath)

	rec, err := convertOne(cfg, inputPath)
	if err != nil {
		fmt.Fprintf(w, "%s: %s (%v)\n", types.ConversionFailed, name, err)
		return types.ConversionRecord{}, err
	}
	fmt.Fprintf(w, "%s: %s -> %s\n", rec.Status, name, rec.Output)
	return rec, nil
}

func convertOne(cfg types.ConvertConfig, inputPath string) (types.ConversionRecord, error) {
	outPath, err := ResolveOutputPath(inputPath, cfg.OutputDir)
	if err != nil {
		return types.ConversionRecord{}, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromFile(inputPath); err != nil {
		return types.ConversionRecord{}, fmt.Errorf("parsing %s: %w", inputPath, err)
	}

	payload, err := geometry.Extract(doc)
	if err != nil {
		return types.ConversionRecord{}, fmt.Errorf("%s: %w", inputPath, err)
	}

	name := BaseName(inputPath)
	out, err := shape.Build(payload, name)
	if err != nil {
		return types.ConversionRecord{}, fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := shape.WriteFile(outPath, out, renderOptions(cfg, payload.Kind)); err != nil {
		return types.ConversionRecord{}, err
	}

	return types.ConversionRecord{
		Name:     name,
		Status:   types.ConversionDone,
		Input:    inputPath,
		Output:   outPath,
		Encoding: payload.Kind,
	}, nil
}

// renderOptions maps the run configuration and the payload's encoding to
// serializer options. In the auto layout mode, node-based payloads get one
// attribute per line and attribute-based payloads do not.
func renderOptions(cfg types.ConvertConfig, kind types.GeometryKind) shape.RenderOptions {
	opts := shape.RenderOptions{Pretty: cfg.Pretty}
	switch cfg.AttrLayout {
	case types.AttrLayoutOn:
		opts.AttrsOwnLine = true
	case types.AttrLayoutOff:
		opts.AttrsOwnLine = false
	default:
		opts.AttrsOwnLine = kind == types.GeometryNodes
	}
	return opts
}

// Batch converts every .xaml file directly under inputDir, in directory
// entry order, printing per-file status to w followed by a summary. Under
// the abort policy the batch stops at the first failure and the error is
// returned; under the skip policy failures are counted and the batch runs
// to completion.
func Batch(cfg types.ConvertConfig, inputDir string, w io.Writer) (BatchResult, []types.ConversionRecord, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return BatchResult{}, nil, fmt.Errorf("reading input directory %s: %w", inputDir, err)
	}

	var result BatchResult
	var records []types.ConversionRecord
	for _, entry := range entries {
		if entry.IsDir() || !isShapeSource(entry.Name()) {
			continue
		}
		rec, err := File(cfg, filepath.Join(inputDir, entry.Name()), w)
		if err != nil {
			result.Failed++
			if cfg.OnError == types.ErrorAbort {
				return result, records, err
			}
			continue
		}
		result.Converted++
		records = append(records, rec)
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d failed (total: %d)\n",
		result.Converted, result.Failed, result.Total())
	return result, records, nil
}

// Run converts inputPath, which may be a single file or a directory, after
// creating the output directory. When cfg.ManifestPath is set, a YAML
// manifest of the successful conversions is written at the end.
func Run(cfg types.ConvertConfig, inputPath string, w io.Writer) (BatchResult, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return BatchResult{}, fmt.Errorf("input path %s: %w", inputPath, err)
	}

	if err := EnsureOutputDir(cfg.OutputDir); err != nil {
		return BatchResult{}, err
	}

	var result BatchResult
	var records []types.ConversionRecord
	if info.IsDir() {
		result, records, err = Batch(cfg, inputPath, w)
		if err != nil {
			return result, err
		}
	} else {
		rec, err := File(cfg, inputPath, w)
		if err != nil {
			return BatchResult{Failed: 1}, err
		}
		result.Converted = 1
		records = append(records, rec)
	}

	if cfg.ManifestPath != "" {
		if err := WriteManifest(cfg.ManifestPath, cfg.OutputDir, records); err != nil {
			return result, err
		}
		fmt.Fprintf(w, "Manifest written to %s\n", cfg.ManifestPath)
	}
	return result, nil
}

// isShapeSource reports whether name looks like a convertible input file.
// The extension check is case-insensitive.
func isShapeSource(name string) bool {
	return strings.EqualFold(filepath.Ext(name), outputExt)
}
