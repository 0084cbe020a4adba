// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data model for the shapeconv pipeline:
// geometry payloads extracted from source documents, per-file conversion
// outcomes, and the configuration threaded through every stage.
package types

// GeometryKind discriminates the two equivalent encodings of path geometry
// a source document may use.
type GeometryKind string

const (
	// GeometryAttribute means the geometry was a single serialized string
	// in the path element's Data attribute.
	GeometryAttribute GeometryKind = "attribute"

	// GeometryNodes means the geometry was the inner XML of a nested
	// Path.Data child element.
	GeometryNodes GeometryKind = "nodes"
)

// GeometryPayload is the tagged geometry value extracted from one source
// document. Exactly one kind is produced per document; the payload is
// immutable once extracted and the output encoding mirrors Kind.
type GeometryPayload struct {
	Kind GeometryKind
	// Data is the attribute value for GeometryAttribute, or the raw XML
	// fragment (serialized inner content) for GeometryNodes.
	Data string
}

// ConversionStatus indicates the outcome of converting one input file.
type ConversionStatus string

const (
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// ConversionRecord describes one completed conversion for the run manifest.
type ConversionRecord struct {
	// Name is the shape display name, derived from the input base name.
	Name string `yaml:"name"`

	// Status is the conversion outcome. Manifest entries are only written
	// for files that converted, so persisted records carry ConversionDone.
	Status ConversionStatus `yaml:"status"`

	// Input is the source document path as given on the command line.
	Input string `yaml:"input"`

	// Output is the written shape definition path.
	Output string `yaml:"output"`

	// Encoding records which geometry encoding the source used (and
	// therefore which the output uses).
	Encoding GeometryKind `yaml:"encoding"`
}
