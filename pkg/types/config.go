// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AttrLayout selects how the serializer lays out element attributes when
// pretty-printing.
type AttrLayout string

const (
	// AttrLayoutAuto couples attribute layout to the geometry encoding:
	// node-based payloads get one attribute per line, attribute-based
	// payloads do not. This reproduces the observed behavior of the
	// original converter.
	AttrLayoutAuto AttrLayout = "auto"

	// AttrLayoutOn forces one attribute per line for every element.
	AttrLayoutOn AttrLayout = "on"

	// AttrLayoutOff keeps all attributes on the element's start-tag line.
	AttrLayoutOff AttrLayout = "off"
)

// Valid reports whether l is one of the recognized layout modes.
func (l AttrLayout) Valid() bool {
	switch l {
	case AttrLayoutAuto, AttrLayoutOn, AttrLayoutOff:
		return true
	}
	return false
}

// ErrorPolicy selects how a batch run reacts to a file that fails to convert.
type ErrorPolicy string

const (
	// ErrorAbort stops the batch at the first failure.
	ErrorAbort ErrorPolicy = "abort"

	// ErrorSkip reports the failure and continues with the next file.
	ErrorSkip ErrorPolicy = "skip"
)

// Valid reports whether p is one of the recognized policies.
func (p ErrorPolicy) Valid() bool {
	return p == ErrorAbort || p == ErrorSkip
}

// ConvertConfig holds all settings for a conversion run. It is built once by
// the CLI layer and passed explicitly into every pipeline stage; no stage
// reads configuration from ambient state.
type ConvertConfig struct {
	// OutputDir is the directory converted shape definitions are written
	// to. Created (with parents) if missing.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// Pretty enables indented, human-readable output. When false the
	// document is rendered in compact form.
	Pretty bool `json:"pretty" yaml:"pretty"`

	// AttrLayout controls attribute placement when pretty-printing.
	AttrLayout AttrLayout `json:"attr_layout" yaml:"attr_layout"`

	// OnError selects the batch failure policy.
	OnError ErrorPolicy `json:"on_error" yaml:"on_error"`

	// ManifestPath, if non-empty, is where a YAML manifest of the run's
	// conversions is written after the batch completes.
	ManifestPath string `json:"manifest_path,omitempty" yaml:"manifest_path,omitempty"`
}

// DefaultConvertConfig returns the configuration used when neither flags nor
// a config file override a setting.
func DefaultConvertConfig() ConvertConfig {
	return ConvertConfig{
		OutputDir:  "output",
		Pretty:     false,
		AttrLayout: AttrLayoutAuto,
		OnError:    ErrorAbort,
	}
}
