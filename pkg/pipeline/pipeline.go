// Package pipeline provides the core rendering pipeline for pktviz.
//
// This package implements the complete parse → layout → render pipeline that
// is shared by the CLI and the HTTP server. Centralizing the logic keeps
// behavior consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read packet diagram source into a diagram.Diagram
//  2. Layout: Wrap fields into rows and compute pixel geometry
//  3. Render: Generate output in various formats (SVG, PNG, PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Source:  src,
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/pktviz/pktviz/pkg/cache"
	"github.com/pktviz/pktviz/pkg/diagram"
	"github.com/pktviz/pktviz/pkg/errors"
	"github.com/pktviz/pktviz/pkg/layout"
	"github.com/pktviz/pktviz/pkg/render/grid"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Server
// =============================================================================

// Visualization types.
const (
	VizTypeGrid     = "grid"
	VizTypeNodelink = "nodelink"
)

// Visual styles.
const (
	StyleClassic   = "classic"
	StyleBlueprint = "blueprint"
)

const (
	// DefaultVizType is the default visualization type.
	DefaultVizType = VizTypeGrid

	// DefaultStyle is the default visual style.
	DefaultStyle = StyleClassic

	// DefaultScale is the default PNG rasterization scale.
	DefaultScale = 2.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
}

// ValidStyles is the set of supported visual styles.
var ValidStyles = map[string]bool{
	StyleClassic:   true,
	StyleBlueprint: true,
}

// ValidVizTypes is the set of supported visualization types.
var ValidVizTypes = map[string]bool{
	VizTypeGrid:     true,
	VizTypeNodelink: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the rendering pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options. Source is diagram text; SourcePath reads a file
	// instead. Exactly one must be set.
	Source     string `json:"source,omitempty"`
	SourcePath string `json:"source_path,omitempty"`
	Refresh    bool   `json:"refresh,omitempty"`

	// Layout options. Zero values defer to the layout defaults. The
	// paddings are pointers because an explicit 0 is a valid setting.
	BitsPerRow int   `json:"bits_per_row,omitempty"`
	BitWidth   int   `json:"bit_width,omitempty"`
	RowHeight  int   `json:"row_height,omitempty"`
	PaddingX   *int  `json:"padding_x,omitempty"`
	PaddingY   *int  `json:"padding_y,omitempty"`
	ShowBits   *bool `json:"show_bits,omitempty"`

	// Render options
	VizType  string   `json:"viz_type,omitempty"`
	Formats  []string `json:"formats,omitempty"`
	Style    string   `json:"style,omitempty"`
	Scale    float64  `json:"scale,omitempty"`
	Detailed bool     `json:"detailed,omitempty"` // bit counts in nodelink labels

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Diagram is the parsed packet diagram.
	Diagram *diagram.Diagram

	// DiagramHash is the content hash of the diagram source.
	DiagramHash string

	// Layout contains the positioned cells. Empty for nodelink runs,
	// which render straight from the diagram.
	Layout grid.Layout

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	FieldCount int
	WordCount  int
	TotalBits  int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	ParseHit  bool // Whether the parsed diagram came from cache
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: classic, blueprint)", style)
	}
	return nil
}

// ValidateVizType checks that a visualization type is valid.
func ValidateVizType(vizType string) error {
	if !ValidVizTypes[vizType] {
		return errors.New(errors.ErrCodeInvalidVizType,
			"invalid viz_type: %q (must be one of: grid, nodelink)", vizType)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if o.Source == "" && o.SourcePath == "" {
		return errors.New(errors.ErrCodeInvalidOptions, "source or source_path is required")
	}
	if o.Source != "" && o.SourcePath != "" {
		return errors.New(errors.ErrCodeInvalidOptions, "source and source_path are mutually exclusive")
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetLayoutDefaults sets default values for layout computation.
// Dimension fields keep their zero values here; LayoutOptions resolves
// those against the layout package defaults.
func (o *Options) SetLayoutDefaults() {
	if o.VizType == "" {
		o.VizType = DefaultVizType
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	return ValidateVizType(o.VizType)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
	if err := ValidateVizType(o.VizType); err != nil {
		return err
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return ValidateStyle(o.Style)
}

// IsGrid returns true if this is a grid visualization.
func (o *Options) IsGrid() bool {
	return o.VizType == "" || o.VizType == VizTypeGrid
}

// IsNodelink returns true if this is a nodelink visualization.
func (o *Options) IsNodelink() bool {
	return o.VizType == VizTypeNodelink
}

// LayoutOptions converts the pipeline options to layout options.
func (o *Options) LayoutOptions() layout.Options {
	return layout.Options{
		BitsPerRow: o.BitsPerRow,
		BitWidth:   o.BitWidth,
		RowHeight:  o.RowHeight,
		PaddingX:   o.PaddingX,
		PaddingY:   o.PaddingY,
		ShowBits:   o.ShowBits,
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
// Keys are built from resolved values so explicit defaults and implicit
// defaults share a cache entry.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	resolved := o.LayoutOptions().Resolve()
	return cache.LayoutKeyOpts{
		BitsPerRow: resolved.BitsPerRow,
		BitWidth:   resolved.BitWidth,
		RowHeight:  resolved.RowHeight,
		PaddingX:   resolved.PadX(),
		PaddingY:   resolved.PadY(),
		ShowBits:   resolved.BitsShown(),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:   format,
		Style:    o.Style,
		VizType:  o.VizType,
		Detailed: o.Detailed,
		Scale:    o.Scale,
	}
}
