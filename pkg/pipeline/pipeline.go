// Package pipeline provides the load → layout → render flow for course
// catalogs.
//
// This package is shared by the CLI and the HTTP server so both validate,
// lay out and render catalogs the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Read and decode a catalog file (JSON, TOML or YAML)
//  2. Layout: Validate, build the prerequisite graph and compute positions
//  3. Render: Generate output in various formats (SVG, PNG, PDF, DOT, HTML, JSON)
//
// Only rendered artifacts are cached. Layouts are cheap and are recomputed on
// every run.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Path:      "catalog.json",
//	    Direction: "LR",
//	    Formats:   []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	c, err := runner.Load(ctx, "catalog.json")
//	l, err := runner.Layout(ctx, c, opts)
//	artifacts, err := runner.Render(ctx, l, opts)
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/coursegraph/pkg/cache"
	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/layout"
	"github.com/matzehuels/coursegraph/pkg/errors"
	"github.com/matzehuels/coursegraph/pkg/graph"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

// DefaultDirection is the default layout direction.
const DefaultDirection = layout.TopToBottom

// DefaultScale is the PNG resolution multiplier.
const DefaultScale = 2.0

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatDOT  = "dot"
	FormatHTML = "html"
	FormatJSON = "json"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatDOT:  true,
	FormatHTML: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Load options
	Path string `json:"path,omitempty"`

	// Layout options
	Direction      string        `json:"direction,omitempty"`
	Config         layout.Config `json:"config,omitempty"`
	SkipValidation bool          `json:"skip_validation,omitempty"`
	Detailed       bool          `json:"detailed,omitempty"` // Embed full course records in layout nodes
	Collapsed      bool          `json:"collapsed,omitempty"`
	Expand         []string      `json:"expand,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Title   string   `json:"title,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Refresh bool     `json:"refresh,omitempty"` // Bypass the artifact cache
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Catalog    *catalog.Catalog
	Graph      *dag.Graph
	Layout     graph.Layout
	LayoutHash string

	// Dangling lists prerequisites that name unknown courses.
	Dangling []catalog.Reference

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	CourseCount int
	EdgeCount   int
	LevelCount  int
	LoadTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, dot, html, json)", format)
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

// ParseFormats splits a comma-separated format list, trimming spaces and
// dropping empty entries.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// =============================================================================
// Options Methods
// =============================================================================

// SetLayoutDefaults fills unset layout options.
func (o *Options) SetLayoutDefaults() {
	if o.Direction == "" {
		o.Direction = DefaultDirection.String()
	}
	o.Config = o.Config.WithDefaults()
}

// SetRenderDefaults fills unset render options.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Scale <= 0 {
		o.Scale = DefaultScale
	}
}

// SetDefaults fills every unset option.
func (o *Options) SetDefaults() {
	o.SetLayoutDefaults()
	o.SetRenderDefaults()
}

// ValidateForLayout sets layout defaults and checks the direction.
// The canonical direction ("TB" or "LR") replaces aliases.
func (o *Options) ValidateForLayout() error {
	o.SetLayoutDefaults()
	dir, err := layout.ParseDirection(o.Direction)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDirection, err, "invalid direction")
	}
	o.Direction = dir.String()
	return nil
}

// ValidateForRender sets render defaults and checks the formats.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// Validate sets defaults and checks every option.
func (o *Options) Validate() error {
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	return o.ValidateForRender()
}

// LayoutDirection returns the parsed direction. Call after ValidateForLayout.
func (o *Options) LayoutDirection() layout.Direction {
	return layout.Direction(o.Direction)
}

// Focused reports whether only root courses and expanded neighbourhoods
// should be kept.
func (o *Options) Focused() bool {
	return o.Collapsed || len(o.Expand) > 0
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{
		Format:   format,
		Detailed: o.Detailed,
		Title:    o.Title,
	}
	if format == FormatPNG {
		k.Scale = o.Scale
	}
	return k
}

func (s Stats) String() string {
	return fmt.Sprintf("%d courses, %d edges, %d levels", s.CourseCount, s.EdgeCount, s.LevelCount)
}
