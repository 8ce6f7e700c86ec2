// Package pkg provides the core libraries for coursegraph, which turns a
// course catalog into a prerequisite graph and lays it out for display.
//
// # Overview
//
// Each course is placed at a level derived from its prerequisites, so a
// student reading a rendered plan sees every course after the courses it
// depends on. The pkg directory is organized into these areas:
//
//  1. [catalog] - Reading, validating and hashing course catalogs
//  2. [core] - Domain logic (prerequisite DAG, cycle detection, levels, grid layout)
//  3. [graph] - Serialization types for layouts
//  4. [render] - DOT, SVG, PNG, PDF and interactive HTML output
//  5. [pipeline] - Orchestration (load → layout → render) with caching
//  6. [cache] - File, Redis and no-op artifact caches
//
// # Architecture
//
// The typical data flow through coursegraph:
//
//	Catalog (JSON, TOML, YAML)
//	         ↓
//	    [catalog] package (decode + validate)
//	         ↓
//	    [core/dag] package (prerequisite graph + queries)
//	         ↓
//	    [core/dag/transform] package (cycle check + level assignment)
//	         ↓
//	    [core/layout] package (grid positions, TB or LR)
//	         ↓
//	    [render] packages → SVG/PNG/PDF/DOT/HTML/JSON
//
// # Quick Start
//
// Lay out a catalog and render it as SVG:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/coursegraph/pkg/cache"
//	    "github.com/matzehuels/coursegraph/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	defer runner.Close()
//
//	opts := pipeline.Options{Path: "catalog.json", Direction: "TB", Formats: []string{"svg"}}
//	opts.SetLayoutDefaults()
//	res, err := runner.Execute(context.Background(), opts)
//	if err != nil {
//	    // errors.Is(err, errors.ErrCodeCycleDetected) for circular prerequisites
//	}
//	os.WriteFile("catalog.svg", res.Artifacts["svg"], 0o644)
//
// [catalog]: github.com/matzehuels/coursegraph/pkg/catalog
// [core]: github.com/matzehuels/coursegraph/pkg/core
// [graph]: github.com/matzehuels/coursegraph/pkg/graph
// [render]: github.com/matzehuels/coursegraph/pkg/render
// [pipeline]: github.com/matzehuels/coursegraph/pkg/pipeline
// [cache]: github.com/matzehuels/coursegraph/pkg/cache
// [core/dag]: github.com/matzehuels/coursegraph/pkg/core/dag
// [core/dag/transform]: github.com/matzehuels/coursegraph/pkg/core/dag/transform
// [core/layout]: github.com/matzehuels/coursegraph/pkg/core/layout
package pkg
