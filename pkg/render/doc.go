// Package render turns serialized course layouts into visual artifacts.
//
// # Overview
//
// Every renderer takes a graph.Layout, so positions are computed once by
// pkg/core/layout and never by the renderer:
//
//   - [nodelink]: Graphviz DOT with pinned node positions, rendered to SVG
//   - [echarts]: standalone interactive HTML page
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/coursegraph/pkg/render/nodelink
// [echarts]: github.com/matzehuels/coursegraph/pkg/render/echarts
package render
