// Package nodelink renders course layouts as Graphviz node-link diagrams.
//
// # Overview
//
// Courses appear as boxes connected by prerequisite arrows. Unlike a plain
// Graphviz diagram, the boxes are not placed by Graphviz: [ToDOT] pins every
// node to the position computed by the layout engine and the diagram is
// rendered with the neato engine, which honours pinned positions.
//
//	dot := nodelink.ToDOT(l, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Styling
//
// Mandatory courses are filled; electives get a dashed outline. With
// Options.Detailed the label adds credits, semester and year.
//
// # Coordinates
//
// Layout coordinates grow downwards and mark the top-left corner of a box.
// Graphviz positions mark the centre and grow upwards, so ToDOT shifts by
// half a box and flips the y axis around the layout height.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
