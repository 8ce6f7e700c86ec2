package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/coursegraph/pkg/graph"
	"github.com/matzehuels/coursegraph/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed adds credits, semester and year to node labels.
	// When false, labels show the course name and ID.
	Detailed bool
}

const pointsPerInch = 72.0

// Fill colours.
const (
	mandatoryFill = "#dbeafe"
	electiveFill  = "white"
)

// ToDOT converts a positioned layout to Graphviz DOT with pinned node
// positions. The resulting DOT string can be rendered using [RenderSVG],
// [RenderPDF] or [RenderPNG].
func ToDOT(l graph.Layout, opts Options) string {
	cfg := l.Config.WithDefaults()

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir(l))
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  inputscale=72;\n")
	buf.WriteString("  splines=true;\n")
	buf.WriteString("  overlap=true;\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=%s, fontsize=14, fixedsize=true, width=%s, height=%s];\n",
		electiveFill, inches(cfg.NodeWidth), inches(cfg.NodeHeight))
	buf.WriteString("\n")

	for _, n := range l.Nodes {
		cx := n.X + cfg.NodeWidth/2
		cy := l.Height - (n.Y + cfg.NodeHeight/2)
		attrs := []string{
			fmt.Sprintf("label=%q", fmtLabel(n, opts.Detailed)),
			fmt.Sprintf("pos=\"%s,%s!\"", num(cx), num(cy)),
		}
		attrs = append(attrs, fmtStyle(n)...)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range l.Edges {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func rankdir(l graph.Layout) string {
	if l.IsLeftToRight() {
		return "LR"
	}
	return "TB"
}

func fmtLabel(n graph.Node, detailed bool) string {
	label := n.DisplayLabel()
	if label != n.ID {
		label += "\n" + n.ID
	}
	if !detailed || n.Course == nil {
		return label
	}

	var parts []string
	if n.Course.Credits != nil {
		parts = append(parts, fmt.Sprintf("credits: %s", num(*n.Course.Credits)))
	}
	if n.Course.Semester != "" {
		parts = append(parts, "semester: "+n.Course.Semester)
	}
	if n.Course.Year != "" {
		parts = append(parts, "year: "+n.Course.Year)
	}
	if len(parts) == 0 {
		return label
	}
	return label + "\n" + strings.Join(parts, "\n")
}

func fmtStyle(n graph.Node) []string {
	if n.Mandatory {
		return []string{fmt.Sprintf("fillcolor=%q", mandatoryFill)}
	}
	return []string{"style=\"rounded,filled,dashed\""}
}

func inches(px float64) string { return num(px / pointsPerInch) }

func num(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

// RenderSVG renders a DOT graph to SVG using Graphviz's neato engine so
// pinned positions are kept.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()
	gv.SetLayout(graphviz.NEATO)

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
//
// Requires rsvg-convert; see [render.Available].
func RenderPDF(ctx context.Context, dot string) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(ctx, svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image.
//
// Requires rsvg-convert; see [render.Available].
func RenderPNG(ctx context.Context, dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(ctx, svg, scale)
}
