// Package echarts renders course layouts as interactive HTML pages.
//
// The page embeds an ECharts graph series with the layout engine's
// coordinates (series layout "none"), so the browser view matches the SVG
// output while still supporting zoom, pan and tooltips.
package echarts

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/matzehuels/coursegraph/pkg/graph"
)

// Options configures the HTML page.
type Options struct {
	// Title is the page and chart title. Defaults to "Course prerequisites".
	Title string
}

const defaultTitle = "Course prerequisites"

// Colours used for course boxes.
const (
	mandatoryColor = "#dbeafe"
	electiveColor  = "#ffffff"
	borderColor    = "#1e3a8a"
)

// Render writes a standalone HTML page showing l to w.
func Render(w io.Writer, l graph.Layout, o Options) error {
	if err := components.NewPage().AddCharts(Chart(l, o)).Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// Chart builds the graph chart for l without rendering it.
func Chart(l graph.Layout, o Options) *charts.Graph {
	title := o.Title
	if title == "" {
		title = defaultTitle
	}

	chart := charts.NewGraph()
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: title,
			Height:    "100vh",
			Width:     "100vw",
		}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
	)
	chart.AddSeries(
		"courses",
		Nodes(l),
		Links(l),
		charts.WithGraphChartOpts(
			opts.GraphChart{
				Layout:     "none",
				Roam:       opts.Bool(true),
				EdgeSymbol: []string{"none", "arrow"},
			},
		),
		charts.WithLabelOpts(opts.Label{
			Show:     opts.Bool(true),
			Color:    "black",
			Position: "inside",
		}),
	)
	return chart
}

// Nodes converts layout nodes into ECharts graph nodes centred in their
// boxes.
func Nodes(l graph.Layout) []opts.GraphNode {
	cfg := l.Config.WithDefaults()
	nodes := make([]opts.GraphNode, len(l.Nodes))
	for i, n := range l.Nodes {
		color := electiveColor
		if n.Mandatory {
			color = mandatoryColor
		}
		nodes[i] = opts.GraphNode{
			Name:       n.ID,
			X:          float32(n.X + cfg.NodeWidth/2),
			Y:          float32(n.Y + cfg.NodeHeight/2),
			Symbol:     "roundRect",
			SymbolSize: []float64{cfg.NodeWidth, cfg.NodeHeight},
			ItemStyle: &opts.ItemStyle{
				Color:       color,
				BorderColor: borderColor,
			},
		}
	}
	return nodes
}

// Links converts layout edges into ECharts links.
func Links(l graph.Layout) []opts.GraphLink {
	links := make([]opts.GraphLink, len(l.Edges))
	for i, e := range l.Edges {
		links[i] = opts.GraphLink{Source: e.From, Target: e.To}
	}
	return links
}
