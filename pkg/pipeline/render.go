package pipeline

import (
	"bytes"
	"context"
	"fmt"

	"github.com/matzehuels/coursegraph/pkg/graph"
	"github.com/matzehuels/coursegraph/pkg/render/echarts"
	"github.com/matzehuels/coursegraph/pkg/render/nodelink"
)

// RenderFromLayout generates output artifacts in the requested formats.
// Options must have passed ValidateForRender.
func RenderFromLayout(ctx context.Context, l graph.Layout, opts Options) (map[string][]byte, error) {
	dot := nodelink.ToDOT(l, nodelink.Options{Detailed: opts.Detailed})
	artifacts := make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatDOT:
			data = []byte(dot)
		case FormatSVG:
			data, err = nodelink.RenderSVG(ctx, dot)
		case FormatPNG:
			data, err = nodelink.RenderPNG(ctx, dot, opts.Scale)
		case FormatPDF:
			data, err = nodelink.RenderPDF(ctx, dot)
		case FormatHTML:
			var buf bytes.Buffer
			err = echarts.Render(&buf, l, echarts.Options{Title: title(l, opts)})
			data = buf.Bytes()
		case FormatJSON:
			data, err = graph.MarshalLayout(l)
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

func title(l graph.Layout, opts Options) string {
	if opts.Title != "" {
		return opts.Title
	}
	return l.Title
}
