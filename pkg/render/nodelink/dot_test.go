package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/layout"
	"github.com/matzehuels/coursegraph/pkg/graph"
)

func sampleLayout(dir layout.Direction) graph.Layout {
	credits := 6.0
	return graph.Layout{
		Direction: dir.String(),
		Width:     240,
		Height:    248,
		Config:    layout.DefaultConfig(),
		Nodes: []graph.Node{
			{ID: "CS101", Label: "Intro", X: 0, Y: 0, Mandatory: true,
				Course: &catalog.Course{ID: "CS101", Credits: &credits, Semester: "Fall", Year: "1"}},
			{ID: "CS201", Label: "Algorithms", Level: 1, X: 0, Y: 164},
		},
		Edges: []graph.Edge{{ID: "CS101-CS201", From: "CS101", To: "CS201"}},
	}
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(sampleLayout(layout.TopToBottom), Options{})

	for _, want := range []string{
		"digraph G",
		"rankdir=TB",
		`"CS101" [`,
		`"CS201" [`,
		`"CS101" -> "CS201"`,
		"width=3.3333333333333335",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
}

func TestToDOT_PinnedPositions(t *testing.T) {
	dot := ToDOT(sampleLayout(layout.TopToBottom), Options{})

	// Centres: x = 0+120, y flipped around height 248.
	if !strings.Contains(dot, `pos="120,206!"`) {
		t.Error("ToDOT() missing pinned position for CS101")
	}
	if !strings.Contains(dot, `pos="120,42!"`) {
		t.Error("ToDOT() missing pinned position for CS201")
	}
}

func TestToDOT_LeftToRight(t *testing.T) {
	dot := ToDOT(sampleLayout(layout.LeftToRight), Options{})
	if !strings.Contains(dot, "rankdir=LR") {
		t.Error("ToDOT() missing rankdir=LR")
	}
}

func TestToDOT_Styles(t *testing.T) {
	dot := ToDOT(sampleLayout(layout.TopToBottom), Options{})

	if !strings.Contains(dot, mandatoryFill) {
		t.Error("ToDOT() mandatory course missing fill")
	}
	if !strings.Contains(dot, "dashed") {
		t.Error("ToDOT() elective missing dashed style")
	}
}

func TestFmtLabel(t *testing.T) {
	l := sampleLayout(layout.TopToBottom)

	tests := []struct {
		name     string
		node     graph.Node
		detailed bool
		want     string
	}{
		{"Simple", l.Nodes[0], false, "Intro\nCS101"},
		{"Detailed", l.Nodes[0], true, "Intro\nCS101\ncredits: 6\nsemester: Fall\nyear: 1"},
		{"DetailedWithoutCourse", l.Nodes[1], true, "Algorithms\nCS201"},
		{"NoLabel", graph.Node{ID: "X"}, false, "X"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fmtLabel(tt.node, tt.detailed); got != tt.want {
				t.Errorf("fmtLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	got := string(normalizeViewBox(in))

	if !strings.Contains(got, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", got)
	}
	if same := normalizeViewBox([]byte("<svg>")); string(same) != "<svg>" {
		t.Errorf("normalizeViewBox() changed svg without viewBox: %s", same)
	}
}
