package graph

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/layout"
)

func computeLayout(t *testing.T, dir layout.Direction, detailed bool, courses ...catalog.Course) Layout {
	t.Helper()
	g := dag.Build(&catalog.Catalog{Courses: courses})
	nodes, err := layout.Compute(g.Nodes, g.Edges, dir, layout.DefaultConfig())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	return FromLayout(nodes, g.Edges, dir, layout.DefaultConfig(), detailed)
}

func chain() []catalog.Course {
	return []catalog.Course{
		{ID: "A", Name: "Alpha", Mandatory: true},
		{ID: "B", Name: "Beta", Prerequisites: []string{"A"}},
		{ID: "C", Name: "Gamma", Prerequisites: []string{"B"}},
		{ID: "X", Name: "Extra"},
	}
}

func TestFromLayout(t *testing.T) {
	l := computeLayout(t, layout.TopToBottom, false, chain()...)

	if l.Direction != "TB" {
		t.Errorf("Direction = %q, want TB", l.Direction)
	}
	if len(l.Nodes) != 4 || len(l.Edges) != 2 {
		t.Fatalf("got %d nodes %d edges, want 4 and 2", len(l.Nodes), len(l.Edges))
	}
	if l.Width != 520 || l.Height != 412 {
		t.Errorf("size = %vx%v, want 520x412", l.Width, l.Height)
	}

	a, _ := l.Node("A")
	if a.Label != "Alpha" || !a.Mandatory || a.Course != nil {
		t.Errorf("node A = %+v", a)
	}
	if !slices.Equal(a.Handles, []string{"top", "bottom"}) {
		t.Errorf("handles = %v, want [top bottom]", a.Handles)
	}

	c, _ := l.Node("C")
	if c.Level != 2 || c.X != 0 || c.Y != 328 {
		t.Errorf("node C = level %d (%v,%v), want level 2 (0,328)", c.Level, c.X, c.Y)
	}
	if !slices.Equal(l.Levels[0], []string{"A", "X"}) {
		t.Errorf("Levels[0] = %v, want [A X]", l.Levels[0])
	}
}

func TestFromLayout_Detailed(t *testing.T) {
	l := computeLayout(t, layout.LeftToRight, true, chain()...)

	b, _ := l.Node("B")
	if b.Course == nil || !slices.Equal(b.Course.Prerequisites, []string{"A"}) {
		t.Errorf("detailed node B course = %+v", b.Course)
	}
	if !slices.Equal(b.Handles, []string{"left", "right"}) {
		t.Errorf("handles = %v, want [left right]", b.Handles)
	}
	if !l.IsLeftToRight() {
		t.Error("IsLeftToRight() = false")
	}
}

func TestFromLayout_DropsUndrawableEdges(t *testing.T) {
	nodes := []layout.Node{{Node: dag.Node{ID: "A"}}}
	edges := []dag.Edge{{ID: "A-ghost", Source: "A", Target: "ghost"}}

	l := FromLayout(nodes, edges, layout.TopToBottom, layout.Config{}, false)
	if len(l.Edges) != 0 {
		t.Errorf("Edges = %v, want none", l.Edges)
	}
	if l.Edges == nil {
		t.Error("Edges should be empty, not nil")
	}
}

func TestSubset(t *testing.T) {
	full := computeLayout(t, layout.TopToBottom, false, chain()...)
	sub := full.Subset(map[string]bool{"A": true, "B": true})

	if len(sub.Nodes) != 2 || len(sub.Edges) != 1 {
		t.Fatalf("subset has %d nodes %d edges, want 2 and 1", len(sub.Nodes), len(sub.Edges))
	}
	b, _ := sub.Node("B")
	fb, _ := full.Node("B")
	if b.X != fb.X || b.Y != fb.Y {
		t.Errorf("B moved from (%v,%v) to (%v,%v)", fb.X, fb.Y, b.X, b.Y)
	}
	if sub.Width != 240 || sub.Height != 248 {
		t.Errorf("subset size = %vx%v, want 240x248", sub.Width, sub.Height)
	}
	if len(full.Nodes) != 4 {
		t.Error("Subset modified the receiver")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	l := computeLayout(t, layout.TopToBottom, true, chain()...)

	data, err := MarshalLayout(l)
	if err != nil {
		t.Fatalf("MarshalLayout: %v", err)
	}
	got, err := UnmarshalLayout(data)
	if err != nil {
		t.Fatalf("UnmarshalLayout: %v", err)
	}

	if got.Direction != l.Direction || len(got.Nodes) != len(l.Nodes) || len(got.Edges) != len(l.Edges) {
		t.Errorf("round trip changed layout: %+v", got)
	}
	if !slices.Equal(got.Levels[1], l.Levels[1]) {
		t.Errorf("Levels[1] = %v, want %v", got.Levels[1], l.Levels[1])
	}
	if got.Config != l.Config {
		t.Errorf("Config = %+v, want %+v", got.Config, l.Config)
	}
}

func TestUnmarshalLayout_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"BadJSON", `{invalid json}`},
		{"BadDirection", `{"direction": "BT", "nodes": [], "edges": []}`},
		{"DanglingEdge", `{"direction": "TB", "nodes": [{"id": "A"}], "edges": [{"id": "A-B", "from": "A", "to": "B"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := UnmarshalLayout([]byte(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestLayoutFile(t *testing.T) {
	l := computeLayout(t, layout.TopToBottom, false, chain()...)
	path := filepath.Join(t.TempDir(), "layout.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if len(got.Nodes) != 4 {
		t.Errorf("nodes = %d, want 4", len(got.Nodes))
	}

	if _, err := ReadLayoutFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for nonexistent file")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("layout file missing: %v", err)
	}
}

func TestWriteLayout(t *testing.T) {
	l := computeLayout(t, layout.TopToBottom, false, chain()...)

	var buf bytes.Buffer
	if err := WriteLayout(l, &buf); err != nil {
		t.Fatalf("WriteLayout: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"direction", "width", "height", "config", "nodes", "edges", "levels"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q", key)
		}
	}
}
