package mindmap

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/outline"
)

func sampleLayout(t *testing.T) Layout {
	t.Helper()
	tree := outline.Parse("# Root\n## Alpha\n- a1\n## Beta")
	return FromResult(layout.Radial(tree, layout.CharEstimator{}))
}

func TestFromResult(t *testing.T) {
	tree := outline.Parse("# Root\n## Alpha\n## Beta")
	r := layout.Horizontal(tree)
	l := FromResult(r)

	if l.LayoutKind != string(layout.KindHorizontal) {
		t.Errorf("kind = %s", l.LayoutKind)
	}
	if l.NodeCount != 3 || len(l.Nodes) != 3 {
		t.Fatalf("nodes = %d/%d, want 3", l.NodeCount, len(l.Nodes))
	}
	if l.MaxDepth != r.MaxDepth {
		t.Errorf("max depth = %d, want %d", l.MaxDepth, r.MaxDepth)
	}
	if len(l.Connectors) != len(r.Connectors) {
		t.Errorf("connectors = %d, want %d", len(l.Connectors), len(r.Connectors))
	}
	for i, n := range l.Nodes {
		src := r.Nodes[i]
		if n.Label != src.Label || n.Depth != src.Depth || n.Parent != src.Parent {
			t.Errorf("node %d identity mismatch: %+v", i, n)
		}
		if n.X != src.X || n.Y != src.Y || n.W != src.W || n.H != src.H {
			t.Errorf("node %d geometry mismatch: %+v", i, n)
		}
		if n.Color != src.Color {
			t.Errorf("node %d color = %s, want %s", i, n.Color, src.Color)
		}
	}
	if l.Canvas.Width != r.Canvas.Width || l.Canvas.PxPerUnit != r.Canvas.PxPerUnit {
		t.Errorf("canvas mismatch: %+v", l.Canvas)
	}
}

func TestIsRoot(t *testing.T) {
	l := sampleLayout(t)
	if !l.Nodes[0].IsRoot() {
		t.Error("first node should be the root")
	}
	for _, n := range l.Nodes[1:] {
		if n.IsRoot() {
			t.Errorf("non-root node %q reports IsRoot", n.Label)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	l := sampleLayout(t)
	data, err := Marshal(l)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !reflect.DeepEqual(l, got) {
		t.Error("round trip changed the layout")
	}
}

func TestLayoutFileRoundTrip(t *testing.T) {
	l := sampleLayout(t)
	path := filepath.Join(t.TempDir(), "map.layout.json")

	if err := WriteLayoutFile(l, path); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	got, err := ReadLayoutFile(path)
	if err != nil {
		t.Fatalf("ReadLayoutFile: %v", err)
	}
	if !reflect.DeepEqual(l, got) {
		t.Error("file round trip changed the layout")
	}
}

func TestReadLayoutFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := ReadLayoutFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("missing file should fail")
	}

	empty := filepath.Join(dir, "empty.json")
	if err := WriteLayoutFile(Layout{LayoutKind: "radial"}, empty); err != nil {
		t.Fatalf("WriteLayoutFile: %v", err)
	}
	if _, err := ReadLayoutFile(empty); err == nil {
		t.Error("layout with no nodes should fail")
	}
}

func TestKind(t *testing.T) {
	l := Layout{LayoutKind: "radial"}
	if l.Kind() != layout.KindRadial {
		t.Errorf("Kind() = %s", l.Kind())
	}
}
