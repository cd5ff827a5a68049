package plan

import (
	"context"
	"strings"
	"testing"
)

func TestBuildMindMapStructure(t *testing.T) {
	renderer := &GraphvizRenderer{available: false}

	m := BuildMindMap(context.Background(), "vegan snack startup in Bangalore", renderer)

	if m.Root != "vegan Idea" {
		t.Errorf("root = %q, want %q", m.Root, "vegan Idea")
	}
	if len(m.Children) != 5 {
		t.Fatalf("expected 5 children, got %d", len(m.Children))
	}

	want := []string{"Register", "Kitchen Setup", "Source Ingredients", "Marketing", "Launch"}
	for i, child := range m.Children {
		if child != want[i] {
			t.Errorf("child %d = %q, want %q", i, child, want[i])
		}
	}
}

func TestBuildMindMapRendererUnavailable(t *testing.T) {
	renderer := &GraphvizRenderer{available: false}

	m := BuildMindMap(context.Background(), "vegan snacks", renderer)

	if m.Rendered {
		t.Error("expected Rendered=false when dot is unavailable")
	}
	if m.SVG != "" {
		t.Error("expected empty SVG when dot is unavailable")
	}
}

func TestBuildMindMapNilRenderer(t *testing.T) {
	m := BuildMindMap(context.Background(), "vegan snacks", nil)
	if m.Rendered {
		t.Error("expected Rendered=false with nil renderer")
	}
}

func TestDotSourceStarGraph(t *testing.T) {
	m := BuildMindMap(context.Background(), "vegan snacks", nil)
	dot := DotSource(m)

	if !strings.Contains(dot, `A [label="vegan Idea"]`) {
		t.Errorf("dot source missing root node:\n%s", dot)
	}
	for i := 1; i <= 5; i++ {
		edge := "A -> B" + string(rune('0'+i))
		if !strings.Contains(dot, edge) {
			t.Errorf("dot source missing edge %q:\n%s", edge, dot)
		}
	}
	// depth-1 star: no edges between children
	if strings.Contains(dot, "B1 -> ") || strings.Contains(dot, "B2 -> ") {
		t.Errorf("unexpected nesting in dot source:\n%s", dot)
	}
}
