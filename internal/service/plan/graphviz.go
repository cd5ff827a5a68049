package plan

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ruchita2103/ai-business-assistant/internal/domain"
)

// commandContext is the function used to create exec.Cmd instances. It can be
// replaced in tests to mock dot execution.
var commandContext = exec.CommandContext

// GraphvizRenderer turns a mind map into inline SVG by piping DOT source
// through the dot binary. Availability of the binary is checked once at
// construction and exposed as a capability flag.
type GraphvizRenderer struct {
	available bool
}

func NewGraphvizRenderer() *GraphvizRenderer {
	_, err := exec.LookPath("dot")
	return &GraphvizRenderer{available: err == nil}
}

func (r *GraphvizRenderer) Available() bool {
	return r.available
}

// Render produces the SVG for a depth-1 star graph. When the dot binary is
// missing or fails, it returns ("", false, nil): degraded output is a notice,
// not a request failure.
func (r *GraphvizRenderer) Render(ctx context.Context, m domain.MindMap) (string, bool, error) {
	if !r.available {
		return "", false, nil
	}

	cmd := commandContext(ctx, "dot", "-Tsvg")
	cmd.Stdin = strings.NewReader(DotSource(m))

	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", false, nil
	}

	return out.String(), true, nil
}

// DotSource serializes the star graph as Graphviz DOT: one root node and one
// edge per child, no further nesting.
func DotSource(m domain.MindMap) string {
	var sb strings.Builder
	sb.WriteString("digraph startup {\n")
	fmt.Fprintf(&sb, "  A [label=%q];\n", m.Root)
	for i, child := range m.Children {
		fmt.Fprintf(&sb, "  B%d [label=%q];\n", i+1, child)
		fmt.Fprintf(&sb, "  A -> B%d;\n", i+1)
	}
	sb.WriteString("}\n")
	return sb.String()
}
