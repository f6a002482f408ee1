package converters

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/algotrace/karatsuba"
)

// MermaidOption tweaks Mermaid output.
type MermaidOption func(*mermaidConfig)

type mermaidConfig struct {
	current string
	visited []string
}

// WithCurrent highlights the call with the given id, e.g. the one a
// player is paused on.
func WithCurrent(id string) MermaidOption {
	return func(c *mermaidConfig) { c.current = id }
}

// WithVisited marks calls that playback has already passed.
func WithVisited(ids ...string) MermaidOption {
	return func(c *mermaidConfig) { c.visited = append(c.visited, ids...) }
}

// Mermaid renders the call tree of r as a top-down Mermaid flowchart.
// Leaves are drawn as rounded boxes, inner calls as rectangles.
// A nil result yields an empty "graph TD" header.
func Mermaid(r *karatsuba.Result, opts ...MermaidOption) string {
	var cfg mermaidConfig
	for _, o := range opts {
		o(&cfg)
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")
	if r == nil || r.Tree == nil {
		return sb.String()
	}

	t := r.Tree
	t.Walk(func(i int, n karatsuba.CallNode) bool {
		opener, closer := "[", "]"
		if len(t.Children(i)) == 0 {
			opener, closer = "(", ")"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", mermaidID(n.ID), opener, n.Label(), closer)

		return true
	})
	for _, e := range t.Edges() {
		fmt.Fprintf(&sb, "    %s --> %s\n", mermaidID(e.Source), mermaidID(e.Target))
	}

	if cfg.current == "" && len(cfg.visited) == 0 {
		return sb.String()
	}

	sb.WriteString("\n    %% Playback\n")
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
	seen := make(map[string]bool, len(cfg.visited))
	for _, id := range cfg.visited {
		if _, ok := t.ByID(id); !ok || seen[id] {
			continue
		}
		seen[id] = true
		fmt.Fprintf(&sb, "    class %s visited;\n", mermaidID(id))
	}
	if _, ok := t.ByID(cfg.current); ok {
		fmt.Fprintf(&sb, "    class %s current;\n", mermaidID(cfg.current))
	}

	return sb.String()
}

// mermaidID turns "0-2-1" into "n0_2_1"; bare digits are not valid ids in
// every Mermaid renderer.
func mermaidID(id string) string {
	return "n" + strings.ReplaceAll(id, "-", "_")
}
