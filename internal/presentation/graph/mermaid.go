package graph

import (
	"fmt"
	"strings"

	"github.com/ianw11/gamebase/pkg/history"
	"github.com/ianw11/gamebase/pkg/turn"
)

// LabelFunc describes a turn in a node label.
type LabelFunc func(t *turn.Turn) string

// DefaultLabel prints the player, the round and the recorded data.
func DefaultLabel(t *turn.Turn) string {
	var parts []string
	for _, tag := range t.Tags() {
		v, _ := t.Data(tag)
		parts = append(parts, fmt.Sprintf("%s=%v", tag, v))
	}
	label := fmt.Sprintf("%s r%d", t.Player().Name(), t.Round())
	if len(parts) > 0 {
		label += " <br/> " + strings.Join(parts, " ")
	}
	return label
}

// GenerateMermaid produces a Mermaid flowchart of a history tree.
// The root is drawn as a circle, turns as rectangles. Edges leaving a node
// with several branches carry the branch index used by AdvanceToNextAt.
// The line from the root to the cursor is styled as visited and the cursor
// itself as current.
func GenerateMermaid(tree *history.Tree, label LabelFunc) string {
	if label == nil {
		label = DefaultLabel
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	tree.Walk(func(id history.NodeID, _ int) {
		if id == history.Root {
			fmt.Fprintf(&sb, "    %s((\"start\"))\n", nodeID(id))
		} else {
			t, _ := tree.Turn(id)
			fmt.Fprintf(&sb, "    %s[\"%s\"]\n", nodeID(id), escape(label(t)))
		}

		children := tree.Children(id)
		for i, child := range children {
			if len(children) > 1 {
				fmt.Fprintf(&sb, "    %s -- \"%d\" --> %s\n", nodeID(id), i, nodeID(child))
			} else {
				fmt.Fprintf(&sb, "    %s --> %s\n", nodeID(id), nodeID(child))
			}
		}
	})

	sb.WriteString("\n    %% Overlay Styles\n")
	// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
	sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
	sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

	current := tree.Current()
	for id, ok := tree.Parent(current); ok; id, ok = tree.Parent(id) {
		fmt.Fprintf(&sb, "    class %s visited;\n", nodeID(id))
	}
	fmt.Fprintf(&sb, "    class %s current;\n", nodeID(current))

	return sb.String()
}

func nodeID(id history.NodeID) string {
	return fmt.Sprintf("n%d", id)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
