package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/primer/pkg/domain"
)

// GraphOverlay contains run data to highlight on the graph.
type GraphOverlay struct {
	VisitedNodes []string
	CurrentNode  string
}

// GenerateMermaid produces a Mermaid flowchart from a list of nodes.
// Shapes follow the node semantics:
// - Entry: ((Circle))
// - Logic: [[Subroutine]]
// - Question: [/Parallelogram/]
// - Text: [Rectangle]
func GenerateMermaid(nodes []domain.Node, entryNodeID string, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch {
		case node.ID == entryNodeID:
			opener, closer = "((", "))"
		case node.Type == domain.NodeTypeLogic:
			opener, closer = "[[", "]]"
		case node.Type == domain.NodeTypeQuestion:
			opener, closer = "[/", "/]"
		}

		label := node.ID
		if node.Type == domain.NodeTypeLogic && node.Do != "" {
			label = fmt.Sprintf("%s <br/> %s()", node.ID, node.Do)
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", safeID, opener, label, closer)

		if node.Next != "" {
			arrow := "-->"
			if node.SaveTo != "" {
				arrow = fmt.Sprintf("-- \"%s\" -->", node.SaveTo)
			}
			fmt.Fprintf(&sb, "    %s %s %s\n", safeID, arrow, sanitizeMermaidID(node.Next))
		}
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.VisitedNodes {
			safeID := sanitizeMermaidID(id)
			if safeID != "" && !seen[safeID] {
				seen[safeID] = true
				fmt.Fprintf(&sb, "    class %s visited;\n", safeID)
			}
		}

		if overlay.CurrentNode != "" {
			fmt.Fprintf(&sb, "    class %s current;\n", sanitizeMermaidID(overlay.CurrentNode))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	return strings.NewReplacer(".", "_", "-", "_", "/", "_", "\\", "_").Replace(id)
}
