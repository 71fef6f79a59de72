// Package graph renders an automation graph for human inspection.
package graph

import (
	"fmt"
	"strings"

	"github.com/rahultadvi/chatflow/pkg/flow"
)

// GenerateMermaid produces a Mermaid flowchart from an automation graph.
// It applies semantic shapes per node kind:
//   - start: ((Circle))
//   - conditions: {Diamond}
//   - user_reply: [/Parallelogram/] (input)
//   - send_template / assign_user: [[Subroutine]] (external side effect)
//   - default: [Rectangle]
func GenerateMermaid(g flow.Graph) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, node := range g.Nodes {
		safeID := sanitizeMermaidID(node.ID)

		opener, closer := "[", "]"
		switch node.Kind {
		case flow.KindStart:
			opener, closer = "((", "))"
		case flow.KindConditions:
			opener, closer = "{", "}"
		case flow.KindUserReply:
			opener, closer = "[/", "/]"
		case flow.KindSendTemplate, flow.KindAssignUser:
			opener, closer = "[[", "]]"
		}

		label := node.Label
		if label == "" {
			label = node.ID
		}
		if gap, ok := node.Config.(*flow.TimeGapConfig); ok {
			label = fmt.Sprintf("%s <br/> %ds", label, gap.DelaySeconds)
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, escapeMermaid(label), closer))
	}

	for _, edge := range g.Edges {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n",
			sanitizeMermaidID(edge.Source), sanitizeMermaidID(edge.Target)))
	}

	return sb.String()
}

// sanitizeMermaidID makes a node id safe for Mermaid identifiers.
func sanitizeMermaidID(id string) string {
	r := strings.NewReplacer("-", "_", " ", "_", "/", "_", ".", "_")
	return r.Replace(id)
}

func escapeMermaid(label string) string {
	return strings.ReplaceAll(label, "\"", "'")
}
