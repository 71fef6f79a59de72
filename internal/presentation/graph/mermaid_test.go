package graph_test

import (
	"strings"
	"testing"

	"github.com/rahultadvi/chatflow/internal/presentation/graph"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

func TestGenerateMermaid(t *testing.T) {
	tests := []struct {
		name     string
		g        flow.Graph
		contains []string
	}{
		{
			name: "Start Node Shape",
			g: flow.Graph{
				Nodes: []flow.Node{flow.StartNode()},
			},
			contains: []string{
				"start((\"Start\"))",
			},
		},
		{
			name: "Conditions Shape",
			g: flow.Graph{
				Nodes: []flow.Node{{ID: "c1", Kind: flow.KindConditions, Label: "Route"}},
			},
			contains: []string{
				"c1{\"Route\"}",
			},
		},
		{
			name: "Question Shape",
			g: flow.Graph{
				Nodes: []flow.Node{{ID: "q1", Kind: flow.KindUserReply, Label: "Ask"}},
			},
			contains: []string{
				"q1[/\"Ask\"/]",
			},
		},
		{
			name: "Side Effect Shapes",
			g: flow.Graph{
				Nodes: []flow.Node{
					{ID: "t1", Kind: flow.KindSendTemplate, Label: "Send Template"},
					{ID: "a1", Kind: flow.KindAssignUser, Label: "Assign User"},
				},
			},
			contains: []string{
				"t1[[\"Send Template\"]]",
				"a1[[\"Assign User\"]]",
			},
		},
		{
			name: "Time Gap Label",
			g: flow.Graph{
				Nodes: []flow.Node{{
					ID: "g1", Kind: flow.KindTimeGap, Label: "Time Gap",
					Config: &flow.TimeGapConfig{DelaySeconds: 90},
				}},
			},
			contains: []string{
				"g1[\"Time Gap <br/> 90s\"]",
			},
		},
		{
			name: "ID Sanitization",
			g: flow.Graph{
				Nodes: []flow.Node{{ID: "b2a7-44f1", Kind: flow.KindCustomReply, Label: "Reply"}},
				Edges: []flow.Edge{{ID: "e", Source: "start", Target: "b2a7-44f1"}},
			},
			contains: []string{
				"b2a7_44f1[\"Reply\"]",
				"start --> b2a7_44f1",
			},
		},
		{
			name: "Label Escaping",
			g: flow.Graph{
				Nodes: []flow.Node{{ID: "r1", Kind: flow.KindCustomReply, Label: `Say "hi"`}},
			},
			contains: []string{
				"r1[\"Say 'hi'\"]",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := graph.GenerateMermaid(tt.g)
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("GenerateMermaid() = \n%v\nWant substring: %v", got, want)
				}
			}
		})
	}
}
