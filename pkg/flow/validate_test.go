package flow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahultadvi/chatflow/pkg/flow"
)

func TestValidateGraph_Valid(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{
			flow.StartNode(),
			{ID: "c", Kind: flow.KindConditions, Config: &flow.ConditionsConfig{}},
			{ID: "r", Kind: flow.KindCustomReply, Config: &flow.CustomReplyConfig{}},
		},
		Edges: []flow.Edge{
			flow.NewEdge(flow.StartNodeID, "c"),
			flow.NewEdge("c", "r"),
		},
	}
	assert.NoError(t, flow.ValidateGraph(g))
}

func TestValidateGraph_ReportsAllViolations(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{
			flow.StartNode(),
			{ID: "dup", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
			{ID: "dup", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
			{ID: "bare", Kind: flow.KindCustomReply},
			{ID: "mixed", Kind: flow.KindUserReply, Config: &flow.TimeGapConfig{}},
		},
		Edges: []flow.Edge{
			flow.NewEdge("dup", "ghost"),
			flow.NewEdge("dup", flow.StartNodeID),
		},
	}

	err := flow.ValidateGraph(g)
	require.Error(t, err)

	msg := err.Error()
	assert.Contains(t, msg, `duplicate node id "dup"`)
	assert.Contains(t, msg, `node "bare" has no configuration`)
	assert.Contains(t, msg, `node "mixed" is "user_reply" but carries "time_gap" configuration`)
	assert.Contains(t, msg, `missing target "ghost"`)
	assert.Contains(t, msg, "points at the start node")
}

func TestValidateGraph_MissingStart(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{{ID: "n", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}}},
	}
	err := flow.ValidateGraph(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exactly one start node")
}

func TestValidateGraph_StartKindMismatch(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{
			flow.StartNode(),
			{ID: "impostor", Kind: flow.KindStart},
		},
	}
	err := flow.ValidateGraph(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has the start kind but not the start id")
}

func TestValidateGraph_StartFanOut(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{
			flow.StartNode(),
			{ID: "a", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
			{ID: "b", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
		},
		Edges: []flow.Edge{
			flow.NewEdge(flow.StartNodeID, "a"),
			flow.NewEdge(flow.StartNodeID, "b"),
		},
	}
	err := flow.ValidateGraph(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at most one is allowed")
}

func TestValidateGraph_DuplicateConnections(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{
			flow.StartNode(),
			{ID: "a", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
			{ID: "b", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
		},
		Edges: []flow.Edge{
			flow.NewEdge("a", "b"),
			flow.NewEdge("a", "b"),
		},
	}
	err := flow.ValidateGraph(g)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate connection a -> b")
}

func TestUnreachable(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{
			flow.StartNode(),
			{ID: "reached", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
			{ID: "orphan", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
		},
		Edges: []flow.Edge{flow.NewEdge(flow.StartNodeID, "reached")},
	}

	assert.Equal(t, []string{"orphan"}, flow.Unreachable(g))
}

func TestUnreachable_AllConnected(t *testing.T) {
	g := flow.Graph{
		Nodes: []flow.Node{
			flow.StartNode(),
			{ID: "a", Kind: flow.KindTimeGap, Config: &flow.TimeGapConfig{}},
		},
		Edges: []flow.Edge{flow.NewEdge(flow.StartNodeID, "a")},
	}
	assert.Empty(t, flow.Unreachable(g))
}
