package chatflow_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahultadvi/chatflow"
	"github.com/rahultadvi/chatflow/pkg/flow"
)

const yamlDefinition = `
name: keyword welcome
trigger: new_conversation
nodes:
  - nodeId: c
    type: conditions
    position: 1
    data:
      label: Route
      conditionType: keyword
      keywords: [hi, hello]
      matchType: any
  - nodeId: r
    type: custom_reply
    position: 2
    data:
      message: welcome aboard
edges:
  - source: c
    target: r
`

const jsonDefinition = `{
  "name": "json welcome",
  "trigger": "new_conversation",
  "automation_nodes": [
    {"nodeId": "r", "type": "custom_reply", "position": 1, "data": {"message": "hi"}}
  ]
}`

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOpen_YAML(t *testing.T) {
	path := writeDefinition(t, "welcome.yaml", yamlDefinition)

	e, err := chatflow.Open(path)
	require.NoError(t, err)
	defer e.Close()

	assert.Equal(t, "keyword welcome", e.Name())

	g := e.Graph()
	require.Len(t, g.Nodes, 3)

	n, ok := g.NodeByID("c")
	require.True(t, ok)
	cfg := n.Config.(*flow.ConditionsConfig)
	assert.Equal(t, []string{"hi", "hello"}, cfg.Keywords)

	require.Len(t, g.Edges, 1)
	assert.Equal(t, "c", g.Edges[0].Source)
}

func TestLoadRecord_JSON(t *testing.T) {
	path := writeDefinition(t, "welcome.json", jsonDefinition)

	rec, err := chatflow.LoadRecord(path)
	require.NoError(t, err)
	assert.Equal(t, "json welcome", rec.Name)
	require.Len(t, rec.Nodes, 1)
	assert.Equal(t, "r", rec.Nodes[0].NodeID)
}

func TestLoadRecord_Missing(t *testing.T) {
	_, err := chatflow.LoadRecord(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadRecord_Malformed(t *testing.T) {
	path := writeDefinition(t, "broken.json", "{not json")
	_, err := chatflow.LoadRecord(path)
	assert.Error(t, err)
}

func TestNew_StartsEmptySession(t *testing.T) {
	e := chatflow.New(nil)
	defer e.Close()

	assert.Len(t, e.Graph().Nodes, 1)
}
