package ports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahultadvi/chatflow/pkg/flow"
)

// RunAutomationStoreContract verifies that an AutomationStore implementation
// adheres to the interface contract. Adapter test suites call it against
// their concrete store.
func RunAutomationStoreContract(t *testing.T, store AutomationStore) {
	ctx := context.Background()

	req := func(name string) *flow.SaveRequest {
		return &flow.SaveRequest{
			Name:    name,
			Trigger: "new_conversation",
			Nodes: []flow.NodeRecord{
				{NodeID: "n1", Type: flow.KindConditions, Position: 1, Data: map[string]any{"label": "Conditions"}},
				{NodeID: "n2", Type: flow.KindCustomReply, Position: 2, Data: map[string]any{"label": "Custom Reply"}},
			},
			Edges: []flow.EdgeRecord{{Source: "n1", Target: "n2"}},
		}
	}

	t.Run("Create and Get", func(t *testing.T) {
		rec, err := store.Create(ctx, req("welcome"))
		require.NoError(t, err)
		require.NotEmpty(t, rec.ID, "create must assign an id")

		got, err := store.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "welcome", got.Name)
		assert.Len(t, got.Nodes, 2)
		assert.Len(t, got.Edges, 1)
	})

	t.Run("Update", func(t *testing.T) {
		rec, err := store.Create(ctx, req("before"))
		require.NoError(t, err)

		updated, err := store.Update(ctx, rec.ID, req("after"))
		require.NoError(t, err)
		assert.Equal(t, rec.ID, updated.ID, "update must keep the id")

		got, err := store.Get(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "after", got.Name)
	})

	t.Run("Update Non-Existent", func(t *testing.T) {
		_, err := store.Update(ctx, "no-such-id", req("x"))
		assert.ErrorIs(t, err, flow.ErrNotFound)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := store.Get(ctx, "no-such-id")
		assert.ErrorIs(t, err, flow.ErrNotFound)
	})

	t.Run("List", func(t *testing.T) {
		before, err := store.List(ctx)
		require.NoError(t, err)

		_, err = store.Create(ctx, req("listed"))
		require.NoError(t, err)

		after, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, after, len(before)+1)
	})

	t.Run("Delete", func(t *testing.T) {
		rec, err := store.Create(ctx, req("doomed"))
		require.NoError(t, err)

		require.NoError(t, store.Delete(ctx, rec.ID))

		_, err = store.Get(ctx, rec.ID)
		assert.ErrorIs(t, err, flow.ErrNotFound)
	})
}
