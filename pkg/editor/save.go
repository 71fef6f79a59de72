package editor

import (
	"context"
	"fmt"

	"github.com/rahultadvi/chatflow/pkg/flow"
	"github.com/rahultadvi/chatflow/pkg/ports"
)

// Save serializes the current graph and dispatches it to the persistence
// store: create when the session has no automation id yet, update otherwise.
//
// At most one save may be in flight per session; a second call while one is
// pending fails with flow.ErrSaveInFlight. Validation and persistence
// failures leave the in-memory graph untouched so the author can retry.
// On success the session adopts the persisted id and invalidates the listing
// cache, if one is wired.
func (e *Editor) Save(ctx context.Context, store ports.AutomationStore) (*flow.Record, error) {
	if !e.saving.CompareAndSwap(false, true) {
		return nil, flow.ErrSaveInFlight
	}
	defer e.saving.Store(false)

	e.edges = flow.NormalizeEdges(e.edges)

	req, err := flow.BuildSaveRequest(e.name, e.description, e.trigger, e.triggerConfig, e.Graph())
	if err != nil {
		// MissingName and serialization problems abort before any request
		// is issued.
		return nil, err
	}

	var rec *flow.Record
	if e.id == "" {
		rec, err = store.Create(ctx, req)
	} else {
		rec, err = store.Update(ctx, e.id, req)
	}
	if err != nil {
		e.logger.Warn("automation save failed", "automation", e.id, "err", err)
		return nil, fmt.Errorf("persist automation: %w", err)
	}

	if rec != nil && rec.ID != "" {
		e.id = rec.ID
	}

	if e.cache != nil {
		if err := e.cache.Invalidate(ctx); err != nil {
			// The write itself succeeded; a stale listing is not worth
			// failing the save over.
			e.logger.Warn("listing cache invalidation failed", "err", err)
		}
	}

	e.logger.Info("automation saved", "automation", e.id, "nodes", len(req.Nodes), "edges", len(req.Edges))
	return rec, nil
}
