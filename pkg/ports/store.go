package ports

import (
	"context"

	"github.com/rahultadvi/chatflow/pkg/flow"
)

// AutomationStore persists automations. The save pipeline dispatches a
// SaveRequest as a create (no prior id) or an update (id-scoped); read
// operations return persisted records the deserializer can consume.
//
// Implementations return flow.ErrNotFound when no automation matches an id.
type AutomationStore interface {
	Create(ctx context.Context, req *flow.SaveRequest) (*flow.Record, error)
	Update(ctx context.Context, id string, req *flow.SaveRequest) (*flow.Record, error)
	Get(ctx context.Context, id string) (*flow.Record, error)
	List(ctx context.Context) ([]*flow.Record, error)
	Delete(ctx context.Context, id string) error
}

// ListingCache caches the automation collection listing. A successful save
// invalidates it so the next listing reflects the write.
type ListingCache interface {
	// Get returns the cached listing and whether the cache held one.
	Get(ctx context.Context) ([]*flow.Record, bool, error)
	Put(ctx context.Context, listing []*flow.Record) error
	Invalidate(ctx context.Context) error
}
