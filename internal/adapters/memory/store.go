// Package memory provides the in-memory AutomationStore used by the
// reference server and by tests. Safe for concurrent use.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/rahultadvi/chatflow/pkg/flow"
)

// Store implements ports.AutomationStore in memory.
type Store struct {
	mu      sync.RWMutex
	records map[string]*flow.Record
	order   []string // insertion order, kept stable for listings
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		records: make(map[string]*flow.Record),
	}
}

// Create persists a new automation and assigns it an id.
func (s *Store) Create(ctx context.Context, req *flow.SaveRequest) (*flow.Record, error) {
	rec := recordFromRequest(uuid.NewString(), req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[rec.ID] = rec
	s.order = append(s.order, rec.ID)
	return copyRecord(rec), nil
}

// Update replaces the automation with the given id.
func (s *Store) Update(ctx context.Context, id string, req *flow.SaveRequest) (*flow.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return nil, flow.ErrNotFound
	}
	rec := recordFromRequest(id, req)
	s.records[id] = rec
	return copyRecord(rec), nil
}

// Get retrieves one automation.
func (s *Store) Get(ctx context.Context, id string) (*flow.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, flow.ErrNotFound
	}
	return copyRecord(rec), nil
}

// List returns every automation in insertion order.
func (s *Store) List(ctx context.Context) ([]*flow.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*flow.Record, 0, len(s.order))
	for _, id := range s.order {
		if rec, ok := s.records[id]; ok {
			out = append(out, copyRecord(rec))
		}
	}
	return out, nil
}

// Delete removes an automation. Unknown ids are a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return nil
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func recordFromRequest(id string, req *flow.SaveRequest) *flow.Record {
	rec := &flow.Record{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		Trigger:       req.Trigger,
		TriggerConfig: req.TriggerConfig,
		Nodes:         make([]flow.NodeRecord, len(req.Nodes)),
		Edges:         make([]flow.EdgeRecord, len(req.Edges)),
	}
	copy(rec.Nodes, req.Nodes)
	copy(rec.Edges, req.Edges)
	return rec
}

// copyRecord isolates callers from store-held slices so a later update
// can't mutate what a reader already holds.
func copyRecord(rec *flow.Record) *flow.Record {
	out := *rec
	out.Nodes = make([]flow.NodeRecord, len(rec.Nodes))
	copy(out.Nodes, rec.Nodes)
	out.Edges = make([]flow.EdgeRecord, len(rec.Edges))
	copy(out.Edges, rec.Edges)
	return &out
}
