package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rahultadvi/chatflow/internal/logging"
	"github.com/rahultadvi/chatflow/pkg/flow"
	"github.com/rahultadvi/chatflow/pkg/ports"
	"github.com/rahultadvi/chatflow/pkg/refdata"
)

const maxFormMemory = 32 << 20

// Server is the reference implementation of the persistence API.
type Server struct {
	store     ports.AutomationStore
	cache     ports.ListingCache
	templates []refdata.Template
	members   []refdata.TeamMember
	logger    *slog.Logger

	mediaMu sync.Mutex
	media   map[string][]byte // uploaded binaries by part field
}

// ServerOption configures the Server.
type ServerOption func(*Server)

// WithCache wires a listing cache consulted by GET /automations and
// invalidated by writes.
func WithCache(cache ports.ListingCache) ServerOption {
	return func(s *Server) { s.cache = cache }
}

// WithTemplates seeds the template catalog served at /templates.
func WithTemplates(templates []refdata.Template) ServerOption {
	return func(s *Server) { s.templates = templates }
}

// WithTeamMembers seeds the team directory served at /team.
func WithTeamMembers(members []refdata.TeamMember) ServerOption {
	return func(s *Server) { s.members = members }
}

// WithServerLogger configures a logger.
func WithServerLogger(logger *slog.Logger) ServerOption {
	return func(s *Server) { s.logger = logger }
}

// NewServer creates a persistence API server over the given store.
func NewServer(store ports.AutomationStore, opts ...ServerOption) *Server {
	s := &Server{
		store:  store,
		logger: logging.NewNop(),
		media:  make(map[string][]byte),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates a ready-to-mount handler in one step.
func NewHandler(store ports.AutomationStore, opts ...ServerOption) http.Handler {
	return NewServer(store, opts...).Routes()
}

// Routes builds the chi router for the API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestMetrics)

	r.Route("/automations", func(r chi.Router) {
		r.Get("/", s.list)
		r.Post("/", s.create)
		r.Get("/{id}", s.get)
		r.Put("/{id}", s.update)
		r.Delete("/{id}", s.remove)
	})
	r.Get("/templates", s.listTemplates)
	r.Get("/team", s.listTeam)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// Media returns the uploaded binary stored under a part field name.
func (s *Server) Media(field string) ([]byte, bool) {
	s.mediaMu.Lock()
	defer s.mediaMu.Unlock()
	data, ok := s.media[field]
	return data, ok
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	req, media, err := parseSaveRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.store.Create(r.Context(), req)
	if err != nil {
		s.logger.Error("create failed", "err", err)
		respondError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	s.keepMedia(media)
	s.invalidateListing(r)
	saveDuration.Observe(time.Since(started).Seconds())
	respondJSON(w, http.StatusCreated, rec)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	started := time.Now()
	id := chi.URLParam(r, "id")
	req, media, err := parseSaveRequest(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	rec, err := s.store.Update(r.Context(), id, req)
	if errors.Is(err, flow.ErrNotFound) {
		respondError(w, http.StatusNotFound, "automation not found")
		return
	}
	if err != nil {
		s.logger.Error("update failed", "automation", id, "err", err)
		respondError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	s.keepMedia(media)
	s.invalidateListing(r)
	saveDuration.Observe(time.Since(started).Seconds())
	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, flow.ErrNotFound) {
		respondError(w, http.StatusNotFound, "automation not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "lookup failed")
		return
	}
	respondJSON(w, http.StatusOK, rec)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	if s.cache != nil {
		if listing, ok, err := s.cache.Get(r.Context()); err == nil && ok {
			respondJSON(w, http.StatusOK, listing)
			return
		}
	}

	listing, err := s.store.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "listing failed")
		return
	}

	if s.cache != nil {
		if err := s.cache.Put(r.Context(), listing); err != nil {
			s.logger.Warn("listing cache write failed", "err", err)
		}
	}
	respondJSON(w, http.StatusOK, listing)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		respondError(w, http.StatusInternalServerError, "delete failed")
		return
	}
	s.invalidateListing(r)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTemplates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, refdata.ApprovedTemplates(s.templates))
}

func (s *Server) listTeam(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.members)
}

func (s *Server) keepMedia(media map[string][]byte) {
	if len(media) == 0 {
		return
	}
	s.mediaMu.Lock()
	defer s.mediaMu.Unlock()
	for field, data := range media {
		s.media[field] = data
	}
}

func (s *Server) invalidateListing(r *http.Request) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(r.Context()); err != nil {
		s.logger.Warn("listing cache invalidation failed", "err", err)
	}
}

// parseSaveRequest decodes the multipart contract back into a SaveRequest
// plus the uploaded binaries keyed by part field.
func parseSaveRequest(r *http.Request) (*flow.SaveRequest, map[string][]byte, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		return nil, nil, fmt.Errorf("invalid multipart body: %w", err)
	}

	req := &flow.SaveRequest{
		Name:        r.FormValue("name"),
		Description: r.FormValue("description"),
		Trigger:     r.FormValue("trigger"),
	}
	if req.Name == "" {
		return nil, nil, errors.New("automation name is required")
	}

	if raw := r.FormValue("triggerConfig"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.TriggerConfig); err != nil {
			return nil, nil, fmt.Errorf("invalid triggerConfig: %w", err)
		}
	}
	if raw := r.FormValue("nodes"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Nodes); err != nil {
			return nil, nil, fmt.Errorf("invalid nodes: %w", err)
		}
	}
	if raw := r.FormValue("edges"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Edges); err != nil {
			return nil, nil, fmt.Errorf("invalid edges: %w", err)
		}
	}

	known := make(map[string]struct{}, len(req.Nodes))
	for _, n := range req.Nodes {
		known[n.NodeID] = struct{}{}
	}

	media := make(map[string][]byte)
	if r.MultipartForm != nil {
		for field, headers := range r.MultipartForm.File {
			nodeID, _, err := parsePartField(field)
			if err != nil {
				return nil, nil, err
			}
			if _, ok := known[nodeID]; !ok {
				return nil, nil, fmt.Errorf("media part %q references unknown node %q", field, nodeID)
			}
			if len(headers) == 0 {
				continue
			}
			f, err := headers[0].Open()
			if err != nil {
				return nil, nil, fmt.Errorf("read media part %q: %w", field, err)
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, nil, fmt.Errorf("read media part %q: %w", field, err)
			}
			media[field] = data
			req.Parts = append(req.Parts, flow.MediaPart{
				Field:    field,
				Filename: headers[0].Filename,
				MIME:     headers[0].Header.Get("Content-Type"),
				Data:     data,
			})
		}
	}

	return req, media, nil
}

// parsePartField splits a {nodeId}_{mediaClass}File part name.
func parsePartField(field string) (nodeID string, class flow.MediaClass, err error) {
	if !strings.HasSuffix(field, "File") {
		return "", "", fmt.Errorf("unexpected media part %q", field)
	}
	trimmed := strings.TrimSuffix(field, "File")
	sep := strings.LastIndex(trimmed, "_")
	if sep <= 0 {
		return "", "", fmt.Errorf("unexpected media part %q", field)
	}
	nodeID = trimmed[:sep]
	class = flow.MediaClass(trimmed[sep+1:])
	if !class.Valid() {
		return "", "", fmt.Errorf("unknown media class in part %q", field)
	}
	return nodeID, class, nil
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// Headers are gone; nothing left to do but note it.
		slog.Default().Warn("response encode failed", "err", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}
