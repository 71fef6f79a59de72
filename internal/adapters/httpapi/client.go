package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/rahultadvi/chatflow/internal/logging"
	"github.com/rahultadvi/chatflow/pkg/flow"
	"github.com/rahultadvi/chatflow/pkg/ports"
)

// RequestError carries the failure reported by the persistence API for a
// rejected request. Message is the server-provided text when the response
// body held one, else a generic fallback.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("persistence api: %s (status %d)", e.Message, e.Status)
}

const genericFailure = "the automation could not be saved"

// Client talks to the persistence API. It implements ports.AutomationStore.
type Client struct {
	base   string
	http   *http.Client
	logger *slog.Logger
}

var _ ports.AutomationStore = (*Client)(nil)

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// WithClientLogger configures a logger for request diagnostics.
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a persistence API client for the given base URL.
func NewClient(base string, opts ...ClientOption) *Client {
	c := &Client{
		base:   strings.TrimRight(base, "/"),
		http:   http.DefaultClient,
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create persists a new automation (POST).
func (c *Client) Create(ctx context.Context, req *flow.SaveRequest) (*flow.Record, error) {
	return c.send(ctx, http.MethodPost, c.base+"/automations", req)
}

// Update replaces an existing automation (PUT, id-scoped).
func (c *Client) Update(ctx context.Context, id string, req *flow.SaveRequest) (*flow.Record, error) {
	return c.send(ctx, http.MethodPut, c.base+"/automations/"+id, req)
}

// Get retrieves one automation record.
func (c *Client) Get(ctx context.Context, id string) (*flow.Record, error) {
	var rec flow.Record
	if err := c.getJSON(ctx, c.base+"/automations/"+id, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// List retrieves the automation collection.
func (c *Client) List(ctx context.Context) ([]*flow.Record, error) {
	var recs []*flow.Record
	if err := c.getJSON(ctx, c.base+"/automations", &recs); err != nil {
		return nil, err
	}
	return recs, nil
}

// Delete removes an automation.
func (c *Client) Delete(ctx context.Context, id string) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.base+"/automations/"+id, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return responseError(resp)
	}
	return nil
}

func (c *Client) send(ctx context.Context, method, url string, req *flow.SaveRequest) (*flow.Record, error) {
	body, contentType, err := encodeForm(req)
	if err != nil {
		return nil, fmt.Errorf("encode save request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", contentType)

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("persistence api unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, flow.ErrNotFound
	}
	if resp.StatusCode >= 300 {
		err := responseError(resp)
		c.logger.Warn("save rejected", "method", method, "status", resp.StatusCode, "err", err)
		return nil, err
	}

	var rec flow.Record
	if err := json.NewDecoder(resp.Body).Decode(&rec); err != nil {
		return nil, fmt.Errorf("decode save response: %w", err)
	}
	return &rec, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return flow.ErrNotFound
	}
	if resp.StatusCode >= 300 {
		return responseError(resp)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// encodeForm assembles the outbound multipart body: scalar fields, JSON
// fields, then one part per attached media binary.
func encodeForm(req *flow.SaveRequest) (*bytes.Buffer, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"name":        req.Name,
		"description": req.Description,
		"trigger":     req.Trigger,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", err
		}
	}

	triggerConfig := req.TriggerConfig
	if triggerConfig == nil {
		triggerConfig = map[string]any{}
	}
	if err := writeJSONField(w, "triggerConfig", triggerConfig); err != nil {
		return nil, "", err
	}
	if err := writeJSONField(w, "nodes", req.Nodes); err != nil {
		return nil, "", err
	}
	if err := writeJSONField(w, "edges", req.Edges); err != nil {
		return nil, "", err
	}

	for _, p := range req.Parts {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, p.Field, p.Filename))
		if p.MIME != "" {
			h.Set("Content-Type", p.MIME)
		}
		fw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := fw.Write(p.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

func writeJSONField(w *multipart.Writer, name string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", name, err)
	}
	return w.WriteField(name, string(raw))
}

func responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var body struct {
		Message string `json:"message"`
	}
	message := genericFailure
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		message = body.Message
	}
	return &RequestError{Status: resp.StatusCode, Message: message}
}
