package httpapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rahultadvi/chatflow/internal/adapters/httpapi"
	"github.com/rahultadvi/chatflow/pkg/flow"
	"github.com/rahultadvi/chatflow/pkg/refdata"
)

// countingCache records listing cache traffic.
type countingCache struct {
	listing       []*flow.Record
	hits          int
	puts          int
	invalidations int
}

func (c *countingCache) Get(ctx context.Context) ([]*flow.Record, bool, error) {
	if c.listing == nil {
		return nil, false, nil
	}
	c.hits++
	return c.listing, true, nil
}

func (c *countingCache) Put(ctx context.Context, listing []*flow.Record) error {
	c.puts++
	c.listing = listing
	return nil
}

func (c *countingCache) Invalidate(ctx context.Context) error {
	c.invalidations++
	c.listing = nil
	return nil
}

func saveReq(name string) *flow.SaveRequest {
	return &flow.SaveRequest{
		Name:    name,
		Trigger: "new_conversation",
		Nodes: []flow.NodeRecord{
			{NodeID: "n1", Type: flow.KindCustomReply, Position: 1, Data: map[string]any{"label": "Reply"}},
		},
		Edges: []flow.EdgeRecord{},
	}
}

func TestServer_RejectsMissingName(t *testing.T) {
	_, ts := newTestBackend(t)
	client := httpapi.NewClient(ts.URL)

	_, err := client.Create(context.Background(), saveReq(""))
	require.Error(t, err)

	var reqErr *httpapi.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
}

func TestServer_UpdateUnknownAutomation(t *testing.T) {
	_, ts := newTestBackend(t)
	client := httpapi.NewClient(ts.URL)

	_, err := client.Update(context.Background(), "no-such-id", saveReq("x"))
	assert.ErrorIs(t, err, flow.ErrNotFound)
}

func TestServer_ListUsesCache(t *testing.T) {
	cache := &countingCache{}
	_, ts := newTestBackend(t, httpapi.WithCache(cache))
	client := httpapi.NewClient(ts.URL)
	ctx := context.Background()

	_, err := client.Create(ctx, saveReq("cached"))
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidations, "writes invalidate the listing")

	// First list misses and fills the cache, second is served from it.
	_, err = client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.puts)

	listing, err := client.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, cache.hits)
	assert.Len(t, listing, 1)
}

func TestServer_DeleteInvalidatesCache(t *testing.T) {
	cache := &countingCache{}
	_, ts := newTestBackend(t, httpapi.WithCache(cache))
	client := httpapi.NewClient(ts.URL)
	ctx := context.Background()

	rec, err := client.Create(ctx, saveReq("doomed"))
	require.NoError(t, err)

	require.NoError(t, client.Delete(ctx, rec.ID))
	assert.Equal(t, 2, cache.invalidations)
}

func TestServer_Templates(t *testing.T) {
	_, ts := newTestBackend(t, httpapi.WithTemplates([]refdata.Template{
		{ID: "t1", Name: "order_update", Status: refdata.TemplateApproved},
		{ID: "t2", Name: "draft_promo", Status: refdata.TemplatePending},
	}))

	resp, err := http.Get(ts.URL + "/templates")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var templates []refdata.Template
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&templates))
	require.Len(t, templates, 1, "only approved templates are offered")
	assert.Equal(t, "t1", templates[0].ID)
}

func TestServer_Team(t *testing.T) {
	_, ts := newTestBackend(t, httpapi.WithTeamMembers([]refdata.TeamMember{
		{ID: "u1", FirstName: "Ada", LastName: "Lovelace"},
	}))

	resp, err := http.Get(ts.URL + "/team")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var members []refdata.TeamMember
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&members))
	require.Len(t, members, 1)
	assert.Equal(t, "u1", members[0].ID)
}

func TestServer_RejectsMediaForUnknownNode(t *testing.T) {
	_, ts := newTestBackend(t)
	client := httpapi.NewClient(ts.URL)

	req := saveReq("media")
	req.Parts = []flow.MediaPart{{
		Field:    flow.PartField("ghost", flow.MediaImage),
		Filename: "logo.png",
		MIME:     "image/png",
		Data:     []byte("png"),
	}}

	_, err := client.Create(context.Background(), req)
	require.Error(t, err)

	var reqErr *httpapi.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Contains(t, reqErr.Message, "unknown node")
}

func TestServer_MetricsEndpoint(t *testing.T) {
	_, ts := newTestBackend(t)

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
