package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T, m *Metrics) string {
	t.Helper()
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestMetrics_Exposition(t *testing.T) {
	m := New()
	m.ObserveRPC("/fairs.v1.SplitService/AddItem", "ok", 3*time.Millisecond)
	m.ObserveRPC("/fairs.v1.SplitService/AddItem", "ok", time.Millisecond)
	m.ObserveRPC("/fairs.v1.GroupService/GetGroup", "not_found", time.Millisecond)
	m.ObserveParse("inline", 2)
	m.ObserveParse("split", 3)

	body := scrape(t, m)
	assert.Contains(t, body, `fairs_rpc_requests_total{code="ok",procedure="/fairs.v1.SplitService/AddItem"} 2`)
	assert.Contains(t, body, `fairs_rpc_requests_total{code="not_found",procedure="/fairs.v1.GroupService/GetGroup"} 1`)
	assert.Contains(t, body, `fairs_receipt_parses_total{strategy="inline"} 1`)
	assert.Contains(t, body, `fairs_receipt_scanned_items_total 5`)
	assert.Contains(t, body, "go_goroutines")
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRPC("/x", "ok", time.Second)
		m.ObserveParse("none", 0)
	})

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, 404, rec.Code)
}
