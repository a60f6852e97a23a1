package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/twmerge/internal/logger"
	"github.com/alexisbeaulieu97/twmerge/internal/metrics"
	"github.com/alexisbeaulieu97/twmerge/pkg/twmerge"
)

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestMergeEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "split entries", body: `{"classes": ["px-4 py-2", "px-8"]}`, want: "py-2 px-8"},
		{name: "overlapping sides", body: `{"classes": ["p-4", "px-2", "py-6"]}`, want: "px-2 py-6"},
		{name: "unsafe dropped", body: `{"classes": ["flex javascript:alert(1)"]}`, want: "flex"},
		{name: "empty list", body: `{"classes": []}`, want: ""},
	}

	h := New(Options{}).Handler()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodPost, "/v1/merge", tt.body)
			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var resp mergeResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, tt.want, resp.Result)
		})
	}
}

func TestMergeRejectsBadBodies(t *testing.T) {
	t.Parallel()

	h := New(Options{MaxBodyBytes: 64}).Handler()

	rec := do(t, h, http.MethodPost, "/v1/merge", `{"classes": [`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid JSON body")

	rec = do(t, h, http.MethodPost, "/v1/merge", `{"classes": "px-4"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, "/v1/merge", `{"klasses": ["px-4"]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	large := `{"classes": ["` + strings.Repeat("p-4 ", 100) + `"]}`
	rec = do(t, h, http.MethodPost, "/v1/merge", large)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	rec = do(t, h, http.MethodGet, "/v1/merge", "")
	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestExplainEndpoint(t *testing.T) {
	t.Parallel()

	h := New(Options{}).Handler()
	rec := do(t, h, http.MethodPost, "/v1/explain", `{"classes": ["px-4 py-2", "px-8", "url(x)"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var trace twmerge.Trace
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trace))
	require.Equal(t, "py-2 px-8", trace.Output)
	require.Len(t, trace.Decisions, 4)
	require.Equal(t, twmerge.OutcomeOverridden, trace.Decisions[0].Outcome)
	require.NotNil(t, trace.Decisions[0].OverriddenBy)
	require.Equal(t, 2, *trace.Decisions[0].OverriddenBy)
	require.Equal(t, twmerge.OutcomeRejected, trace.Decisions[3].Outcome)
	require.Equal(t, twmerge.ReasonForbiddenSubstring, trace.Decisions[3].Reason)

	rec = do(t, h, http.MethodPost, "/v1/explain", `{"classes": []}`)
	require.JSONEq(t, `{"output": "", "decisions": []}`, rec.Body.String())
}

func TestClassifyEndpoint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		code  int
		want  string
	}{
		{query: "token=px-4", code: http.StatusOK, want: `{"token":"px-4","group":"padding-x"}`},
		{query: "token=%20bg-red-500%20", code: http.StatusOK, want: `{"token":"bg-red-500","group":"background-color"}`},
		{query: "token=card", code: http.StatusOK, want: `{"token":"card"}`},
		{query: "token=expression(x)", code: http.StatusOK, want: `{"token":"expression(x)","reason":"forbidden-substring"}`},
		{query: "", code: http.StatusBadRequest, want: `{"error":"missing token query parameter"}`},
	}

	h := New(Options{}).Handler()
	for _, tt := range tests {
		tt := tt
		t.Run(tt.query, func(t *testing.T) {
			t.Parallel()
			rec := do(t, h, http.MethodGet, "/v1/classify?"+tt.query, "")
			require.Equal(t, tt.code, rec.Code)
			require.JSONEq(t, tt.want, rec.Body.String())
		})
	}
}

func TestHealthAndMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	obs, err := metrics.NewObserver(reg)
	require.NoError(t, err)

	h := New(Options{Merger: twmerge.New(twmerge.WithObserver(obs)), Gatherer: reg}).Handler()

	rec := do(t, h, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())

	rec = do(t, h, http.MethodPost, "/v1/merge", `{"classes": ["px-4 px-8"]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "twmerge_merges_total 1")
	assert.Contains(t, rec.Body.String(), `twmerge_tokens_total{outcome="overridden"} 1`)
}

func TestMetricsRouteRequiresGatherer(t *testing.T) {
	t.Parallel()

	rec := do(t, New(Options{}).Handler(), http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRequestLogging(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "info", Writer: &buf})
	require.NoError(t, err)

	h := New(Options{Logger: log}).Handler()
	do(t, h, http.MethodGet, "/healthz", "")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	require.Equal(t, "request", entry["message"])
	require.Equal(t, "GET", entry["method"])
	require.Equal(t, "/healthz", entry["path"])
	require.EqualValues(t, 200, entry["status"])
	require.NotEmpty(t, entry["request_id"])
	require.Equal(t, "server", entry["component"])
}

func TestServeShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(Options{}).Serve(ctx, ln) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
