package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var seen *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api-v1/users", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, seen
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rr, _ := executeTraceID(h, "")

	got := rr.Header().Get(traceIDHeader)
	require.NotEmpty(t, got)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated trace id must be a valid UUID")
}

func TestWithTraceID_PropagatesIncomingID(t *testing.T) {
	h, _, _ := newTestHandler(t)

	rr, _ := executeTraceID(h, "incoming-trace-id")

	assert.Equal(t, "incoming-trace-id", rr.Header().Get(traceIDHeader))
}

func TestWithTraceID_AttachesLoggerToContext(t *testing.T) {
	h, _, _ := newTestHandler(t)

	_, seen := executeTraceID(h, "")

	require.NotNil(t, seen)
	// The request seen downstream carries a derived context.
	assert.NotEqual(t, httptest.NewRequest(http.MethodGet, "/api-v1/users", nil).Context(), seen.Context())
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h, _, _ := newTestHandler(t)

	first, _ := executeTraceID(h, "")
	second, _ := executeTraceID(h, "")

	assert.NotEqual(t, first.Header().Get(traceIDHeader), second.Header().Get(traceIDHeader))
}
