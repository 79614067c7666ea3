package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type observed struct {
	method, route, status string
}

type fakeMetrics struct {
	calls []observed
}

func (f *fakeMetrics) ObserveHTTPRequest(method, route, status string, _ time.Duration) {
	f.calls = append(f.calls, observed{method, route, status})
}

type recordingLogger struct {
	lines []string
}

func (l *recordingLogger) Info(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func newRouter(m HTTPMetrics, log Logger) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, AccessLog(log), MetricsMiddleware(m))
	r.HandleFunc("/locations/{locationId}/config", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	return r
}

func TestMiddleware_RouteTemplateAndStatus(t *testing.T) {
	metrics := &fakeMetrics{}
	log := &recordingLogger{}
	router := newRouter(metrics, log)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/locations/42/config", nil))

	require.Len(t, metrics.calls, 1)
	assert.Equal(t, observed{http.MethodGet, "/locations/{locationId}/config", "418"}, metrics.calls[0])

	require.Len(t, log.lines, 1)
	assert.Contains(t, log.lines[0], "GET /locations/{locationId}/config -> 418")
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

func TestRequestID_PropagatesIncomingHeader(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(RequestIDHeader))
}
