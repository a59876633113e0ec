package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func scrape(t *testing.T, c *Collector) string {
	t.Helper()
	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	return rec.Body.String()
}

func TestMetricsMiddleware_UsesRoutePattern(t *testing.T) {
	collector := NewCollector()

	r := chi.NewRouter()
	r.Use(MetricsMiddleware(collector))
	r.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, id := range []string{"a", "b"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
	}

	assert.Contains(t, scrape(t, collector), `http_requests_total{method="GET",route="/items/{id}",status="202"} 2`)
}

func TestCollector_Recorders(t *testing.T) {
	collector := NewCollector()
	collector.RecordSearch(SearchResultHit)
	collector.RecordSearch(SearchResultHit)
	collector.RecordSearch(SearchResultRateLimited)
	collector.RecordPipelineRun("completed")
	collector.RecordInfographicGenerated()

	body := scrape(t, collector)
	assert.Contains(t, body, `search_requests_total{result="hit"} 2`)
	assert.Contains(t, body, `search_requests_total{result="rate_limited"} 1`)
	assert.Contains(t, body, `pipeline_runs_total{status="completed"} 1`)
	assert.Contains(t, body, "infographics_generated_total 1")
}

func TestCollector_NilSafe(t *testing.T) {
	var collector *Collector
	assert.NotPanics(t, func() {
		collector.RecordSearch(SearchResultMiss)
		collector.RecordPipelineRun("failed")
		collector.RecordInfographicGenerated()
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	h := MetricsMiddleware(nil)(next)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(context.Background(), TracingConfig{Enabled: false})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestTracingMiddleware(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })

	r := chi.NewRouter()
	r.Use(TracingMiddleware(TracerName))
	r.Get("/sessions/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/sessions/42", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /sessions/{id}", spans[0].Name())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.True(t, strings.EqualFold(spans[0].SpanContext().TraceID().String(), rec.Header().Get("X-Trace-ID")))
}
