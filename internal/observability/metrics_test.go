package observability_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/complexityscope/complexityscope/internal/observability"
)

func TestMetrics_HandlerExposesRegisteredInstruments(t *testing.T) {
	t.Parallel()

	metrics := observability.NewMetrics()
	metrics.ModulesAnalysed.Add(3)
	metrics.CoreSize.Set(33.3)
	metrics.AnalysisDuration.Observe(0.5)

	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	rec := httptest.NewRecorder()

	metrics.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "complexityscope_modules_analysed_total 3")
	assert.Contains(t, body, "complexityscope_core_size_percent 33.3")
	assert.True(t, strings.Contains(body, "complexityscope_analysis_duration_seconds"))
}

func TestNewMetrics_IndependentRegistriesDoNotCollide(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() {
		observability.NewMetrics()
		observability.NewMetrics()
	})
}
