package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/simaogato/banksynth/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveRun(t *testing.T) {
	m := New()

	m.ObserveRun(domain.GenerationStats{
		CustomerCount:       10,
		KYCCount:            10,
		AccountCount:        16,
		TransactionCount:    300,
		TransferCount:       40,
		SkippedTransactions: 3,
		ElapsedSeconds:      0.2,
	})

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs))
	assert.Equal(t, 10.0, testutil.ToFloat64(m.Rows.WithLabelValues("customers")))
	assert.Equal(t, 16.0, testutil.ToFloat64(m.Rows.WithLabelValues("accounts")))
	assert.Equal(t, 300.0, testutil.ToFloat64(m.Rows.WithLabelValues("transactions")))
	assert.Equal(t, 40.0, testutil.ToFloat64(m.Rows.WithLabelValues("transfers")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SkippedTransactions))
}

func TestMetrics_Failures(t *testing.T) {
	m := New()

	m.StageFailed("transfers")
	m.SinkFailed("filesystem")
	m.SinkFailed("filesystem")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.StageFailures.WithLabelValues("transfers")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.SinkFailures.WithLabelValues("filesystem")))
}

func TestMetrics_Handler(t *testing.T) {
	m := New()
	m.StageFailed("transfers")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `banksynth_stage_failures_total{stage="transfers"} 1`)
}
