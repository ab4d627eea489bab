package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bid-tools/proposal-atlas/pkg/export"
	"github.com/bid-tools/proposal-atlas/pkg/models/api"
	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/analysis"
	"github.com/bid-tools/proposal-atlas/pkg/services/currency"
	"github.com/bid-tools/proposal-atlas/pkg/services/extract"
	"github.com/bid-tools/proposal-atlas/pkg/services/metrics"
	"github.com/bid-tools/proposal-atlas/pkg/services/report"
)

func newTestAPI(t *testing.T, exportURL string) *WebAPI {
	t.Helper()

	rates := domain.RateTable{
		Reference: domain.KGS,
		Rates: map[domain.Code]float64{
			domain.KGS: 1,
			domain.RUB: 1,
			domain.USD: 90,
		},
	}

	analyzer := analysis.NewAnalyzer(
		extract.NewExtractor(),
		currency.NewNormalizer(rates),
		metrics.NewAggregator(),
		report.NewAssembler(rates.Reference),
	)

	logger := zerolog.New(zerolog.NewTestWriter(t))
	return NewWebAPI(logger, Config{
		Addr:            ":0",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Analyzer: analyzer,
			Exporter: export.NewClient(export.Config{BaseURL: exportURL}),
			Rates:    rates,
		},
	})
}

func TestWebAPI_Analysis(t *testing.T) {
	server := httptest.NewServer(newTestAPI(t, "").Router())
	defer server.Close()

	body := `{
		"proposals": [
			{"id": "p1", "company": "Alpha", "pricing": "Итого: 500 000 руб", "complianceScore": 92},
			{"id": "p2", "companyName": "Beta", "budget": "Итого: 600 000 руб", "complianceScore": 68}
		]
	}`

	resp, err := http.Post(server.URL+"/api/v1/analysis", "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep api.Report
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))

	assert.Equal(t, 2, rep.Count)
	require.NotNil(t, rep.Best)
	assert.Equal(t, "Alpha", rep.Best.Company)
	require.Len(t, rep.Evaluations, 2)
	assert.Equal(t, 1, rep.Evaluations[0].Rank)
	assert.Equal(t, "accept", rep.Evaluations[0].Recommendation)
	assert.Equal(t, "conditional_accept", rep.Evaluations[1].Recommendation)
	// The legacy companyName/budget variants resolve at the boundary.
	assert.Equal(t, "Beta", rep.Evaluations[1].Proposal.Company)
	assert.Equal(t, "600 000 ₽", rep.Evaluations[1].PriceDisplay)
}

func TestWebAPI_AnalysisValidation(t *testing.T) {
	server := httptest.NewServer(newTestAPI(t, "").Router())
	defer server.Close()

	resp, err := http.Post(server.URL+"/api/v1/analysis", "application/json", bytes.NewBufferString(`{"proposals":[]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestWebAPI_Export(t *testing.T) {
	adapter := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req api.ExportRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "pdf", req.Format)
		_ = json.NewEncoder(w).Encode(api.ExportResponse{Success: true, Filename: "report.pdf"})
	}))
	defer adapter.Close()

	server := httptest.NewServer(newTestAPI(t, adapter.URL).Router())
	defer server.Close()

	payload, _ := json.Marshal(api.ExportPayload{
		Format: "pdf",
		Report: api.Report{Title: "Commercial Proposal Evaluation"},
	})
	resp, err := http.Post(server.URL+"/api/v1/analysis/export", "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out api.ExportResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Success)
	assert.Equal(t, "report.pdf", out.Filename)
}

func TestWebAPI_Currencies(t *testing.T) {
	server := httptest.NewServer(newTestAPI(t, "").Router())
	defer server.Close()

	resp, err := http.Get(server.URL + "/api/v1/currencies")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out struct {
		Reference  string           `json:"reference_currency"`
		Currencies []map[string]any `json:"currencies"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "KGS", out.Reference)
	assert.Len(t, out.Currencies, 8)
}
