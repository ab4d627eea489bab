package analysis

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/bid-tools/proposal-atlas/pkg/adapters"
	"github.com/bid-tools/proposal-atlas/pkg/export"
	"github.com/bid-tools/proposal-atlas/pkg/models/api"
	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
	"github.com/bid-tools/proposal-atlas/pkg/services/analysis"
)

type Handler struct {
	analyzer analysis.Analyzer
	exporter export.Client
	rates    domain.RateTable
}

func NewHandler(analyzer analysis.Analyzer, exporter export.Client, rates domain.RateTable) *Handler {
	return &Handler{
		analyzer: analyzer,
		exporter: exporter,
		rates:    rates,
	}
}

func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var req api.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Proposals) == 0 {
		http.Error(w, "no proposals provided", http.StatusBadRequest)
		return
	}

	records := adapters.MapAnalyzeRequestApiToDomain(req)
	report, err := h.analyzer.Analyze(ctx, records)
	if err != nil {
		logger.Error().Err(err).Msg("analysis failed")
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(adapters.MapReportDomainToApi(*report)); err != nil {
		logger.Error().Err(err).Msg("failed to encode report")
	}
}

func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	var payload api.ExportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Format == "" {
		http.Error(w, "export format is required", http.StatusBadRequest)
		return
	}

	req := adapters.BuildExportRequest(payload.Format, payload.Report)
	resp, err := h.exporter.Export(ctx, req)
	if err != nil {
		logger.Error().Err(err).Str("format", payload.Format).Msg("export failed")
		http.Error(w, "export failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		logger.Error().Err(err).Msg("failed to encode export response")
	}
}

// Currencies lists the supported codes and the configured rate table so
// clients can label prices without hardcoding the closed set.
func (h *Handler) Currencies(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	type entry struct {
		Code   string  `json:"code"`
		Symbol string  `json:"symbol"`
		Name   string  `json:"name"`
		Rate   float64 `json:"rate"`
	}

	out := struct {
		Reference  string  `json:"reference_currency"`
		Currencies []entry `json:"currencies"`
	}{Reference: string(h.rates.Reference)}

	for _, code := range domain.SupportedCodes() {
		out.Currencies = append(out.Currencies, entry{
			Code:   string(code),
			Symbol: code.Symbol(),
			Name:   code.Name(),
			Rate:   h.rates.Rates[code],
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		logger.Error().Err(err).Msg("failed to encode currencies")
	}
}
