package adapters

import (
	"github.com/bid-tools/proposal-atlas/pkg/models/api"
	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// BuildExportRequest flattens a serialized report into the payload shape
// export adapters accept. Presentation metadata rides alongside the report
// fields; adapter-side styling stays out of the pipeline.
func BuildExportRequest(format string, r api.Report) api.ExportRequest {
	req := api.ExportRequest{
		Format:       format,
		Title:        r.Title,
		Reference:    r.Reference,
		Count:        r.Count,
		AverageScore: r.AverageScore,
		Distribution: r.Distribution,
		Evaluations:  r.Evaluations,
	}

	if r.Best != nil {
		req.BestCompany = r.Best.Company
		req.BestScore = r.Best.Score
	}

	hints := make(map[string]string)
	for _, ev := range r.Evaluations {
		req.Companies = append(req.Companies, ev.Proposal.Company)
		for _, code := range ev.Currencies {
			if _, ok := hints[code]; !ok {
				hints[code] = domain.Code(code).Symbol()
			}
		}
	}
	if len(hints) > 0 {
		req.CurrencyHints = hints
	}

	return req
}
