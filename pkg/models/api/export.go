package api

// ExportRequest is the flat payload export adapters accept: every report
// field plus presentation metadata. Adapters own styling and templates;
// the pipeline owns none of it.
type ExportRequest struct {
	RequestID     string            `json:"request_id"`
	Format        string            `json:"format"`
	Title         string            `json:"title"`
	Companies     []string          `json:"companies"`
	Reference     string            `json:"reference_currency"`
	Count         int               `json:"proposal_count"`
	AverageScore  float64           `json:"average_score"`
	BestCompany   string            `json:"best_company,omitempty"`
	BestScore     float64           `json:"best_score,omitempty"`
	Distribution  Distribution      `json:"distribution"`
	Evaluations   []Evaluation      `json:"evaluations"`
	CurrencyHints map[string]string `json:"currency_hints,omitempty"`
}

// ExportResponse is the adapter's verdict. A false Success carries a
// user-facing Error; the pipeline never retries on the caller's behalf.
type ExportResponse struct {
	Success  bool   `json:"success"`
	FileURL  string `json:"file_url,omitempty"`
	Filename string `json:"filename,omitempty"`
	Error    string `json:"error,omitempty"`
}

// ExportPayload is what clients post to the export endpoint: the canonical
// report they already hold plus the desired output format.
type ExportPayload struct {
	Format string `json:"format"`
	Report Report `json:"report"`
}
