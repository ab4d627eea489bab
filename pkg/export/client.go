package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bid-tools/proposal-atlas/pkg/models/api"
)

// Client hands a flattened report to an external export adapter. The
// adapter owns document rendering entirely; this client never retries.
// Assembly is side-effect-free, so callers re-invoke the whole run if they
// want another attempt.
type Client interface {
	Export(ctx context.Context, req api.ExportRequest) (*api.ExportResponse, error)
}

type Config struct {
	BaseURL string
	Timeout time.Duration
}

type client struct {
	http    *http.Client
	baseURL string
}

func NewClient(cfg Config) Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &client{
		http:    &http.Client{Timeout: timeout},
		baseURL: cfg.BaseURL,
	}
}

func (c *client) Export(ctx context.Context, req api.ExportRequest) (*api.ExportResponse, error) {
	logger := zerolog.Ctx(ctx)

	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode export request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build export request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("export adapter unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("export adapter returned status %d", resp.StatusCode)
	}

	var out api.ExportResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode export response: %w", err)
	}

	if !out.Success {
		logger.Warn().
			Str("request_id", req.RequestID).
			Str("format", req.Format).
			Str("error", out.Error).
			Msg("export adapter reported failure")
	}

	return &out, nil
}
