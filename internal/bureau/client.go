package bureau

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"crivo/internal/platform/metrics"
)

// QueryClient issues authenticated document lookups against the bureau.
type QueryClient struct {
	httpClient *http.Client
	cfg        Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewQueryClient(httpClient *http.Client, cfg Config, logger *slog.Logger, m *metrics.Metrics) *QueryClient {
	return &QueryClient{httpClient: httpClient, cfg: cfg, logger: logger, metrics: m}
}

// Query POSTs the subject document to the named endpoint with a fresh
// correlation identifier. A 200 returns the parsed body verbatim. Any other
// status returns a data-shaped error envelope and a nil error: the envelope
// flows into the normalizer, which treats it as an empty report. Only
// transport-level failures and undecodable bodies surface as errors.
func (c *QueryClient) Query(ctx context.Context, token string, endpoint Endpoint, subjectDocument string) (map[string]any, error) {
	ctx, span := tracer.Start(ctx, "bureau.query")
	defer span.End()
	span.SetAttributes(attribute.String("bureau.endpoint", string(endpoint)))

	correlationID := uuid.NewString()

	body, err := json.Marshal(map[string]string{
		"requesterDocument": c.cfg.RequesterDocument,
		"subjectDocument":   subjectDocument,
	})
	if err != nil {
		return nil, fmt.Errorf("building query body: %w", err)
	}

	queryURL := c.cfg.BaseURL + "/" + string(endpoint)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, queryURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building query request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set(c.cfg.CorrelationHeader, correlationID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.ObserveBureauLatency(string(endpoint), time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("bureau query failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.WarnContext(ctx, "bureau returned non-200",
			"endpoint", string(endpoint),
			"status", resp.StatusCode,
			"correlation_id", correlationID,
		)
		return map[string]any{
			"success": false,
			"error":   resp.StatusCode,
			"message": string(raw),
		}, nil
	}

	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding bureau response: %w", err)
	}
	return payload, nil
}
