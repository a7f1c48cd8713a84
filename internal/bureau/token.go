package bureau

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/attribute"

	"crivo/internal/platform/metrics"
)

// TokenProvider exchanges the configured client credentials for a bearer
// token. One exchange per inbound request; the token is never cached or
// refreshed, so correctness (always-fresh token) wins over latency.
type TokenProvider struct {
	httpClient *http.Client
	cfg        Config
	logger     *slog.Logger
	metrics    *metrics.Metrics
}

func NewTokenProvider(httpClient *http.Client, cfg Config, logger *slog.Logger, m *metrics.Metrics) *TokenProvider {
	return &TokenProvider{httpClient: httpClient, cfg: cfg, logger: logger, metrics: m}
}

// Fetch performs the client-credentials grant. Any non-200 answer means no
// token: the caller treats that as a hard failure for the current request.
func (p *TokenProvider) Fetch(ctx context.Context) (string, error) {
	ctx, span := tracer.Start(ctx, "bureau.token")
	defer span.End()

	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", p.cfg.ClientID)
	form.Set("client_secret", p.cfg.ClientSecret)
	form.Set("scope", p.cfg.Scope)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("building token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		p.metrics.IncrementTokenOutcome("error")
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode != http.StatusOK {
		p.metrics.IncrementTokenOutcome("denied")
		body, _ := io.ReadAll(resp.Body)
		p.logger.WarnContext(ctx, "token endpoint refused credentials",
			"status", resp.StatusCode,
			"body_size", len(body),
		)
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		p.metrics.IncrementTokenOutcome("error")
		return "", fmt.Errorf("decoding token response: %w", err)
	}
	if payload.AccessToken == "" {
		p.metrics.IncrementTokenOutcome("error")
		return "", fmt.Errorf("token response has no access_token")
	}

	p.metrics.IncrementTokenOutcome("ok")
	p.logExpiry(ctx, payload.AccessToken)
	return payload.AccessToken, nil
}

// logExpiry decodes the token without verifying it, purely to surface its
// expiry in logs. The token is treated as opaque everywhere else, so decode
// failures are ignored.
func (p *TokenProvider) logExpiry(ctx context.Context, token string) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return
	}
	p.logger.DebugContext(ctx, "bureau token acquired", "expires_at", exp.Time)
}
