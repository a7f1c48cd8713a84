// Package bureau holds the outbound integration with the credit bureau API:
// the mutual-TLS HTTP client, the OAuth client-credentials token exchange and
// the authenticated query client. Everything here is stateless; a fresh token
// is fetched for every inbound request and nothing is cached or retried.
package bureau

import (
	"crypto/tls"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("crivo/internal/bureau")

// Endpoint names the two query variants the bureau exposes.
type Endpoint string

const (
	EndpointScores  Endpoint = "credit-scores"
	EndpointReports Endpoint = "credit-scores-reports"
)

// Config is the immutable outbound configuration shared by the token
// provider and the query client.
type Config struct {
	TokenURL          string
	BaseURL           string
	ClientID          string
	ClientSecret      string
	Scope             string
	RequesterDocument string
	CorrelationHeader string
	CertFile          string
	KeyFile           string
}

// NewHTTPClient loads the client certificate/key pair once and returns an
// HTTP client that presents it on every connection. No timeout is set: the
// bureau calls are synchronous and unbounded, which is the documented
// behavior of this gateway.
func NewHTTPClient(certFile, keyFile string) (*http.Client, error) {
	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, fmt.Errorf("loading client certificate: %w", err)
	}
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{cert},
			MinVersion:   tls.VersionTLS12,
		},
	}
	return &http.Client{Transport: transport}, nil
}
