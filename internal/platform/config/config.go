package config

import "os"

// Config is the immutable process configuration. Certificate material and
// bureau credentials are read once here and passed explicitly into the
// outbound clients; nothing reads the environment after startup.
type Config struct {
	Addr string

	TokenURL          string
	BureauBaseURL     string
	ClientID          string
	ClientSecret      string
	Scope             string
	RequesterDocument string
	CorrelationHeader string

	CertFile string
	KeyFile  string
}

// FromEnv builds the configuration from environment variables so main stays
// lean. Defaults target the homologation environment.
func FromEnv() Config {
	return Config{
		Addr: envOr("CRIVO_ADDR", ":5000"),

		TokenURL:          envOr("BUREAU_TOKEN_URL", "https://auth.bureau.example.com/oauth2/token"),
		BureauBaseURL:     envOr("BUREAU_BASE_URL", "https://api.bureau.example.com/credit-services/v1"),
		ClientID:          os.Getenv("BUREAU_CLIENT_ID"),
		ClientSecret:      os.Getenv("BUREAU_CLIENT_SECRET"),
		Scope:             envOr("BUREAU_SCOPE", "credit-report"),
		RequesterDocument: envOr("BUREAU_REQUESTER_DOCUMENT", "11222333000181"),
		CorrelationHeader: envOr("BUREAU_CORRELATION_HEADER", "X-Correlation-Id"),

		CertFile: envOr("BUREAU_CERT_FILE", "./certs/client.crt"),
		KeyFile:  envOr("BUREAU_KEY_FILE", "./certs/client.key"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
