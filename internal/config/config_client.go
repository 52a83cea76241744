package config

import "time"

// ClientConfig holds the settings needed by the remote-call client helper.
// Credentials are explicit per-client state: the client carries its own
// (email, password) pair supplied at construction, never global variables.
type ClientConfig struct {
	// Adapter holds the connection settings for the server API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Credentials is the account the client acts as.
	Credentials Credentials `envPrefix:"CREDENTIALS_"`
}

// Adapter holds connection settings for the remote API.
type Adapter struct {
	// BaseURL is the root URL of the server API (e.g. "http://localhost:8080").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds every outbound call (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Credentials is the credential pair the client re-sends with every call.
type Credentials struct {
	// Env: CREDENTIALS_EMAIL
	Email string `env:"EMAIL"`
	// Env: CREDENTIALS_PASSWORD
	Password string `env:"PASSWORD"`
}

// GetClientConfig loads the client configuration from environment variables.
// Command-line overrides are applied by the caller, which owns flag parsing.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return cfg, nil
}
