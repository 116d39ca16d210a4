package mailchimp

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultDatacenter = "us1"
	defaultTimeout    = 10 * time.Second
)

// Config is the immutable configuration of a Client.
type Config struct {
	// APIKey is the Mailchimp API key, e.g. "0123abcd-us6".
	APIKey string `env:"MAILCHIMP_API_KEY"`
	// Endpoint is the API root. When empty it is derived from the datacenter
	// suffix of APIKey.
	Endpoint string `env:"MAILCHIMP_ENDPOINT"`
	// Debug logs a trace record before and after every exchange.
	Debug bool `env:"MAILCHIMP_DEBUG"`
	// Timeout bounds each transport exchange.
	Timeout time.Duration `env:"MAILCHIMP_TIMEOUT" envDefault:"10s"`
}

// LoadConfigFromEnv reads the MAILCHIMP_* environment variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Datacenter returns the datacenter encoded in an API key, the part after the
// last dash. Keys without one belong to us1.
func Datacenter(apiKey string) string {
	i := strings.LastIndex(apiKey, "-")
	if i < 0 || i == len(apiKey)-1 {
		return defaultDatacenter
	}
	return apiKey[i+1:]
}

// EndpointForKey returns the v2.0 API root for an API key.
func EndpointForKey(apiKey string) string {
	return "https://" + Datacenter(apiKey) + ".api.mailchimp.com/2.0"
}

// ResolvedEndpoint returns Endpoint, or the root derived from APIKey.
func (c Config) ResolvedEndpoint() string {
	if c.Endpoint != "" {
		return strings.TrimSuffix(c.Endpoint, "/")
	}
	return EndpointForKey(c.APIKey)
}
