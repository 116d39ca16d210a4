// Package config layers command-line flags, MAILCHIMP_* environment variables
// and an optional mailchimp.yaml file into the CLI configuration.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go.miloapis.com/mailchimp/pkg/mailchimp"
)

const (
	FlagAPIKey   = "api-key"
	FlagEndpoint = "endpoint"
	FlagDebug    = "debug"
	FlagTimeout  = "timeout"
	FlagRetries  = "retries"
	FlagConfig   = "config"
)

// Config is the resolved CLI configuration.
type Config struct {
	APIKey   string
	Endpoint string
	Debug    bool
	Timeout  time.Duration
	// Retries wraps the transport in a retry decorator when positive.
	Retries int
	// File is the config file that was read, if any.
	File string
}

// BindFlags registers the connection flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	fs.String(FlagAPIKey, "", "Mailchimp API key (env MAILCHIMP_API_KEY)")
	fs.String(FlagEndpoint, "", "API root, derived from the key's datacenter when empty (env MAILCHIMP_ENDPOINT)")
	fs.Bool(FlagDebug, false, "Log every request and response (env MAILCHIMP_DEBUG)")
	fs.Duration(FlagTimeout, 10*time.Second, "Timeout for each request (env MAILCHIMP_TIMEOUT)")
	fs.Int(FlagRetries, 0, "Retry connection failures and 429/502/503/504 responses up to this many times (env MAILCHIMP_RETRIES)")
	fs.String(FlagConfig, "", "Config file, defaults to ./mailchimp.yaml or $HOME/.config/mailchimp/mailchimp.yaml")
}

// Load resolves the configuration. Changed flags win over the environment,
// which wins over the config file.
func Load(fs *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MAILCHIMP")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	if file := v.GetString(FlagConfig); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("mailchimp")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mailchimp")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		APIKey:   v.GetString(FlagAPIKey),
		Endpoint: v.GetString(FlagEndpoint),
		Debug:    v.GetBool(FlagDebug),
		Timeout:  v.GetDuration(FlagTimeout),
		Retries:  v.GetInt(FlagRetries),
		File:     v.ConfigFileUsed(),
	}
	if cfg.Retries < 0 {
		return Config{}, fmt.Errorf("%s must not be negative", FlagRetries)
	}
	return cfg, nil
}

// Mailchimp returns the library configuration.
func (c Config) Mailchimp() mailchimp.Config {
	return mailchimp.Config{
		APIKey:   c.APIKey,
		Endpoint: c.Endpoint,
		Debug:    c.Debug,
		Timeout:  c.Timeout,
	}
}

// NewClient builds a client from the configuration. opts are applied after
// the ones derived from c.
func (c Config) NewClient(opts ...mailchimp.ClientOption) (*mailchimp.Client, error) {
	mc := c.Mailchimp()
	if c.Retries > 0 {
		timeout := mc.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		next := mailchimp.NewHTTPTransport(mc.ResolvedEndpoint(), nil, timeout)
		retry := mailchimp.NewRetryTransport(next, uint64(c.Retries))
		opts = append([]mailchimp.ClientOption{mailchimp.WithTransport(retry)}, opts...)
	}
	return mailchimp.NewFromConfig(mc, opts...)
}
