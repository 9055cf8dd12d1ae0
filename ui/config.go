package ui

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/youssefsiam38/indexifyui/indexify"
	"github.com/youssefsiam38/indexifyui/ui/loader"
)

// Config holds UI package configuration.
type Config struct {
	// ServiceURL is the Indexify server page clients are bound to.
	// Defaults to indexify.DefaultServiceURL.
	ServiceURL string

	// ComputeGraphsURL is the endpoint the compute graph pages list from.
	// Defaults to loader.DefaultComputeGraphsURL.
	ComputeGraphsURL string

	// BasePath is the URL prefix where the UI is mounted.
	// For example, if mounted at "/ui/", set BasePath to "/ui".
	// All navigation links will be prefixed with this path.
	// Defaults to empty string (root mount).
	BasePath string

	// HTTPTimeout bounds each request to the service.
	// Ignored when HTTPClient is set. Zero (the default) means no timeout.
	HTTPTimeout time.Duration

	// HTTPClient performs requests to the service.
	// If nil, a client with HTTPTimeout is used.
	HTTPClient *http.Client

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

// Logger interface for structured logging.
// Satisfied by *slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		ServiceURL:       indexify.DefaultServiceURL,
		ComputeGraphsURL: loader.DefaultComputeGraphsURL,
	}
}

// applyDefaults fills in default values for zero-valued fields.
func (c *Config) applyDefaults() {
	if c.ServiceURL == "" {
		c.ServiceURL = indexify.DefaultServiceURL
	}
	if c.ComputeGraphsURL == "" {
		c.ComputeGraphsURL = loader.DefaultComputeGraphsURL
	}
	c.BasePath = strings.TrimRight(c.BasePath, "/")
}

// validate checks the configuration for errors.
func (c *Config) validate() error {
	if err := validateURL(c.ServiceURL); err != nil {
		return fmt.Errorf("%w: service URL: %v", ErrInvalidConfig, err)
	}
	if err := validateURL(c.ComputeGraphsURL); err != nil {
		return fmt.Errorf("%w: compute graphs URL: %v", ErrInvalidConfig, err)
	}
	if c.BasePath != "" && !strings.HasPrefix(c.BasePath, "/") {
		return fmt.Errorf("%w: base path must start with /", ErrInvalidConfig)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("%w: negative HTTP timeout", ErrInvalidConfig)
	}
	return nil
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host")
	}
	return nil
}
