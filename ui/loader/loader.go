package loader

import (
	"net/http"

	"github.com/youssefsiam38/indexifyui/indexify"
)

// DefaultComputeGraphsURL is the listing endpoint both compute graph loaders query.
const DefaultComputeGraphsURL = indexify.DefaultServiceURL + "/namespaces/default/compute_graphs"

// RootPath is where loaders send a navigation that lacks a namespace.
const RootPath = "/"

// Config holds loader configuration.
type Config struct {
	// ServiceURL is the Indexify server clients are bound to.
	// Defaults to indexify.DefaultServiceURL.
	ServiceURL string

	// ComputeGraphsURL is the compute graph listing endpoint.
	// Defaults to DefaultComputeGraphsURL.
	ComputeGraphsURL string

	// HTTPClient performs all requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger for structured logging.
	// If nil, logging is disabled.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Params are the route parameters of a navigation.
type Params struct {
	Namespace    string
	ComputeGraph string
}

// Result is what a page loader produces: either a redirect or page data.
type Result[T any] struct {
	// RedirectTo is set when the navigation should go elsewhere instead.
	RedirectTo string
	Data       T
}

// IsRedirect reports whether the result is a redirect directive.
func (r Result[T]) IsRedirect() bool {
	return r.RedirectTo != ""
}

func redirect[T any](to string) Result[T] {
	return Result[T]{RedirectTo: to}
}

func data[T any](v T) Result[T] {
	return Result[T]{Data: v}
}

// Loader runs the page loaders.
type Loader struct {
	config  *Config
	clients *ClientFactory
}

// New creates a Loader. A nil config uses the defaults.
func New(cfg *Config) *Loader {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.ServiceURL == "" {
		c.ServiceURL = indexify.DefaultServiceURL
	}
	if c.ComputeGraphsURL == "" {
		c.ComputeGraphsURL = DefaultComputeGraphsURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}

	return &Loader{
		config:  &c,
		clients: NewClientFactory(c.ServiceURL, c.HTTPClient, c.Logger),
	}
}

// Clients returns the factory the loaders build clients with.
func (l *Loader) Clients() *ClientFactory {
	return l.clients
}

// logError logs an error if the logger is configured.
func (l *Loader) logError(msg string, err error, args ...any) {
	if l.config.Logger != nil {
		l.config.Logger.Error(msg, append([]any{"error", err.Error()}, args...)...)
	}
}
