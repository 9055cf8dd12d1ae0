package api

import (
	"net/http"

	"github.com/youssefsiam38/indexifyui/ui/loader"
)

// Config holds API router configuration.
type Config struct {
	// BasePath is prepended to loader redirects.
	BasePath string

	// Logger for structured logging.
	Logger Logger
}

// Logger interface for structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// router holds the API router state.
type router struct {
	loader *loader.Loader
	config *Config
}

// NewRouter creates a new API router.
func NewRouter(l *loader.Loader, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}

	r := &router{
		loader: l,
		config: cfg,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /namespaces", r.handleNamespaces)
	mux.HandleFunc("GET /namespaces/{namespace}/content", r.handleContents)
	mux.HandleFunc("GET /namespaces/{namespace}/compute_graphs", r.handleComputeGraphs)
	mux.HandleFunc("GET /namespaces/{namespace}/compute_graphs/{computeGraph}", r.handleComputeGraph)

	return withMiddleware(mux, cfg)
}

// withMiddleware wraps the handler with common middleware.
func withMiddleware(handler http.Handler, cfg *Config) http.Handler {
	// Add JSON content type
	handler = jsonMiddleware(handler)
	// Add error recovery
	handler = recoveryMiddleware(handler, cfg.Logger)
	return handler
}

// jsonMiddleware sets JSON content type for all responses.
func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// recoveryMiddleware recovers from panics and returns 500.
func recoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}
