package frontend

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/youssefsiam38/indexifyui/ui/loader"
)

//go:embed templates/*
var templatesFS embed.FS

// Config holds frontend router configuration.
type Config struct {
	// BasePath is the URL prefix where the UI is mounted.
	// All navigation links and redirects are prefixed with this path.
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

// router holds the frontend router state.
type router struct {
	loader   *loader.Loader
	config   *Config
	renderer *renderer
}

// NewRouter creates a new frontend router.
func NewRouter(l *loader.Loader, cfg *Config) http.Handler {
	if cfg == nil {
		cfg = &Config{}
	}

	// Page templates are parsed per render into a clone of the base so their
	// "content" blocks do not collide.
	baseTmpl := template.Must(template.New("").
		Funcs(templateFuncs()).
		ParseFS(templatesFS, "templates/base.html"))

	r := &router{
		loader:   l,
		config:   cfg,
		renderer: newRenderer(baseTmpl, templatesFS, cfg),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", r.handleNamespaces)
	mux.HandleFunc("GET /{namespace}/content", r.handleContents)
	mux.HandleFunc("GET /{namespace}/compute-graphs", r.handleComputeGraphs)
	mux.HandleFunc("GET /{namespace}/compute-graphs/{computeGraph}", r.handleComputeGraph)

	return withFrontendMiddleware(mux, cfg)
}

// withFrontendMiddleware wraps the handler with frontend-specific middleware.
func withFrontendMiddleware(handler http.Handler, cfg *Config) http.Handler {
	handler = frontendRecoveryMiddleware(handler, cfg.Logger)
	return handler
}

// frontendRecoveryMiddleware recovers from panics.
func frontendRecoveryMiddleware(next http.Handler, logger Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if logger != nil {
					logger.Error("panic recovered", "error", err, "path", r.URL.Path)
				}
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// templateFuncs returns custom template functions.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatUnix": formatUnix,
		"truncate":   truncate,
		"json":       jsonEncode,
		"markdown":   markdown,
		"pathEscape": pathEscape,
	}
}
