package ui

import (
	"net/http"

	"github.com/youssefsiam38/indexifyui/ui/api"
	"github.com/youssefsiam38/indexifyui/ui/frontend"
	"github.com/youssefsiam38/indexifyui/ui/loader"
)

// UIHandler returns an http.Handler serving the SSR frontend at / and the
// JSON API at /api/.
//
// Usage:
//
//	http.Handle("/ui/", http.StripPrefix("/ui", ui.UIHandler(cfg)))
func UIHandler(cfg *Config) http.Handler {
	if cfg == nil {
		cfg = DefaultConfig()
	} else {
		c := *cfg
		cfg = &c
		cfg.applyDefaults()
	}

	// Validate configuration (panic on invalid config as this is a programmer error)
	if err := cfg.validate(); err != nil {
		panic("ui: invalid configuration: " + err.Error())
	}

	l := loader.New(newLoaderConfig(cfg))

	mux := http.NewServeMux()
	mux.Handle("/api/", http.StripPrefix("/api", api.NewRouter(l, &api.Config{
		BasePath: cfg.BasePath,
		Logger:   cfg.Logger,
	})))
	mux.Handle("/", frontend.NewRouter(l, &frontend.Config{
		BasePath: cfg.BasePath,
		Logger:   cfg.Logger,
	}))

	return mux
}

func newLoaderConfig(cfg *Config) *loader.Config {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}

	return &loader.Config{
		ServiceURL:       cfg.ServiceURL,
		ComputeGraphsURL: cfg.ComputeGraphsURL,
		HTTPClient:       httpClient,
		Logger:           cfg.Logger,
	}
}
