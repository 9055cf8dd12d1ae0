// Package ui provides an embedded web UI for an Indexify server.
//
// The package provides a single HTTP handler that serves:
//   - the SSR frontend (Tailwind) at /
//   - a JSON API exposing the same page data at /api/
//
// Both surfaces are backed by the loaders in package loader.
//
// # Quick Start
//
//	mux := http.NewServeMux()
//	mux.Handle("/ui/", http.StripPrefix("/ui", ui.UIHandler(&ui.Config{
//	    BasePath: "/ui",
//	    Logger:   slog.Default(),
//	})))
//
//	http.ListenAndServe(":8080", mux)
//
// # Configuration
//
// The handler accepts an optional Config struct for customization:
//
//	cfg := &ui.Config{
//	    ServiceURL:  "http://indexify:8900", // namespace listing and client binding
//	    HTTPTimeout: 5 * time.Second,
//	}
//
// Compute graph pages always list from ComputeGraphsURL, which defaults to
// the default namespace on a local server regardless of the namespace in
// the route.
//
// # Framework Integration
//
// The handler returns standard http.Handler, compatible with any Go framework:
//
//	// Standard library
//	http.Handle("/ui/", http.StripPrefix("/ui", ui.UIHandler(cfg)))
//
//	// Chi
//	r.Mount("/ui", ui.UIHandler(cfg))
//
// # Adding Middleware
//
// Wrap handlers externally using standard Go patterns:
//
//	http.Handle("/ui/", http.StripPrefix("/ui", authMiddleware(ui.UIHandler(cfg))))
package ui
