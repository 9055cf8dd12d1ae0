// Command indexify-ui serves the Indexify web UI.
//
// Run with:
//
//	indexify-ui serve --service-url http://localhost:8900 --base-path /ui
//
// Then open http://localhost:8080/ui/
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/youssefsiam38/indexifyui/ui"
)

const shutdownTimeout = 10 * time.Second

var opts = defaultServeOptions()

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:           "indexify-ui",
	Short:         "Web UI for an Indexify server",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine; a malformed one is not.
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("loading .env: %w", err)
		}
		return nil
	},
}

// serveCmd runs the HTTP server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the UI over HTTP",
	Long: `Serves the server-rendered UI and its JSON API.

Configuration precedence: flags, then environment (INDEXIFY_SERVICE_URL,
INDEXIFY_UI_ADDR), then the --config YAML file, then defaults.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&opts.Addr, "addr", opts.Addr, "listen address")
	f.StringVar(&opts.ServiceURL, "service-url", "", "Indexify server URL")
	f.StringVar(&opts.ComputeGraphsURL, "compute-graphs-url", "", "compute graphs endpoint")
	f.StringVar(&opts.BasePath, "base-path", "", "URL prefix the UI is mounted at")
	f.StringVar(&opts.ConfigFile, "config", "", "YAML config file")
	f.StringVar(&opts.LogLevel, "log-level", opts.LogLevel, "log level (debug, info, warn, error)")
	f.StringVar(&opts.LogFormat, "log-format", opts.LogFormat, "log format (text or json)")
	f.DurationVar(&opts.HTTPTimeout, "http-timeout", opts.HTTPTimeout, "timeout for requests to the Indexify server (0 for none)")

	rootCmd.AddCommand(serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	var file *fileConfig
	if opts.ConfigFile != "" {
		var err error
		if file, err = loadFileConfig(opts.ConfigFile); err != nil {
			return err
		}
	}
	resolved := resolve(opts, cmd.Flags().Changed, os.Getenv, file)

	logger, err := newLogger(cmd.ErrOrStderr(), resolved.LogLevel, resolved.LogFormat)
	if err != nil {
		return err
	}

	handler, err := newServerHandler(resolved, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              resolved.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", resolved.Addr, "base_path", resolved.BasePath)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}

// newServerHandler mounts the UI and the health check.
// ui.UIHandler panics on invalid config; that is reported as an error here.
func newServerHandler(o serveOptions, logger *slog.Logger) (h http.Handler, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	uiHandler := ui.UIHandler(&ui.Config{
		ServiceURL:       o.ServiceURL,
		ComputeGraphsURL: o.ComputeGraphsURL,
		BasePath:         o.BasePath,
		HTTPTimeout:      o.HTTPTimeout,
		Logger:           logger,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	base := strings.TrimRight(o.BasePath, "/")
	if base == "" {
		mux.Handle("/", uiHandler)
	} else {
		mux.Handle(base+"/", http.StripPrefix(base, uiHandler))
	}

	return logRequests(mux, logger), nil
}

func logRequests(next http.Handler, logger *slog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "duration", time.Since(start))
	})
}
