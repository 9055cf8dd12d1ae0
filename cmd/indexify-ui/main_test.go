package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestResolve(t *testing.T) {
	file := &fileConfig{
		Addr:        ":9000",
		ServiceURL:  "http://file:8900",
		BasePath:    "/file",
		HTTPTimeout: 3 * time.Second,
	}
	file.Log.Level = "debug"

	flags := serveOptions{
		Addr:       ":7000",
		ServiceURL: "http://flag:8900",
		LogFormat:  "json",
	}

	tests := []struct {
		name    string
		changed []string
		env     map[string]string
		file    *fileConfig
		want    serveOptions
	}{
		{
			name: "defaults",
			want: defaultServeOptions(),
		},
		{
			name: "file over defaults",
			file: file,
			want: serveOptions{
				Addr:        ":9000",
				ServiceURL:  "http://file:8900",
				BasePath:    "/file",
				LogLevel:    "debug",
				LogFormat:   "text",
				HTTPTimeout: 3 * time.Second,
			},
		},
		{
			name: "env over file",
			file: file,
			env:  map[string]string{envServiceURL: "http://env:8900", envAddr: ":6000"},
			want: serveOptions{
				Addr:        ":6000",
				ServiceURL:  "http://env:8900",
				BasePath:    "/file",
				LogLevel:    "debug",
				LogFormat:   "text",
				HTTPTimeout: 3 * time.Second,
			},
		},
		{
			name:    "flags over env",
			changed: []string{"addr", "service-url", "log-format"},
			file:    file,
			env:     map[string]string{envServiceURL: "http://env:8900", envAddr: ":6000"},
			want: serveOptions{
				Addr:        ":7000",
				ServiceURL:  "http://flag:8900",
				BasePath:    "/file",
				LogLevel:    "debug",
				LogFormat:   "json",
				HTTPTimeout: 3 * time.Second,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changed := func(name string) bool {
				for _, c := range tt.changed {
					if c == name {
						return true
					}
				}
				return false
			}
			getenv := func(k string) string { return tt.env[k] }

			got := resolve(flags, changed, getenv, tt.file)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadFileConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
addr: ":9000"
service_url: http://indexify:8900
base_path: /ui
http_timeout: 5s
log:
  level: warn
  format: json
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	cfg, err := loadFileConfig(path)
	if err != nil {
		t.Fatalf("loadFileConfig() error = %v", err)
	}

	if cfg.Addr != ":9000" || cfg.ServiceURL != "http://indexify:8900" || cfg.BasePath != "/ui" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.HTTPTimeout != 5*time.Second {
		t.Errorf("HTTPTimeout = %v, want 5s", cfg.HTTPTimeout)
	}
	if cfg.Log.Level != "warn" || cfg.Log.Format != "json" {
		t.Errorf("Log = %+v, want warn/json", cfg.Log)
	}

	if _, err := loadFileConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "warn", "json")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	logger.Info("dropped")
	logger.Warn("kept", "k", "v")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("Info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, `"msg":"kept"`) {
		t.Errorf("Expected JSON record, got: %s", out)
	}

	if _, err := newLogger(&buf, "loud", "text"); err == nil {
		t.Error("Expected error for invalid level")
	}
	if _, err := newLogger(&buf, "info", "xml"); err == nil {
		t.Error("Expected error for invalid format")
	}
}

func TestNewServerHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"namespaces":[{"name":"default"}]}`)
	}))
	t.Cleanup(svc.Close)

	opts := defaultServeOptions()
	opts.ServiceURL = svc.URL
	opts.BasePath = "/ui/"

	h, err := newServerHandler(opts, logger)
	if err != nil {
		t.Fatalf("newServerHandler() error = %v", err)
	}

	tests := []struct {
		path     string
		status   int
		contains string
	}{
		{"/health", http.StatusOK, "ok"},
		{"/ui/", http.StatusOK, "default"},
		{"/ui/api/namespaces", http.StatusOK, `"name":"default"`},
		{"/elsewhere", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != tt.status {
				t.Fatalf("status = %d, want %d", rec.Code, tt.status)
			}
			if !strings.Contains(rec.Body.String(), tt.contains) {
				t.Errorf("body missing %q: %s", tt.contains, rec.Body.String())
			}
		})
	}
}

func TestNewServerHandler_InvalidConfig(t *testing.T) {
	opts := defaultServeOptions()
	opts.ServiceURL = "ftp://nope"

	if _, err := newServerHandler(opts, slog.New(slog.NewTextHandler(io.Discard, nil))); err == nil {
		t.Fatal("Expected error for invalid service URL")
	}
}
