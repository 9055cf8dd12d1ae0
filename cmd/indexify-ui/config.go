package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables read by serve.
const (
	envServiceURL = "INDEXIFY_SERVICE_URL"
	envAddr       = "INDEXIFY_UI_ADDR"
)

// serveOptions is the resolved configuration of the serve command.
type serveOptions struct {
	Addr             string
	ServiceURL       string
	ComputeGraphsURL string
	BasePath         string
	ConfigFile       string
	LogLevel         string
	LogFormat        string
	HTTPTimeout      time.Duration
}

// defaultServeOptions mirrors the flag defaults.
func defaultServeOptions() serveOptions {
	return serveOptions{
		Addr:      ":8080",
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// fileConfig represents the structure of the YAML config file.
type fileConfig struct {
	Addr             string        `yaml:"addr"`
	ServiceURL       string        `yaml:"service_url"`
	ComputeGraphsURL string        `yaml:"compute_graphs_url"`
	BasePath         string        `yaml:"base_path"`
	HTTPTimeout      time.Duration `yaml:"http_timeout"`
	Log              struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
}

// loadFileConfig loads configuration from a YAML file.
func loadFileConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return &cfg, nil
}

// resolve layers file, environment and flag values over opts.
// A value set on the command line always wins; env beats the file.
func resolve(opts serveOptions, changed func(name string) bool, getenv func(string) string, file *fileConfig) serveOptions {
	out := defaultServeOptions()
	out.ConfigFile = opts.ConfigFile

	if file != nil {
		setString(&out.Addr, file.Addr)
		setString(&out.ServiceURL, file.ServiceURL)
		setString(&out.ComputeGraphsURL, file.ComputeGraphsURL)
		setString(&out.BasePath, file.BasePath)
		setString(&out.LogLevel, file.Log.Level)
		setString(&out.LogFormat, file.Log.Format)
		if file.HTTPTimeout != 0 {
			out.HTTPTimeout = file.HTTPTimeout
		}
	}

	setString(&out.Addr, getenv(envAddr))
	setString(&out.ServiceURL, getenv(envServiceURL))

	if changed("addr") {
		out.Addr = opts.Addr
	}
	if changed("service-url") {
		out.ServiceURL = opts.ServiceURL
	}
	if changed("compute-graphs-url") {
		out.ComputeGraphsURL = opts.ComputeGraphsURL
	}
	if changed("base-path") {
		out.BasePath = opts.BasePath
	}
	if changed("log-level") {
		out.LogLevel = opts.LogLevel
	}
	if changed("log-format") {
		out.LogFormat = opts.LogFormat
	}
	if changed("http-timeout") {
		out.HTTPTimeout = opts.HTTPTimeout
	}
	return out
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// newLogger builds the process logger.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q (want text or json)", format)
	}
}
