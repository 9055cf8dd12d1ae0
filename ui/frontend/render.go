package frontend

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"time"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// renderer handles template rendering.
type renderer struct {
	baseTemplate *template.Template // Base layout
	templatesFS  fs.FS              // Embedded filesystem for page templates
	config       *Config
}

// newRenderer creates a new renderer.
func newRenderer(baseTemplate *template.Template, templatesFS fs.FS, cfg *Config) *renderer {
	return &renderer{
		baseTemplate: baseTemplate,
		templatesFS:  templatesFS,
		config:       cfg,
	}
}

// PageData contains common data for all pages.
type PageData struct {
	Title       string
	BasePath    string
	CurrentPath string
	Namespace   string
	Data        any
}

// render renders a page template inside the base layout.
// The page is executed into a buffer first so a template error never leaves a
// half-written response.
func (r *renderer) render(w http.ResponseWriter, req *http.Request, status int, name string, page PageData) error {
	page.BasePath = r.config.BasePath
	page.CurrentPath = req.URL.Path

	// Clone the base template to avoid conflicts between page "content" blocks
	tmpl, err := r.baseTemplate.Clone()
	if err != nil {
		return fmt.Errorf("clone template: %w", err)
	}

	pageTemplatePath := "templates/" + name
	if _, err := tmpl.ParseFS(r.templatesFS, pageTemplatePath); err != nil {
		return fmt.Errorf("parse page template %s: %w", pageTemplatePath, err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base", page); err != nil {
		return fmt.Errorf("execute page template %s: %w", pageTemplatePath, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err = buf.WriteTo(w)
	return err
}

// Template helper functions

var (
	markdownRenderer = goldmark.New(goldmark.WithExtensions(extension.GFM))
	markdownPolicy   = bluemonday.UGCPolicy()
)

// markdown renders s as GitHub-flavored markdown and strips anything unsafe.
func markdown(s string) template.HTML {
	if s == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdownRenderer.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(markdownPolicy.SanitizeBytes(buf.Bytes()))
}

func formatUnix(sec int64) string {
	if sec == 0 {
		return "-"
	}
	return time.Unix(sec, 0).UTC().Format("2006-01-02 15:04:05")
}

// truncate shortens s to at most n runes, ending in "..." when cut.
func truncate(n int, s string) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	if n <= 3 {
		return string(runes[:max(n, 0)])
	}
	return string(runes[:n-3]) + "..."
}

func jsonEncode(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(b)
}

func pathEscape(s string) string {
	return url.PathEscape(s)
}
