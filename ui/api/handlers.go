package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/youssefsiam38/indexifyui/indexify"
	"github.com/youssefsiam38/indexifyui/ui/loader"
)

// Response wraps all API responses.
type Response struct {
	Data  any       `json:"data,omitempty"`
	Error *APIError `json:"error,omitempty"`
}

// APIError represents an API error.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{Data: data})
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(Response{
		Error: &APIError{Code: code, Message: message},
	})
}

// writeLoadError maps a loader error to a status and error code.
func (rt *router) writeLoadError(w http.ResponseWriter, r *http.Request, err error) {
	status, code := http.StatusInternalServerError, "internal_error"
	switch {
	case errors.Is(err, indexify.ErrTransport):
		status, code = http.StatusBadGateway, "upstream_error"
	case errors.Is(err, loader.ErrComputeGraphNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, loader.ErrMissingNamespace):
		status, code = http.StatusBadRequest, "missing_namespace"
	}

	if rt.config.Logger != nil {
		rt.config.Logger.Error("api load failed", "error", err.Error(), "path", r.URL.Path, "status", status)
	}
	writeError(w, status, code, err.Error())
}

func params(r *http.Request) loader.Params {
	return loader.Params{
		Namespace:    r.PathValue("namespace"),
		ComputeGraph: r.PathValue("computeGraph"),
	}
}

// respond writes either the loader's redirect or its data.
func respond[T any](rt *router, w http.ResponseWriter, r *http.Request, res loader.Result[T], err error) {
	if err != nil {
		rt.writeLoadError(w, r, err)
		return
	}
	if res.IsRedirect() {
		http.Redirect(w, r, rt.config.BasePath+res.RedirectTo, http.StatusSeeOther)
		return
	}
	writeJSON(w, http.StatusOK, res.Data)
}

func (rt *router) handleNamespaces(w http.ResponseWriter, r *http.Request) {
	data, err := rt.loader.NamespacesPage(r.Context())
	if err != nil {
		rt.writeLoadError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func (rt *router) handleContents(w http.ResponseWriter, r *http.Request) {
	res, err := rt.loader.ContentsPage(r.Context(), params(r))
	respond(rt, w, r, res, err)
}

func (rt *router) handleComputeGraphs(w http.ResponseWriter, r *http.Request) {
	res, err := rt.loader.ComputeGraphsPage(r.Context(), params(r))
	respond(rt, w, r, res, err)
}

func (rt *router) handleComputeGraph(w http.ResponseWriter, r *http.Request) {
	res, err := rt.loader.ComputeGraphPage(r.Context(), params(r))
	respond(rt, w, r, res, err)
}
