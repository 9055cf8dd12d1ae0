package frontend

import (
	"errors"
	"net/http"

	"github.com/youssefsiam38/indexifyui/indexify"
	"github.com/youssefsiam38/indexifyui/ui/loader"
)

// params extracts the route parameters a loader needs.
func params(r *http.Request) loader.Params {
	return loader.Params{
		Namespace:    r.PathValue("namespace"),
		ComputeGraph: r.PathValue("computeGraph"),
	}
}

// redirect follows a loader redirect, relative to the mount point.
func (rt *router) redirect(w http.ResponseWriter, r *http.Request, to string) {
	http.Redirect(w, r, rt.config.BasePath+to, http.StatusSeeOther)
}

// renderError is the error boundary for loader failures.
func (rt *router) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, indexify.ErrTransport) {
		status = http.StatusBadGateway
	}

	if rt.config.Logger != nil {
		rt.config.Logger.Error("page load failed", "error", err.Error(), "path", r.URL.Path, "status", status)
	}

	page := PageData{
		Title:     "Error",
		Namespace: r.PathValue("namespace"),
		Data: map[string]any{
			"Status":  status,
			"Message": err.Error(),
		},
	}
	if renderErr := rt.renderer.render(w, r, status, "error.html", page); renderErr != nil {
		http.Error(w, err.Error(), status)
	}
}

func (rt *router) handleNamespaces(w http.ResponseWriter, r *http.Request) {
	data, err := rt.loader.NamespacesPage(r.Context())
	if err != nil {
		rt.renderError(w, r, err)
		return
	}

	page := PageData{Title: "Namespaces", Data: data}
	if err := rt.renderer.render(w, r, http.StatusOK, "namespaces.html", page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleContents(w http.ResponseWriter, r *http.Request) {
	res, err := rt.loader.ContentsPage(r.Context(), params(r))
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	if res.IsRedirect() {
		rt.redirect(w, r, res.RedirectTo)
		return
	}

	page := PageData{
		Title:     "Content",
		Namespace: res.Data.Client.Namespace,
		Data:      res.Data,
	}
	if err := rt.renderer.render(w, r, http.StatusOK, "content.html", page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleComputeGraphs(w http.ResponseWriter, r *http.Request) {
	res, err := rt.loader.ComputeGraphsPage(r.Context(), params(r))
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	if res.IsRedirect() {
		rt.redirect(w, r, res.RedirectTo)
		return
	}

	page := PageData{
		Title:     "Compute Graphs",
		Namespace: res.Data.Namespace,
		Data:      res.Data,
	}
	if err := rt.renderer.render(w, r, http.StatusOK, "compute_graphs/list.html", page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (rt *router) handleComputeGraph(w http.ResponseWriter, r *http.Request) {
	p := params(r)
	res, err := rt.loader.ComputeGraphPage(r.Context(), p)
	if err != nil {
		rt.renderError(w, r, err)
		return
	}
	if res.IsRedirect() {
		rt.redirect(w, r, res.RedirectTo)
		return
	}

	// A name that matches nothing still renders, with an empty state.
	page := PageData{
		Title:     "Compute Graph: " + p.ComputeGraph,
		Namespace: res.Data.Namespace,
		Data: map[string]any{
			"Name":         p.ComputeGraph,
			"ComputeGraph": res.Data.ComputeGraph,
			"Client":       res.Data.Client,
		},
	}
	if err := rt.renderer.render(w, r, http.StatusOK, "compute_graphs/detail.html", page); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
