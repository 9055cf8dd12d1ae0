// Package loader provides the page loaders for the Indexify UI.
//
// A loader runs once per page navigation. It builds a fresh namespace-bound
// client, fetches what the page needs from the Indexify service and returns a
// plain data bundle. Loaders are HTTP-agnostic and shared by the SSR frontend
// and the JSON API so both surfaces see the same data.
//
// # Usage
//
//	l := loader.New(&loader.Config{ServiceURL: indexify.DefaultServiceURL})
//
//	res, err := l.ComputeGraphsPage(ctx, loader.Params{Namespace: "default"})
//	if err != nil {
//	    return err
//	}
//	if res.IsRedirect() {
//	    http.Redirect(w, r, res.RedirectTo, http.StatusSeeOther)
//	    return
//	}
//	render(res.Data)
//
// # Behavior
//
// The compute graph loaders always query ComputeGraphsURL, which defaults to
// the "default" namespace of a local server, regardless of the namespace in
// the route. The namespace only scopes the client handed to the page.
package loader
