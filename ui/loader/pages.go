package loader

import (
	"context"
	"fmt"

	"github.com/youssefsiam38/indexifyui/indexify"
)

// NamespacesPageData is the data for the namespace listing page.
type NamespacesPageData struct {
	Namespaces []indexify.Namespace `json:"namespaces"`
}

// ContentsPageData is the data for a namespace's content page.
type ContentsPageData struct {
	Client *indexify.Client `json:"client"`
}

// ComputeGraphsPageData is the data for the compute graph listing page.
type ComputeGraphsPageData struct {
	Client        *indexify.Client            `json:"client"`
	ComputeGraphs *indexify.ComputeGraphsList `json:"computeGraphs"`
	Namespace     string                      `json:"namespace"`
}

// ComputeGraphPageData is the data for a single compute graph page.
// ComputeGraph is nil when no graph in the listing has the requested name.
type ComputeGraphPageData struct {
	ComputeGraph *indexify.ComputeGraph `json:"computeGraph"`
	Client       *indexify.Client       `json:"client"`
	Namespace    string                 `json:"namespace"`
}

// NamespacesPage lists the namespaces known to the service.
// Fetch failures are returned to the caller.
func (l *Loader) NamespacesPage(ctx context.Context) (*NamespacesPageData, error) {
	namespaces, err := indexify.Namespaces(ctx, l.config.HTTPClient, l.config.ServiceURL)
	if err != nil {
		return nil, err
	}
	return &NamespacesPageData{Namespaces: namespaces}, nil
}

// ContentsPage hands the page a client for the route's namespace.
func (l *Loader) ContentsPage(ctx context.Context, params Params) (Result[*ContentsPageData], error) {
	if params.Namespace == "" {
		return redirect[*ContentsPageData](RootPath), nil
	}

	client, err := l.clients.Create(params.Namespace)
	if err != nil {
		return Result[*ContentsPageData]{}, err
	}
	return data(&ContentsPageData{Client: client}), nil
}

// ComputeGraphsPage lists compute graphs.
//
// The listing always comes from ComputeGraphsURL; the route namespace only
// scopes the client. A failed fetch is logged and replaced with an empty list,
// so the page renders its empty state instead of an error.
func (l *Loader) ComputeGraphsPage(ctx context.Context, params Params) (Result[*ComputeGraphsPageData], error) {
	if params.Namespace == "" {
		return redirect[*ComputeGraphsPageData](RootPath), nil
	}

	client, err := l.clients.Create(params.Namespace)
	if err != nil {
		return Result[*ComputeGraphsPageData]{}, err
	}

	graphs, err := indexify.FetchComputeGraphs(ctx, l.config.HTTPClient, l.config.ComputeGraphsURL)
	if err != nil {
		l.logError("error fetching compute graphs", err, "namespace", client.Namespace, "client_id", client.ID.String())
		graphs = indexify.EmptyComputeGraphsList()
	}

	return data(&ComputeGraphsPageData{
		Client:        client,
		ComputeGraphs: graphs,
		Namespace:     client.Namespace,
	}), nil
}

// ComputeGraphPage looks up a single compute graph by name.
//
// Unlike ComputeGraphsPage, fetch failures are returned. Only an empty graph
// name is reported as ErrComputeGraphNotFound: a name that matches nothing
// yields a nil ComputeGraph and no error.
func (l *Loader) ComputeGraphPage(ctx context.Context, params Params) (Result[*ComputeGraphPageData], error) {
	if params.Namespace == "" {
		return redirect[*ComputeGraphPageData](RootPath), nil
	}

	client, err := l.clients.Create(params.Namespace)
	if err != nil {
		return Result[*ComputeGraphPageData]{}, err
	}

	graphs, err := indexify.FetchComputeGraphs(ctx, l.config.HTTPClient, l.config.ComputeGraphsURL)
	if err != nil {
		return Result[*ComputeGraphPageData]{}, err
	}

	graph := graphs.Find(params.ComputeGraph)
	if params.ComputeGraph == "" {
		return Result[*ComputeGraphPageData]{}, fmt.Errorf("%w: %q", ErrComputeGraphNotFound, params.ComputeGraph)
	}

	return data(&ComputeGraphPageData{
		ComputeGraph: graph,
		Client:       client,
		Namespace:    params.Namespace,
	}), nil
}
