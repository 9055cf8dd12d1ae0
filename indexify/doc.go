// Package indexify is a minimal HTTP client for the Indexify service.
//
// It covers only what the UI needs: listing namespaces and listing compute
// graphs. Clients are cheap, namespace-bound handles meant to be created per
// page load and thrown away afterwards.
//
// # Usage
//
//	client, err := indexify.CreateClient(indexify.ClientConfig{
//	    ServiceURL: indexify.DefaultServiceURL,
//	    Namespace:  "default",
//	})
//	if err != nil {
//	    return err
//	}
//	graphs, err := client.ComputeGraphs(ctx)
//
// Namespaces are listed without a client:
//
//	namespaces, err := indexify.Namespaces(ctx, http.DefaultClient, indexify.DefaultServiceURL)
package indexify
