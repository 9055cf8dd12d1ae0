// Package api provides JSON handlers for the Indexify UI.
//
// Each endpoint runs the same loader as the matching SSR page and returns
// its data bundle, so scripts and tests can see exactly what a page renders.
//
// # Endpoints
//
//   - GET /namespaces - Namespaces
//   - GET /namespaces/{namespace}/content - Content page data
//   - GET /namespaces/{namespace}/compute_graphs - Compute graph listing
//   - GET /namespaces/{namespace}/compute_graphs/{computeGraph} - Compute graph detail
package api
