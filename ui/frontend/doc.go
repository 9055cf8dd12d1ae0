// Package frontend provides SSR page handlers for the Indexify UI.
//
// Every page is backed by exactly one loader from the loader package. The
// frontend uses Tailwind CSS loaded via CDN for simplicity.
//
// # Routes
//
//   - GET / - Namespaces
//   - GET /{namespace}/content - Namespace content
//   - GET /{namespace}/compute-graphs - Compute graphs
//   - GET /{namespace}/compute-graphs/{computeGraph} - Compute graph detail
//
// A loader redirect becomes a 303 to BasePath + target. A loader error
// renders the error page.
package frontend
