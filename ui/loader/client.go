package loader

import (
	"net/http"

	"github.com/youssefsiam38/indexifyui/indexify"
)

// ClientFactory builds namespace-bound clients for a fixed service URL.
// Every call returns a new client; nothing is cached.
type ClientFactory struct {
	serviceURL string
	httpClient *http.Client
	logger     Logger
}

// NewClientFactory creates a factory for serviceURL.
func NewClientFactory(serviceURL string, httpClient *http.Client, logger Logger) *ClientFactory {
	return &ClientFactory{
		serviceURL: serviceURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// ServiceURL returns the URL clients are bound to.
func (f *ClientFactory) ServiceURL() string {
	return f.serviceURL
}

// Create returns a client for namespace.
// It fails with ErrMissingNamespace when namespace is empty.
func (f *ClientFactory) Create(namespace string) (*indexify.Client, error) {
	if namespace == "" {
		return nil, ErrMissingNamespace
	}

	client, err := indexify.CreateClient(indexify.ClientConfig{
		ServiceURL: f.serviceURL,
		Namespace:  namespace,
		HTTPClient: f.httpClient,
	})
	if err != nil {
		return nil, err
	}

	if f.logger != nil {
		f.logger.Debug("created client", "client_id", client.ID.String(), "namespace", namespace)
	}
	return client, nil
}
