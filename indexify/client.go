package indexify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// DefaultServiceURL is the address of a locally running Indexify server.
const DefaultServiceURL = "http://localhost:8900"

// maxErrorBody bounds how much of a failed response body is kept in the error.
const maxErrorBody = 512

// ClientConfig configures a Client.
type ClientConfig struct {
	// ServiceURL is the base URL of the Indexify server (required).
	ServiceURL string

	// Namespace the client is bound to (required).
	Namespace string

	// HTTPClient performs requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client
}

// Client is a namespace-bound handle to the service.
// It holds no connection state of its own and is safe to discard at any time.
type Client struct {
	// ID identifies this handle in logs.
	ID         uuid.UUID `json:"id"`
	ServiceURL string    `json:"service_url"`
	Namespace  string    `json:"namespace"`

	httpClient *http.Client
}

// CreateClient builds a client. It performs no I/O and does not check that
// the service is reachable.
func CreateClient(cfg ClientConfig) (*Client, error) {
	if cfg.ServiceURL == "" {
		return nil, fmt.Errorf("%w: service URL is required", ErrInvalidConfig)
	}
	if cfg.Namespace == "" {
		return nil, fmt.Errorf("%w: namespace is required", ErrInvalidConfig)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		ID:         uuid.New(),
		ServiceURL: strings.TrimRight(cfg.ServiceURL, "/"),
		Namespace:  cfg.Namespace,
		httpClient: httpClient,
	}, nil
}

// ComputeGraphsURL returns the namespace-scoped compute graph listing URL.
func (c *Client) ComputeGraphsURL() string {
	return c.ServiceURL + "/namespaces/" + url.PathEscape(c.Namespace) + "/compute_graphs"
}

// ComputeGraphs lists the compute graphs of the client's namespace.
func (c *Client) ComputeGraphs(ctx context.Context) (*ComputeGraphsList, error) {
	return FetchComputeGraphs(ctx, c.httpClient, c.ComputeGraphsURL())
}

// Namespaces lists every namespace known to the service at serviceURL.
func Namespaces(ctx context.Context, httpClient *http.Client, serviceURL string) ([]Namespace, error) {
	var list namespaceList
	endpoint := strings.TrimRight(serviceURL, "/") + "/namespaces"
	if err := getJSON(ctx, httpClient, "list namespaces", endpoint, &list); err != nil {
		return nil, err
	}
	return list.Namespaces, nil
}

// FetchComputeGraphs performs a GET against a compute graph listing URL and
// decodes the response.
func FetchComputeGraphs(ctx context.Context, httpClient *http.Client, endpoint string) (*ComputeGraphsList, error) {
	var list ComputeGraphsList
	if err := getJSON(ctx, httpClient, "list compute graphs", endpoint, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// getJSON issues a GET and decodes a 2xx JSON body into out.
func getJSON(ctx context.Context, httpClient *http.Client, op, endpoint string, out any) error {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return &RequestError{Op: op, URL: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return &RequestError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &RequestError{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s: %s", resp.Status, strings.TrimSpace(string(body))),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &RequestError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
