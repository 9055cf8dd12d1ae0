package indexify_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/youssefsiam38/indexifyui/indexify"
	"github.com/youssefsiam38/indexifyui/internal/testutil"
)

func TestCreateClient(t *testing.T) {
	client, err := indexify.CreateClient(indexify.ClientConfig{
		ServiceURL: "http://localhost:8900/",
		Namespace:  "ns1",
	})
	if err != nil {
		t.Fatalf("CreateClient() error = %v", err)
	}

	if client.ID == uuid.Nil {
		t.Error("CreateClient() returned a nil handle ID")
	}
	if client.ServiceURL != "http://localhost:8900" {
		t.Errorf("ServiceURL = %v, want %v", client.ServiceURL, "http://localhost:8900")
	}
	if client.Namespace != "ns1" {
		t.Errorf("Namespace = %v, want %v", client.Namespace, "ns1")
	}
	if got, want := client.ComputeGraphsURL(), "http://localhost:8900/namespaces/ns1/compute_graphs"; got != want {
		t.Errorf("ComputeGraphsURL() = %v, want %v", got, want)
	}
}

func TestCreateClient_UniqueHandles(t *testing.T) {
	cfg := indexify.ClientConfig{ServiceURL: indexify.DefaultServiceURL, Namespace: "ns1"}

	a, err := indexify.CreateClient(cfg)
	if err != nil {
		t.Fatalf("CreateClient() error = %v", err)
	}
	b, err := indexify.CreateClient(cfg)
	if err != nil {
		t.Fatalf("CreateClient() error = %v", err)
	}
	if a.ID == b.ID {
		t.Error("Expected each client to get its own handle ID")
	}
}

func TestCreateClient_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  indexify.ClientConfig
	}{
		{"empty service URL", indexify.ClientConfig{Namespace: "ns1"}},
		{"empty namespace", indexify.ClientConfig{ServiceURL: indexify.DefaultServiceURL}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := indexify.CreateClient(tt.cfg)
			if !errors.Is(err, indexify.ErrInvalidConfig) {
				t.Errorf("CreateClient() error = %v, want %v", err, indexify.ErrInvalidConfig)
			}
		})
	}
}

func TestNamespaces(t *testing.T) {
	svc := testutil.NewFakeService(t)
	svc.Handle("/namespaces", http.StatusOK, `{"namespaces":[{"name":"default","created_at":1},{"name":"ns1"}]}`)

	got, err := indexify.Namespaces(context.Background(), nil, svc.URL())
	if err != nil {
		t.Fatalf("Namespaces() error = %v", err)
	}

	want := []indexify.Namespace{{Name: "default", CreatedAt: 1}, {Name: "ns1"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Namespaces() mismatch (-want +got):\n%s", diff)
	}
}

func TestClientComputeGraphs(t *testing.T) {
	svc := testutil.NewFakeService(t)
	svc.Handle("/namespaces/ns 1/compute_graphs", http.StatusOK, `{"compute_graphs":[{"name":"g1"}]}`)

	client, err := indexify.CreateClient(indexify.ClientConfig{ServiceURL: svc.URL(), Namespace: "ns 1"})
	if err != nil {
		t.Fatalf("CreateClient() error = %v", err)
	}

	list, err := client.ComputeGraphs(context.Background())
	if err != nil {
		t.Fatalf("ComputeGraphs() error = %v", err)
	}
	if len(list.ComputeGraphs) != 1 || list.ComputeGraphs[0].Name != "g1" {
		t.Errorf("ComputeGraphs() = %+v, want one graph named g1", list.ComputeGraphs)
	}
}

func TestFetchComputeGraphs_Errors(t *testing.T) {
	svc := testutil.NewFakeService(t)
	svc.Handle("/server-error", http.StatusInternalServerError, `boom`)
	svc.Handle("/garbage", http.StatusOK, `{"compute_graphs":`)

	tests := []struct {
		name       string
		url        string
		wantStatus int
	}{
		{"server error", svc.URL() + "/server-error", http.StatusInternalServerError},
		{"not found", svc.URL() + "/missing", http.StatusNotFound},
		{"undecodable body", svc.URL() + "/garbage", http.StatusOK},
		{"connection refused", testutil.UnreachableURL(t) + "/x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := indexify.FetchComputeGraphs(context.Background(), http.DefaultClient, tt.url)
			if !errors.Is(err, indexify.ErrTransport) {
				t.Fatalf("FetchComputeGraphs() error = %v, want %v", err, indexify.ErrTransport)
			}

			var reqErr *indexify.RequestError
			if !errors.As(err, &reqErr) {
				t.Fatalf("Expected *RequestError, got %T", err)
			}
			if reqErr.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %v, want %v", reqErr.StatusCode, tt.wantStatus)
			}
			if reqErr.URL != tt.url {
				t.Errorf("URL = %v, want %v", reqErr.URL, tt.url)
			}
		})
	}
}

func TestComputeGraph_PassThrough(t *testing.T) {
	in := `{"name":"g1","namespace":"default","description":"**hi**","start_node":{"compute_fn":{"name":"a"}},"edges":{"a":["b"]},"created_at":12,"tags":null}`

	var g indexify.ComputeGraph
	if err := json.Unmarshal([]byte(in), &g); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if g.Name != "g1" || g.Namespace != "default" || g.Description != "**hi**" {
		t.Errorf("typed fields = %+v", g)
	}
	if len(g.Extra) != 4 {
		t.Errorf("len(Extra) = %v, want 4", len(g.Extra))
	}

	out, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var want, got map[string]any
	if err := json.Unmarshal([]byte(in), &want); err != nil {
		t.Fatal(err)
	}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestComputeGraphsList_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"null and empty graph fields", `{"compute_graphs":[{"description":null,"name":"g1","namespace":""}]}`},
		{"null name", `{"compute_graphs":[{"name":null}]}`},
		{"extra wrapper fields", `{"compute_graphs":[{"name":"g1"}],"next_cursor":"abc","total":7}`},
		{"null cursor", `{"compute_graphs":[],"cursor":null}`},
		{"empty cursor", `{"compute_graphs":[{"name":"g1"}],"cursor":""}`},
		{"null list", `{"compute_graphs":null,"cursor":"c1"}`},
		{"no list", `{"total":0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var list indexify.ComputeGraphsList
			if err := json.Unmarshal([]byte(tt.in), &list); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			out, err := json.Marshal(list)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			var want, got any
			if err := json.Unmarshal([]byte(tt.in), &want); err != nil {
				t.Fatal(err)
			}
			if err := json.Unmarshal(out, &got); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComputeGraph_EditedFields(t *testing.T) {
	var g indexify.ComputeGraph
	if err := json.Unmarshal([]byte(`{"description":null,"name":"g1","namespace":"ns"}`), &g); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	g.Description = "new"
	g.Namespace = ""

	out, err := json.Marshal(g)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{"description":"new","name":"g1","namespace":""}`
	if string(out) != want {
		t.Errorf("Marshal() = %s, want %s", out, want)
	}
}

func TestComputeGraphsList_Find(t *testing.T) {
	list := &indexify.ComputeGraphsList{ComputeGraphs: []indexify.ComputeGraph{
		{Name: "g1", Description: "first"},
		{Name: "g2"},
		{Name: "g1", Description: "second"},
	}}

	if g := list.Find("g1"); g == nil || g.Description != "first" {
		t.Errorf("Find(g1) = %+v, want the first g1", g)
	}
	if g := list.Find("G1"); g != nil {
		t.Errorf("Find(G1) = %+v, want nil", g)
	}
	if g := (*indexify.ComputeGraphsList)(nil).Find("g1"); g != nil {
		t.Errorf("nil list Find() = %+v, want nil", g)
	}
}

func TestEmptyComputeGraphsList(t *testing.T) {
	b, err := json.Marshal(indexify.EmptyComputeGraphsList())
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(b) != `{"compute_graphs":[]}` {
		t.Errorf("Marshal() = %s, want %s", b, `{"compute_graphs":[]}`)
	}
}
