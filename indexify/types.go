package indexify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// Namespace is a logical partition of compute graphs on the service.
type Namespace struct {
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// namespaceList is the wire shape of GET /namespaces.
type namespaceList struct {
	Namespaces []Namespace `json:"namespaces"`
}

// ComputeGraph is a named workflow definition.
//
// Only the fields the UI displays are typed. Every other field the service
// sends is kept in Extra, and typed fields remember the bytes they were
// decoded from, so an unmodified graph re-encodes to the same members it was
// decoded from, nulls and empty strings included.
type ComputeGraph struct {
	Name        string
	Namespace   string
	Description string

	// Extra holds the fields not mapped above, verbatim.
	Extra map[string]json.RawMessage

	received members
}

// UnmarshalJSON decodes a graph, keeping unknown fields in Extra.
func (g *ComputeGraph) UnmarshalJSON(data []byte) error {
	typed, extra, err := splitMembers(data, "name", "namespace", "description")
	if err != nil {
		return err
	}

	*g = ComputeGraph{Extra: extra, received: typed}
	for key, target := range map[string]*string{
		"name":        &g.Name,
		"namespace":   &g.Namespace,
		"description": &g.Description,
	} {
		if err := typed.decodeString(key, target); err != nil {
			return fmt.Errorf("compute graph field %q: %w", key, err)
		}
	}
	return nil
}

// MarshalJSON encodes the typed fields and everything in Extra.
func (g ComputeGraph) MarshalJSON() ([]byte, error) {
	out := make(members, len(g.Extra)+3)
	for key, raw := range g.Extra {
		out[key] = raw
	}
	if err := g.received.encodeString(out, "name", g.Name, false); err != nil {
		return nil, err
	}
	if err := g.received.encodeString(out, "namespace", g.Namespace, true); err != nil {
		return nil, err
	}
	if err := g.received.encodeString(out, "description", g.Description, true); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// ComputeGraphsList is the wire shape of a compute graph listing.
// Wrapper fields other than compute_graphs and cursor are kept in Extra.
type ComputeGraphsList struct {
	ComputeGraphs []ComputeGraph
	Cursor        string

	// Extra holds the wrapper fields not mapped above, verbatim.
	Extra map[string]json.RawMessage

	received members
}

// UnmarshalJSON decodes a listing, keeping unknown wrapper fields in Extra.
func (l *ComputeGraphsList) UnmarshalJSON(data []byte) error {
	typed, extra, err := splitMembers(data, "compute_graphs", "cursor")
	if err != nil {
		return err
	}

	*l = ComputeGraphsList{Extra: extra, received: typed}
	if raw, ok := typed["compute_graphs"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &l.ComputeGraphs); err != nil {
			return fmt.Errorf("compute_graphs: %w", err)
		}
	}
	if err := typed.decodeString("cursor", &l.Cursor); err != nil {
		return fmt.Errorf("cursor: %w", err)
	}
	return nil
}

// MarshalJSON encodes the listing and everything in Extra.
func (l ComputeGraphsList) MarshalJSON() ([]byte, error) {
	out := make(members, len(l.Extra)+2)
	for key, raw := range l.Extra {
		out[key] = raw
	}

	raw, received := l.received["compute_graphs"]
	switch {
	case l.ComputeGraphs == nil && received && isNull(raw):
		out["compute_graphs"] = raw
	case l.ComputeGraphs == nil && l.received != nil && !received:
		// Absent on the wire and still unset.
	default:
		b, err := json.Marshal(l.ComputeGraphs)
		if err != nil {
			return nil, err
		}
		out["compute_graphs"] = b
	}

	if err := l.received.encodeString(out, "cursor", l.Cursor, true); err != nil {
		return nil, err
	}
	return json.Marshal(out)
}

// members are the raw members of a JSON object.
type members map[string]json.RawMessage

// splitMembers separates the typed keys of an object from the rest.
// typed is never nil; extra is nil when there are no other keys.
func splitMembers(data []byte, typedKeys ...string) (typed, extra members, err error) {
	var all members
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, nil, err
	}
	for key, raw := range all {
		if slices.Contains(typedKeys, key) {
			if typed == nil {
				typed = make(members)
			}
			typed[key] = raw
			continue
		}
		if extra == nil {
			extra = make(members)
		}
		extra[key] = raw
	}
	// Non-nil marks the value as decoded rather than built in code.
	if typed == nil {
		typed = members{}
	}
	return typed, extra, nil
}

// decodeString decodes key into dst. Absent and null leave dst empty.
func (m members) decodeString(key string, dst *string) error {
	raw, ok := m[key]
	if !ok || isNull(raw) {
		return nil
	}
	return json.Unmarshal(raw, dst)
}

// encodeString writes v under key into out. The received bytes are reused
// while they still decode to v. Otherwise v is encoded, except that an
// empty v the wire never carried is left out when omitEmpty is set.
func (m members) encodeString(out members, key, v string, omitEmpty bool) error {
	if raw, ok := m[key]; ok {
		var cur string
		if err := m.decodeString(key, &cur); err == nil && cur == v {
			out[key] = raw
			return nil
		}
	} else if omitEmpty && v == "" {
		return nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	out[key] = b
	return nil
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

// EmptyComputeGraphsList returns a list that encodes as {"compute_graphs":[]}.
func EmptyComputeGraphsList() *ComputeGraphsList {
	return &ComputeGraphsList{ComputeGraphs: []ComputeGraph{}}
}

// Find returns the first graph whose name equals name, or nil.
func (l *ComputeGraphsList) Find(name string) *ComputeGraph {
	if l == nil {
		return nil
	}
	for i := range l.ComputeGraphs {
		if l.ComputeGraphs[i].Name == name {
			return &l.ComputeGraphs[i]
		}
	}
	return nil
}
