package memory

import (
	"encoding/json"
	"fmt"

	"github.com/aretw0/primer/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.GraphLoader using an in-memory map.
// It remembers insertion order so that listings follow the flow as authored.
type Loader struct {
	nodes map[string][]byte
	order []string
}

// flowFile is the on-disk YAML layout of a flow.
type flowFile struct {
	Nodes []domain.Node `yaml:"nodes"`
}

// NewLoader creates a new Loader with the provided raw data (JSON strings).
// Keys are listed in the order given by ids; ids not present in data are skipped.
func NewLoader(data map[string]string, ids ...string) *Loader {
	l := &Loader{nodes: make(map[string][]byte)}
	for _, id := range ids {
		if v, ok := data[id]; ok {
			l.put(id, []byte(v))
		}
	}
	return l
}

// NewFromNodes creates a new Loader from domain objects.
func NewFromNodes(nodes ...domain.Node) (*Loader, error) {
	l := &Loader{nodes: make(map[string][]byte)}
	for _, n := range nodes {
		if n.ID == "" {
			return nil, fmt.Errorf("node missing ID")
		}
		if _, dup := l.nodes[n.ID]; dup {
			return nil, fmt.Errorf("duplicate node ID: %s", n.ID)
		}
		bytes, err := json.Marshal(n)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal node %s: %w", n.ID, err)
		}
		l.put(n.ID, bytes)
	}
	return l, nil
}

// NewFromYAML parses a flow document of the form "nodes: [...]".
func NewFromYAML(data []byte) (*Loader, error) {
	var f flowFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse flow yaml: %w", err)
	}
	return NewFromNodes(f.Nodes...)
}

func (l *Loader) put(id string, raw []byte) {
	l.nodes[id] = raw
	l.order = append(l.order, id)
}

// GetNode retrieves the raw definition of a node by ID.
func (l *Loader) GetNode(id string) ([]byte, error) {
	content, ok := l.nodes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNodeNotFound, id)
	}
	return content, nil
}

// ListNodes returns all available node IDs in insertion order.
func (l *Loader) ListNodes() ([]string, error) {
	return append([]string(nil), l.order...), nil
}

// Nodes decodes every node in insertion order.
func (l *Loader) Nodes() ([]domain.Node, error) {
	nodes := make([]domain.Node, 0, len(l.order))
	for _, id := range l.order {
		var n domain.Node
		if err := json.Unmarshal(l.nodes[id], &n); err != nil {
			return nil, fmt.Errorf("failed to decode node %s: %w", id, err)
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

// ExportYAML renders the flow in the format accepted by NewFromYAML.
func (l *Loader) ExportYAML() ([]byte, error) {
	nodes, err := l.Nodes()
	if err != nil {
		return nil, err
	}
	out, err := yaml.Marshal(flowFile{Nodes: nodes})
	if err != nil {
		return nil, fmt.Errorf("failed to encode flow yaml: %w", err)
	}
	return out, nil
}
