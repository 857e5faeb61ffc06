package schema

import (
	"encoding/json"
	"fmt"
)

// NetworkDescription is the structured, on-disk form of a constraint
// network.
type NetworkDescription struct {
	Name          string            `json:"name" yaml:"name"`
	Algebra       string            `json:"algebra" yaml:"algebra"`
	Description   string            `json:"description,omitempty" yaml:"description,omitempty"`
	Nodes         []NodeSpec        `json:"nodes" yaml:"nodes"`
	Edges         []EdgeSpec        `json:"edges" yaml:"edges"`
	Abbreviations map[string]string `json:"abbreviations,omitempty" yaml:"abbreviations,omitempty"`
}

// NodeSpec is a single `[name, [class, ...]]` node entry.
type NodeSpec struct {
	Name    string
	Classes []string
}

// MarshalJSON renders a NodeSpec as the two-element `[name, [class, ...]]`
// tuple.
func (n NodeSpec) MarshalJSON() ([]byte, error) {
	return json.Marshal([]interface{}{n.Name, n.Classes})
}

// UnmarshalJSON decodes the two-element `[name, [class, ...]]` tuple form.
func (n *NodeSpec) UnmarshalJSON(data []byte) error {
	var raw [2]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: decoding node entry: %w", err)
	}
	if err := json.Unmarshal(raw[0], &n.Name); err != nil {
		return fmt.Errorf("schema: decoding node name: %w", err)
	}
	if err := json.Unmarshal(raw[1], &n.Classes); err != nil {
		return fmt.Errorf("schema: decoding node classes: %w", err)
	}
	return nil
}

// EdgeSpec is a `[source, target]` or `[source, target, constraint]` entry.
// Constraint is empty when the edge is fully unconstrained.
type EdgeSpec struct {
	Source        string
	Target        string
	Constraint    string
	HasConstraint bool
}

// MarshalJSON emits the two- or three-element tuple form.
func (e EdgeSpec) MarshalJSON() ([]byte, error) {
	if !e.HasConstraint {
		return json.Marshal([]string{e.Source, e.Target})
	}
	return json.Marshal([]string{e.Source, e.Target, e.Constraint})
}

// UnmarshalJSON decodes either tuple arity.
func (e *EdgeSpec) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("schema: decoding edge entry: %w", err)
	}
	if len(raw) < 2 || len(raw) > 3 {
		return fmt.Errorf("schema: edge entry must have 2 or 3 elements, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &e.Source); err != nil {
		return fmt.Errorf("schema: decoding edge source: %w", err)
	}
	if err := json.Unmarshal(raw[1], &e.Target); err != nil {
		return fmt.Errorf("schema: decoding edge target: %w", err)
	}
	if len(raw) == 3 {
		if err := json.Unmarshal(raw[2], &e.Constraint); err != nil {
			return fmt.Errorf("schema: decoding edge constraint: %w", err)
		}
		e.HasConstraint = true
	}
	return nil
}
