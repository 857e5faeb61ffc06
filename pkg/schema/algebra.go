// Package schema defines the dependency-free wire types for algebra and
// network descriptions. It imports nothing beyond the standard library so
// that consumers who only need the shapes — not the YAML loader — don't
// pull in sigs.k8s.io/yaml transitively.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// AlgebraDescription is the structured, on-disk form of a relation algebra.
type AlgebraDescription struct {
	Name        string                  `json:"name" yaml:"name"`
	Description string                  `json:"description,omitempty" yaml:"description,omitempty"`
	Relations   map[string]RelationSpec `json:"relations" yaml:"relations"`
	TransTable  map[string]CompRow      `json:"trans_table" yaml:"trans_table"`
}

// RelationSpec is the per-relation metadata block of an AlgebraDescription.
type RelationSpec struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Converse    string   `json:"converse" yaml:"converse"`
	Domain      []string `json:"domain" yaml:"domain"`
	Range       []string `json:"range" yaml:"range"`
	Reflexive   bool     `json:"reflexive" yaml:"reflexive"`
	Symmetric   bool     `json:"symmetric" yaml:"symmetric"`
	Transitive  bool     `json:"transitive" yaml:"transitive"`
}

// CompRow is one row of the composition table: the relation symbols
// composable against a fixed left-hand relation, keyed by the right-hand
// relation symbol.
type CompRow map[string]TransTableEntry

// TransTableEntry is a single composition-table cell. On input it accepts
// either a JSON array of relation symbols or a "|"-separated string; on
// output it always renders as the compact "|"-string form, with the empty
// set as "".
type TransTableEntry struct {
	Symbols []string
}

// UnmarshalJSON accepts either encoding described above.
func (e *TransTableEntry) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		e.Symbols = nil
		return nil
	}
	if data[0] == '[' {
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return fmt.Errorf("schema: decoding trans table entry array: %w", err)
		}
		e.Symbols = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("schema: decoding trans table entry string: %w", err)
	}
	if s == "" {
		e.Symbols = nil
		return nil
	}
	e.Symbols = strings.Split(s, "|")
	return nil
}

// MarshalJSON always emits the compact "|"-string form.
func (e TransTableEntry) MarshalJSON() ([]byte, error) {
	return json.Marshal(strings.Join(e.Symbols, "|"))
}
