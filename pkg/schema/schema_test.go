package schema_test

import (
	"encoding/json"
	"testing"

	"github.com/pthm/qualra/pkg/schema"
)

func TestTransTableEntryUnmarshalsArray(t *testing.T) {
	var e schema.TransTableEntry
	if err := json.Unmarshal([]byte(`["B","M","O"]`), &e); err != nil {
		t.Fatalf("Unmarshal array form: %v", err)
	}
	if len(e.Symbols) != 3 || e.Symbols[0] != "B" {
		t.Errorf("Symbols = %v, want [B M O]", e.Symbols)
	}
}

func TestTransTableEntryUnmarshalsPipeString(t *testing.T) {
	var e schema.TransTableEntry
	if err := json.Unmarshal([]byte(`"B|M|O"`), &e); err != nil {
		t.Fatalf("Unmarshal string form: %v", err)
	}
	if len(e.Symbols) != 3 || e.Symbols[2] != "O" {
		t.Errorf("Symbols = %v, want [B M O]", e.Symbols)
	}
}

func TestTransTableEntryUnmarshalsEmptyString(t *testing.T) {
	var e schema.TransTableEntry
	if err := json.Unmarshal([]byte(`""`), &e); err != nil {
		t.Fatalf("Unmarshal empty string: %v", err)
	}
	if e.Symbols != nil {
		t.Errorf("Symbols = %v, want nil", e.Symbols)
	}
}

func TestTransTableEntryUnmarshalsNull(t *testing.T) {
	var e schema.TransTableEntry
	if err := json.Unmarshal([]byte(`null`), &e); err != nil {
		t.Fatalf("Unmarshal null: %v", err)
	}
	if e.Symbols != nil {
		t.Errorf("Symbols = %v, want nil", e.Symbols)
	}
}

func TestTransTableEntryMarshalsCompactString(t *testing.T) {
	e := schema.TransTableEntry{Symbols: []string{"B", "M"}}
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `"B|M"`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}
}

func TestNodeSpecRoundTrip(t *testing.T) {
	n := schema.NodeSpec{Name: "A", Classes: []string{"ProperInterval"}}
	out, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `["A",["ProperInterval"]]`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var back schema.NodeSpec
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Name != n.Name || len(back.Classes) != 1 || back.Classes[0] != "ProperInterval" {
		t.Errorf("round-tripped NodeSpec = %+v, want %+v", back, n)
	}
}

func TestEdgeSpecTwoElementForm(t *testing.T) {
	e := schema.EdgeSpec{Source: "A", Target: "B"}
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `["A","B"]`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var back schema.EdgeSpec
	if err := json.Unmarshal([]byte(`["A","B"]`), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.HasConstraint {
		t.Error("two-element edge should decode HasConstraint=false")
	}
}

func TestEdgeSpecThreeElementForm(t *testing.T) {
	e := schema.EdgeSpec{Source: "A", Target: "B", Constraint: "B|M", HasConstraint: true}
	out, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if got, want := string(out), `["A","B","B|M"]`; got != want {
		t.Errorf("Marshal = %s, want %s", got, want)
	}

	var back schema.EdgeSpec
	if err := json.Unmarshal(out, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.HasConstraint || back.Constraint != "B|M" {
		t.Errorf("round-tripped EdgeSpec = %+v, want Constraint=B|M HasConstraint=true", back)
	}
}

func TestEdgeSpecRejectsWrongArity(t *testing.T) {
	var e schema.EdgeSpec
	if err := json.Unmarshal([]byte(`["A"]`), &e); err == nil {
		t.Error("expected error decoding a one-element edge tuple")
	}
	if err := json.Unmarshal([]byte(`["A","B","C","D"]`), &e); err == nil {
		t.Error("expected error decoding a four-element edge tuple")
	}
}
