package loader_test

import (
	"testing"

	"github.com/pthm/qualra"
	"github.com/pthm/qualra/pkg/loader"
	"github.com/pthm/qualra/pkg/schema"
)

const tinyAlgebraYAML = `
name: Tiny
relations:
  EQ:
    name: equal
    converse: EQ
    domain: [Point]
    range: [Point]
    reflexive: true
    symmetric: true
    transitive: true
  R:
    name: related
    converse: R
    domain: [Point]
    range: [Point]
    reflexive: false
    symmetric: true
    transitive: false
trans_table:
  EQ:
    EQ: "EQ"
    R: "R"
  R:
    EQ: "R"
    R: "EQ|R"
`

func TestLoadAlgebraBytes(t *testing.T) {
	alg, err := loader.LoadAlgebraBytes([]byte(tinyAlgebraYAML))
	if err != nil {
		t.Fatalf("LoadAlgebraBytes: %v", err)
	}
	if alg.Name() != "Tiny" {
		t.Errorf("Name() = %q, want Tiny", alg.Name())
	}
	if len(alg.Relations()) != 2 {
		t.Errorf("Relations() has %d entries, want 2", len(alg.Relations()))
	}
}

func TestSaveAlgebraBytesRoundTrip(t *testing.T) {
	alg, err := loader.LoadAlgebraBytes([]byte(tinyAlgebraYAML))
	if err != nil {
		t.Fatalf("LoadAlgebraBytes: %v", err)
	}
	data, err := loader.SaveAlgebraBytes(alg)
	if err != nil {
		t.Fatalf("SaveAlgebraBytes: %v", err)
	}
	reloaded, err := loader.LoadAlgebraBytes(data)
	if err != nil {
		t.Fatalf("LoadAlgebraBytes(reloaded): %v", err)
	}
	if reloaded.Name() != alg.Name() {
		t.Errorf("reloaded Name() = %q, want %q", reloaded.Name(), alg.Name())
	}

	r, err := alg.Single("R")
	if err != nil {
		t.Fatalf("Single(R): %v", err)
	}
	r2, err := reloaded.Single("R")
	if err != nil {
		t.Fatalf("Single(R) on reloaded: %v", err)
	}
	comp1, err := alg.Compose(r, r)
	if err != nil {
		t.Fatalf("Compose: %v", err)
	}
	comp2, err := reloaded.Compose(r2, r2)
	if err != nil {
		t.Fatalf("Compose on reloaded: %v", err)
	}
	if comp1.String() != comp2.String() {
		t.Errorf("composition table did not survive round trip: %v vs %v", comp1, comp2)
	}
}

func TestLoadAlgebraBytesRejectsMalformed(t *testing.T) {
	if _, err := loader.LoadAlgebraBytes([]byte("name: Empty\n")); err == nil {
		t.Error("expected error loading an algebra with no relations")
	}
}

const tinyNetworkYAML = `
name: example
algebra: Tiny
nodes:
  - [a, [Point]]
  - [b, [Point]]
edges:
  - [a, b, R]
`

func TestLoadNetworkBytes(t *testing.T) {
	alg, err := loader.LoadAlgebraBytes([]byte(tinyAlgebraYAML))
	if err != nil {
		t.Fatalf("LoadAlgebraBytes: %v", err)
	}
	n, err := loader.LoadNetworkBytes([]byte(tinyNetworkYAML), alg)
	if err != nil {
		t.Fatalf("LoadNetworkBytes: %v", err)
	}
	if len(n.Entities()) != 2 {
		t.Fatalf("Entities() has %d entries, want 2", len(n.Entities()))
	}
	a, err := n.GetEntityByName("a")
	if err != nil {
		t.Fatalf("GetEntityByName(a): %v", err)
	}
	b, err := n.GetEntityByName("b")
	if err != nil {
		t.Fatalf("GetEntityByName(b): %v", err)
	}
	if got := n.Edge(a.ID(), b.ID()).String(); got != "R" {
		t.Errorf("Edge(a,b) = %q, want R", got)
	}
}

func TestSaveNetworkBytesRoundTrip(t *testing.T) {
	alg, err := loader.LoadAlgebraBytes([]byte(tinyAlgebraYAML))
	if err != nil {
		t.Fatalf("LoadAlgebraBytes: %v", err)
	}
	n, err := loader.LoadNetworkBytes([]byte(tinyNetworkYAML), alg)
	if err != nil {
		t.Fatalf("LoadNetworkBytes: %v", err)
	}

	data, err := loader.SaveNetworkBytes(n, "example", "round trip check")
	if err != nil {
		t.Fatalf("SaveNetworkBytes: %v", err)
	}

	reloaded, err := loader.LoadNetworkBytes(data, alg)
	if err != nil {
		t.Fatalf("LoadNetworkBytes(saved): %v", err)
	}
	a, err := reloaded.GetEntityByName("a")
	if err != nil {
		t.Fatalf("GetEntityByName(a) on reloaded: %v", err)
	}
	b, err := reloaded.GetEntityByName("b")
	if err != nil {
		t.Fatalf("GetEntityByName(b) on reloaded: %v", err)
	}
	if got := reloaded.Edge(a.ID(), b.ID()).String(); got != "R" {
		t.Errorf("reloaded Edge(a,b) = %q, want R", got)
	}
}

func TestNetworkFromDescriptionRejectsUnknownNode(t *testing.T) {
	alg, err := loader.LoadAlgebraBytes([]byte(tinyAlgebraYAML))
	if err != nil {
		t.Fatalf("LoadAlgebraBytes: %v", err)
	}
	desc := schema.NetworkDescription{
		Algebra: "Tiny",
		Nodes:   []schema.NodeSpec{{Name: "a", Classes: []string{"Point"}}},
		Edges:   []schema.EdgeSpec{{Source: "a", Target: "ghost", Constraint: "R", HasConstraint: true}},
	}
	if _, err := loader.NetworkFromDescription(alg, desc); !qualra.IsNoSuchEntityErr(err) {
		t.Errorf("expected IsNoSuchEntityErr, got %v", err)
	}
}
