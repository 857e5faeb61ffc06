package qualra_test

import (
	"testing"
)

func TestRelationSetBasics(t *testing.T) {
	a := mustTinyAlgebra(t)

	empty := a.Empty()
	if !empty.IsEmpty() {
		t.Error("Empty() should be empty")
	}
	if empty.Any() {
		t.Error("Empty() should not be Any()")
	}

	all := a.All()
	if all.Len() != 2 {
		t.Errorf("All().Len() = %d, want 2", all.Len())
	}

	single, err := a.Single("R")
	if err != nil {
		t.Fatalf("Single(R): %v", err)
	}
	if !single.IsSingleton() {
		t.Error("Single(R) should be a singleton")
	}
	if !single.Contains("R") {
		t.Error("Single(R) should contain R")
	}
	if single.Contains("EQ") {
		t.Error("Single(R) should not contain EQ")
	}
}

func TestRelationSetParseAndString(t *testing.T) {
	a := mustTinyAlgebra(t)

	rs, err := a.Parse("EQ|R")
	if err != nil {
		t.Fatalf("Parse(EQ|R): %v", err)
	}
	if rs.Len() != 2 {
		t.Errorf("Parse(EQ|R).Len() = %d, want 2", rs.Len())
	}
	if got := rs.String(); got != "EQ|R" {
		t.Errorf("String() = %q, want %q", got, "EQ|R")
	}

	empty, err := a.Parse("")
	if err != nil {
		t.Fatalf("Parse(\"\"): %v", err)
	}
	if !empty.IsEmpty() {
		t.Error("Parse(\"\") should be empty")
	}

	if _, err := a.Parse("bogus"); err == nil {
		t.Error("Parse(bogus) should fail with ErrUnknownRelation")
	}
}

func TestRelationSetUnionIntersection(t *testing.T) {
	a := mustTinyAlgebra(t)
	eq, _ := a.Single("EQ")
	r, _ := a.Single("R")

	union, err := eq.Union(r)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if union.Len() != 2 {
		t.Errorf("Union.Len() = %d, want 2", union.Len())
	}

	inter, err := eq.Intersection(r)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	if !inter.IsEmpty() {
		t.Error("disjoint singletons should intersect to empty")
	}

	selfInter, err := union.Intersection(eq)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	if !selfInter.Equal(eq) {
		t.Errorf("union ∩ eq = %v, want eq", selfInter)
	}
}

func TestRelationSetConverse(t *testing.T) {
	a := mustTinyAlgebra(t)
	r, _ := a.Single("R")
	conv := r.Converse()
	if !conv.Equal(r) {
		t.Error("R's converse should be R (symmetric)")
	}
}
