package qualra_test

import (
	"testing"

	"github.com/pthm/qualra"
	"github.com/pthm/qualra/pkg/schema"
)

// tinyAlgebraDescription is a minimal, hand-checked two-relation algebra
// used across the package's tests: EQ (the equality relation) and R, a
// single symmetric non-equality relation whose self-composition can yield
// either EQ or R.
func tinyAlgebraDescription() schema.AlgebraDescription {
	return schema.AlgebraDescription{
		Name: "Tiny",
		Relations: map[string]schema.RelationSpec{
			"EQ": {
				Name: "equal", Converse: "EQ",
				Domain: []string{"Point"}, Range: []string{"Point"},
				Reflexive: true, Symmetric: true, Transitive: true,
			},
			"R": {
				Name: "related", Converse: "R",
				Domain: []string{"Point"}, Range: []string{"Point"},
				Reflexive: false, Symmetric: true, Transitive: false,
			},
		},
		TransTable: map[string]schema.CompRow{
			"EQ": {
				"EQ": schema.TransTableEntry{Symbols: []string{"EQ"}},
				"R":  schema.TransTableEntry{Symbols: []string{"R"}},
			},
			"R": {
				"EQ": schema.TransTableEntry{Symbols: []string{"R"}},
				"R":  schema.TransTableEntry{Symbols: []string{"EQ", "R"}},
			},
		},
	}
}

func mustTinyAlgebra(t *testing.T) *qualra.Algebra {
	t.Helper()
	a, err := qualra.New(tinyAlgebraDescription())
	if err != nil {
		t.Fatalf("building tiny algebra: %v", err)
	}
	return a
}

func emptyAlgebraDescription() schema.AlgebraDescription {
	return schema.AlgebraDescription{Name: "Empty"}
}
