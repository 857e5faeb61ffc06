package shipped_test

import (
	"testing"

	"github.com/pthm/qualra/internal/shipped"
)

func TestAllNamedAlgebrasLoad(t *testing.T) {
	for _, name := range shipped.Names() {
		alg, err := shipped.Algebra(name)
		if err != nil {
			t.Fatalf("Algebra(%s): %v", name, err)
		}
		if len(alg.Relations()) == 0 {
			t.Errorf("Algebra(%s) has no relations", name)
		}
	}
}

func TestAlgebraIsCached(t *testing.T) {
	a1, err := shipped.Algebra(shipped.RCC8)
	if err != nil {
		t.Fatalf("Algebra(RCC8): %v", err)
	}
	a2, err := shipped.Algebra(shipped.RCC8)
	if err != nil {
		t.Fatalf("Algebra(RCC8): %v", err)
	}
	if a1 != a2 {
		t.Error("Algebra should return the same cached instance on repeat calls")
	}
}

func TestUnknownAlgebraNameFails(t *testing.T) {
	if _, err := shipped.Algebra("does-not-exist"); err == nil {
		t.Error("expected an error for an unknown algebra name")
	}
}

func TestDerivedLinearIntervalHasThirteenRelations(t *testing.T) {
	alg, err := shipped.Algebra(shipped.LinearInterval)
	if err != nil {
		t.Fatalf("Algebra(LinearInterval): %v", err)
	}
	if got := len(alg.Relations()); got != 13 {
		t.Errorf("LinearInterval has %d relations, want 13", got)
	}
}

func TestDerivedExtendedLinearIntervalHasMoreRelationsThanLinear(t *testing.T) {
	linear, err := shipped.Algebra(shipped.LinearInterval)
	if err != nil {
		t.Fatalf("Algebra(LinearInterval): %v", err)
	}
	extended, err := shipped.Algebra(shipped.ExtendedLinearInterval)
	if err != nil {
		t.Fatalf("Algebra(ExtendedLinearInterval): %v", err)
	}
	if len(extended.Relations()) <= len(linear.Relations()) {
		t.Errorf("extended linear interval should have more relations than the plain one (got %d vs %d)",
			len(extended.Relations()), len(linear.Relations()))
	}
}

func TestMustAlgebraPanicsOnUnknownName(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected MustAlgebra to panic on an unknown name")
		}
	}()
	shipped.MustAlgebra("does-not-exist")
}
