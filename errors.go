package qualra

import (
	"errors"
	"fmt"
)

// Sentinel errors for this package's failure modes. These indicate a
// malformed description or a programmer error (combining relation sets from
// two algebras, looking up an entity that was never added) — never a
// reasoning outcome. Inconsistency detected during propagation is NOT one of
// these: it is mapped to a plain bool, not surfaced as an error.
//
// Use the Is*Err helper functions to test for a specific cause.
var (
	// ErrUnknownRelation is returned when a relation symbol is not a member
	// of the algebra it's being resolved against.
	ErrUnknownRelation = errors.New("qualra: unknown relation")

	// ErrUnknownClass is returned when an ontological-class tag is not in
	// the recognized vocabulary (Point, ProperInterval, Region).
	ErrUnknownClass = errors.New("qualra: unknown ontological class")

	// ErrAlgebraMismatch is returned when RelationSets or entities from two
	// different Algebra instances are combined.
	ErrAlgebraMismatch = errors.New("qualra: relation sets belong to different algebras")

	// ErrNoSuchEntity is returned by entity lookups that find nothing.
	ErrNoSuchEntity = errors.New("qualra: no such entity")

	// ErrMalformedAlgebra is the root cause wrapped by AlgebraError values
	// returned from algebra loading.
	ErrMalformedAlgebra = errors.New("qualra: malformed algebra")
)

// IsUnknownRelationErr returns true if err is or wraps ErrUnknownRelation.
func IsUnknownRelationErr(err error) bool { return errors.Is(err, ErrUnknownRelation) }

// IsUnknownClassErr returns true if err is or wraps ErrUnknownClass.
func IsUnknownClassErr(err error) bool { return errors.Is(err, ErrUnknownClass) }

// IsAlgebraMismatchErr returns true if err is or wraps ErrAlgebraMismatch.
func IsAlgebraMismatchErr(err error) bool { return errors.Is(err, ErrAlgebraMismatch) }

// IsNoSuchEntityErr returns true if err is or wraps ErrNoSuchEntity.
func IsNoSuchEntityErr(err error) bool { return errors.Is(err, ErrNoSuchEntity) }

// IsMalformedAlgebraErr returns true if err is or wraps ErrMalformedAlgebra.
func IsMalformedAlgebraErr(err error) bool { return errors.Is(err, ErrMalformedAlgebra) }

// AlgebraError carries the structural reason an algebra description failed
// to load, beyond what a sentinel error alone conveys.
type AlgebraError struct {
	Reason string // e.g. "converse is not a relation symbol", "relation has empty domain"
	Symbol string // the offending relation symbol, if any
	Err    error  // always ErrMalformedAlgebra, kept for errors.Is/As chaining
}

func (e *AlgebraError) Error() string {
	if e.Symbol != "" {
		return fmt.Sprintf("qualra: malformed algebra: %s (relation %q)", e.Reason, e.Symbol)
	}
	return fmt.Sprintf("qualra: malformed algebra: %s", e.Reason)
}

func (e *AlgebraError) Unwrap() error { return e.Err }

func malformedAlgebra(reason, symbol string) *AlgebraError {
	return &AlgebraError{Reason: reason, Symbol: symbol, Err: ErrMalformedAlgebra}
}

// NetworkError carries structured detail about a network-construction
// failure, such as an edge referencing an undeclared entity.
type NetworkError struct {
	Reason string
	Entity string
	Err    error
}

func (e *NetworkError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("qualra: %s (entity %q)", e.Reason, e.Entity)
	}
	return fmt.Sprintf("qualra: %s", e.Reason)
}

func (e *NetworkError) Unwrap() error { return e.Err }
