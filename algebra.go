package qualra

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pthm/qualra/pkg/schema"
)

// Symbol is a relation's short identifying token, unique within its owning
// Algebra (e.g. "B" for Allen's "before", "NTPP" for RCC-8's "non-tangential
// proper part").
type Symbol string

// OntologicalClass tags which kind of entity a relation's domain or range
// accepts. The recognized vocabulary is fixed; loading an algebra or
// network description with any other tag fails with ErrUnknownClass.
type OntologicalClass string

const (
	ClassPoint          OntologicalClass = "Point"
	ClassProperInterval OntologicalClass = "ProperInterval"
	ClassRegion         OntologicalClass = "Region"
)

var knownClasses = map[OntologicalClass]bool{
	ClassPoint:          true,
	ClassProperInterval: true,
	ClassRegion:         true,
}

// Relation is the immutable metadata record for one member of an Algebra's
// vocabulary. A relation is an equality relation iff all three of
// Reflexive, Symmetric and Transitive hold.
type Relation struct {
	Symbol      Symbol
	Name        string
	Description string
	Converse    Symbol
	Domain      []OntologicalClass
	Range       []OntologicalClass
	Reflexive   bool
	Symmetric   bool
	Transitive  bool
}

// IsEquality reports whether r is reflexive, symmetric and transitive.
func (r Relation) IsEquality() bool { return r.Reflexive && r.Symmetric && r.Transitive }

// Algebra is a finite, ordered relation vocabulary together with a converse
// map and composition table. It is read-only once built by New
// and may be shared across networks and goroutines.
type Algebra struct {
	name        string
	description string
	order       []Symbol
	relations   map[Symbol]Relation
	pos         map[Symbol]int
	table       map[Symbol]map[Symbol]RelationSet
	equalityFor map[OntologicalClass]RelationSet
}

// Name returns the algebra's display name.
func (a *Algebra) Name() string { return a.name }

// Description returns the algebra's free-text description, if any.
func (a *Algebra) Description() string { return a.description }

// Relations returns the ordered list of relation symbols.
func (a *Algebra) Relations() []Symbol {
	out := make([]Symbol, len(a.order))
	copy(out, a.order)
	return out
}

// RelationInfo returns the metadata for sym, or ErrUnknownRelation.
func (a *Algebra) RelationInfo(sym Symbol) (Relation, error) {
	rel, ok := a.relations[sym]
	if !ok {
		return Relation{}, fmt.Errorf("%w: %s", ErrUnknownRelation, sym)
	}
	return rel, nil
}

func (a *Algebra) index(sym Symbol) (int, bool) {
	idx, ok := a.pos[sym]
	return idx, ok
}

// Empty returns the infimum RelationSet (contradiction).
func (a *Algebra) Empty() RelationSet { return RelationSet{algebra: a} }

// All returns the supremum RelationSet (unknown/unconstrained).
func (a *Algebra) All() RelationSet {
	var bits uint32
	for i := range a.order {
		bits |= 1 << uint(i)
	}
	return RelationSet{algebra: a, bits: bits}
}

// Single returns the singleton set {sym}, or ErrUnknownRelation.
func (a *Algebra) Single(sym Symbol) (RelationSet, error) {
	idx, ok := a.index(sym)
	if !ok {
		return RelationSet{}, fmt.Errorf("%w: %s", ErrUnknownRelation, sym)
	}
	return RelationSet{algebra: a, bits: 1 << uint(idx)}, nil
}

// Parse decodes a "|"-separated relation-symbol string into a RelationSet.
// The empty string parses to the empty set. Any unrecognized token fails
// with ErrUnknownRelation.
func (a *Algebra) Parse(s string) (RelationSet, error) {
	if s == "" {
		return a.Empty(), nil
	}
	var bits uint32
	for _, tok := range strings.Split(s, "|") {
		idx, ok := a.index(Symbol(tok))
		if !ok {
			return RelationSet{}, fmt.Errorf("%w: %s", ErrUnknownRelation, tok)
		}
		bits |= 1 << uint(idx)
	}
	return RelationSet{algebra: a, bits: bits}, nil
}

// ConverseOf returns the converse of a single relation symbol.
func (a *Algebra) ConverseOf(sym Symbol) (Symbol, error) {
	rel, err := a.RelationInfo(sym)
	if err != nil {
		return "", err
	}
	return rel.Converse, nil
}

// Compose computes ⋃_{r∈A, s∈B} T[r][s].
func (a *Algebra) Compose(lhs, rhs RelationSet) (RelationSet, error) {
	if err := lhs.checkSameAlgebra(rhs); err != nil {
		return RelationSet{}, err
	}
	out := a.Empty()
	for _, r := range lhs.Members() {
		row := a.table[r]
		for _, s := range rhs.Members() {
			cell, ok := row[s]
			if !ok {
				continue
			}
			var err error
			out, err = out.Union(cell)
			if err != nil {
				return RelationSet{}, err
			}
		}
	}
	return out, nil
}

// EqualityFor returns the RelationSet of equality relations whose domain
// includes class. An equality relation whose domain lists several classes is
// returned for each of them, not only for a single-class domain. A class
// with no declared equality relation yields the empty set.
func (a *Algebra) EqualityFor(class OntologicalClass) RelationSet {
	if rs, ok := a.equalityFor[class]; ok {
		return rs
	}
	return a.Empty()
}

// EqualityForClasses unions EqualityFor over every class in classes.
func (a *Algebra) EqualityForClasses(classes []OntologicalClass) (RelationSet, error) {
	out := a.Empty()
	for _, c := range classes {
		var err error
		out, err = out.Union(a.EqualityFor(c))
		if err != nil {
			return RelationSet{}, err
		}
	}
	return out, nil
}

// DomainClasses returns the union of domain classes over every relation in
// rs — used to narrow an entity's class tags from its self-edge (spec
// §4.4 propagation step, final line).
func (a *Algebra) DomainClasses(rs RelationSet) []OntologicalClass {
	seen := map[OntologicalClass]bool{}
	var out []OntologicalClass
	for _, sym := range rs.Members() {
		for _, c := range a.relations[sym].Domain {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

// LawVerdict is the result of an algebraic self-check: it is returned,
// never raised, even when the law fails.
type LawVerdict struct {
	Pass            bool
	Counterexamples []Counterexample
}

// Counterexample records one failing triple of an algebraic law check.
type Counterexample struct {
	R, S, T Symbol
	Left    RelationSet
	Right   RelationSet
}

// CheckCompositionIdentity verifies, for every singleton pair (r,s):
// compose({r},{s}) = converse(compose(converse({s}),converse({r}))).
func (a *Algebra) CheckCompositionIdentity() LawVerdict {
	var verdict LawVerdict
	verdict.Pass = true
	for _, r := range a.order {
		rSet, _ := a.Single(r)
		for _, s := range a.order {
			sSet, _ := a.Single(s)
			lhs, _ := a.Compose(rSet, sSet)
			convS := sSet.Converse()
			convR := rSet.Converse()
			rhsInner, _ := a.Compose(convS, convR)
			rhs := rhsInner.Converse()
			if !lhs.Equal(rhs) {
				verdict.Pass = false
				verdict.Counterexamples = append(verdict.Counterexamples, Counterexample{
					R: r, S: s, Left: lhs, Right: rhs,
				})
			}
		}
	}
	return verdict
}

// CheckAssociativity verifies, for every singleton triple (r,s,t) where
// range(r)∩domain(s)≠∅ and range(s)∩domain(t)≠∅:
// compose(compose({r},{s}),{t}) = compose({r},compose({s},{t})).
func (a *Algebra) CheckAssociativity() LawVerdict {
	var verdict LawVerdict
	verdict.Pass = true
	for _, r := range a.order {
		rSet, _ := a.Single(r)
		relR := a.relations[r]
		for _, s := range a.order {
			if !classesIntersect(relR.Range, a.relations[s].Domain) {
				continue
			}
			sSet, _ := a.Single(s)
			relS := a.relations[s]
			for _, t := range a.order {
				if !classesIntersect(relS.Range, a.relations[t].Domain) {
					continue
				}
				tSet, _ := a.Single(t)
				ab, _ := a.Compose(rSet, sSet)
				left, _ := a.Compose(ab, tSet)
				bc, _ := a.Compose(sSet, tSet)
				right, _ := a.Compose(rSet, bc)
				if !left.Equal(right) {
					verdict.Pass = false
					verdict.Counterexamples = append(verdict.Counterexamples, Counterexample{
						R: r, S: s, T: t, Left: left, Right: right,
					})
				}
			}
		}
	}
	return verdict
}

func classesIntersect(a, b []OntologicalClass) bool {
	set := make(map[OntologicalClass]bool, len(a))
	for _, c := range a {
		set[c] = true
	}
	for _, c := range b {
		if set[c] {
			return true
		}
	}
	return false
}

// New builds an Algebra from a wire description, running the structural
// checks that a description must pass to be usable at all. It does not run
// the algebraic self-checks (CheckCompositionIdentity/CheckAssociativity) —
// those are opt-in, since a malformed composition table should fail fast at
// load time but a merely unsound one is a diagnostic, not a load error.
func New(desc schema.AlgebraDescription) (*Algebra, error) {
	if len(desc.Relations) == 0 {
		return nil, malformedAlgebra("algebra has no relations", "")
	}

	a := &Algebra{
		name:        desc.Name,
		description: desc.Description,
		relations:   make(map[Symbol]Relation, len(desc.Relations)),
		pos:         make(map[Symbol]int, len(desc.Relations)),
		table:       make(map[Symbol]map[Symbol]RelationSet),
		equalityFor: make(map[OntologicalClass]RelationSet),
	}

	// Stable ordering: spec doesn't fix one for the description map, so we
	// sort symbols lexically. This only matters for bit position assignment,
	// not for observable behavior, since every RelationSet prints in this
	// same order consistently.
	order := make([]string, 0, len(desc.Relations))
	for sym := range desc.Relations {
		order = append(order, sym)
	}
	sort.Strings(order)

	for i, symStr := range order {
		sym := Symbol(symStr)
		spec := desc.Relations[symStr]
		if len(spec.Domain) == 0 {
			return nil, malformedAlgebra("relation has empty domain", symStr)
		}
		if len(spec.Range) == 0 {
			return nil, malformedAlgebra("relation has empty range", symStr)
		}
		domain, err := toClasses(spec.Domain)
		if err != nil {
			return nil, err
		}
		rng, err := toClasses(spec.Range)
		if err != nil {
			return nil, err
		}
		a.relations[sym] = Relation{
			Symbol:      sym,
			Name:        spec.Name,
			Description: spec.Description,
			Converse:    Symbol(spec.Converse),
			Domain:      domain,
			Range:       rng,
			Reflexive:   spec.Reflexive,
			Symmetric:   spec.Symmetric,
			Transitive:  spec.Transitive,
		}
		a.pos[sym] = i
		a.order = append(a.order, sym)
	}

	for symStr, spec := range desc.Relations {
		sym := Symbol(symStr)
		conv := Symbol(spec.Converse)
		convRel, ok := a.relations[conv]
		if !ok {
			return nil, malformedAlgebra("converse is not a relation symbol", symStr)
		}
		rel := a.relations[sym]
		if !classesEqualSet(convRel.Domain, rel.Range) || !classesEqualSet(convRel.Range, rel.Domain) {
			return nil, malformedAlgebra("converse relation's domain/range are not the transpose", symStr)
		}
	}

	for symStr, row := range desc.TransTable {
		r := Symbol(symStr)
		if _, ok := a.relations[r]; !ok {
			return nil, malformedAlgebra("trans table references unknown relation", symStr)
		}
		a.table[r] = make(map[Symbol]RelationSet, len(row))
		for symStr2, entry := range row {
			s := Symbol(symStr2)
			if _, ok := a.relations[s]; !ok {
				return nil, malformedAlgebra("trans table references unknown relation", symStr2)
			}
			var bits uint32
			for _, tok := range entry.Symbols {
				idx, ok := a.pos[Symbol(tok)]
				if !ok {
					return nil, malformedAlgebra("trans table entry references unknown relation", tok)
				}
				bits |= 1 << uint(idx)
			}
			a.table[r][s] = RelationSet{algebra: a, bits: bits}
		}
	}

	for sym, rel := range a.relations {
		if !rel.IsEquality() {
			continue
		}
		for _, c := range rel.Domain {
			single, _ := a.Single(sym)
			existing, ok := a.equalityFor[c]
			if !ok {
				existing = a.Empty()
			}
			union, _ := existing.Union(single)
			a.equalityFor[c] = union
		}
	}

	return a, nil
}

func toClasses(strs []string) ([]OntologicalClass, error) {
	out := make([]OntologicalClass, len(strs))
	for i, s := range strs {
		c := OntologicalClass(s)
		if !knownClasses[c] {
			return nil, fmt.Errorf("%w: %s", ErrUnknownClass, s)
		}
		out[i] = c
	}
	return out, nil
}

func classesEqualSet(a, b []OntologicalClass) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[OntologicalClass]bool, len(a))
	for _, c := range a {
		set[c] = true
	}
	for _, c := range b {
		if !set[c] {
			return false
		}
	}
	return true
}

// Describe converts the algebra back into its wire form, always
// emitting the compact "|"-string composition-table entry.
func (a *Algebra) Describe() schema.AlgebraDescription {
	desc := schema.AlgebraDescription{
		Name:        a.name,
		Description: a.description,
		Relations:   make(map[string]schema.RelationSpec, len(a.order)),
		TransTable:  make(map[string]schema.CompRow, len(a.order)),
	}
	for _, sym := range a.order {
		rel := a.relations[sym]
		desc.Relations[string(sym)] = schema.RelationSpec{
			Name:        rel.Name,
			Description: rel.Description,
			Converse:    string(rel.Converse),
			Domain:      classesToStrings(rel.Domain),
			Range:       classesToStrings(rel.Range),
			Reflexive:   rel.Reflexive,
			Symmetric:   rel.Symmetric,
			Transitive:  rel.Transitive,
		}
	}
	for r, row := range a.table {
		compRow := make(schema.CompRow, len(row))
		for s, rs := range row {
			compRow[string(s)] = schema.TransTableEntry{Symbols: symbolsToStrings(rs.Members())}
		}
		desc.TransTable[string(r)] = compRow
	}
	return desc
}

func classesToStrings(classes []OntologicalClass) []string {
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = string(c)
	}
	return out
}

func symbolsToStrings(syms []Symbol) []string {
	out := make([]string, len(syms))
	for i, s := range syms {
		out[i] = string(s)
	}
	return out
}
