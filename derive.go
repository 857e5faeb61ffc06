package qualra

import (
	"context"
	"fmt"
	"sort"

	"github.com/pthm/qualra/pkg/schema"
)

// Signature is the 4-tuple of point relations (c13, c14, c23, c24) between
// the endpoints s1,e1 of one properness-constrained interval and s2,e2 of
// another, in the fixed order (13,14,23,24); a draft using (13,23,14,24)
// produces a different, wrong correspondence to the shipped algebras.
type Signature struct {
	C13, C14, C23, C24 Symbol
}

// converse returns the signature of the converse interval relation: swap
// the C14/C23 endpoint-crossing components (s1 vs e2 becomes e1 vs s2, and
// vice versa) and replace every point relation with its own converse under
// pointAlg, since reversing (a,b) to (b,a) also reverses the direction of
// each point comparison.
func (s Signature) converse(pointAlg *Algebra) (Signature, error) {
	c13, err := pointAlg.ConverseOf(s.C13)
	if err != nil {
		return Signature{}, err
	}
	c14, err := pointAlg.ConverseOf(s.C23)
	if err != nil {
		return Signature{}, err
	}
	c23, err := pointAlg.ConverseOf(s.C14)
	if err != nil {
		return Signature{}, err
	}
	c24, err := pointAlg.ConverseOf(s.C24)
	if err != nil {
		return Signature{}, err
	}
	return Signature{C13: c13, C14: c14, C23: c23, C24: c24}, nil
}

// baseSignatureNames is the classical Allen correspondence for the pure
// linear point algebra {<, =, >}: the hand-derived 4-tuple witnessing each
// of the 13 interval relations under properness constraint "<". Extended
// and branching point algebras introduce additional consistent signatures
// (via "=" or "~" appearing in the cross constraints) that this table does
// not cover by design — those get systematically synthesized names by
// signatureName, since no external naming convention covers them beyond
// the relation counts (18, 24) the extended and branching algebras carry.
var baseSignatureNames = map[Signature]Symbol{
	{"<", "<", "<", "<"}: "B",
	{">", ">", ">", ">"}: "BI",
	{"<", "<", "=", "<"}: "M",
	{">", "=", ">", ">"}: "MI",
	{"<", "<", ">", "<"}: "O",
	{">", "<", ">", ">"}: "OI",
	{"=", "<", ">", "<"}: "S",
	{"=", "<", ">", ">"}: "SI",
	{">", "<", ">", "<"}: "D",
	{"<", "<", ">", ">"}: "DI",
	{">", "<", ">", "="}: "F",
	{"<", "<", ">", "="}: "FI",
	{"=", "<", ">", "="}: "EQ",
}

// signatureName maps a 4-point signature to the interval-relation symbol it
// witnesses. Known linear signatures use Allen's familiar two/three-letter
// abbreviations; anything else (extended or branching point algebras
// introduce signatures the base table doesn't cover) gets a systematic name
// built from the signature itself, so the mapping stays a total, injective
// function over whatever signatures a given point algebra actually
// produces.
func signatureName(sig Signature) Symbol {
	if name, ok := baseSignatureNames[sig]; ok {
		return name
	}
	return Symbol(fmt.Sprintf("R_%s_%s_%s_%s", sig.C13, sig.C14, sig.C23, sig.C24))
}

// FourPointNet builds the 4-point network used to derive interval relations
// from a point algebra: points s1,e1,s2,e2
// with properness constraints s1 LT e1 and s2 LT e2, and the four cross
// constraints fixed to sig's singleton point relations.
func FourPointNet(pointAlg *Algebra, lt RelationSet, sig Signature) (*Network, [4]EntityID, error) {
	n := NewNetwork(pointAlg, nil)
	var ids [4]EntityID
	for i, name := range []string{"s1", "e1", "s2", "e2"} {
		e, err := NewEntity(name, ClassPoint)
		if err != nil {
			return nil, ids, err
		}
		id, err := n.AddEntity(e)
		if err != nil {
			return nil, ids, err
		}
		ids[i] = id
	}
	s1, e1, s2, e2 := ids[0], ids[1], ids[2], ids[3]
	if err := n.AddConstraintSet(s1, e1, lt); err != nil {
		return nil, ids, err
	}
	if err := n.AddConstraintSet(s2, e2, lt); err != nil {
		return nil, ids, err
	}
	if err := applySignature(n, pointAlg, s1, e1, s2, e2, sig); err != nil {
		return nil, ids, err
	}
	return n, ids, nil
}

func applySignature(n *Network, pointAlg *Algebra, s1, e1, s2, e2 EntityID, sig Signature) error {
	pairs := []struct {
		u, v EntityID
		sym  Symbol
	}{
		{s1, s2, sig.C13},
		{s1, e2, sig.C14},
		{e1, s2, sig.C23},
		{e1, e2, sig.C24},
	}
	for _, p := range pairs {
		rs, err := pointAlg.Single(p.sym)
		if err != nil {
			return err
		}
		if err := n.AddConstraintSet(p.u, p.v, rs); err != nil {
			return err
		}
	}
	return nil
}

// GenerateConsistentNetworks iterates over every |P|⁴ assignment of
// singleton point relations to a 4-point network's cross constraints,
// keeps the path-consistent ones, and returns the resulting interval
// relation vocabulary: its witnessing signature keyed by name, the inverse
// lookup, and the witnessing network itself.
func GenerateConsistentNetworks(pointAlg *Algebra, lt RelationSet) (map[Symbol]Signature, map[Signature]Symbol, map[Symbol]*Network, error) {
	syms := pointAlg.Relations()
	nameToSig := make(map[Symbol]Signature)
	sigToName := make(map[Signature]Symbol)
	witness := make(map[Symbol]*Network)

	for _, c13 := range syms {
		for _, c14 := range syms {
			for _, c23 := range syms {
				for _, c24 := range syms {
					sig := Signature{c13, c14, c23, c24}
					net, _, err := FourPointNet(pointAlg, lt, sig)
					if err != nil {
						return nil, nil, nil, err
					}
					ok, err := net.Propagate(context.Background())
					if err != nil {
						return nil, nil, nil, err
					}
					if !ok {
						continue
					}
					name := signatureName(sig)
					if _, exists := nameToSig[name]; exists {
						continue
					}
					nameToSig[name] = sig
					sigToName[sig] = name
					witness[name] = net
				}
			}
		}
	}
	return nameToSig, sigToName, witness, nil
}

// SixPointNet builds the 6-point network used to derive composition: three
// properness-constrained interval pairs, with pair (1,2) constrained to
// sig1's signature, pair (2,3) to sig2's, and pair (1,3) left fully
// unconstrained.
func SixPointNet(pointAlg *Algebra, lt RelationSet, sig1, sig2 Signature) (*Network, [6]EntityID, error) {
	n := NewNetwork(pointAlg, nil)
	var ids [6]EntityID
	for i, name := range []string{"s1", "e1", "s2", "e2", "s3", "e3"} {
		e, err := NewEntity(name, ClassPoint)
		if err != nil {
			return nil, ids, err
		}
		id, err := n.AddEntity(e)
		if err != nil {
			return nil, ids, err
		}
		ids[i] = id
	}
	s1, e1, s2, e2, s3, e3 := ids[0], ids[1], ids[2], ids[3], ids[4], ids[5]
	for _, pair := range [][2]EntityID{{s1, e1}, {s2, e2}, {s3, e3}} {
		if err := n.AddConstraintSet(pair[0], pair[1], lt); err != nil {
			return nil, ids, err
		}
	}
	if err := applySignature(n, pointAlg, s1, e1, s2, e2, sig1); err != nil {
		return nil, ids, err
	}
	if err := applySignature(n, pointAlg, s2, e2, s3, e3, sig2); err != nil {
		return nil, ids, err
	}
	return n, ids, nil
}

func singleSymbol(rs RelationSet) (Symbol, bool) {
	members := rs.Members()
	if len(members) != 1 {
		return "", false
	}
	return members[0], true
}

// DeriveComposition builds a 6-point network for (r1,r2)'s signatures,
// propagates, enumerates every singleton realization, and collects the set
// of interval-relation names witnessed on the (1,3) partition — this is
// R₁ ; R₂.
func DeriveComposition(pointAlg *Algebra, lt RelationSet, sig1, sig2 Signature, sigToName map[Signature]Symbol) ([]Symbol, error) {
	net, ids, err := SixPointNet(pointAlg, lt, sig1, sig2)
	if err != nil {
		return nil, err
	}
	ok, err := net.Propagate(context.Background())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	realizations, err := net.AllRealizations(context.Background())
	if err != nil {
		return nil, err
	}
	s1, e1, s3, e3 := ids[0], ids[1], ids[4], ids[5]
	seen := make(map[Symbol]bool)
	var out []Symbol
	for _, r := range realizations {
		c13, ok1 := singleSymbol(r.Edge(s1, s3))
		c14, ok2 := singleSymbol(r.Edge(s1, e3))
		c23, ok3 := singleSymbol(r.Edge(e1, s3))
		c24, ok4 := singleSymbol(r.Edge(e1, e3))
		if !ok1 || !ok2 || !ok3 || !ok4 {
			continue
		}
		name, ok := sigToName[Signature{c13, c14, c23, c24}]
		if !ok || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}

// DeriveCompositionTable applies DeriveComposition over every ordered pair
// of derived relation names, producing the raw composition table (spec
// §4.5 derive_composition_table).
func DeriveCompositionTable(pointAlg *Algebra, lt RelationSet, nameToSig map[Symbol]Signature, sigToName map[Signature]Symbol) (map[string]schema.CompRow, error) {
	names := make([]Symbol, 0, len(nameToSig))
	for name := range nameToSig {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	table := make(map[string]schema.CompRow, len(names))
	for _, r1 := range names {
		row := make(schema.CompRow, len(names))
		for _, r2 := range names {
			entries, err := DeriveComposition(pointAlg, lt, nameToSig[r1], nameToSig[r2], sigToName)
			if err != nil {
				return nil, err
			}
			strs := make([]string, len(entries))
			for i, e := range entries {
				strs[i] = string(e)
			}
			row[string(r2)] = schema.TransTableEntry{Symbols: strs}
		}
		table[string(r1)] = row
	}
	return table, nil
}

// DeriveRelationInfo fills in a derived relation's metadata: converse from
// the transposed signature, domain/range from whether the point algebra's
// equality symbol appears in lt (a degenerate, point-like interval is
// possible iff it does), reflexive iff sig is the Allen EQ signature
// (=, <, >, =), symmetric iff the relation is its own converse, and
// transitive iff composing the relation with itself yields exactly itself.
func DeriveRelationInfo(pointAlg *Algebra, lt RelationSet, name Symbol, sig Signature, sigToName map[Signature]Symbol) (schema.RelationSpec, error) {
	convSig, err := sig.converse(pointAlg)
	if err != nil {
		return schema.RelationSpec{}, err
	}
	convName, ok := sigToName[convSig]
	if !ok {
		return schema.RelationSpec{}, fmt.Errorf("qualra: no witnessed converse for derived relation %s", name)
	}

	classes := []string{string(ClassProperInterval)}
	if lt.Contains("=") {
		classes = append(classes, string(ClassPoint))
	}

	reflexive := sig == Signature{"=", "<", ">", "="}
	symmetric := convName == name

	composed, err := DeriveComposition(pointAlg, lt, sig, sig, sigToName)
	if err != nil {
		return schema.RelationSpec{}, err
	}
	transitive := len(composed) == 1 && composed[0] == name

	return schema.RelationSpec{
		Name:       string(name),
		Converse:   string(convName),
		Domain:     classes,
		Range:      classes,
		Reflexive:  reflexive,
		Symmetric:  symmetric,
		Transitive: transitive,
	}, nil
}

// DeriveAlgebra constructs a full interval-level Algebra description from
// an underlying point algebra via the 4-point/6-point machinery of spec
// §4.5, ready for pkg/loader.SaveAlgebra.
func DeriveAlgebra(pointAlg *Algebra, lt RelationSet, name, description string) (*schema.AlgebraDescription, error) {
	nameToSig, sigToName, _, err := GenerateConsistentNetworks(pointAlg, lt)
	if err != nil {
		return nil, err
	}
	if len(nameToSig) == 0 {
		return nil, fmt.Errorf("qualra: derivation produced no consistent interval relations")
	}

	relations := make(map[string]schema.RelationSpec, len(nameToSig))
	for relName, sig := range nameToSig {
		spec, err := DeriveRelationInfo(pointAlg, lt, relName, sig, sigToName)
		if err != nil {
			return nil, err
		}
		relations[string(relName)] = spec
	}

	table, err := DeriveCompositionTable(pointAlg, lt, nameToSig, sigToName)
	if err != nil {
		return nil, err
	}

	return &schema.AlgebraDescription{
		Name:        name,
		Description: description,
		Relations:   relations,
		TransTable:  table,
	}, nil
}
