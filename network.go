package qualra

import (
	"context"

	"github.com/pthm/qualra/pkg/schema"
)

// Network is a directed labeled multigraph over a fixed Algebra: entities
// are nodes, and every ordered pair carries a disjunctive RelationSet.
// Internally it is an adjacency map of maps — EntityID ->
// map[EntityID]RelationSet — plus a parallel entity table for
// insertion-order iteration, so output stays reproducible across runs.
//
// A Network is not internally synchronized; concurrent access requires
// external mutual exclusion.
type Network struct {
	algebra  *Algebra
	entities []*Entity
	byName   map[string]EntityID
	edges    map[EntityID]map[EntityID]RelationSet
	namer    EntityNamer
}

// NewNetwork creates an empty network over algebra, using namer to generate
// names for entities added via NewAnonymousEntity. Pass nil to use
// NewRandomNamer().
func NewNetwork(algebra *Algebra, namer EntityNamer) *Network {
	if namer == nil {
		namer = NewRandomNamer()
	}
	return &Network{
		algebra: algebra,
		byName:  make(map[string]EntityID),
		edges:   make(map[EntityID]map[EntityID]RelationSet),
		namer:   namer,
	}
}

// Algebra returns the network's owning algebra.
func (n *Network) Algebra() *Algebra { return n.algebra }

// Entities returns the network's entities in insertion order.
func (n *Network) Entities() []*Entity {
	out := make([]*Entity, len(n.entities))
	copy(out, n.entities)
	return out
}

// GetEntityByName looks up an entity by name. If two entities share a name
// the first one added wins; the second is never reachable by name but
// remains a full graph member.
func (n *Network) GetEntityByName(name string) (*Entity, error) {
	id, ok := n.byName[name]
	if !ok {
		return nil, &NetworkError{Reason: "no such entity", Entity: name, Err: ErrNoSuchEntity}
	}
	return n.entities[id], nil
}

// AddEntity adds e to the network, assigning its arena ID, and installs its
// self-equality edge using the algebra's equality relations for e's classes.
func (n *Network) AddEntity(e *Entity) (EntityID, error) {
	id := EntityID(len(n.entities))
	e.id = id
	n.entities = append(n.entities, e)
	if _, exists := n.byName[e.name]; !exists {
		n.byName[e.name] = id
	}
	selfRS, err := n.algebra.EqualityForClasses(e.classes)
	if err != nil {
		return 0, err
	}
	n.setEdgeRaw(id, id, selfRS)
	return id, nil
}

// NewAnonymousEntity builds and adds an entity using the network's injected
// namer for its name.
func (n *Network) NewAnonymousEntity(classes ...OntologicalClass) (*Entity, error) {
	e, err := NewEntity(n.namer.Next(), classes...)
	if err != nil {
		return nil, err
	}
	if _, err := n.AddEntity(e); err != nil {
		return nil, err
	}
	return e, nil
}

func (n *Network) setEdgeRaw(u, v EntityID, rs RelationSet) {
	if n.edges[u] == nil {
		n.edges[u] = make(map[EntityID]RelationSet)
	}
	n.edges[u][v] = rs
}

// Edge returns the current constraint between u and v. A missing edge
// reads as the supremum — the unconstrained relation set — rather than
// an error.
func (n *Network) Edge(u, v EntityID) RelationSet {
	if row, ok := n.edges[u]; ok {
		if rs, ok := row[v]; ok {
			return rs
		}
	}
	return n.algebra.All()
}

func (n *Network) ensureSelfEquality(id EntityID) error {
	e := n.entities[id]
	rs, err := n.algebra.EqualityForClasses(e.classes)
	if err != nil {
		return err
	}
	n.setEdgeRaw(id, id, rs)
	return nil
}

// AddConstraint sets c(u,v) to the parsed label and c(v,u) to its converse,
// overriding any prior constraint on the pair, and (re-)establishes
// self-equality edges for both endpoints.
func (n *Network) AddConstraint(u, v EntityID, label string) error {
	rs, err := n.algebra.Parse(label)
	if err != nil {
		return err
	}
	return n.AddConstraintSet(u, v, rs)
}

// AddConstraintSet is AddConstraint taking an already-parsed RelationSet.
func (n *Network) AddConstraintSet(u, v EntityID, rs RelationSet) error {
	n.setEdgeRaw(u, v, rs)
	n.setEdgeRaw(v, u, rs.Converse())
	if err := n.ensureSelfEquality(u); err != nil {
		return err
	}
	return n.ensureSelfEquality(v)
}

// RemoveConstraint removes both (u,v) and (v,u).
func (n *Network) RemoveConstraint(u, v EntityID) {
	delete(n.edges[u], v)
	delete(n.edges[v], u)
}

// SetConstraint replaces an already-existing edge and its converse in
// place, without touching self-equality edges.
func (n *Network) SetConstraint(u, v EntityID, rs RelationSet) {
	n.setEdgeRaw(u, v, rs)
	n.setEdgeRaw(v, u, rs.Converse())
}

func (n *Network) ensureTotal() {
	sup := n.algebra.All()
	for _, u := range n.entities {
		for _, v := range n.entities {
			if u.id == v.id {
				continue
			}
			if row, ok := n.edges[u.id]; ok {
				if _, ok := row[v.id]; ok {
					continue
				}
			}
			n.setEdgeRaw(u.id, v.id, sup)
		}
	}
}

// Propagate runs the path-consistency fixed point: repeatedly tightening
// every edge to the intersection with the composition of all two-hop
// paths, until no edge changes or some edge collapses to empty. It checks
// ctx.Err() once per outer iteration and returns a non-nil error only for
// context cancellation; inconsistency is reported as a false return
// instead of an error.
func (n *Network) Propagate(ctx context.Context) (bool, error) {
	n.ensureTotal()

	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		changed := false
		for _, u := range n.entities {
			for _, v := range n.entities {
				if u.id == v.id {
					continue
				}
				p := n.algebra.All()
				for _, w := range n.entities {
					comp, err := n.algebra.Compose(n.Edge(u.id, w.id), n.Edge(w.id, v.id))
					if err != nil {
						return false, err
					}
					p, err = p.Intersection(comp)
					if err != nil {
						return false, err
					}
				}
				if !p.Equal(n.Edge(u.id, v.id)) {
					changed = true
				}
				n.setEdgeRaw(u.id, v.id, p)
				if p.IsEmpty() {
					return false, nil
				}
			}
		}
		if !changed {
			break
		}
	}

	for _, v := range n.entities {
		classes := n.algebra.DomainClasses(n.Edge(v.id, v.id))
		v.narrowClasses(classes)
	}
	return true, nil
}

// HasOnlySingletonConstraints reports whether the edge between every two
// distinct entities has exactly one member; a pair with no stored edge reads
// as the supremum. Self-edges are not checked.
func (n *Network) HasOnlySingletonConstraints() bool {
	for i := range n.entities {
		for j := range n.entities {
			if i == j {
				continue
			}
			if !n.Edge(n.entities[i].id, n.entities[j].id).IsSingleton() {
				return false
			}
		}
	}
	return true
}

// Expand picks the first non-singleton edge in stable insertion order and
// returns one mostly-deep copy per relation in that edge's set, each with
// the pair fixed to that singleton (converse updated). Returns nil if the
// network is already fully singleton.
func (n *Network) Expand() []*Network {
	for i := range n.entities {
		for j := i + 1; j < len(n.entities); j++ {
			u, v := n.entities[i], n.entities[j]
			rs := n.Edge(u.id, v.id)
			if rs.IsSingleton() || rs.IsEmpty() {
				continue
			}
			out := make([]*Network, 0, rs.Len())
			for _, sym := range rs.Members() {
				single, _ := n.algebra.Single(sym)
				child := n.Copy()
				child.SetConstraint(u.id, v.id, single)
				out = append(out, child)
			}
			return out
		}
	}
	return nil
}

// ExpandAll iterates Expand via a work list, not recursion, until every
// produced network is fully singleton.
func (n *Network) ExpandAll() []*Network {
	work := []*Network{n}
	var done []*Network
	for len(work) > 0 {
		cur := work[0]
		work = work[1:]
		children := cur.Expand()
		if children == nil {
			done = append(done, cur)
			continue
		}
		work = append(work, children...)
	}
	return done
}

// AllRealizations returns ExpandAll filtered to networks whose Propagate
// succeeds: every consistent singleton labelling of the original.
func (n *Network) AllRealizations(ctx context.Context) ([]*Network, error) {
	var out []*Network
	for _, candidate := range n.ExpandAll() {
		ok, err := candidate.Propagate(ctx)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, candidate)
		}
	}
	return out, nil
}

// Copy performs a "mostly-deep" copy: entities and edges are deep-copied,
// but the Algebra is shared by reference.
func (n *Network) Copy() *Network {
	out := &Network{
		algebra: n.algebra,
		byName:  make(map[string]EntityID, len(n.byName)),
		edges:   make(map[EntityID]map[EntityID]RelationSet, len(n.edges)),
		namer:   n.namer,
	}
	out.entities = make([]*Entity, len(n.entities))
	for i, e := range n.entities {
		classes := make([]OntologicalClass, len(e.classes))
		copy(classes, e.classes)
		out.entities[i] = &Entity{id: e.id, name: e.name, classes: classes}
	}
	for name, id := range n.byName {
		out.byName[name] = id
	}
	for u, row := range n.edges {
		newRow := make(map[EntityID]RelationSet, len(row))
		for v, rs := range row {
			newRow[v] = rs
		}
		out.edges[u] = newRow
	}
	return out
}

// Union returns a new network whose node set is the union of n's and
// other's nodes and whose edges are the union of their edges. If both
// networks constrain the same pair, other's edge wins.
func (n *Network) Union(other *Network) *Network {
	out := n.Copy()
	for _, e := range other.entities {
		if _, exists := out.byName[e.name]; exists {
			continue
		}
		classes := make([]OntologicalClass, len(e.classes))
		copy(classes, e.classes)
		fresh := &Entity{name: e.name, classes: classes}
		_, _ = out.AddEntity(fresh)
	}
	for u, row := range other.edges {
		uName := other.entities[u].name
		uID, ok := out.byName[uName]
		if !ok {
			continue
		}
		for v, rs := range row {
			vName := other.entities[v].name
			vID, ok := out.byName[vName]
			if !ok {
				continue
			}
			out.setEdgeRaw(uID, vID, RelationSet{algebra: out.algebra, bits: rs.bits})
		}
	}
	return out
}

// EdgeChange describes one edge that narrowed between two network
// snapshots over the same node set.
type EdgeChange struct {
	U, V   string
	Before RelationSet
	After  RelationSet
}

// Diff reports which undirected pairs narrowed between n (the "before"
// snapshot) and other (the "after" snapshot) — used by the CLI's verbose
// propagation trace to show what Propagate tightened.
func (n *Network) Diff(other *Network) []EdgeChange {
	var out []EdgeChange
	for i := range n.entities {
		for j := i + 1; j < len(n.entities); j++ {
			u, v := n.entities[i], n.entities[j]
			before := n.Edge(u.id, v.id)
			otherU, err := other.GetEntityByName(u.name)
			if err != nil {
				continue
			}
			otherV, err := other.GetEntityByName(v.name)
			if err != nil {
				continue
			}
			after := other.Edge(otherU.id, otherV.id)
			if !before.Equal(after) {
				out = append(out, EdgeChange{U: u.name, V: v.name, Before: before, After: after})
			}
		}
	}
	return out
}

// Describe converts the network to its wire form: entities with their
// *current* class tags (which may have been narrowed by Propagate;
// callers wanting the original declared tags must capture them before
// calling Propagate), and one entry per undirected pair, each emitted
// once with self-edges omitted.
func (n *Network) Describe() schema.NetworkDescription {
	desc := schema.NetworkDescription{
		Name:    "",
		Algebra: n.algebra.Name(),
	}
	for _, e := range n.entities {
		desc.Nodes = append(desc.Nodes, schema.NodeSpec{
			Name:    e.name,
			Classes: classesToStrings(e.classes),
		})
	}
	for i := range n.entities {
		for j := i + 1; j < len(n.entities); j++ {
			u, v := n.entities[i], n.entities[j]
			rs := n.Edge(u.id, v.id)
			desc.Edges = append(desc.Edges, schema.EdgeSpec{
				Source:        u.name,
				Target:        v.name,
				Constraint:    rs.String(),
				HasConstraint: true,
			})
		}
	}
	return desc
}
