package qualra

// EntityID is an arena index into a Network's entity table — not a name,
// not a pointer — so copying and serializing a Network never has to
// reason about identity.
type EntityID int

// Entity is a named node carrying one or more ontological-class tags. The
// class list has duplicates removed and preserves first-seen
// order for printing. A successful Propagate narrows these tags in place on
// the Entity to reflect what the self-edge's relation set implies.
type Entity struct {
	id      EntityID
	name    string
	classes []OntologicalClass
}

// NewEntity builds an Entity with the given name and ontological classes,
// deduplicating while preserving order. It fails with ErrUnknownClass if
// any tag is outside the recognized vocabulary, and is otherwise id-less
// until added to a Network, which assigns the arena index.
func NewEntity(name string, classes ...OntologicalClass) (*Entity, error) {
	seen := make(map[OntologicalClass]bool, len(classes))
	deduped := make([]OntologicalClass, 0, len(classes))
	for _, c := range classes {
		if !knownClasses[c] {
			return nil, &NetworkError{Reason: "unknown ontological class", Entity: name, Err: ErrUnknownClass}
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		deduped = append(deduped, c)
	}
	return &Entity{name: name, classes: deduped}, nil
}

// ID returns the entity's arena index within its owning Network. Zero value
// before the entity is added to a network.
func (e *Entity) ID() EntityID { return e.id }

// Name returns the entity's printable, within-network-unique name.
func (e *Entity) Name() string { return e.name }

// Classes returns the entity's current ontological-class tags, in order.
func (e *Entity) Classes() []OntologicalClass {
	out := make([]OntologicalClass, len(e.classes))
	copy(out, e.classes)
	return out
}

func (e *Entity) narrowClasses(classes []OntologicalClass) {
	if len(classes) == 0 {
		return
	}
	e.classes = classes
}
