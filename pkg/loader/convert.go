package loader

import (
	"github.com/pthm/qualra"
	"github.com/pthm/qualra/pkg/schema"
)

// NetworkFromDescription builds a Network over alg from desc: it declares
// every node, resolves abbreviations, and adds every edge. An edge with no
// constraint element is left to Propagate's default of the supremum.
func NetworkFromDescription(alg *qualra.Algebra, desc schema.NetworkDescription) (*qualra.Network, error) {
	n := qualra.NewNetwork(alg, nil)
	ids := make(map[string]qualra.EntityID, len(desc.Nodes))
	for _, node := range desc.Nodes {
		classes := make([]qualra.OntologicalClass, len(node.Classes))
		for i, c := range node.Classes {
			classes[i] = qualra.OntologicalClass(c)
		}
		e, err := qualra.NewEntity(node.Name, classes...)
		if err != nil {
			return nil, err
		}
		id, err := n.AddEntity(e)
		if err != nil {
			return nil, err
		}
		ids[node.Name] = id
	}
	for _, edge := range desc.Edges {
		u, ok := ids[edge.Source]
		if !ok {
			return nil, &qualra.NetworkError{Reason: "edge references unknown node", Entity: edge.Source, Err: qualra.ErrNoSuchEntity}
		}
		v, ok := ids[edge.Target]
		if !ok {
			return nil, &qualra.NetworkError{Reason: "edge references unknown node", Entity: edge.Target, Err: qualra.ErrNoSuchEntity}
		}
		if !edge.HasConstraint {
			continue
		}
		label := edge.Constraint
		if abbr, ok := desc.Abbreviations[label]; ok {
			label = abbr
		}
		if err := n.AddConstraint(u, v, label); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// DescribeNetwork converts n to its wire form, filling in name and
// description since Network.Describe doesn't carry either.
func DescribeNetwork(n *qualra.Network, name, description string) schema.NetworkDescription {
	desc := n.Describe()
	desc.Name = name
	desc.Description = description
	return desc
}
