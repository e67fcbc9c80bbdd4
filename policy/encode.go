package policy

import "encoding/json"

// Encode renders n back into the JSON grammar Parse accepts. It is the
// inverse of Parse and is used by package codec to serialize a
// Ciphertext's policy tree alongside its pairing components.
func Encode(n *Node) ([]byte, error) {
	w, err := toWire(n)
	if err != nil {
		return nil, err
	}
	return json.Marshal(w)
}

func toWire(n *Node) (wireNode, error) {
	if err := n.Validate(); err != nil {
		return wireNode{}, err
	}
	switch n.Kind {
	case Leaf:
		att := n.Attribute
		return wireNode{ATT: &att}, nil
	case And:
		children, err := toWires(n.Children)
		if err != nil {
			return wireNode{}, err
		}
		return wireNode{AND: children}, nil
	default: // Or
		children, err := toWires(n.Children)
		if err != nil {
			return wireNode{}, err
		}
		return wireNode{OR: children}, nil
	}
}

func toWires(nodes []*Node) ([]wireNode, error) {
	wires := make([]wireNode, 0, len(nodes))
	for _, n := range nodes {
		w, err := toWire(n)
		if err != nil {
			return nil, err
		}
		wires = append(wires, w)
	}
	return wires, nil
}
