package sharing

import "github.com/vantage-cipher/cpabe/policy"

// Prune decides whether attrs satisfies root and, if so, selects one
// minimal satisfying leaf set: depth-first, short-circuiting an OR at its
// first satisfying child (ties broken by tree order) and requiring every
// child of an AND to be satisfied. It returns (false, nil, nil) for a
// well-formed but unsatisfied policy, and a non-nil error only for a
// malformed tree.
func Prune(attrs map[string]struct{}, root *policy.Node) (satisfied bool, selected []string, err error) {
	if err := root.Validate(); err != nil {
		return false, nil, err
	}
	return pruneNode(attrs, root)
}

func pruneNode(attrs map[string]struct{}, node *policy.Node) (bool, []string, error) {
	switch node.Kind {
	case policy.Leaf:
		if _, ok := attrs[node.Attribute]; ok {
			return true, []string{node.Attribute}, nil
		}
		return false, nil, nil

	case policy.Or:
		for _, child := range node.Children {
			ok, sel, err := pruneNode(attrs, child)
			if err != nil {
				return false, nil, err
			}
			if ok {
				return true, sel, nil
			}
		}
		return false, nil, nil

	case policy.And:
		var selected []string
		for _, child := range node.Children {
			ok, sel, err := pruneNode(attrs, child)
			if err != nil {
				return false, nil, err
			}
			if !ok {
				return false, nil, nil
			}
			selected = append(selected, sel...)
		}
		return true, selected, nil

	default:
		return false, nil, policy.ErrMalformed
	}
}
