package sharing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vantage-cipher/cpabe/policy"
)

// LeafShare pairs a policy leaf's attribute name with the share value it
// received from GenSharesTree.
type LeafShare struct {
	Name  string
	Share fr.Element
}

// GenSharesTree distributes secret down root: an AND of n children shares
// with k=n (every child must recover its own sub-secret), an OR of n
// children shares with k=1 (the polynomial is the constant secret, so every
// child receives secret itself), and a leaf simply receives the incoming
// share. Children are evaluated at positions 1..n, matching the convention
// LagrangeCoefficients uses for recovery.
func GenSharesTree(secret fr.Element, root *policy.Node) ([]LeafShare, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	return genSharesNode(secret, root)
}

func genSharesNode(secret fr.Element, node *policy.Node) ([]LeafShare, error) {
	if node.Kind == policy.Leaf {
		return []LeafShare{{Name: node.Attribute, Share: secret}}, nil
	}

	n := len(node.Children)
	k := node.Threshold()
	shares, err := GenShares(secret, k, n)
	if err != nil {
		return nil, err
	}

	var out []LeafShare
	for i, child := range node.Children {
		childShares, err := genSharesNode(shares[i+1], child)
		if err != nil {
			return nil, err
		}
		out = append(out, childShares...)
	}
	return out, nil
}
