package sharing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vantage-cipher/cpabe/policy"
)

// LeafCoeff pairs a policy leaf's attribute name with the Lagrange
// coefficient that recovers its contribution to the root secret.
type LeafCoeff struct {
	Name  string
	Coeff fr.Element
}

// LagrangeCoefficients walks root top-down carrying a running coefficient
// (1 at the root). At each inner node with children indexed 1..n it
// multiplies the running coefficient by each child's Lagrange basis
// coefficient Delta_i(0) and recurses: at an AND the basis is taken over
// the full index set {1,...,n}; at an OR (threshold 1) it is taken over
// the singleton {i}, so every OR child's factor is 1.
// Decrypt only ever combines the coefficients belonging to a pruned,
// satisfying leaf set; coefficients for leaves outside that set (e.g. the
// children an OR gate didn't use) are still returned here and simply
// discarded by the caller.
func LagrangeCoefficients(root *policy.Node) ([]LeafCoeff, error) {
	if err := root.Validate(); err != nil {
		return nil, err
	}
	var one fr.Element
	one.SetOne()
	return lagrangeNode(root, one), nil
}

func lagrangeNode(node *policy.Node, running fr.Element) []LeafCoeff {
	if node.Kind == policy.Leaf {
		return []LeafCoeff{{Name: node.Attribute, Coeff: running}}
	}

	n := len(node.Children)
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i + 1
	}

	var out []LeafCoeff
	for i, child := range node.Children {
		set := indices
		if node.Kind == policy.Or {
			// k=1: one child's share alone is the parent value, so its
			// basis is taken over the singleton {i}, which is 1.
			set = indices[i : i+1]
		}
		basis := lagrangeBasisAtZero(indices[i], set)
		var coeff fr.Element
		coeff.Mul(&running, &basis)
		out = append(out, lagrangeNode(child, coeff)...)
	}
	return out
}

// lagrangeBasisAtZero computes Delta_{i,S}(0) = Prod_{j in S, j != i} (0-j)/(i-j),
// the standard Lagrange basis polynomial for index i over the point set S,
// evaluated at x=0 (the constant term of the shared polynomial).
func lagrangeBasisAtZero(i int, indexSet []int) fr.Element {
	var iElem fr.Element
	iElem.SetInt64(int64(i))

	result := fr.NewElement(1)
	for _, j := range indexSet {
		if j == i {
			continue
		}
		var jElem fr.Element
		jElem.SetInt64(int64(j))

		var numerator fr.Element
		numerator.Neg(&jElem) // 0 - j

		var denominator fr.Element
		denominator.Sub(&iElem, &jElem)

		var inv fr.Element
		inv.Inverse(&denominator)

		var fraction fr.Element
		fraction.Mul(&numerator, &inv)

		result.Mul(&result, &fraction)
	}
	return result
}
