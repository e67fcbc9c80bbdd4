// Package sharing is the threshold secret-sharing engine: Shamir sharing
// down a policy.Node tree (k=n at AND, k=1 at OR), Lagrange recovery
// coefficients for any satisfying leaf set, and the pruning pass that picks
// a minimal satisfying leaf set out of an attribute set. It operates purely
// over the scalar field Fr; group algebra lives in package pairing and the
// ABE core in package cpabe combines the two.
package sharing

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vantage-cipher/cpabe/pairing"
)

// GenShares samples a degree-(k-1) polynomial p with p(0) = secret and the
// remaining k-1 coefficients uniform in Fr, then evaluates it at
// x = 0, 1, ..., n. The result has length n+1; result[0] == secret and
// result[i] == p(i) for i in 1..n. Requires 1 <= k <= n.
func GenShares(secret fr.Element, k, n int) ([]fr.Element, error) {
	if k < 1 || k > n {
		return nil, ErrThresholdOutOfRange
	}
	coeffs := make([]fr.Element, k)
	coeffs[0] = secret
	for i := 1; i < k; i++ {
		c, err := pairing.RandomScalar()
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}

	shares := make([]fr.Element, n+1)
	for x := 0; x <= n; x++ {
		shares[x] = evalPoly(coeffs, x)
	}
	return shares, nil
}

// evalPoly evaluates coeffs[0] + coeffs[1]*x + ... at the small non-negative
// integer x using Horner's method.
func evalPoly(coeffs []fr.Element, x int) fr.Element {
	var xElem fr.Element
	xElem.SetInt64(int64(x))

	var out fr.Element
	for i := len(coeffs) - 1; i >= 0; i-- {
		out.Mul(&out, &xElem)
		out.Add(&out, &coeffs[i])
	}
	return out
}
