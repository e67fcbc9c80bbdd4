// Package pairing is a thin semantic wrapper around the BN254 bilinear
// pairing e: G1 x G2 -> GT, as implemented by gnark-crypto. It provides
// the group arithmetic the scheme uses: random scalars and generators,
// scalar multiplication in G1/G2, and the GT group operations
// (multiplication, division, exponentiation, inversion) needed to combine
// pairing outputs. Hash-to-curve (package attrhash) and element encoding
// (package codec) call gnark-crypto directly.
package pairing

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// RandomScalar draws a uniform element of Fr from a cryptographically
// secure source (gnark-crypto's fr.Element.SetRandom reads crypto/rand).
func RandomScalar() (fr.Element, error) {
	var s fr.Element
	if _, err := s.SetRandom(); err != nil {
		return fr.Element{}, err
	}
	return s, nil
}

// RandomNonZeroScalar resamples until it draws a nonzero element of Fr.
// Setup's alpha and beta must never be zero: a zero beta makes h the
// identity and f undefined (beta has no inverse), and a zero alpha makes
// egg_α the GT identity, collapsing the scheme's security.
func RandomNonZeroScalar() (fr.Element, error) {
	for {
		s, err := RandomScalar()
		if err != nil {
			return fr.Element{}, err
		}
		if !s.IsZero() {
			return s, nil
		}
	}
}

// Generators returns the fixed G1 and G2 base points of the curve.
func Generators() (g1 bn254.G1Affine, g2 bn254.G2Affine) {
	_, _, g1, g2 = bn254.Generators()
	return g1, g2
}

// RandomG1 samples a uniform element of G1 by scaling the generator with a
// uniform scalar.
func RandomG1() (bn254.G1Affine, error) {
	s, err := RandomScalar()
	if err != nil {
		return bn254.G1Affine{}, err
	}
	return ScalarBaseMulG1(s), nil
}

// RandomG2 samples a uniform element of G2 by scaling the generator with a
// uniform scalar.
func RandomG2() (bn254.G2Affine, error) {
	s, err := RandomScalar()
	if err != nil {
		return bn254.G2Affine{}, err
	}
	return ScalarBaseMulG2(s), nil
}

func scalarBigInt(s fr.Element) *big.Int {
	return s.BigInt(new(big.Int))
}

// ScalarMulG1 computes p^s (additively, s*p) in G1.
func ScalarMulG1(p bn254.G1Affine, s fr.Element) bn254.G1Affine {
	var out bn254.G1Affine
	out.ScalarMultiplication(&p, scalarBigInt(s))
	return out
}

// ScalarBaseMulG1 computes g1^s for the fixed G1 generator.
func ScalarBaseMulG1(s fr.Element) bn254.G1Affine {
	var out bn254.G1Affine
	out.ScalarMultiplicationBase(scalarBigInt(s))
	return out
}

// ScalarMulG2 computes p^s in G2.
func ScalarMulG2(p bn254.G2Affine, s fr.Element) bn254.G2Affine {
	var out bn254.G2Affine
	out.ScalarMultiplication(&p, scalarBigInt(s))
	return out
}

// ScalarBaseMulG2 computes g2^s for the fixed G2 generator.
func ScalarBaseMulG2(s fr.Element) bn254.G2Affine {
	var out bn254.G2Affine
	out.ScalarMultiplicationBase(scalarBigInt(s))
	return out
}

// AddG1 computes a*b (written multiplicatively: a.b) in G1.
func AddG1(a, b bn254.G1Affine) bn254.G1Affine {
	var out bn254.G1Affine
	out.Add(&a, &b)
	return out
}

// AddG2 computes a.b in G2.
func AddG2(a, b bn254.G2Affine) bn254.G2Affine {
	var out bn254.G2Affine
	out.Add(&a, &b)
	return out
}

// Pair computes e(a, b) in GT.
func Pair(a bn254.G1Affine, b bn254.G2Affine) (bn254.GT, error) {
	return bn254.Pair([]bn254.G1Affine{a}, []bn254.G2Affine{b})
}

// ExpGT computes base^s in GT.
func ExpGT(base bn254.GT, s fr.Element) bn254.GT {
	var out bn254.GT
	out.Exp(base, scalarBigInt(s))
	return out
}

// MulGT computes a*b in GT.
func MulGT(a, b bn254.GT) bn254.GT {
	var out bn254.GT
	out.Mul(&a, &b)
	return out
}

// DivGT computes a/b in GT.
func DivGT(a, b bn254.GT) bn254.GT {
	var out bn254.GT
	out.Div(&a, &b)
	return out
}

// InverseGT computes a^-1 in GT.
func InverseGT(a bn254.GT) bn254.GT {
	var out bn254.GT
	out.Inverse(&a)
	return out
}

// RandomGT samples a uniform element of the pairing target group by pairing
// two independently sampled generators: e(x, y) for uniform x in G1, y in
// G2. GT has no direct uniform sampler in gnark-crypto, so this is how the
// per-encryption session element M is drawn uniformly from the full group.
func RandomGT() (bn254.GT, error) {
	x, err := RandomG1()
	if err != nil {
		return bn254.GT{}, err
	}
	y, err := RandomG2()
	if err != nil {
		return bn254.GT{}, err
	}
	return Pair(x, y)
}
