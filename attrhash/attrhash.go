// Package attrhash implements the deterministic attribute hash component:
// mapping an attribute name to a group element, bound to a specific
// instance's public parameters so two different Setup runs never collide.
//
// ToG2 is the variant the BSW core actually uses (for H(name) in KeyGen,
// Delegate, and Encrypt); ToG1 is exposed for schemes that need the
// attribute hashed into the other source group, and ToFr for hashing
// arbitrary labels into the scalar field.
package attrhash

import (
	"crypto/sha256"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	dstG2 = "vantage-cipher/cpabe attribute hash G2 v1"
	dstG1 = "vantage-cipher/cpabe attribute hash G1 v1"
)

// ToG2 deterministically maps (base, label) to an element of G2. base is
// normally a Setup run's g2 generator; folding it into the hashed message
// domain-separates the mapping per public-parameter instance, so the same
// attribute name hashes to unrelated points under two different Setups.
func ToG2(base bn254.G2Affine, label string) bn254.G2Affine {
	msg := append(base.Marshal(), []byte(label)...)
	p, err := bn254.HashToG2(msg, []byte(dstG2))
	if err != nil {
		panic(err)
	}
	return p
}

// ToG1 deterministically maps (base, label) to an element of G1.
func ToG1(base bn254.G1Affine, label string) bn254.G1Affine {
	msg := append(base.Marshal(), []byte(label)...)
	p, err := bn254.HashToG1(msg, []byte(dstG1))
	if err != nil {
		panic(err)
	}
	return p
}

// ToFr maps an arbitrary byte label to an element of the scalar field Fr
// via SHA-256. Any hash output is a valid field element modulo r, so this
// never fails.
func ToFr(label []byte) fr.Element {
	sum := sha256.Sum256(label)
	var out fr.Element
	out.SetBytes(sum[:])
	return out
}
