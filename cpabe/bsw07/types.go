// Package bsw07 implements the core CP-ABE operations of
// Bethencourt, Sahai, and Waters, "Ciphertext-Policy Attribute-Based
// Encryption" (S&P 2007): Setup, KeyGen, Delegate, Encrypt, and Decrypt.
//
// A data producer encrypts a payload under a boolean access policy over
// attribute names (package policy); any holder of a SecretKey whose
// attribute set satisfies the policy can Decrypt it, and no combination of
// non-satisfying keys - even pooled across users - can recover the
// plaintext. The scheme ties together three layers: pairing algebra
// (package pairing) for the randomization that blocks collusion, Shamir
// secret sharing over the policy tree (package sharing) for the threshold
// structure, and a symmetric AEAD envelope (package envelope) for the bulk
// payload.
package bsw07

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vantage-cipher/cpabe/policy"
)

// PublicKey holds the system's public parameters, produced once by Setup
// and distributed to every encryptor and key holder.
type PublicKey struct {
	G1       bn254.G1Affine // g1, the G1 generator
	G2       bn254.G2Affine // g2, the G2 generator
	H        bn254.G1Affine // h = g1^beta
	F        bn254.G2Affine // f = g2^(1/beta)
	EggAlpha bn254.GT       // e(g1, g2)^alpha
}

// MasterKey holds the setup authority's secret parameters, consumed only
// by KeyGen. It must never leave the setup authority.
type MasterKey struct {
	Beta    fr.Element
	G2Alpha bn254.G2Affine // g2^alpha
}

// AttributeComponent is one attribute's contribution to a SecretKey:
// D'_a = g1^{r_a}, D_a = g2^r * H(a)^{r_a}, where r is the key's shared
// per-issuance randomizer. Binding every attribute component to the same r
// is what makes two distinct keys' components unusable together in
// Decrypt - see the package doc on SecretKey.
type AttributeComponent struct {
	DPrime bn254.G1Affine // D'_a
	D      bn254.G2Affine // D_a
}

// SecretKey is a user key for a fixed attribute set, produced by KeyGen or
// Delegate.
//
// All of a key's AttributeComponents and its D share one randomizer r
// sampled once at issuance. That shared r is the entire collusion-defense
// mechanism: an attribute component pulled from one user's key carries a
// g2^r term that only that user's D can cancel in the pairing equation in
// Decrypt, so combining attribute components across two different keys
// never reconstructs a valid Decrypt value. Re-sampling r per attribute
// instead of once per key would silently destroy this property.
type SecretKey struct {
	D          bn254.G2Affine
	Attributes map[string]AttributeComponent
}

// CiphertextLeaf is one policy leaf's contribution to a Ciphertext:
// C_y = g1^{s_y}, C'_y = H(name)^{s_y}, where s_y is that leaf's share of
// the encryption's root secret s.
type CiphertextLeaf struct {
	Cy      bn254.G1Affine
	CyPrime bn254.G2Affine
}

// Ciphertext is the output of Encrypt: an access policy, the pairing
// components binding a session element M to that policy's secret sharing,
// and the AEAD-sealed bulk payload keyed on M.
type Ciphertext struct {
	Policy  *policy.Node
	C       bn254.G1Affine
	CPrime  bn254.GT
	Leaves  map[string]CiphertextLeaf
	Payload []byte
}
