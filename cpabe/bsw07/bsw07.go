package bsw07

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vantage-cipher/cpabe/attrhash"
	"github.com/vantage-cipher/cpabe/envelope"
	"github.com/vantage-cipher/cpabe/pairing"
	"github.com/vantage-cipher/cpabe/policy"
	"github.com/vantage-cipher/cpabe/sharing"
)

// Setup samples fresh system parameters: g1, g2 as the curve's fixed
// generators, and alpha, beta uniform in Fr* (resampled if zero, since a
// zero beta has no inverse and a zero alpha collapses e(g1,g2)^alpha to the
// GT identity).
func Setup() (*PublicKey, *MasterKey, error) {
	g1, g2 := pairing.Generators()

	alpha, err := pairing.RandomNonZeroScalar()
	if err != nil {
		return nil, nil, err
	}
	beta, err := pairing.RandomNonZeroScalar()
	if err != nil {
		return nil, nil, err
	}

	h := pairing.ScalarMulG1(g1, beta)

	var betaInv fr.Element
	betaInv.Inverse(&beta)
	f := pairing.ScalarMulG2(g2, betaInv)

	egg, err := pairing.Pair(g1, g2)
	if err != nil {
		return nil, nil, err
	}
	eggAlpha := pairing.ExpGT(egg, alpha)
	g2Alpha := pairing.ScalarMulG2(g2, alpha)

	pk := &PublicKey{G1: g1, G2: g2, H: h, F: f, EggAlpha: eggAlpha}
	msk := &MasterKey{Beta: beta, G2Alpha: g2Alpha}
	return pk, msk, nil
}

// KeyGen issues a SecretKey for attribute set attrs, all bound to one fresh
// randomizer r so components from different keys cannot be mixed in
// Decrypt (see the SecretKey doc comment).
func KeyGen(pk *PublicKey, msk *MasterKey, attrs []string) (*SecretKey, error) {
	if len(attrs) == 0 {
		return nil, ErrEmptyAttributeSet
	}

	r, err := pairing.RandomScalar()
	if err != nil {
		return nil, err
	}
	g2R := pairing.ScalarMulG2(pk.G2, r)
	g2AlphaPlusR := pairing.AddG2(msk.G2Alpha, g2R)

	var betaInv fr.Element
	betaInv.Inverse(&msk.Beta)
	d := pairing.ScalarMulG2(g2AlphaPlusR, betaInv)

	components := make(map[string]AttributeComponent, len(attrs))
	for _, a := range attrs {
		ra, err := pairing.RandomScalar()
		if err != nil {
			return nil, err
		}
		ha := attrhash.ToG2(pk.G2, a)
		dA := pairing.AddG2(g2R, pairing.ScalarMulG2(ha, ra))
		dPrimeA := pairing.ScalarMulG1(pk.G1, ra)
		components[a] = AttributeComponent{DPrime: dPrimeA, D: dA}
	}

	return &SecretKey{D: d, Attributes: components}, nil
}

// Delegate derives a SecretKey for a subset of an existing key's
// attributes. The result is distributionally identical to a fresh KeyGen
// over subset: both re-randomize D with an independent G2 scalar and every
// attribute component with an independent pair of scalars, so a delegated
// key carries no marker distinguishing it from one KeyGen issued directly.
func Delegate(pk *PublicKey, sk *SecretKey, subset []string) (*SecretKey, error) {
	if len(subset) == 0 {
		return nil, ErrEmptySubset
	}
	for _, a := range subset {
		if _, ok := sk.Attributes[a]; !ok {
			return nil, ErrNotASubset
		}
	}

	r, err := pairing.RandomScalar()
	if err != nil {
		return nil, err
	}
	dNew := pairing.AddG2(sk.D, pairing.ScalarMulG2(pk.F, r))

	components := make(map[string]AttributeComponent, len(subset))
	for _, a := range subset {
		src := sk.Attributes[a]
		rPrime, err := pairing.RandomScalar()
		if err != nil {
			return nil, err
		}
		ha := attrhash.ToG2(pk.G2, a)
		dPrimeNew := pairing.AddG1(src.DPrime, pairing.ScalarMulG1(pk.G1, rPrime))
		dNewA := pairing.AddG2(pairing.AddG2(src.D, pairing.ScalarMulG2(ha, rPrime)), pairing.ScalarMulG2(pk.G2, r))
		components[a] = AttributeComponent{DPrime: dPrimeNew, D: dNewA}
	}

	return &SecretKey{D: dNew, Attributes: components}, nil
}

// Encrypt seals plaintext under tree. It samples a fresh root secret s and
// session element M (drawn from the full GT subgroup by pairing two
// independent random generators), shares s down the policy tree, and
// derives the bulk AEAD key from M.
func Encrypt(pk *PublicKey, tree *policy.Node, plaintext []byte) (*Ciphertext, error) {
	if tree == nil {
		return nil, ErrEmptyPolicy
	}
	if err := tree.Validate(); err != nil {
		return nil, err
	}
	if len(plaintext) == 0 {
		return nil, ErrEmptyPayload
	}

	s, err := pairing.RandomScalar()
	if err != nil {
		return nil, err
	}
	m, err := pairing.RandomGT()
	if err != nil {
		return nil, err
	}

	leafShares, err := sharing.GenSharesTree(s, tree)
	if err != nil {
		return nil, err
	}

	c := pairing.ScalarMulG1(pk.H, s)
	eggAlphaS := pairing.ExpGT(pk.EggAlpha, s)
	cPrime := pairing.MulGT(eggAlphaS, m)

	leaves := make(map[string]CiphertextLeaf, len(leafShares))
	for _, ls := range leafShares {
		cy := pairing.ScalarMulG1(pk.G1, ls.Share)
		ha := attrhash.ToG2(pk.G2, ls.Name)
		cyPrime := pairing.ScalarMulG2(ha, ls.Share)
		leaves[ls.Name] = CiphertextLeaf{Cy: cy, CyPrime: cyPrime}
	}

	key := envelope.DeriveKey(m)
	payload, err := envelope.Seal(key, plaintext)
	if err != nil {
		return nil, err
	}

	return &Ciphertext{
		Policy:  tree,
		C:       c,
		CPrime:  cPrime,
		Leaves:  leaves,
		Payload: payload,
	}, nil
}

// Decrypt recovers the plaintext sealed in ct using sk. It fails with
// ErrDecryptionFailed - indistinguishably, whether the cause is a
// non-satisfying attribute set or a tampered ciphertext - and otherwise
// with a structural error (e.g. a malformed policy) that is safe to
// surface directly since it carries no information about sk.
func Decrypt(sk *SecretKey, ct *Ciphertext) ([]byte, error) {
	attrs := make(map[string]struct{}, len(sk.Attributes))
	for name := range sk.Attributes {
		attrs[name] = struct{}{}
	}

	satisfied, selected, err := sharing.Prune(attrs, ct.Policy)
	if err != nil {
		return nil, err
	}
	if !satisfied {
		return nil, ErrDecryptionFailed
	}

	coeffs, err := sharing.LagrangeCoefficients(ct.Policy)
	if err != nil {
		return nil, err
	}
	coeffByName := make(map[string]fr.Element, len(coeffs))
	for _, lc := range coeffs {
		coeffByName[lc.Name] = lc.Coeff
	}

	var a bn254.GT
	a.SetOne()
	for _, name := range selected {
		leaf, ok := ct.Leaves[name]
		if !ok {
			return nil, ErrDecryptionFailed
		}
		comp, ok := sk.Attributes[name]
		if !ok {
			return nil, ErrDecryptionFailed
		}
		coeff, ok := coeffByName[name]
		if !ok {
			return nil, ErrDecryptionFailed
		}

		num, err := pairing.Pair(leaf.Cy, comp.D)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		den, err := pairing.Pair(comp.DPrime, leaf.CyPrime)
		if err != nil {
			return nil, ErrDecryptionFailed
		}
		ratio := pairing.DivGT(num, den)
		a = pairing.MulGT(a, pairing.ExpGT(ratio, coeff))
	}

	eCD, err := pairing.Pair(ct.C, sk.D)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	// M = C' * A * e(C, D)^-1
	m := pairing.DivGT(pairing.MulGT(ct.CPrime, a), eCD)

	key := envelope.DeriveKey(m)
	plaintext, err := envelope.Open(key, ct.Payload)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}
