package bsw07

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vantage-cipher/cpabe/policy"
)

func setupInstance(t *testing.T) (*PublicKey, *MasterKey) {
	t.Helper()
	pk, msk, err := Setup()
	require.NoError(t, err)
	return pk, msk
}

// TestOrSatisfied checks a key holding one of two OR'd attributes decrypts
// successfully.
func TestOrSatisfied(t *testing.T) {
	pk, msk := setupInstance(t)
	tree := policy.NewOr(policy.NewLeaf("doctor"), policy.NewLeaf("nurse"))

	sk, err := KeyGen(pk, msk, []string{"doctor"})
	require.NoError(t, err)

	plaintext := []byte("patient record")
	ct, err := Encrypt(pk, tree, plaintext)
	require.NoError(t, err)

	got, err := Decrypt(sk, ct)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// TestOrRejected checks a key holding neither OR'd attribute fails.
func TestOrRejected(t *testing.T) {
	pk, msk := setupInstance(t)
	tree := policy.NewOr(policy.NewLeaf("doctor"), policy.NewLeaf("nurse"))

	sk, err := KeyGen(pk, msk, []string{"janitor"})
	require.NoError(t, err)

	ct, err := Encrypt(pk, tree, []byte("patient record"))
	require.NoError(t, err)

	_, err = Decrypt(sk, ct)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

// TestAndSatisfied checks a key holding all AND'd attributes decrypts.
func TestAndSatisfied(t *testing.T) {
	pk, msk := setupInstance(t)
	tree := policy.NewAnd(policy.NewLeaf("hospital-a"), policy.NewLeaf("doctor"))

	sk, err := KeyGen(pk, msk, []string{"hospital-a", "doctor"})
	require.NoError(t, err)

	plaintext := []byte("diagnosis")
	ct, err := Encrypt(pk, tree, plaintext)
	require.NoError(t, err)

	got, err := Decrypt(sk, ct)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// TestAndPartialMatchRejected checks a key holding only one of two
// required AND attributes fails, even though it holds half of the
// policy's leaves.
func TestAndPartialMatchRejected(t *testing.T) {
	pk, msk := setupInstance(t)
	tree := policy.NewAnd(policy.NewLeaf("hospital-a"), policy.NewLeaf("doctor"))

	sk, err := KeyGen(pk, msk, []string{"hospital-a"})
	require.NoError(t, err)

	ct, err := Encrypt(pk, tree, []byte("diagnosis"))
	require.NoError(t, err)

	_, err = Decrypt(sk, ct)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

// TestNestedAndOfOrSatisfied checks a deeper policy
// AND(hospital-a, OR(doctor, nurse)) is satisfied by a key that only holds
// the nurse branch of the OR.
func TestNestedAndOfOrSatisfied(t *testing.T) {
	pk, msk := setupInstance(t)
	tree := policy.NewAnd(
		policy.NewLeaf("hospital-a"),
		policy.NewOr(policy.NewLeaf("doctor"), policy.NewLeaf("nurse")),
	)

	sk, err := KeyGen(pk, msk, []string{"hospital-a", "nurse"})
	require.NoError(t, err)

	plaintext := []byte("treatment plan")
	ct, err := Encrypt(pk, tree, plaintext)
	require.NoError(t, err)

	got, err := Decrypt(sk, ct)
	require.NoError(t, err)
	require.Equal(t, plaintext, got)
}

// TestDelegatedKeySatisfiesSubsetPolicy checks a key delegated to a strict
// subset of attributes still decrypts a ciphertext whose policy only needs
// that subset, but loses the ability to satisfy policies that need the
// dropped attribute.
func TestDelegatedKeySatisfiesSubsetPolicy(t *testing.T) {
	pk, msk := setupInstance(t)
	sk, err := KeyGen(pk, msk, []string{"hospital-a", "doctor", "nurse"})
	require.NoError(t, err)

	delegated, err := Delegate(pk, sk, []string{"hospital-a", "doctor"})
	require.NoError(t, err)

	satisfiable := policy.NewAnd(policy.NewLeaf("hospital-a"), policy.NewLeaf("doctor"))
	ct, err := Encrypt(pk, satisfiable, []byte("lab results"))
	require.NoError(t, err)
	got, err := Decrypt(delegated, ct)
	require.NoError(t, err)
	require.Equal(t, []byte("lab results"), got)

	requiresDropped := policy.NewLeaf("nurse")
	ct2, err := Encrypt(pk, requiresDropped, []byte("shift notes"))
	require.NoError(t, err)
	_, err = Decrypt(delegated, ct2)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDelegateRejectsNonSubset(t *testing.T) {
	pk, msk := setupInstance(t)
	sk, err := KeyGen(pk, msk, []string{"doctor"})
	require.NoError(t, err)

	_, err = Delegate(pk, sk, []string{"nurse"})
	require.ErrorIs(t, err, ErrNotASubset)
}

// TestCollusionResistance confirms two keys, neither individually
// satisfying an AND policy, cannot be combined: mixing attribute
// components across two different key issuances (different randomizers
// r) does not reconstruct a valid secret key.
func TestCollusionResistance(t *testing.T) {
	pk, msk := setupInstance(t)
	tree := policy.NewAnd(policy.NewLeaf("hospital-a"), policy.NewLeaf("doctor"))

	skA, err := KeyGen(pk, msk, []string{"hospital-a"})
	require.NoError(t, err)
	skB, err := KeyGen(pk, msk, []string{"doctor"})
	require.NoError(t, err)

	colluded := &SecretKey{
		D:          skA.D,
		Attributes: map[string]AttributeComponent{},
	}
	colluded.Attributes["hospital-a"] = skA.Attributes["hospital-a"]
	colluded.Attributes["doctor"] = skB.Attributes["doctor"]

	ct, err := Encrypt(pk, tree, []byte("diagnosis"))
	require.NoError(t, err)

	_, err = Decrypt(colluded, ct)
	require.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestKeyGenRejectsEmptyAttributeSet(t *testing.T) {
	pk, msk := setupInstance(t)
	_, err := KeyGen(pk, msk, nil)
	require.ErrorIs(t, err, ErrEmptyAttributeSet)
}

func TestEncryptRejectsEmptyPolicy(t *testing.T) {
	pk, _ := setupInstance(t)
	_, err := Encrypt(pk, nil, []byte("x"))
	require.ErrorIs(t, err, ErrEmptyPolicy)
}

func TestEncryptRejectsEmptyPayload(t *testing.T) {
	pk, _ := setupInstance(t)
	_, err := Encrypt(pk, policy.NewLeaf("doctor"), nil)
	require.ErrorIs(t, err, ErrEmptyPayload)
}
