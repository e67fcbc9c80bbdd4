package bsw07

import "errors"

var (
	// ErrEmptyAttributeSet is returned by KeyGen when given no attributes.
	ErrEmptyAttributeSet = errors.New("bsw07: attribute set must be non-empty")

	// ErrEmptySubset is returned by Delegate when given no attributes to
	// delegate.
	ErrEmptySubset = errors.New("bsw07: delegated attribute subset must be non-empty")

	// ErrNotASubset is returned by Delegate when the requested attribute is
	// not held by the source key.
	ErrNotASubset = errors.New("bsw07: delegated attributes must be a subset of the source key's attributes")

	// ErrEmptyPolicy is returned by Encrypt when given a nil policy tree.
	ErrEmptyPolicy = errors.New("bsw07: policy must be non-empty")

	// ErrEmptyPayload is returned by Encrypt when given an empty plaintext.
	ErrEmptyPayload = errors.New("bsw07: payload must be non-empty")

	// ErrDecryptionFailed is the single, deliberately uninformative error
	// Decrypt returns whenever recovery does not yield a valid plaintext -
	// whether because the key's attributes do not satisfy the policy, or
	// because the ciphertext's AEAD tag does not verify. The two causes are
	// merged on purpose: distinguishing them would let an attacker use
	// Decrypt as an oracle to probe which attributes a key holds.
	ErrDecryptionFailed = errors.New("bsw07: decryption failed")
)
