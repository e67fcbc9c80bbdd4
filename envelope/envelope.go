// Package envelope is the symmetric half of the hybrid encryption scheme:
// it derives an AES-256 key from a GT session element and seals/opens the
// bulk payload with an authenticated cipher, AES-256-GCM, so a tampered
// ciphertext is rejected rather than silently producing garbage plaintext.
package envelope

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// ErrOpenFailed reports that open failed to authenticate the ciphertext:
// wrong key, truncated blob, or tampering. Callers that fold this into a
// broader decryption-failure error preserve the property that "policy not
// satisfied" and "ciphertext forged" look identical from the outside.
var ErrOpenFailed = errors.New("envelope: open failed")

// DeriveKey derives a 32-byte AES-256 key from a GT session element by
// hashing its canonical Marshal encoding. Encrypt and Decrypt must use the
// identical encoding (gnark-crypto's GT.Marshal, not GT.Bytes or
// GT.String) or the derived keys will silently diverge.
func DeriveKey(m bn254.GT) [32]byte {
	encoded := m.Marshal()
	return sha256.Sum256(encoded)
}

// Seal encrypts plaintext under key with AES-256-GCM, generating a fresh
// random nonce and prepending it to the returned blob.
func Seal(key [32]byte, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// Open authenticates and decrypts a blob produced by Seal. It returns
// ErrOpenFailed (never the underlying AEAD error, to avoid leaking a
// distinguishing oracle) on any failure: wrong key, truncated blob, or a
// tampered ciphertext.
func Open(key [32]byte, blob []byte) ([]byte, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, ErrOpenFailed
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrOpenFailed
	}
	if len(blob) < gcm.NonceSize() {
		return nil, ErrOpenFailed
	}
	nonce, ciphertext := blob[:gcm.NonceSize()], blob[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, ErrOpenFailed
	}
	return plaintext, nil
}
