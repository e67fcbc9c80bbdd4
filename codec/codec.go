// Package codec implements canonical binary serialization for the types
// exchanged between Setup, KeyGen, Encrypt, and Decrypt: PublicKey,
// MasterKey, SecretKey, and Ciphertext. It wraps gnark-crypto's own
// Marshal/Unmarshal on G1, G2, GT, and Fr elements with a small
// length-prefixed framing so variable-length structures (attribute maps,
// policy trees, AEAD payloads) round-trip without ambiguity.
package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/vantage-cipher/cpabe/cpabe/bsw07"
	"github.com/vantage-cipher/cpabe/policy"
)

// ErrTruncated is returned by every Unmarshal function when the input ends
// before a length-prefixed field's declared length.
var ErrTruncated = errors.New("codec: truncated input")

func putBytes(buf *bytes.Buffer, b []byte) {
	var lenPrefix [4]byte
	binary.BigEndian.PutUint32(lenPrefix[:], uint32(len(b)))
	buf.Write(lenPrefix[:])
	buf.Write(b)
}

func getBytes(data []byte) (field, rest []byte, err error) {
	if len(data) < 4 {
		return nil, nil, ErrTruncated
	}
	n := binary.BigEndian.Uint32(data[:4])
	data = data[4:]
	if uint64(len(data)) < uint64(n) {
		return nil, nil, ErrTruncated
	}
	return data[:n], data[n:], nil
}

func marshalG1(buf *bytes.Buffer, p bn254.G1Affine) { putBytes(buf, p.Marshal()) }
func marshalG2(buf *bytes.Buffer, p bn254.G2Affine) { putBytes(buf, p.Marshal()) }
func marshalGT(buf *bytes.Buffer, p bn254.GT)       { putBytes(buf, p.Marshal()) }
func marshalFr(buf *bytes.Buffer, s fr.Element)     { putBytes(buf, s.Marshal()) }

func unmarshalG1(data []byte) (bn254.G1Affine, []byte, error) {
	field, rest, err := getBytes(data)
	if err != nil {
		return bn254.G1Affine{}, nil, err
	}
	var p bn254.G1Affine
	if err := p.Unmarshal(field); err != nil {
		return bn254.G1Affine{}, nil, err
	}
	return p, rest, nil
}

func unmarshalG2(data []byte) (bn254.G2Affine, []byte, error) {
	field, rest, err := getBytes(data)
	if err != nil {
		return bn254.G2Affine{}, nil, err
	}
	var p bn254.G2Affine
	if err := p.Unmarshal(field); err != nil {
		return bn254.G2Affine{}, nil, err
	}
	return p, rest, nil
}

func unmarshalGT(data []byte) (bn254.GT, []byte, error) {
	field, rest, err := getBytes(data)
	if err != nil {
		return bn254.GT{}, nil, err
	}
	var p bn254.GT
	if err := p.Unmarshal(field); err != nil {
		return bn254.GT{}, nil, err
	}
	return p, rest, nil
}

func unmarshalFr(data []byte) (fr.Element, []byte, error) {
	field, rest, err := getBytes(data)
	if err != nil {
		return fr.Element{}, nil, err
	}
	var s fr.Element
	if err := s.SetBytesCanonical(field); err != nil {
		return fr.Element{}, nil, err
	}
	return s, rest, nil
}

// MarshalPublicKey encodes pk as g1 || g2 || h || f || eggAlpha, each
// length-prefixed.
func MarshalPublicKey(pk *bsw07.PublicKey) []byte {
	var buf bytes.Buffer
	marshalG1(&buf, pk.G1)
	marshalG2(&buf, pk.G2)
	marshalG1(&buf, pk.H)
	marshalG2(&buf, pk.F)
	marshalGT(&buf, pk.EggAlpha)
	return buf.Bytes()
}

// UnmarshalPublicKey is the inverse of MarshalPublicKey.
func UnmarshalPublicKey(data []byte) (*bsw07.PublicKey, error) {
	g1, data, err := unmarshalG1(data)
	if err != nil {
		return nil, fmt.Errorf("codec: public key g1: %w", err)
	}
	g2, data, err := unmarshalG2(data)
	if err != nil {
		return nil, fmt.Errorf("codec: public key g2: %w", err)
	}
	h, data, err := unmarshalG1(data)
	if err != nil {
		return nil, fmt.Errorf("codec: public key h: %w", err)
	}
	f, data, err := unmarshalG2(data)
	if err != nil {
		return nil, fmt.Errorf("codec: public key f: %w", err)
	}
	eggAlpha, _, err := unmarshalGT(data)
	if err != nil {
		return nil, fmt.Errorf("codec: public key eggAlpha: %w", err)
	}
	return &bsw07.PublicKey{G1: g1, G2: g2, H: h, F: f, EggAlpha: eggAlpha}, nil
}

// MarshalMasterKey encodes msk as beta || g2Alpha.
func MarshalMasterKey(msk *bsw07.MasterKey) []byte {
	var buf bytes.Buffer
	marshalFr(&buf, msk.Beta)
	marshalG2(&buf, msk.G2Alpha)
	return buf.Bytes()
}

// UnmarshalMasterKey is the inverse of MarshalMasterKey.
func UnmarshalMasterKey(data []byte) (*bsw07.MasterKey, error) {
	beta, data, err := unmarshalFr(data)
	if err != nil {
		return nil, fmt.Errorf("codec: master key beta: %w", err)
	}
	g2Alpha, _, err := unmarshalG2(data)
	if err != nil {
		return nil, fmt.Errorf("codec: master key g2Alpha: %w", err)
	}
	return &bsw07.MasterKey{Beta: beta, G2Alpha: g2Alpha}, nil
}

// MarshalSecretKey encodes sk as D, followed by the attribute count and,
// for each attribute in sorted name order, name || D'_a || D_a.
func MarshalSecretKey(sk *bsw07.SecretKey) []byte {
	var buf bytes.Buffer
	marshalG2(&buf, sk.D)

	names := sortedNames(sk.Attributes)
	var countPrefix [4]byte
	binary.BigEndian.PutUint32(countPrefix[:], uint32(len(names)))
	buf.Write(countPrefix[:])

	for _, name := range names {
		comp := sk.Attributes[name]
		putBytes(&buf, []byte(name))
		marshalG1(&buf, comp.DPrime)
		marshalG2(&buf, comp.D)
	}
	return buf.Bytes()
}

// UnmarshalSecretKey is the inverse of MarshalSecretKey.
func UnmarshalSecretKey(data []byte) (*bsw07.SecretKey, error) {
	d, data, err := unmarshalG2(data)
	if err != nil {
		return nil, fmt.Errorf("codec: secret key d: %w", err)
	}
	if len(data) < 4 {
		return nil, ErrTruncated
	}
	count := binary.BigEndian.Uint32(data[:4])
	data = data[4:]

	attrs := make(map[string]bsw07.AttributeComponent, count)
	for i := uint32(0); i < count; i++ {
		var nameBytes []byte
		nameBytes, data, err = getBytes(data)
		if err != nil {
			return nil, fmt.Errorf("codec: secret key attribute name: %w", err)
		}
		var dPrime bn254.G1Affine
		dPrime, data, err = unmarshalG1(data)
		if err != nil {
			return nil, fmt.Errorf("codec: secret key d'_a: %w", err)
		}
		var dA bn254.G2Affine
		dA, data, err = unmarshalG2(data)
		if err != nil {
			return nil, fmt.Errorf("codec: secret key d_a: %w", err)
		}
		attrs[string(nameBytes)] = bsw07.AttributeComponent{DPrime: dPrime, D: dA}
	}
	return &bsw07.SecretKey{D: d, Attributes: attrs}, nil
}

// MarshalCiphertext encodes ct as the JSON-encoded policy, C, C', the
// per-leaf components in sorted name order, and finally the AEAD payload.
func MarshalCiphertext(ct *bsw07.Ciphertext) ([]byte, error) {
	policyJSON, err := policy.Encode(ct.Policy)
	if err != nil {
		return nil, fmt.Errorf("codec: ciphertext policy: %w", err)
	}

	var buf bytes.Buffer
	putBytes(&buf, policyJSON)
	marshalG1(&buf, ct.C)
	marshalGT(&buf, ct.CPrime)

	names := sortedNames(ct.Leaves)
	var countPrefix [4]byte
	binary.BigEndian.PutUint32(countPrefix[:], uint32(len(names)))
	buf.Write(countPrefix[:])

	for _, name := range names {
		leaf := ct.Leaves[name]
		putBytes(&buf, []byte(name))
		marshalG1(&buf, leaf.Cy)
		marshalG2(&buf, leaf.CyPrime)
	}

	putBytes(&buf, ct.Payload)
	return buf.Bytes(), nil
}

// UnmarshalCiphertext is the inverse of MarshalCiphertext.
func UnmarshalCiphertext(data []byte) (*bsw07.Ciphertext, error) {
	policyJSON, data, err := getBytes(data)
	if err != nil {
		return nil, fmt.Errorf("codec: ciphertext policy: %w", err)
	}
	tree, err := policy.Parse(policyJSON)
	if err != nil {
		return nil, fmt.Errorf("codec: ciphertext policy: %w", err)
	}

	c, data, err := unmarshalG1(data)
	if err != nil {
		return nil, fmt.Errorf("codec: ciphertext c: %w", err)
	}
	cPrime, data, err := unmarshalGT(data)
	if err != nil {
		return nil, fmt.Errorf("codec: ciphertext c': %w", err)
	}

	if len(data) < 4 {
		return nil, ErrTruncated
	}
	count := binary.BigEndian.Uint32(data[:4])
	data = data[4:]

	leaves := make(map[string]bsw07.CiphertextLeaf, count)
	for i := uint32(0); i < count; i++ {
		var nameBytes []byte
		nameBytes, data, err = getBytes(data)
		if err != nil {
			return nil, fmt.Errorf("codec: ciphertext leaf name: %w", err)
		}
		var cy bn254.G1Affine
		cy, data, err = unmarshalG1(data)
		if err != nil {
			return nil, fmt.Errorf("codec: ciphertext leaf cy: %w", err)
		}
		var cyPrime bn254.G2Affine
		cyPrime, data, err = unmarshalG2(data)
		if err != nil {
			return nil, fmt.Errorf("codec: ciphertext leaf cy': %w", err)
		}
		leaves[string(nameBytes)] = bsw07.CiphertextLeaf{Cy: cy, CyPrime: cyPrime}
	}

	payload, _, err := getBytes(data)
	if err != nil {
		return nil, fmt.Errorf("codec: ciphertext payload: %w", err)
	}

	return &bsw07.Ciphertext{
		Policy:  tree,
		C:       c,
		CPrime:  cPrime,
		Leaves:  leaves,
		Payload: payload,
	}, nil
}

func sortedNames[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
