package sharing

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

func TestGenSharesRecoversSecretAtZero(t *testing.T) {
	secret, err := new(fr.Element).SetRandom()
	if err != nil {
		t.Fatal(err)
	}
	shares, err := GenShares(*secret, 3, 5)
	if err != nil {
		t.Fatal(err)
	}
	if len(shares) != 6 {
		t.Fatalf("got %d shares, want 6", len(shares))
	}
	if !shares[0].Equal(secret) {
		t.Error("shares[0] must equal the secret")
	}
}

func TestGenSharesThresholdOutOfRange(t *testing.T) {
	var secret fr.Element
	secret.SetInt64(1)

	if _, err := GenShares(secret, 0, 5); err != ErrThresholdOutOfRange {
		t.Errorf("k=0: got %v", err)
	}
	if _, err := GenShares(secret, 6, 5); err != ErrThresholdOutOfRange {
		t.Errorf("k>n: got %v", err)
	}
}

func TestEvalPolyConstant(t *testing.T) {
	var secret fr.Element
	secret.SetInt64(42)
	shares, err := GenShares(secret, 1, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range shares {
		if !s.Equal(&secret) {
			t.Errorf("k=1 share[%d]: got %v, want constant secret", i, s)
		}
	}
}
