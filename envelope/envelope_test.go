package envelope

import (
	"bytes"
	"testing"

	"github.com/vantage-cipher/cpabe/pairing"
)

func TestSealOpenRoundTrip(t *testing.T) {
	m, err := pairing.RandomGT()
	if err != nil {
		t.Fatal(err)
	}
	key := DeriveKey(m)

	plaintext := []byte("attribute-based encryption payload")
	blob, err := Seal(key, plaintext)
	if err != nil {
		t.Fatal(err)
	}

	got, err := Open(key, blob)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Errorf("got %q, want %q", got, plaintext)
	}
}

func TestOpenRejectsTamperedCiphertext(t *testing.T) {
	m, err := pairing.RandomGT()
	if err != nil {
		t.Fatal(err)
	}
	key := DeriveKey(m)

	blob, err := Seal(key, []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	blob[len(blob)-1] ^= 0xFF

	if _, err := Open(key, blob); err != ErrOpenFailed {
		t.Errorf("got %v, want ErrOpenFailed", err)
	}
}

func TestOpenRejectsWrongKey(t *testing.T) {
	m1, err := pairing.RandomGT()
	if err != nil {
		t.Fatal(err)
	}
	m2, err := pairing.RandomGT()
	if err != nil {
		t.Fatal(err)
	}

	blob, err := Seal(DeriveKey(m1), []byte("secret"))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(DeriveKey(m2), blob); err != ErrOpenFailed {
		t.Errorf("got %v, want ErrOpenFailed", err)
	}
}

func TestOpenRejectsTruncatedBlob(t *testing.T) {
	m, err := pairing.RandomGT()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Open(DeriveKey(m), []byte{1, 2, 3}); err != ErrOpenFailed {
		t.Errorf("got %v, want ErrOpenFailed", err)
	}
}
