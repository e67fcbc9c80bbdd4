// Command cpabedemo exercises Setup, KeyGen, Encrypt, and Decrypt
// end-to-end against a policy, attribute set, and message taken from
// flags (each with a built-in default). It is a demonstration harness,
// not part of the core library.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/vantage-cipher/cpabe/cpabe/bsw07"
	"github.com/vantage-cipher/cpabe/policy"
)

func main() {
	policyJSON := flag.String("policy", `{"AND":[{"ATT":"hospital-a"},{"OR":[{"ATT":"doctor"},{"ATT":"nurse"}]}]}`, "JSON access policy")
	attrs := flag.String("attrs", "hospital-a,nurse", "comma-separated attributes to issue a key for")
	message := flag.String("message", "the vault is under the oak tree", "plaintext to encrypt")
	flag.Parse()

	tree, err := policy.Parse([]byte(*policyJSON))
	if err != nil {
		log.Fatalf("parse policy: %v", err)
	}

	pk, msk, err := bsw07.Setup()
	if err != nil {
		log.Fatalf("setup: %v", err)
	}

	attrList := strings.Split(*attrs, ",")
	sk, err := bsw07.KeyGen(pk, msk, attrList)
	if err != nil {
		log.Fatalf("keygen: %v", err)
	}

	ct, err := bsw07.Encrypt(pk, tree, []byte(*message))
	if err != nil {
		log.Fatalf("encrypt: %v", err)
	}

	plaintext, err := bsw07.Decrypt(sk, ct)
	if err != nil {
		log.Fatalf("decrypt: %v", err)
	}

	fmt.Printf("attributes: %v\n", attrList)
	fmt.Printf("policy:     %s\n", *policyJSON)
	fmt.Printf("recovered:  %s\n", plaintext)
}
