// Package cryptoffi wraps the crypto primitives every other package agrees on:
// one hash function, one signature scheme, and a random source.
package cryptoffi

import (
	"bytes"
	"crypto/rand"
	"encoding/hex"

	"github.com/tink-crypto/tink-go/v2/keyset"
	"github.com/tink-crypto/tink-go/v2/signature"
	"github.com/tink-crypto/tink-go/v2/tink"
	"github.com/zeebo/blake3"
	"golang.org/x/xerrors"
)

const (
	HashLen uint64 = 32
)

// # Hash

type Hasher struct {
	h *blake3.Hasher
}

func NewHasher() *Hasher {
	return &Hasher{h: blake3.New()}
}

func (hr *Hasher) Write(b []byte) {
	// blake3 writes never fail.
	hr.h.Write(b)
}

// Sum appends the HashLen digest to b.
func (hr *Hasher) Sum(b []byte) []byte {
	return hr.h.Sum(b)
}

func Hash(data []byte) []byte {
	h := blake3.Sum256(data)
	return h[:]
}

// HashHex is the hex form used by every digest field on the wire.
func HashHex(data []byte) string {
	return hex.EncodeToString(Hash(data))
}

// # Signature

// SigPrivateKey has an unexported signer, which can't be accessed outside
// the package, without reflection or unsafe.
type SigPrivateKey struct {
	s tink.Signer
}

type SigPublicKey struct {
	h *keyset.Handle
	v tink.Verifier
}

func SigGenerateKey() (*SigPublicKey, *SigPrivateKey, error) {
	h, err := keyset.NewHandle(signature.ED25519KeyTemplate())
	if err != nil {
		return nil, nil, xerrors.Errorf("sig keygen: %w", err)
	}
	s, err := signature.NewSigner(h)
	if err != nil {
		return nil, nil, xerrors.Errorf("sig signer: %w", err)
	}
	hPub, err := h.Public()
	if err != nil {
		return nil, nil, xerrors.Errorf("sig public handle: %w", err)
	}
	pk, err := newSigPublicKey(hPub)
	if err != nil {
		return nil, nil, err
	}
	return pk, &SigPrivateKey{s: s}, nil
}

func newSigPublicKey(hPub *keyset.Handle) (*SigPublicKey, error) {
	v, err := signature.NewVerifier(hPub)
	if err != nil {
		return nil, xerrors.Errorf("sig verifier: %w", err)
	}
	return &SigPublicKey{h: hPub, v: v}, nil
}

func (sk *SigPrivateKey) Sign(message []byte) ([]byte, error) {
	sig, err := sk.s.Sign(message)
	if err != nil {
		return nil, xerrors.Errorf("sign: %w", err)
	}
	return sig, nil
}

// Verify rets okay if sig verifies.
func (pk *SigPublicKey) Verify(message []byte, sig []byte) bool {
	return pk.v.Verify(sig, message) == nil
}

// Encode serializes the public keyset. it never carries secret material.
func (pk *SigPublicKey) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := pk.h.WriteWithNoSecrets(keyset.NewBinaryWriter(buf)); err != nil {
		return nil, xerrors.Errorf("encode sig pk: %w", err)
	}
	return buf.Bytes(), nil
}

func SigPublicKeyDecode(b []byte) (*SigPublicKey, error) {
	h, err := keyset.ReadWithNoSecrets(keyset.NewBinaryReader(bytes.NewReader(b)))
	if err != nil {
		return nil, xerrors.Errorf("decode sig pk: %w", err)
	}
	return newSigPublicKey(h)
}

// # Random

// RandBytes returns [n] random bytes.
func RandBytes(n uint64) []byte {
	b := make([]byte, n)
	_, err := rand.Read(b)
	// don't care about recovering from crypto/rand failures.
	if err != nil {
		panic("crypto/rand call failed")
	}
	return b
}
