package protocol

import (
	"math/big"
	"strings"

	"github.com/storetao/protocol/hashchain"
	"golang.org/x/xerrors"
)

// Commitment is the binding a provider returns for stored data.
// the elliptic-curve values are carried, never computed, here.
type Commitment struct {
	Curve      string
	G          string
	H          string
	Seed       Seed
	Randomness *big.Int
	Commitment string
	// CommitmentHash is Hash(Hash(data || prevSeed) || Seed).
	CommitmentHash string
}

// CommitmentValues collects the commitment values of a store exchange.
func (m *Store) CommitmentValues() Commitment {
	c := Commitment{Curve: m.Curve, G: m.G, H: m.H, Seed: m.Seed, Randomness: m.Randomness}
	if m.Commitment != nil {
		c.Commitment = *m.Commitment
	}
	if m.CommitmentHash != nil {
		c.CommitmentHash = *m.CommitmentHash
	}
	return c
}

// CommitmentVerifier checks the elliptic-curve opening of a challenge
// response. implementations report a bad opening as [ErrProofInvalid].
type CommitmentVerifier interface {
	VerifyCommitment(c *Challenge) error
}

// MerkleVerifier folds proof over the hash of chunk and compares the
// result with root. implementations report a mismatch as [ErrProofInvalid].
type MerkleVerifier interface {
	VerifyMerkle(chunk []byte, proof MerkleProof, root string) error
}

// CheckCommitment errors with [ErrIncompleteProof] unless every value
// is present and non-empty.
func CheckCommitment(c Commitment) error {
	var missing []string
	if c.Curve == "" {
		missing = append(missing, "curve")
	}
	if c.G == "" {
		missing = append(missing, "g")
	}
	if c.H == "" {
		missing = append(missing, "h")
	}
	if c.Seed.IsZero() {
		missing = append(missing, "seed")
	}
	if c.Randomness == nil {
		missing = append(missing, "randomness")
	}
	if c.Commitment == "" {
		missing = append(missing, "commitment")
	}
	if c.CommitmentHash == "" {
		missing = append(missing, "commitment_hash")
	}
	return incomplete(KindStore, missing, "missing")
}

// CheckChallengeResponse is the structural gate in front of cryptographic
// verification. it errors with [ErrIncompleteProof] when a response field
// is missing, the Merkle proof is empty, a proof node doesn't set exactly
// one side, or the chunk is empty or longer than the chunk size.
func CheckChallengeResponse(c *Challenge) error {
	var missing []string
	if isEmpty(c.CommitmentHash) {
		missing = append(missing, "commitment_hash")
	}
	if isEmpty(c.CommitmentProof) {
		missing = append(missing, "commitment_proof")
	}
	if isEmpty(c.Commitment) {
		missing = append(missing, "commitment")
	}
	if len(c.DataChunk) == 0 {
		missing = append(missing, "data_chunk")
	}
	if c.Randomness == nil {
		missing = append(missing, "randomness")
	}
	if len(c.MerkleProof) == 0 {
		missing = append(missing, "merkle_proof")
	}
	if isEmpty(c.MerkleRoot) {
		missing = append(missing, "merkle_root")
	}
	if err := incomplete(KindChallenge, missing, "missing"); err != nil {
		return err
	}

	for _, n := range c.MerkleProof {
		if _, _, ok := n.Sibling(); !ok {
			return &FieldError{Kind: KindChallenge, Field: "merkle_proof",
				Reason: "node must set exactly one of left, right", Err: ErrIncompleteProof}
		}
	}
	if c.ChunkSize == 0 || uint64(len(c.DataChunk)) > c.ChunkSize {
		return &FieldError{Kind: KindChallenge, Field: "data_chunk",
			Reason: "outside chunk_size", Err: ErrIncompleteProof}
	}
	return nil
}

// VerifyChallenge runs [CheckChallengeResponse] and only then hands the
// response to the verifiers. their errors come back unchanged.
// a nil verifier is [ErrNoVerifier].
func VerifyChallenge(c *Challenge, cv CommitmentVerifier, mv MerkleVerifier) error {
	if cv == nil || mv == nil {
		return ErrNoVerifier
	}
	if err := CheckChallengeResponse(c); err != nil {
		return err
	}
	if err := cv.VerifyCommitment(c); err != nil {
		return err
	}
	return mv.VerifyMerkle(c.DataChunk, c.MerkleProof, *c.MerkleRoot)
}

// CheckRetrieve checks a retrieve response against the seed the data was
// last committed under: the returned commitment hash must equal
// Hash(Hash(data || prevSeed) || r.Seed).
// missing data or hash is [ErrIncompleteProof]; a wrong hash is
// [ErrProofInvalid].
func CheckRetrieve(r *Retrieve, prevSeed Seed) error {
	var missing []string
	if r.Data == nil {
		missing = append(missing, "data")
	}
	if isEmpty(r.CommitmentHash) {
		missing = append(missing, "commitment_hash")
	}
	if err := incomplete(KindRetrieve, missing, "missing"); err != nil {
		return err
	}
	want := hashchain.CommitHex([]byte(*r.Data), prevSeed.Bytes(), r.Seed.Bytes())
	if !strings.EqualFold(want, *r.CommitmentHash) {
		return xerrors.Errorf("%s.commitment_hash: %w", KindRetrieve, ErrProofInvalid)
	}
	return nil
}

func isEmpty(s *string) bool {
	return s == nil || *s == ""
}

func incomplete(k Kind, missing []string, reason string) error {
	if len(missing) == 0 {
		return nil
	}
	return &FieldError{Kind: k, Field: strings.Join(missing, ","),
		Reason: reason, Err: ErrIncompleteProof}
}
