// Package protocol defines the store / challenge / retrieve / delete message
// family of the storage network, the per-kind integrity hash over each
// message body, and the structural contract of proof-of-storage responses.
//
// everything here is a pure function of its input. the schema registry is
// fixed at init and read-only after that, so messages can be hashed,
// verified and formatted from any goroutine without locks.
package protocol

import (
	"math/big"

	"github.com/storetao/protocol/envelope"
)

// Message is implemented by the six kinds in this package only.
type Message interface {
	Kind() Kind
	// Validate re-checks the construction constraints.
	Validate() error
	String() string

	header() *Header
	// values lines up with SchemaOf(Kind()).Fields().
	values() []value
}

// Header carries transport-time data. none of it is hashed.
type Header struct {
	// Origin is the calling peer.
	Origin *envelope.TerminalInfo
	// Destination is the serving peer.
	Destination *envelope.TerminalInfo
	// BodyHash is set by [Seal].
	BodyHash string
}

func (h *Header) header() *Header {
	return h
}

// HeaderOf exposes the header of any message.
func HeaderOf(m Message) *Header {
	return m.header()
}

// Store asks a provider to hold encrypted data and commit to it.
// the provider fills the response fields.
type Store struct {
	Header
	EncryptedData string
	Curve         string
	G             string
	H             string
	Seed          Seed

	Randomness     *big.Int
	Commitment     *string
	Signature      []byte
	CommitmentHash *string
	TTL            *uint64
}

func NewStore(encryptedData, curve, g, h string, seed Seed) (*Store, error) {
	m := &Store{EncryptedData: encryptedData, Curve: curve, G: g, H: h, Seed: seed}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (*Store) Kind() Kind {
	return KindStore
}

func (m *Store) Validate() error {
	if err := checkRequired(m); err != nil {
		return err
	}
	return checkRandomness(KindStore, m.Randomness)
}

func (m *Store) values() []value {
	return []value{
		reqString(m.EncryptedData),
		reqString(m.Curve),
		reqString(m.G),
		reqString(m.H),
		reqSeed(m.Seed),
		optBigInt(m.Randomness),
		optString(m.Commitment),
		optBytes(m.Signature),
		optString(m.CommitmentHash),
		optUint(m.TTL),
	}
}

func (m *Store) String() string {
	return Format(m, true)
}

// StoreUser is the client-facing store request.
type StoreUser struct {
	Header
	EncryptedData string
	// EncryptionPayload is the encrypted, serialized encryption params.
	EncryptionPayload string

	DataHash *string
	TTL      *uint64
}

func NewStoreUser(encryptedData, encryptionPayload string) (*StoreUser, error) {
	m := &StoreUser{EncryptedData: encryptedData, EncryptionPayload: encryptionPayload}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (*StoreUser) Kind() Kind {
	return KindStoreUser
}

func (m *StoreUser) Validate() error {
	return checkRequired(m)
}

func (m *StoreUser) values() []value {
	return []value{
		reqString(m.EncryptedData),
		reqString(m.EncryptionPayload),
		optString(m.DataHash),
		optUint(m.TTL),
	}
}

func (m *StoreUser) String() string {
	return Format(m, true)
}

// Challenge asks a provider to prove it still holds chunk ChallengeIndex
// of the data named by ChallengeHash. the provider fills the response
// fields.
type Challenge struct {
	Header
	ChallengeHash  string
	ChallengeIndex uint64
	ChunkSize      uint64
	G              string
	H              string
	Curve          string
	Seed           Seed

	CommitmentHash  *string
	CommitmentProof *string
	Commitment      *string
	DataChunk       []byte
	Randomness      *big.Int
	MerkleProof     MerkleProof
	MerkleRoot      *string
}

func NewChallenge(challengeHash string, challengeIndex, chunkSize uint64,
	g, h, curve string, seed Seed) (*Challenge, error) {
	m := &Challenge{ChallengeHash: challengeHash, ChallengeIndex: challengeIndex,
		ChunkSize: chunkSize, G: g, H: h, Curve: curve, Seed: seed}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (*Challenge) Kind() Kind {
	return KindChallenge
}

func (m *Challenge) Validate() error {
	if err := checkRequired(m); err != nil {
		return err
	}
	if m.ChunkSize == 0 {
		return validationErr(KindChallenge, "chunk_size", "must be positive")
	}
	if uint64(len(m.DataChunk)) > m.ChunkSize {
		return validationErr(KindChallenge, "data_chunk", "longer than chunk_size")
	}
	return checkRandomness(KindChallenge, m.Randomness)
}

func (m *Challenge) values() []value {
	return []value{
		reqString(m.ChallengeHash),
		reqUint(m.ChallengeIndex),
		reqUint(m.ChunkSize),
		reqString(m.G),
		reqString(m.H),
		reqString(m.Curve),
		reqSeed(m.Seed),
		optString(m.CommitmentHash),
		optString(m.CommitmentProof),
		optString(m.Commitment),
		optBytes(m.DataChunk),
		optBigInt(m.Randomness),
		optMerkleProof(m.MerkleProof),
		optString(m.MerkleRoot),
	}
}

func (m *Challenge) String() string {
	return Format(m, true)
}

// Retrieve looks data up by DataHash and asks the provider to re-commit
// to it under Seed.
type Retrieve struct {
	Header
	DataHash string
	Seed     Seed

	Data            *string
	CommitmentHash  *string
	CommitmentProof *string
}

func NewRetrieve(dataHash string, seed Seed) (*Retrieve, error) {
	m := &Retrieve{DataHash: dataHash, Seed: seed}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (*Retrieve) Kind() Kind {
	return KindRetrieve
}

func (m *Retrieve) Validate() error {
	return checkRequired(m)
}

func (m *Retrieve) values() []value {
	return []value{
		reqString(m.DataHash),
		reqSeed(m.Seed),
		optString(m.Data),
		optString(m.CommitmentHash),
		optString(m.CommitmentProof),
	}
}

func (m *Retrieve) String() string {
	return Format(m, true)
}

// RetrieveUser is the client-facing retrieve request.
type RetrieveUser struct {
	Header
	DataHash string

	EncryptedData     *string
	EncryptionPayload *string
}

func NewRetrieveUser(dataHash string) (*RetrieveUser, error) {
	m := &RetrieveUser{DataHash: dataHash}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (*RetrieveUser) Kind() Kind {
	return KindRetrieveUser
}

func (m *RetrieveUser) Validate() error {
	return checkRequired(m)
}

func (m *RetrieveUser) values() []value {
	return []value{
		reqString(m.DataHash),
		optString(m.EncryptedData),
		optString(m.EncryptionPayload),
	}
}

func (m *RetrieveUser) String() string {
	return Format(m, true)
}

// DeleteUser asks a provider to drop data. the provider sets Deleted.
type DeleteUser struct {
	Header
	DataHash          string
	EncryptionPayload string

	Deleted bool
}

func NewDeleteUser(dataHash, encryptionPayload string) (*DeleteUser, error) {
	m := &DeleteUser{DataHash: dataHash, EncryptionPayload: encryptionPayload}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func (*DeleteUser) Kind() Kind {
	return KindDeleteUser
}

func (m *DeleteUser) Validate() error {
	return checkRequired(m)
}

func (m *DeleteUser) values() []value {
	return []value{
		reqString(m.DataHash),
		reqString(m.EncryptionPayload),
		boolWithDefault(m.Deleted, false),
	}
}

func (m *DeleteUser) String() string {
	return Format(m, true)
}

func checkRequired(m Message) error {
	fields := registry[m.Kind()].fields
	for i, v := range m.values() {
		if fields[i].Required && !v.set {
			return validationErr(m.Kind(), fields[i].Name, "required")
		}
	}
	return nil
}

func checkRandomness(k Kind, n *big.Int) error {
	if n != nil && n.Sign() < 0 {
		return validationErr(k, "randomness", "must not be negative")
	}
	return nil
}
