package protocol

import (
	"math/big"

	"github.com/storetao/protocol/envelope"
)

func ptr[T any](v T) *T {
	return &v
}

func fullStore() *Store {
	return &Store{
		Header: Header{
			Origin:      &envelope.TerminalInfo{IP: "10.0.0.1", Hotkey: "client", Nonce: 1},
			Destination: &envelope.TerminalInfo{IP: "10.0.0.2", Hotkey: "provider"},
		},
		EncryptedData:  "ZW5jcnlwdGVk",
		Curve:          "P-256",
		G:              "04a1",
		H:              "04b2",
		Seed:           SeedFromString("seed"),
		Randomness:     big.NewInt(987654321),
		Commitment:     ptr("04c3"),
		Signature:      []byte{1, 2, 3},
		CommitmentHash: ptr("d00d"),
		TTL:            ptr(uint64(3600)),
	}
}

func fullStoreUser() *StoreUser {
	return &StoreUser{
		EncryptedData:     "ZW5jcnlwdGVk",
		EncryptionPayload: `{"nonce":"aa"}`,
		DataHash:          ptr("bafy"),
		TTL:               ptr(uint64(60)),
	}
}

func fullChallenge() *Challenge {
	return &Challenge{
		ChallengeHash:   "beef",
		ChallengeIndex:  3,
		ChunkSize:       16,
		G:               "04a1",
		H:               "04b2",
		Curve:           "P-256",
		Seed:            SeedFromInt(42),
		CommitmentHash:  ptr("c0ffee"),
		CommitmentProof: ptr("proof"),
		Commitment:      ptr("04c3"),
		DataChunk:       []byte("chunk"),
		Randomness:      big.NewInt(1234),
		MerkleProof:     MerkleProof{{Left: "aa"}, {Right: "bb"}},
		MerkleRoot:      ptr("cc"),
	}
}

func fullRetrieve() *Retrieve {
	return &Retrieve{
		DataHash:        "bafy",
		Seed:            SeedFromBytes([]byte{0xab, 0xcd}),
		Data:            ptr("ZGF0YQ=="),
		CommitmentHash:  ptr("c0ffee"),
		CommitmentProof: ptr("proof"),
	}
}

func fullRetrieveUser() *RetrieveUser {
	return &RetrieveUser{
		DataHash:          "bafy",
		EncryptedData:     ptr("ZW5j"),
		EncryptionPayload: ptr("{}"),
	}
}

func fullDeleteUser() *DeleteUser {
	return &DeleteUser{DataHash: "bafy", EncryptionPayload: "{}", Deleted: true}
}

func fullMessages() []Message {
	return []Message{fullStore(), fullStoreUser(), fullChallenge(),
		fullRetrieve(), fullRetrieveUser(), fullDeleteUser()}
}

// mutate changes the named field of a fully populated message
// to a different valid value.
func mutate(m Message, field string) {
	incBig := func(n *big.Int) *big.Int { return new(big.Int).Add(n, big.NewInt(1)) }
	app := func(p *string) *string { return ptr(*p + "x") }
	switch o := m.(type) {
	case *Store:
		switch field {
		case "encrypted_data":
			o.EncryptedData += "x"
		case "curve":
			o.Curve += "x"
		case "g":
			o.G += "x"
		case "h":
			o.H += "x"
		case "seed":
			o.Seed = SeedFromString(o.Seed.String() + "x")
		case "randomness":
			o.Randomness = incBig(o.Randomness)
		case "commitment":
			o.Commitment = app(o.Commitment)
		case "signature":
			o.Signature = append(append([]byte{}, o.Signature...), 4)
		case "commitment_hash":
			o.CommitmentHash = app(o.CommitmentHash)
		case "ttl":
			o.TTL = ptr(*o.TTL + 1)
		default:
			panic(field)
		}
	case *StoreUser:
		switch field {
		case "encrypted_data":
			o.EncryptedData += "x"
		case "encryption_payload":
			o.EncryptionPayload += "x"
		case "data_hash":
			o.DataHash = app(o.DataHash)
		case "ttl":
			o.TTL = ptr(*o.TTL + 1)
		default:
			panic(field)
		}
	case *Challenge:
		switch field {
		case "challenge_hash":
			o.ChallengeHash += "x"
		case "challenge_index":
			o.ChallengeIndex++
		case "chunk_size":
			o.ChunkSize++
		case "g":
			o.G += "x"
		case "h":
			o.H += "x"
		case "curve":
			o.Curve += "x"
		case "seed":
			o.Seed = SeedFromString(o.Seed.String() + "x")
		case "commitment_hash":
			o.CommitmentHash = app(o.CommitmentHash)
		case "commitment_proof":
			o.CommitmentProof = app(o.CommitmentProof)
		case "commitment":
			o.Commitment = app(o.Commitment)
		case "data_chunk":
			o.DataChunk = append(append([]byte{}, o.DataChunk...), 'x')
		case "randomness":
			o.Randomness = incBig(o.Randomness)
		case "merkle_proof":
			o.MerkleProof = append(append(MerkleProof{}, o.MerkleProof...), MerkleNode{Left: "dd"})
		case "merkle_root":
			o.MerkleRoot = app(o.MerkleRoot)
		default:
			panic(field)
		}
	case *Retrieve:
		switch field {
		case "data_hash":
			o.DataHash += "x"
		case "seed":
			o.Seed = SeedFromString(o.Seed.String() + "x")
		case "data":
			o.Data = app(o.Data)
		case "commitment_hash":
			o.CommitmentHash = app(o.CommitmentHash)
		case "commitment_proof":
			o.CommitmentProof = app(o.CommitmentProof)
		default:
			panic(field)
		}
	case *RetrieveUser:
		switch field {
		case "data_hash":
			o.DataHash += "x"
		case "encrypted_data":
			o.EncryptedData = app(o.EncryptedData)
		case "encryption_payload":
			o.EncryptionPayload = app(o.EncryptionPayload)
		default:
			panic(field)
		}
	case *DeleteUser:
		switch field {
		case "data_hash":
			o.DataHash += "x"
		case "encryption_payload":
			o.EncryptionPayload += "x"
		case "deleted":
			o.Deleted = !o.Deleted
		default:
			panic(field)
		}
	}
}
