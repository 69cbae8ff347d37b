package protocol

import (
	"math/big"

	"github.com/storetao/protocol/envelope"
	"github.com/storetao/protocol/marshalutil"
	"github.com/tchajed/marshal"
	"golang.org/x/xerrors"
)

// Encode serializes m, header included, behind a kind byte.
// the layout is only used to move messages between processes;
// the integrity hash never reads it.
func Encode(m Message) []byte {
	b := make([]byte, 0, 256)
	b = marshalutil.WriteByte(b, byte(m.Kind()))
	b = HeaderEncode(b, m.header())
	switch o := m.(type) {
	case *Store:
		b = StoreEncode(b, o)
	case *StoreUser:
		b = StoreUserEncode(b, o)
	case *Challenge:
		b = ChallengeEncode(b, o)
	case *Retrieve:
		b = RetrieveEncode(b, o)
	case *RetrieveUser:
		b = RetrieveUserEncode(b, o)
	case *DeleteUser:
		b = DeleteUserEncode(b, o)
	}
	return b
}

// Decode reverses [Encode] and validates the result.
// bad bytes and invalid messages are [ErrValidation].
func Decode(b0 []byte) (Message, error) {
	kb, b1, err1 := marshalutil.ReadByte(b0)
	if err1 {
		return nil, xerrors.Errorf("decode kind: %w", ErrValidation)
	}
	k := Kind(kb)
	if !k.Valid() {
		return nil, xerrors.Errorf("decode: unknown %s: %w", k, ErrValidation)
	}
	hdr, b2, err2 := HeaderDecode(b1)
	if err2 {
		return nil, xerrors.Errorf("decode %s header: %w", k, ErrValidation)
	}

	var m Message
	var b3 []byte
	var err3 bool
	switch k {
	case KindStore:
		var o *Store
		o, b3, err3 = StoreDecode(b2)
		if !err3 {
			o.Header = *hdr
			m = o
		}
	case KindStoreUser:
		var o *StoreUser
		o, b3, err3 = StoreUserDecode(b2)
		if !err3 {
			o.Header = *hdr
			m = o
		}
	case KindChallenge:
		var o *Challenge
		o, b3, err3 = ChallengeDecode(b2)
		if !err3 {
			o.Header = *hdr
			m = o
		}
	case KindRetrieve:
		var o *Retrieve
		o, b3, err3 = RetrieveDecode(b2)
		if !err3 {
			o.Header = *hdr
			m = o
		}
	case KindRetrieveUser:
		var o *RetrieveUser
		o, b3, err3 = RetrieveUserDecode(b2)
		if !err3 {
			o.Header = *hdr
			m = o
		}
	case KindDeleteUser:
		var o *DeleteUser
		o, b3, err3 = DeleteUserDecode(b2)
		if !err3 {
			o.Header = *hdr
			m = o
		}
	}
	if err3 {
		return nil, xerrors.Errorf("decode %s body: %w", k, ErrValidation)
	}
	if len(b3) != 0 {
		return nil, xerrors.Errorf("decode %s: trailing bytes: %w", k, ErrValidation)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func HeaderEncode(b0 []byte, o *Header) []byte {
	var b = b0
	b = envelope.OptTerminalInfoEncode(b, o.Origin)
	b = envelope.OptTerminalInfoEncode(b, o.Destination)
	b = marshalutil.WriteString(b, o.BodyHash)
	return b
}

func HeaderDecode(b0 []byte) (*Header, []byte, bool) {
	a1, b1, err1 := envelope.OptTerminalInfoDecode(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := envelope.OptTerminalInfoDecode(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadString(b2)
	if err3 {
		return nil, nil, true
	}
	return &Header{Origin: a1, Destination: a2, BodyHash: a3}, b3, false
}

func StoreEncode(b0 []byte, o *Store) []byte {
	var b = b0
	b = marshalutil.WriteString(b, o.EncryptedData)
	b = marshalutil.WriteString(b, o.Curve)
	b = marshalutil.WriteString(b, o.G)
	b = marshalutil.WriteString(b, o.H)
	b = marshalutil.WriteString(b, o.Seed.String())
	b = writeOptBigInt(b, o.Randomness)
	b = marshalutil.WriteOptString(b, o.Commitment)
	b = marshalutil.WriteOptSlice1D(b, o.Signature)
	b = marshalutil.WriteOptString(b, o.CommitmentHash)
	b = marshalutil.WriteOptInt(b, o.TTL)
	return b
}

func StoreDecode(b0 []byte) (*Store, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadString(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := marshalutil.ReadString(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadString(b2)
	if err3 {
		return nil, nil, true
	}
	a4, b4, err4 := marshalutil.ReadString(b3)
	if err4 {
		return nil, nil, true
	}
	a5, b5, err5 := marshalutil.ReadString(b4)
	if err5 {
		return nil, nil, true
	}
	a6, b6, err6 := readOptBigInt(b5)
	if err6 {
		return nil, nil, true
	}
	a7, b7, err7 := marshalutil.ReadOptString(b6)
	if err7 {
		return nil, nil, true
	}
	a8, b8, err8 := marshalutil.ReadOptSlice1D(b7)
	if err8 {
		return nil, nil, true
	}
	a9, b9, err9 := marshalutil.ReadOptString(b8)
	if err9 {
		return nil, nil, true
	}
	a10, b10, err10 := marshalutil.ReadOptInt(b9)
	if err10 {
		return nil, nil, true
	}
	return &Store{EncryptedData: a1, Curve: a2, G: a3, H: a4, Seed: SeedFromString(a5),
		Randomness: a6, Commitment: a7, Signature: a8, CommitmentHash: a9, TTL: a10}, b10, false
}

func StoreUserEncode(b0 []byte, o *StoreUser) []byte {
	var b = b0
	b = marshalutil.WriteString(b, o.EncryptedData)
	b = marshalutil.WriteString(b, o.EncryptionPayload)
	b = marshalutil.WriteOptString(b, o.DataHash)
	b = marshalutil.WriteOptInt(b, o.TTL)
	return b
}

func StoreUserDecode(b0 []byte) (*StoreUser, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadString(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := marshalutil.ReadString(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadOptString(b2)
	if err3 {
		return nil, nil, true
	}
	a4, b4, err4 := marshalutil.ReadOptInt(b3)
	if err4 {
		return nil, nil, true
	}
	return &StoreUser{EncryptedData: a1, EncryptionPayload: a2, DataHash: a3, TTL: a4}, b4, false
}

func ChallengeEncode(b0 []byte, o *Challenge) []byte {
	var b = b0
	b = marshalutil.WriteString(b, o.ChallengeHash)
	b = marshal.WriteInt(b, o.ChallengeIndex)
	b = marshal.WriteInt(b, o.ChunkSize)
	b = marshalutil.WriteString(b, o.G)
	b = marshalutil.WriteString(b, o.H)
	b = marshalutil.WriteString(b, o.Curve)
	b = marshalutil.WriteString(b, o.Seed.String())
	b = marshalutil.WriteOptString(b, o.CommitmentHash)
	b = marshalutil.WriteOptString(b, o.CommitmentProof)
	b = marshalutil.WriteOptString(b, o.Commitment)
	b = marshalutil.WriteOptSlice1D(b, o.DataChunk)
	b = writeOptBigInt(b, o.Randomness)
	b = writeOptMerkleProof(b, o.MerkleProof)
	b = marshalutil.WriteOptString(b, o.MerkleRoot)
	return b
}

func ChallengeDecode(b0 []byte) (*Challenge, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadString(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := marshalutil.ReadInt(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadInt(b2)
	if err3 {
		return nil, nil, true
	}
	a4, b4, err4 := marshalutil.ReadString(b3)
	if err4 {
		return nil, nil, true
	}
	a5, b5, err5 := marshalutil.ReadString(b4)
	if err5 {
		return nil, nil, true
	}
	a6, b6, err6 := marshalutil.ReadString(b5)
	if err6 {
		return nil, nil, true
	}
	a7, b7, err7 := marshalutil.ReadString(b6)
	if err7 {
		return nil, nil, true
	}
	a8, b8, err8 := marshalutil.ReadOptString(b7)
	if err8 {
		return nil, nil, true
	}
	a9, b9, err9 := marshalutil.ReadOptString(b8)
	if err9 {
		return nil, nil, true
	}
	a10, b10, err10 := marshalutil.ReadOptString(b9)
	if err10 {
		return nil, nil, true
	}
	a11, b11, err11 := marshalutil.ReadOptSlice1D(b10)
	if err11 {
		return nil, nil, true
	}
	a12, b12, err12 := readOptBigInt(b11)
	if err12 {
		return nil, nil, true
	}
	a13, b13, err13 := readOptMerkleProof(b12)
	if err13 {
		return nil, nil, true
	}
	a14, b14, err14 := marshalutil.ReadOptString(b13)
	if err14 {
		return nil, nil, true
	}
	return &Challenge{ChallengeHash: a1, ChallengeIndex: a2, ChunkSize: a3,
		G: a4, H: a5, Curve: a6, Seed: SeedFromString(a7),
		CommitmentHash: a8, CommitmentProof: a9, Commitment: a10, DataChunk: a11,
		Randomness: a12, MerkleProof: a13, MerkleRoot: a14}, b14, false
}

func RetrieveEncode(b0 []byte, o *Retrieve) []byte {
	var b = b0
	b = marshalutil.WriteString(b, o.DataHash)
	b = marshalutil.WriteString(b, o.Seed.String())
	b = marshalutil.WriteOptString(b, o.Data)
	b = marshalutil.WriteOptString(b, o.CommitmentHash)
	b = marshalutil.WriteOptString(b, o.CommitmentProof)
	return b
}

func RetrieveDecode(b0 []byte) (*Retrieve, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadString(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := marshalutil.ReadString(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadOptString(b2)
	if err3 {
		return nil, nil, true
	}
	a4, b4, err4 := marshalutil.ReadOptString(b3)
	if err4 {
		return nil, nil, true
	}
	a5, b5, err5 := marshalutil.ReadOptString(b4)
	if err5 {
		return nil, nil, true
	}
	return &Retrieve{DataHash: a1, Seed: SeedFromString(a2), Data: a3,
		CommitmentHash: a4, CommitmentProof: a5}, b5, false
}

func RetrieveUserEncode(b0 []byte, o *RetrieveUser) []byte {
	var b = b0
	b = marshalutil.WriteString(b, o.DataHash)
	b = marshalutil.WriteOptString(b, o.EncryptedData)
	b = marshalutil.WriteOptString(b, o.EncryptionPayload)
	return b
}

func RetrieveUserDecode(b0 []byte) (*RetrieveUser, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadString(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := marshalutil.ReadOptString(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadOptString(b2)
	if err3 {
		return nil, nil, true
	}
	return &RetrieveUser{DataHash: a1, EncryptedData: a2, EncryptionPayload: a3}, b3, false
}

func DeleteUserEncode(b0 []byte, o *DeleteUser) []byte {
	var b = b0
	b = marshalutil.WriteString(b, o.DataHash)
	b = marshalutil.WriteString(b, o.EncryptionPayload)
	b = marshalutil.WriteBool(b, o.Deleted)
	return b
}

func DeleteUserDecode(b0 []byte) (*DeleteUser, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadString(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := marshalutil.ReadString(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadBool(b2)
	if err3 {
		return nil, nil, true
	}
	return &DeleteUser{DataHash: a1, EncryptionPayload: a2, Deleted: a3}, b3, false
}

// writeOptBigInt encodes the magnitude. callers validate the sign.
func writeOptBigInt(b0 []byte, n *big.Int) []byte {
	if n == nil {
		return marshalutil.WriteOptSlice1D(b0, nil)
	}
	return marshalutil.WriteOptSlice1D(b0, n.Bytes())
}

func readOptBigInt(b0 []byte) (*big.Int, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadOptSlice1D(b0)
	if err1 {
		return nil, nil, true
	}
	if a1 == nil {
		return nil, b1, false
	}
	return new(big.Int).SetBytes(a1), b1, false
}

func writeOptMerkleProof(b0 []byte, p MerkleProof) []byte {
	if p == nil {
		return marshalutil.WriteByte(b0, marshalutil.TagAbsent)
	}
	b := marshalutil.WriteByte(b0, marshalutil.TagPresent)
	return MerkleProofEncode(b, p)
}

func readOptMerkleProof(b0 []byte) (MerkleProof, []byte, bool) {
	tag, b1, err1 := marshalutil.ReadByte(b0)
	if err1 {
		return nil, nil, true
	}
	switch tag {
	case marshalutil.TagAbsent:
		return nil, b1, false
	case marshalutil.TagPresent:
		return MerkleProofDecode(b1)
	default:
		return nil, nil, true
	}
}
