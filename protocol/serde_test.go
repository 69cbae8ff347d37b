package protocol

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSerdeRoundTrip(t *testing.T) {
	for _, m := range fullMessages() {
		require.NoError(t, Seal(m))
		m1, err := Decode(Encode(m))
		require.NoError(t, err, m.Kind())
		require.Equal(t, m.Kind(), m1.Kind())
		require.Equal(t, Format(m, false), Format(m1, false))
		require.Equal(t, HeaderOf(m).Origin, HeaderOf(m1).Origin)

		ok, err := VerifySealed(m1)
		require.NoError(t, err)
		require.True(t, ok, "%s: digest survives the wire", m.Kind())
	}
}

func TestSerdeMinimal(t *testing.T) {
	m, err := NewRetrieve("bafy", SeedFromInt(7))
	require.NoError(t, err)
	m1, err := Decode(Encode(m))
	require.NoError(t, err)
	r := m1.(*Retrieve)
	require.Nil(t, r.Data)
	require.Nil(t, r.Origin)
	require.Equal(t, "7", r.Seed.String())
}

func TestSerdePresentEmpty(t *testing.T) {
	m := fullChallenge()
	m.MerkleProof = MerkleProof{}
	m.Randomness = big.NewInt(0)
	m.MerkleRoot = ptr("")
	m1, err := Decode(Encode(m))
	require.NoError(t, err)
	c := m1.(*Challenge)
	require.NotNil(t, c.MerkleProof)
	require.Empty(t, c.MerkleProof)
	require.Equal(t, 0, c.Randomness.Sign())
	require.NotNil(t, c.MerkleRoot)

	h0, err := ComputeHash(m)
	require.NoError(t, err)
	h1, err := ComputeHash(c)
	require.NoError(t, err)
	require.Equal(t, h0, h1)
}

func TestDecodeRejects(t *testing.T) {
	b := Encode(fullStore())

	_, err := Decode(nil)
	require.ErrorIs(t, err, ErrValidation)

	for i := 0; i < len(b); i++ {
		_, err := Decode(b[:i])
		if err == nil {
			t.Fatal("decoded a prefix of length", i)
		}
	}

	_, err = Decode(append(b, 0))
	require.ErrorIs(t, err, ErrValidation)

	bad := append([]byte{}, b...)
	bad[0] = 0
	_, err = Decode(bad)
	require.ErrorIs(t, err, ErrValidation)
	bad[0] = 42
	_, err = Decode(bad)
	require.ErrorIs(t, err, ErrValidation)

	c := fullChallenge()
	c.ChunkSize = 2
	_, err = Decode(Encode(c))
	require.ErrorIs(t, err, ErrValidation, "chunk longer than chunk_size")
}

func TestMerkleProofDecodeBound(t *testing.T) {
	// claims a huge node count with no bytes behind it.
	b := MerkleProofEncode(nil, nil)
	b[7] = 0xff
	_, _, err := MerkleProofDecode(b)
	require.True(t, err)
}

func TestParseMerkleProof(t *testing.T) {
	want := MerkleProof{{Left: "aa"}, {Right: "bb"}}
	p, err := ParseMerkleProof(`[{"left":"aa"},{"right":"bb"}]`)
	require.NoError(t, err)
	require.Equal(t, want, p)

	p, err = ParseMerkleProof([]map[string]string{{"left": "aa"}, {"right": "bb"}})
	require.NoError(t, err)
	require.Equal(t, want, p)

	_, err = ParseMerkleProof([]map[string]string{{"up": "aa"}})
	require.ErrorIs(t, err, ErrValidation)
	_, err = ParseMerkleProof("{")
	require.ErrorIs(t, err, ErrValidation)
	_, err = ParseMerkleProof(3)
	require.ErrorIs(t, err, ErrValidation)

	_, _, ok := MerkleNode{Left: "a", Right: "b"}.Sibling()
	require.False(t, ok)
	_, _, ok = MerkleNode{}.Sibling()
	require.False(t, ok)
	h, left, ok := MerkleNode{Right: "b"}.Sibling()
	require.True(t, ok)
	require.False(t, left)
	require.Equal(t, "b", h)
}

func TestDecodeBoolByte(t *testing.T) {
	b := Encode(fullDeleteUser())
	m, err := Decode(b)
	require.NoError(t, err)
	require.True(t, m.(*DeleteUser).Deleted)

	// deleted is the last byte.
	b[len(b)-1] = 2
	_, err = Decode(b)
	require.ErrorIs(t, err, ErrValidation)
}
