package envelope

import (
	"testing"

	"github.com/storetao/protocol/cryptoffi"
	"github.com/stretchr/testify/require"
)

func newPeers() (*TerminalInfo, *TerminalInfo) {
	origin := &TerminalInfo{IP: "127.0.0.1", Port: 8091, Nonce: 7, UUID: "u-1", Hotkey: "client"}
	dest := &TerminalInfo{IP: "127.0.0.2", Port: 8092, Hotkey: "provider"}
	return origin, dest
}

func TestSignVerify(t *testing.T) {
	pk, sk, err := cryptoffi.SigGenerateKey()
	require.NoError(t, err)
	origin, dest := newPeers()
	body := cryptoffi.HashHex([]byte("body"))

	require.NoError(t, Sign(sk, origin, dest, body))
	require.NotEmpty(t, origin.Signature)
	require.NoError(t, Verify(pk, origin, dest, body))

	// different body hash.
	require.ErrorIs(t, Verify(pk, origin, dest, cryptoffi.HashHex([]byte("other"))), ErrBadSignature)

	// replayed to a different destination.
	dest2 := dest.Clone()
	dest2.Hotkey = "someone-else"
	require.ErrorIs(t, Verify(pk, origin, dest2, body), ErrBadSignature)

	// replayed with a different nonce.
	origin2 := origin.Clone()
	origin2.Nonce++
	require.ErrorIs(t, Verify(pk, origin2, dest, body), ErrBadSignature)
}

func TestVerifyMissing(t *testing.T) {
	pk, _, err := cryptoffi.SigGenerateKey()
	require.NoError(t, err)
	origin, dest := newPeers()
	require.ErrorIs(t, Verify(pk, origin, dest, "h"), ErrNoSignature)
	require.ErrorIs(t, Verify(pk, nil, dest, "h"), ErrNoEnvelope)
}

func TestSigningPayload(t *testing.T) {
	origin, dest := newPeers()
	require.Equal(t, "7.client.provider.u-1.abc", string(SigningPayload(origin, dest, "abc")))
}

func TestString(t *testing.T) {
	var nilInfo *TerminalInfo
	require.True(t, nilInfo.IsZero())
	require.Equal(t, "{}", nilInfo.String())
	require.True(t, (&TerminalInfo{}).IsZero())

	info := &TerminalInfo{IP: "127.0.0.1", Port: 8091}
	require.False(t, info.IsZero())
	require.Equal(t, `{ip: "127.0.0.1", port: 8091}`, info.String())
}

func TestTerminalInfoSerde(t *testing.T) {
	origin, _ := newPeers()
	origin.Signature = []byte{1, 2, 3}
	b := OptTerminalInfoEncode(nil, origin)
	got, rem, err := OptTerminalInfoDecode(b)
	require.False(t, err)
	require.Empty(t, rem)
	require.Equal(t, origin, got)

	b = OptTerminalInfoEncode(nil, nil)
	got, rem, err = OptTerminalInfoDecode(b)
	require.False(t, err)
	require.Empty(t, rem)
	require.Nil(t, got)

	_, _, err = OptTerminalInfoDecode([]byte{9})
	require.True(t, err)
}
