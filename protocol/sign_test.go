package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/storetao/protocol/cryptoffi"
	"github.com/storetao/protocol/envelope"
)

func TestSignRequest(t *testing.T) {
	pk, sk, err := cryptoffi.SigGenerateKey()
	require.NoError(t, err)

	m := fullStore()
	require.NoError(t, SignRequest(m, sk))
	require.NotEmpty(t, m.Origin.Signature)
	require.NoError(t, VerifyRequest(m, pk))

	// the signature travels with the message.
	m1, err := Decode(Encode(m))
	require.NoError(t, err)
	require.NoError(t, VerifyRequest(m1, pk))

	otherPk, _, err := cryptoffi.SigGenerateKey()
	require.NoError(t, err)
	require.ErrorIs(t, VerifyRequest(m, otherPk), envelope.ErrBadSignature)
}

func TestVerifyRequestTampered(t *testing.T) {
	pk, sk, err := cryptoffi.SigGenerateKey()
	require.NoError(t, err)

	m := fullStore()
	require.NoError(t, SignRequest(m, sk))
	mutate(m, "seed")
	require.ErrorIs(t, VerifyRequest(m, pk), ErrHashMismatch)

	m = fullStore()
	require.NoError(t, SignRequest(m, sk))
	m.Destination.Hotkey = "impostor"
	require.ErrorIs(t, VerifyRequest(m, pk), envelope.ErrBadSignature)

	m = fullStore()
	require.NoError(t, SignRequest(m, sk))
	m.Origin.Signature = nil
	require.ErrorIs(t, VerifyRequest(m, pk), envelope.ErrNoSignature)
}

func TestSignRequestNeedsEnvelope(t *testing.T) {
	_, sk, err := cryptoffi.SigGenerateKey()
	require.NoError(t, err)
	m := fullRetrieve()
	require.ErrorIs(t, SignRequest(m, sk), envelope.ErrNoEnvelope)
	require.Empty(t, m.BodyHash, "rejected request is left unsealed")

	bad := fullStore()
	bad.G = ""
	require.ErrorIs(t, SignRequest(bad, sk), ErrValidation)
}
