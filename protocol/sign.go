package protocol

import (
	"github.com/storetao/protocol/cryptoffi"
	"github.com/storetao/protocol/envelope"
	"golang.org/x/xerrors"
)

// SignRequest seals m and signs its body hash as m's origin.
// both origin and destination must be set.
func SignRequest(m Message, sk *cryptoffi.SigPrivateKey) error {
	h := m.header()
	if h.Origin == nil || h.Destination == nil {
		return envelope.ErrNoEnvelope
	}
	if err := Seal(m); err != nil {
		return err
	}
	return envelope.Sign(sk, h.Origin, h.Destination, h.BodyHash)
}

// VerifyRequest is the receive-side gate: the body must match the sealed
// hash ([ErrHashMismatch] otherwise), and the origin's signature must
// cover that hash.
func VerifyRequest(m Message, pk *cryptoffi.SigPublicKey) error {
	h := m.header()
	ok, err := VerifySealed(m)
	if err != nil {
		return err
	}
	if !ok {
		return xerrors.Errorf("%s: %w", m.Kind(), ErrHashMismatch)
	}
	return envelope.Verify(pk, h.Origin, h.Destination, h.BodyHash)
}
