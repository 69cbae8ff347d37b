package protocol

import (
	"encoding/hex"
	"strings"

	"github.com/goose-lang/std"
	"github.com/storetao/protocol/cryptoffi"
	"github.com/storetao/protocol/logging"
	"github.com/storetao/protocol/marshalutil"
	"golang.org/x/xerrors"
)

// hashDomain prefixes every canonical body encoding.
const hashDomain = "storetao/body-hash/v1"

var logger = logging.New("protocol")

// ComputeHash returns the hex integrity digest of m.
//
// the digest covers, in the kind's declared hash-field order, each field's
// name, a presence tag and its canonical bytes, all length-framed with
// [marshalutil]. unset optional fields hash as absent rather than being
// skipped, so stripping a field changes the digest.
// a required hash field that is unset fails with [ErrMalformedMessage].
func ComputeHash(m Message) (string, error) {
	return hashOver(m, registry[m.Kind()].hashFields)
}

func hashOver(m Message, names []string) (string, error) {
	b, err := canonicalBody(m, names)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(cryptoffi.Hash(b)), nil
}

func canonicalBody(m Message, names []string) ([]byte, error) {
	k := m.Kind()
	s := registry[k]
	vals := m.values()

	b := make([]byte, 0, 256)
	b = marshalutil.WriteString(b, hashDomain)
	b = marshalutil.WriteString(b, k.String())
	for _, name := range names {
		i, ok := s.index[name]
		if !ok {
			return nil, &FieldError{Kind: k, Field: name,
				Reason: "undeclared hash field", Err: ErrMalformedMessage}
		}
		v := vals[i]
		b = marshalutil.WriteString(b, name)
		if !v.set {
			if s.fields[i].Required {
				return nil, &FieldError{Kind: k, Field: name,
					Reason: "required hash field unset", Err: ErrMalformedMessage}
			}
			b = marshalutil.WriteByte(b, marshalutil.TagAbsent)
			continue
		}
		b = marshalutil.WriteByte(b, marshalutil.TagPresent)
		b = marshalutil.WriteSlice1D(b, v.canon)
	}
	return b, nil
}

// Verify recomputes m's digest and compares it with claimed.
// a mismatch is false with a nil error; only a malformed m errors.
func Verify(m Message, claimed string) (bool, error) {
	got, err := ComputeHash(m)
	if err != nil {
		return false, err
	}
	claimedB, err := hex.DecodeString(strings.ToLower(claimed))
	if err != nil {
		logger.Debug().Str("kind", m.Kind().String()).Msg("claimed digest is not hex")
		return false, nil
	}
	gotB, _ := hex.DecodeString(got)
	if !std.BytesEqual(gotB, claimedB) {
		logger.Debug().
			Str("kind", m.Kind().String()).
			Str("msg", Format(m, true)).
			Str("claimed", claimed).
			Str("computed", got).
			Msg("integrity hash mismatch")
		return false, nil
	}
	return true, nil
}

// CheckHash is [Verify] for callers that want an error:
// a mismatch is [ErrHashMismatch].
func CheckHash(m Message, claimed string) error {
	ok, err := Verify(m, claimed)
	if err != nil {
		return err
	}
	if !ok {
		return xerrors.Errorf("%s: %w", m.Kind(), ErrHashMismatch)
	}
	return nil
}

// Seal validates m and stores its digest in the header.
// any later change to a hash field makes [VerifySealed] fail.
func Seal(m Message) error {
	if err := m.Validate(); err != nil {
		return err
	}
	h, err := ComputeHash(m)
	if err != nil {
		return err
	}
	m.header().BodyHash = h
	return nil
}

// VerifySealed checks m against the digest stored by [Seal].
// an unsealed message is false.
func VerifySealed(m Message) (bool, error) {
	h := m.header().BodyHash
	if h == "" {
		return false, nil
	}
	return Verify(m, h)
}
