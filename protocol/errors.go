package protocol

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	// ErrValidation: a field is missing or fails its type constraint
	// at construction or decode time.
	ErrValidation = xerrors.New("validation failed")
	// ErrMalformedMessage: a required hash field is unset at hash time.
	ErrMalformedMessage = xerrors.New("malformed message")
	// ErrIncompleteProof: a proof doesn't have the shape needed
	// to attempt cryptographic verification. retrying may help.
	ErrIncompleteProof = xerrors.New("incomplete proof")
	// ErrProofInvalid is reported by commitment and Merkle verifiers.
	// the proof was complete and it is wrong.
	ErrProofInvalid = xerrors.New("proof invalid")
	// ErrHashMismatch: the integrity hash doesn't match the body.
	// this points at transport corruption, not at the storage proof.
	ErrHashMismatch = xerrors.New("integrity hash mismatch")
	// ErrNoVerifier: a verification was asked for without a verifier.
	ErrNoVerifier = xerrors.New("no verifier")
)

// FieldError locates a failure on a message field.
// it unwraps to one of the sentinel errors above.
type FieldError struct {
	Kind   Kind
	Field  string
	Reason string
	Err    error
}

func (e *FieldError) Error() string {
	if !e.Kind.Valid() {
		return fmt.Sprintf("%s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s: %v", e.Kind, e.Field, e.Reason, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func validationErr(k Kind, field, reason string) error {
	return &FieldError{Kind: k, Field: field, Reason: reason, Err: ErrValidation}
}
