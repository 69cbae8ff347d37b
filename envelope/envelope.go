// Package envelope holds the transport-time identity of the two peers of an
// exchange and signs a message's body hash on their behalf.
// nothing here is part of a message's integrity hash.
package envelope

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/storetao/protocol/cryptoffi"
	"github.com/storetao/protocol/logging"
	"golang.org/x/xerrors"
)

var (
	ErrNoEnvelope   = xerrors.New("envelope: missing terminal info")
	ErrNoSignature  = xerrors.New("envelope: missing signature")
	ErrBadSignature = xerrors.New("envelope: signature does not verify")
)

var logger = logging.New("envelope")

// TerminalInfo describes one end of an exchange: the calling peer
// (origin) or the serving peer (destination). zero values are unset.
type TerminalInfo struct {
	StatusCode    uint64
	StatusMessage string
	IP            string
	Port          uint64
	Version       uint64
	Nonce         uint64
	UUID          string
	Hotkey        string
	Signature     []byte
}

// IsZero reports whether no field is set. nil is zero.
func (t *TerminalInfo) IsZero() bool {
	if t == nil {
		return true
	}
	return t.StatusCode == 0 && t.StatusMessage == "" && t.IP == "" &&
		t.Port == 0 && t.Version == 0 && t.Nonce == 0 && t.UUID == "" &&
		t.Hotkey == "" && len(t.Signature) == 0
}

// Clone returns a deep copy.
func (t *TerminalInfo) Clone() *TerminalInfo {
	if t == nil {
		return nil
	}
	c := *t
	if t.Signature != nil {
		c.Signature = append([]byte{}, t.Signature...)
	}
	return &c
}

// String lists the set fields, in declaration order.
func (t *TerminalInfo) String() string {
	if t == nil {
		return "{}"
	}
	var parts []string
	add := func(k, v string) {
		parts = append(parts, k+": "+v)
	}
	if t.StatusCode != 0 {
		add("status_code", strconv.FormatUint(t.StatusCode, 10))
	}
	if t.StatusMessage != "" {
		add("status_message", strconv.Quote(t.StatusMessage))
	}
	if t.IP != "" {
		add("ip", strconv.Quote(t.IP))
	}
	if t.Port != 0 {
		add("port", strconv.FormatUint(t.Port, 10))
	}
	if t.Version != 0 {
		add("version", strconv.FormatUint(t.Version, 10))
	}
	if t.Nonce != 0 {
		add("nonce", strconv.FormatUint(t.Nonce, 10))
	}
	if t.UUID != "" {
		add("uuid", strconv.Quote(t.UUID))
	}
	if t.Hotkey != "" {
		add("hotkey", strconv.Quote(t.Hotkey))
	}
	if len(t.Signature) != 0 {
		add("signature", fmt.Sprintf("%x", t.Signature))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SigningPayload is what the origin signs:
// "nonce.originHotkey.destinationHotkey.originUUID.bodyHash".
func SigningPayload(origin, dest *TerminalInfo, bodyHash string) []byte {
	return []byte(fmt.Sprintf("%d.%s.%s.%s.%s",
		origin.Nonce, origin.Hotkey, dest.Hotkey, origin.UUID, bodyHash))
}

// Sign sets origin.Signature over bodyHash.
func Sign(sk *cryptoffi.SigPrivateKey, origin, dest *TerminalInfo, bodyHash string) error {
	if origin == nil || dest == nil {
		return ErrNoEnvelope
	}
	sig, err := sk.Sign(SigningPayload(origin, dest, bodyHash))
	if err != nil {
		return xerrors.Errorf("envelope sign: %w", err)
	}
	origin.Signature = sig
	return nil
}

// Verify checks origin.Signature over bodyHash.
func Verify(pk *cryptoffi.SigPublicKey, origin, dest *TerminalInfo, bodyHash string) error {
	if origin == nil || dest == nil {
		return ErrNoEnvelope
	}
	if len(origin.Signature) == 0 {
		return ErrNoSignature
	}
	if !pk.Verify(SigningPayload(origin, dest, bodyHash), origin.Signature) {
		logger.Debug().
			Str("origin", origin.Hotkey).
			Str("destination", dest.Hotkey).
			Uint64("nonce", origin.Nonce).
			Msg("rejected envelope signature")
		return ErrBadSignature
	}
	return nil
}
