package protocol

import (
	"encoding/hex"
	"strconv"
)

// Seed is the nonce of a commitment. its three accepted source encodings
// (text, integer, raw bytes) are collapsed into one canonical text form
// here, at the boundary: text as-is, integers in base 10, bytes in
// lower-case hex. everything downstream only sees the canonical form.
type Seed struct {
	text string
}

func SeedFromString(s string) Seed {
	return Seed{text: s}
}

func SeedFromInt(n uint64) Seed {
	return Seed{text: strconv.FormatUint(n, 10)}
}

func SeedFromBytes(b []byte) Seed {
	return Seed{text: hex.EncodeToString(b)}
}

// ParseSeed accepts a string, any Go integer or a byte slice.
// negative integers and other types are rejected.
func ParseSeed(v any) (Seed, error) {
	switch x := v.(type) {
	case Seed:
		return x, nil
	case string:
		return SeedFromString(x), nil
	case []byte:
		return SeedFromBytes(x), nil
	case uint:
		return SeedFromInt(uint64(x)), nil
	case uint8:
		return SeedFromInt(uint64(x)), nil
	case uint16:
		return SeedFromInt(uint64(x)), nil
	case uint32:
		return SeedFromInt(uint64(x)), nil
	case uint64:
		return SeedFromInt(x), nil
	case int:
		return seedFromSigned(int64(x))
	case int8:
		return seedFromSigned(int64(x))
	case int16:
		return seedFromSigned(int64(x))
	case int32:
		return seedFromSigned(int64(x))
	case int64:
		return seedFromSigned(x)
	default:
		return Seed{}, &FieldError{Field: "seed",
			Reason: "unsupported seed encoding", Err: ErrValidation}
	}
}

func seedFromSigned(n int64) (Seed, error) {
	if n < 0 {
		return Seed{}, &FieldError{Field: "seed",
			Reason: "negative integer seed", Err: ErrValidation}
	}
	return SeedFromInt(uint64(n)), nil
}

func (s Seed) String() string {
	return s.text
}

// Bytes is the canonical byte form fed to hashes.
func (s Seed) Bytes() []byte {
	return []byte(s.text)
}

func (s Seed) IsZero() bool {
	return s.text == ""
}
