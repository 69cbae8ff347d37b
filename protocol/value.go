package protocol

import (
	"encoding/hex"
	"math/big"
	"strconv"

	"github.com/storetao/protocol/marshalutil"
	"github.com/tchajed/marshal"
)

// value is the type-erased view of one field that both the hasher and the
// formatter read. canon is only meaningful when set.
type value struct {
	set bool
	// def is true when the field holds its declared default.
	def   bool
	canon []byte
	repr  string
	quote bool
}

func reqString(s string) value {
	return value{set: s != "", canon: []byte(s), repr: s, quote: true}
}

func optString(p *string) value {
	if p == nil {
		return value{def: true, repr: "nil"}
	}
	return value{set: true, canon: []byte(*p), repr: *p, quote: true}
}

func reqUint(n uint64) value {
	return value{set: true, canon: marshal.WriteInt(nil, n), repr: strconv.FormatUint(n, 10)}
}

func optUint(p *uint64) value {
	if p == nil {
		return value{def: true, repr: "nil"}
	}
	return reqUint(*p)
}

func optBigInt(n *big.Int) value {
	if n == nil {
		return value{def: true, repr: "nil"}
	}
	// sign byte first, so -n and n differ.
	canon := append([]byte{byte(n.Sign() + 1)}, n.Bytes()...)
	return value{set: true, canon: canon, repr: n.String()}
}

func optBytes(b []byte) value {
	if b == nil {
		return value{def: true, repr: "nil"}
	}
	return value{set: true, canon: b, repr: hex.EncodeToString(b), quote: true}
}

func reqSeed(s Seed) value {
	return value{set: !s.IsZero(), canon: s.Bytes(), repr: s.String(), quote: true}
}

func optMerkleProof(p MerkleProof) value {
	if p == nil {
		return value{def: true, repr: "nil"}
	}
	return value{set: true, canon: MerkleProofEncode(nil, p), repr: p.String()}
}

func boolWithDefault(b, def bool) value {
	return value{set: true, def: b == def, canon: marshalutil.WriteBool(nil, b),
		repr: strconv.FormatBool(b)}
}
