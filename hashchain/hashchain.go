// Package hashchain commits to stored data under a sequence of seeds.
// each link is Hash(Hash(data || prevSeed) || seed), so a provider can
// re-commit to the same data under a fresh seed without revealing it,
// and a verifier that knows the previous seed can check the new link.
package hashchain

import (
	"bytes"
	"encoding/hex"

	"github.com/goose-lang/std"
	"github.com/storetao/protocol/cryptoffi"
)

// HashChain tracks the current seed and link for one data item.
// the previous link is only an input to the next one; it is never
// returned as a current proof.
type HashChain struct {
	data     []byte
	lastSeed []byte
	lastLink []byte
}

// New starts a chain whose first link binds data under seed.
// the empty previous seed is used for the first link.
func New(data, seed []byte) *HashChain {
	c := &HashChain{data: bytes.Clone(data)}
	c.lastLink = getNextLink(c.data, nil, seed)
	c.lastSeed = bytes.Clone(seed)
	return c
}

// Append re-commits under seed and returns the new link.
func (c *HashChain) Append(seed []byte) []byte {
	c.lastLink = getNextLink(c.data, c.lastSeed, seed)
	c.lastSeed = bytes.Clone(seed)
	return c.lastLink
}

// Seed returns the seed the current link was made with.
func (c *HashChain) Seed() []byte {
	return bytes.Clone(c.lastSeed)
}

// Link returns the current link.
func (c *HashChain) Link() []byte {
	return bytes.Clone(c.lastLink)
}

// Commit computes the link for data moving from prevSeed to seed.
func Commit(data, prevSeed, seed []byte) []byte {
	return getNextLink(data, prevSeed, seed)
}

// CommitHex is [Commit] in the hex form carried by commitment_hash fields.
func CommitHex(data, prevSeed, seed []byte) string {
	return hex.EncodeToString(getNextLink(data, prevSeed, seed))
}

// Verify rets okay if link binds data under (prevSeed, seed).
func Verify(data, prevSeed, seed, link []byte) bool {
	return std.BytesEqual(getNextLink(data, prevSeed, seed), link)
}

func getNextLink(data, prevSeed, seed []byte) []byte {
	hr := cryptoffi.NewHasher()
	hr.Write(data)
	hr.Write(prevSeed)
	inner := hr.Sum(nil)

	hr = cryptoffi.NewHasher()
	hr.Write(inner)
	hr.Write(seed)
	return hr.Sum(nil)
}
