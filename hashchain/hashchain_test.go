package hashchain

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/storetao/protocol/cryptoffi"
)

func TestHashChain(t *testing.T) {
	var seed [32]byte
	rndSrc := rand.NewChaCha8(seed)
	data := make([]byte, 1024)
	rndSrc.Read(data)

	s0 := []byte("seed0")
	chain := New(data, s0)
	if !Verify(data, nil, s0, chain.Link()) {
		t.Fatal()
	}

	prevSeed := s0
	var links [][]byte
	for i := 0; i < 100; i++ {
		newSeed := make([]byte, 8)
		rndSrc.Read(newSeed)
		newLink := chain.Append(newSeed)
		links = append(links, newLink)

		if !Verify(data, prevSeed, newSeed, newLink) {
			t.Fatal()
		}
		if !bytes.Equal(chain.Seed(), newSeed) {
			t.Fatal()
		}
		if uint64(len(newLink)) != cryptoffi.HashLen {
			t.Fatal()
		}
		prevSeed = newSeed
	}

	// superseded links don't verify against the current seed pair.
	last := len(links) - 1
	for i := 0; i < last; i++ {
		if bytes.Equal(links[i], links[last]) {
			t.Fatal()
		}
	}
}

func TestCommitLayering(t *testing.T) {
	data := []byte("data")
	prev := []byte("prev")
	seed := []byte("seed")

	inner := cryptoffi.Hash(append(bytes.Clone(data), prev...))
	want := cryptoffi.Hash(append(inner, seed...))
	if !bytes.Equal(Commit(data, prev, seed), want) {
		t.Fatal()
	}

	// any input change moves the link.
	if Verify([]byte("datb"), prev, seed, want) {
		t.Fatal()
	}
	if Verify(data, []byte("prew"), seed, want) {
		t.Fatal()
	}
	if Verify(data, prev, []byte("seee"), want) {
		t.Fatal()
	}
	if len(CommitHex(data, prev, seed)) != int(2*cryptoffi.HashLen) {
		t.Fatal()
	}
}
