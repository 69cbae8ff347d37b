// Package merkle builds a binary Merkle tree over the chunks of stored data
// and checks chunk-level inclusion proofs against its root.
// a level with an odd node count promotes the last node unpaired.
package merkle

import (
	"encoding/hex"

	"github.com/goose-lang/std"
	"github.com/storetao/protocol/cryptoffi"
	"github.com/storetao/protocol/protocol"
	"golang.org/x/xerrors"
)

const (
	emptyNodeTag    byte = 0
	interiorNodeTag byte = 1
	leafNodeTag     byte = 2
)

// Tree keeps every level, leaves first.
type Tree struct {
	levels [][][]byte
}

// Split cuts data into size-byte chunks. the last chunk may be short.
func Split(data []byte, size uint64) [][]byte {
	if size == 0 {
		return nil
	}
	var chunks [][]byte
	for start := uint64(0); start < uint64(len(data)); start += size {
		end := start + size
		if end > uint64(len(data)) {
			end = uint64(len(data))
		}
		chunks = append(chunks, data[start:end])
	}
	return chunks
}

func NewTree(chunks [][]byte) *Tree {
	leaves := make([][]byte, 0, len(chunks))
	for _, c := range chunks {
		leaves = append(leaves, LeafHash(c))
	}
	t := &Tree{levels: [][][]byte{leaves}}
	for cur := leaves; len(cur) > 1; {
		next := make([][]byte, 0, (len(cur)+1)/2)
		for i := 0; i < len(cur); i += 2 {
			if i+1 == len(cur) {
				next = append(next, cur[i])
				continue
			}
			next = append(next, interiorHash(cur[i], cur[i+1]))
		}
		t.levels = append(t.levels, next)
		cur = next
	}
	return t
}

// NumLeaves is the chunk count.
func (t *Tree) NumLeaves() uint64 {
	return uint64(len(t.levels[0]))
}

func (t *Tree) Root() []byte {
	top := t.levels[len(t.levels)-1]
	if len(top) == 0 {
		return cryptoffi.Hash([]byte{emptyNodeTag})
	}
	return top[0]
}

func (t *Tree) RootHex() string {
	return hex.EncodeToString(t.Root())
}

// Prove returns the sibling path for chunk index, leaf to root.
// it errors if index is out of range.
func (t *Tree) Prove(index uint64) (protocol.MerkleProof, bool) {
	if index >= t.NumLeaves() {
		return nil, true
	}
	proof := protocol.MerkleProof{}
	pos := index
	for _, level := range t.levels[:len(t.levels)-1] {
		if pos%2 == 1 {
			proof = append(proof, protocol.MerkleNode{Left: hex.EncodeToString(level[pos-1])})
		} else if pos+1 < uint64(len(level)) {
			proof = append(proof, protocol.MerkleNode{Right: hex.EncodeToString(level[pos+1])})
		}
		// an unpaired last node moves up without a sibling.
		pos /= 2
	}
	return proof, false
}

// Fold applies proof to leaf and returns the implied root.
// it errors on a node without exactly one side or with bad hex.
func Fold(leaf []byte, proof protocol.MerkleProof) ([]byte, bool) {
	cur := leaf
	for _, n := range proof {
		sib, isLeft, ok := n.Sibling()
		if !ok {
			return nil, true
		}
		sibB, err := hex.DecodeString(sib)
		if err != nil {
			return nil, true
		}
		if isLeft {
			cur = interiorHash(sibB, cur)
		} else {
			cur = interiorHash(cur, sibB)
		}
	}
	return cur, false
}

// Verifier checks chunk proofs for [protocol.VerifyChallenge].
type Verifier struct{}

func (Verifier) VerifyMerkle(chunk []byte, proof protocol.MerkleProof, root string) error {
	rootB, err := hex.DecodeString(root)
	if err != nil {
		return xerrors.Errorf("merkle root not hex: %w", protocol.ErrProofInvalid)
	}
	got, errFold := Fold(LeafHash(chunk), proof)
	if errFold {
		return xerrors.Errorf("merkle proof unreadable: %w", protocol.ErrProofInvalid)
	}
	if !std.BytesEqual(got, rootB) {
		return xerrors.Errorf("merkle root mismatch: %w", protocol.ErrProofInvalid)
	}
	return nil
}

func LeafHash(chunk []byte) []byte {
	hr := cryptoffi.NewHasher()
	hr.Write([]byte{leafNodeTag})
	hr.Write(chunk)
	return hr.Sum(nil)
}

func interiorHash(l, r []byte) []byte {
	hr := cryptoffi.NewHasher()
	hr.Write([]byte{interiorNodeTag})
	hr.Write(l)
	hr.Write(r)
	return hr.Sum(nil)
}
