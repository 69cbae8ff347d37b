package protocol

import (
	"encoding/json"
	"strings"

	"github.com/storetao/protocol/marshalutil"
	"github.com/tchajed/marshal"
)

// MerkleNode is one sibling hash on the path from a chunk to the root.
// a well-formed node sets exactly one side: Left when the sibling sits
// to the left of the running hash, Right otherwise.
type MerkleNode struct {
	Left  string `json:"left,omitempty"`
	Right string `json:"right,omitempty"`
}

// Sibling returns the set side. ok is false unless exactly one side is set.
func (n MerkleNode) Sibling() (hash string, isLeft bool, ok bool) {
	switch {
	case n.Left != "" && n.Right == "":
		return n.Left, true, true
	case n.Right != "" && n.Left == "":
		return n.Right, false, true
	default:
		return "", false, false
	}
}

func (n MerkleNode) String() string {
	var parts []string
	if n.Left != "" {
		parts = append(parts, "left:"+n.Left)
	}
	if n.Right != "" {
		parts = append(parts, "right:"+n.Right)
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// MerkleProof is ordered leaf to root. nil means unset.
type MerkleProof []MerkleNode

func (p MerkleProof) String() string {
	parts := make([]string, 0, len(p))
	for _, n := range p {
		parts = append(parts, n.String())
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// ParseMerkleProof accepts a proof, a list of {"left"|"right": hash} maps,
// or the JSON text of such a list.
func ParseMerkleProof(v any) (MerkleProof, error) {
	switch x := v.(type) {
	case MerkleProof:
		return x, nil
	case []MerkleNode:
		return MerkleProof(x), nil
	case []map[string]string:
		return proofFromMaps(x)
	case string:
		var ms []map[string]string
		if err := json.Unmarshal([]byte(x), &ms); err != nil {
			return nil, &FieldError{Field: "merkle_proof",
				Reason: "bad json: " + err.Error(), Err: ErrValidation}
		}
		return proofFromMaps(ms)
	default:
		return nil, &FieldError{Field: "merkle_proof",
			Reason: "unsupported proof encoding", Err: ErrValidation}
	}
}

func proofFromMaps(ms []map[string]string) (MerkleProof, error) {
	p := make(MerkleProof, 0, len(ms))
	for _, m := range ms {
		var n MerkleNode
		for k, h := range m {
			switch k {
			case "left":
				n.Left = h
			case "right":
				n.Right = h
			default:
				return nil, &FieldError{Field: "merkle_proof",
					Reason: "unknown node side " + k, Err: ErrValidation}
			}
		}
		p = append(p, n)
	}
	return p, nil
}

func MerkleProofEncode(b0 []byte, o MerkleProof) []byte {
	var b = b0
	b = marshal.WriteInt(b, uint64(len(o)))
	for _, n := range o {
		b = marshalutil.WriteString(b, n.Left)
		b = marshalutil.WriteString(b, n.Right)
	}
	return b
}

func MerkleProofDecode(b0 []byte) (MerkleProof, []byte, bool) {
	length, b1, err1 := marshalutil.ReadInt(b0)
	if err1 {
		return nil, nil, true
	}
	// each node takes at least 16 bytes. bounds the pre-allocation.
	if length > uint64(len(b1))/16 {
		return nil, nil, true
	}
	var loopO = make(MerkleProof, 0, length)
	var loopB = b1
	for i := uint64(0); i < length; i++ {
		l, b2, err2 := marshalutil.ReadString(loopB)
		if err2 {
			return nil, nil, true
		}
		r, b3, err3 := marshalutil.ReadString(b2)
		if err3 {
			return nil, nil, true
		}
		loopO = append(loopO, MerkleNode{Left: l, Right: r})
		loopB = b3
	}
	return loopO, loopB, false
}
