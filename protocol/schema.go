package protocol

import (
	"fmt"
	"slices"
)

// FieldType is the value type of a message field. it picks the canonical
// encoding used for hashing.
type FieldType byte

const (
	TypeString FieldType = iota + 1
	TypeUint
	// TypeBigInt is an arbitrary-precision non-negative integer.
	TypeBigInt
	TypeBytes
	TypeSeed
	TypeMerkleProof
	TypeBool
)

// Field declares one message field.
// Short marks a field whose display form is truncated.
type Field struct {
	Name     string
	Type     FieldType
	Required bool
	Short    bool
}

// Schema is the fixed declaration of one kind.
// all of its state is unexported and handed out as copies,
// so nothing can change a kind's hash fields after init.
type Schema struct {
	kind       Kind
	fields     []Field
	hashFields []string
	index      map[string]int
}

func (s *Schema) Kind() Kind {
	return s.kind
}

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// HashFields returns the ordered names covered by the integrity hash.
func (s *Schema) HashFields() []string {
	return slices.Clone(s.hashFields)
}

func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// SchemaOf returns the registered schema, or nil for an invalid kind.
func SchemaOf(k Kind) *Schema {
	if !k.Valid() {
		return nil
	}
	return registry[k]
}

var registry = [numKinds]*Schema{
	KindStore: mustSchema(KindStore,
		[]Field{
			{Name: "encrypted_data", Type: TypeString, Required: true},
			{Name: "curve", Type: TypeString, Required: true},
			{Name: "g", Type: TypeString, Required: true},
			{Name: "h", Type: TypeString, Required: true},
			{Name: "seed", Type: TypeSeed, Required: true},
			{Name: "randomness", Type: TypeBigInt},
			{Name: "commitment", Type: TypeString},
			{Name: "signature", Type: TypeBytes},
			{Name: "commitment_hash", Type: TypeString},
			{Name: "ttl", Type: TypeUint},
		},
		[]string{"curve", "g", "h", "seed", "randomness", "commitment",
			"signature", "commitment_hash"},
		[]string{"encrypted_data", "curve", "g", "h", "seed", "randomness",
			"commitment", "commitment_hash"},
	),
	KindStoreUser: mustSchema(KindStoreUser,
		[]Field{
			{Name: "encrypted_data", Type: TypeString, Required: true},
			{Name: "encryption_payload", Type: TypeString, Required: true},
			{Name: "data_hash", Type: TypeString},
			{Name: "ttl", Type: TypeUint},
		},
		[]string{"encrypted_data", "encryption_payload"},
		[]string{"data_hash", "encrypted_data", "encryption_payload"},
	),
	KindChallenge: mustSchema(KindChallenge,
		[]Field{
			{Name: "challenge_hash", Type: TypeString, Required: true},
			{Name: "challenge_index", Type: TypeUint, Required: true},
			{Name: "chunk_size", Type: TypeUint, Required: true},
			{Name: "g", Type: TypeString, Required: true},
			{Name: "h", Type: TypeString, Required: true},
			{Name: "curve", Type: TypeString, Required: true},
			{Name: "seed", Type: TypeSeed, Required: true},
			{Name: "commitment_hash", Type: TypeString},
			{Name: "commitment_proof", Type: TypeString},
			{Name: "commitment", Type: TypeString},
			{Name: "data_chunk", Type: TypeBytes},
			{Name: "randomness", Type: TypeBigInt},
			{Name: "merkle_proof", Type: TypeMerkleProof},
			{Name: "merkle_root", Type: TypeString},
		},
		[]string{"commitment_hash", "commitment_proof", "commitment",
			"data_chunk", "randomness", "merkle_proof", "merkle_root"},
		[]string{"challenge_hash", "challenge_index", "chunk_size", "g", "h",
			"curve", "seed", "commitment_hash", "commitment_proof",
			"commitment", "data_chunk", "randomness", "merkle_proof",
			"merkle_root"},
	),
	KindRetrieve: mustSchema(KindRetrieve,
		[]Field{
			{Name: "data_hash", Type: TypeString, Required: true},
			{Name: "seed", Type: TypeSeed, Required: true},
			{Name: "data", Type: TypeString},
			{Name: "commitment_hash", Type: TypeString},
			{Name: "commitment_proof", Type: TypeString},
		},
		[]string{"data", "data_hash", "seed", "commitment_proof",
			"commitment_hash"},
		[]string{"data_hash", "seed", "data", "commitment_hash",
			"commitment_proof"},
	),
	KindRetrieveUser: mustSchema(KindRetrieveUser,
		[]Field{
			{Name: "data_hash", Type: TypeString, Required: true},
			{Name: "encrypted_data", Type: TypeString},
			{Name: "encryption_payload", Type: TypeString},
		},
		[]string{"data_hash"},
		[]string{"data_hash", "encrypted_data", "encryption_payload"},
	),
	KindDeleteUser: mustSchema(KindDeleteUser,
		[]Field{
			{Name: "data_hash", Type: TypeString, Required: true},
			{Name: "encryption_payload", Type: TypeString, Required: true},
			{Name: "deleted", Type: TypeBool},
		},
		[]string{"data_hash"},
		nil,
	),
}

// mustSchema panics on a declaration that names an undeclared field,
// so a misspelled hash field can't silently hash as absent.
func mustSchema(k Kind, fields []Field, hashFields, shortFields []string) *Schema {
	s := &Schema{kind: k, fields: fields, hashFields: hashFields,
		index: make(map[string]int, len(fields))}
	for i, f := range fields {
		if _, dup := s.index[f.Name]; dup {
			panic(fmt.Sprintf("protocol: %s declares %q twice", k, f.Name))
		}
		s.index[f.Name] = i
	}
	seen := make(map[string]bool, len(hashFields))
	for _, name := range hashFields {
		if _, ok := s.index[name]; !ok {
			panic(fmt.Sprintf("protocol: %s hashes undeclared field %q", k, name))
		}
		if seen[name] {
			panic(fmt.Sprintf("protocol: %s hashes %q twice", k, name))
		}
		seen[name] = true
	}
	for _, name := range shortFields {
		i, ok := s.index[name]
		if !ok {
			panic(fmt.Sprintf("protocol: %s shortens undeclared field %q", k, name))
		}
		s.fields[i].Short = true
	}
	return s
}
