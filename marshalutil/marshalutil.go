// Package marshalutil holds length-checked readers and framed writers on top
// of [marshal]. every variable-length value is length-prefixed,
// so concatenated encodings can't be re-split at a different boundary.
package marshalutil

import (
	"github.com/tchajed/marshal"
)

type errorTy = bool

const (
	errNone errorTy = false
	errSome errorTy = true
)

// presence tags for optional values.
const (
	TagAbsent  byte = 0
	TagPresent byte = 1
)

// ReadBool reads a one-byte bool. only 0 and 1 are accepted.
func ReadBool(b0 []byte) (bool, []byte, errorTy) {
	data, b, err := ReadByte(b0)
	if err {
		return false, nil, err
	}
	switch data {
	case 0:
		return false, b, errNone
	case 1:
		return true, b, errNone
	default:
		return false, nil, errSome
	}
}

func WriteBool(b0 []byte, data bool) []byte {
	if data {
		return WriteByte(b0, 1)
	}
	return WriteByte(b0, 0)
}

func ReadInt(b0 []byte) (uint64, []byte, errorTy) {
	var b = b0
	if uint64(len(b)) < 8 {
		return 0, nil, errSome
	}
	data, b := marshal.ReadInt(b)
	return data, b, errNone
}

func ReadByte(b0 []byte) (byte, []byte, errorTy) {
	var b = b0
	if uint64(len(b)) < 1 {
		return 0, nil, errSome
	}
	data, b := marshal.ReadBytes(b, 1)
	return data[0], b, errNone
}

func WriteByte(b0 []byte, data byte) []byte {
	var b = b0
	b = marshal.WriteBytes(b, []byte{data})
	return b
}

func ReadBytes(b0 []byte, length uint64) ([]byte, []byte, errorTy) {
	var b = b0
	if uint64(len(b)) < length {
		return nil, nil, errSome
	}
	data, b := marshal.ReadBytesCopy(b, length)
	return data, b, errNone
}

func ReadSlice1D(b0 []byte) ([]byte, []byte, errorTy) {
	var b = b0
	length, b, err := ReadInt(b)
	if err {
		return nil, nil, err
	}
	data, b, err := ReadBytes(b, length)
	if err {
		return nil, nil, err
	}
	return data, b, errNone
}

func WriteSlice1D(b0 []byte, data []byte) []byte {
	var b = b0
	b = marshal.WriteInt(b, uint64(len(data)))
	b = marshal.WriteBytes(b, data)
	return b
}

func ReadString(b0 []byte) (string, []byte, errorTy) {
	data, b, err := ReadSlice1D(b0)
	if err {
		return "", nil, err
	}
	return string(data), b, errNone
}

func WriteString(b0 []byte, data string) []byte {
	return WriteSlice1D(b0, []byte(data))
}

// ReadOptSlice1D reads a presence tag followed by an optional slice.
// absent slices decode as nil, present ones as non-nil.
func ReadOptSlice1D(b0 []byte) ([]byte, []byte, errorTy) {
	tag, b, err := ReadByte(b0)
	if err {
		return nil, nil, err
	}
	switch tag {
	case TagAbsent:
		return nil, b, errNone
	case TagPresent:
		data, b, err := ReadSlice1D(b)
		if err {
			return nil, nil, err
		}
		if data == nil {
			data = []byte{}
		}
		return data, b, errNone
	default:
		return nil, nil, errSome
	}
}

func WriteOptSlice1D(b0 []byte, data []byte) []byte {
	if data == nil {
		return WriteByte(b0, TagAbsent)
	}
	b := WriteByte(b0, TagPresent)
	return WriteSlice1D(b, data)
}

func ReadOptString(b0 []byte) (*string, []byte, errorTy) {
	data, b, err := ReadOptSlice1D(b0)
	if err {
		return nil, nil, err
	}
	if data == nil {
		return nil, b, errNone
	}
	s := string(data)
	return &s, b, errNone
}

func WriteOptString(b0 []byte, data *string) []byte {
	if data == nil {
		return WriteByte(b0, TagAbsent)
	}
	return WriteOptSlice1D(b0, []byte(*data))
}

func ReadOptInt(b0 []byte) (*uint64, []byte, errorTy) {
	tag, b, err := ReadByte(b0)
	if err {
		return nil, nil, err
	}
	switch tag {
	case TagAbsent:
		return nil, b, errNone
	case TagPresent:
		data, b, err := ReadInt(b)
		if err {
			return nil, nil, err
		}
		return &data, b, errNone
	default:
		return nil, nil, errSome
	}
}

func WriteOptInt(b0 []byte, data *uint64) []byte {
	if data == nil {
		return WriteByte(b0, TagAbsent)
	}
	b := WriteByte(b0, TagPresent)
	return marshal.WriteInt(b, *data)
}
