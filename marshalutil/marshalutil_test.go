package marshalutil

import (
	"testing"
)

func TestBool(t *testing.T) {
	for _, v := range []bool{false, true} {
		b := WriteBool(nil, v)
		if len(b) != 1 {
			t.Fatal()
		}
		v1, rest, err := ReadBool(b)
		if err || v1 != v || len(rest) != 0 {
			t.Fatal(v)
		}
	}
	if _, _, err := ReadBool([]byte{2}); !err {
		t.Fatal("accepted a non-0/1 bool byte")
	}
	if _, _, err := ReadBool(nil); !err {
		t.Fatal()
	}
}

func TestOptSlice1D(t *testing.T) {
	for _, v := range [][]byte{nil, {}, {1, 2, 3}} {
		v1, rest, err := ReadOptSlice1D(WriteOptSlice1D(nil, v))
		if err || len(rest) != 0 {
			t.Fatal()
		}
		if (v == nil) != (v1 == nil) || string(v) != string(v1) {
			t.Fatal(v, v1)
		}
	}
	if _, _, err := ReadOptSlice1D([]byte{TagPresent, 5}); !err {
		t.Fatal("short length accepted")
	}
}

func TestOptInt(t *testing.T) {
	n := uint64(7)
	v, rest, err := ReadOptInt(WriteOptInt(nil, &n))
	if err || len(rest) != 0 || v == nil || *v != n {
		t.Fatal()
	}
	v, _, err = ReadOptInt(WriteOptInt(nil, nil))
	if err || v != nil {
		t.Fatal()
	}
}
