package envelope

import (
	"github.com/storetao/protocol/marshalutil"
	"github.com/tchajed/marshal"
)

func TerminalInfoEncode(b0 []byte, o *TerminalInfo) []byte {
	var b = b0
	b = marshal.WriteInt(b, o.StatusCode)
	b = marshalutil.WriteString(b, o.StatusMessage)
	b = marshalutil.WriteString(b, o.IP)
	b = marshal.WriteInt(b, o.Port)
	b = marshal.WriteInt(b, o.Version)
	b = marshal.WriteInt(b, o.Nonce)
	b = marshalutil.WriteString(b, o.UUID)
	b = marshalutil.WriteString(b, o.Hotkey)
	b = marshalutil.WriteSlice1D(b, o.Signature)
	return b
}

func TerminalInfoDecode(b0 []byte) (*TerminalInfo, []byte, bool) {
	a1, b1, err1 := marshalutil.ReadInt(b0)
	if err1 {
		return nil, nil, true
	}
	a2, b2, err2 := marshalutil.ReadString(b1)
	if err2 {
		return nil, nil, true
	}
	a3, b3, err3 := marshalutil.ReadString(b2)
	if err3 {
		return nil, nil, true
	}
	a4, b4, err4 := marshalutil.ReadInt(b3)
	if err4 {
		return nil, nil, true
	}
	a5, b5, err5 := marshalutil.ReadInt(b4)
	if err5 {
		return nil, nil, true
	}
	a6, b6, err6 := marshalutil.ReadInt(b5)
	if err6 {
		return nil, nil, true
	}
	a7, b7, err7 := marshalutil.ReadString(b6)
	if err7 {
		return nil, nil, true
	}
	a8, b8, err8 := marshalutil.ReadString(b7)
	if err8 {
		return nil, nil, true
	}
	a9, b9, err9 := marshalutil.ReadSlice1D(b8)
	if err9 {
		return nil, nil, true
	}
	if len(a9) == 0 {
		a9 = nil
	}
	return &TerminalInfo{StatusCode: a1, StatusMessage: a2, IP: a3, Port: a4,
		Version: a5, Nonce: a6, UUID: a7, Hotkey: a8, Signature: a9}, b9, false
}

// OptTerminalInfoEncode writes a presence tag, then the info if non-zero.
func OptTerminalInfoEncode(b0 []byte, o *TerminalInfo) []byte {
	if o.IsZero() {
		return marshalutil.WriteByte(b0, marshalutil.TagAbsent)
	}
	b := marshalutil.WriteByte(b0, marshalutil.TagPresent)
	return TerminalInfoEncode(b, o)
}

func OptTerminalInfoDecode(b0 []byte) (*TerminalInfo, []byte, bool) {
	tag, b1, err1 := marshalutil.ReadByte(b0)
	if err1 {
		return nil, nil, true
	}
	switch tag {
	case marshalutil.TagAbsent:
		return nil, b1, false
	case marshalutil.TagPresent:
		return TerminalInfoDecode(b1)
	default:
		return nil, nil, true
	}
}
