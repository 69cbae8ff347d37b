package protocol

import (
	"strconv"
	"strings"
)

// shortReprLen is how many runes of a short-repr field are kept.
const shortReprLen = 12

const ellipsis = "…"

// Format renders m for logs as Kind(name=value, ...), in declaration order.
// non-zero destination, then origin, info come first.
// in short mode, fields holding their declared default are left out.
// fields the schema marks short are cut to 12 runes plus an ellipsis.
//
// the output is not canonical. nothing may hash or verify it.
func Format(m Message, short bool) string {
	k := m.Kind()
	s := registry[k]
	h := m.header()

	var parts []string
	if !h.Destination.IsZero() {
		parts = append(parts, "destination="+h.Destination.String())
	}
	if !h.Origin.IsZero() {
		parts = append(parts, "origin="+h.Origin.String())
	}
	for i, v := range m.values() {
		f := s.fields[i]
		if short && v.def {
			continue
		}
		parts = append(parts, f.Name+"="+reprValue(v, f.Short))
	}
	return k.String() + "(" + strings.Join(parts, ", ") + ")"
}

func reprValue(v value, shorten bool) string {
	r := v.repr
	if shorten {
		if cut, ok := truncate(r); ok {
			return strconv.Quote(cut)
		}
	}
	if v.quote {
		return strconv.Quote(r)
	}
	return r
}

func truncate(s string) (string, bool) {
	n := 0
	for i := range s {
		if n == shortReprLen {
			return s[:i] + ellipsis, true
		}
		n++
	}
	return s, false
}
