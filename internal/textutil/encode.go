package textutil

import (
	"fmt"
	"strings"
)

// QueryEscape encodes a search term the way the iTunes and Genius search
// endpoints expect legacy form encoding: ASCII letters, digits and -_.
// pass through, a space becomes '+', and every other byte becomes an
// uppercase %XX escape. Multi-byte runes are escaped one raw byte at a
// time, so UTF-8 "ö" (0xC3 0xB6) encodes as "%C3%B6".
func QueryEscape(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	for i := 0; i < len(s); i++ {
		b := s[i]
		switch {
		case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9',
			b == '-', b == '_', b == '.':
			out.WriteByte(b)
		case b == ' ':
			out.WriteByte('+')
		default:
			fmt.Fprintf(&out, "%%%02X", b)
		}
	}

	return out.String()
}
