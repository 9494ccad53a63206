package textutil

import (
	"strings"
	"unicode/utf8"
)

// entities maps the HTML entities the lyrics pages actually emit.
// Order matters: the first prefix match wins, so &amp; must be checked
// before any shorter sequence could shadow it.
var entities = [...]struct {
	seq string
	ch  rune
}{
	{"&amp;", '&'},
	{"&lt;", '<'},
	{"&gt;", '>'},
	{"&quot;", '"'},
	{"&apos;", '\''},
	{"&#x27;", '\''},
	{"&#39;", '\''},
}

// StripCodeFences removes at most one leading ```json or ``` marker and at
// most one trailing ``` marker from a generative-model response, trimming
// whitespace on both sides. Applying it twice yields the same result as
// applying it once.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if rest, ok := strings.CutPrefix(s, "```json"); ok {
		s = rest
	} else if rest, ok := strings.CutPrefix(s, "```"); ok {
		s = rest
	}
	if rest, ok := strings.CutSuffix(s, "```"); ok {
		s = rest
	}
	return strings.TrimSpace(s)
}

// FlattenHTML converts an HTML fragment to plain text in a single
// left-to-right scan. Tags whose content starts with "br" (any case)
// become a newline, every other tag is dropped, and the entities table
// above is decoded; an unmatched '&' or an unterminated '<' passes
// through byte by byte. Multi-byte runes outside tags are copied intact.
func FlattenHTML(fragment string) string {
	var out strings.Builder
	out.Grow(len(fragment))

	pos := 0
	for pos < len(fragment) {
		rest := fragment[pos:]

		switch {
		case rest[0] == '<':
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				// Unterminated tag: emit nothing, advance past '<'
				pos++
				continue
			}
			inner := strings.TrimLeft(rest[1:end], " \t\r\n")
			if len(inner) >= 2 && (inner[0] == 'b' || inner[0] == 'B') && (inner[1] == 'r' || inner[1] == 'R') {
				out.WriteByte('\n')
			}
			pos += end + 1

		case rest[0] == '&':
			matched := false
			for _, e := range entities {
				if strings.HasPrefix(rest, e.seq) {
					out.WriteRune(e.ch)
					pos += len(e.seq)
					matched = true
					break
				}
			}
			if !matched {
				out.WriteByte('&')
				pos++
			}

		default:
			_, size := utf8.DecodeRuneInString(rest)
			out.WriteString(rest[:size])
			pos += size
		}
	}

	return out.String()
}
