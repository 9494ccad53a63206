package genius

import (
	"strings"

	"github.com/pcantera/muse/internal/textutil"
)

const (
	// lyricsMarker tags the divs Genius renders lyrics into. A single song
	// page may carry several such containers (one per verse block).
	lyricsMarker = `data-lyrics-container="true"`

	// maxLyricsLen bounds the extracted text so downstream prompts stay
	// within their token budget. Truncation is silent and expected.
	maxLyricsLen = 3000
)

// ExtractLyrics pulls plain-text lyrics out of a Genius song page without
// a full HTML parser. For each marked container it scans forward tracking
// div nesting depth, so inline markup (<a>, <i>, nested <div>s) inside a
// lyrics block is handled; the captured span is flattened to text and
// trimmed. Containers are joined with a newline. Unbalanced markup never
// loops: the scan stops at end of input and keeps whatever it covered.
func ExtractLyrics(html string) string {
	var result strings.Builder
	pos := 0

	for {
		rel := strings.Index(html[pos:], lyricsMarker)
		if rel < 0 {
			break
		}
		tagStart := pos + rel

		openEnd := strings.IndexByte(html[tagStart:], '>')
		if openEnd < 0 {
			break
		}
		contentStart := tagStart + openEnd + 1

		depth := 1
		scan := contentStart
		for depth > 0 && scan < len(html) {
			switch {
			case strings.HasPrefix(html[scan:], "<div"):
				depth++
				scan += 4
			case strings.HasPrefix(html[scan:], "</div>"):
				depth--
				if depth == 0 {
					break
				}
				scan += 6
			default:
				scan++
			}
		}

		section := strings.TrimSpace(textutil.FlattenHTML(html[contentStart:scan]))
		if section != "" {
			if result.Len() > 0 {
				result.WriteByte('\n')
			}
			result.WriteString(section)
		}
		pos = scan
	}

	return truncateRunes(result.String(), maxLyricsLen)
}

// truncateRunes caps s at n runes without splitting a multi-byte rune.
func truncateRunes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
