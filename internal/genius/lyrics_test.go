package genius

import (
	"strings"
	"testing"
)

func TestExtractLyrics(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "No containers",
			html:     `<html><body><div class="header">nothing here</div></body></html>`,
			expected: "",
		},
		{
			name:     "Single container plain text",
			html:     `<div data-lyrics-container="true">  Hello world  </div>`,
			expected: "Hello world",
		},
		{
			name:     "Line breaks and entities",
			html:     `<div data-lyrics-container="true">One more time<br>We&#x27;re gonna celebrate</div>`,
			expected: "One more time\nWe're gonna celebrate",
		},
		{
			name: "Nested divs inside container",
			html: `<div data-lyrics-container="true">[Verse 1]<br><div class="inline"><a href="/x">Around the world</a></div><br>Around the world</div>`,
			expected: "[Verse 1]\nAround the world\nAround the world",
		},
		{
			name: "Multiple containers joined by newline",
			html: `<div data-lyrics-container="true">First verse</div>` +
				`<p>ad</p>` +
				`<div data-lyrics-container="true">Second verse</div>`,
			expected: "First verse\nSecond verse",
		},
		{
			name:     "Empty container ignored",
			html:     `<div data-lyrics-container="true">   </div><div data-lyrics-container="true">Real text</div>`,
			expected: "Real text",
		},
		{
			name:     "Unbalanced container swallows the rest",
			html:     `<div data-lyrics-container="true">Never closed<br>still captured`,
			expected: "Never closed\nstill captured",
		},
		{
			name:     "Marker without closing bracket",
			html:     `<div data-lyrics-container="true"`,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractLyrics(tt.html)
			if got != tt.expected {
				t.Errorf("ExtractLyrics mismatch:\nwant %q\ngot  %q", tt.expected, got)
			}
		})
	}
}

func TestExtractLyricsTruncation(t *testing.T) {
	long := strings.Repeat("la", 2500) // 5000 chars of lyrics
	html := `<div data-lyrics-container="true">` + long + `</div>`

	got := ExtractLyrics(html)
	if len([]rune(got)) != maxLyricsLen {
		t.Errorf("expected %d runes after truncation, got %d", maxLyricsLen, len([]rune(got)))
	}
	if !strings.HasPrefix(long, got) {
		t.Error("truncated lyrics are not a prefix of the original text")
	}
}

func TestExtractLyricsMultiByteTruncation(t *testing.T) {
	long := strings.Repeat("é", maxLyricsLen+10)
	html := `<div data-lyrics-container="true">` + long + `</div>`

	got := ExtractLyrics(html)
	runes := []rune(got)
	if len(runes) != maxLyricsLen {
		t.Fatalf("expected %d runes, got %d", maxLyricsLen, len(runes))
	}
	for _, r := range runes {
		if r != 'é' {
			t.Fatalf("truncation split a multi-byte rune: found %q", r)
		}
	}
}
