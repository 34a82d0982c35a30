package textutil

import (
	"strings"
	"unicode"
)

// MyanmarSectionMark (။) ends a Myanmar sentence; MyanmarLittleSection
// (၊) separates phrases, comparable to a comma.
const (
	MyanmarSectionMark   = '။'
	MyanmarLittleSection = '၊'
)

// isSentenceEnder reports whether r can terminate a sentence.
func isSentenceEnder(r rune) bool {
	switch r {
	case '.', '!', '?', MyanmarSectionMark:
		return true
	}
	return false
}

// SplitSentences splits text into sentences on Latin enders (., !, ?)
// and the Myanmar section mark. A Latin period only splits when
// followed by whitespace or end of text, so decimals and abbreviations
// mostly survive; the Myanmar section mark always splits.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if !isSentenceEnder(r) {
			continue
		}
		if r == MyanmarSectionMark || i+1 >= len(runes) || unicode.IsSpace(runes[i+1]) {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// EndsSentence reports whether the trimmed line ends with a sentence
// terminator (optionally followed by a closing quote).
func EndsSentence(line string) bool {
	line = strings.TrimRight(strings.TrimSpace(line), `"')]`+"’”")
	runes := []rune(line)
	if len(runes) == 0 {
		return false
	}
	return isSentenceEnder(runes[len(runes)-1])
}

// SplitParagraphs splits text into blank-line-delimited blocks,
// preserving order and dropping empty blocks.
func SplitParagraphs(text string) []string {
	normalized := strings.ReplaceAll(text, "\r\n", "\n")
	parts := strings.Split(normalized, "\n\n")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
