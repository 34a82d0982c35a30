package myanmar

import (
	"strings"
	"unicode"
)

// particles are grammatical markers used as word-boundary signals,
// since Myanmar writes no spaces between words. Longest first, so a
// longer particle wins over a prefix of itself.
var particles = []string{
	"နှင့်",   // နှင့် (and/with)
	"အတွက်",   // အတွက် (for)
	"ဖြင့်",   // ဖြင့် (by means of)
	"ကြောင့်", // ကြောင့် (because of)
	"တွင်",    // တွင် (in/at)
	"ထံမှ",    // ထံမှ (from)
	"သည်",     // သည် (subject marker)
	"များ",    // များ (plural)
	"လည်း",    // လည်း (also)
	"တို့",    // တို့ (plural group)
	"သော",     // သော (attributive)
	"ကို",     // ကို (object marker)
	"မှာ",     // မှာ (at/in)
	"ပါ",      // ပါ (polite)
	"၏",       // ၏ (possessive)
}

// SegmentWords splits text into word-like tokens: first on whitespace
// and the Myanmar section marks, then each segment is recursively
// split around known grammatical particles, with the particle kept as
// its own token.
func SegmentWords(text string) []string {
	text = Normalize(text)

	segments := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == MyanmarLittleSection || r == MyanmarSectionMark
	})

	var words []string
	for _, seg := range segments {
		words = append(words, splitParticles(seg)...)
	}
	return words
}

const (
	// MyanmarLittleSection and MyanmarSectionMark are the two Myanmar
	// punctuation marks (၊ and ။).
	MyanmarLittleSection = '၊'
	MyanmarSectionMark   = '။'
)

// IsParticle reports whether w is one of the known grammatical
// particles.
func IsParticle(w string) bool {
	for _, p := range particles {
		if w == p {
			return true
		}
	}
	return false
}

// splitParticles recursively splits a segment around the first
// particle occurrence. Particles only act as separators inside
// Myanmar runs; a segment without Myanmar script is returned whole.
func splitParticles(seg string) []string {
	if seg == "" {
		return nil
	}
	hasMyanmar := false
	for _, r := range seg {
		if isMyanmar(r) {
			hasMyanmar = true
			break
		}
	}
	if !hasMyanmar {
		return []string{seg}
	}

	for _, p := range particles {
		idx := strings.Index(seg, p)
		if idx < 0 {
			continue
		}
		var out []string
		out = append(out, splitParticles(seg[:idx])...)
		out = append(out, p)
		out = append(out, splitParticles(seg[idx+len(p):])...)
		return out
	}
	return []string{seg}
}
