// Package myanmar implements script-level text handling for Myanmar:
// syllable and word segmentation, legacy (Zawgyi) encoding detection,
// and rule-based conversion between the legacy and standard Unicode
// encodings.
package myanmar

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Code-point classes of the Myanmar Unicode block used by the
// syllable grammar.
const (
	virama = '္' // stacks the following consonant under the previous one
	asat   = '်' // kills the inherent vowel; marks a syllable coda
)

func isConsonant(r rune) bool {
	return r >= 0x1000 && r <= 0x1020
}

func isIndependentVowel(r rune) bool {
	return r >= 0x1021 && r <= 0x102A
}

func isDigit(r rune) bool {
	return r >= 0x1040 && r <= 0x1049
}

// isBase reports whether r can start a new syllable.
func isBase(r rune) bool {
	return isConsonant(r) || isIndependentVowel(r) || isDigit(r)
}

func isMyanmar(r rune) bool {
	return (r >= 0x1000 && r <= 0x109F) || (r >= 0xAA60 && r <= 0xAA7F)
}

// Normalize applies NFC normalization. Myanmar combining marks arrive
// in inconsistent orders from copy-pasted manuscript text; everything
// downstream assumes NFC.
func Normalize(text string) string {
	return norm.NFC.String(text)
}

// SegmentSyllables splits text into orthographic Myanmar syllables.
// A syllable is a base character (consonant, independent vowel, or
// digit) followed by its stacked consonants, medials, vowel signs,
// tone marks, and asat. A consonant immediately followed by asat is a
// syllable coda and stays attached to the preceding syllable, as does
// a consonant preceded by the virama. Runs of non-Myanmar text are
// returned as single segments; whitespace is dropped.
func SegmentSyllables(text string) []string {
	runes := []rune(Normalize(text))
	var out []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			out = append(out, current.String())
			current.Reset()
		}
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		if unicode.IsSpace(r) {
			flush()
			continue
		}

		if !isMyanmar(r) {
			// Collect a run of non-Myanmar, non-space runes.
			flush()
			j := i
			for j < len(runes) && !isMyanmar(runes[j]) && !unicode.IsSpace(runes[j]) {
				j++
			}
			out = append(out, string(runes[i:j]))
			i = j - 1
			continue
		}

		if r == '၊' || r == '။' {
			flush()
			out = append(out, string(r))
			continue
		}

		if isBase(r) && current.Len() > 0 {
			prev := runes[i-1]
			followedByKiller := i+1 < len(runes) && (runes[i+1] == asat || runes[i+1] == virama)
			if prev != virama && !followedByKiller {
				flush()
			}
		}
		current.WriteRune(r)
	}
	flush()
	return out
}
