package textutil

import "unicode"

// IsMyanmarRune reports whether r falls in the Myanmar script blocks.
func IsMyanmarRune(r rune) bool {
	return (r >= 0x1000 && r <= 0x109F) || (r >= 0xAA60 && r <= 0xAA7F)
}

// IsMyanmarDigit reports whether r is a Myanmar digit (၀-၉).
func IsMyanmarDigit(r rune) bool {
	return r >= 0x1040 && r <= 0x1049
}

// ContainsMyanmar reports whether any rune of s is in the Myanmar
// script.
func ContainsMyanmar(s string) bool {
	for _, r := range s {
		if IsMyanmarRune(r) {
			return true
		}
	}
	return false
}

// EstimateTokens gives a rough token count for mixed-script text.
// Myanmar syllables are denser than Latin words, so Myanmar runes are
// weighted at one token per 2 characters and everything else at one
// token per 4 characters. Exact tokenization is not required for
// chunking; this only has to be stable and monotonic in text length.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	var myanmar, other int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		if IsMyanmarRune(r) {
			myanmar++
		} else {
			other++
		}
	}
	tokens := (myanmar+1)/2 + (other+3)/4
	if tokens < 1 {
		tokens = 1
	}
	return tokens
}

// CountWords counts words with script-aware weighting: a
// whitespace-delimited field of Latin text is one word, while a field
// of Myanmar text (which carries no inter-word spaces) is counted as
// roughly one word per three Myanmar runes.
func CountWords(text string) int {
	count := 0
	inField := false
	fieldMyanmar := 0
	flush := func() {
		if !inField {
			return
		}
		if fieldMyanmar > 0 {
			w := fieldMyanmar / 3
			if w < 1 {
				w = 1
			}
			count += w
		} else {
			count++
		}
		inField = false
		fieldMyanmar = 0
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			flush()
			continue
		}
		inField = true
		if IsMyanmarRune(r) {
			fieldMyanmar++
		}
	}
	flush()
	return count
}
