package textutil

import "unicode"

// DetectLanguages returns the set of detected language tags for text:
// "my" when any Myanmar code point is present, "en" when any Latin
// letter is present, and ["unknown"] when neither script appears.
// Order is my-before-en for mixed text; callers treat it as a set.
func DetectLanguages(text string) []string {
	var hasMyanmar, hasLatin bool
	for _, r := range text {
		if IsMyanmarRune(r) {
			hasMyanmar = true
		} else if unicode.In(r, unicode.Latin) {
			hasLatin = true
		}
		if hasMyanmar && hasLatin {
			break
		}
	}
	var langs []string
	if hasMyanmar {
		langs = append(langs, "my")
	}
	if hasLatin {
		langs = append(langs, "en")
	}
	if len(langs) == 0 {
		langs = []string{"unknown"}
	}
	return langs
}
