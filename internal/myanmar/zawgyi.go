package myanmar

import "regexp"

// Encoding identifies which of the two incompatible Myanmar encodings
// a piece of text uses.
type Encoding string

const (
	EncodingUnicode Encoding = "unicode"
	EncodingZawgyi  Encoding = "zawgyi"
)

// signal is one weighted detection pattern. Zawgyi and standard
// Unicode reuse overlapping code points with different meanings, so
// detection scores both hypotheses and reports a probability rather
// than a verdict.
type signal struct {
	re     *regexp.Regexp
	weight float64
}

// Zawgyi-only usages: code points the standard encoding never emits,
// and mark orderings that are only valid in the legacy model (e.g.
// the vowel E stored before its consonant, medial ra glyph variants).
var zawgyiSignals = []signal{
	{regexp.MustCompile(`[\x{105A}\x{1060}-\x{1097}]`), 3.0},
	// A combining mark with no Myanmar character before it has nothing
	// to attach to in the standard model; legacy text starts visual
	// clusters this way.
	{regexp.MustCompile(`(?:^|[^\x{1000}-\x{109F}])[\x{102B}-\x{1032}\x{1036}-\x{1038}\x{103A}-\x{103E}]`), 3.5},
	{regexp.MustCompile(`[\x{1033}\x{1034}]`), 2.0},
	{regexp.MustCompile(`^\x{1031}`), 2.0},
	{regexp.MustCompile(`\s\x{1031}`), 2.0},
	{regexp.MustCompile(`\x{1031}[\x{103B}\x{107E}-\x{1084}]`), 2.5},
	{regexp.MustCompile(`[\x{107E}-\x{1084}]`), 3.0},
	{regexp.MustCompile(`\x{1031}\x{1031}`), 3.0},
	{regexp.MustCompile(`\x{1039}(?:[^\x{1000}-\x{1021}]|$)`), 2.0},
	{regexp.MustCompile(`\x{103A}\x{103D}`), 1.5},
	{regexp.MustCompile(`\x{1025}\x{1039}`), 1.5},
	{regexp.MustCompile(`\x{1036}\x{102F}`), 1.0},
}

// Standard-Unicode usages that the legacy encoding cannot produce.
var unicodeSignals = []signal{
	// A true stack (C + virama + C) is also how legacy spells an asat
	// before the next word's consonant, so this only counts weakly.
	{regexp.MustCompile(`[\x{1000}-\x{1021}]\x{1039}[\x{1000}-\x{1021}]`), 1.0},
	{regexp.MustCompile(`[\x{1000}-\x{1021}]\x{103A}`), 1.0},
	{regexp.MustCompile(`[\x{1000}-\x{1021}][\x{103B}-\x{103E}]*\x{1031}`), 1.5},
	{regexp.MustCompile(`\x{103E}`), 1.0},
	{regexp.MustCompile(`\x{103F}`), 3.0},
	{regexp.MustCompile(`\x{200B}`), 0.5},
}

// ZawgyiProbability scores how likely text is legacy-encoded, in
// [0, 1]. Text with no Myanmar script scores 0. The score is the
// weighted share of legacy-only signal matches over all signal
// matches; near 0.5 either reading is plausible and callers must
// tolerate misclassification.
func ZawgyiProbability(text string) float64 {
	hasMyanmar := false
	for _, r := range text {
		if isMyanmar(r) {
			hasMyanmar = true
			break
		}
	}
	if !hasMyanmar {
		return 0
	}

	var z, u float64
	for _, s := range zawgyiSignals {
		z += float64(len(s.re.FindAllStringIndex(text, -1))) * s.weight
	}
	for _, s := range unicodeSignals {
		u += float64(len(s.re.FindAllStringIndex(text, -1))) * s.weight
	}
	if z == 0 && u == 0 {
		// Plain syllables are identical in both encodings; default to
		// standard Unicode.
		return 0
	}
	return z / (z + u)
}

// DetectEncoding classifies text as legacy when its Zawgyi probability
// exceeds threshold. The conventional document-level threshold is
// 0.95.
func DetectEncoding(text string, threshold float64) Encoding {
	if ZawgyiProbability(text) > threshold {
		return EncodingZawgyi
	}
	return EncodingUnicode
}
