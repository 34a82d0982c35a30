package myanmar

import (
	"regexp"
	"strings"
)

// Legacy glyph codes for stacked consonants, mapped to the standard
// virama+consonant encoding. The legacy font allocated a display glyph
// per stack instead of using the virama model.
var legacyStacks = map[rune]string{
	0x1060: "္က",
	0x1061: "္ခ",
	0x1062: "္ဂ",
	0x1063: "္ဃ",
	0x1065: "္စ",
	0x1066: "္ဆ",
	0x1067: "္ဆ",
	0x1068: "္ဇ",
	0x1069: "္ဈ",
	0x106C: "္ဋ",
	0x106D: "္ဌ",
	0x106E: "ဍ္ဍ",
	0x106F: "ဍ္ဎ",
	0x1070: "္ဏ",
	0x1071: "္တ",
	0x1072: "္တ",
	0x1073: "္ထ",
	0x1074: "္ထ",
	0x1075: "္ဒ",
	0x1076: "္ဓ",
	0x1077: "္န",
	0x1078: "္ပ",
	0x1079: "္ဖ",
	0x107A: "္ဗ",
	0x107C: "္မ",
	0x1085: "္လ",
	0x1093: "္ဘ",
	0x1096: "္တွ",
}

// inverseStacks is built once from legacyStacks for the reverse
// conversion. Multi-rune expansions with a unique inverse win; for
// ambiguous pairs (1066/1067, 1071/1072, 1073/1074) the lower code
// point is used.
var inverseStacks = func() *strings.Replacer {
	seen := map[string]rune{}
	for glyph, uni := range legacyStacks {
		if prev, ok := seen[uni]; !ok || glyph < prev {
			seen[uni] = glyph
		}
	}
	var pairs []string
	for uni, glyph := range seen {
		pairs = append(pairs, uni, string(glyph))
	}
	return strings.NewReplacer(pairs...)
}()

var (
	reLegacyKinzi   = regexp.MustCompile(`([\x{1000}-\x{1021}])\x{1064}`)
	reLegacyKinziI  = regexp.MustCompile(`([\x{1000}-\x{1021}])\x{108B}`)
	reLegacyKinziII = regexp.MustCompile(`([\x{1000}-\x{1021}])\x{108C}`)
	reLegacyKinziAn = regexp.MustCompile(`([\x{1000}-\x{1021}])\x{108D}`)

	reCollapseE = regexp.MustCompile(`\x{1031}+`)
	reReorderZU = regexp.MustCompile(`(\x{1031}?)(\x{103C}*)([\x{1000}-\x{102A}])`)

	reUnicodeKinzi = regexp.MustCompile(`\x{1004}\x{103A}\x{1039}([\x{1000}-\x{1021}])`)
	reReorderUZE   = regexp.MustCompile(`([\x{1000}-\x{102A}])((?:\x{1039}[\x{1000}-\x{1021}])*)([\x{103B}-\x{103E}]*)\x{1031}`)
	reReorderUZRa  = regexp.MustCompile(`([\x{1000}-\x{102A}])((?:\x{1039}[\x{1000}-\x{1021}])*)\x{103C}`)
)

// ToUnicode converts legacy-encoded text to standard Unicode. The
// conversion is rule-based and best-effort: glyph codes are remapped,
// stacked-consonant glyphs expanded, the kinzi glyph re-attached in
// logical order, and the visually-ordered vowel E / medial RA moved
// after their consonant. Output is NFC-normalized.
func ToUnicode(text string) string {
	// Kinzi glyphs carry the order mark (and sometimes a vowel) after
	// the base; logical order puts the mark sequence first.
	text = reLegacyKinzi.ReplaceAllString(text, "င်္$1")
	text = reLegacyKinziI.ReplaceAllString(text, "င်္$1ိ")
	text = reLegacyKinziII.ReplaceAllString(text, "င်္$1ီ")
	text = reLegacyKinziAn.ReplaceAllString(text, "င်္$1ံ")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if s, ok := legacyStacks[r]; ok {
			b.WriteString(s)
			continue
		}
		switch {
		case r == 0x1033:
			b.WriteRune(0x102F)
		case r == 0x1034:
			b.WriteRune(0x1030)
		case r == 0x1039: // legacy asat
			b.WriteRune(0x103A)
		case r == 0x103A: // legacy medial YA
			b.WriteRune(0x103B)
		case r == 0x103B: // legacy medial RA
			b.WriteRune(0x103C)
		case r == 0x103C: // legacy medial WA
			b.WriteRune(0x103D)
		case r == 0x103D: // legacy medial HA
			b.WriteRune(0x103E)
		case r >= 0x107E && r <= 0x1084: // medial RA glyph variants
			b.WriteRune(0x103C)
		case r == 0x105A:
			b.WriteString("ါ်")
		case r == 0x1086:
			b.WriteRune(0x103F)
		case r == 0x1088:
			b.WriteString("ှု")
		case r == 0x1089:
			b.WriteString("ှူ")
		case r == 0x108A:
			b.WriteString("ွှ")
		case r == 0x1094 || r == 0x1095:
			b.WriteRune(0x1037)
		case r == 0x106A:
			b.WriteRune(0x1009)
		case r == 0x106B:
			b.WriteRune(0x100A)
		case r == 0x1090:
			b.WriteRune(0x101B)
		default:
			b.WriteRune(r)
		}
	}
	out := reCollapseE.ReplaceAllString(b.String(), "ေ")

	// Legacy text stores vowel E and medial RA before the consonant;
	// move them after. Every RA still preceding a base at this point
	// came from the visual ordering.
	out = reReorderZU.ReplaceAllString(out, "$3$2$1")

	return Normalize(out)
}

// ToZawgyi converts standard Unicode text to the legacy encoding,
// inverting ToUnicode. It is lossy for stacks without a dedicated
// legacy glyph.
func ToZawgyi(text string) string {
	text = Normalize(text)
	text = reUnicodeKinzi.ReplaceAllString(text, "$1ၤ")

	// Visual order: vowel E and medial RA precede the consonant
	// cluster in legacy text.
	text = reReorderUZE.ReplaceAllStringFunc(text, func(m string) string {
		g := reReorderUZE.FindStringSubmatch(m)
		base, stack, medials := g[1], g[2], g[3]
		ra := ""
		if strings.ContainsRune(medials, 0x103C) {
			ra = "ြ"
			medials = strings.ReplaceAll(medials, "ြ", "")
		}
		return "ေ" + ra + base + stack + medials
	})
	text = reReorderUZRa.ReplaceAllString(text, "ြ$1$2")

	// Stacks first, then the single-rune glyph shifts.
	text = inverseStacks.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch r {
		case 0x103A: // asat
			b.WriteRune(0x1039)
		case 0x103B: // medial YA
			b.WriteRune(0x103A)
		case 0x103C: // medial RA
			b.WriteRune(0x103B)
		case 0x103D: // medial WA
			b.WriteRune(0x103C)
		case 0x103E: // medial HA
			b.WriteRune(0x103D)
		case 0x103F:
			b.WriteRune(0x1086)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Convert translates text into the requested encoding, assuming it is
// currently in the other one.
func Convert(text string, to Encoding) string {
	if to == EncodingZawgyi {
		return ToZawgyi(text)
	}
	return ToUnicode(text)
}
