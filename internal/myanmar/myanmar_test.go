package myanmar

import (
	"reflect"
	"strings"
	"testing"
)

// မြန်မာ in standard Unicode: MA + medial RA + NA + asat + MA + AA.
const wordMyanmaUni = "မြန်မာ"

func TestSegmentSyllables_Unicode(t *testing.T) {
	got := SegmentSyllables(wordMyanmaUni)
	want := []string{"မြန်", "မာ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSegmentSyllables_StackedConsonant(t *testing.T) {
	// စက္ကူ (paper): the virama keeps the stacked KA in the first
	// syllable.
	got := SegmentSyllables("စက္ကူ")
	if len(got) != 1 {
		t.Errorf("stacked consonant split apart: %q", got)
	}
}

func TestSegmentSyllables_MixedScript(t *testing.T) {
	got := SegmentSyllables("abc မာ 123")
	want := []string{"abc", "မာ", "123"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSegmentSyllables_PunctuationStandsAlone(t *testing.T) {
	got := SegmentSyllables("မာ။")
	want := []string{"မာ", "။"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestZawgyiProbability_PlainLatin(t *testing.T) {
	if p := ZawgyiProbability("hello world"); p != 0 {
		t.Errorf("expected 0 for Latin text, got %f", p)
	}
}

func TestZawgyiProbability_UnicodeText(t *testing.T) {
	if p := ZawgyiProbability(wordMyanmaUni); p > 0.5 {
		t.Errorf("standard Unicode text scored as legacy: %f", p)
	}
}

func TestZawgyiProbability_LegacyText(t *testing.T) {
	// Legacy rendering of the same word: medial RA typed before the
	// consonant, asat at 1039, plus a legacy-only glyph variant.
	legacy := "ျမန္မာ"
	if p := ZawgyiProbability(legacy); p <= 0.5 {
		t.Errorf("legacy text scored as standard: %f", p)
	}
}

func TestDetectEncoding_Threshold(t *testing.T) {
	legacy := "ေျမာက္" // E-vowel first, legacy asat
	if enc := DetectEncoding(legacy, 0.95); enc != EncodingZawgyi {
		t.Errorf("expected zawgyi, got %s (p=%f)", enc, ZawgyiProbability(legacy))
	}
	if enc := DetectEncoding(wordMyanmaUni, 0.95); enc != EncodingUnicode {
		t.Errorf("expected unicode, got %s", enc)
	}
}

func TestToUnicode_EVowelReorder(t *testing.T) {
	// Legacy "ေက" (E typed first) becomes "ကေ".
	got := ToUnicode("ေက")
	if got != "ကေ" {
		t.Errorf("got %q, want %q", got, "ကေ")
	}
}

func TestToUnicode_MedialShift(t *testing.T) {
	// Legacy medial RA before consonant + legacy asat.
	got := ToUnicode("ျမန္")
	want := "မြန်"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestToUnicode_StackGlyph(t *testing.T) {
	// Legacy stacked-KA glyph expands to virama + KA.
	got := ToUnicode("စၠူ")
	want := "စ္ကူ"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRoundTrip_ClassificationStable(t *testing.T) {
	legacyInputs := []string{
		"ေျမာက္",
		"ျမန္မာစာ",
	}
	for _, in := range legacyInputs {
		uni := ToUnicode(in)
		if ZawgyiProbability(uni) > 0.5 {
			t.Errorf("converted text still detected legacy: %q -> %q", in, uni)
		}
		back := ToZawgyi(uni)
		if ZawgyiProbability(back) <= 0.5 {
			t.Errorf("round trip lost legacy classification: %q -> %q -> %q", in, uni, back)
		}
	}
}

func TestSegmentWords_ParticleSplit(t *testing.T) {
	// စာအုပ်ကိုဖတ်သည် -> book + object marker + read + subject marker.
	text := "စာအုပ်ကိုဖတ်သည်"
	got := SegmentWords(text)
	foundKo := false
	foundThi := false
	for _, w := range got {
		if w == "ကို" {
			foundKo = true
		}
		if w == "သည်" {
			foundThi = true
		}
	}
	if !foundKo || !foundThi {
		t.Errorf("particles not isolated: %q", got)
	}
	if len(got) < 4 {
		t.Errorf("expected at least 4 tokens, got %q", got)
	}
}

func TestSegmentWords_SplitsOnSectionMarks(t *testing.T) {
	text := "မာ။စာ၊ပေ"
	got := SegmentWords(text)
	for _, w := range got {
		if strings.ContainsRune(w, MyanmarSectionMark) || strings.ContainsRune(w, MyanmarLittleSection) {
			t.Errorf("punctuation leaked into word %q", w)
		}
	}
	if len(got) != 3 {
		t.Errorf("expected 3 words, got %q", got)
	}
}

func TestSegmentWords_LatinPassThrough(t *testing.T) {
	got := SegmentWords("hello world")
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}
