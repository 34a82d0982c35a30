package textutil

import (
	"reflect"
	"strings"
	"testing"
)

func TestEstimateTokens_LatinText(t *testing.T) {
	// 8 non-space chars at 4 chars/token -> 2 tokens.
	if got := EstimateTokens("ab cd ef gh"); got != 2 {
		t.Errorf("expected 2 tokens, got %d", got)
	}
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("expected 0 tokens for empty text, got %d", got)
	}
	if got := EstimateTokens("a"); got != 1 {
		t.Errorf("expected minimum 1 token, got %d", got)
	}
}

func TestEstimateTokens_MyanmarWeighsDenser(t *testing.T) {
	my := strings.Repeat("မြန်", 10) // 40 Myanmar runes
	en := strings.Repeat("abcd", 10) // 40 Latin runes
	if EstimateTokens(my) <= EstimateTokens(en) {
		t.Errorf("Myanmar text should count more tokens than same-length Latin: %d vs %d",
			EstimateTokens(my), EstimateTokens(en))
	}
	// 40 runes at 2 chars/token.
	if got := EstimateTokens(my); got != 20 {
		t.Errorf("expected 20 tokens for 40 Myanmar runes, got %d", got)
	}
}

func TestSplitSentences_LatinEnders(t *testing.T) {
	got := SplitSentences("First one. Second one! Third? Trailing fragment")
	want := []string{"First one.", "Second one!", "Third?", "Trailing fragment"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSplitSentences_DecimalNotSplit(t *testing.T) {
	got := SplitSentences("Pi is 3.14 roughly. Yes.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "Pi is 3.14 roughly." {
		t.Errorf("decimal was split: %q", got[0])
	}
}

func TestSplitSentences_MyanmarSectionMark(t *testing.T) {
	got := SplitSentences("မင်္ဂလာပါ။နေကောင်းလား။")
	if len(got) != 2 {
		t.Fatalf("expected 2 Myanmar sentences, got %d: %v", len(got), got)
	}
	for i, s := range got {
		if !strings.HasSuffix(s, "။") {
			t.Errorf("sentence %d should end with section mark: %q", i, s)
		}
	}
}

func TestEndsSentence(t *testing.T) {
	cases := []struct {
		line string
		want bool
	}{
		{"It ends here.", true},
		{"Really?", true},
		{"ပါ။", true},
		{`He said "stop."`, true},
		{"no terminator", false},
		{"", false},
	}
	for _, c := range cases {
		if got := EndsSentence(c.line); got != c.want {
			t.Errorf("EndsSentence(%q) = %v, want %v", c.line, got, c.want)
		}
	}
}

func TestSplitParagraphs(t *testing.T) {
	got := SplitParagraphs("one\nstill one\n\ntwo\r\n\r\nthree\n\n\n")
	want := []string{"one\nstill one", "two", "three"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDetectLanguages(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"hello world", []string{"en"}},
		{"မြန်မာ", []string{"my"}},
		{"hello မြန်မာ", []string{"my", "en"}},
		{"12345 !!!", []string{"unknown"}},
		{"", []string{"unknown"}},
	}
	for _, c := range cases {
		if got := DetectLanguages(c.text); !reflect.DeepEqual(got, c.want) {
			t.Errorf("DetectLanguages(%q) = %v, want %v", c.text, got, c.want)
		}
	}
}

func TestCountWords_Mixed(t *testing.T) {
	if got := CountWords("two words"); got != 2 {
		t.Errorf("expected 2 words, got %d", got)
	}
	// 9 Myanmar runes in one field -> ~3 words.
	my := "မြန်မာစာပေ"
	if got := CountWords(my); got < 2 {
		t.Errorf("expected Myanmar run to count as multiple words, got %d", got)
	}
	if got := CountWords(""); got != 0 {
		t.Errorf("expected 0 words for empty text, got %d", got)
	}
}
