package chunker

import (
	"fmt"
	"strings"
	"testing"

	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

func sentencesText(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "This is sentence number %d of the manuscript. ", i)
	}
	return strings.TrimSpace(b.String())
}

func TestChunk_EmptyContent(t *testing.T) {
	if got := Chunk("   ", DefaultOptions()); got != nil {
		t.Errorf("expected nil for blank content, got %v", got)
	}
}

func TestChunk_SingleSmallChunk(t *testing.T) {
	chunks := Chunk("One sentence only.", DefaultOptions())
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Index != 0 {
		t.Errorf("index = %d, want 0", chunks[0].Index)
	}
	if chunks[0].Tokens != textutil.EstimateTokens(chunks[0].Content) {
		t.Error("token count must match content estimate")
	}
	if chunks[0].ID == "" {
		t.Error("chunk must carry an id")
	}
}

func TestChunk_IndicesStrictlyIncreasing(t *testing.T) {
	chunks := Chunk(sentencesText(200), Options{MaxTokens: 60, Overlap: 10, Mode: ModeTokenGreedy})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		if chunks[i].Index <= chunks[i-1].Index {
			t.Fatalf("indices not strictly increasing at %d: %d then %d",
				i, chunks[i-1].Index, chunks[i].Index)
		}
	}
}

func TestChunk_TokenBudgetRespected(t *testing.T) {
	opts := Options{MaxTokens: 60, Overlap: 0, Mode: ModeTokenGreedy}
	for _, c := range Chunk(sentencesText(200), opts) {
		if c.Tokens > opts.MaxTokens {
			t.Errorf("chunk %d exceeds budget: %d > %d (no oversized sentence present)",
				c.Index, c.Tokens, opts.MaxTokens)
		}
	}
}

func TestChunk_CoverageLosslessWithoutOverlap(t *testing.T) {
	content := sentencesText(120)
	chunks := Chunk(content, Options{MaxTokens: 50, Overlap: 0, Mode: ModeTokenGreedy})

	var parts []string
	for _, c := range chunks {
		parts = append(parts, c.Content)
	}
	got := strings.Join(parts, " ")
	want := strings.Join(textutil.SplitSentences(content), " ")
	if got != want {
		t.Error("concatenated chunks do not reproduce the content")
	}
}

func TestChunk_OverlapCarriedIntoNextChunk(t *testing.T) {
	chunks := Chunk(sentencesText(100), Options{MaxTokens: 60, Overlap: 15, Mode: ModeTokenGreedy})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		prevWords := strings.Fields(chunks[i-1].Content)
		if len(prevWords) == 0 {
			continue
		}
		lastWord := prevWords[len(prevWords)-1]
		if !strings.HasPrefix(chunks[i].Content, firstOverlapWord(chunks[i-1].Content, 15)) {
			t.Errorf("chunk %d does not start with overlap from chunk %d", i, i-1)
		}
		if !strings.Contains(chunks[i].Content, lastWord) {
			t.Errorf("chunk %d missing trailing context %q from chunk %d", i, lastWord, i-1)
		}
	}
}

func firstOverlapWord(text string, overlap int) string {
	carry := trailingTokens(text, overlap)
	words := strings.Fields(carry)
	if len(words) == 0 {
		return ""
	}
	return words[0]
}

func TestChunk_OversizedSentenceKeptWhole(t *testing.T) {
	huge := "word " + strings.Repeat("and word ", 200) + "end."
	content := "Short lead-in. " + huge + " Short tail."
	chunks := Chunk(content, Options{MaxTokens: 40, Overlap: 0, Mode: ModeTokenGreedy})

	found := false
	for _, c := range chunks {
		if strings.Contains(c.Content, "end.") && strings.Contains(c.Content, "and word and word") {
			found = true
			if !strings.Contains(c.Content, strings.TrimSpace(huge)) {
				t.Error("oversized sentence was split across chunks")
			}
		}
	}
	if !found {
		t.Fatal("oversized sentence missing from output")
	}
}

func TestChunk_FinalPartialBufferFlushed(t *testing.T) {
	content := sentencesText(11) // does not divide evenly into the budget
	chunks := Chunk(content, Options{MaxTokens: 50, Overlap: 0, Mode: ModeTokenGreedy})
	last := chunks[len(chunks)-1]
	if !strings.Contains(last.Content, "number 10") {
		t.Errorf("final sentences lost: %q", last.Content)
	}
}

func TestChunk_ParagraphMode(t *testing.T) {
	var paras []string
	for i := 0; i < 12; i++ {
		paras = append(paras, fmt.Sprintf("Paragraph %d sentence one. Paragraph %d sentence two.", i, i))
	}
	content := strings.Join(paras, "\n\n")
	chunks := Chunk(content, Options{MaxTokens: 30, Overlap: 1, Mode: ModeParagraph})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	// Paragraphs are atomic: each paragraph's two sentences stay together.
	for _, c := range chunks {
		if strings.Contains(c.Content, "sentence one.") &&
			!strings.Contains(c.Content, "sentence two.") {
			t.Errorf("paragraph split mid-way: %q", c.Content)
		}
	}
}

func TestChunk_SentenceModeOverlapBySentence(t *testing.T) {
	content := sentencesText(40)
	chunks := Chunk(content, Options{MaxTokens: 50, Overlap: 2, Mode: ModeSentence})
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i := 1; i < len(chunks); i++ {
		prev := textutil.SplitSentences(chunks[i-1].Content)
		cur := textutil.SplitSentences(chunks[i].Content)
		if len(prev) < 2 || len(cur) < 2 {
			continue
		}
		if cur[0] != prev[len(prev)-2] || cur[1] != prev[len(prev)-1] {
			t.Errorf("chunk %d should open with the 2 trailing sentences of chunk %d", i, i-1)
		}
	}
}

func TestChunk_MyanmarContentChunks(t *testing.T) {
	sentence := strings.Repeat("မြန်မာစာ", 6) + "။"
	content := strings.Repeat(sentence+" ", 20)
	chunks := Chunk(content, Options{MaxTokens: 60, Overlap: 0, Mode: ModeTokenGreedy})
	if len(chunks) < 2 {
		t.Fatalf("expected Myanmar text to split into multiple chunks, got %d", len(chunks))
	}
	for _, c := range chunks {
		if c.Tokens > 60+textutil.EstimateTokens(sentence) {
			t.Errorf("chunk %d grossly over budget: %d tokens", c.Index, c.Tokens)
		}
	}
}
