// Package chunker splits extracted manuscript content into
// bounded-size chunks for per-chunk analysis.
package chunker

import (
	"strings"

	"github.com/google/uuid"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

// Mode selects the chunk closure granularity.
type Mode string

const (
	// ModeTokenGreedy accumulates sentences against the token budget
	// and carries overlap as a trailing token window.
	ModeTokenGreedy Mode = "token"
	// ModeSentence accumulates sentences and carries overlap as a
	// sentence count.
	ModeSentence Mode = "sentence"
	// ModeParagraph accumulates whole paragraphs and carries overlap
	// as a sentence count.
	ModeParagraph Mode = "paragraph"
)

// Options controls chunking. MaxTokens is a soft ceiling: a single
// sentence over the budget is kept whole, never split.
type Options struct {
	MaxTokens int
	Overlap   int
	Mode      Mode
}

// DefaultOptions returns the pipeline defaults.
func DefaultOptions() Options {
	return Options{
		MaxTokens: 500,
		Overlap:   50,
		Mode:      ModeTokenGreedy,
	}
}

func (o *Options) normalize() {
	if o.MaxTokens <= 0 {
		o.MaxTokens = 500
	}
	if o.Overlap < 0 {
		o.Overlap = 0
	}
	if o.Mode == "" {
		o.Mode = ModeTokenGreedy
	}
}

// charsPerPage mirrors the extractor's page estimation divisor so
// chunk page hints line up with document metadata.
const charsPerPage = 3000

// Chunk splits content into ordered chunks. Indices are strictly
// increasing; the final partial buffer is always flushed even when
// under the budget.
func Chunk(content string, opts Options) []document.Chunk {
	opts.normalize()
	content = strings.TrimSpace(content)
	if content == "" {
		return nil
	}

	switch opts.Mode {
	case ModeParagraph:
		return chunkUnits(textutil.SplitParagraphs(content), "\n\n", opts)
	case ModeSentence:
		return chunkUnits(textutil.SplitSentences(content), " ", opts)
	default:
		return chunkTokenGreedy(content, opts)
	}
}

// chunkTokenGreedy accumulates sentences into a buffer, closing the
// chunk when the next sentence would exceed the token budget, then
// seeding the next buffer with the trailing Overlap tokens' worth of
// words from the closed chunk.
func chunkTokenGreedy(content string, opts Options) []document.Chunk {
	sentences := textutil.SplitSentences(content)

	var (
		chunks  []document.Chunk
		buf     []string
		tokens  int
		offset  int // runes of owned (non-overlap) content emitted so far
		overlap string
	)

	flush := func() {
		text := strings.Join(buf, " ")
		chunks = append(chunks, newChunk(len(chunks), text, offset))
		owned := strings.TrimPrefix(text, overlap)
		offset += len([]rune(owned))
		overlap = trailingTokens(text, opts.Overlap)
		buf = buf[:0]
		tokens = 0
		if overlap != "" {
			buf = append(buf, overlap)
			tokens = textutil.EstimateTokens(overlap)
		}
	}

	for _, sent := range sentences {
		st := textutil.EstimateTokens(sent)
		if tokens+st > opts.MaxTokens && len(buf) > 0 && !onlyOverlap(buf, overlap) {
			flush()
		}
		buf = append(buf, sent)
		tokens += st
	}
	if len(buf) > 0 && !onlyOverlap(buf, overlap) {
		text := strings.Join(buf, " ")
		chunks = append(chunks, newChunk(len(chunks), text, offset))
	}
	return chunks
}

// chunkUnits is the closure loop shared by sentence and paragraph
// modes: units are added atomically against the token budget and
// overlap is carried as a count of trailing sentences.
func chunkUnits(units []string, sep string, opts Options) []document.Chunk {
	var (
		chunks []document.Chunk
		buf    []string
		tokens int
		offset int
		seeded int // sentences carried from the previous chunk
	)

	flush := func() {
		text := strings.Join(buf, sep)
		chunks = append(chunks, newChunk(len(chunks), text, offset))
		owned := buf[seeded:]
		offset += len([]rune(strings.Join(owned, sep)))

		carry := trailingSentences(text, opts.Overlap)
		buf = buf[:0]
		tokens = 0
		seeded = 0
		if len(carry) > 0 {
			buf = append(buf, carry...)
			seeded = len(carry)
			tokens = textutil.EstimateTokens(strings.Join(carry, sep))
		}
	}

	for _, unit := range units {
		ut := textutil.EstimateTokens(unit)
		if tokens+ut > opts.MaxTokens && len(buf) > seeded {
			flush()
		}
		buf = append(buf, unit)
		tokens += ut
	}
	if len(buf) > seeded {
		text := strings.Join(buf, sep)
		chunks = append(chunks, newChunk(len(chunks), text, offset))
	}
	return chunks
}

func newChunk(index int, text string, offset int) document.Chunk {
	return document.Chunk{
		ID:      uuid.NewString(),
		Index:   index,
		Content: text,
		Tokens:  textutil.EstimateTokens(text),
		Metadata: document.ChunkMetadata{
			Page: offset/charsPerPage + 1,
		},
	}
}

// onlyOverlap reports whether the buffer holds nothing but the seeded
// overlap text, in which case closing it would emit a duplicate.
func onlyOverlap(buf []string, overlap string) bool {
	return overlap != "" && len(buf) == 1 && buf[0] == overlap
}

// trailingTokens returns the last n tokens' worth of words of text,
// never the whole text.
func trailingTokens(text string, n int) string {
	if n <= 0 {
		return ""
	}
	words := strings.Fields(text)
	var (
		taken  []string
		tokens int
	)
	for i := len(words) - 1; i >= 0; i-- {
		wt := textutil.EstimateTokens(words[i])
		if tokens+wt > n {
			break
		}
		taken = append([]string{words[i]}, taken...)
		tokens += wt
	}
	if len(taken) == len(words) {
		return ""
	}
	return strings.Join(taken, " ")
}

// trailingSentences returns up to n trailing sentences of text, never
// all of them.
func trailingSentences(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	sentences := textutil.SplitSentences(text)
	if len(sentences) <= n {
		if len(sentences) <= 1 {
			return nil
		}
		n = len(sentences) - 1
	}
	return sentences[len(sentences)-n:]
}
