// Package pipeline assembles the document analysis pipeline: extract,
// chunk, infer structure, then run the spelling and layout analyzers.
// The Processor is the synchronous single-document core; the
// Orchestrator wraps it in an async job queue for the HTTP surface.
package pipeline

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/byte-squad-abac/manuscript/internal/chunker"
	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/extractor"
	"github.com/byte-squad-abac/manuscript/internal/layout"
	"github.com/byte-squad-abac/manuscript/internal/spellcheck"
	"github.com/byte-squad-abac/manuscript/internal/structure"
	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

// Processor runs the single-document pipeline. Each stage runs
// sequentially; concurrent Process calls on one Processor are safe
// because all per-document state is local.
type Processor struct {
	engine *spellcheck.Engine
	layout *layout.Analyzer
	log    *slog.Logger
}

func NewProcessor(engine *spellcheck.Engine, la *layout.Analyzer, log *slog.Logger) *Processor {
	if log == nil {
		log = slog.Default()
	}
	return &Processor{engine: engine, layout: la, log: log}
}

// Process extracts, chunks, and structures a document. Extraction and
// unsupported-type errors abort the call; later stages always succeed
// with possibly empty results.
func (p *Processor) Process(data []byte, fileType string, opts chunker.Options) (*document.Processed, error) {
	extraction, err := p.Extract(data, fileType)
	if err != nil {
		return nil, err
	}
	return p.assemble(extraction, opts), nil
}

// Extract resolves the extractor for fileType and runs it. Empty input
// fails before type dispatch since no extractor can do anything with
// zero bytes.
func (p *Processor) Extract(data []byte, fileType string) (*extractor.Extraction, error) {
	if len(data) == 0 {
		return nil, document.NewError(document.CodeProcessing, "empty file", nil)
	}
	ext, err := extractor.ForType(fileType)
	if err != nil {
		return nil, err
	}
	return ext.Extract(data)
}

func (p *Processor) assemble(extraction *extractor.Extraction, opts chunker.Options) *document.Processed {
	doc := &document.Processed{
		ID:       uuid.NewString(),
		Content:  extraction.Content,
		Chunks:   chunker.Chunk(extraction.Content, opts),
		Metadata: extraction.Metadata,
	}
	if extraction.Structure != nil {
		doc.Structure = *extraction.Structure
	} else {
		doc.Structure = structure.Extract(extraction.Content)
	}
	backfillChapterWords(doc)
	return doc
}

// Analyze runs both analyzers over a processed document. Finding
// nothing is a normal outcome; analyzers never fail.
func (p *Processor) Analyze(ctx context.Context, doc *document.Processed) (spelling, layoutIssues []document.CheckResult) {
	return p.engine.Check(ctx, doc.Content), p.layout.Analyze(doc)
}

// backfillChapterWords fills in chapter word counts by slicing content
// lines between consecutive chapter headers. Structure extraction
// leaves the counts at zero because it works header-by-header without
// the body text in hand.
func backfillChapterWords(doc *document.Processed) {
	chapters := doc.Structure.Chapters
	if len(chapters) == 0 {
		return
	}

	// Chapter boundaries come from the header lines the chapters were
	// derived from, matched up by title in order.
	starts := make([]int, 0, len(chapters))
	hi := 0
	for _, c := range chapters {
		found := -1
		for ; hi < len(doc.Structure.Headers); hi++ {
			if doc.Structure.Headers[hi].Text == c.Title {
				found = doc.Structure.Headers[hi].Line
				hi++
				break
			}
		}
		if found < 0 {
			return
		}
		starts = append(starts, found)
	}

	lines := strings.Split(strings.ReplaceAll(doc.Content, "\r\n", "\n"), "\n")
	for i := range chapters {
		from := starts[i] // line numbers are 1-based; skip the header itself
		to := len(lines)
		if i+1 < len(starts) {
			to = starts[i+1] - 1
		}
		if from > len(lines) {
			continue
		}
		if to > len(lines) {
			to = len(lines)
		}
		words := 0
		for _, line := range lines[from:to] {
			words += textutil.CountWords(line)
		}
		chapters[i].WordCount = words
	}
}
