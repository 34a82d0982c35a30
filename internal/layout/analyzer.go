// Package layout inspects a processed document for typographic and
// structural problems: page-numbering gaps, header-hierarchy
// violations, chapter-length anomalies, paragraph-formatting issues,
// spacing, and orphan/widow lines.
package layout

import (
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

// CheckID stamps every result this analyzer emits.
const CheckID = "layout_analysis"

const (
	linesPerPage     = 40
	minChapterWords  = 500
	shortParagraph   = 50
	longParagraph    = 1500
	indentTolerance  = 5.0
	bodyIndent       = 36.0
	minMyanmarLead   = 1.6
	maxMyanmarLead   = 2.2
	chapterDeviation = 2.0
)

// Analyzer runs the layout checks. It holds no per-document state, so
// a single instance is safe for concurrent use.
type Analyzer struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Analyzer {
	if log == nil {
		log = slog.Default()
	}
	return &Analyzer{log: log}
}

// Analyze runs every check against doc and returns the combined
// findings. Checks are independent and run in a fixed order, so the
// same document always yields the same result list.
func (a *Analyzer) Analyze(doc *document.Processed) []document.CheckResult {
	results := []document.CheckResult{}
	results = append(results, a.checkPageNumbering(doc)...)
	results = append(results, a.checkHeaderHierarchy(doc)...)
	results = append(results, a.checkChapters(doc)...)
	results = append(results, a.checkParagraphs(doc)...)
	results = append(results, a.checkSpacing(doc)...)
	results = append(results, a.checkOrphanWidow(doc)...)

	a.log.Debug("layout analysis complete",
		"document_id", doc.ID,
		"results", len(results))
	return results
}

func stamp(r document.CheckResult) document.CheckResult {
	r.ID = uuid.NewString()
	r.CheckID = CheckID
	return r
}

func contentLines(doc *document.Processed) []string {
	normalized := strings.ReplaceAll(doc.Content, "\r\n", "\n")
	return strings.Split(normalized, "\n")
}
