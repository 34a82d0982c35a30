package pipeline

import (
	"github.com/byte-squad-abac/manuscript/internal/document"
)

// ResultSummary counts findings by severity.
type ResultSummary struct {
	Errors      int `json:"errors"`
	Warnings    int `json:"warnings"`
	Suggestions int `json:"suggestions"`
}

// AnalysisReport is the aggregate a caller gets back for one document:
// the document facts plus both analyzers' findings.
type AnalysisReport struct {
	DocumentID  string            `json:"document_id"`
	Metadata    document.Metadata `json:"metadata"`
	ChunkCount  int               `json:"chunk_count"`
	TotalTokens int               `json:"total_tokens"`

	Spelling []document.CheckResult `json:"spelling"`
	Layout   []document.CheckResult `json:"layout"`
	Summary  ResultSummary          `json:"summary"`

	// DictionaryDegraded is set when the spelling results were produced
	// against the builtin word list because the configured dictionary
	// source failed to load.
	DictionaryDegraded bool `json:"dictionary_degraded,omitempty"`
}

// BuildReport assembles the report for one processed document. The
// result slices are never nil so the serialized report always carries
// both lists.
func BuildReport(doc *document.Processed, spelling, layoutIssues []document.CheckResult, degraded bool) *AnalysisReport {
	if spelling == nil {
		spelling = []document.CheckResult{}
	}
	if layoutIssues == nil {
		layoutIssues = []document.CheckResult{}
	}

	report := &AnalysisReport{
		DocumentID:         doc.ID,
		Metadata:           doc.Metadata,
		ChunkCount:         len(doc.Chunks),
		Spelling:           spelling,
		Layout:             layoutIssues,
		DictionaryDegraded: degraded,
	}
	for _, c := range doc.Chunks {
		report.TotalTokens += c.Tokens
	}
	for _, r := range spelling {
		report.Summary.add(r.Severity)
	}
	for _, r := range layoutIssues {
		report.Summary.add(r.Severity)
	}
	return report
}

func (s *ResultSummary) add(sev document.Severity) {
	switch sev {
	case document.SeverityError:
		s.Errors++
	case document.SeverityWarning:
		s.Warnings++
	case document.SeveritySuggestion:
		s.Suggestions++
	}
}
