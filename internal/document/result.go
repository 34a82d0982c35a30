package document

// Severity grades a finding.
type Severity string

const (
	SeverityError      Severity = "error"
	SeverityWarning    Severity = "warning"
	SeveritySuggestion Severity = "suggestion"
)

// Issue categories emitted by the spelling engine.
const (
	CategoryZawgyiUnicode = "zawgyi_unicode"
	CategoryMisspelling   = "misspelling"
	CategoryUnknownWord   = "unknown_word"
	CategoryCommonMistake = "common_mistake"
	CategoryEncoding      = "encoding"
)

// Issue categories emitted by the layout analyzer.
const (
	CategoryPageNumbering   = "page_numbering"
	CategoryHeaderHierarchy = "header_hierarchy"
	CategoryChapterLength   = "chapter_length"
	CategoryChapterNumber   = "chapter_numbering"
	CategoryParagraphFormat = "paragraph_format"
	CategorySpacing         = "spacing"
	CategoryOrphanWidow     = "orphan_widow"
)

// CheckResult is a single finding from an analyzer. Results are
// append-only: they reference the document they were derived from but
// never mutate it.
type CheckResult struct {
	ID           string         `json:"id"`
	CheckID      string         `json:"check_id,omitempty"`
	Category     string         `json:"category"`
	Severity     Severity       `json:"severity"`
	PageNumber   int            `json:"page_number,omitempty"`
	LineNumber   int            `json:"line_number,omitempty"`
	Issue        string         `json:"issue"`
	OriginalText string         `json:"original_text,omitempty"`
	Suggestion   string         `json:"suggestion,omitempty"`
	Confidence   float64        `json:"confidence"`
	Metadata     map[string]any `json:"metadata,omitempty"`
}

// DictionaryEntry is one dictionary row, indexed by both encodings of
// the word's surface form.
type DictionaryEntry struct {
	ID           string   `json:"id"`
	Word         string   `json:"word"`
	WordUnicode  string   `json:"word_unicode,omitempty"`
	WordZawgyi   string   `json:"word_zawgyi,omitempty"`
	Frequency    int      `json:"frequency"`
	IsValid      bool     `json:"is_valid"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// MistakePair is a known incorrect spelling and its correction.
type MistakePair struct {
	Incorrect string `json:"incorrect"`
	Correct   string `json:"correct"`
}
