// Package spellcheck implements the Myanmar spelling engine: encoding
// detection and normalization, word validation against a dictionary,
// suggestion generation, and the common-mistake scan.
package spellcheck

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/byte-squad-abac/manuscript/internal/dictstore"
	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/myanmar"
	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

// CheckID stamps every result this engine emits.
const CheckID = "myanmar_spelling"

// Options are the engine's tunable heuristics. The defaults carry
// over from the original calibration; deployments may adjust them
// against a labeled corpus.
type Options struct {
	// DocumentZawgyiThreshold classifies whole input as legacy-encoded.
	DocumentZawgyiThreshold float64
	// WordZawgyiThreshold classifies a flagged word as an encoding
	// artifact rather than a misspelling.
	WordZawgyiThreshold float64
	// MaxEditDistance bounds dictionary suggestions by Levenshtein
	// distance.
	MaxEditDistance int
	// MaxSuggestions caps the merged suggestion list per word.
	MaxSuggestions int
	// MinWordLength: shorter words are skipped as likely particles.
	MinWordLength int
}

// DefaultOptions returns the calibration defaults.
func DefaultOptions() Options {
	return Options{
		DocumentZawgyiThreshold: 0.95,
		WordZawgyiThreshold:     0.5,
		MaxEditDistance:         2,
		MaxSuggestions:          5,
		MinWordLength:           3,
	}
}

func (o *Options) normalize() {
	if o.DocumentZawgyiThreshold == 0 {
		o.DocumentZawgyiThreshold = 0.95
	}
	if o.WordZawgyiThreshold == 0 {
		o.WordZawgyiThreshold = 0.5
	}
	if o.MaxEditDistance == 0 {
		o.MaxEditDistance = 2
	}
	if o.MaxSuggestions == 0 {
		o.MaxSuggestions = 5
	}
	if o.MinWordLength == 0 {
		o.MinWordLength = 3
	}
}

// Engine is the spell checker. Construct one per process with New,
// call Initialize once (or let the first Check do it), then share it:
// after initialization the dictionary is read-mostly and Check is
// safe for concurrent use.
type Engine struct {
	source dictstore.Source
	opts   Options
	log    *slog.Logger

	initOnce sync.Once

	mu           sync.RWMutex
	dict         map[string]document.DictionaryEntry
	alternatives map[string][]string // misspelling -> corrections
	mistakes     []document.MistakePair
	degraded     bool
}

// New builds an engine over a dictionary source. A nil source starts
// directly in degraded (builtin-dictionary) mode.
func New(source dictstore.Source, opts Options, log *slog.Logger) *Engine {
	opts.normalize()
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		source:       source,
		opts:         opts,
		log:          log,
		dict:         make(map[string]document.DictionaryEntry),
		alternatives: make(map[string][]string),
	}
}

// Initialize loads the dictionary and common-mistake table. It runs
// at most once per engine; failures degrade to the builtin word list
// and never surface to the checking pipeline.
func (e *Engine) Initialize(ctx context.Context) {
	e.initOnce.Do(func() { e.load(ctx) })
}

func (e *Engine) load(ctx context.Context) {
	var (
		entries []document.DictionaryEntry
		pairs   []document.MistakePair
	)
	if e.source != nil {
		var err error
		entries, err = e.source.ValidWords(ctx)
		if err != nil {
			e.log.Warn("dictionary load failed, continuing degraded", "error", err)
		}
		pairs, err = e.source.Mistakes(ctx)
		if err != nil {
			e.log.Warn("common-mistake load failed", "error", err)
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if len(entries) == 0 {
		e.degraded = true
		builtin, _ := dictstore.Builtin().ValidWords(ctx)
		entries = builtin
		e.log.Info("using builtin fallback dictionary", "words", len(entries))
	}
	for _, entry := range entries {
		e.indexEntryLocked(entry)
	}
	e.mistakes = pairs
}

// indexEntryLocked registers an entry under every surface form it
// carries, and its alternatives in the reverse index.
func (e *Engine) indexEntryLocked(entry document.DictionaryEntry) {
	for _, form := range []string{entry.Word, entry.WordUnicode, entry.WordZawgyi} {
		if form != "" {
			e.dict[myanmar.Normalize(form)] = entry
		}
	}
	correct := entry.WordUnicode
	if correct == "" {
		correct = entry.Word
	}
	for _, alt := range entry.Alternatives {
		alt = myanmar.Normalize(alt)
		e.alternatives[alt] = append(e.alternatives[alt], correct)
	}
}

// Degraded reports whether the engine fell back to the builtin word
// list.
func (e *Engine) Degraded() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.degraded
}

// AddToDictionary registers a word at runtime. With valid=true the
// word stops being flagged by subsequent checks.
func (e *Engine) AddToDictionary(word string, valid bool) {
	word = myanmar.Normalize(word)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.dict[word] = document.DictionaryEntry{
		ID:          uuid.NewString(),
		Word:        word,
		WordUnicode: word,
		IsValid:     valid,
		Frequency:   1,
	}
}

// TextInfo is the derived view of one checked text. It is computed
// fresh per invocation; encoding detection is text-dependent, so it
// is never cached across calls.
type TextInfo struct {
	Original  string
	Unicode   string
	Encoding  myanmar.Encoding
	Syllables []string
	Words     []string
}

// Inspect runs detection, normalization, and segmentation without
// validity checking.
func (e *Engine) Inspect(text string) TextInfo {
	info := TextInfo{Original: text, Encoding: myanmar.EncodingUnicode}
	if myanmar.ZawgyiProbability(text) > e.opts.DocumentZawgyiThreshold {
		info.Encoding = myanmar.EncodingZawgyi
		info.Unicode = myanmar.ToUnicode(text)
	} else {
		info.Unicode = myanmar.Normalize(text)
	}
	info.Syllables = myanmar.SegmentSyllables(info.Unicode)
	info.Words = myanmar.SegmentWords(info.Unicode)
	return info
}

// Check runs the full spelling pipeline over text and returns its
// findings in order: the document-level encoding warning (if any),
// per-word issues in document order, then common-mistake hits in scan
// order.
func (e *Engine) Check(ctx context.Context, text string) []document.CheckResult {
	e.Initialize(ctx)

	info := e.Inspect(text)
	var results []document.CheckResult

	if info.Encoding == myanmar.EncodingZawgyi {
		results = append(results, stamp(document.CheckResult{
			Category:   document.CategoryEncoding,
			Severity:   document.SeverityWarning,
			Issue:      "document appears to be in the legacy Zawgyi encoding",
			Suggestion: "convert the manuscript to standard Unicode before publishing",
			Confidence: myanmar.ZawgyiProbability(text),
		}))
	}

	results = append(results, e.checkWords(info)...)
	results = append(results, e.scanMistakes(info.Unicode)...)
	return results
}

// checkWords validates each unique word in document order and builds
// issues for the invalid ones.
func (e *Engine) checkWords(info TextInfo) []document.CheckResult {
	seen := make(map[string]bool)
	var results []document.CheckResult

	for _, word := range info.Words {
		if seen[word] {
			continue
		}
		seen[word] = true

		if !textutil.ContainsMyanmar(word) {
			continue
		}
		if len([]rune(word)) < e.opts.MinWordLength {
			continue
		}
		if e.isValidWord(word) {
			continue
		}

		suggestions := e.suggest(word)
		confidence := confidenceFor(len(suggestions))
		category := e.classify(word)
		line := lineOf(info.Unicode, word)

		results = append(results, stamp(document.CheckResult{
			Category:     category,
			Severity:     severityFor(category, confidence),
			LineNumber:   line,
			Issue:        issueFor(category),
			OriginalText: word,
			Suggestion:   strings.Join(suggestions, ", "),
			Confidence:   confidence,
			Metadata: map[string]any{
				"suggestions": suggestions,
			},
		}))
	}
	return results
}

// isValidWord: dictionary hit, Myanmar digit content, or particle.
func (e *Engine) isValidWord(word string) bool {
	e.mu.RLock()
	entry, ok := e.dict[word]
	e.mu.RUnlock()
	if ok && entry.IsValid {
		return true
	}
	for _, r := range word {
		if textutil.IsMyanmarDigit(r) {
			return true
		}
	}
	return myanmar.IsParticle(word)
}

// classify types a flagged word: an encoding artifact when the word
// itself scores legacy, a misspelling when some entry lists it as an
// alternative, otherwise unknown.
func (e *Engine) classify(word string) string {
	if myanmar.ZawgyiProbability(word) > e.opts.WordZawgyiThreshold {
		return document.CategoryZawgyiUnicode
	}
	e.mu.RLock()
	_, isAlt := e.alternatives[word]
	e.mu.RUnlock()
	if isAlt {
		return document.CategoryMisspelling
	}
	return document.CategoryUnknownWord
}

// scanMistakes emits one warning per literal occurrence of each known
// incorrect form, ordered by character offset.
func (e *Engine) scanMistakes(text string) []document.CheckResult {
	e.mu.RLock()
	pairs := e.mistakes
	e.mu.RUnlock()

	type hit struct {
		offset int
		pair   document.MistakePair
	}
	var hits []hit
	for _, p := range pairs {
		if p.Incorrect == "" {
			continue
		}
		for start := 0; ; {
			idx := strings.Index(text[start:], p.Incorrect)
			if idx < 0 {
				break
			}
			abs := start + idx
			hits = append(hits, hit{offset: len([]rune(text[:abs])), pair: p})
			start = abs + len(p.Incorrect)
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].offset < hits[j].offset })

	results := make([]document.CheckResult, 0, len(hits))
	for _, h := range hits {
		results = append(results, stamp(document.CheckResult{
			Category:     document.CategoryCommonMistake,
			Severity:     document.SeverityWarning,
			Issue:        "common misspelling",
			OriginalText: h.pair.Incorrect,
			Suggestion:   h.pair.Correct,
			Confidence:   0.9,
			Metadata: map[string]any{
				"offset": h.offset,
			},
		}))
	}
	return results
}

// confidenceFor is deliberately coarse: many conflicting suggestions
// lower confidence, a single suggestion raises it.
func confidenceFor(suggestions int) float64 {
	switch {
	case suggestions == 0:
		return 0.5
	case suggestions == 1:
		return 0.8
	case suggestions > 3:
		return 0.6
	default:
		return 0.7
	}
}

func severityFor(category string, confidence float64) document.Severity {
	switch category {
	case document.CategoryZawgyiUnicode:
		return document.SeverityWarning
	case document.CategoryMisspelling:
		if confidence > 0.7 {
			return document.SeverityError
		}
		return document.SeverityWarning
	default:
		return document.SeveritySuggestion
	}
}

func issueFor(category string) string {
	switch category {
	case document.CategoryZawgyiUnicode:
		return "word appears to be in the legacy encoding"
	case document.CategoryMisspelling:
		return "probable misspelling"
	default:
		return "word not found in dictionary"
	}
}

// lineOf locates the 1-based line of the first occurrence of word.
func lineOf(text, word string) int {
	idx := strings.Index(text, word)
	if idx < 0 {
		return 0
	}
	return strings.Count(text[:idx], "\n") + 1
}

func stamp(r document.CheckResult) document.CheckResult {
	r.ID = uuid.NewString()
	r.CheckID = CheckID
	return r
}
