package spellcheck

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/byte-squad-abac/manuscript/internal/myanmar"
)

// suggest merges three candidate sources for a flagged word: the
// encoding-converted form when it turns out valid, dictionary entries
// within edit distance, and entries listing the word as a known
// alternative. Capped at MaxSuggestions.
func (e *Engine) suggest(word string) []string {
	var out []string
	seen := map[string]bool{word: true}
	add := func(s string) {
		if s != "" && !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}

	// The flagged word may simply be in the wrong encoding.
	for _, converted := range []string{myanmar.ToUnicode(word), myanmar.ToZawgyi(word)} {
		converted = myanmar.Normalize(converted)
		e.mu.RLock()
		entry, ok := e.dict[converted]
		e.mu.RUnlock()
		if ok && entry.IsValid {
			correct := entry.WordUnicode
			if correct == "" {
				correct = entry.Word
			}
			add(correct)
		}
	}

	// Entries that list this word as a known alternative spelling.
	e.mu.RLock()
	for _, correct := range e.alternatives[word] {
		add(correct)
	}
	e.mu.RUnlock()

	// Near matches by edit distance, closest (then most frequent)
	// first.
	for _, m := range e.nearMatches(word) {
		if len(out) >= e.opts.MaxSuggestions {
			break
		}
		add(m)
	}

	if len(out) > e.opts.MaxSuggestions {
		out = out[:e.opts.MaxSuggestions]
	}
	return out
}

// nearMatches scans the dictionary for words within MaxEditDistance.
func (e *Engine) nearMatches(word string) []string {
	type match struct {
		word      string
		distance  int
		frequency int
	}

	e.mu.RLock()
	var matches []match
	for form, entry := range e.dict {
		if !entry.IsValid {
			continue
		}
		d := fuzzy.LevenshteinDistance(word, form)
		if d > 0 && d <= e.opts.MaxEditDistance {
			matches = append(matches, match{word: form, distance: d, frequency: entry.Frequency})
		}
	}
	e.mu.RUnlock()

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].distance != matches[j].distance {
			return matches[i].distance < matches[j].distance
		}
		if matches[i].frequency != matches[j].frequency {
			return matches[i].frequency > matches[j].frequency
		}
		return matches[i].word < matches[j].word
	})

	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.word)
	}
	return out
}
