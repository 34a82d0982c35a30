package layout

import (
	"fmt"
	"math"
	"regexp"
	"unicode"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/structure"
)

var leadingNumberRe = regexp.MustCompile(`[0-9\x{1040}-\x{1049}]+`)

func (a *Analyzer) checkHeaderHierarchy(doc *document.Processed) []document.CheckResult {
	headers := doc.Structure.Headers
	results := []document.CheckResult{}
	if len(headers) == 0 {
		return results
	}

	prevLevel := 0
	for i, h := range headers {
		if prevLevel != 0 && h.Level > prevLevel+1 {
			results = append(results, stamp(document.CheckResult{
				Category:     document.CategoryHeaderHierarchy,
				Severity:     document.SeverityWarning,
				PageNumber:   h.Page,
				LineNumber:   h.Line,
				Issue:        fmt.Sprintf("header level jumps from %d to %d, skipping a level", prevLevel, h.Level),
				OriginalText: h.Text,
				Confidence:   0.8,
				Metadata: map[string]any{
					"previous_level": prevLevel,
					"level":          h.Level,
				},
			}))
		}
		if i > 0 && h.Level == headers[i-1].Level {
			if reason := formattingMismatch(headers[i-1].Text, h.Text); reason != "" {
				results = append(results, stamp(document.CheckResult{
					Category:     document.CategoryHeaderHierarchy,
					Severity:     document.SeverityWarning,
					PageNumber:   h.Page,
					LineNumber:   h.Line,
					Issue:        fmt.Sprintf("level %d headers use inconsistent formatting (%s)", h.Level, reason),
					OriginalText: h.Text,
					Confidence:   0.6,
					Metadata: map[string]any{
						"previous_text": headers[i-1].Text,
					},
				}))
			}
		}
		prevLevel = h.Level
	}

	hasTop := false
	for _, h := range headers {
		if h.Level == 1 {
			hasTop = true
			break
		}
	}
	if !hasTop {
		results = append(results, stamp(document.CheckResult{
			Category:   document.CategoryHeaderHierarchy,
			Severity:   document.SeverityWarning,
			Issue:      "document has headers but no top-level header",
			Confidence: 0.7,
		}))
	}
	return results
}

// formattingMismatch compares two same-level header titles and names
// the first convention they disagree on, or "" when they match.
func formattingMismatch(prev, cur string) string {
	if hasLeadingNumber(prev) != hasLeadingNumber(cur) {
		return "numeric prefix"
	}
	if structure.IsChapterHeader(prev) != structure.IsChapterHeader(cur) {
		return "chapter keyword"
	}
	pc, pok := firstCasedLetter(prev)
	cc, cok := firstCasedLetter(cur)
	if pok && cok && unicode.IsUpper(pc) != unicode.IsUpper(cc) {
		return "capitalization"
	}
	return ""
}

func hasLeadingNumber(s string) bool {
	loc := leadingNumberRe.FindStringIndex(s)
	return loc != nil && loc[0] == 0
}

func firstCasedLetter(s string) (rune, bool) {
	for _, r := range s {
		if unicode.IsLetter(r) && (unicode.IsUpper(r) || unicode.IsLower(r)) {
			return r, true
		}
	}
	return 0, false
}

func (a *Analyzer) checkChapters(doc *document.Processed) []document.CheckResult {
	chapters := doc.Structure.Chapters
	results := []document.CheckResult{}
	if len(chapters) == 0 {
		return results
	}

	mean := 0.0
	for _, c := range chapters {
		mean += float64(c.WordCount)
	}
	mean /= float64(len(chapters))

	variance := 0.0
	for _, c := range chapters {
		d := float64(c.WordCount) - mean
		variance += d * d
	}
	variance /= float64(len(chapters))
	stddev := math.Sqrt(variance)

	for _, c := range chapters {
		if c.WordCount < minChapterWords {
			results = append(results, stamp(document.CheckResult{
				Category:     document.CategoryChapterLength,
				Severity:     document.SeverityWarning,
				PageNumber:   c.PageStart,
				Issue:        fmt.Sprintf("chapter %q is very short (%d words)", c.Title, c.WordCount),
				OriginalText: c.Title,
				Confidence:   0.8,
				Metadata: map[string]any{
					"word_count": c.WordCount,
				},
			}))
		}
		if stddev > 0 && math.Abs(float64(c.WordCount)-mean) > chapterDeviation*stddev {
			results = append(results, stamp(document.CheckResult{
				Category:     document.CategoryChapterLength,
				Severity:     document.SeverityWarning,
				PageNumber:   c.PageStart,
				Issue:        fmt.Sprintf("chapter %q length (%d words) deviates strongly from the mean (%.0f)", c.Title, c.WordCount, mean),
				OriginalText: c.Title,
				Confidence:   0.6,
				Metadata: map[string]any{
					"word_count": c.WordCount,
					"mean":       mean,
					"stddev":     stddev,
				},
			}))
		}
	}

	results = append(results, a.checkChapterNumbering(chapters)...)
	return results
}

func (a *Analyzer) checkChapterNumbering(chapters []document.Chapter) []document.CheckResult {
	results := []document.CheckResult{}
	prev := 0
	havePrev := false
	for _, c := range chapters {
		m := leadingNumberRe.FindString(c.Title)
		if m == "" {
			continue
		}
		n := parsePageNumber(m)
		if n == 0 {
			continue
		}
		if havePrev && n != prev+1 {
			results = append(results, stamp(document.CheckResult{
				Category:     document.CategoryChapterNumber,
				Severity:     document.SeverityError,
				PageNumber:   c.PageStart,
				Issue:        fmt.Sprintf("chapter numbering jumps from %d to %d", prev, n),
				OriginalText: c.Title,
				Confidence:   0.9,
				Metadata: map[string]any{
					"expected": prev + 1,
					"found":    n,
				},
			}))
		}
		prev = n
		havePrev = true
	}
	return results
}
