package layout

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"unicode/utf8"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/structure"
	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

func (a *Analyzer) checkParagraphs(doc *document.Processed) []document.CheckResult {
	results := []document.CheckResult{}
	for _, p := range doc.Structure.Paragraphs {
		n := utf8.RuneCountInString(p.Content)
		switch {
		case n < shortParagraph && structure.HeadingLevel(p.Content) == 0:
			results = append(results, stamp(document.CheckResult{
				Category:     document.CategoryParagraphFormat,
				Severity:     document.SeveritySuggestion,
				PageNumber:   p.Page,
				Issue:        fmt.Sprintf("very short paragraph (%d characters), possibly a formatting artifact", n),
				OriginalText: p.Content,
				Confidence:   0.5,
				Metadata: map[string]any{
					"length":          n,
					"paragraph_index": p.Index,
				},
			}))
		case n > longParagraph:
			results = append(results, stamp(document.CheckResult{
				Category:   document.CategoryParagraphFormat,
				Severity:   document.SeverityWarning,
				PageNumber: p.Page,
				Issue:      fmt.Sprintf("very long paragraph (%d characters), consider splitting for readability", n),
				Confidence: 0.6,
				Metadata: map[string]any{
					"length":          n,
					"paragraph_index": p.Index,
				},
			}))
		}

		if p.Style == nil {
			continue
		}
		expected := bodyIndent
		if p.Index == 0 {
			expected = 0
		}
		if math.Abs(p.Style.Indent-expected) > indentTolerance {
			results = append(results, stamp(document.CheckResult{
				Category:   document.CategoryParagraphFormat,
				Severity:   document.SeverityWarning,
				PageNumber: p.Page,
				Issue:      fmt.Sprintf("paragraph indent %.1f deviates from the expected %.1f", p.Style.Indent, expected),
				Confidence: 0.6,
				Metadata: map[string]any{
					"indent":          p.Style.Indent,
					"expected_indent": expected,
					"paragraph_index": p.Index,
				},
			}))
		}
	}
	return results
}

var lineHeightRe = regexp.MustCompile(`line-height:\s*([0-9]*\.?[0-9]+)`)

// Myanmar script stacks medials and tone marks above and below the
// baseline, so it needs more leading than Latin text.
func (a *Analyzer) checkSpacing(doc *document.Processed) []document.CheckResult {
	results := []document.CheckResult{}
	if !textutil.ContainsMyanmar(doc.Content) {
		return results
	}

	matches := lineHeightRe.FindAllStringSubmatch(doc.Content, -1)
	if len(matches) == 0 {
		return results
	}
	sum := 0.0
	count := 0
	for _, m := range matches {
		v, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		sum += v
		count++
	}
	if count == 0 {
		return results
	}
	avg := sum / float64(count)
	if avg >= minMyanmarLead && avg <= maxMyanmarLead {
		return results
	}
	results = append(results, stamp(document.CheckResult{
		Category:   document.CategorySpacing,
		Severity:   document.SeverityWarning,
		Issue:      fmt.Sprintf("average line height %.2f is outside the %.1f-%.1f range recommended for Myanmar text", avg, minMyanmarLead, maxMyanmarLead),
		Confidence: 0.7,
		Metadata: map[string]any{
			"average_line_height": avg,
			"declarations":        count,
		},
	}))
	return results
}
