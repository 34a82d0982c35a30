package layout

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/structure"
	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

// Patterns a printed page number can take, one rule per convention.
// Myanmar digits are accepted everywhere ASCII digits are.
var pageNumberRes = []*regexp.Regexp{
	regexp.MustCompile(`^\s*([0-9\x{1040}-\x{1049}]+)\s*$`),
	regexp.MustCompile(`^\s*-\s*([0-9\x{1040}-\x{1049}]+)\s*-\s*$`),
	regexp.MustCompile(`(?i)^\s*page\s+([0-9\x{1040}-\x{1049}]+)\s*$`),
	regexp.MustCompile(`^\s*\x{1005}\x{102C}\x{1019}\x{103B}\x{1000}\x{103A}\x{1014}\x{103E}\x{102C}\s*([0-9\x{1040}-\x{1049}]+)\s*$`),
}

func (a *Analyzer) checkPageNumbering(doc *document.Processed) []document.CheckResult {
	lines := contentLines(doc)

	firstLine := map[int]int{}
	for i, line := range lines {
		for _, re := range pageNumberRes {
			m := re.FindStringSubmatch(line)
			if m == nil {
				continue
			}
			n := parsePageNumber(m[1])
			if n <= 0 {
				continue
			}
			if _, seen := firstLine[n]; !seen {
				firstLine[n] = i + 1
			}
			break
		}
	}

	numbers := make([]int, 0, len(firstLine))
	for n := range firstLine {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	results := []document.CheckResult{}
	for i := 1; i < len(numbers); i++ {
		prev, found := numbers[i-1], numbers[i]
		if found == prev+1 {
			continue
		}
		results = append(results, stamp(document.CheckResult{
			Category:     document.CategoryPageNumbering,
			Severity:     document.SeverityError,
			PageNumber:   found,
			LineNumber:   firstLine[found],
			Issue:        fmt.Sprintf("page numbering skips from %d to %d", prev, found),
			OriginalText: fmt.Sprintf("%d", found),
			Confidence:   0.9,
			Metadata: map[string]any{
				"expected": prev + 1,
				"found":    found,
			},
		}))
	}

	// Counting against an estimated page count would only report the
	// estimate's own error, so compare real counts only.
	if len(numbers) > 0 && doc.Metadata.Pages > 0 && !doc.Metadata.PagesEstimated &&
		len(numbers) != doc.Metadata.Pages {
		results = append(results, stamp(document.CheckResult{
			Category:   document.CategoryPageNumbering,
			Severity:   document.SeverityWarning,
			Issue:      fmt.Sprintf("found %d page numbers but document metadata records %d pages", len(numbers), doc.Metadata.Pages),
			Confidence: 0.7,
			Metadata: map[string]any{
				"detected_pages": len(numbers),
				"recorded_pages": doc.Metadata.Pages,
			},
		}))
	}
	return results
}

func parsePageNumber(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			n = n*10 + int(r-'0')
		case textutil.IsMyanmarDigit(r):
			n = n*10 + int(r-'၀')
		default:
			return 0
		}
	}
	return n
}

func (a *Analyzer) checkOrphanWidow(doc *document.Processed) []document.CheckResult {
	lines := contentLines(doc)
	results := []document.CheckResult{}

	for page := 1; page*linesPerPage < len(lines); page++ {
		lastIdx := page*linesPerPage - 1
		last := strings.TrimSpace(lines[lastIdx])
		next := strings.TrimSpace(lines[lastIdx+1])
		if last == "" || next == "" {
			continue
		}
		if textutil.EndsSentence(last) || startsParagraph(lines[lastIdx+1]) {
			continue
		}
		results = append(results, stamp(document.CheckResult{
			Category:     document.CategoryOrphanWidow,
			Severity:     document.SeveritySuggestion,
			PageNumber:   page,
			LineNumber:   lastIdx + 1,
			Issue:        fmt.Sprintf("possible orphan line at the bottom of page %d", page),
			OriginalText: last,
			Confidence:   0.5,
		}))
		results = append(results, stamp(document.CheckResult{
			Category:     document.CategoryOrphanWidow,
			Severity:     document.SeveritySuggestion,
			PageNumber:   page + 1,
			LineNumber:   lastIdx + 2,
			Issue:        fmt.Sprintf("possible widow line at the top of page %d", page+1),
			OriginalText: next,
			Confidence:   0.5,
		}))
	}
	return results
}

// startsParagraph reports whether a raw line looks like the start of a
// new paragraph rather than the continuation of the previous one.
func startsParagraph(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return true
	}
	if len(raw) > len(strings.TrimLeft(raw, " \t")) {
		return true
	}
	if structure.HeadingLevel(trimmed) > 0 {
		return true
	}
	if strings.HasPrefix(trimmed, "-") || strings.HasPrefix(trimmed, "*") {
		return true
	}
	return false
}
