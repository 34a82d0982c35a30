// Package structure infers headers, chapters, and paragraphs from
// plain manuscript text. It is the fallback when an extractor cannot
// supply structure from the file format itself.
package structure

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"

	"github.com/byte-squad-abac/manuscript/internal/document"
	"github.com/byte-squad-abac/manuscript/internal/textutil"
)

// Page estimation divisors. Rough placeholders in the absence of real
// pagination; callers get true page numbers only from formats that
// carry them.
const (
	linesPerPage      = 40
	paragraphsPerPage = 3
)

// headingRule pairs a line matcher with the level it assigns.
// Keyword+number rules are checked first, so "Chapter 3" wins over
// the title-case heuristic.
type headingRule struct {
	re    *regexp.Regexp
	level int
}

// chapterRules match explicit chapter/section keywords, English and
// Myanmar (အခန်း "chapter", အပိုင်း "part/section"), followed by a
// number in either digit set.
var chapterRules = []headingRule{
	{regexp.MustCompile(`(?i)^\s*chapter\s+([0-9IVXLC]+)\b`), 1},
	{regexp.MustCompile(`(?i)^\s*section\s+([0-9IVXLC]+)\b`), 1},
	{regexp.MustCompile(`^\s*\x{1021}\x{1001}\x{1014}\x{103A}\x{1038}\s*[\x{1040}-\x{1049}0-9]+`), 1},
	{regexp.MustCompile(`^\s*\x{1021}\x{1015}\x{102D}\x{102F}\x{1004}\x{103A}\x{1038}\s*[\x{1040}-\x{1049}0-9]+`), 1},
}

// chapterKeywordRe recognizes a chapter-pattern header text when
// pairing chapters, independent of line scanning.
var chapterKeywordRe = regexp.MustCompile(`(?i)^\s*(chapter\b|\x{1021}\x{1001}\x{1014}\x{103A}\x{1038})`)

const (
	maxHeadingLen       = 100
	titleCaseRatio      = 0.7
	titleCaseMinWordLen = 4
)

// HeadingLevel applies the heading rules to one line: explicit
// chapter/section keywords are level 1; otherwise short lines in
// all-caps or title case are level 2. Returns 0 for body text.
func HeadingLevel(line string) int {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return 0
	}
	for _, rule := range chapterRules {
		if rule.re.MatchString(trimmed) {
			return rule.level
		}
	}
	if len([]rune(trimmed)) >= maxHeadingLen {
		return 0
	}
	if isAllCaps(trimmed) || isTitleCase(trimmed) {
		return 2
	}
	return 0
}

// IsChapterHeader reports whether header text matches the chapter
// keyword pattern.
func IsChapterHeader(text string) bool {
	return chapterKeywordRe.MatchString(text)
}

// isAllCaps requires at least one letter and no lower-case letters.
func isAllCaps(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) && !textutil.IsMyanmarRune(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// isTitleCase checks that most substantial words start with a capital.
func isTitleCase(s string) bool {
	words := strings.Fields(s)
	var substantial, capitalized int
	for _, w := range words {
		runes := []rune(w)
		if len(runes) < titleCaseMinWordLen {
			continue
		}
		if !unicode.IsLetter(runes[0]) || textutil.IsMyanmarRune(runes[0]) {
			continue
		}
		substantial++
		if unicode.IsUpper(runes[0]) {
			capitalized++
		}
	}
	if substantial == 0 {
		return false
	}
	return float64(capitalized)/float64(substantial) > titleCaseRatio
}

// Extract infers the structural skeleton of content. Documents with
// no detectable headings yield empty (not nil) slices.
func Extract(content string) document.Structure {
	st := document.Structure{
		Chapters:   []document.Chapter{},
		Sections:   []document.Section{},
		Headers:    []document.Header{},
		Paragraphs: []document.Paragraph{},
		Images:     []document.Image{},
		Tables:     []document.Table{},
	}

	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	for i, line := range lines {
		level := HeadingLevel(line)
		if level == 0 {
			continue
		}
		st.Headers = append(st.Headers, document.Header{
			ID:    uuid.NewString(),
			Text:  strings.TrimSpace(line),
			Level: level,
			Page:  i/linesPerPage + 1,
			Line:  i + 1,
		})
	}

	for i, para := range textutil.SplitParagraphs(content) {
		st.Paragraphs = append(st.Paragraphs, document.Paragraph{
			ID:      uuid.NewString(),
			Content: para,
			Page:    i/paragraphsPerPage + 1,
			Index:   i,
		})
	}

	st.Chapters = PairChapters(st.Headers)
	return st
}

// PairChapters derives chapters from consecutive chapter-pattern
// headers. Each chapter runs from its header's page to one page
// before the next chapter header; the last chapter is open-ended.
// Word counts are left zero for a later pass. Extractors that build
// headers from real format markup use this to get the same chapter
// pairing as inferred structure.
func PairChapters(headers []document.Header) []document.Chapter {
	var chapterHeads []document.Header
	for _, h := range headers {
		if IsChapterHeader(h.Text) {
			chapterHeads = append(chapterHeads, h)
		}
	}

	chapters := make([]document.Chapter, 0, len(chapterHeads))
	for i, h := range chapterHeads {
		end := document.OpenEndedPage
		if i+1 < len(chapterHeads) {
			end = chapterHeads[i+1].Page - 1
			if end < h.Page {
				end = h.Page
			}
		}
		chapters = append(chapters, document.Chapter{
			ID:        uuid.NewString(),
			Title:     h.Text,
			PageStart: h.Page,
			PageEnd:   end,
		})
	}
	return chapters
}
