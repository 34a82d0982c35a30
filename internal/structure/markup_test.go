package structure

import "testing"

func TestFromMarkup_HeadersAndParagraphs(t *testing.T) {
	markup := "<h1>Chapter 1</h1>\n<p>The rains came late.</p>\n<h2>The Delta</h2>\n<p>The fields waited.</p>\n"
	st := FromMarkup(markup)

	if len(st.Headers) != 2 {
		t.Fatalf("got %d headers, want 2", len(st.Headers))
	}
	if st.Headers[0].Text != "Chapter 1" || st.Headers[0].Level != 1 {
		t.Errorf("header 0 = %+v, want Chapter 1 level 1", st.Headers[0])
	}
	if st.Headers[1].Text != "The Delta" || st.Headers[1].Level != 2 {
		t.Errorf("header 1 = %+v, want The Delta level 2", st.Headers[1])
	}
	if len(st.Paragraphs) != 2 {
		t.Fatalf("got %d paragraphs, want 2", len(st.Paragraphs))
	}
	if st.Paragraphs[0].Index != 0 || st.Paragraphs[1].Index != 1 {
		t.Errorf("paragraph indices = %d,%d, want 0,1", st.Paragraphs[0].Index, st.Paragraphs[1].Index)
	}
}

func TestFromMarkup_LevelsFromTagsNotHeuristics(t *testing.T) {
	// Lower-case heading text would never pass the plain-text
	// heuristics; the tag decides.
	st := FromMarkup("<h3>a quiet interlude</h3>")
	if len(st.Headers) != 1 || st.Headers[0].Level != 3 {
		t.Fatalf("headers = %+v, want one level-3 header", st.Headers)
	}
}

func TestFromMarkup_TablesAndImages(t *testing.T) {
	st := FromMarkup("<p>before</p><table><tr></tr><tr></tr><tr></tr></table><img src=\"cover.png\"/>")
	if len(st.Tables) != 1 || st.Tables[0].Rows != 3 {
		t.Fatalf("tables = %+v, want one 3-row table", st.Tables)
	}
	if len(st.Images) != 1 || st.Images[0].Name != "cover.png" {
		t.Fatalf("images = %+v, want cover.png", st.Images)
	}
}

func TestFromMarkup_ChaptersPaired(t *testing.T) {
	markup := "<h1>Chapter 1</h1>\n<p>one</p>\n<h1>Chapter 2</h1>\n<p>two</p>\n"
	st := FromMarkup(markup)
	if len(st.Chapters) != 2 {
		t.Fatalf("got %d chapters, want 2", len(st.Chapters))
	}
	if st.Chapters[1].PageEnd != -1 {
		t.Errorf("last chapter page end = %d, want open-ended sentinel", st.Chapters[1].PageEnd)
	}
}

func TestFromMarkup_EmptyInput(t *testing.T) {
	st := FromMarkup("")
	if st.Headers == nil || st.Paragraphs == nil || st.Chapters == nil {
		t.Fatal("expected empty slices, not nil")
	}
	if len(st.Headers)+len(st.Paragraphs)+len(st.Chapters) != 0 {
		t.Fatalf("expected no structure, got %+v", st)
	}
}
