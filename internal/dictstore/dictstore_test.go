package dictstore

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/byte-squad-abac/manuscript/internal/document"
)

func TestBuiltin_NonEmptyAndValid(t *testing.T) {
	src := Builtin()
	entries, err := src.ValidWords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("builtin dictionary must not be empty")
	}
	for _, e := range entries {
		if !e.IsValid {
			t.Errorf("builtin word %q marked invalid", e.Word)
		}
		if e.Word == "" {
			t.Error("builtin entry with empty word")
		}
	}
}

func TestHTTPSource_ReadsRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/dictionary/words":
			json.NewEncoder(w).Encode([]document.DictionaryEntry{
				{ID: "1", Word: "စာအုပ်", IsValid: true, Alternatives: []string{"စာအုတ်"}},
			})
		case "/dictionary/mistakes":
			json.NewEncoder(w).Encode([]document.MistakePair{
				{Incorrect: "mispell", Correct: "misspell"},
			})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, "test-key")
	words, err := src.ValidWords(context.Background())
	if err != nil {
		t.Fatalf("ValidWords: %v", err)
	}
	if len(words) != 1 || words[0].Word != "စာအုပ်" {
		t.Errorf("unexpected words: %+v", words)
	}
	if len(words[0].Alternatives) != 1 {
		t.Errorf("alternatives lost: %+v", words[0])
	}

	pairs, err := src.Mistakes(context.Background())
	if err != nil {
		t.Fatalf("Mistakes: %v", err)
	}
	if len(pairs) != 1 || pairs[0].Correct != "misspell" {
		t.Errorf("unexpected pairs: %+v", pairs)
	}
}

func TestHTTPSource_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, "")
	if _, err := src.ValidWords(context.Background()); err == nil {
		t.Fatal("expected error on 500 response")
	}
}

func TestSQLiteSource_RoundTrip(t *testing.T) {
	src, err := OpenSQLite(t.TempDir() + "/dict.db")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer src.Close()

	ctx := context.Background()
	entry := document.DictionaryEntry{
		ID:           "w1",
		Word:         "မြန်မာ",
		WordUnicode:  "မြန်မာ",
		Frequency:    10,
		IsValid:      true,
		Alternatives: []string{"jrefrm"},
	}
	if err := src.AddWord(ctx, entry); err != nil {
		t.Fatalf("AddWord: %v", err)
	}

	words, err := src.ValidWords(ctx)
	if err != nil {
		t.Fatalf("ValidWords: %v", err)
	}
	if len(words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(words))
	}
	got := words[0]
	if got.Word != entry.Word || !got.IsValid || got.Frequency != 10 {
		t.Errorf("row mismatch: %+v", got)
	}
	if len(got.Alternatives) != 1 || got.Alternatives[0] != "jrefrm" {
		t.Errorf("alternatives mismatch: %+v", got.Alternatives)
	}

	pairs, err := src.Mistakes(ctx)
	if err != nil {
		t.Fatalf("Mistakes: %v", err)
	}
	if len(pairs) != 0 {
		t.Errorf("expected no mistakes, got %+v", pairs)
	}
}

func TestHTTPSource_MistakesPath(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewEncoder(w).Encode([]document.MistakePair{})
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, "")
	if _, err := src.Mistakes(context.Background()); err != nil {
		t.Fatalf("Mistakes: %v", err)
	}
	if gotPath != "/dictionary/mistakes" {
		t.Errorf("path = %q", gotPath)
	}
}
