package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/byte-squad-abac/manuscript/internal/config"
	"github.com/byte-squad-abac/manuscript/internal/dictstore"
	"github.com/byte-squad-abac/manuscript/internal/layout"
	"github.com/byte-squad-abac/manuscript/internal/pipeline"
	"github.com/byte-squad-abac/manuscript/internal/spellcheck"
)

const testKey = "test-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Config{
		Port:                "0",
		APIKey:              testKey,
		WorkerCount:         2,
		MaxQueueSize:        8,
		MaxUploadBytes:      1 << 20,
		DefaultChunkTokens:  500,
		DefaultChunkOverlap: 50,
		DefaultChunkMode:    "token",
		JobTTL:              time.Hour,
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	engine := spellcheck.New(dictstore.Builtin(), spellcheck.DefaultOptions(), log)
	proc := pipeline.NewProcessor(engine, layout.New(log), log)
	orch := pipeline.NewOrchestrator(cfg, proc, engine.Degraded, log)

	ctx, cancel := context.WithCancel(context.Background())
	orch.Start(ctx)
	t.Cleanup(func() {
		cancel()
		orch.Stop()
	})
	return NewServer(orch, log, cfg)
}

func multipartUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("form file: %v", err)
	}
	if _, err := fw.Write([]byte(content)); err != nil {
		t.Fatalf("write: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func TestHealth_NoAuth(t *testing.T) {
	s := newTestServer(t)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestAnalyze_RequiresAuth(t *testing.T) {
	s := newTestServer(t)
	body, ctype := multipartUpload(t, "draft.txt", "hello")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ctype)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestAnalyze_UnsupportedExtension(t *testing.T) {
	s := newTestServer(t)
	body, ctype := multipartUpload(t, "draft.exe", "binary")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ctype)
	req.Header.Set("Authorization", "Bearer "+testKey)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyze_FullFlow(t *testing.T) {
	s := newTestServer(t)
	body, ctype := multipartUpload(t, "draft.txt", "Chapter 1\n\nThe rains came late. The fields waited for water.")
	req := httptest.NewRequest(http.MethodPost, "/api/analyze", body)
	req.Header.Set("Content-Type", ctype)
	req.Header.Set("Authorization", "Bearer "+testKey)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", rec.Code, rec.Body.String())
	}

	var accepted struct {
		JobID string `json:"job_id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &accepted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if accepted.JobID == "" {
		t.Fatal("expected job id")
	}

	// Poll until the worker finishes.
	deadline := time.Now().Add(5 * time.Second)
	var status string
	for time.Now().Before(deadline) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/analyze/"+accepted.JobID, nil)
		req.Header.Set("Authorization", "Bearer "+testKey)
		s.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("status poll = %d: %s", rec.Code, rec.Body.String())
		}
		var snap struct {
			Status string `json:"status"`
		}
		if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
			t.Fatalf("decode: %v", err)
		}
		status = snap.Status
		if status == "completed" || status == "failed" {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if status != "completed" {
		t.Fatalf("job status = %q, want completed", status)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/analyze/"+accepted.JobID+"/report", nil)
	req.Header.Set("Authorization", "Bearer "+testKey)
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("report = %d: %s", rec.Code, rec.Body.String())
	}
	var report struct {
		DocumentID string `json:"document_id"`
		ChunkCount int    `json:"chunk_count"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if report.DocumentID == "" || report.ChunkCount == 0 {
		t.Errorf("report = %+v, want document id and chunks", report)
	}
}

func TestReport_NotReady(t *testing.T) {
	s := newTestServer(t)
	// Unknown job.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/analyze/nope/report", nil)
	req.Header.Set("Authorization", "Bearer "+testKey)
	s.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}
