package api

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/byte-squad-abac/manuscript/internal/chunker"
	"github.com/byte-squad-abac/manuscript/internal/extractor"
	"github.com/byte-squad-abac/manuscript/internal/pipeline"
)

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	// Limit total request size.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024) // extra 1MB for form overhead

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	fileType := strings.TrimPrefix(filepath.Ext(filename), ".")
	if !extractor.IsSupported(fileType) {
		jsonError(w, fmt.Sprintf("unsupported file type: %q", fileType), http.StatusBadRequest)
		return
	}

	// Read file data.
	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:        uuid.NewString(),
		Filename:  filename,
		FileType:  fileType,
		Status:    pipeline.StatusQueued,
		Phase:     "queued",
		CreatedAt: now,
		UpdatedAt: now,
	}
	job.SetFileData(data)

	if opts, ok := chunkOverrides(r, s.cfg.DefaultChunkTokens, s.cfg.DefaultChunkOverlap, s.cfg.DefaultChunkMode); ok {
		job.SetChunkOptions(opts)
	}

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/analyze/%s", job.ID),
	})
}

// chunkOverrides reads optional per-request chunking form fields. ok is
// false when the request carried none.
func chunkOverrides(r *http.Request, defTokens, defOverlap int, defMode string) (chunker.Options, bool) {
	opts := chunker.Options{
		MaxTokens: defTokens,
		Overlap:   defOverlap,
		Mode:      chunker.Mode(defMode),
	}
	ok := false
	if v := r.FormValue("chunk_tokens"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.MaxTokens = n
			ok = true
		}
	}
	if v := r.FormValue("overlap"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			opts.Overlap = n
			ok = true
		}
	}
	switch chunker.Mode(r.FormValue("mode")) {
	case chunker.ModeTokenGreedy, chunker.ModeSentence, chunker.ModeParagraph:
		opts.Mode = chunker.Mode(r.FormValue("mode"))
		ok = true
	}
	return opts, ok
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	report := job.Report()
	if report == nil {
		snap := job.Snapshot()
		jsonError(w, fmt.Sprintf("job is %s, report not ready", snap.Status), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	doc := job.Document()
	if doc == nil {
		snap := job.Snapshot()
		jsonError(w, fmt.Sprintf("job is %s, document not ready", snap.Status), http.StatusConflict)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	data, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, `{"error":"encoding failed"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(data)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	// Remove any path separators that might have survived.
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
