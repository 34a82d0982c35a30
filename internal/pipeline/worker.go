package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/byte-squad-abac/manuscript/internal/chunker"
)

// Worker processes a single analysis job at a time.
type Worker struct {
	proc     *Processor
	log      *slog.Logger
	chunkCfg chunker.Options
	degraded func() bool
}

func NewWorker(proc *Processor, log *slog.Logger, chunkCfg chunker.Options, degraded func() bool) *Worker {
	return &Worker{
		proc:     proc,
		log:      log,
		chunkCfg: chunkCfg,
		degraded: degraded,
	}
}

// Process runs the full analysis pipeline for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: Extract
	job.SetStatus(StatusExtracting, "extracting")
	extraction, err := w.proc.Extract(job.FileData(), job.FileType)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract: %s", err))
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	// Phase 2: Chunk + structure
	job.SetStatus(StatusChunking, "chunking")
	chunkCfg := w.chunkCfg
	if opts := job.ChunkOptions(); opts != nil {
		chunkCfg = *opts
	}
	doc := w.proc.assemble(extraction, chunkCfg)
	job.SetTotalChunks(len(doc.Chunks))
	log.Info("chunked document", "chunks", len(doc.Chunks), "words", doc.Metadata.Words)

	// Phase 3: Analyze.
	job.SetStatus(StatusAnalyzing, "analyzing")
	spelling, layoutIssues := w.proc.Analyze(ctx, doc)

	report := BuildReport(doc, spelling, layoutIssues, w.degraded())
	job.SetResult(doc, report)
	log.Info("analysis complete",
		"spelling_issues", len(spelling),
		"layout_issues", len(layoutIssues),
		"degraded", report.DictionaryDegraded)
	job.SetStatus(StatusCompleted, "done")
}
