package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/byte-squad-abac/manuscript/internal/chunker"
	"github.com/byte-squad-abac/manuscript/internal/config"
)

// Orchestrator manages the async analysis pipeline.
type Orchestrator struct {
	jobs     *JobStore
	queue    chan *Job
	proc     *Processor
	degraded func() bool
	log      *slog.Logger
	cfg      config.Config
	chunkCfg chunker.Options

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewOrchestrator creates the pipeline. degraded reports whether the
// spelling engine fell back to the builtin dictionary; it is sampled
// per job so late initialization is reflected.
func NewOrchestrator(cfg config.Config, proc *Processor, degraded func() bool, log *slog.Logger) *Orchestrator {
	return &Orchestrator{
		jobs:     NewJobStore(cfg.JobTTL),
		queue:    make(chan *Job, cfg.MaxQueueSize),
		proc:     proc,
		degraded: degraded,
		log:      log,
		cfg:      cfg,
		chunkCfg: chunker.Options{
			MaxTokens: cfg.DefaultChunkTokens,
			Overlap:   cfg.DefaultChunkOverlap,
			Mode:      chunker.Mode(cfg.DefaultChunkMode),
		},
	}
}

// Start launches worker goroutines.
func (o *Orchestrator) Start(ctx context.Context) {
	workerCtx, cancel := context.WithCancel(ctx)
	o.cancel = cancel

	for i := 0; i < o.cfg.WorkerCount; i++ {
		o.wg.Add(1)
		go func() {
			defer o.wg.Done()
			w := NewWorker(o.proc, o.log, o.chunkCfg, o.degraded)
			for {
				select {
				case <-workerCtx.Done():
					return
				case job, ok := <-o.queue:
					if !ok {
						return
					}
					w.Process(workerCtx, job)
				}
			}
		}()
	}

	// Start job store cleanup.
	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-workerCtx.Done():
				return
			case <-ticker.C:
				o.jobs.Cleanup()
			}
		}
	}()
}

// Stop gracefully shuts down the pipeline.
func (o *Orchestrator) Stop() {
	if o.cancel != nil {
		o.cancel()
	}
	close(o.queue)
	o.wg.Wait()
}

// Submit queues a new job for processing.
func (o *Orchestrator) Submit(job *Job) error {
	o.jobs.Put(job)
	select {
	case o.queue <- job:
		return nil
	default:
		job.SetStatus(StatusFailed, "queue_full")
		return fmt.Errorf("job queue is full (%d)", o.cfg.MaxQueueSize)
	}
}

// GetJob returns a job by ID.
func (o *Orchestrator) GetJob(id string) *Job {
	return o.jobs.Get(id)
}

// QueueDepth returns current queue depth.
func (o *Orchestrator) QueueDepth() int {
	return len(o.queue)
}
