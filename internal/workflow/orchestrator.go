package workflow

import (
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/gofrs/flock"

	"certgen/internal/journal"
	"certgen/internal/logging"
	"certgen/internal/operation"
	"certgen/internal/services/certapi"
	"certgen/internal/stage"
)

// Orchestrator sequences the certificate pipeline and owns the status cell.
type Orchestrator struct {
	client  *certapi.Client
	logger  *slog.Logger
	journal *journal.Store
	lock    *flock.Flock

	stages []pipelineStage

	busy atomic.Bool

	mu        sync.RWMutex
	status    operation.Status
	listeners []func(operation.Status)
}

type pipelineStage struct {
	handler stage.Handler
	loading string
}

// Option configures optional orchestrator behavior.
type Option func(*Orchestrator)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithJournal records run outcomes into the given store. Journal failures
// are logged and never fail a run.
func WithJournal(store *journal.Store) Option {
	return func(o *Orchestrator) {
		o.journal = store
	}
}

// WithLockFile guards runs with a cross-process file lock so two certgen
// processes cannot interleave stages against the stateful backend.
func WithLockFile(path string) Option {
	return func(o *Orchestrator) {
		if path != "" {
			o.lock = flock.New(path)
		}
	}
}

// NewOrchestrator constructs an orchestrator over the given backend client.
func NewOrchestrator(client *certapi.Client, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		client: client,
		logger: logging.NewNop(),
		status: operation.Idle(),
	}
	for _, opt := range opts {
		opt(o)
	}
	o.logger = logging.NewComponentLogger(o.logger, "workflow")
	o.stages = []pipelineStage{
		{handler: &uploadStage{client: client}, loading: MsgUploading},
		{handler: &generateStage{client: client}, loading: MsgGenerating},
		{handler: &sendStage{client: client}, loading: MsgSending},
	}
	return o
}

// Status returns the current user-visible status.
func (o *Orchestrator) Status() operation.Status {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// IsProcessing reports whether a run is in flight. Downloads do not set it.
func (o *Orchestrator) IsProcessing() bool {
	return o.busy.Load()
}

// Subscribe registers a callback invoked on every status transition. The
// callback runs on the orchestrator goroutine and must not block.
func (o *Orchestrator) Subscribe(fn func(operation.Status)) {
	if fn == nil {
		return
	}
	o.mu.Lock()
	o.listeners = append(o.listeners, fn)
	o.mu.Unlock()
}

func (o *Orchestrator) setStatus(status operation.Status) {
	o.mu.Lock()
	o.status = status
	listeners := make([]func(operation.Status), len(o.listeners))
	copy(listeners, o.listeners)
	o.mu.Unlock()

	for _, fn := range listeners {
		fn(status)
	}
}
