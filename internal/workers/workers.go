package workers

import (
	"context"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
)

// Workers starts a fixed set of workers together.
type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers groups workers. nil entries are skipped, so optional workers can
// be passed unconditionally.
func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	ws := &Workers{logger: logger}
	for _, w := range workers {
		if w != nil {
			ws.workers = append(ws.workers, w)
		}
	}
	return ws
}

// Run starts every worker in order with ctx.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
	if w.logger != nil {
		w.logger.Info().Int("count", len(w.workers)).Msg("workers started")
	}
}

// Len returns how many workers are grouped.
func (w *Workers) Len() int {
	return len(w.workers)
}
