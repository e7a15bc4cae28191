package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/eat-that-list/internal/logger"
)

type job struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Workers keeps at most one running worker per name.
type Workers struct {
	mu      sync.Mutex
	running map[string]*job

	logger *logger.Logger
}

func New(logger *logger.Logger) *Workers {
	return &Workers{
		running: make(map[string]*job),
		logger:  logger,
	}
}

// Start launches worker under name. A worker already running under the same
// name is stopped first.
func (w *Workers) Start(ctx context.Context, name string, worker Worker) {
	w.Stop(name)

	jobCtx, cancel := context.WithCancel(ctx)
	j := &job{cancel: cancel, done: make(chan struct{})}

	w.mu.Lock()
	w.running[name] = j
	w.mu.Unlock()

	go func() {
		defer close(j.done)
		defer w.forget(name, j)

		err := worker.Run(jobCtx)
		switch {
		case err == nil, errors.Is(err, context.Canceled):
			w.logger.Debug().Str("worker", name).Msg("worker stopped")
		default:
			w.logger.Warn().Err(err).Str("worker", name).Msg("worker finished with error")
		}
	}()
}

// Stop cancels the worker running under name and waits for it to exit.
// Stopping an unknown name is a no-op.
func (w *Workers) Stop(name string) {
	w.mu.Lock()
	j := w.running[name]
	delete(w.running, name)
	w.mu.Unlock()

	if j != nil {
		j.cancel()
		<-j.done
	}
}

// StopAll stops every running worker.
func (w *Workers) StopAll() {
	w.mu.Lock()
	jobs := w.running
	w.running = make(map[string]*job)
	w.mu.Unlock()

	for _, j := range jobs {
		j.cancel()
	}
	for _, j := range jobs {
		<-j.done
	}
}

// Running reports whether a worker is running under name.
func (w *Workers) Running(name string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.running[name]
	return ok
}

// forget drops j unless it was already replaced.
func (w *Workers) forget(name string, j *job) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running[name] == j {
		delete(w.running, name)
	}
}
