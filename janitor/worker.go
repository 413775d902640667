// Package janitor drains the storage deletion queue in the background.
package janitor

import (
	"context"
	"log"
	"sync"
	"time"

	"suredoor/models"
	"suredoor/storage"
)

// Queue is the persistence the worker drains
type Queue interface {
	GetPendingDeletions(limit int, retryBefore time.Time) ([]models.StorageDeletion, error)
	MarkDeletionDone(id string) error
	MarkDeletionFailed(id, errorMsg string) error
}

const (
	batchSize = 50
	// minRetryAge keeps a failed deletion out of the next batch for a while
	minRetryAge = 30 * time.Second
)

// Worker removes queued objects from storage, retrying failures with backoff
// See also:
// - executor.go: deletion execution
type Worker struct {
	queue           Queue
	provider        storage.Provider
	baseInterval    time.Duration
	maxInterval     time.Duration
	currentInterval time.Duration
	running         bool
	mu              sync.Mutex
	stopChan        chan struct{}
	done            chan struct{}
	kick            chan struct{}
	now             func() time.Time
}

// NewWorker creates a new janitor worker instance
func NewWorker(queue Queue, provider storage.Provider) *Worker {
	return &Worker{
		queue:           queue,
		provider:        provider,
		baseInterval:    1 * time.Minute,
		maxInterval:     5 * time.Minute,
		currentInterval: 1 * time.Minute,
		kick:            make(chan struct{}, 1),
		now:             time.Now,
	}
}

// Start begins the background worker; calling it twice is a no-op
func (w *Worker) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	stop, done := make(chan struct{}), make(chan struct{})
	w.stopChan, w.done = stop, done
	w.mu.Unlock()

	log.Println("[Janitor] Starting storage janitor")

	go w.run(stop, done)
}

// Stop signals the worker to exit and waits for the current batch to finish
func (w *Worker) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	log.Println("[Janitor] Stopping storage janitor")
	close(w.stopChan)
	w.running = false
	done := w.done
	w.mu.Unlock()

	<-done
}

// DeleteNow asks the running worker for an immediate pass. It never blocks;
// a pass already requested absorbs the call.
func (w *Worker) DeleteNow() {
	select {
	case w.kick <- struct{}{}:
	default:
	}
}

// run is the main worker loop with adaptive backoff
func (w *Worker) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-stop
		cancel()
	}()

	ticker := time.NewTicker(w.currentInterval)
	defer ticker.Stop()

	// Run immediately on start
	w.ProcessPending(ctx)

	for {
		select {
		case <-ticker.C:
			result := w.ProcessPending(ctx)
			w.adjustInterval(ticker, result.hadWork())
		case <-w.kick:
			w.ProcessPending(ctx)
		case <-stop:
			return
		}
	}
}

// adjustInterval resets to the base interval when there was work and backs off to max otherwise
func (w *Worker) adjustInterval(ticker *time.Ticker, hadWork bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if hadWork {
		if w.currentInterval != w.baseInterval {
			w.currentInterval = w.baseInterval
			ticker.Reset(w.currentInterval)
			log.Printf("[Janitor] Work found, reset interval to %v", w.currentInterval)
		}
		return
	}

	if w.currentInterval < w.maxInterval {
		w.currentInterval = w.maxInterval
		ticker.Reset(w.currentInterval)
		log.Printf("[Janitor] No work, increased interval to %v", w.currentInterval)
	}
}
