package janitor

import (
	"context"
	"errors"
	"log"

	"suredoor/models"
	"suredoor/storage"
)

// ==================== DELETION EXECUTION ====================

// Result summarises one pass over the queue
type Result struct {
	Deleted int
	Failed  int
}

func (r Result) hadWork() bool {
	return r.Deleted > 0 || r.Failed > 0
}

// ProcessPending deletes one batch of ready entries
func (w *Worker) ProcessPending(ctx context.Context) Result {
	var result Result

	ready, err := w.queue.GetPendingDeletions(batchSize, w.now().Add(-minRetryAge))
	if err != nil {
		log.Printf("[Janitor] Failed to get pending deletions: %v", err)
		return result
	}
	if len(ready) == 0 {
		return result
	}

	log.Printf("[Janitor] Processing %d pending deletions via %s", len(ready), w.provider.Name())

	for _, d := range ready {
		if ctx.Err() != nil {
			break
		}
		if w.deleteOne(ctx, d) {
			result.Deleted++
		} else {
			result.Failed++
		}
	}

	log.Printf("[Janitor] Pass complete: %d deleted, %d failed", result.Deleted, result.Failed)
	return result
}

// deleteOne removes a single object; a missing object counts as deleted
func (w *Worker) deleteOne(ctx context.Context, d models.StorageDeletion) bool {
	err := w.provider.Delete(ctx, d.Bucket, d.ObjectKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		if markErr := w.queue.MarkDeletionFailed(d.ID, err.Error()); markErr != nil {
			log.Printf("[Janitor] Failed to mark deletion %s as failed: %v", d.ID, markErr)
		}
		if d.RetryCount+1 >= models.MaxDeletionRetries {
			log.Printf("[Janitor] Abandoning %s/%s after %d attempts: %v", d.Bucket, d.ObjectKey, d.RetryCount+1, err)
		}
		return false
	}

	if err := w.queue.MarkDeletionDone(d.ID); err != nil {
		log.Printf("[Janitor] Failed to clear deletion %s: %v", d.ID, err)
	}
	return true
}
