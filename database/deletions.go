package database

import (
	"database/sql"
	"suredoor/models"
	"time"

	"github.com/google/uuid"
)

// ==================== STORAGE DELETION QUEUE ====================

const deletionColumns = `id, bucket, object_key, status, retry_count, last_error, last_attempt_at, created_at`

func scanDeletion(s rowScanner) (*models.StorageDeletion, error) {
	var d models.StorageDeletion
	var status string
	var lastError sql.NullString
	var lastAttemptAt sql.NullTime

	if err := s.Scan(&d.ID, &d.Bucket, &d.ObjectKey, &status, &d.RetryCount,
		&lastError, &lastAttemptAt, &d.CreatedAt); err != nil {
		return nil, err
	}

	d.Status = models.DeletionStatus(status)
	d.LastError = lastError.String
	if lastAttemptAt.Valid {
		d.LastAttemptAt = &lastAttemptAt.Time
	}
	return &d, nil
}

// EnqueueDeletion records an object for removal. Enqueuing the same object
// twice resets it to pending rather than creating a duplicate.
func (r *Repository) EnqueueDeletion(bucket, key string) error {
	_, err := r.db.Exec(`
		INSERT INTO storage_deletions (id, bucket, object_key, status, retry_count, created_at)
		VALUES (?, ?, ?, ?, 0, ?)
		ON CONFLICT(bucket, object_key) DO UPDATE SET
			status = excluded.status,
			retry_count = 0,
			last_error = NULL
	`, uuid.New().String(), bucket, key, string(models.DeletionPending), time.Now().UTC())
	return err
}

// GetPendingDeletions returns queued deletions plus failed ones last attempted
// at or before retryBefore, oldest first
func (r *Repository) GetPendingDeletions(limit int, retryBefore time.Time) ([]models.StorageDeletion, error) {
	rows, err := r.db.Query(`
		SELECT `+deletionColumns+`
		FROM storage_deletions
		WHERE status = ?
			OR (status = ? AND (last_attempt_at IS NULL OR last_attempt_at <= ?))
		ORDER BY created_at ASC
		LIMIT ?
	`, string(models.DeletionPending), string(models.DeletionFailed), retryBefore.UTC(), limit)
	return scanAll(rows, err, scanDeletion)
}

// MarkDeletionDone removes a completed deletion from the queue
func (r *Repository) MarkDeletionDone(id string) error {
	_, err := r.db.Exec("DELETE FROM storage_deletions WHERE id = ?", id)
	return err
}

// MarkDeletionFailed increments the retry count and abandons the entry once
// MaxDeletionRetries is reached
func (r *Repository) MarkDeletionFailed(id, errorMsg string) error {
	_, err := r.db.Exec(`
		UPDATE storage_deletions SET
			status = CASE
				WHEN retry_count + 1 >= ? THEN ?
				ELSE ?
			END,
			retry_count = retry_count + 1,
			last_error = ?,
			last_attempt_at = ?
		WHERE id = ?
	`, models.MaxDeletionRetries, string(models.DeletionAbandoned),
		string(models.DeletionFailed), errorMsg, time.Now().UTC(), id)
	return err
}

// GetFailedDeletions lists failed and abandoned deletions for the dashboard
func (r *Repository) GetFailedDeletions(limit int) ([]models.StorageDeletion, error) {
	rows, err := r.db.Query(`
		SELECT `+deletionColumns+`
		FROM storage_deletions
		WHERE status IN (?, ?)
		ORDER BY last_attempt_at DESC
		LIMIT ?
	`, string(models.DeletionFailed), string(models.DeletionAbandoned), limit)
	return scanAll(rows, err, scanDeletion)
}

func (r *Repository) CountPendingDeletions() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM storage_deletions WHERE status IN (?, ?)`,
		string(models.DeletionPending), string(models.DeletionFailed)).Scan(&n)
	return n, err
}
