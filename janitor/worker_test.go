package janitor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"suredoor/database"
	"suredoor/models"
	"suredoor/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	mu      sync.Mutex
	fail    map[string]error
	deleted []string
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Upload(ctx context.Context, obj storage.Object) (string, error) {
	return "", errors.New("not supported")
}

func (f *fakeProvider) Delete(ctx context.Context, bucket, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.fail[key]; ok {
		return err
	}
	f.deleted = append(f.deleted, bucket+"/"+key)
	return nil
}

func (f *fakeProvider) KeyFromURL(bucket, url string) (string, bool) { return "", false }

func (f *fakeProvider) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func setupRepo(t *testing.T) *database.Repository {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "janitor-test-*")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	t.Cleanup(func() {
		db.Close()
		os.RemoveAll(tmpDir)
	})
	return database.NewRepository(db)
}

func TestProcessPending_RemovesSucceededEntries(t *testing.T) {
	repo := setupRepo(t)
	provider := &fakeProvider{fail: map[string]error{
		"gone.jpg": storage.ErrNotFound,
	}}
	w := NewWorker(repo, provider)

	require.NoError(t, repo.EnqueueDeletion(storage.BucketGallery, "a.jpg"))
	require.NoError(t, repo.EnqueueDeletion(storage.BucketBlog, "gone.jpg"))

	result := w.ProcessPending(context.Background())
	assert.Equal(t, Result{Deleted: 2}, result)
	assert.Equal(t, []string{"gallery/a.jpg"}, provider.Deleted())

	n, err := repo.CountPendingDeletions()
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestProcessPending_RetriesThenAbandons(t *testing.T) {
	repo := setupRepo(t)
	provider := &fakeProvider{fail: map[string]error{"stuck.jpg": errors.New("permission denied")}}
	w := NewWorker(repo, provider)

	clock := time.Now()
	w.now = func() time.Time { return clock }

	require.NoError(t, repo.EnqueueDeletion(storage.BucketGallery, "stuck.jpg"))

	result := w.ProcessPending(context.Background())
	assert.Equal(t, Result{Failed: 1}, result)

	t.Run("recent failures wait for the retry age", func(t *testing.T) {
		assert.Equal(t, Result{}, w.ProcessPending(context.Background()))
	})

	for i := 1; i < models.MaxDeletionRetries; i++ {
		clock = clock.Add(time.Minute)
		assert.Equal(t, Result{Failed: 1}, w.ProcessPending(context.Background()))
	}

	clock = clock.Add(time.Minute)
	assert.Equal(t, Result{}, w.ProcessPending(context.Background()), "abandoned entries are not retried")

	failed, err := repo.GetFailedDeletions(10)
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, models.DeletionAbandoned, failed[0].Status)
	assert.Equal(t, models.MaxDeletionRetries, failed[0].RetryCount)
	assert.Equal(t, "permission denied", failed[0].LastError)
}

func TestProcessPending_RecentFailuresDoNotStarveNewEntries(t *testing.T) {
	repo := setupRepo(t)
	provider := &fakeProvider{fail: map[string]error{}}
	w := NewWorker(repo, provider)

	clock := time.Now()
	w.now = func() time.Time { return clock }

	for i := 0; i < batchSize; i++ {
		key := fmt.Sprintf("stuck-%02d.jpg", i)
		provider.fail[key] = errors.New("permission denied")
		require.NoError(t, repo.EnqueueDeletion(storage.BucketGallery, key))
	}

	assert.Equal(t, Result{Failed: batchSize}, w.ProcessPending(context.Background()))

	require.NoError(t, repo.EnqueueDeletion(storage.BucketGallery, "fresh.jpg"))

	assert.Equal(t, Result{Deleted: 1}, w.ProcessPending(context.Background()))
	assert.Equal(t, []string{"gallery/fresh.jpg"}, provider.Deleted())
}

func TestStartStopAndDeleteNow(t *testing.T) {
	repo := setupRepo(t)
	provider := &fakeProvider{}
	w := NewWorker(repo, provider)

	w.Start()
	w.Start()

	require.NoError(t, repo.EnqueueDeletion(storage.BucketTeam, "later.jpg"))
	w.DeleteNow()
	w.DeleteNow()

	assert.Eventually(t, func() bool {
		return len(provider.Deleted()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	w.Stop()
	w.Stop()
}
