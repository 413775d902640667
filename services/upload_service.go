package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"suredoor/storage"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// DefaultMaxUploadBytes caps image uploads at 5 MiB
const DefaultMaxUploadBytes int64 = 5 << 20

// allowedImageTypes are the raster formats accepted for upload
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// UploadService puts images into object storage and queues their removal
type UploadService struct {
	provider storage.Provider
	queue    DeletionQueue
	worker   DeletionWorker
	maxBytes int64
}

func NewUploadService(provider storage.Provider, queue DeletionQueue, worker DeletionWorker, maxBytes int64) *UploadService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &UploadService{
		provider: provider,
		queue:    queue,
		worker:   worker,
		maxBytes: maxBytes,
	}
}

func (us *UploadService) MaxBytes() int64 {
	return us.maxBytes
}

// UploadImage stores an image under a fresh key and returns its public URL.
// size is the client-declared length; the body is still bounded while reading.
// The stored extension and content type come from the sniffed bytes, never
// from filename.
func (us *UploadService) UploadImage(ctx context.Context, bucket, filename string, size int64, r io.Reader) (string, error) {
	if bucket == "" {
		bucket = storage.BucketGallery
	}
	if !storage.ValidBucket(bucket) {
		return "", ErrUnknownBucket
	}
	if size > us.maxBytes {
		return "", ErrFileTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(r, us.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("failed to read upload: %w", err)
	}
	if int64(len(data)) > us.maxBytes {
		return "", ErrFileTooLarge
	}
	if len(data) == 0 {
		return "", ErrInvalidUpload
	}

	mtype := mimetype.Detect(data)
	if !allowedImageTypes[mtype.String()] {
		return "", ErrInvalidUpload
	}

	obj := storage.Object{
		Bucket:      bucket,
		Key:         objectKey(mtype.Extension()),
		ContentType: mtype.String(),
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
	}

	return us.provider.Upload(ctx, obj)
}

// DeleteImage queues the object behind url for removal. URLs that do not
// belong to the provider are ignored and reported as false.
func (us *UploadService) DeleteImage(ctx context.Context, url, bucket string) (bool, error) {
	if bucket == "" {
		bucket = storage.BucketGallery
	}

	key, ok := us.provider.KeyFromURL(bucket, url)
	if !ok {
		return false, nil
	}

	if err := us.queue.EnqueueDeletion(bucket, key); err != nil {
		return false, err
	}

	if us.worker != nil {
		us.worker.DeleteNow()
	}
	return true, nil
}

// objectKey builds <unix-millis>-<random><ext>
func objectKey(ext string) string {
	random := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	return fmt.Sprintf("%d-%s%s", time.Now().UnixMilli(), random, ext)
}
