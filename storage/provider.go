package storage

import (
	"context"
	"errors"
	"io"
	"net/url"
	"slices"
	"strings"
)

// Buckets group uploads by the content that owns them
const (
	BucketGallery  = "gallery"
	BucketBlog     = "blog"
	BucketPrograms = "programs"
	BucketTeam     = "team"
	BucketEvents   = "events"
)

var Buckets = []string{BucketGallery, BucketBlog, BucketPrograms, BucketTeam, BucketEvents}

func ValidBucket(bucket string) bool {
	return slices.Contains(Buckets, bucket)
}

var (
	// ErrNotFound is returned by Delete when the object is already gone
	ErrNotFound = errors.New("object not found")
	// ErrAlreadyExists is returned by Upload rather than overwriting an object
	ErrAlreadyExists = errors.New("object already exists")
	ErrInvalidKey    = errors.New("invalid object key")
)

// Object is a single upload
type Object struct {
	Bucket      string
	Key         string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Provider is the interface for all object storage backends
type Provider interface {
	// Name identifies the backend in logs
	Name() string

	// Upload stores obj and returns its public URL. Existing objects are never overwritten.
	Upload(ctx context.Context, obj Object) (string, error)

	// Delete removes an object, returning ErrNotFound if it does not exist
	Delete(ctx context.Context, bucket, key string) error

	// KeyFromURL recovers the object key from a public URL this provider issued
	KeyFromURL(bucket, publicURL string) (string, bool)
}

// ValidKey rejects keys that could escape their bucket
func ValidKey(key string) bool {
	return key != "" && key != "." && key != ".." &&
		!strings.ContainsAny(key, `/\`) && !strings.Contains(key, "..")
}

// joinURL appends bucket and key to a public base URL
func joinURL(base, bucket, key string) string {
	return strings.TrimRight(base, "/") + "/" + bucket + "/" + url.PathEscape(key)
}

// splitURL returns the part of publicURL after "<base>/<bucket>/"
func splitURL(base, bucket, publicURL string) (string, bool) {
	if i := strings.IndexAny(publicURL, "?#"); i >= 0 {
		publicURL = publicURL[:i]
	}

	prefix := strings.TrimRight(base, "/") + "/" + bucket + "/"
	rest, ok := strings.CutPrefix(publicURL, prefix)
	if !ok {
		return "", false
	}

	key, err := url.PathUnescape(rest)
	if err != nil || !ValidKey(key) {
		return "", false
	}
	return key, true
}
