package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// LocalProvider keeps objects on disk under root/<bucket>/<key>; the HTTP
// server exposes root at baseURL.
type LocalProvider struct {
	root    string
	baseURL string
}

func NewLocalProvider(root, baseURL string) (*LocalProvider, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalProvider{root: root, baseURL: baseURL}, nil
}

func (p *LocalProvider) Name() string { return "local" }

func (p *LocalProvider) Root() string { return p.root }

func (p *LocalProvider) Upload(ctx context.Context, obj Object) (string, error) {
	if !ValidKey(obj.Key) || !ValidBucket(obj.Bucket) {
		return "", ErrInvalidKey
	}

	dir := filepath.Join(p.root, obj.Bucket)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(dir, obj.Key)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return "", ErrAlreadyExists
	}
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, obj.Body); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return joinURL(p.baseURL, obj.Bucket, obj.Key), nil
}

func (p *LocalProvider) Delete(ctx context.Context, bucket, key string) error {
	if !ValidKey(key) || !ValidBucket(bucket) {
		return ErrInvalidKey
	}

	err := os.Remove(filepath.Join(p.root, bucket, key))
	if errors.Is(err, fs.ErrNotExist) {
		return ErrNotFound
	}
	return err
}

func (p *LocalProvider) KeyFromURL(bucket, publicURL string) (string, bool) {
	return splitURL(p.baseURL, bucket, publicURL)
}
