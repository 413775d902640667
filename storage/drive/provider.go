// Package drive stores uploads in Google Drive, one folder per bucket.
package drive

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"suredoor/storage"

	"google.golang.org/api/googleapi"
)

// publicURLPrefix serves a shared Drive file directly as an image
const publicURLPrefix = "https://drive.google.com/uc?export=view&id="

// Provider implements storage.Provider on top of Google Drive
type Provider struct {
	rootFolderID string
	folders      *FolderManager
	files        *FileManager
}

// NewProvider creates a Drive provider whose bucket folders live under rootFolderID
func NewProvider(client *Client, rootFolderID string) *Provider {
	return &Provider{
		rootFolderID: rootFolderID,
		folders:      NewFolderManager(client),
		files:        NewFileManager(client),
	}
}

func (p *Provider) Name() string { return "drive" }

func (p *Provider) Upload(ctx context.Context, obj storage.Object) (string, error) {
	if !storage.ValidKey(obj.Key) || !storage.ValidBucket(obj.Bucket) {
		return "", storage.ErrInvalidKey
	}

	folderID, err := p.folders.GetOrCreate(ctx, obj.Bucket, p.rootFolderID)
	if err != nil {
		return "", err
	}

	existing, err := p.files.Find(ctx, obj.Key, folderID)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", storage.ErrAlreadyExists
	}

	file, err := p.files.Create(ctx, obj.Key, folderID, obj.ContentType, obj.Body)
	if err != nil {
		return "", err
	}

	if err := p.files.ShareReadOnly(ctx, file.Id); err != nil {
		// An unshared file is useless on a public page
		if delErr := p.files.Delete(ctx, file.Id); delErr != nil {
			return "", errors.Join(err, delErr)
		}
		return "", err
	}

	return PublicURL(file.Id), nil
}

// Delete removes a file by its Drive id, which is what KeyFromURL returns
func (p *Provider) Delete(ctx context.Context, bucket, key string) error {
	if key == "" {
		return storage.ErrInvalidKey
	}

	err := p.files.Delete(ctx, key)
	if isNotFound(err) {
		return storage.ErrNotFound
	}
	return err
}

// KeyFromURL extracts the Drive file id. Drive URLs carry no folder, so the
// bucket cannot be checked.
func (p *Provider) KeyFromURL(bucket, publicURL string) (string, bool) {
	if !strings.HasPrefix(publicURL, "https://drive.google.com/") {
		return "", false
	}

	u, err := url.Parse(publicURL)
	if err != nil {
		return "", false
	}

	id := u.Query().Get("id")
	if id == "" || !storage.ValidKey(id) {
		return "", false
	}
	return id, true
}

func PublicURL(fileID string) string {
	return publicURLPrefix + url.QueryEscape(fileID)
}

func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound
}
