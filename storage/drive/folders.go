package drive

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/api/drive/v3"
)

const folderMimeType = "application/vnd.google-apps.folder"

// FolderManager resolves bucket folders under the configured root, caching their ids
type FolderManager struct {
	client *Client

	mu    sync.Mutex
	cache map[string]string
}

// NewFolderManager creates a new folder manager
func NewFolderManager(client *Client) *FolderManager {
	return &FolderManager{client: client, cache: make(map[string]string)}
}

// GetOrCreate returns the ID of a folder, creating it if it doesn't exist
func (fm *FolderManager) GetOrCreate(ctx context.Context, name, parentID string) (string, error) {
	if parentID == "" {
		parentID = "root"
	}

	cacheKey := parentID + "/" + name
	fm.mu.Lock()
	defer fm.mu.Unlock()

	if id, ok := fm.cache[cacheKey]; ok {
		return id, nil
	}

	query := fmt.Sprintf("name='%s' and mimeType='%s' and trashed=false and '%s' in parents",
		escapeQuery(name), folderMimeType, escapeQuery(parentID))

	fileList, err := fm.client.Service().Files.List().
		Q(query).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	if len(fileList.Files) > 0 {
		fm.cache[cacheKey] = fileList.Files[0].Id
		return fileList.Files[0].Id, nil
	}

	file, err := fm.client.Service().Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMimeType,
		Parents:  []string{parentID},
	}).
		Fields("id").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	fm.cache[cacheKey] = file.Id
	return file.Id, nil
}

func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
