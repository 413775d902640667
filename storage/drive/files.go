package drive

import (
	"context"
	"fmt"
	"io"

	"google.golang.org/api/drive/v3"
)

// FileManager handles file operations in Google Drive
type FileManager struct {
	client *Client
}

// NewFileManager creates a new file manager
func NewFileManager(client *Client) *FileManager {
	return &FileManager{client: client}
}

// Find searches for a file by name in a specific folder
func (fm *FileManager) Find(ctx context.Context, filename, parentID string) (*drive.File, error) {
	query := fmt.Sprintf("name='%s' and '%s' in parents and trashed=false", escapeQuery(filename), escapeQuery(parentID))
	fileList, err := fm.client.Service().Files.List().
		Q(query).
		Fields("files(id, name)").
		SupportsAllDrives(true).
		IncludeItemsFromAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	if len(fileList.Files) == 0 {
		return nil, nil
	}

	return fileList.Files[0], nil
}

// Create creates a new file with the given content
func (fm *FileManager) Create(ctx context.Context, name, parentID, mimeType string, content io.Reader) (*drive.File, error) {
	fileMetadata := &drive.File{
		Name:     name,
		Parents:  []string{parentID},
		MimeType: mimeType,
	}

	return fm.client.Service().Files.Create(fileMetadata).
		Media(content).
		Fields("id, name").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
}

// ShareReadOnly lets anyone with the link view the file
func (fm *FileManager) ShareReadOnly(ctx context.Context, fileID string) error {
	_, err := fm.client.Service().Permissions.Create(fileID, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	return err
}

// Delete permanently deletes a file
func (fm *FileManager) Delete(ctx context.Context, fileID string) error {
	return fm.client.Service().Files.Delete(fileID).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
}
