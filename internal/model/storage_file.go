package model

import "time"

// StorageFile is the metadata of a stored blob. The bytes live with the
// storage backend and are never loaded with the metadata.
type StorageFile struct {
	ID int64 `json:"id"`
	// WorkspaceID scopes downloads to members. Zero for files stored
	// before files carried a workspace; those cannot be downloaded.
	WorkspaceID int64     `json:"workspace_id"`
	BucketID    string    `json:"bucket_id"`
	Name        string    `json:"name"`
	MimeType    string    `json:"mime_type"`
	Size        int64     `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
}

// Attachment is what a comment exposes about its file.
type Attachment struct {
	StorageFile
	DownloadURL string `json:"download_url"`
}
