package storage

import (
	"fmt"
	"net/url"
	"strings"
)

// URLBuilder formats public download URLs for stored files.
type URLBuilder struct {
	Endpoint  string
	ProjectID string
}

func (b URLBuilder) DownloadURL(bucketID string, fileID int64) string {
	return fmt.Sprintf("%s/storage/buckets/%s/files/%d/download?project=%s",
		strings.TrimRight(b.Endpoint, "/"),
		url.PathEscape(bucketID),
		fileID,
		url.QueryEscape(b.ProjectID),
	)
}
