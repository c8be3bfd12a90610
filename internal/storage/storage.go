// Package storage keeps copies of generated exports in an S3-compatible object
// store. Objects are streamed; nothing touches local disk.
package storage

import (
	"context"
	"io"
	"time"
)

// PutOptions describe an upload. Size is the exact byte count, or -1 when unknown.
type PutOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key  string
	Size int64
	ETag string
}

// ObjectStore uploads objects and hands out time-limited download links.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutOptions) (ObjectInfo, error)
	// PresignGet returns a URL that downloads key without credentials until expiry.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ExportKey is the object key of an archived workbook named name. Each archive
// gets its own key so earlier copies are kept.
func ExportKey(name string, at time.Time) string {
	return "exports/" + at.UTC().Format("20060102T150405Z") + "/" + name
}
