// Package blob defines the boundary to the binary file store. Callers hand
// over file content once and keep only the returned locator; the locator is
// opaque and stable for as long as the blob exists.
//
//go:generate mockgen -package mockblob -source=interface.go -destination=mock/mockblob.go *
package blob

import (
	"context"
	"io"
)

// Store persists uploaded file content.
type Store interface {
	// Put durably writes content and returns its locator. name is a hint used
	// to build a readable locator; it does not need to be unique.
	Put(ctx context.Context, name string, content io.Reader) (string, error)
	// Delete removes the blob behind locator. Deleting a blob that does not
	// exist is not an error.
	Delete(ctx context.Context, locator string) error
}
