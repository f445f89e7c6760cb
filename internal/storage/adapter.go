// Package storage abstracts where the converter reads sources and
// writes finished books: a local directory tree or an S3-compatible
// bucket.
package storage

import (
	"context"
	"io"
)

// Adapter defines the interface for storage backends.
//
// List returns a flat listing: the names of the direct children of a
// prefix, without the prefix itself. The conversion engine consumes
// these listings for cover and font discovery and never traverses
// directories on its own.
type Adapter interface {
	// Put stores data at the given path, creating parents as needed
	Put(ctx context.Context, path string, data io.Reader) error

	// Get retrieves data from the given path
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Exists checks if data exists at the given path
	Exists(ctx context.Context, path string) (bool, error)

	// List returns the names of entries directly under the prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// Close cleans up any resources
	Close() error
}
