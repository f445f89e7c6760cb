// Package packaging serializes an assembled book model into a
// distributable EPUB container.
package packaging

import (
	"context"
	"fmt"
	"io"

	"github.com/unalkalkan/txt2epub/pkg/types"
)

// Packager turns a book model into a packaged document.
// Implementations receive a fully assembled, immutable model and return
// the serialized container as a reader.
type Packager interface {
	Package(ctx context.Context, book *types.Book) (io.Reader, error)
}

// PackagingError reports a failure of the packaging collaborator.
// The assembled model is not repaired or retried; the underlying cause
// is preserved for unwrapping.
type PackagingError struct {
	Title string
	Err   error
}

func (e *PackagingError) Error() string {
	return fmt.Sprintf("packaging failed for %q: %v", e.Title, e.Err)
}

func (e *PackagingError) Unwrap() error {
	return e.Err
}
