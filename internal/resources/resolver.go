// Package resources locates and loads the optional binary assets of a
// book: one cover image and any embedded fonts. It works on flat
// listings supplied by the caller and never walks directories itself.
package resources

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/unalkalkan/txt2epub/internal/storage"
	"github.com/unalkalkan/txt2epub/pkg/types"
)

// UnsupportedResourceError reports a chosen resource whose extension is
// not a recognized format for its role.
type UnsupportedResourceError struct {
	Name string
	Role string
}

func (e *UnsupportedResourceError) Error() string {
	return fmt.Sprintf("unsupported %s resource: %s", e.Role, e.Name)
}

// coverExtensions in resolution priority order
var coverExtensions = []string{".jpg", ".jpeg", ".png"}

var coverMediaTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

var fontMediaTypes = map[string]string{
	".ttf": "application/x-font-ttf",
	".otf": "application/vnd.ms-opentype",
}

// ResolveCover picks a cover image name from a flat listing of entries
// sharing a directory with the source text. An image named exactly like
// the source base name wins over the generic "cover" fallback; a missing
// cover is not an error.
func ResolveCover(sourceName string, listing []string) (string, bool) {
	entries := make(map[string]bool, len(listing))
	for _, name := range listing {
		entries[name] = true
	}

	base := strings.TrimSuffix(path.Base(sourceName), path.Ext(sourceName))
	for _, ext := range coverExtensions {
		if name := base + ext; entries[name] {
			return name, true
		}
	}
	for _, ext := range coverExtensions {
		if name := "cover" + ext; entries[name] {
			return name, true
		}
	}
	return "", false
}

// ValidateFont checks that a caller-chosen font file has a recognized
// font extension
func ValidateFont(name string) error {
	ext := strings.ToLower(path.Ext(name))
	if _, ok := fontMediaTypes[ext]; !ok {
		return &UnsupportedResourceError{Name: name, Role: types.RoleFont}
	}
	return nil
}

// Load reads a resource's bytes through the storage adapter and returns
// it with its media type. storagePath is the adapter path of the file;
// role must be RoleCover or RoleFont.
func Load(ctx context.Context, adapter storage.Adapter, storagePath, role string) (*types.Resource, error) {
	name := path.Base(storagePath)
	ext := strings.ToLower(path.Ext(name))

	var mediaType string
	switch role {
	case types.RoleCover:
		mediaType = coverMediaTypes[ext]
	case types.RoleFont:
		mediaType = fontMediaTypes[ext]
	}
	if mediaType == "" {
		return nil, &UnsupportedResourceError{Name: name, Role: role}
	}

	rc, err := adapter.Get(ctx, storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s resource %s: %w", role, name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s resource %s: %w", role, name, err)
	}

	return &types.Resource{
		Role:      role,
		Name:      name,
		MediaType: mediaType,
		Data:      data,
	}, nil
}
