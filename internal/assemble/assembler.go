// Package assemble builds the in-memory book model handed to packaging:
// metadata inference, stylesheet generation, and aggregation of
// chapters and resources.
package assemble

import (
	"strings"

	"github.com/unalkalkan/txt2epub/internal/identity"
	"github.com/unalkalkan/txt2epub/internal/segment"
	"github.com/unalkalkan/txt2epub/pkg/types"
)

// titleAuthorSeparator splits "Title - Author" shaped source names
const titleAuthorSeparator = " - "

// InferMetadata resolves a book's metadata. Explicit title/author win;
// otherwise both are parsed from a "Title - Author" shaped source name.
// Without a separator the source base name becomes the title and the
// author falls back to the placeholder. The identifier is always
// derived deterministically from the resolved pair.
func InferMetadata(sourceName, title, author, placeholder, language string) types.Metadata {
	if title == "" {
		base := segment.TitleFromSourceName(sourceName)
		if before, after, found := strings.Cut(base, titleAuthorSeparator); found {
			title = strings.TrimSpace(before)
			if author == "" {
				author = strings.TrimSpace(after)
			}
		} else {
			title = base
		}
	}
	if author == "" {
		author = placeholder
	}

	return types.Metadata{
		Title:      title,
		Author:     author,
		Identifier: identity.BookID(title, author),
		Language:   language,
	}
}

// Assemble combines metadata, chapters, and resources into the final
// book model. The table of contents is the chapter order itself; no
// mutation happens after this returns.
func Assemble(md types.Metadata, chapters []types.Chapter, cover *types.Resource, fonts []types.Resource) *types.Book {
	var fontName string
	if len(fonts) > 0 {
		fontName = fonts[0].Name
	}

	return &types.Book{
		Metadata:   md,
		Chapters:   chapters,
		Cover:      cover,
		Fonts:      fonts,
		Stylesheet: Stylesheet(fontName),
	}
}
