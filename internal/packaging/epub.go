package packaging

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	epub "github.com/bmaupin/go-epub"

	"github.com/unalkalkan/txt2epub/pkg/types"
)

// EPUBPackager packages books with the go-epub writer
type EPUBPackager struct{}

// NewEPUBPackager creates a new EPUB packager
func NewEPUBPackager() *EPUBPackager {
	return &EPUBPackager{}
}

// Package serializes the book model into an EPUB archive held in
// memory. Failures from the underlying writer are wrapped as
// *PackagingError.
func (p *EPUBPackager) Package(ctx context.Context, book *types.Book) (io.Reader, error) {
	r, err := p.build(book)
	if err != nil {
		return nil, &PackagingError{Title: book.Metadata.Title, Err: err}
	}
	return r, nil
}

func (p *EPUBPackager) build(book *types.Book) (io.Reader, error) {
	e := epub.NewEpub(book.Metadata.Title)
	e.SetAuthor(book.Metadata.Author)
	e.SetIdentifier(book.Metadata.Identifier)
	e.SetLang(book.Metadata.Language)

	// go-epub takes resources by source path, so in-memory assets are
	// staged in a scratch directory for the duration of the build.
	scratch, err := os.MkdirTemp("", "txt2epub-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(scratch)

	stage := func(name string, data []byte) (string, error) {
		path := filepath.Join(scratch, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return "", fmt.Errorf("failed to stage %s: %w", name, err)
		}
		return path, nil
	}

	for _, font := range book.Fonts {
		src, err := stage(font.Name, font.Data)
		if err != nil {
			return nil, err
		}
		if _, err := e.AddFont(src, font.Name); err != nil {
			return nil, fmt.Errorf("failed to embed font %s: %w", font.Name, err)
		}
	}

	cssSrc, err := stage("style.css", []byte(book.Stylesheet))
	if err != nil {
		return nil, err
	}
	cssPath, err := e.AddCSS(cssSrc, "style.css")
	if err != nil {
		return nil, fmt.Errorf("failed to add stylesheet: %w", err)
	}

	if book.Cover != nil {
		src, err := stage(book.Cover.Name, book.Cover.Data)
		if err != nil {
			return nil, err
		}
		imgPath, err := e.AddImage(src, book.Cover.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to add cover image: %w", err)
		}
		e.SetCover(imgPath, "")
	}

	// One XHTML section per chapter; the flat TOC mirrors this order.
	for i, ch := range book.Chapters {
		name := fmt.Sprintf("chap_%04d.xhtml", i+1)
		if _, err := e.AddSection(chapterBody(ch), ch.Title, name, cssPath); err != nil {
			return nil, fmt.Errorf("failed to add chapter %d (%s): %w", ch.Number, ch.Title, err)
		}
	}

	buf := new(bytes.Buffer)
	if _, err := e.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("failed to serialize epub: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), nil
}

// chapterBody renders a chapter as inner XHTML: a heading followed by
// one paragraph element per body paragraph, with all text escaped.
func chapterBody(ch types.Chapter) string {
	var b strings.Builder
	b.WriteString("<h1>")
	b.WriteString(html.EscapeString(ch.Title))
	b.WriteString("</h1>")
	for _, p := range ch.Paragraphs {
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(p))
		b.WriteString("</p>")
	}
	return b.String()
}
