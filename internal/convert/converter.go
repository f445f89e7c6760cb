// Package convert wires the conversion pipeline: encoding detection,
// chapter segmentation, metadata inference, resource resolution,
// assembly, and packaging. Convert is the engine's single entry point;
// every failure is returned inside the per-input Result so one bad
// source never aborts the rest of a batch.
package convert

import (
	"context"
	"fmt"
	"path"

	"github.com/unalkalkan/txt2epub/internal/assemble"
	"github.com/unalkalkan/txt2epub/internal/packaging"
	"github.com/unalkalkan/txt2epub/internal/resources"
	"github.com/unalkalkan/txt2epub/internal/segment"
	"github.com/unalkalkan/txt2epub/internal/storage"
	"github.com/unalkalkan/txt2epub/internal/textenc"
	"github.com/unalkalkan/txt2epub/internal/util"
	"github.com/unalkalkan/txt2epub/pkg/types"
)

// Request describes one source to convert. Siblings is the flat
// listing of the input location, supplied by the caller for cover
// lookup; FontName optionally names a caller-chosen font inside the
// fonts location.
type Request struct {
	SourceName string
	Data       []byte
	Title      string
	Author     string
	Siblings   []string
	FontName   string
}

// Result reports the outcome of converting a single source
type Result struct {
	SourceName string
	Title      string
	Encoding   string
	Chapters   int
	OutputPath string
	Err        error
}

// OK reports whether the conversion succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Summary aggregates batch results for the caller's report
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
}

// Converter runs the conversion pipeline against a storage adapter
type Converter struct {
	cfg      *types.Config
	seg      *segment.Segmenter
	packager packaging.Packager
	store    storage.Adapter
}

// New creates a converter from configuration
func New(cfg *types.Config, store storage.Adapter, packager packaging.Packager) (*Converter, error) {
	seg, err := segment.New(cfg.Segmenter)
	if err != nil {
		return nil, fmt.Errorf("failed to build segmenter: %w", err)
	}

	return &Converter{
		cfg:      cfg,
		seg:      seg,
		packager: packager,
		store:    store,
	}, nil
}

// Convert runs the full pipeline for one source and writes the
// packaged book to the output location. It never panics past its
// boundary; all input-data problems come back in the Result.
func (c *Converter) Convert(ctx context.Context, req Request) Result {
	res := Result{SourceName: req.SourceName}

	text, encLabel, err := textenc.Detect(req.Data)
	if err != nil {
		res.Err = fmt.Errorf("%s: %w", req.SourceName, err)
		return res
	}
	res.Encoding = encLabel

	chapters := c.seg.Split(text, req.SourceName)
	res.Chapters = len(chapters)

	md := assemble.InferMetadata(req.SourceName, req.Title, req.Author,
		c.cfg.Book.DefaultAuthor, c.cfg.Book.Language)
	res.Title = md.Title

	// A cover is optional: resolution failures leave the book
	// cover-less rather than failing the conversion.
	var cover *types.Resource
	if name, ok := resources.ResolveCover(req.SourceName, req.Siblings); ok {
		cover, _ = resources.Load(ctx, c.store, path.Join(c.cfg.Paths.Input, name), types.RoleCover)
	}

	// A font is embedded only when explicitly chosen, and a bad
	// choice is fatal for this conversion.
	var fonts []types.Resource
	if req.FontName != "" {
		if err := resources.ValidateFont(req.FontName); err != nil {
			res.Err = err
			return res
		}
		font, err := resources.Load(ctx, c.store, path.Join(c.cfg.Paths.Fonts, req.FontName), types.RoleFont)
		if err != nil {
			res.Err = err
			return res
		}
		fonts = append(fonts, *font)
	}

	book := assemble.Assemble(md, chapters, cover, fonts)

	packaged, err := c.packager.Package(ctx, book)
	if err != nil {
		res.Err = err
		return res
	}

	outPath := path.Join(c.cfg.Paths.Output, util.SanitizeFilename(md.Title)+".epub")
	if err := c.store.Put(ctx, outPath, packaged); err != nil {
		res.Err = fmt.Errorf("failed to write %s: %w", outPath, err)
		return res
	}

	res.OutputPath = outPath
	return res
}

// ConvertAll converts every request independently, in order. A failed
// conversion is reported in its own result and never stops the batch.
func (c *Converter) ConvertAll(ctx context.Context, reqs []Request) []Result {
	results := make([]Result, 0, len(reqs))
	for _, req := range reqs {
		results = append(results, c.Convert(ctx, req))
	}
	return results
}

// Summarize counts successes and failures for the batch report
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.OK() {
			s.Succeeded++
		} else {
			s.Failed++
		}
	}
	return s
}
