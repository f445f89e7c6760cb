package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/unalkalkan/txt2epub/internal/config"
	"github.com/unalkalkan/txt2epub/internal/convert"
	"github.com/unalkalkan/txt2epub/internal/packaging"
	"github.com/unalkalkan/txt2epub/internal/storage"
	"github.com/unalkalkan/txt2epub/pkg/types"
)

const version = "0.2.0"

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "", "Path to configuration file (default: built-in config)")
	file := flag.String("file", "", "Convert only this file from the input location (default: all .txt files)")
	title := flag.String("title", "", "Explicit book title (default: inferred from the file name)")
	author := flag.String("author", "", "Explicit author (default: inferred from the file name)")
	font := flag.String("font", "", "Font file from the fonts location to embed (default: none)")
	flag.Parse()

	// Load configuration
	var cfg *types.Config
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
		log.Printf("Configuration loaded from: %s", *configPath)
	} else {
		cfg = config.GetDefault()
		if err := config.Validate(cfg); err != nil {
			log.Fatalf("Invalid default config: %v", err)
		}
		log.Printf("Using built-in configuration")
	}

	log.Printf("txt2epub v%s", version)

	// Initialize storage adapter
	store, err := storage.NewAdapter(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to create storage adapter: %v", err)
	}
	defer store.Close()
	log.Printf("Storage adapter initialized: %s", cfg.Storage.Adapter)

	conv, err := convert.New(cfg, store, packaging.NewEPUBPackager())
	if err != nil {
		log.Fatalf("Failed to create converter: %v", err)
	}

	ctx := context.Background()

	reqs, err := buildRequests(ctx, cfg, store, *file, *title, *author, *font)
	if err != nil {
		log.Fatalf("Failed to build batch: %v", err)
	}
	if len(reqs) == 0 {
		log.Fatalf("No .txt files found under %s", cfg.Paths.Input)
	}
	log.Printf("Converting %d file(s)...", len(reqs))

	results := conv.ConvertAll(ctx, reqs)
	for _, r := range results {
		if r.OK() {
			log.Printf("[ok]   %s -> %s (%s, %d chapters)", r.SourceName, r.OutputPath, r.Encoding, r.Chapters)
		} else {
			log.Printf("[fail] %s: %v", r.SourceName, r.Err)
		}
	}

	s := convert.Summarize(results)
	log.Printf("Done: %d/%d succeeded", s.Succeeded, s.Total)
	if s.Failed > 0 {
		os.Exit(1)
	}
}

// buildRequests turns the input listing into one conversion request per
// source file. The flat listing doubles as the sibling set for cover
// lookup.
func buildRequests(ctx context.Context, cfg *types.Config, store storage.Adapter, only, title, author, font string) ([]convert.Request, error) {
	listing, err := store.List(ctx, cfg.Paths.Input)
	if err != nil {
		return nil, err
	}

	var reqs []convert.Request
	for _, name := range listing {
		if !strings.EqualFold(path.Ext(name), ".txt") {
			continue
		}
		if only != "" && name != only {
			continue
		}

		data, err := readSource(ctx, store, path.Join(cfg.Paths.Input, name))
		if err != nil {
			return nil, err
		}

		reqs = append(reqs, convert.Request{
			SourceName: name,
			Data:       data,
			Title:      title,
			Author:     author,
			Siblings:   listing,
			FontName:   font,
		})
	}
	return reqs, nil
}

func readSource(ctx context.Context, store storage.Adapter, p string) ([]byte, error) {
	rc, err := store.Get(ctx, p)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
