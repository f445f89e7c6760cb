package storage

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalAdapter(t *testing.T) {
	ctx := context.Background()
	adapter, err := NewLocalAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalAdapter failed: %v", err)
	}
	defer adapter.Close()

	t.Run("Put and Get", func(t *testing.T) {
		if err := adapter.Put(ctx, "output/书名.epub", strings.NewReader("payload")); err != nil {
			t.Fatalf("Put failed: %v", err)
		}

		rc, err := adapter.Get(ctx, "output/书名.epub")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatalf("read failed: %v", err)
		}
		if !bytes.Equal(data, []byte("payload")) {
			t.Errorf("unexpected data: %q", data)
		}
	})

	t.Run("Exists", func(t *testing.T) {
		exists, err := adapter.Exists(ctx, "output/书名.epub")
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if !exists {
			t.Error("expected file to exist")
		}

		exists, err = adapter.Exists(ctx, "output/missing.epub")
		if err != nil {
			t.Fatalf("Exists failed: %v", err)
		}
		if exists {
			t.Error("expected file to be absent")
		}
	})

	t.Run("Get missing", func(t *testing.T) {
		if _, err := adapter.Get(ctx, "output/missing.epub"); err == nil {
			t.Error("expected error for missing file")
		}
	})
}

func TestLocalAdapter_List(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	adapter, err := NewLocalAdapter(base)
	if err != nil {
		t.Fatalf("NewLocalAdapter failed: %v", err)
	}
	defer adapter.Close()

	for _, name := range []string{"input/a.txt", "input/b.txt", "input/cover.jpg", "input/sub/nested.txt"} {
		if err := adapter.Put(ctx, name, strings.NewReader("x")); err != nil {
			t.Fatalf("Put %s failed: %v", name, err)
		}
	}

	names, err := adapter.List(ctx, "input")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	got := make(map[string]bool, len(names))
	for _, n := range names {
		got[n] = true
	}
	for _, want := range []string{"a.txt", "b.txt", "cover.jpg"} {
		if !got[want] {
			t.Errorf("expected %s in listing, got %v", want, names)
		}
	}
	if got["nested.txt"] || got["sub"] {
		t.Errorf("listing should be flat, got %v", names)
	}

	// Missing prefix is an empty listing, not an error.
	names, err = adapter.List(ctx, "nope")
	if err != nil {
		t.Fatalf("List on missing prefix failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("expected empty listing, got %v", names)
	}

	// Sanity check the on-disk layout.
	if _, err := os.Stat(filepath.Join(base, "input", "a.txt")); err != nil {
		t.Errorf("expected file on disk: %v", err)
	}
}
